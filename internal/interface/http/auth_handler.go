package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pureherbal/storefront-api/config"
	"github.com/pureherbal/storefront-api/internal/application"
	"github.com/pureherbal/storefront-api/pkg/helpers"
	"github.com/pureherbal/storefront-api/pkg/mailer"
	"github.com/pureherbal/storefront-api/pkg/response"
	"github.com/pureherbal/storefront-api/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.AccountService
	Logger *logrus.Logger
	Cfg    *config.Config
	Pub    *helpers.RabbitPublisher
}

func NewAuthHandler(svc *application.AccountService, logger *logrus.Logger, cfg *config.Config, pub *helpers.RabbitPublisher) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger, Cfg: cfg, Pub: pub}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// authResponse is the session payload handed to the client mirror.
type authResponse struct {
	Token string      `json:"token"`
	User  profileView `json:"user"`
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, "Invalid payload", validation.ToDetails(err))
		return
	}
	u, token, err := h.Svc.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	h.enqueueEmail(c, u.Email, mailer.TemplateWelcome, map[string]any{"Name": u.Name})
	response.JSON(c, http.StatusCreated, authResponse{Token: token, User: toProfileView(u)})
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, "Invalid payload", validation.ToDetails(err))
		return
	}
	u, token, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, authResponse{Token: token, User: toProfileView(u)})
}

func (h *AuthHandler) enqueueEmail(c *gin.Context, to, template string, data map[string]any) {
	if h.Pub == nil || h.Cfg == nil || !h.Cfg.MailSendEnabled {
		return
	}
	job := mailer.EmailJob{To: to, Template: template, Data: data}
	if err := h.Pub.PublishJSON(c.Request.Context(), job); err != nil && h.Logger != nil {
		h.Logger.WithError(err).WithField("template", template).Warn("email enqueue failed")
	}
}
