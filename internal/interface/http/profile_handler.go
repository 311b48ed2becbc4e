package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pureherbal/storefront-api/config"
	"github.com/pureherbal/storefront-api/internal/application"
	"github.com/pureherbal/storefront-api/internal/interface/middleware"
	"github.com/pureherbal/storefront-api/pkg/helpers"
	"github.com/pureherbal/storefront-api/pkg/mailer"
	"github.com/pureherbal/storefront-api/pkg/response"
	"github.com/pureherbal/storefront-api/pkg/validation"
)

type ProfileHandler struct {
	Svc    *application.AccountService
	Logger *logrus.Logger
	Cfg    *config.Config
	Pub    *helpers.RabbitPublisher
}

func NewProfileHandler(svc *application.AccountService, logger *logrus.Logger, cfg *config.Config, pub *helpers.RabbitPublisher) *ProfileHandler {
	return &ProfileHandler{Svc: svc, Logger: logger, Cfg: cfg, Pub: pub}
}

// updateProfileRequest keeps the partial-update contract visible in the
// types: pointer fields change stored values only when present in the body.
type updateProfileRequest struct {
	Name               string         `json:"name" binding:"required"`
	Phone              *string        `json:"phone"`
	AvatarURL          *string        `json:"avatarUrl"`
	ProfilePreferences map[string]any `json:"profilePreferences"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

// Get GET /api/profile/profile
func (h *ProfileHandler) Get(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	u, err := h.Svc.GetProfile(uid)
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, toProfileView(u))
}

// Update PUT /api/profile/profile
func (h *ProfileHandler) Update(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, "Name is required")
		return
	}
	u, err := h.Svc.UpdateProfile(c.Request.Context(), uid, application.ProfileUpdateInput{
		Name:        req.Name,
		Phone:       req.Phone,
		AvatarURL:   req.AvatarURL,
		Preferences: req.ProfilePreferences,
	})
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, toProfileView(u))
}

// ChangePassword PUT /api/profile/profile/password
func (h *ProfileHandler) ChangePassword(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, "Current password and new password are required", validation.ToDetails(err))
		return
	}
	if err := h.Svc.ChangePassword(c.Request.Context(), uid, req.CurrentPassword, req.NewPassword); err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	if u, err := h.Svc.GetProfile(uid); err == nil {
		h.enqueueEmail(c, u.Email, mailer.TemplatePasswordChanged, map[string]any{"Name": u.Name})
	}
	response.Message(c, http.StatusOK, "Password updated successfully")
}

// UploadAvatar POST /api/profile/profile/avatar (multipart field "avatar")
func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	fh, err := c.FormFile("avatar")
	if err != nil {
		response.Message(c, http.StatusBadRequest, "Avatar file is required")
		return
	}
	f, err := fh.Open()
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	defer func() { _ = f.Close() }()

	u, err := h.Svc.UploadAvatar(c.Request.Context(), uid, f, fh.Filename, fh.Header.Get("Content-Type"))
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, toProfileView(u))
}

func (h *ProfileHandler) enqueueEmail(c *gin.Context, to, template string, data map[string]any) {
	if h.Pub == nil || h.Cfg == nil || !h.Cfg.MailSendEnabled {
		return
	}
	job := mailer.EmailJob{To: to, Template: template, Data: data}
	if err := h.Pub.PublishJSON(c.Request.Context(), job); err != nil && h.Logger != nil {
		h.Logger.WithError(err).WithField("template", template).Warn("email enqueue failed")
	}
}
