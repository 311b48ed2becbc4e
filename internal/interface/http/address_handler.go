package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pureherbal/storefront-api/internal/application"
	"github.com/pureherbal/storefront-api/internal/interface/middleware"
	"github.com/pureherbal/storefront-api/pkg/response"
	"github.com/pureherbal/storefront-api/pkg/validation"
)

type AddressHandler struct {
	Svc    *application.AddressService
	Logger *logrus.Logger
}

func NewAddressHandler(svc *application.AddressService, logger *logrus.Logger) *AddressHandler {
	return &AddressHandler{Svc: svc, Logger: logger}
}

// addressRequest is a full replacement payload: every field except type must
// be supplied on both create and update. This is deliberately stricter than
// the profile update's partial merge.
type addressRequest struct {
	Type    string `json:"type"`
	Street  string `json:"street" binding:"required"`
	City    string `json:"city" binding:"required"`
	State   string `json:"state" binding:"required"`
	Zip     string `json:"zip" binding:"required"`
	Country string `json:"country" binding:"required"`
}

func (r addressRequest) input() application.AddressInput {
	return application.AddressInput{
		Type:    r.Type,
		Street:  r.Street,
		City:    r.City,
		State:   r.State,
		Zip:     r.Zip,
		Country: r.Country,
	}
}

// List GET /api/profile/addresses
func (h *AddressHandler) List(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	addrs, err := h.Svc.List(c.Request.Context(), uid)
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, addrs)
}

// Add POST /api/profile/addresses
func (h *AddressHandler) Add(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req addressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, "Street, city, state, zip, and country are required", validation.ToDetails(err))
		return
	}
	addr, err := h.Svc.Add(c.Request.Context(), uid, req.input())
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusCreated, addr)
}

// Update PUT /api/profile/addresses/:id
func (h *AddressHandler) Update(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req addressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, "Street, city, state, zip, and country are required", validation.ToDetails(err))
		return
	}
	addr, err := h.Svc.Update(c.Request.Context(), uid, c.Param("id"), req.input())
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, addr)
}

// Delete DELETE /api/profile/addresses/:id
func (h *AddressHandler) Delete(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.Delete(c.Request.Context(), uid, c.Param("id")); err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Message(c, http.StatusOK, "Address deleted successfully")
}
