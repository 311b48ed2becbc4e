package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pureherbal/storefront-api/internal/application"
	"github.com/pureherbal/storefront-api/internal/domain/entity"
	"github.com/pureherbal/storefront-api/pkg/response"
)

// profileView is the wire shape for a user: everything but the password hash.
type profileView struct {
	ID                 string           `json:"id"`
	Name               string           `json:"name"`
	Email              string           `json:"email"`
	Addresses          []entity.Address `json:"addresses"`
	AvatarURL          string           `json:"avatarUrl"`
	ProfilePreferences map[string]any   `json:"profilePreferences"`
	Phone              string           `json:"phone"`
}

func toProfileView(u *entity.User) profileView {
	addrs := u.Addresses
	if addrs == nil {
		addrs = []entity.Address{}
	}
	prefs := u.Preferences
	if prefs == nil {
		prefs = map[string]any{}
	}
	return profileView{
		ID:                 u.ID,
		Name:               u.Name,
		Email:              u.Email,
		Addresses:          addrs,
		AvatarURL:          u.AvatarURL,
		ProfilePreferences: prefs,
		Phone:              u.Phone,
	}
}

// writeServiceError maps service errors onto the contract's status codes.
// Anything unrecognized collapses into a generic 500 with no detail leaked.
func writeServiceError(c *gin.Context, logger *logrus.Logger, err error) {
	var verr *application.ValidationError
	switch {
	case errors.As(err, &verr):
		response.Message(c, http.StatusBadRequest, verr.Msg)
	case errors.Is(err, application.ErrEmailTaken):
		response.Message(c, http.StatusBadRequest, "User already exists")
	case errors.Is(err, application.ErrPasswordTooShort):
		response.Message(c, http.StatusBadRequest, "New password must be at least 6 characters long")
	case errors.Is(err, application.ErrWrongPassword):
		response.Message(c, http.StatusBadRequest, "Current password is incorrect")
	case errors.Is(err, application.ErrInvalidCredentials):
		response.Message(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, application.ErrUserNotFound):
		response.Message(c, http.StatusNotFound, "User not found")
	case errors.Is(err, application.ErrAddressNotFound):
		response.Message(c, http.StatusNotFound, "Address not found")
	default:
		if logger != nil {
			logger.WithError(err).WithField("path", c.FullPath()).Error("request failed")
		}
		response.ServerError(c)
	}
}
