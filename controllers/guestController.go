package controllers

import (
	"errors"
	"net/http"

	"restaurant-api/middlewares"
	"restaurant-api/services"
	"restaurant-api/utils/response"

	"github.com/gin-gonic/gin"
)

type GuestController struct {
	guests services.GuestService
}

func NewGuestController(guests services.GuestService) *GuestController {
	return &GuestController{guests: guests}
}

// CreateSession issues a guest token for the calling device.
func (ctl *GuestController) CreateSession(c *gin.Context) {
	session, err := ctl.guests.CreateSession(c.Request.Context(), c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		_ = c.Error(err)
		response.Fail(c, http.StatusInternalServerError, "Failed to create guest session", err)
		return
	}
	response.Message(c, http.StatusOK, "Guest session created", session)
}

func (ctl *GuestController) RefreshSession(c *gin.Context) {
	claims, ok := middlewares.GuestClaims(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, "Guest token required", nil)
		return
	}
	session, err := ctl.guests.Refresh(c.Request.Context(), claims)
	if err != nil {
		ctl.fail(c, "Failed to refresh guest session", err)
		return
	}
	response.Message(c, http.StatusOK, "Guest session refreshed", session)
}

func (ctl *GuestController) GetSession(c *gin.Context) {
	claims, ok := middlewares.GuestClaims(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, "Guest token required", nil)
		return
	}
	info, err := ctl.guests.Info(c.Request.Context(), claims)
	if err != nil {
		ctl.fail(c, "Failed to fetch guest session", err)
		return
	}
	response.OK(c, http.StatusOK, info, nil)
}

func (ctl *GuestController) fail(c *gin.Context, message string, err error) {
	if errors.Is(err, services.ErrInvalidGuestToken) {
		response.Fail(c, http.StatusUnauthorized, "Guest session no longer exists", nil)
		return
	}
	_ = c.Error(err)
	response.Fail(c, http.StatusInternalServerError, message, err)
}
