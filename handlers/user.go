package handlers

import (
	"errors"
	"io"
	"net/http"

	"doctorsportal/models"
	"doctorsportal/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	UserSvc user.UserService
	Logger  *zap.Logger
}

func NewUserHandler(svc user.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{UserSvc: svc, Logger: logger}
}

// UpsertUser handles PUT /user/:email. An empty body is allowed.
func (h *UserHandler) UpsertUser(c *gin.Context) {
	var profile models.UserProfile
	if err := c.ShouldBindJSON(&profile); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid user profile", "details": err.Error()})
		return
	}

	res, err := h.UserSvc.UpsertUser(c.Request.Context(), c.Param("email"), profile)
	if err != nil {
		respondError(c, err, "failed to save user")
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetAllUsers handles GET /user.
func (h *UserHandler) GetAllUsers(c *gin.Context) {
	users, err := h.UserSvc.GetAllUsers(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to fetch users")
		return
	}
	c.JSON(http.StatusOK, users)
}
