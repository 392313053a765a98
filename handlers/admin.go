package handlers

import (
	"net/http"

	"doctorsportal/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler encapsulates admin role lookups and grants.
type AdminHandler struct {
	UserSvc user.UserService
	Logger  *zap.Logger
}

func NewAdminHandler(svc user.UserService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{UserSvc: svc, Logger: logger}
}

// CheckAdmin handles GET /admin/:email.
func (h *AdminHandler) CheckAdmin(c *gin.Context) {
	isAdmin, err := h.UserSvc.IsAdmin(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, err, "failed to check admin role")
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": isAdmin})
}

// MakeAdmin handles PUT /user/admin/:email. The admin permission is enforced by middleware.
func (h *AdminHandler) MakeAdmin(c *gin.Context) {
	result, err := h.UserSvc.MakeAdmin(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, err, "failed to grant admin role")
		return
	}
	c.JSON(http.StatusOK, result)
}
