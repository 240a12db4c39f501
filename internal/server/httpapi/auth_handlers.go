package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mlaurent/userboard/internal/common"
	"github.com/mlaurent/userboard/internal/server/models"
	"github.com/mlaurent/userboard/internal/server/services"
	"github.com/mlaurent/userboard/internal/server/web"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Age      *int   `json:"age"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles POST /api/auth/register. No token is issued on
// registration; login is a separate step.
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	_, err := h.auth.Register(c.Request.Context(), services.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Age:      req.Age,
	})
	if err != nil {
		switch {
		case errors.Is(err, common.ErrEmailTaken), errors.Is(err, common.ErrWeakPassword):
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		default:
			h.log.Error(c.Request.Context(), "registration failed", "error", err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "registration successful"})
}

// Login handles POST /api/auth/login and returns a bearer token.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrUserNotFound), errors.Is(err, common.ErrInvalidCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		default:
			h.log.Error(c.Request.Context(), "login failed", "error", err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Me handles GET /api/auth/me behind RequireAuth.
func (h *Handler) Me(c *gin.Context) {
	user := c.MustGet(userKey).(*models.User)
	c.JSON(http.StatusOK, user)
}

// Health is the liveness probe.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Shell serves the embedded single-page client.
func (h *Handler) Shell(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", web.Index())
}

// UIConfig serves the declarative toast-notification options the shell
// mounts with.
func (h *Handler) UIConfig(c *gin.Context) {
	c.JSON(http.StatusOK, web.DefaultToastOptions())
}
