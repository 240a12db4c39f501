package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mlaurent/userboard/internal/common"
	"github.com/mlaurent/userboard/internal/server/services"
)

// ListUsers handles GET /api/users?page&limit&search. Absent or non-numeric
// page/limit fall back to the defaults; out-of-range values are clamped by
// the service.
func (h *Handler) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	search := c.Query("search")

	result, err := h.users.List(c.Request.Context(), services.ListInput{
		Page:   page,
		Limit:  limit,
		Search: search,
	})
	if err != nil {
		h.log.Error(c.Request.Context(), "list users failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// CreateUser handles POST /api/users, the administrative creation path.
func (h *Handler) CreateUser(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	_, err := h.users.Create(c.Request.Context(), services.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Age:      req.Age,
	})
	if err != nil {
		switch {
		case errors.Is(err, common.ErrWeakPassword), errors.Is(err, common.ErrEmailTaken):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.log.Error(c.Request.Context(), "create user failed", "error", err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{"message": "server error", "error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "user created"})
}

type updateRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Age      *int    `json:"age"`
}

// UpdateUser handles PUT /api/users/:id with partial fields. The response
// carries the updated record, password excluded.
func (h *Handler) UpdateUser(c *gin.Context) {
	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := h.users.Update(c.Request.Context(), c.Param("id"), services.UpdateInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Age:      req.Age,
	})
	if err != nil {
		switch {
		case errors.Is(err, common.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser handles DELETE /api/users/:id. Deleting an identifier that does
// not exist is indistinguishable from success.
func (h *Handler) DeleteUser(c *gin.Context) {
	if err := h.users.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}
