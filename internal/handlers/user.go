package handlers

import (
	"net/http"
	"strconv"

	"leasehub-admin/internal/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetUsers returns the full customer snapshot, or one filtered page of
// it when search/page/limit parameters are present.
func (h *UserHandler) GetUsers(c *gin.Context) {
	search := c.Query("search")
	pageParam := c.Query("page")

	if search == "" && pageParam == "" {
		users, err := h.userService.ListUsers(c.Request.Context())
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"users": users, "total": len(users)})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	window, total, totalPages, err := h.userService.SearchUsers(c.Request.Context(), search, page, limit)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"users":       window,
		"total":       total,
		"totalPages":  totalPages,
		"currentPage": page,
	})
}

func (h *UserHandler) GetUserByID(c *gin.Context) {
	detail, err := h.userService.GetUserDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.userService.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}
