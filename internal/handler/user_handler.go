package handler

import (
	"errors"
	"net/http"

	"user_dashboard/internal/model"
	"user_dashboard/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler handles user CRUD and dashboard requests
type UserHandler struct {
	service service.UserService
	logger  *zap.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(s service.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{service: s, logger: logger}
}

// Root is the plain liveness endpoint.
func (h *UserHandler) Root(c *gin.Context) {
	c.String(http.StatusOK, "Server is running!")
}

// Dashboard renders the list view with all users.
func (h *UserHandler) Dashboard(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list users for dashboard", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}
	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Admin":        "Admin Dashboard",
		"Users":        users,
		"User":         nil,
		"ErrorMessage": nil,
	})
}

// EditUser renders the edit view for one user, 404 when the id is unknown.
func (h *UserHandler) EditUser(c *gin.Context) {
	user, err := h.service.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.String(http.StatusNotFound, "User not found!")
			return
		}
		h.logger.Error("failed to load user for edit view", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user"})
		return
	}

	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list users for edit view", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}
	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Admin":        "Edit User",
		"Users":        users,
		"User":         user,
		"ErrorMessage": nil,
	})
}

// AddUser creates a user; duplicate emails get a distinct 409.
func (h *UserHandler) AddUser(c *gin.Context) {
	var req model.CreateUserRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	_, err := h.service.CreateUser(c.Request.Context(), *req.Name, *req.Email, *req.Phone, *req.Address)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateUser) {
			c.JSON(http.StatusConflict, gin.H{"error": "User already exists!"})
			return
		}
		h.logger.Error("failed to create user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error!"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User added successfully!"})
}

// UpdateUser overwrites all four fields and redirects back to the dashboard.
// Unlike a silent no-op, an unknown id is reported as 404.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req model.UpdateUserRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	err := h.service.UpdateUser(c.Request.Context(), c.Param("id"), *req.Name, *req.Email, *req.Phone, *req.Address)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found!"})
			return
		}
		h.logger.Error("failed to update user", zap.Error(err), zap.String("user_id", c.Param("id")))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error!"})
		return
	}

	c.Redirect(http.StatusFound, "/dashboard")
}

// RegisterUserRoutes registers all user and dashboard routes
func (h *UserHandler) RegisterUserRoutes(r *gin.Engine) {
	r.GET("/", h.Root)
	r.GET("/dashboard", h.Dashboard)
	r.GET("/edit-user/:id", h.EditUser)
	r.POST("/add-user", h.AddUser)
	r.POST("/update-user/:id", h.UpdateUser)
}
