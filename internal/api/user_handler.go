package api

import (
	"fittrack/exercise-tracker/internal/domain"
	"fittrack/exercise-tracker/internal/metrics"
	"fittrack/exercise-tracker/internal/service"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// UserHandler holds the user service dependency.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// --- DTOs for API (Data Transfer Objects) ---

// CreateUserRequest defines the expected JSON for creating a user.
type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
}

// UserResponse is the DTO for returning user details.
type UserResponse struct {
	Username string `json:"username"`
	ID       string `json:"id"`
}

// MapUserToResponse converts a domain.User to UserResponse DTO.
func MapUserToResponse(user *domain.User) UserResponse {
	if user == nil {
		return UserResponse{}
	}
	return UserResponse{
		Username: user.Username,
		ID:       user.ID.Hex(),
	}
}

// MapUsersToResponse converts a slice of domain.User to a slice of UserResponse DTO.
func MapUsersToResponse(users []domain.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, u := range users {
		responses[i] = MapUserToResponse(&u)
	}
	return responses
}

// --- Handler Methods ---

// ListUsers handles GET /api/users.
// Returns every user as {username, id} pairs, with no filter or pagination.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, MapUsersToResponse(users))
}

// CreateUser handles POST /api/users.
// A duplicate username is rejected before anything is persisted.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req.Username)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			abortWithError(c, http.StatusBadRequest, "Username already exists.")
		} else if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, "Username is required.")
		} else {
			abortWithError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	metrics.UsersCreated.Inc()
	c.JSON(http.StatusOK, MapUserToResponse(user))
}
