package api

import (
	"fittrack/exercise-tracker/internal/domain"
	"fittrack/exercise-tracker/internal/metrics"
	"fittrack/exercise-tracker/internal/repository"
	"fittrack/exercise-tracker/internal/service"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExerciseHandler holds the service dependencies for exercise endpoints.
type ExerciseHandler struct {
	userService     service.UserService
	exerciseService service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(userService service.UserService, exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{
		userService:     userService,
		exerciseService: exerciseService,
	}
}

// --- DTOs for API (Data Transfer Objects) ---

// jsonString accepts either a JSON string or a bare number, so clients that
// send {"duration": 30} are treated the same as {"duration": "30"}.
type jsonString string

func (s *jsonString) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = jsonString(str)
		return nil
	}
	*s = jsonString(data)
	return nil
}

// AddExerciseRequest defines the expected JSON for recording an exercise.
// Field-level checks run after the owning user has been resolved, so none of
// the fields carry binding tags.
type AddExerciseRequest struct {
	Description string     `json:"description"`
	Duration    jsonString `json:"duration"`
	Date        string     `json:"date"`
}

// ExerciseResponse is the DTO returned after recording an exercise.
// ID is the owning user's id, not the entry's.
type ExerciseResponse struct {
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
	ID          string `json:"id"`
}

// LogEntry is one projected exercise entry in a log response. The entry's
// own identifier is deliberately omitted.
type LogEntry struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// LogResponse is the DTO for a user's exercise log.
type LogResponse struct {
	ID       string     `json:"id"`
	Username string     `json:"username"`
	Count    int        `json:"count"`
	Log      []LogEntry `json:"log"`
}

// MapExercisesToLog converts domain exercises to projected log entries.
func MapExercisesToLog(exercises []domain.Exercise) []LogEntry {
	entries := make([]LogEntry, len(exercises))
	for i, ex := range exercises {
		entries[i] = LogEntry{
			Description: ex.Description,
			Duration:    ex.Duration,
			Date:        formatDisplayDate(ex.Date),
		}
	}
	return entries
}

// --- Handler Methods ---

// AddExercise handles POST /api/users/:id/exercises.
// Validation order: resolve the user, then duration, then date. A malformed
// user id resolves to nothing and is reported the same as an unknown one.
func (h *ExerciseHandler) AddExercise(c *gin.Context) {
	var req AddExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusNotFound, "User not found")
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, "User not found")
		} else {
			abortWithError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	duration, err := strconv.Atoi(string(req.Duration))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid duration")
		return
	}

	date := time.Now().UTC()
	if req.Date != "" {
		date, err = parseInputDate(req.Date)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid date")
			return
		}
	}

	exercise, err := h.exerciseService.AddExercise(c.Request.Context(), user.ID, req.Description, duration, date)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, "User not found")
		} else if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, "Description is required.")
		} else {
			abortWithError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	metrics.ExercisesCreated.Inc()
	c.JSON(http.StatusOK, ExerciseResponse{
		Username:    user.Username,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        formatDisplayDate(exercise.Date),
		ID:          user.ID.Hex(),
	})
}

// GetLog handles GET /api/users/:id/logs.
// from/to bound the entry date inclusively; limit caps the result count.
// Unparseable from/to/limit values are ignored rather than rejected,
// matching the historical behavior of this endpoint.
func (h *ExerciseHandler) GetLog(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusNotFound, "User not found")
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, "User not found")
		} else {
			abortWithError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	var filter repository.ExerciseFilter
	if from, err := parseInputDate(c.Query("from")); err == nil {
		filter.From = &from
	}
	if to, err := parseInputDate(c.Query("to")); err == nil {
		filter.To = &to
	}
	if limit, err := strconv.ParseInt(c.Query("limit"), 10, 64); err == nil && limit > 0 {
		filter.Limit = limit
	}

	exercises, err := h.exerciseService.GetLog(c.Request.Context(), user.ID, filter)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, "User not found")
		} else {
			abortWithError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, LogResponse{
		ID:       user.ID.Hex(),
		Username: user.Username,
		Count:    len(exercises),
		Log:      MapExercisesToLog(exercises),
	})
}
