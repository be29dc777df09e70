package service

import (
	"fittrack/exercise-tracker/internal/domain"
	"fittrack/exercise-tracker/internal/repository"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExerciseService records exercise entries and answers log queries.
type ExerciseService interface {
	AddExercise(ctx context.Context, userID primitive.ObjectID, description string, duration int, date time.Time) (*domain.Exercise, error)
	GetLog(ctx context.Context, userID primitive.ObjectID, filter repository.ExerciseFilter) ([]domain.Exercise, error)
}

type exerciseService struct {
	userRepo     repository.UserRepository
	exerciseRepo repository.ExerciseRepository
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(userRepo repository.UserRepository, exerciseRepo repository.ExerciseRepository) ExerciseService {
	return &exerciseService{
		userRepo:     userRepo,
		exerciseRepo: exerciseRepo,
	}
}

// AddExercise persists a new exercise entry for an existing user.
// The owning user must exist at creation time; dates are stored at
// date-only precision so that range filters compare whole days.
func (s *exerciseService) AddExercise(ctx context.Context, userID primitive.ObjectID, description string, duration int, date time.Time) (*domain.Exercise, error) {
	if description == "" {
		return nil, ErrValidationFailed
	}

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	exercise := &domain.Exercise{
		UserID:      userID,
		Description: description,
		Duration:    duration,
		Date:        date.UTC().Truncate(24 * time.Hour),
	}

	exerciseID, err := s.exerciseRepo.Create(ctx, exercise)
	if err != nil {
		return nil, err
	}
	exercise.ID = exerciseID

	return exercise, nil
}

// GetLog returns the filtered exercise entries for an existing user.
func (s *exerciseService) GetLog(ctx context.Context, userID primitive.ObjectID, filter repository.ExerciseFilter) ([]domain.Exercise, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return s.exerciseRepo.GetByUserID(ctx, userID, filter)
}
