package service

import (
	"fittrack/exercise-tracker/internal/domain"
	"fittrack/exercise-tracker/internal/repository"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// stubExerciseRepo records what it is asked and serves canned entries.
type stubExerciseRepo struct {
	entries    []domain.Exercise
	lastFilter repository.ExerciseFilter
	lastUserID primitive.ObjectID
}

func (r *stubExerciseRepo) Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error) {
	exercise.ID = primitive.NewObjectID()
	r.entries = append(r.entries, *exercise)
	return exercise.ID, nil
}

func (r *stubExerciseRepo) GetByUserID(ctx context.Context, userID primitive.ObjectID, filter repository.ExerciseFilter) ([]domain.Exercise, error) {
	r.lastUserID = userID
	r.lastFilter = filter
	return r.entries, nil
}

func seedUser(t *testing.T, users *stubUserRepo, name string) *domain.User {
	t.Helper()
	user := &domain.User{Username: name}
	_, err := users.Create(context.Background(), user)
	require.NoError(t, err)
	return user
}

func TestAddExercise(t *testing.T) {
	users := newStubUserRepo()
	exercises := &stubExerciseRepo{}
	svc := NewExerciseService(users, exercises)

	user := seedUser(t, users, "alice")
	date := time.Date(2023, time.January, 1, 15, 4, 5, 0, time.UTC)

	ex, err := svc.AddExercise(context.Background(), user.ID, "run", 30, date)
	require.NoError(t, err)

	assert.Equal(t, user.ID, ex.UserID)
	assert.Equal(t, "run", ex.Description)
	assert.Equal(t, 30, ex.Duration)
	assert.NotEqual(t, primitive.NilObjectID, ex.ID)
}

func TestAddExerciseTruncatesDate(t *testing.T) {
	users := newStubUserRepo()
	svc := NewExerciseService(users, &stubExerciseRepo{})

	user := seedUser(t, users, "alice")
	date := time.Date(2023, time.January, 1, 15, 4, 5, 123, time.UTC)

	ex, err := svc.AddExercise(context.Background(), user.ID, "run", 30, date)
	require.NoError(t, err)

	want := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, ex.Date.Equal(want), "got %v, want midnight UTC", ex.Date)
}

func TestAddExerciseUnknownUser(t *testing.T) {
	svc := NewExerciseService(newStubUserRepo(), &stubExerciseRepo{})

	_, err := svc.AddExercise(context.Background(), primitive.NewObjectID(), "run", 30, time.Now())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAddExerciseEmptyDescription(t *testing.T) {
	users := newStubUserRepo()
	svc := NewExerciseService(users, &stubExerciseRepo{})

	user := seedUser(t, users, "alice")

	_, err := svc.AddExercise(context.Background(), user.ID, "", 30, time.Now())
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestGetLogPassesFilter(t *testing.T) {
	users := newStubUserRepo()
	exercises := &stubExerciseRepo{
		entries: []domain.Exercise{
			{Description: "run", Duration: 30},
			{Description: "swim", Duration: 45},
		},
	}
	svc := NewExerciseService(users, exercises)

	user := seedUser(t, users, "alice")

	from := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2023, time.January, 31, 0, 0, 0, 0, time.UTC)
	filter := repository.ExerciseFilter{From: &from, To: &to, Limit: 5}

	log, err := svc.GetLog(context.Background(), user.ID, filter)
	require.NoError(t, err)

	assert.Len(t, log, 2)
	assert.Equal(t, user.ID, exercises.lastUserID)
	assert.Equal(t, filter, exercises.lastFilter)
}

func TestGetLogUnknownUser(t *testing.T) {
	svc := NewExerciseService(newStubUserRepo(), &stubExerciseRepo{})

	_, err := svc.GetLog(context.Background(), primitive.NewObjectID(), repository.ExerciseFilter{})
	assert.ErrorIs(t, err, ErrUserNotFound)
}
