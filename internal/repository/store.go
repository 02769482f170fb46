package repository

import (
	"context"
	"encoding/json"

	"jobsync/internal/database"
	"jobsync/internal/domain/application"
	"jobsync/internal/domain/job"
	"jobsync/internal/domain/seeker"

	"github.com/google/uuid"
)

type ProfileRepository interface {
	GetJobSeekerProfile(ctx context.Context, userID uuid.UUID) (seeker.Profile, error)
}

type PreferencesRepository interface {
	GetMatchingPreferences(ctx context.Context, jobSeekerID uuid.UUID) (seeker.Preferences, error)
}

type JobRepository interface {
	ListActiveJobs(ctx context.Context) ([]job.Job, error)
	GetJob(ctx context.Context, jobID uuid.UUID) (job.Job, error)
}

// ProfileStore is everything the matching service reads.
type ProfileStore interface {
	ProfileRepository
	PreferencesRepository
	JobRepository
}

type ApplicationRepository interface {
	GetApplication(ctx context.Context, id uuid.UUID) (application.Application, error)
	ListPendingInsights(ctx context.Context, limit int) ([]application.Application, error)
	SaveInsight(ctx context.Context, id uuid.UUID, insight json.RawMessage) error
	MarkInsightUnavailable(ctx context.Context, id uuid.UUID) error
}

type PostgresStore struct {
	*PostgresProfileRepository
	*PostgresPreferencesRepository
	*PostgresJobRepository
}

func NewPostgresStore(db database.DB) *PostgresStore {
	return &PostgresStore{
		PostgresProfileRepository:     NewPostgresProfileRepository(db),
		PostgresPreferencesRepository: NewPostgresPreferencesRepository(db),
		PostgresJobRepository:         NewPostgresJobRepository(db),
	}
}
