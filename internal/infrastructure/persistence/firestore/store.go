package firestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"jobsync/internal/domain/application"
	"jobsync/internal/domain/job"
	"jobsync/internal/domain/seeker"
	"jobsync/internal/repository"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	defaultPendingLimit = 100
	maxPendingLimit     = 1000
)

// Store reads matching inputs from Firestore. It satisfies
// repository.ProfileStore and repository.ApplicationRepository.
type Store struct {
	client *firestore.Client
}

func NewStore(ctx context.Context, projectID string) (*Store, error) {
	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}
	return &Store{client: client}, nil
}

func NewStoreWithClient(client *firestore.Client) *Store {
	return &Store{client: client}
}

func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) GetJobSeekerProfile(ctx context.Context, userID uuid.UUID) (seeker.Profile, error) {
	iter := s.client.Collection(profilesCollection).Where("user_id", "==", userID.String()).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if errors.Is(err, iterator.Done) {
		return seeker.Profile{}, repository.ErrProfileNotFound
	}
	if err != nil {
		return seeker.Profile{}, fmt.Errorf("failed to query profile: %w", err)
	}

	var d profileDoc
	if err := doc.DataTo(&d); err != nil {
		return seeker.Profile{}, fmt.Errorf("failed to parse profile data: %w", err)
	}
	return d.toDomain(doc.Ref.ID)
}

func (s *Store) GetMatchingPreferences(ctx context.Context, jobSeekerID uuid.UUID) (seeker.Preferences, error) {
	iter := s.client.Collection(preferencesCollection).Where("job_seeker_id", "==", jobSeekerID.String()).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if errors.Is(err, iterator.Done) {
		return seeker.Preferences{}, repository.ErrPreferencesNotFound
	}
	if err != nil {
		return seeker.Preferences{}, fmt.Errorf("failed to query preferences: %w", err)
	}

	var d preferencesDoc
	if err := doc.DataTo(&d); err != nil {
		return seeker.Preferences{}, fmt.Errorf("failed to parse preferences data: %w", err)
	}
	return d.toDomain(doc.Ref.ID)
}

func (s *Store) ListActiveJobs(ctx context.Context) ([]job.Job, error) {
	iter := s.client.Collection(jobsCollection).
		Where("status", "==", job.StatusActive).
		OrderBy("created_at", firestore.Asc).
		OrderBy(firestore.DocumentID, firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	out := make([]job.Job, 0, 64)
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list jobs: %w", err)
		}
		var d jobDoc
		if err := doc.DataTo(&d); err != nil {
			return nil, fmt.Errorf("failed to parse job data: %w", err)
		}
		j, err := d.toDomain(doc.Ref.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, nil
}

func (s *Store) GetJob(ctx context.Context, jobID uuid.UUID) (job.Job, error) {
	doc, err := s.client.Collection(jobsCollection).Doc(jobID.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return job.Job{}, repository.ErrJobNotFound
		}
		return job.Job{}, fmt.Errorf("failed to get job: %w", err)
	}

	var d jobDoc
	if err := doc.DataTo(&d); err != nil {
		return job.Job{}, fmt.Errorf("failed to parse job data: %w", err)
	}
	return d.toDomain(doc.Ref.ID)
}

func (s *Store) GetApplication(ctx context.Context, id uuid.UUID) (application.Application, error) {
	doc, err := s.client.Collection(applicationsCollection).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return application.Application{}, repository.ErrApplicationNotFound
		}
		return application.Application{}, fmt.Errorf("failed to get application: %w", err)
	}

	var d applicationDoc
	if err := doc.DataTo(&d); err != nil {
		return application.Application{}, fmt.Errorf("failed to parse application data: %w", err)
	}
	return d.toDomain(doc.Ref.ID)
}

func (s *Store) ListPendingInsights(ctx context.Context, limit int) ([]application.Application, error) {
	limit = clampPendingLimit(limit)

	iter := s.client.Collection(applicationsCollection).
		Where("application_insights", "==", nil).
		OrderBy("insight_checked_at", firestore.Asc).
		OrderBy(firestore.DocumentID, firestore.Asc).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	out := make([]application.Application, 0, limit)
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list pending applications: %w", err)
		}
		var d applicationDoc
		if err := doc.DataTo(&d); err != nil {
			return nil, fmt.Errorf("failed to parse application data: %w", err)
		}
		a, err := d.toDomain(doc.Ref.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func (s *Store) SaveInsight(ctx context.Context, id uuid.UUID, insight json.RawMessage) error {
	_, err := s.client.Collection(applicationsCollection).Doc(id.String()).Update(ctx, []firestore.Update{
		{Path: "application_insights", Value: string(insight)},
		{Path: "insight_checked_at", Value: nil},
		{Path: "updated_at", Value: time.Now().UTC()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrApplicationNotFound
		}
		return fmt.Errorf("failed to save insight: %w", err)
	}
	return nil
}

func (s *Store) MarkInsightUnavailable(ctx context.Context, id uuid.UUID) error {
	_, err := s.client.Collection(applicationsCollection).Doc(id.String()).Update(ctx, []firestore.Update{
		{Path: "insight_checked_at", Value: time.Now().UTC()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrApplicationNotFound
		}
		return fmt.Errorf("failed to mark insight unavailable: %w", err)
	}
	return nil
}

func clampPendingLimit(limit int) int {
	if limit <= 0 {
		return defaultPendingLimit
	}
	if limit > maxPendingLimit {
		return maxPendingLimit
	}
	return limit
}
