package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"jobsync/internal/domain/application"
	"jobsync/internal/domain/job"
	"jobsync/internal/domain/matching"
	"jobsync/internal/domain/seeker"
	"jobsync/internal/logger"
	"jobsync/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const defaultMatchWorkers = 8

type MatchingUsecase interface {
	RankJobsForSeeker(ctx context.Context, userID uuid.UUID) ([]matching.JobMatch, error)
	MatchJob(ctx context.Context, userID, jobID uuid.UUID) (*matching.JobMatch, error)
	ApplicationInsight(ctx context.Context, jobID, applicantID uuid.UUID) (*matching.Insight, error)
	RecordApplicationInsight(ctx context.Context, applicationID uuid.UUID) (*matching.Insight, error)
	RefreshPendingInsights(ctx context.Context, limit int) (int, error)
}

// InsightNotifier is told about every stored application insight along with
// the job it was scored against.
type InsightNotifier interface {
	ApplicationInsightRecorded(j job.Job, app application.Application, insight matching.Insight)
}

type MatchingDeps struct {
	Store        repository.ProfileStore
	Applications repository.ApplicationRepository
	Engine       *matching.Engine
	Cache        MatchCache
	CacheTTL     time.Duration
	Notifier     InsightNotifier
	Logger       *zap.Logger
	Workers      int
}

type Matching struct {
	store    repository.ProfileStore
	apps     repository.ApplicationRepository
	engine   *matching.Engine
	cache    MatchCache
	cacheTTL time.Duration
	notifier InsightNotifier
	logger   *zap.Logger
	workers  int
}

func NewMatchingUsecase(deps MatchingDeps) *Matching {
	engine := deps.Engine
	if engine == nil {
		engine = matching.NewEngine(matching.DefaultConfig())
	}
	workers := deps.Workers
	if workers <= 0 {
		workers = defaultMatchWorkers
	}
	return &Matching{
		store:    deps.Store,
		apps:     deps.Applications,
		engine:   engine,
		cache:    deps.Cache,
		cacheTTL: deps.CacheTTL,
		notifier: deps.Notifier,
		logger:   logger.OrNop(deps.Logger),
		workers:  workers,
	}
}

// RankJobsForSeeker scores every active job against the seeker's profile and
// returns the accepted matches, best first. A seeker without a profile gets
// an empty list.
func (u *Matching) RankJobsForSeeker(ctx context.Context, userID uuid.UUID) ([]matching.JobMatch, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}

	cacheKey := MatchesCacheKey(userID)
	if u.cache != nil {
		var cached []matching.JobMatch
		hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
		if err != nil {
			u.logger.Warn("match cache read failed", zap.String("key", cacheKey), zap.Error(err))
		} else if hit && cached != nil {
			return cached, nil
		}
	}

	profile, weights, ok, err := u.loadSeeker(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []matching.JobMatch{}, nil
	}

	jobs, err := u.store.ListActiveJobs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active jobs: %w", err)
	}

	scored, err := u.scoreAll(ctx, profile, jobs, weights)
	if err != nil {
		return nil, err
	}

	out := make([]matching.JobMatch, 0, len(scored))
	for _, m := range scored {
		if u.engine.Accepts(m) {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchScore > out[j].MatchScore
	})

	u.logger.Debug("ranked jobs",
		zap.String("user_id", userID.String()),
		zap.Int("candidates", len(jobs)),
		zap.Int("accepted", len(out)),
	)

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, cacheKey, out, u.cacheTTL); err != nil {
			u.logger.Warn("match cache write failed", zap.String("key", cacheKey), zap.Error(err))
		}
	}

	return out, nil
}

// MatchJob scores a single job for the seeker without applying the
// acceptance threshold. It returns nil when the profile or job is missing.
func (u *Matching) MatchJob(ctx context.Context, userID, jobID uuid.UUID) (*matching.JobMatch, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	if jobID == uuid.Nil {
		return nil, ErrInvalidInput
	}

	j, ok, err := u.loadJob(ctx, jobID)
	if err != nil || !ok {
		return nil, err
	}

	profile, weights, ok, err := u.loadSeeker(ctx, userID)
	if err != nil || !ok {
		return nil, err
	}

	m := u.engine.Match(profile, j, weights)
	return &m, nil
}

// ApplicationInsight computes the recruiter-facing view of how well an
// applicant fits a job. It returns nil when either side is missing.
func (u *Matching) ApplicationInsight(ctx context.Context, jobID, applicantID uuid.UUID) (*matching.Insight, error) {
	insight, _, err := u.insightFor(ctx, jobID, applicantID)
	return insight, err
}

func (u *Matching) insightFor(ctx context.Context, jobID, applicantID uuid.UUID) (*matching.Insight, job.Job, error) {
	if jobID == uuid.Nil || applicantID == uuid.Nil {
		return nil, job.Job{}, ErrInvalidInput
	}

	j, ok, err := u.loadJob(ctx, jobID)
	if err != nil || !ok {
		return nil, job.Job{}, err
	}

	profile, weights, ok, err := u.loadSeeker(ctx, applicantID)
	if err != nil || !ok {
		return nil, job.Job{}, err
	}

	insight := u.engine.Match(profile, j, weights).Insight()
	return &insight, j, nil
}

// RecordApplicationInsight computes the insight for an application, stores it
// on the application and notifies listeners.
func (u *Matching) RecordApplicationInsight(ctx context.Context, applicationID uuid.UUID) (*matching.Insight, error) {
	if applicationID == uuid.Nil {
		return nil, ErrInvalidInput
	}
	if u.apps == nil {
		return nil, ErrInternal
	}

	app, err := u.apps.GetApplication(ctx, applicationID)
	if err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("get application: %w", err)
	}

	return u.record(ctx, app)
}

// RefreshPendingInsights records insights for up to limit applications that
// have none yet and returns how many were stored. Applications whose insight
// cannot be computed are marked so later cycles reach newer ones first.
func (u *Matching) RefreshPendingInsights(ctx context.Context, limit int) (int, error) {
	if u.apps == nil {
		return 0, ErrInternal
	}

	pending, err := u.apps.ListPendingInsights(ctx, limit)
	if err != nil {
		return 0, fmt.Errorf("list pending insights: %w", err)
	}

	stored := 0
	for _, app := range pending {
		if err := ctx.Err(); err != nil {
			return stored, err
		}
		insight, err := u.record(ctx, app)
		if err != nil {
			return stored, err
		}
		if insight != nil {
			stored++
		}
	}

	if len(pending) > 0 {
		u.logger.Info("insights refreshed", zap.Int("pending", len(pending)), zap.Int("stored", stored))
	}
	return stored, nil
}

// InvalidateRankings drops every cached ranking.
func (u *Matching) InvalidateRankings(ctx context.Context) error {
	if u.cache == nil {
		return nil
	}
	return u.cache.DeleteByPattern(ctx, MatchesCachePattern)
}

func (u *Matching) record(ctx context.Context, app application.Application) (*matching.Insight, error) {
	insight, j, err := u.insightFor(ctx, app.JobID, app.ApplicantID)
	if err != nil {
		return nil, err
	}
	if insight == nil {
		u.logger.Debug("insight unavailable",
			zap.String("application_id", app.ID.String()),
			zap.String("job_id", app.JobID.String()),
		)
		if err := u.apps.MarkInsightUnavailable(ctx, app.ID); err != nil {
			if errors.Is(err, repository.ErrApplicationNotFound) {
				return nil, ErrApplicationNotFound
			}
			return nil, fmt.Errorf("mark insight unavailable: %w", err)
		}
		return nil, nil
	}

	b, err := json.Marshal(insight)
	if err != nil {
		return nil, fmt.Errorf("encode insight: %w", err)
	}
	if err := u.apps.SaveInsight(ctx, app.ID, b); err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("save insight: %w", err)
	}

	if u.notifier != nil {
		u.notifier.ApplicationInsightRecorded(j, app, *insight)
	}
	return insight, nil
}

func (u *Matching) loadSeeker(ctx context.Context, userID uuid.UUID) (seeker.Profile, seeker.Weights, bool, error) {
	profile, err := u.store.GetJobSeekerProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return seeker.Profile{}, seeker.Weights{}, false, nil
		}
		return seeker.Profile{}, seeker.Weights{}, false, fmt.Errorf("get profile: %w", err)
	}

	prefs, err := u.store.GetMatchingPreferences(ctx, profile.ID)
	if err != nil {
		if errors.Is(err, repository.ErrPreferencesNotFound) {
			return profile, seeker.DefaultWeights(), true, nil
		}
		return seeker.Profile{}, seeker.Weights{}, false, fmt.Errorf("get preferences: %w", err)
	}
	return profile, prefs.Resolve(), true, nil
}

func (u *Matching) loadJob(ctx context.Context, jobID uuid.UUID) (job.Job, bool, error) {
	j, err := u.store.GetJob(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return job.Job{}, false, nil
		}
		return job.Job{}, false, fmt.Errorf("get job: %w", err)
	}
	return j, true, nil
}

func (u *Matching) scoreAll(ctx context.Context, p seeker.Profile, jobs []job.Job, w seeker.Weights) ([]matching.JobMatch, error) {
	out := make([]matching.JobMatch, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.workers)
	for i := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = u.engine.Match(p, jobs[i], w)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
