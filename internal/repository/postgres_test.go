package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"reflect"
	"testing"
	"time"

	"jobsync/internal/database"
	"jobsync/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.values) {
		return errors.New("column count mismatch")
	}
	for i, v := range r.values {
		if v == nil {
			continue
		}
		reflect.ValueOf(dest[i]).Elem().Set(reflect.ValueOf(v))
	}
	return nil
}

type fakeRows struct {
	rows []fakeRow
	pos  int
}

func (r *fakeRows) Close() {}
func (r *fakeRows) Next() bool {
	r.pos++
	return r.pos <= len(r.rows)
}
func (r *fakeRows) Scan(dest ...any) error { return r.rows[r.pos-1].Scan(dest...) }
func (r *fakeRows) Err() error             { return nil }

type fakeDB struct {
	row      fakeRow
	rows     *fakeRows
	execN    int64
	lastArgs []any
}

func (d *fakeDB) Ping(context.Context) error { return nil }
func (d *fakeDB) Close() error               { return nil }
func (d *fakeDB) Exec(_ context.Context, _ string, args ...any) (int64, error) {
	d.lastArgs = args
	return d.execN, nil
}
func (d *fakeDB) Query(_ context.Context, _ string, args ...any) (database.Rows, error) {
	d.lastArgs = args
	return d.rows, nil
}
func (d *fakeDB) QueryRow(_ context.Context, _ string, args ...any) database.Row {
	d.lastArgs = args
	return d.row
}
func (d *fakeDB) Begin(context.Context) (database.Tx, error) { return nil, errors.New("not supported") }
func (d *fakeDB) SQLDB() *sql.DB                             { return nil }

func jobRow(id uuid.UUID, title string, created time.Time) fakeRow {
	salary := 120000.0
	years := 3
	industry := "Fintech"
	return fakeRow{values: []any{
		id, (*uuid.UUID)(nil), title, "Engineering", "Berlin",
		"full-time", "desc", []string{"Go", "SQL"},
		&salary, (*float64)(nil), (*string)(nil), &industry,
		[]string{}, []string{"collaborative"},
		&years, job.StatusActive, created,
	}}
}

func TestPostgresProfileRepository_NotFound(t *testing.T) {
	db := &fakeDB{row: fakeRow{err: pgx.ErrNoRows}}
	_, err := NewPostgresProfileRepository(db).GetJobSeekerProfile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestPostgresProfileRepository_PropagatesStoreError(t *testing.T) {
	boom := errors.New("connection refused")
	db := &fakeDB{row: fakeRow{err: boom}}
	_, err := NewPostgresProfileRepository(db).GetJobSeekerProfile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrProfileNotFound)
}

func TestPostgresPreferencesRepository_NotFound(t *testing.T) {
	db := &fakeDB{row: fakeRow{err: sql.ErrNoRows}}
	_, err := NewPostgresPreferencesRepository(db).GetMatchingPreferences(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrPreferencesNotFound)
}

func TestPostgresJobRepository_GetJob(t *testing.T) {
	id := uuid.New()
	db := &fakeDB{row: jobRow(id, "Backend Engineer", time.Now())}

	j, err := NewPostgresJobRepository(db).GetJob(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, j.ID)
	assert.Equal(t, "Backend Engineer", j.Title)
	assert.Equal(t, []string{"Go", "SQL"}, j.SkillsRequired)
	require.NotNil(t, j.SalaryMin)
	assert.Equal(t, 120000.0, *j.SalaryMin)
	assert.Nil(t, j.SalaryMax)
	require.NotNil(t, j.ExperienceRequired)
	assert.Equal(t, 3, *j.ExperienceRequired)
	assert.True(t, j.IsActive())
	assert.Equal(t, []any{id}, db.lastArgs)
}

func TestPostgresJobRepository_GetJob_NotFound(t *testing.T) {
	db := &fakeDB{row: fakeRow{err: pgx.ErrNoRows}}
	_, err := NewPostgresJobRepository(db).GetJob(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestPostgresJobRepository_ListActiveJobs_KeepsOrder(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	now := time.Now()
	db := &fakeDB{rows: &fakeRows{rows: []fakeRow{
		jobRow(a, "first", now),
		jobRow(b, "second", now.Add(time.Minute)),
	}}}

	jobs, err := NewPostgresJobRepository(db).ListActiveJobs(context.Background())
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, a, jobs[0].ID)
	assert.Equal(t, b, jobs[1].ID)
	assert.Equal(t, []any{job.StatusActive}, db.lastArgs)
}

func TestPostgresApplicationRepository_SaveInsight_Missing(t *testing.T) {
	db := &fakeDB{execN: 0}
	err := NewPostgresApplicationRepository(db).SaveInsight(context.Background(), uuid.New(), json.RawMessage(`{"overall_score":90}`))
	assert.ErrorIs(t, err, ErrApplicationNotFound)
}

func TestPostgresApplicationRepository_ListPendingInsights_ClampsLimit(t *testing.T) {
	db := &fakeDB{rows: &fakeRows{}}
	_, err := NewPostgresApplicationRepository(db).ListPendingInsights(context.Background(), 5000)
	require.NoError(t, err)
	assert.Equal(t, []any{1000}, db.lastArgs)
}

func TestPostgresApplicationRepository_MarkInsightUnavailable(t *testing.T) {
	id := uuid.New()
	db := &fakeDB{execN: 1}
	require.NoError(t, NewPostgresApplicationRepository(db).MarkInsightUnavailable(context.Background(), id))
	assert.Equal(t, []any{id}, db.lastArgs)

	db.execN = 0
	err := NewPostgresApplicationRepository(db).MarkInsightUnavailable(context.Background(), id)
	assert.ErrorIs(t, err, ErrApplicationNotFound)
}
