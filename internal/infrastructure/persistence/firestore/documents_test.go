package firestore

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileDocToDomain(t *testing.T) {
	id, userID := uuid.New(), uuid.New()
	years := 4
	salary := 90000.0

	p, err := profileDoc{
		UserID:          userID.String(),
		DesiredLocation: []string{"Berlin"},
		SalaryMin:       &salary,
		YearsExperience: &years,
	}.toDomain(id.String())
	require.NoError(t, err)

	assert.Equal(t, id, p.ID)
	assert.Equal(t, userID, p.UserID)
	assert.Equal(t, []string{"Berlin"}, p.DesiredLocation)
	assert.NotNil(t, p.TechnicalSkills)
	assert.Empty(t, p.TechnicalSkills)
	assert.Nil(t, p.SalaryMax)
	assert.Equal(t, 90000.0, *p.SalaryMin)

	_, err = profileDoc{UserID: "nope"}.toDomain(id.String())
	assert.Error(t, err)
}

func TestJobDocToDomain(t *testing.T) {
	id := uuid.New()
	recruiter := uuid.New().String()
	created := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	j, err := jobDoc{
		RecruiterID: &recruiter,
		Title:       "Backend Engineer",
		Status:      "active",
		CreatedAt:   created,
	}.toDomain(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, j.ID)
	require.NotNil(t, j.RecruiterID)
	assert.Equal(t, recruiter, j.RecruiterID.String())
	assert.True(t, j.IsActive())
	assert.Equal(t, created, j.CreatedAt)
	assert.NotNil(t, j.SkillsRequired)

	_, err = jobDoc{}.toDomain("not-a-uuid")
	assert.Error(t, err)
}

func TestApplicationDocToDomain(t *testing.T) {
	id, jobID, applicantID := uuid.New(), uuid.New(), uuid.New()

	pending, err := applicationDoc{JobID: jobID.String(), ApplicantID: applicantID.String()}.toDomain(id.String())
	require.NoError(t, err)
	assert.False(t, pending.HasInsights())
	assert.Nil(t, pending.InsightCheckedAt)

	checked := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	skipped, err := applicationDoc{JobID: jobID.String(), ApplicantID: applicantID.String(), InsightCheckedAt: &checked}.toDomain(id.String())
	require.NoError(t, err)
	require.NotNil(t, skipped.InsightCheckedAt)
	assert.True(t, checked.Equal(*skipped.InsightCheckedAt))

	stored := `{"overall_score":90}`
	done, err := applicationDoc{JobID: jobID.String(), ApplicantID: applicantID.String(), Insights: &stored}.toDomain(id.String())
	require.NoError(t, err)
	assert.True(t, done.HasInsights())
	assert.JSONEq(t, stored, string(done.Insights))
}

func TestClampPendingLimit(t *testing.T) {
	assert.Equal(t, defaultPendingLimit, clampPendingLimit(0))
	assert.Equal(t, 5, clampPendingLimit(5))
	assert.Equal(t, maxPendingLimit, clampPendingLimit(5000))
}
