package matching

import (
	"math"
	"testing"

	"jobsync/internal/domain/job"
	"jobsync/internal/domain/seeker"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(v string) *string { return &v }

func TestAggregate_WeightedMean(t *testing.T) {
	e := NewEngine(DefaultConfig())
	s := Scores{Salary: 1.0, Location: 0.5, Skills: 0.8, Culture: 0.6, JobType: 0.5, Experience: 1.0, Industry: 0.5}
	w := seeker.Weights{Salary: 1, Location: 1, CompanyCulture: 1, WorkLifeBalance: 1, RoleResponsibilities: 1}

	want := (1.0 + 0.5 + 0.8 + 0.6 + 0.5 + 5*1.0 + 3*0.5) / (5 + 5 + 3)
	assert.Equal(t, int(math.Round(want*100)), Aggregate(e.Weigh(s, w)))
	assert.Equal(t, 76, Aggregate(e.Weigh(s, w)))
}

func TestAggregate_ZeroWeights(t *testing.T) {
	assert.Equal(t, 0, Aggregate(nil))
	assert.Equal(t, 0, Aggregate([]WeightedFactor{{Score: 1, Weight: 0}, {Score: 0.4, Weight: -2}}))
	assert.Equal(t, 40, Aggregate([]WeightedFactor{{Score: 1, Weight: 0}, {Score: 0.4, Weight: 2}}))
}

func TestAggregate_StaysWithinFactorBounds(t *testing.T) {
	factors := []WeightedFactor{{Score: 0.2, Weight: 3}, {Score: 0.9, Weight: 1}, {Score: 0.55, Weight: 7}}
	got := Aggregate(factors)
	assert.GreaterOrEqual(t, got, 20)
	assert.LessOrEqual(t, got, 90)
}

func TestEngine_Match_ReasonOrderSalaryThenJobType(t *testing.T) {
	e := NewEngine(DefaultConfig())
	p := seeker.Profile{
		SalaryMin:       f64(100000),
		SalaryMax:       f64(150000),
		DesiredLocation: []string{"Berlin"},
		JobTypes:        []string{"full-time"},
		TechnicalSkills: []string{"Go"},
	}
	j := job.Job{
		ID:             uuid.New(),
		Location:       "Tokyo",
		JobType:        "full-time",
		SkillsRequired: []string{"Rust", "Haskell"},
		SalaryMin:      f64(120000),
	}

	m := e.Match(p, j, seeker.DefaultWeights())

	require.Len(t, m.MatchReasons, 2)
	assert.Equal(t, "Salary aligns with your $100,000 range", m.MatchReasons[0])
	assert.Equal(t, "Job type matches your full-time preference", m.MatchReasons[1])
	assert.Equal(t, j.ID, m.Job.ID)
	assert.Equal(t, 100, m.MatchDetails.SalaryMatch)
	assert.Equal(t, 20, m.MatchDetails.LocationMatch)
	assert.Equal(t, 0, m.MatchDetails.SkillsMatch)
	assert.Equal(t, 70, m.MatchDetails.ExperienceMatch)
	assert.Equal(t, 50, m.MatchDetails.CultureMatch)
	assert.Equal(t, 100, m.MatchDetails.JobTypeMatch)
	assert.Equal(t, 50, m.MatchDetails.IndustryMatch)
	assert.Equal(t, m.MatchScore, m.MatchDetails.OverallMatch)
}

func TestEngine_Match_AllReasons(t *testing.T) {
	e := NewEngine(DefaultConfig())
	p := seeker.Profile{
		DesiredLocation: []string{"Berlin", "Remote"},
		JobTypes:        []string{"full-time"},
		TechnicalSkills: []string{"Go", "PostgreSQL"},
		CompanyCulture:  []string{"collaborative"},
		Industries:      []string{"Fintech"},
		YearsExperience: intp(5),
	}
	j := job.Job{
		Location:           "Berlin, Germany",
		JobType:            "full-time",
		SkillsRequired:     []string{"go", "sql"},
		CompanyCulture:     []string{"Collaborative"},
		Industry:           strp("Fintech"),
		ExperienceRequired: intp(4),
		SalaryMin:          f64(90000),
	}

	m := e.Match(p, j, seeker.DefaultWeights())

	assert.Equal(t, []string{
		"Location matches your preference for Berlin, Remote",
		"Strong skills match (100% of required skills)",
		"Your 5 years experience fits well",
		"Company culture aligns with your preferences",
		"Job type matches your full-time preference",
	}, m.MatchReasons)
	assert.True(t, e.Accepts(m))
}

func TestEngine_Match_SalaryReasonWithoutMinimum(t *testing.T) {
	p := seeker.Profile{SalaryMin: f64(0), SalaryMax: f64(50000)}
	j := job.Job{SalaryMin: f64(40000)}

	m := NewEngine(DefaultConfig()).Match(p, j, seeker.DefaultWeights())
	require.NotEmpty(t, m.MatchReasons)
	assert.Equal(t, "Salary aligns with your desired range", m.MatchReasons[0])
}

func TestEngine_Match_TotalOverOptionalFields(t *testing.T) {
	e := NewEngine(DefaultConfig())
	profiles := []seeker.Profile{
		{},
		{SalaryMin: f64(1), YearsExperience: intp(0), DesiredLocation: []string{""}},
		{SalaryMin: f64(200000), SalaryMax: f64(100), JobTypes: []string{""}, YearsExperience: intp(40)},
	}
	jobs := []job.Job{
		{},
		{SalaryMin: f64(0), SalaryMax: f64(0), ExperienceRequired: intp(-1), Industry: strp("")},
		{SalaryMin: f64(90000), Location: "Remote", SkillsRequired: []string{"", " "}},
	}

	for _, p := range profiles {
		for _, j := range jobs {
			for _, w := range []seeker.Weights{{}, seeker.DefaultWeights()} {
				m := e.Match(p, j, w)
				for _, v := range []int{
					m.MatchScore,
					m.MatchDetails.SalaryMatch,
					m.MatchDetails.LocationMatch,
					m.MatchDetails.SkillsMatch,
					m.MatchDetails.ExperienceMatch,
					m.MatchDetails.CultureMatch,
					m.MatchDetails.JobTypeMatch,
					m.MatchDetails.IndustryMatch,
				} {
					assert.GreaterOrEqual(t, v, 0)
					assert.LessOrEqual(t, v, 100)
				}
			}
		}
	}
}

func TestJobMatch_Insight(t *testing.T) {
	m := JobMatch{
		MatchScore:   91,
		MatchDetails: MatchDetail{SalaryMatch: 100, OverallMatch: 91},
		MatchReasons: []string{"a", "b"},
	}

	in := m.Insight()
	assert.Equal(t, 91, in.OverallScore)
	assert.Equal(t, []string{"a", "b"}, in.TopReasons)
	assert.Equal(t, m.MatchDetails, in.Breakdown)

	in.TopReasons[0] = "changed"
	assert.Equal(t, "a", m.MatchReasons[0])
}

func TestReasons_RespectsThresholds(t *testing.T) {
	p := seeker.Profile{DesiredLocation: []string{"Paris"}}
	th := DefaultReasonThresholds()

	assert.Empty(t, Reasons(p, Scores{Salary: 0.8, Location: 0.8, Skills: 0.7, Experience: 0.8, Culture: 0.7, JobType: 0.9}, th))
	assert.Equal(t, []string{"Location matches your preference for Paris"}, Reasons(p, Scores{Location: 0.81}, th))
}
