package matching

import (
	"jobsync/internal/domain/job"
	"jobsync/internal/domain/seeker"
)

const (
	DefaultAcceptanceThreshold = 85
	DefaultExperienceWeight    = 5
	DefaultIndustryWeight      = 3
)

// Config holds the engine-owned tunables. Seeker weights come from
// seeker.Preferences; experience and industry weights are fixed here.
type Config struct {
	AcceptanceThreshold int
	ExperienceWeight    float64
	IndustryWeight      float64
	Reasons             ReasonThresholds
}

func DefaultConfig() Config {
	return Config{
		AcceptanceThreshold: DefaultAcceptanceThreshold,
		ExperienceWeight:    DefaultExperienceWeight,
		IndustryWeight:      DefaultIndustryWeight,
		Reasons:             DefaultReasonThresholds(),
	}
}

// Scores are the raw factor scores in [0,1].
type Scores struct {
	Salary     float64
	Location   float64
	Skills     float64
	Experience float64
	Culture    float64
	JobType    float64
	Industry   float64
}

type MatchDetail struct {
	SalaryMatch     int `json:"salary_match"`
	LocationMatch   int `json:"location_match"`
	SkillsMatch     int `json:"skills_match"`
	ExperienceMatch int `json:"experience_match"`
	CultureMatch    int `json:"culture_match"`
	JobTypeMatch    int `json:"job_type_match"`
	IndustryMatch   int `json:"industry_match"`
	OverallMatch    int `json:"overall_match"`
}

type JobMatch struct {
	Job          job.Job     `json:"job"`
	MatchScore   int         `json:"match_score"`
	MatchDetails MatchDetail `json:"match_details"`
	MatchReasons []string    `json:"match_reasons"`
}

type Insight struct {
	OverallScore int         `json:"overall_score"`
	TopReasons   []string    `json:"top_reasons"`
	Breakdown    MatchDetail `json:"breakdown"`
}

type Engine struct {
	cfg Config
}

func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

func (e *Engine) Config() Config {
	return e.cfg
}

func (e *Engine) Score(p seeker.Profile, j job.Job) Scores {
	return Scores{
		Salary:     SalaryMatch(p.SalaryMin, p.SalaryMax, j.SalaryMin, j.SalaryMax),
		Location:   LocationMatch(p.DesiredLocation, j.Location),
		Skills:     SkillsMatch(p.Skills(), j.SkillsRequired),
		Experience: ExperienceMatch(p.YearsExperience, j.ExperienceRequired),
		Culture:    ArrayMatch(p.CompanyCulture, j.CompanyCulture),
		JobType:    JobTypeMatch(p.JobTypes, j.JobType),
		Industry:   IndustryMatch(p.Industries, j.Industry),
	}
}

func (e *Engine) Weigh(s Scores, w seeker.Weights) []WeightedFactor {
	return []WeightedFactor{
		{Score: s.Salary, Weight: float64(w.Salary)},
		{Score: s.Location, Weight: float64(w.Location)},
		{Score: s.Skills, Weight: float64(w.RoleResponsibilities)},
		{Score: s.Culture, Weight: float64(w.CompanyCulture)},
		{Score: s.JobType, Weight: float64(w.WorkLifeBalance)},
		{Score: s.Experience, Weight: e.cfg.ExperienceWeight},
		{Score: s.Industry, Weight: e.cfg.IndustryWeight},
	}
}

// Match scores one job against one profile. It is pure and safe for
// concurrent use.
func (e *Engine) Match(p seeker.Profile, j job.Job, w seeker.Weights) JobMatch {
	s := e.Score(p, j)
	overall := Aggregate(e.Weigh(s, w))

	return JobMatch{
		Job:        j,
		MatchScore: overall,
		MatchDetails: MatchDetail{
			SalaryMatch:     percent(s.Salary),
			LocationMatch:   percent(s.Location),
			SkillsMatch:     percent(s.Skills),
			ExperienceMatch: percent(s.Experience),
			CultureMatch:    percent(s.Culture),
			JobTypeMatch:    percent(s.JobType),
			IndustryMatch:   percent(s.Industry),
			OverallMatch:    overall,
		},
		MatchReasons: Reasons(p, s, e.cfg.Reasons),
	}
}

func (e *Engine) Accepts(m JobMatch) bool {
	return m.MatchScore >= e.cfg.AcceptanceThreshold
}

func (m JobMatch) Insight() Insight {
	reasons := make([]string, len(m.MatchReasons))
	copy(reasons, m.MatchReasons)
	return Insight{
		OverallScore: m.MatchScore,
		TopReasons:   reasons,
		Breakdown:    m.MatchDetails,
	}
}
