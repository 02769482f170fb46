package dto

import (
	"time"

	"jobsync/internal/domain/job"
	"jobsync/internal/domain/matching"

	"github.com/google/uuid"
)

type JobResponse struct {
	ID                 uuid.UUID  `json:"id"`
	RecruiterID        *uuid.UUID `json:"recruiter_id"`
	Title              string     `json:"title"`
	Department         string     `json:"department"`
	Location           string     `json:"location"`
	JobType            string     `json:"job_type"`
	Description        string     `json:"description"`
	SkillsRequired     []string   `json:"skills_required"`
	SalaryMin          *float64   `json:"salary_min"`
	SalaryMax          *float64   `json:"salary_max"`
	CompanySize        *string    `json:"company_size"`
	Industry           *string    `json:"industry"`
	WorkEnvironment    []string   `json:"work_environment"`
	CompanyCulture     []string   `json:"company_culture"`
	ExperienceRequired *int       `json:"experience_required"`
	CreatedAt          time.Time  `json:"created_at"`
}

type JobMatchResponse struct {
	Job          JobResponse          `json:"job"`
	MatchScore   int                  `json:"match_score"`
	MatchDetails matching.MatchDetail `json:"match_details"`
	MatchReasons []string             `json:"match_reasons"`
}

type MatchListResponse struct {
	Items []JobMatchResponse `json:"items"`
	Total int                `json:"total"`
}

type InsightResponse struct {
	OverallScore int                  `json:"overall_score"`
	TopReasons   []string             `json:"top_reasons"`
	Breakdown    matching.MatchDetail `json:"breakdown"`
}

func NewJobResponse(j job.Job) JobResponse {
	return JobResponse{
		ID:                 j.ID,
		RecruiterID:        j.RecruiterID,
		Title:              j.Title,
		Department:         j.Department,
		Location:           j.Location,
		JobType:            j.JobType,
		Description:        j.Description,
		SkillsRequired:     j.SkillsRequired,
		SalaryMin:          j.SalaryMin,
		SalaryMax:          j.SalaryMax,
		CompanySize:        j.CompanySize,
		Industry:           j.Industry,
		WorkEnvironment:    j.WorkEnvironment,
		CompanyCulture:     j.CompanyCulture,
		ExperienceRequired: j.ExperienceRequired,
		CreatedAt:          j.CreatedAt,
	}
}

// NewJobMatchResponse keeps at most maxReasons reasons; zero keeps all.
func NewJobMatchResponse(m matching.JobMatch, maxReasons int) JobMatchResponse {
	return JobMatchResponse{
		Job:          NewJobResponse(m.Job),
		MatchScore:   m.MatchScore,
		MatchDetails: m.MatchDetails,
		MatchReasons: truncate(m.MatchReasons, maxReasons),
	}
}

func NewMatchListResponse(ms []matching.JobMatch, maxReasons int) MatchListResponse {
	items := make([]JobMatchResponse, 0, len(ms))
	for _, m := range ms {
		items = append(items, NewJobMatchResponse(m, maxReasons))
	}
	return MatchListResponse{Items: items, Total: len(items)}
}

func NewInsightResponse(in matching.Insight) InsightResponse {
	return InsightResponse{
		OverallScore: in.OverallScore,
		TopReasons:   truncate(in.TopReasons, 0),
		Breakdown:    in.Breakdown,
	}
}

func truncate(in []string, limit int) []string {
	n := len(in)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]string, n)
	copy(out, in[:n])
	return out
}
