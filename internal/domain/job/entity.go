package job

import (
	"time"

	"github.com/google/uuid"
)

const StatusActive = "active"

type Job struct {
	ID                 uuid.UUID  `json:"id"`
	RecruiterID        *uuid.UUID `json:"recruiter_id,omitempty"`
	Title              string     `json:"title"`
	Department         string     `json:"department"`
	Location           string     `json:"location"`
	JobType            string     `json:"job_type"`
	Description        string     `json:"description"`
	SkillsRequired     []string   `json:"skills_required"`
	SalaryMin          *float64   `json:"salary_min,omitempty"`
	SalaryMax          *float64   `json:"salary_max,omitempty"`
	CompanySize        *string    `json:"company_size,omitempty"`
	Industry           *string    `json:"industry,omitempty"`
	WorkEnvironment    []string   `json:"work_environment,omitempty"`
	CompanyCulture     []string   `json:"company_culture,omitempty"`
	ExperienceRequired *int       `json:"experience_required,omitempty"`
	Status             string     `json:"status"`
	CreatedAt          time.Time  `json:"created_at"`
}

func (j Job) IsActive() bool {
	return j.Status == StatusActive
}
