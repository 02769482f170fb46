package firestore

import (
	"encoding/json"
	"fmt"
	"time"

	"jobsync/internal/domain/application"
	"jobsync/internal/domain/job"
	"jobsync/internal/domain/seeker"

	"github.com/google/uuid"
)

const (
	profilesCollection     = "job_seeker_profiles"
	preferencesCollection  = "job_matching_preferences"
	jobsCollection         = "jobs"
	applicationsCollection = "applications"
)

type profileDoc struct {
	UserID          string    `firestore:"user_id"`
	DesiredJobTitle *string   `firestore:"desired_job_title"`
	DesiredLocation []string  `firestore:"desired_location"`
	JobType         []string  `firestore:"job_type"`
	SalaryMin       *float64  `firestore:"salary_min"`
	SalaryMax       *float64  `firestore:"salary_max"`
	CompanyTypes    []string  `firestore:"company_types"`
	CompanySizes    []string  `firestore:"company_sizes"`
	Industries      []string  `firestore:"industries"`
	WorkEnvironment []string  `firestore:"work_environment"`
	CompanyCulture  []string  `firestore:"company_culture"`
	TechnicalSkills []string  `firestore:"technical_skills"`
	SoftSkills      []string  `firestore:"soft_skills"`
	YearsExperience *int      `firestore:"years_experience"`
	UpdatedAt       time.Time `firestore:"updated_at"`
}

func (d profileDoc) toDomain(docID string) (seeker.Profile, error) {
	id, err := uuid.Parse(docID)
	if err != nil {
		return seeker.Profile{}, fmt.Errorf("profile id %q: %w", docID, err)
	}
	userID, err := uuid.Parse(d.UserID)
	if err != nil {
		return seeker.Profile{}, fmt.Errorf("profile user_id %q: %w", d.UserID, err)
	}
	return seeker.Profile{
		ID:              id,
		UserID:          userID,
		DesiredJobTitle: d.DesiredJobTitle,
		DesiredLocation: nonNil(d.DesiredLocation),
		JobTypes:        nonNil(d.JobType),
		SalaryMin:       d.SalaryMin,
		SalaryMax:       d.SalaryMax,
		CompanyTypes:    nonNil(d.CompanyTypes),
		CompanySizes:    nonNil(d.CompanySizes),
		Industries:      nonNil(d.Industries),
		WorkEnvironment: nonNil(d.WorkEnvironment),
		CompanyCulture:  nonNil(d.CompanyCulture),
		TechnicalSkills: nonNil(d.TechnicalSkills),
		SoftSkills:      nonNil(d.SoftSkills),
		YearsExperience: d.YearsExperience,
		UpdatedAt:       d.UpdatedAt,
	}, nil
}

type preferencesDoc struct {
	JobSeekerID                string `firestore:"job_seeker_id"`
	SalaryWeight               *int   `firestore:"salary_weight"`
	LocationWeight             *int   `firestore:"location_weight"`
	CompanyCultureWeight       *int   `firestore:"company_culture_weight"`
	GrowthOpportunitiesWeight  *int   `firestore:"growth_opportunities_weight"`
	WorkLifeBalanceWeight      *int   `firestore:"work_life_balance_weight"`
	RoleResponsibilitiesWeight *int   `firestore:"role_responsibilities_weight"`
}

func (d preferencesDoc) toDomain(docID string) (seeker.Preferences, error) {
	seekerID, err := uuid.Parse(d.JobSeekerID)
	if err != nil {
		return seeker.Preferences{}, fmt.Errorf("preferences job_seeker_id %q: %w", d.JobSeekerID, err)
	}
	// Document ids are not required to be uuids here.
	id, _ := uuid.Parse(docID)
	return seeker.Preferences{
		ID:                         id,
		JobSeekerID:                seekerID,
		SalaryWeight:               d.SalaryWeight,
		LocationWeight:             d.LocationWeight,
		CompanyCultureWeight:       d.CompanyCultureWeight,
		GrowthOpportunitiesWeight:  d.GrowthOpportunitiesWeight,
		WorkLifeBalanceWeight:      d.WorkLifeBalanceWeight,
		RoleResponsibilitiesWeight: d.RoleResponsibilitiesWeight,
	}, nil
}

type jobDoc struct {
	RecruiterID        *string   `firestore:"recruiter_id"`
	Title              string    `firestore:"title"`
	Department         string    `firestore:"department"`
	Location           string    `firestore:"location"`
	JobType            string    `firestore:"job_type"`
	Description        string    `firestore:"description"`
	SkillsRequired     []string  `firestore:"skills_required"`
	SalaryMin          *float64  `firestore:"salary_min"`
	SalaryMax          *float64  `firestore:"salary_max"`
	CompanySize        *string   `firestore:"company_size"`
	Industry           *string   `firestore:"industry"`
	WorkEnvironment    []string  `firestore:"work_environment"`
	CompanyCulture     []string  `firestore:"company_culture"`
	ExperienceRequired *int      `firestore:"experience_required"`
	Status             string    `firestore:"status"`
	CreatedAt          time.Time `firestore:"created_at"`
}

func (d jobDoc) toDomain(docID string) (job.Job, error) {
	id, err := uuid.Parse(docID)
	if err != nil {
		return job.Job{}, fmt.Errorf("job id %q: %w", docID, err)
	}
	var recruiter *uuid.UUID
	if d.RecruiterID != nil && *d.RecruiterID != "" {
		r, err := uuid.Parse(*d.RecruiterID)
		if err != nil {
			return job.Job{}, fmt.Errorf("job recruiter_id %q: %w", *d.RecruiterID, err)
		}
		recruiter = &r
	}
	return job.Job{
		ID:                 id,
		RecruiterID:        recruiter,
		Title:              d.Title,
		Department:         d.Department,
		Location:           d.Location,
		JobType:            d.JobType,
		Description:        d.Description,
		SkillsRequired:     nonNil(d.SkillsRequired),
		SalaryMin:          d.SalaryMin,
		SalaryMax:          d.SalaryMax,
		CompanySize:        d.CompanySize,
		Industry:           d.Industry,
		WorkEnvironment:    nonNil(d.WorkEnvironment),
		CompanyCulture:     nonNil(d.CompanyCulture),
		ExperienceRequired: d.ExperienceRequired,
		Status:             d.Status,
		CreatedAt:          d.CreatedAt,
	}, nil
}

// applicationDoc keeps insights as a JSON string; a null value marks the
// application as pending. Both nullable fields must be present on the
// document for the pending query to see it.
type applicationDoc struct {
	JobID            string     `firestore:"job_id"`
	ApplicantID      string     `firestore:"applicant_id"`
	Status           string     `firestore:"status"`
	AppliedAt        *time.Time `firestore:"applied_at"`
	Insights         *string    `firestore:"application_insights"`
	InsightCheckedAt *time.Time `firestore:"insight_checked_at"`
}

func (d applicationDoc) toDomain(docID string) (application.Application, error) {
	id, err := uuid.Parse(docID)
	if err != nil {
		return application.Application{}, fmt.Errorf("application id %q: %w", docID, err)
	}
	jobID, err := uuid.Parse(d.JobID)
	if err != nil {
		return application.Application{}, fmt.Errorf("application job_id %q: %w", d.JobID, err)
	}
	applicantID, err := uuid.Parse(d.ApplicantID)
	if err != nil {
		return application.Application{}, fmt.Errorf("application applicant_id %q: %w", d.ApplicantID, err)
	}
	var insights json.RawMessage
	if d.Insights != nil {
		insights = json.RawMessage(*d.Insights)
	}
	return application.Application{
		ID:          id,
		JobID:       jobID,
		ApplicantID: applicantID,
		Status:      d.Status,
		AppliedAt:   d.AppliedAt,
		Insights:    insights,

		InsightCheckedAt: d.InsightCheckedAt,
	}, nil
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
