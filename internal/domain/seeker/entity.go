package seeker

import (
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	DesiredJobTitle *string
	DesiredLocation []string
	JobTypes        []string
	SalaryMin       *float64
	SalaryMax       *float64
	CompanyTypes    []string
	CompanySizes    []string
	Industries      []string
	WorkEnvironment []string
	CompanyCulture  []string
	TechnicalSkills []string
	SoftSkills      []string
	YearsExperience *int
	UpdatedAt       time.Time
}

// Skills returns technical skills followed by soft skills.
func (p Profile) Skills() []string {
	out := make([]string, 0, len(p.TechnicalSkills)+len(p.SoftSkills))
	out = append(out, p.TechnicalSkills...)
	out = append(out, p.SoftSkills...)
	return out
}
