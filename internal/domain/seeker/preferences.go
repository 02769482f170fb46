package seeker

import "github.com/google/uuid"

const (
	DefaultSalaryWeight               = 7
	DefaultLocationWeight             = 8
	DefaultCompanyCultureWeight       = 6
	DefaultGrowthOpportunitiesWeight  = 7
	DefaultWorkLifeBalanceWeight      = 8
	DefaultRoleResponsibilitiesWeight = 9
)

// Preferences holds the weights a job seeker stored. A nil weight was
// never set and falls back to its default in Resolve.
type Preferences struct {
	ID                         uuid.UUID
	JobSeekerID                uuid.UUID
	SalaryWeight               *int
	LocationWeight             *int
	CompanyCultureWeight       *int
	GrowthOpportunitiesWeight  *int
	WorkLifeBalanceWeight      *int
	RoleResponsibilitiesWeight *int
}

type Weights struct {
	Salary               int `json:"salary"`
	Location             int `json:"location"`
	CompanyCulture       int `json:"company_culture"`
	GrowthOpportunities  int `json:"growth_opportunities"`
	WorkLifeBalance      int `json:"work_life_balance"`
	RoleResponsibilities int `json:"role_responsibilities"`
}

func DefaultWeights() Weights {
	return Weights{
		Salary:               DefaultSalaryWeight,
		Location:             DefaultLocationWeight,
		CompanyCulture:       DefaultCompanyCultureWeight,
		GrowthOpportunities:  DefaultGrowthOpportunitiesWeight,
		WorkLifeBalance:      DefaultWorkLifeBalanceWeight,
		RoleResponsibilities: DefaultRoleResponsibilitiesWeight,
	}
}

// Resolve returns concrete weights. Negative stored weights are clamped to zero.
func (p Preferences) Resolve() Weights {
	return Weights{
		Salary:               weightOr(p.SalaryWeight, DefaultSalaryWeight),
		Location:             weightOr(p.LocationWeight, DefaultLocationWeight),
		CompanyCulture:       weightOr(p.CompanyCultureWeight, DefaultCompanyCultureWeight),
		GrowthOpportunities:  weightOr(p.GrowthOpportunitiesWeight, DefaultGrowthOpportunitiesWeight),
		WorkLifeBalance:      weightOr(p.WorkLifeBalanceWeight, DefaultWorkLifeBalanceWeight),
		RoleResponsibilities: weightOr(p.RoleResponsibilitiesWeight, DefaultRoleResponsibilitiesWeight),
	}
}

func weightOr(v *int, def int) int {
	if v == nil {
		return def
	}
	if *v < 0 {
		return 0
	}
	return *v
}
