package matching

import (
	"fmt"
	"math"
	"strings"

	"jobsync/internal/domain/seeker"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

type ReasonThresholds struct {
	Salary     float64
	Location   float64
	Skills     float64
	Experience float64
	Culture    float64
	JobType    float64
}

func DefaultReasonThresholds() ReasonThresholds {
	return ReasonThresholds{
		Salary:     0.8,
		Location:   0.8,
		Skills:     0.7,
		Experience: 0.8,
		Culture:    0.7,
		JobType:    0.9,
	}
}

// Reasons lists the justifications for the factors that cleared their
// thresholds. The order is fixed: salary, location, skills, experience,
// culture, job type.
func Reasons(p seeker.Profile, s Scores, t ReasonThresholds) []string {
	out := make([]string, 0, 6)
	if s.Salary > t.Salary {
		out = append(out, fmt.Sprintf("Salary aligns with your %s range", salaryLabel(p.SalaryMin)))
	}
	if s.Location > t.Location {
		out = append(out, "Location matches your preference for "+strings.Join(p.DesiredLocation, ", "))
	}
	if s.Skills > t.Skills {
		out = append(out, fmt.Sprintf("Strong skills match (%d%% of required skills)", int(math.Round(s.Skills*100))))
	}
	if s.Experience > t.Experience {
		out = append(out, fmt.Sprintf("Your %s years experience fits well", yearsLabel(p.YearsExperience)))
	}
	if s.Culture > t.Culture {
		out = append(out, "Company culture aligns with your preferences")
	}
	if s.JobType > t.JobType {
		out = append(out, "Job type matches your "+strings.Join(p.JobTypes, ", ")+" preference")
	}
	return out
}

var amountPrinter = message.NewPrinter(language.English)

func salaryLabel(v *float64) string {
	if v == nil || *v == 0 {
		return "desired"
	}
	return "$" + amountPrinter.Sprintf("%v", number.Decimal(*v, number.MaxFractionDigits(3)))
}

func yearsLabel(v *int) string {
	if v == nil {
		return "stated"
	}
	return fmt.Sprintf("%d", *v)
}
