package application

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type Application struct {
	ID          uuid.UUID
	JobID       uuid.UUID
	ApplicantID uuid.UUID
	Status      string
	AppliedAt   *time.Time
	Insights    json.RawMessage

	// InsightCheckedAt is set when an insight could not be computed. Pending
	// applications are retried oldest check first.
	InsightCheckedAt *time.Time
}

func (a Application) HasInsights() bool {
	return len(a.Insights) > 0 && string(a.Insights) != "null"
}
