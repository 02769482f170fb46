package ws

import (
	"encoding/json"
	"time"

	"jobsync/internal/domain/application"
	"jobsync/internal/domain/job"
	"jobsync/internal/domain/matching"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const EventApplicationInsight = "application_insight"

type ApplicationInsightEvent struct {
	Type          string           `json:"type"`
	ApplicationID uuid.UUID        `json:"application_id"`
	JobID         uuid.UUID        `json:"job_id"`
	ApplicantID   uuid.UUID        `json:"applicant_id"`
	Insight       matching.Insight `json:"insight"`
	Timestamp     string           `json:"timestamp"`
}

// Notifier publishes a stored insight to the recruiter who owns the job.
// Jobs without a recruiter produce no event.
type Notifier struct {
	hub *Hub
	now func() time.Time
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub, now: time.Now}
}

func (n *Notifier) ApplicationInsightRecorded(j job.Job, app application.Application, insight matching.Insight) {
	if n == nil || n.hub == nil || j.RecruiterID == nil {
		return
	}

	evt := ApplicationInsightEvent{
		Type:          EventApplicationInsight,
		ApplicationID: app.ID,
		JobID:         app.JobID,
		ApplicantID:   app.ApplicantID,
		Insight:       insight,
		Timestamp:     n.now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		n.hub.logger.Warn("encode event failed", zap.Error(err))
		return
	}

	n.hub.Publish(*j.RecruiterID, b)
}
