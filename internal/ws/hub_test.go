package ws

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"jobsync/internal/domain/application"
	"jobsync/internal/domain/job"
	"jobsync/internal/domain/matching"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T) (*Hub, context.CancelFunc) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	h := NewHub(nil)
	go h.Run(ctx)
	return h, cancel
}

func registerClient(t *testing.T, h *Hub, userID uuid.UUID, buffer int) *Client {
	t.Helper()
	c := &Client{hub: h, userID: userID, send: make(chan []byte, buffer)}
	before := h.ClientCount()
	require.True(t, h.Register(c))
	require.Equal(t, before+1, h.ClientCount())
	return c
}

func TestNotifierPublishesToJobRecruiter(t *testing.T) {
	h, _ := startHub(t)
	recruiter := uuid.New()
	owner := registerClient(t, h, recruiter, 4)
	other := registerClient(t, h, uuid.New(), 4)

	n := NewNotifier(h)
	n.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }

	j := job.Job{ID: uuid.New(), RecruiterID: &recruiter}
	app := application.Application{ID: uuid.New(), JobID: j.ID, ApplicantID: uuid.New()}
	n.ApplicationInsightRecorded(j, app, matching.Insight{OverallScore: 90, TopReasons: []string{"r"}})

	select {
	case msg := <-owner.send:
		var evt ApplicationInsightEvent
		require.NoError(t, json.Unmarshal(msg, &evt))
		assert.Equal(t, EventApplicationInsight, evt.Type)
		assert.Equal(t, app.ID, evt.ApplicationID)
		assert.Equal(t, 90, evt.Insight.OverallScore)
		assert.Equal(t, "2024-01-02T03:04:05Z", evt.Timestamp)
	case <-time.After(time.Second):
		t.Fatal("no message delivered")
	}

	assert.Never(t, func() bool { return len(other.send) > 0 }, 50*time.Millisecond, 5*time.Millisecond)
}

func TestNotifierSkipsJobsWithoutRecruiter(t *testing.T) {
	h, _ := startHub(t)
	c := registerClient(t, h, uuid.New(), 4)

	NewNotifier(h).ApplicationInsightRecorded(job.Job{ID: uuid.New()}, application.Application{ID: uuid.New()}, matching.Insight{})
	assert.Never(t, func() bool { return len(c.send) > 0 }, 50*time.Millisecond, 5*time.Millisecond)
}

func TestHubDropsSlowClients(t *testing.T) {
	h, _ := startHub(t)
	user := uuid.New()
	slow := registerClient(t, h, user, 0)

	h.Publish(user, []byte("x"))
	require.Eventually(t, func() bool { return h.ClientCount() == 0 }, time.Second, 5*time.Millisecond)

	_, open := <-slow.send
	assert.False(t, open)
}

func TestHubUnregister(t *testing.T) {
	h, _ := startHub(t)
	c := registerClient(t, h, uuid.New(), 1)

	h.Unregister(c)
	assert.Zero(t, h.ClientCount())
	_, open := <-c.send
	assert.False(t, open)

	assert.NotPanics(t, func() { h.Unregister(c) })
}

func TestHubStopClosesClientsAndNeverBlocks(t *testing.T) {
	h, cancel := startHub(t)
	c := registerClient(t, h, uuid.New(), 1)

	cancel()
	select {
	case <-h.done:
	case <-time.After(time.Second):
		t.Fatal("hub did not stop")
	}
	_, open := <-c.send
	assert.False(t, open)
	assert.Zero(t, h.ClientCount())

	finished := make(chan struct{})
	go func() {
		defer close(finished)
		for i := 0; i < cap(h.broadcast)+10; i++ {
			late := &Client{hub: h, userID: uuid.New(), send: make(chan []byte, 1)}
			assert.False(t, h.Register(late))
			h.Unregister(late)
			h.Publish(late.userID, []byte("x"))
		}
	}()
	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("late hub calls blocked after shutdown")
	}
}

func TestNilNotifierIsSafe(t *testing.T) {
	var n *Notifier
	assert.NotPanics(t, func() {
		n.ApplicationInsightRecorded(job.Job{}, application.Application{}, matching.Insight{})
	})
}
