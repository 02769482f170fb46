package seeder

import (
	"context"
	"errors"
	"testing"

	"jobsync/internal/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDB struct{ database.DB }

type recordingSeeder struct {
	name string
	err  error
	ran  *[]string
}

func (s recordingSeeder) Name() string { return s.name }

func (s recordingSeeder) Run(context.Context, database.DB) error {
	*s.ran = append(*s.ran, s.name)
	return s.err
}

func TestRunnerStopsOnFirstError(t *testing.T) {
	var ran []string
	boom := errors.New("boom")
	r := Runner{Seeders: []Seeder{
		recordingSeeder{name: "a", ran: &ran},
		nil,
		recordingSeeder{name: "b", err: boom, ran: &ran},
		recordingSeeder{name: "c", ran: &ran},
	}}

	err := r.Run(context.Background(), stubDB{})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "seed b")
	assert.Equal(t, []string{"a", "b"}, ran)
}

func TestRunnerRejectsNilDB(t *testing.T) {
	err := Runner{}.Run(context.Background(), nil)
	assert.Error(t, err)
}

func TestDefaultsOrder(t *testing.T) {
	names := make([]string, 0, 3)
	for _, s := range Defaults() {
		names = append(names, s.Name())
	}
	assert.Equal(t, []string{"jobs", "job_seekers", "applications"}, names)
}

