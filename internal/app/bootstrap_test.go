package app

import (
	"testing"

	"jobsync/internal/config"
	"jobsync/internal/domain/matching"

	"github.com/stretchr/testify/assert"
)

func TestListenAddr(t *testing.T) {
	addr, err := ListenAddr("8080")
	assert.NoError(t, err)
	assert.Equal(t, ":8080", addr)

	addr, err = ListenAddr(" :9090 ")
	assert.NoError(t, err)
	assert.Equal(t, ":9090", addr)

	_, err = ListenAddr("  ")
	assert.Error(t, err)
}

func TestEngineConfig(t *testing.T) {
	ec := EngineConfig(config.MatchingConfig{AcceptanceThreshold: 70, ExperienceWeight: 0, IndustryWeight: 2.5})
	assert.Equal(t, 70, ec.AcceptanceThreshold)
	assert.Equal(t, 0.0, ec.ExperienceWeight)
	assert.Equal(t, 2.5, ec.IndustryWeight)
	assert.Equal(t, matching.DefaultReasonThresholds(), ec.Reasons)

	def := EngineConfig(config.MatchingConfig{ExperienceWeight: -1, IndustryWeight: -1})
	assert.Equal(t, matching.DefaultConfig(), def)
}
