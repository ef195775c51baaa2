package cli

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/rileyhilliard/swipr/internal/config"
	"github.com/rileyhilliard/swipr/internal/errors"
	"github.com/rileyhilliard/swipr/internal/swipe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotCommand_Text(t *testing.T) {
	var buf bytes.Buffer

	err := snapshotCommand(&buf, config.DefaultConfig(), 0)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "resting at 0s")
}

func TestSnapshotCommand_IsRepeatable(t *testing.T) {
	var a, b bytes.Buffer

	require.NoError(t, snapshotCommand(&a, config.DefaultConfig(), 2*time.Second))
	require.NoError(t, snapshotCommand(&b, config.DefaultConfig(), 2*time.Second))
	assert.Equal(t, a.String(), b.String())
}

func TestSnapshotCommand_NegativeAt(t *testing.T) {
	err := snapshotCommand(&bytes.Buffer{}, config.DefaultConfig(), -time.Millisecond)

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestSnapshotCommand_JSON(t *testing.T) {
	oldMode := machineMode
	defer func() { machineMode = oldMode }()
	machineMode = true

	tests := []struct {
		name      string
		at        time.Duration
		wantPhase string
		wantIcon  float64
	}{
		{"at mount", 0, "resting", 0},
		// The glide has just finished; the return starts from where it is.
		{"at return boundary", 3500 * time.Millisecond, "resting", swipe.TravelDistance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, snapshotCommand(&buf, config.DefaultConfig(), tt.at))

			var env struct {
				Success bool           `json:"success"`
				Data    SnapshotOutput `json:"data"`
			}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &env))

			assert.True(t, env.Success)
			assert.Equal(t, tt.at.Milliseconds(), env.Data.AtMS)
			assert.Equal(t, tt.wantPhase, env.Data.Phase)
			assert.InDelta(t, tt.wantIcon, env.Data.Visuals.IconOffset, 1e-6)
		})
	}
}
