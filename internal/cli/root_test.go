package cli

import (
	"testing"

	"github.com/rileyhilliard/swipr/internal/logger"
	"github.com/stretchr/testify/assert"
)

func TestRootPreRunInstallsDefaultLogger(t *testing.T) {
	original := logger.Default()
	defer logger.SetDefault(original)
	t.Setenv("NO_COLOR", "")

	buf := logger.NewBufferLogger()
	logger.SetDefault(buf)

	rootCmd.PersistentPreRun(rootCmd, nil)

	assert.NotEqual(t, buf, logger.Default(), "commands log through the env logger")
}
