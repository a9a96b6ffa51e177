package crawler

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	reader := strings.NewReader(`
userAgent: "minter-bot/2.0"
fetchTimeout: 15s
maxBodyBytes: 1048576
`)

	cfg, err := LoadConfig(reader)

	require.NoError(t, err)
	assert.Equal(t, "minter-bot/2.0", cfg.UserAgent)
	assert.Equal(t, 15*time.Second, cfg.FetchTimeout)
	assert.Equal(t, int64(1<<20), cfg.MaxBodyBytes)
}

func TestLoadConfig_DefaultsForUnsetFields(t *testing.T) {
	reader := strings.NewReader(`userAgent: "minter-bot/2.0"`)

	cfg, err := LoadConfig(reader)

	require.NoError(t, err)
	assert.Equal(t, "minter-bot/2.0", cfg.UserAgent)
	assert.Equal(t, defaultFetchTimeout, cfg.FetchTimeout)
	assert.Equal(t, int64(defaultMaxBodyBytes), cfg.MaxBodyBytes)
}

func TestLoadConfigFile_EmptyPathYieldsDefaults(t *testing.T) {
	cfg, err := LoadConfigFile("")

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), *cfg)
}
