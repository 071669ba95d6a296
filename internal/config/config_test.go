package config

import (
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestLoad_Defaults(t *testing.T) {
	resetViper(t)
	t.Setenv("BLINK_CLIENT_KEY", "")
	t.Setenv("BIN_UUID", "")
	Init(nil)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.ClientKey)
	assert.Equal(t, DefaultBinUUID, cfg.BinID)
	assert.Equal(t, DefaultBlinkBaseURL, cfg.BlinkBaseURL)
	assert.Equal(t, 30*time.Second, cfg.BlinkTimeout)
	assert.Equal(t, "stdio", Transport())
	assert.Equal(t, 8000, Port())
}

func TestLoad_FromEnvironment(t *testing.T) {
	resetViper(t)
	t.Setenv("BLINK_CLIENT_KEY", " secret ")
	t.Setenv("BIN_UUID", "custom-bin")
	t.Setenv("BLINK_BASE_URL", "http://127.0.0.1:9999/")
	t.Setenv("BLINK_TIMEOUT", "5s")
	Init(nil)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.ClientKey)
	assert.Equal(t, "custom-bin", cfg.BinID)
	assert.Equal(t, "http://127.0.0.1:9999", cfg.BlinkBaseURL)
	assert.Equal(t, 5*time.Second, cfg.BlinkTimeout)
}

func TestLoad_FlagsOverrideEnvironment(t *testing.T) {
	resetViper(t)
	t.Setenv("BLINK_CLIENT_KEY", "from-env")
	root := &cobra.Command{Use: "test"}
	root.PersistentFlags().String("blink-client-key", "", "")
	root.PersistentFlags().String("transport", "", "")
	Init(root)
	require.NoError(t, root.PersistentFlags().Set("blink-client-key", "from-flag"))
	require.NoError(t, root.PersistentFlags().Set("transport", "HTTP"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-flag", cfg.ClientKey)
	assert.Equal(t, "http", Transport())
}

func TestLoad_InvalidTimeout(t *testing.T) {
	for _, value := range []string{"soon", "-1s"} {
		t.Run(value, func(t *testing.T) {
			resetViper(t)
			t.Setenv("BLINK_TIMEOUT", value)
			Init(nil)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), KeyBlinkTimeout)
		})
	}
}
