package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	DefaultBinUUID      = "6874794c-513e-456f-801f-5957a82e068e"
	DefaultBlinkBaseURL = "https://jupiter.dial.to"
	DefaultBlinkTimeout = 30 * time.Second
)

// ServerConfig is resolved once at startup and handed to the components that
// need it. Nothing reads the environment after Load returns.
type ServerConfig struct {
	ClientKey string
	// BinID is accepted for parity with existing deployments; no request uses it.
	BinID        string
	BlinkBaseURL string
	BlinkTimeout time.Duration
}

func Init(root *cobra.Command) {
	viper.AutomaticEnv()
	_ = godotenv.Load(".env")
	if root != nil {
		flags := root.PersistentFlags()
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				_ = viper.BindPFlag(key, f)
			}
		}
	}
	setDefaults()
}

func setDefaults() {
	viper.SetDefault(KeyBinUUID, DefaultBinUUID)
	viper.SetDefault(KeyBlinkBaseURL, DefaultBlinkBaseURL)
	viper.SetDefault(KeyBlinkTimeout, DefaultBlinkTimeout.String())
	viper.SetDefault(KeyTransport, "stdio")
	viper.SetDefault(KeyHost, "0.0.0.0")
	viper.SetDefault(KeyPort, 8000)
	viper.SetDefault(KeyLogLevel, "info")
}

func BlinkClientKey() string { return strings.TrimSpace(viper.GetString(KeyBlinkClientKey)) }
func BinUUID() string        { return viper.GetString(KeyBinUUID) }
func BlinkBaseURL() string   { return viper.GetString(KeyBlinkBaseURL) }
func BlinkTimeout() string   { return viper.GetString(KeyBlinkTimeout) }
func Transport() string      { return strings.ToLower(viper.GetString(KeyTransport)) }
func Host() string           { return viper.GetString(KeyHost) }
func Port() int              { return viper.GetInt(KeyPort) }
func LogLevel() string       { return viper.GetString(KeyLogLevel) }

// Load snapshots the Blink settings into a ServerConfig. A missing client key
// is not an error here; the unstake tool reports it per call.
func Load() (ServerConfig, error) {
	timeout, err := parseDuration(BlinkTimeout(), DefaultBlinkTimeout)
	if err != nil {
		return ServerConfig{}, fmt.Errorf("invalid %s: %w", KeyBlinkTimeout, err)
	}
	if timeout <= 0 {
		return ServerConfig{}, fmt.Errorf("invalid %s: must be positive", KeyBlinkTimeout)
	}
	baseURL := strings.TrimRight(strings.TrimSpace(BlinkBaseURL()), "/")
	if baseURL == "" {
		baseURL = DefaultBlinkBaseURL
	}
	return ServerConfig{
		ClientKey:    BlinkClientKey(),
		BinID:        BinUUID(),
		BlinkBaseURL: baseURL,
		BlinkTimeout: timeout,
	}, nil
}

func parseDuration(value string, fallback time.Duration) (time.Duration, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback, nil
	}
	return time.ParseDuration(trimmed)
}
