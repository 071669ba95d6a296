package config

const (
	KeyBlinkClientKey = "blink_client_key"
	KeyBinUUID        = "bin_uuid"
	KeyBlinkBaseURL   = "blink_base_url"
	KeyBlinkTimeout   = "blink_timeout"
	KeyTransport      = "transport"
	KeyHost           = "host"
	KeyPort           = "port"
	KeyLogLevel       = "log_level"
)

// flagKeys maps persistent flag names to their viper keys.
var flagKeys = map[string]string{
	"blink-client-key": KeyBlinkClientKey,
	"bin-uuid":         KeyBinUUID,
	"blink-base-url":   KeyBlinkBaseURL,
	"blink-timeout":    KeyBlinkTimeout,
	"transport":        KeyTransport,
	"host":             KeyHost,
	"port":             KeyPort,
	"log-level":        KeyLogLevel,
}
