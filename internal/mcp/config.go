package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/roivaz/jupiter-dao-unstake/internal/blink"
	"github.com/roivaz/jupiter-dao-unstake/internal/config"
	"github.com/roivaz/jupiter-dao-unstake/internal/logging"
	"github.com/roivaz/jupiter-dao-unstake/internal/mcp/tools"
	"github.com/roivaz/jupiter-dao-unstake/internal/unstake"
)

type Config struct {
	ToolAdapters   map[string]ToolAdapter
	PromptAdapters map[string]PromptAdapter
	Options        []server.StreamableHTTPOption
	Logger         logging.Logger
}

// NewConfig wires the unstake tool against the Blink API described by cfg.
func NewConfig(cfg config.ServerConfig, log logging.Logger) Config {
	if cfg.ClientKey == "" {
		log.Info("BLINK_CLIENT_KEY is not set; unstake calls will fail until it is configured")
	}
	log.Debug("loaded server config", "blinkBaseURL", cfg.BlinkBaseURL, "blinkTimeout", cfg.BlinkTimeout.String(), "binID", cfg.BinID)

	client := blink.NewClient(blink.Config{
		BaseURL:   cfg.BlinkBaseURL,
		ClientKey: cfg.ClientKey,
		Timeout:   cfg.BlinkTimeout,
		Logger:    log.WithName("blink"),
	})
	unstakeService := unstake.NewService(client, log.WithName("unstake"))

	return Config{
		ToolAdapters: map[string]ToolAdapter{
			ToolDAOUnstake: &tools.DAOUnstakeHandler{Service: unstakeService},
		},
		PromptAdapters: map[string]PromptAdapter{
			PromptUnstakeTokens: &tools.UnstakePromptHandler{},
		},
		Options: []server.StreamableHTTPOption{
			server.WithEndpointPath("/mcp/jsonrpc"),
			server.WithStateLess(true),
		},
		Logger: log,
	}
}
