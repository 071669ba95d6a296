package main

import (
	"fmt"
	"log"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/roivaz/jupiter-dao-unstake/internal/config"
	"github.com/roivaz/jupiter-dao-unstake/internal/logging"
	"github.com/roivaz/jupiter-dao-unstake/internal/mcp"
)

func main() {
	root := &cobra.Command{
		Use:          "mcp-server",
		Short:        "Jupiter DAO unstake MCP server backed by Dialect Blink",
		SilenceUsage: true,
		RunE:         run,
	}

	root.PersistentFlags().String("blink-client-key", "", "Dialect Blink client key (BLINK_CLIENT_KEY)")
	root.PersistentFlags().String("bin-uuid", "", "Bin UUID (BIN_UUID)")
	root.PersistentFlags().String("blink-base-url", "", "Blink API base URL")
	root.PersistentFlags().String("blink-timeout", "", "Timeout for Blink API calls (e.g. 30s)")
	root.PersistentFlags().String("transport", "", "MCP transport: stdio or http")
	root.PersistentFlags().String("host", "", "HTTP host")
	root.PersistentFlags().Int("port", 8000, "HTTP port")
	root.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")

	config.Init(root)

	if err := root.Execute(); err != nil {
		log.Fatalf("command failed: %v", err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	base, err := logging.NewBase(config.LogLevel())
	if err != nil {
		return err
	}
	logger := logging.New(base).WithName("mcp-server")

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	srv := mcp.New(mcp.NewConfig(cfg, logger))

	switch transport := config.Transport(); transport {
	case "stdio":
		return srv.ServeStdio()
	case "http":
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		addr := config.Host() + ":" + strconv.Itoa(config.Port())
		return srv.ServeHTTP(ctx, addr)
	default:
		return fmt.Errorf("unsupported transport %q", transport)
	}
}
