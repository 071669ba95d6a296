package mcp

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/roivaz/jupiter-dao-unstake/internal/logging"
	"github.com/roivaz/jupiter-dao-unstake/internal/mcp/tools"
	"github.com/roivaz/jupiter-dao-unstake/internal/mcp/tools/types"
)

const (
	ServerName    = "Jupiter DAO Unstake MCP"
	ServerVersion = "1.0.0"

	ToolDAOUnstake      = "jupiter_dao_unstake"
	PromptUnstakeTokens = "unstake_jup"

	instructions = "Jupiter DAO Unstake MCP enables unstaking JUP tokens from Jupiter DAO via Dialect Blink API.\n" +
		"Provides a simple interface for unstaking tokens from the DAO."
)

type ToolAdapter interface {
	ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

type PromptAdapter interface {
	PromptAdapter(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error)
}

type Server struct {
	MCP     *server.MCPServer
	HTTP    *server.StreamableHTTPServer
	Handler http.Handler
	log     logging.Logger
}

var toolDefinitions = map[string]mcp.Tool{
	ToolDAOUnstake: mcp.NewTool(ToolDAOUnstake,
		mcp.WithDescription("Unstake JUP tokens from Jupiter DAO via Dialect Blink. Returns the unsigned transaction built by Blink, or an error message."),
		mcp.WithNumber("amount",
			mcp.Required(),
			mcp.Description("Amount of JUP tokens to unstake, greater than 0 (e.g. 25, 100, 1000)"),
		),
		mcp.WithString("tx_sender_pubkey",
			mcp.Required(),
			mcp.Description("Solana account public key of the transaction sender (e.g. 'C7GCggFP3464XJK4DudqkSkMjQSeKbNa9SMTf26tPQ5E')"),
		),
		mcp.WithOutputSchema[types.UnstakeResult](),
	),
}

var promptDefinitions = map[string]mcp.Prompt{
	PromptUnstakeTokens: mcp.NewPrompt(PromptUnstakeTokens,
		mcp.WithPromptDescription("Ask to unstake JUP tokens from Jupiter DAO, e.g. \""+tools.PromptSuggestions[0]+"\" or \""+tools.PromptSuggestions[1]+"\""),
		mcp.WithArgument("amount",
			mcp.ArgumentDescription("Amount of JUP tokens to unstake"),
			mcp.RequiredArgument(),
		),
	),
}

func New(cfg Config) *Server {
	mcpServer := server.NewMCPServer(
		ServerName,
		ServerVersion,
		server.WithToolCapabilities(true),
		server.WithPromptCapabilities(false),
		server.WithInstructions(instructions),
	)

	for name, adapter := range cfg.ToolAdapters {
		tool, ok := toolDefinitions[name]
		if !ok {
			cfg.Logger.Info("skipping tool without definition", "tool", name)
			continue
		}
		mcpServer.AddTool(tool, adapter.ToolAdapter)
	}
	for name, adapter := range cfg.PromptAdapters {
		prompt, ok := promptDefinitions[name]
		if !ok {
			cfg.Logger.Info("skipping prompt without definition", "prompt", name)
			continue
		}
		mcpServer.AddPrompt(prompt, adapter.PromptAdapter)
	}

	httpServer := server.NewStreamableHTTPServer(mcpServer, cfg.Options...)

	return &Server{
		MCP:     mcpServer,
		HTTP:    httpServer,
		Handler: httpServer,
		log:     cfg.Logger,
	}
}

// ServeStdio blocks serving MCP over stdin/stdout until the input closes.
func (s *Server) ServeStdio() error {
	s.log.Info("serving MCP over stdio")
	return server.ServeStdio(s.MCP)
}

// ServeHTTP listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) ServeHTTP(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("MCP server listening", "addr", addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.log.Info("shutting down MCP server")
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
