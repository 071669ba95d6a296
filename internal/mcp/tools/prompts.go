package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/jupiter-dao-unstake/internal/unstake"
)

// PromptSuggestions are the example requests advertised to clients.
var PromptSuggestions = []string{
	"Unstake 25 JUP tokens from Jupiter DAO",
	"Unstake 1000 JUP tokens from Jupiter DAO",
}

type UnstakePromptHandler struct{}

func (h *UnstakePromptHandler) PromptAdapter(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	amount := strings.TrimSpace(req.Params.Arguments["amount"])
	if amount == "" {
		return nil, fmt.Errorf("amount argument is required")
	}
	parsed, err := parseAmountArgument(amount)
	if err != nil {
		return nil, err
	}
	if err := unstake.ValidateAmount(parsed); err != nil {
		return nil, err
	}
	text := fmt.Sprintf("Unstake %s JUP tokens from Jupiter DAO", amount)
	return &mcp.GetPromptResult{
		Description: "Unstake JUP tokens from Jupiter DAO",
		Messages: []mcp.PromptMessage{
			{
				Role:    mcp.RoleUser,
				Content: mcp.TextContent{Type: "text", Text: text},
			},
		},
	}, nil
}
