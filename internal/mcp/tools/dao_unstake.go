package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/jupiter-dao-unstake/internal/mcp/tools/types"
	"github.com/roivaz/jupiter-dao-unstake/internal/unstake"
)

type UnstakeService interface {
	Unstake(ctx context.Context, req unstake.Request) types.UnstakeResult
}

type DAOUnstakeHandler struct {
	Service UnstakeService
}

// ToolAdapter validates the arguments before anything is sent to Blink.
// Invalid input is a tool error; every other outcome is the envelope, as
// structured content with its JSON text alongside.
func (h *DAOUnstakeHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	amount, err := parseAmountArgument(args["amount"])
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	pubkey, _ := args["tx_sender_pubkey"].(string)

	request := unstake.Request{Amount: amount, SenderPublicKey: pubkey}
	if err := request.Validate(); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := h.Service.Unstake(ctx, request)
	return mcp.NewToolResultStructured(result, string(mustMarshal(result))), nil
}
