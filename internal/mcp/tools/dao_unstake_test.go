package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roivaz/jupiter-dao-unstake/internal/mcp/tools/types"
	"github.com/roivaz/jupiter-dao-unstake/internal/unstake"
)

type fakeUnstakeService struct {
	calls  []unstake.Request
	result types.UnstakeResult
}

func (f *fakeUnstakeService) Unstake(_ context.Context, req unstake.Request) types.UnstakeResult {
	f.calls = append(f.calls, req)
	return f.result
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = "jupiter_dao_unstake"
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return text.Text
}

func TestDAOUnstakeHandler_RejectsInvalidAmount(t *testing.T) {
	for name, amount := range map[string]any{
		"zero":     0.0,
		"negative": -5.0,
		"missing":  nil,
		"garbage":  "lots",
		"bool":     true,
	} {
		t.Run(name, func(t *testing.T) {
			svc := &fakeUnstakeService{}
			h := &DAOUnstakeHandler{Service: svc}

			res, err := h.ToolAdapter(context.Background(), callRequest(map[string]any{
				"amount":           amount,
				"tx_sender_pubkey": "ABC",
			}))
			require.NoError(t, err)
			assert.True(t, res.IsError)
			assert.Empty(t, svc.calls)
		})
	}
}

func TestDAOUnstakeHandler_RejectsMissingPubkey(t *testing.T) {
	svc := &fakeUnstakeService{}
	h := &DAOUnstakeHandler{Service: svc}

	res, err := h.ToolAdapter(context.Background(), callRequest(map[string]any{"amount": 25.0}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "tx_sender_pubkey")
	assert.Empty(t, svc.calls)
}

func TestDAOUnstakeHandler_ReturnsEnvelope(t *testing.T) {
	svc := &fakeUnstakeService{result: types.UnstakeSucceeded(map[string]any{"transaction": "abcd"})}
	h := &DAOUnstakeHandler{Service: svc}

	res, err := h.ToolAdapter(context.Background(), callRequest(map[string]any{
		"amount":           "25",
		"tx_sender_pubkey": "C7GCggFP3464XJK4DudqkSkMjQSeKbNa9SMTf26tPQ5E",
	}))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.JSONEq(t, `{"success":true,"result":{"transaction":"abcd"},"error":null}`, resultText(t, res))
	assert.Equal(t, svc.result, res.StructuredContent)

	require.Len(t, svc.calls, 1)
	assert.Equal(t, unstake.Request{Amount: 25, SenderPublicKey: "C7GCggFP3464XJK4DudqkSkMjQSeKbNa9SMTf26tPQ5E"}, svc.calls[0])
}

func TestDAOUnstakeHandler_FailureIsNotToolError(t *testing.T) {
	svc := &fakeUnstakeService{result: types.UnstakeFailed("API error: insufficient balance")}
	h := &DAOUnstakeHandler{Service: svc}

	res, err := h.ToolAdapter(context.Background(), callRequest(map[string]any{
		"amount":           json.Number("100"),
		"tx_sender_pubkey": "ABC",
	}))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.JSONEq(t, `{"success":false,"result":null,"error":"API error: insufficient balance"}`, resultText(t, res))
}

func TestUnstakePromptHandler(t *testing.T) {
	h := &UnstakePromptHandler{}

	req := mcp.GetPromptRequest{}
	req.Params.Name = "unstake_jup"
	req.Params.Arguments = map[string]string{"amount": "25"}
	res, err := h.PromptAdapter(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, res.Messages, 1)
	assert.Equal(t, mcp.RoleUser, res.Messages[0].Role)
	assert.Equal(t, PromptSuggestions[0], res.Messages[0].Content.(mcp.TextContent).Text)

	for _, amount := range []string{"many", "-5", "0", "NaN", ""} {
		req.Params.Arguments = map[string]string{"amount": amount}
		_, err = h.PromptAdapter(context.Background(), req)
		assert.Error(t, err, amount)
	}
}
