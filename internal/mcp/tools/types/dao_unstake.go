package types

// UnstakeResult is the envelope returned by the jupiter_dao_unstake tool.
// Result is set only on success and Error only on failure; both serialize as
// null when absent.
type UnstakeResult struct {
	Success bool           `json:"success"`
	Result  map[string]any `json:"result"`
	Error   *string        `json:"error"`
}

func UnstakeSucceeded(result map[string]any) UnstakeResult {
	return UnstakeResult{Success: true, Result: result}
}

func UnstakeFailed(msg string) UnstakeResult {
	return UnstakeResult{Success: false, Error: &msg}
}
