package tools

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

func parseAmountArgument(value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, fmt.Errorf("amount must be a number")
		}
		return f, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("amount must be a number")
		}
		return f, nil
	case nil:
		return 0, fmt.Errorf("amount must be provided")
	default:
		return 0, fmt.Errorf("amount must be a number")
	}
}

func mustMarshal(v interface{}) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}
