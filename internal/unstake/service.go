// Package unstake builds Jupiter DAO unstake transactions through the Blink API.
package unstake

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/roivaz/jupiter-dao-unstake/internal/blink"
	"github.com/roivaz/jupiter-dao-unstake/internal/logging"
	"github.com/roivaz/jupiter-dao-unstake/internal/mcp/tools/types"
)

const actionPath = "/dao"

// ActionPoster is the subset of *blink.Client the service needs.
type ActionPoster interface {
	PostAction(ctx context.Context, path string, query url.Values, body any) (map[string]any, error)
}

type Request struct {
	Amount          float64
	SenderPublicKey string
}

// Validate rejects requests that must never reach the Blink API.
func (r Request) Validate() error {
	if err := ValidateAmount(r.Amount); err != nil {
		return err
	}
	if strings.TrimSpace(r.SenderPublicKey) == "" {
		return fmt.Errorf("tx_sender_pubkey is required")
	}
	return nil
}

// ValidateAmount accepts finite amounts greater than zero.
func ValidateAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return fmt.Errorf("amount must be a finite number")
	}
	if amount <= 0 {
		return fmt.Errorf("amount must be greater than 0")
	}
	return nil
}

// transactionRequest is the body Blink expects for every action.
type transactionRequest struct {
	Type    string `json:"type"`
	Account string `json:"account"`
}

type Service struct {
	poster ActionPoster
	log    logging.Logger
}

func NewService(poster ActionPoster, log logging.Logger) *Service {
	return &Service{poster: poster, log: log}
}

// Unstake performs one unstake call and always returns a populated envelope.
// The request is expected to have passed Validate.
func (s *Service) Unstake(ctx context.Context, req Request) types.UnstakeResult {
	query := url.Values{}
	query.Set("action", "unstake")
	query.Set("amount", FormatAmount(req.Amount))

	result, err := s.poster.PostAction(ctx, actionPath, query, transactionRequest{
		Type:    "transaction",
		Account: req.SenderPublicKey,
	})
	if err != nil {
		return s.failure(req, err)
	}
	s.log.Info("unstake transaction built", "amount", req.Amount, "account", req.SenderPublicKey)
	return types.UnstakeSucceeded(result)
}

func (s *Service) failure(req Request, err error) types.UnstakeResult {
	var blinkErr *blink.Error
	if !errors.As(err, &blinkErr) {
		blinkErr = &blink.Error{Kind: blink.UnexpectedError, Message: err.Error(), Err: err}
	}
	switch blinkErr.Kind {
	case blink.ConfigurationError:
		s.log.Info("unstake skipped", "reason", blinkErr.Error())
	case blink.RemoteAPIError:
		s.log.Info("blink rejected unstake", "amount", req.Amount, "account", req.SenderPublicKey, "status", blinkErr.StatusCode)
	case blink.TransportError, blink.UnexpectedError:
		s.log.Error(err, "unstake failed", "amount", req.Amount, "account", req.SenderPublicKey, "kind", blinkErr.Kind.String())
	}
	return types.UnstakeFailed(blinkErr.Error())
}

// FormatAmount renders the shortest decimal that round-trips, without
// exponent or grouping: 25 -> "25", 0.5 -> "0.5".
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
