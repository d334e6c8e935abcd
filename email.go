package sec4dev

import (
	"context"

	"github.com/sec4dev/sec4dev-go/internal/api"
)

// EmailCheckResult is the outcome of a disposable email check.
type EmailCheckResult struct {
	Email        string `json:"email"`
	Domain       string `json:"domain"`
	IsDisposable bool   `json:"is_disposable"`
}

// EmailService checks email addresses against the disposable domain list.
type EmailService struct {
	api *api.Client
}

// Check validates email locally, then asks the API whether its domain is
// disposable. Invalid input returns a Validation *APIError without any
// request being made.
func (s *EmailService) Check(ctx context.Context, email string) (*EmailCheckResult, error) {
	trimmed, err := validateEmail(email)
	if err != nil {
		return nil, err
	}

	resp, err := s.api.CheckEmail(ctx, trimmed)
	if err != nil {
		return nil, err
	}
	return newEmailCheckResult(resp, trimmed), nil
}

// IsDisposable reports whether email uses a disposable domain.
func (s *EmailService) IsDisposable(ctx context.Context, email string) (bool, error) {
	result, err := s.Check(ctx, email)
	if err != nil {
		return false, err
	}
	return result.IsDisposable, nil
}

func newEmailCheckResult(resp *api.EmailCheckResponse, submitted string) *EmailCheckResult {
	result := &EmailCheckResult{
		Email:        resp.Email,
		Domain:       resp.Domain,
		IsDisposable: resp.IsDisposable,
	}
	if result.Email == "" {
		result.Email = submitted
	}
	return result
}
