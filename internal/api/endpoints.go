package api

import (
	"context"
	"net/http"
)

// Endpoint paths, relative to the base URL.
const (
	PathEmailCheck = "/email/check"
	PathIPCheck    = "/ip/check"
)

// CheckEmail checks whether an email address uses a disposable domain.
func (c *Client) CheckEmail(ctx context.Context, email string) (*EmailCheckResponse, error) {
	var result EmailCheckResponse
	if _, err := c.Do(ctx, http.MethodPost, PathEmailCheck, EmailCheckRequest{Email: email}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CheckIP retrieves the reputation of an IP address.
func (c *Client) CheckIP(ctx context.Context, ip string) (*IPCheckResponse, error) {
	var result IPCheckResponse
	if _, err := c.Do(ctx, http.MethodPost, PathIPCheck, IPCheckRequest{IP: ip}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
