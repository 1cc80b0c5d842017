// Package client calls the waitlist service over HTTP. The chat bot is its
// only user.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"sab_waitlist/internal/auth"
	"sab_waitlist/internal/models"
	"sab_waitlist/internal/response"
)

// DefaultTimeout bounds every request when none is configured.
const DefaultTimeout = 10 * time.Second

// APIError is a non-2xx answer from the service.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	// Set on 409 from Admit.
	Existing *models.WaitlistEntry
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("waitlist service returned %d", e.StatusCode)
	}
	return fmt.Sprintf("waitlist service returned %d: %s", e.StatusCode, e.Message)
}

// StatusOf returns the HTTP status carried by err, or 0 when the service
// could not be reached.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// Client talks to one waitlist service.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func New(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

// Admission is what the bot collects for a new buyer.
type Admission struct {
	AccountID   string
	DisplayName string
	CreditPaid  int
	Steals      int
}

// ConsumeResult mirrors response.ConsumeResponse.
type ConsumeResult struct {
	Removed bool
	Entry   models.WaitlistEntry
}

// Players is the live session roster.
type Players struct {
	Players []models.PlayerSession `json:"players"`
	Count   int                    `json:"count"`
	JobID   *string                `json:"jobId"`
}

func (c *Client) Admit(ctx context.Context, a Admission) (models.WaitlistEntry, error) {
	var out response.AdmitResponse
	err := c.do(ctx, http.MethodPost, "/waitlist/add", map[string]interface{}{
		"discordId":       a.AccountID,
		"discordUsername": a.DisplayName,
		"brainrotPaid":    a.CreditPaid,
		"steals":          a.Steals,
	}, &out)
	return out.User, err
}

func (c *Client) CreditSteals(ctx context.Context, accountID string, amount int) (models.WaitlistEntry, error) {
	var out response.EntryResponse
	err := c.do(ctx, http.MethodPost, "/waitlist/addsteals", map[string]interface{}{
		"discordId": accountID,
		"amount":    amount,
	}, &out)
	return out.User, err
}

// ConsumeSteals uses amount steals; amount 0 lets the service default to one.
func (c *Client) ConsumeSteals(ctx context.Context, accountID string, amount int) (ConsumeResult, error) {
	body := map[string]interface{}{"discordId": accountID}
	if amount != 0 {
		body["amount"] = amount
	}
	var out response.ConsumeResponse
	if err := c.do(ctx, http.MethodPost, "/waitlist/usesteals", body, &out); err != nil {
		return ConsumeResult{}, err
	}
	return ConsumeResult{Removed: out.Removed, Entry: out.User}, nil
}

func (c *Client) Reposition(ctx context.Context, accountID string, position int) (models.WaitlistEntry, int, error) {
	var out response.RepositionResponse
	err := c.do(ctx, http.MethodPost, "/waitlist/updateposition", map[string]interface{}{
		"discordId":   accountID,
		"newPosition": position,
	}, &out)
	return out.User, out.OldPosition, err
}

func (c *Client) Remove(ctx context.Context, accountID string) (models.WaitlistEntry, error) {
	var out response.EntryResponse
	err := c.do(ctx, http.MethodPost, "/waitlist/remove", map[string]interface{}{"discordId": accountID}, &out)
	return out.User, err
}

func (c *Client) Get(ctx context.Context, accountID string) (models.WaitlistEntry, error) {
	var out response.EntryResponse
	err := c.do(ctx, http.MethodGet, "/waitlist/get/"+url.PathEscape(accountID), nil, &out)
	return out.User, err
}

func (c *Client) List(ctx context.Context) (response.ListResponse, error) {
	var out response.ListResponse
	err := c.do(ctx, http.MethodGet, "/waitlist/list", nil, &out)
	return out, err
}

func (c *Client) AddExempt(ctx context.Context, name string) (string, error) {
	var out response.ExemptResponse
	err := c.do(ctx, http.MethodPost, "/exempt/add", map[string]interface{}{"username": name}, &out)
	return out.Username, err
}

func (c *Client) RemoveExempt(ctx context.Context, name string) (string, bool, error) {
	var out response.ExemptResponse
	if err := c.do(ctx, http.MethodPost, "/exempt/remove", map[string]interface{}{"username": name}, &out); err != nil {
		return "", false, err
	}
	return out.Username, out.Existed != nil && *out.Existed, nil
}

func (c *Client) IsExempt(ctx context.Context, name string) (bool, error) {
	var out struct {
		Exempt bool `json:"exempt"`
	}
	err := c.do(ctx, http.MethodGet, "/exempt/check/"+url.PathEscape(name), nil, &out)
	return out.Exempt, err
}

// JobID returns the current job id. A 404 APIError means none is set.
func (c *Client) JobID(ctx context.Context) (string, error) {
	var out struct {
		JobID string `json:"jobId"`
	}
	err := c.do(ctx, http.MethodGet, "/getjobid", nil, &out)
	return out.JobID, err
}

func (c *Client) Players(ctx context.Context) (Players, error) {
	var out Players
	err := c.do(ctx, http.MethodGet, "/players/list", nil, &out)
	return out, err
}

func (c *Client) do(ctx context.Context, method, path string, body map[string]interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s: %w", path, err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set(auth.HeaderAPIKey, c.apiKey)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		apiErr := &APIError{StatusCode: res.StatusCode}
		var failure response.ConflictResponse
		if json.Unmarshal(raw, &failure) == nil {
			apiErr.Code = failure.Code
			apiErr.Message = failure.Message
			apiErr.Existing = failure.User
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
