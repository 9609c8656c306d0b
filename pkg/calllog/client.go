// Package calllog provides a typed, read-only client over the external
// call-center platform's record API.
package calllog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Call type classifications assigned by the platform.
const (
	// CallTypeFirstCall marks the first outbound contact attempt to a
	// counterpart. First calls bypass the ownership-admission guard.
	CallTypeFirstCall = 1
	// CallTypeUnclassified is the platform's bucket for calls its operators
	// have not categorized yet.
	CallTypeUnclassified = 8
)

// ErrMissingToken is returned when the client is constructed without an API token.
var ErrMissingToken = errors.New("call-log API token is required")

// Record is a single outbound-call record as returned by the platform.
// Records are owned by the platform: re-fetched, never mutated locally.
type Record struct {
	RecordID    int64  `json:"record_id"`
	Username    string `json:"username"`
	Company     string `json:"company"`
	PhoneNumber string `json:"phone_number"`
	CreatedAt   string `json:"created_at"`
	IsOut       int    `json:"is_out"`
	IsContract  int    `json:"is_contract"`
	Type        int    `json:"type"`
}

// IsFirstCall reports whether the record is classified as a first outbound call.
func (r Record) IsFirstCall() bool {
	return r.Type == CallTypeFirstCall
}

// ExternalID returns the record id as the string key stored in the ledger.
func (r Record) ExternalID() string {
	return strconv.FormatInt(r.RecordID, 10)
}

// FetchParams describes one page request. Dates are whole-day strings
// (YYYY-MM-DD): sub-day precision is not representable in the query contract.
type FetchParams struct {
	StartDate    string
	EndDate      string
	Page         int
	Row          int
	OutboundOnly bool
	CallType     int // 0 means no call-type filter
}

// FetchResult holds one page of records together with the total the platform
// reported at the time of the request. The total may change between pages
// while the upstream log is still being written; callers owning the
// pagination loop must re-read it on every page.
type FetchResult struct {
	Records    []Record
	TotalCount int
}

type apiResponse struct {
	Results struct {
		TotalCount int      `json:"total_count"`
		Data       []Record `json:"data"`
	} `json:"results"`
}

// Client is a read-only client for the call-log record API.
type Client struct {
	base       string
	token      string
	httpClient *http.Client
}

// NewClient creates a call-log API client. The token is sent as a bearer
// authorization header on every request.
func NewClient(base, token string) (*Client, error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	return &Client{
		base:  base,
		token: token,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}, nil
}

// Fetch performs one HTTP round trip for a single page of call records.
// Any non-success response fails immediately; the client performs no retry.
// Retry and backoff policy, if wanted, belongs to the caller.
func (c *Client) Fetch(ctx context.Context, params FetchParams) (*FetchResult, error) {
	page := params.Page
	if page <= 0 {
		page = 1
	}
	row := params.Row
	if row <= 0 {
		row = 100
	}

	q := url.Values{}
	q.Set("row", strconv.Itoa(row))
	q.Set("page", strconv.Itoa(page))
	q.Set("start_date", params.StartDate)
	q.Set("end_date", params.EndDate)
	if params.OutboundOnly {
		q.Set("is_out", "1")
	}
	if params.CallType != 0 {
		q.Set("call_type", strconv.Itoa(params.CallType))
	}
	q.Set("sort", "date-desc")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/api/record?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create call-log request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call-log fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("call-log fetch failed: status %d: %s", resp.StatusCode, string(body))
	}

	var decoded apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode call-log response: %w", err)
	}

	return &FetchResult{
		Records:    decoded.Results.Data,
		TotalCount: decoded.Results.TotalCount,
	}, nil
}
