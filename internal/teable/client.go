// Package teable is the HTTP client for the hosted table-database that holds
// all persistent application data. Every table lives upstream; this package
// only moves records back and forth. No business logic lives here — callers
// decide which fields mean what via a domain.FieldMap.
//
// Requests are fire-and-forget from the application's point of view: there is
// no retry and no local caching. A failed call surfaces as an error and the
// caller's state is left untouched.
package teable

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/barlev-tours/schedule-board/internal/domain"
)

// fetchAllPageSize is the take used by ListAll when draining a table.
// Matches the page size the upstream accepts without truncating.
const fetchAllPageSize = 1000

// Client talks to one table-database deployment. It is safe for concurrent
// use; all methods take a context and return explicit errors.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New constructs a Client for the deployment at baseURL (no trailing slash),
// authenticating every request with the given bearer token.
func New(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// APIError is returned when the upstream answers with a non-2xx status.
// Handlers forward StatusCode to the browser, as the proxy routes always have.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("teable: upstream returned %d: %s", e.StatusCode, e.Body)
}

// Page is one page of a record listing.
type Page struct {
	Records []domain.Record `json:"records"`
	Total   int             `json:"total"`
}

// ListOptions narrows a record listing. Zero values mean "no constraint"
// (upstream defaults apply).
type ListOptions struct {
	Take   int
	Skip   int
	Search string
}

// ListRecords fetches one page of records from tableID.
func (c *Client) ListRecords(ctx context.Context, tableID string, opts ListOptions) (Page, error) {
	q := url.Values{}
	q.Set("fieldKeyType", "id")
	if opts.Take > 0 {
		q.Set("take", strconv.Itoa(opts.Take))
	}
	if opts.Skip > 0 {
		q.Set("skip", strconv.Itoa(opts.Skip))
	}
	if opts.Search != "" {
		q.Add("search[]", opts.Search)
	}

	var page Page
	err := c.do(ctx, http.MethodGet, c.recordURL(tableID)+"?"+q.Encode(), nil, &page)
	if err != nil {
		return Page{}, fmt.Errorf("teable.Client.ListRecords: %w", err)
	}
	return page, nil
}

// ListAll drains tableID completely, paging in fetchAllPageSize chunks until
// a short page comes back. The store caps a single take, so listing a whole
// grid is always a loop.
func (c *Client) ListAll(ctx context.Context, tableID string) ([]domain.Record, error) {
	var all []domain.Record
	skip := 0
	for {
		page, err := c.ListRecords(ctx, tableID, ListOptions{Take: fetchAllPageSize, Skip: skip})
		if err != nil {
			return nil, fmt.Errorf("teable.Client.ListAll: %w", err)
		}
		if len(page.Records) == 0 {
			break
		}
		all = append(all, page.Records...)
		if len(page.Records) < fetchAllPageSize {
			break
		}
		skip += fetchAllPageSize
	}
	return all, nil
}

// CreateRecord inserts one record into tableID and returns it as persisted
// (with the store-assigned id). typecast lets the store coerce link fields
// given as plain text, which is how the trip form submits customer names.
func (c *Client) CreateRecord(ctx context.Context, tableID string, fields map[string]any) (domain.Record, error) {
	body := map[string]any{
		"fieldKeyType": "id",
		"typecast":     true,
		"records":      []map[string]any{{"fields": fields}},
	}

	var resp struct {
		Records []domain.Record `json:"records"`
	}
	if err := c.do(ctx, http.MethodPost, c.recordURL(tableID), body, &resp); err != nil {
		return domain.Record{}, fmt.Errorf("teable.Client.CreateRecord: %w", err)
	}
	if len(resp.Records) == 0 {
		return domain.Record{}, fmt.Errorf("teable.Client.CreateRecord: upstream returned no record")
	}
	return resp.Records[0], nil
}

// UpdateRecord patches the given fields of one record. Fields not present in
// the map are left untouched upstream.
func (c *Client) UpdateRecord(ctx context.Context, tableID, recordID string, fields map[string]any) (domain.Record, error) {
	body := map[string]any{
		"fieldKeyType": "id",
		"typecast":     true,
		"record":       map[string]any{"fields": fields},
	}

	var rec domain.Record
	if err := c.do(ctx, http.MethodPatch, c.recordURL(tableID)+"/"+recordID, body, &rec); err != nil {
		return domain.Record{}, fmt.Errorf("teable.Client.UpdateRecord: %w", err)
	}
	return rec, nil
}

// DeleteRecord removes one record permanently. There is no soft delete.
func (c *Client) DeleteRecord(ctx context.Context, tableID, recordID string) error {
	if err := c.do(ctx, http.MethodDelete, c.recordURL(tableID)+"/"+recordID, nil, nil); err != nil {
		return fmt.Errorf("teable.Client.DeleteRecord: %w", err)
	}
	return nil
}

// DeleteRecords removes a batch of records in one call.
func (c *Client) DeleteRecords(ctx context.Context, tableID string, recordIDs []string) error {
	q := url.Values{}
	for _, id := range recordIDs {
		q.Add("recordIds[]", id)
	}
	if err := c.do(ctx, http.MethodDelete, c.recordURL(tableID)+"?"+q.Encode(), nil, nil); err != nil {
		return fmt.Errorf("teable.Client.DeleteRecords: %w", err)
	}
	return nil
}

func (c *Client) recordURL(tableID string) string {
	return c.baseURL + "/api/table/" + tableID + "/record"
}

// do executes one request. A nil body sends no payload; a nil out discards
// the response body. Non-2xx statuses become *APIError with the upstream
// status and raw body preserved for logging.
func (c *Client) do(ctx context.Context, method, rawURL string, body, out any) error {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if resp.StatusCode == http.StatusNotFound {
			return domain.ErrNotFound
		}
		return &APIError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
