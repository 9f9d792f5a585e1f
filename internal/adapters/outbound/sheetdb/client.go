package sheetdb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/integradaneuropsicologia/ETDAH-II/internal/domain"
)

const defaultTimeout = 30 * time.Second

var _ domain.SheetStore = (*Client)(nil)

// Client implements domain.SheetStore against the SheetDB REST API.
type Client struct {
	base string
	http *http.Client
}

// New creates a client for the API rooted at base. A timeout of zero or less
// falls back to 30 seconds.
func New(base string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{Timeout: timeout},
	}
}

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Method string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("sheetdb %s: HTTP %d", e.Method, e.Status)
	}
	return fmt.Sprintf("sheetdb %s: HTTP %d: %s", e.Method, e.Status, e.Body)
}

// Search returns the rows of sheet whose columns match every param.
func (c *Client) Search(ctx context.Context, sheet string, params map[string]string) ([]domain.Row, error) {
	q := url.Values{}
	q.Set("sheet", sheet)
	for k, v := range params {
		q.Set(k, v)
	}

	var raw []map[string]any
	if err := c.do(ctx, http.MethodGet, c.base+"/search?"+q.Encode(), nil, &raw); err != nil {
		return nil, err
	}

	rows := make([]domain.Row, 0, len(raw))
	for _, r := range raw {
		rows = append(rows, toRow(r))
	}
	return rows, nil
}

// Create appends row to sheet.
func (c *Client) Create(ctx context.Context, sheet string, row domain.Row) error {
	u := c.base + "?sheet=" + url.QueryEscape(sheet)
	return c.do(ctx, http.MethodPost, u, map[string]any{"data": []domain.Row{row}}, nil)
}

// PatchBy updates the rows of sheet where column equals value.
func (c *Client) PatchBy(ctx context.Context, sheet, column, value string, data domain.Row) error {
	u := fmt.Sprintf("%s/%s/%s?sheet=%s",
		c.base, url.PathEscape(column), url.PathEscape(value), url.QueryEscape(sheet))
	return c.do(ctx, http.MethodPatch, u, map[string]any{"data": data}, nil)
}

func (c *Client) do(ctx context.Context, method, u string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding %s body: %w", method, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("building %s request: %w", method, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("sheetdb %s: %w", method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &StatusError{Method: method, Status: resp.StatusCode, Body: strings.TrimSpace(string(msg))}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding sheetdb response: %w", err)
	}
	return nil
}

// toRow flattens a JSON object into strings. Sheets return numbers for
// numeric-looking cells.
func toRow(m map[string]any) domain.Row {
	r := make(domain.Row, len(m))
	for k, v := range m {
		switch t := v.(type) {
		case nil:
			r[k] = ""
		case string:
			r[k] = t
		case float64:
			r[k] = strconv.FormatFloat(t, 'f', -1, 64)
		default:
			r[k] = fmt.Sprint(t)
		}
	}
	return r
}
