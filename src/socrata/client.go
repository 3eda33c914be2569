package socrata

// REST client for Socrata SODA 2.1 resource endpoints.
// RESTY ONLY + INTERNAL RETRY

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	logger "github.com/sirupsen/logrus"
)

const (
	defaultHost            = "https://publicreporting.cftc.gov"
	defaultTimeout         = 30 * time.Second
	defaultBatchSize       = 50000
	defaultRetryAttempts   = 5
	defaultRetryBaseDelay  = 500 * time.Millisecond
	defaultRetryMaxBackoff = 8 * time.Second
)

// Record is one raw SODA row. The datasets are untyped: numeric fields
// arrive as JSON strings (occasionally numbers) and may be absent entirely
// depending on report vintage.
type Record map[string]any

// FetchError wraps any remote-source failure so callers can tell "upstream
// broke" apart from "this market genuinely has no data".
type FetchError struct {
	Dataset    string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("socrata query %s: HTTP %d: %v", e.Dataset, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("socrata query %s: %v", e.Dataset, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Client issues filtered, ordered, paginated queries against named SODA
// datasets. It does no interpretation of rows.
type Client struct {
	baseURL   string
	appToken  string
	batchSize int
	http      *resty.Client
}

func isRetryableResp(r *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	if r == nil {
		return false
	}

	code := r.StatusCode()

	if code >= 500 && code <= 599 {
		return true
	}
	if code == 429 {
		return true
	}
	if code == 408 {
		return true
	}
	return false
}

func NewClient(cfg *Config) *Client {
	retryCount := defaultRetryAttempts - 1

	baseURL := strings.TrimSpace(cfg.Host)
	if baseURL == "" {
		baseURL = defaultHost
		logger.Warnf("No SODA host provided, using default: %s", baseURL)
	}
	baseURL = strings.TrimRight(baseURL, "/")

	timeout := defaultTimeout
	if cfg.TimeoutS > 0 {
		timeout = time.Duration(cfg.TimeoutS) * time.Second
	}

	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(retryCount).
		SetRetryWaitTime(defaultRetryBaseDelay).
		SetRetryMaxWaitTime(defaultRetryMaxBackoff).
		AddRetryCondition(isRetryableResp)

	return &Client{
		baseURL:   baseURL,
		appToken:  cfg.AppToken,
		batchSize: batchSize,
		http:      httpClient,
	}
}

// BatchSize is the page size used by QueryAll.
func (c *Client) BatchSize() int { return c.batchSize }

// Query executes one filtered request against a dataset and returns the raw
// rows. where and order are SoQL expressions; limit/offset page the result.
func (c *Client) Query(ctx context.Context, datasetID, where, order string, limit, offset int) ([]Record, error) {
	req := c.http.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json")

	if c.appToken != "" {
		req = req.SetHeader("X-App-Token", c.appToken)
	}

	params := map[string]string{
		"$limit": strconv.Itoa(limit),
	}
	if where != "" {
		params["$where"] = where
	}
	if order != "" {
		params["$order"] = order
	}
	if offset > 0 {
		params["$offset"] = strconv.Itoa(offset)
	}
	req = req.SetQueryParams(params)

	resp, err := req.Get("/resource/" + datasetID + ".json")
	if err != nil {
		return nil, &FetchError{Dataset: datasetID, Err: err}
	}

	raw := resp.Body()
	if resp.StatusCode() != 200 {
		return nil, &FetchError{
			Dataset:    datasetID,
			StatusCode: resp.StatusCode(),
			Err:        fmt.Errorf("%s", strings.TrimSpace(string(raw))),
		}
	}

	var rows []Record
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, &FetchError{Dataset: datasetID, Err: fmt.Errorf("json unmarshal failed: %w", err)}
	}
	return rows, nil
}

// QueryAll pages through a dataset at the client batch size, advancing the
// offset until a response page comes back shorter than the batch size.
func (c *Client) QueryAll(ctx context.Context, datasetID, where, order string) ([]Record, error) {
	var all []Record
	offset := 0

	for {
		page, err := c.Query(ctx, datasetID, where, order, c.batchSize, offset)
		if err != nil {
			return nil, err
		}
		if len(page) == 0 {
			break
		}

		all = append(all, page...)

		if len(page) < c.batchSize {
			break
		}
		offset += c.batchSize
	}

	return all, nil
}

// EqualsFilter builds a SoQL equality filter on a field, quoting the value.
func EqualsFilter(field, value string) string {
	return field + " = '" + strings.ReplaceAll(value, "'", "''") + "'"
}
