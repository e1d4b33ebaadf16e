// Package remote synchronizes assembled plan records to the remote tabular
// store over its REST API using a lookup-then-write protocol: at most one
// remote entry exists per identity key, provided no concurrent writer races
// the same key during the lookup-then-write window (single-session usage).
package remote

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/teflaherty67/DataQuery/internal/model"
)

// Client talks to one table of the remote store. The underlying HTTP
// client is reused across all requests in a run. No retries and no
// client-side timeout are configured: a failed response aborts the run,
// and responsiveness is left to the transport's defaults.
type Client struct {
	httpClient *resty.Client
	table      string
	logger     *zap.Logger
}

// SyncResult reports what the upsert did.
type SyncResult struct {
	RecordID string
	Created  bool // false means an existing record was updated
}

// recordEnvelope is the remote store's record shape.
type recordEnvelope struct {
	ID     string         `json:"id"`
	Fields map[string]any `json:"fields"`
}

// lookupResponse is the body of a filtered read request.
type lookupResponse struct {
	Records []recordEnvelope `json:"records"`
}

// NewClient creates a sync client for one base URL and table.
func NewClient(baseURL, token, table string, logger *zap.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(token).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{
		httpClient: httpClient,
		table:      table,
		logger:     logger,
	}
}

// Find looks up an existing record by identity key and returns its opaque
// id, or "" when no record matches.
func (c *Client) Find(ctx context.Context, key model.IdentityKey) (string, error) {
	var result lookupResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("filterByFormula", identityFormula(key)).
		SetQueryParam("maxRecords", "1").
		SetResult(&result).
		Get("/" + c.table)

	if err != nil {
		return "", fmt.Errorf("failed to look up plan record: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("remote store lookup returned %s: %s", resp.Status(), resp.String())
	}

	if len(result.Records) == 0 {
		return "", nil
	}
	return result.Records[0].ID, nil
}

// Upsert writes the record to the remote store: an update when a record
// with the same identity key already exists, a create otherwise. The
// lookup always completes before the write is issued.
func (c *Client) Upsert(ctx context.Context, rec *model.PlanRecord) (SyncResult, error) {
	id, err := c.Find(ctx, rec.Key())
	if err != nil {
		return SyncResult{}, err
	}

	if id != "" {
		if err := c.update(ctx, id, rec); err != nil {
			return SyncResult{}, err
		}
		c.logger.Info("Updated existing plan record",
			zap.String("record_id", id),
			zap.String("plan_name", rec.PlanName),
		)
		return SyncResult{RecordID: id, Created: false}, nil
	}

	newID, err := c.create(ctx, rec)
	if err != nil {
		return SyncResult{}, err
	}
	c.logger.Info("Created new plan record",
		zap.String("record_id", newID),
		zap.String("plan_name", rec.PlanName),
	)
	return SyncResult{RecordID: newID, Created: true}, nil
}

func (c *Client) create(ctx context.Context, rec *model.PlanRecord) (string, error) {
	var created recordEnvelope
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(map[string]any{"fields": recordFields(rec)}).
		SetResult(&created).
		Post("/" + c.table)

	if err != nil {
		return "", fmt.Errorf("failed to create plan record: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("remote store create returned %s: %s", resp.Status(), resp.String())
	}
	return created.ID, nil
}

func (c *Client) update(ctx context.Context, id string, rec *model.PlanRecord) error {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(map[string]any{"fields": recordFields(rec)}).
		Patch("/" + c.table + "/" + id)

	if err != nil {
		return fmt.Errorf("failed to update plan record: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("remote store update returned %s: %s", resp.Status(), resp.String())
	}
	return nil
}

// identityFormula builds the server-side filter expression conjoining
// exact matches on the three identity fields.
func identityFormula(key model.IdentityKey) string {
	return fmt.Sprintf(`AND({Plan Name}=%s,{Spec Level}=%s,{Client Subdivision}=%s)`,
		formulaString(key.PlanName),
		formulaString(key.SpecLevel),
		formulaString(key.Subdivision),
	)
}

// formulaString quotes a value for use inside a filter formula.
func formulaString(value string) string {
	return `"` + strings.ReplaceAll(value, `"`, `\"`) + `"`
}
