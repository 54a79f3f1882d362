package wpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// Draft is a post draft created by the share flow.
type Draft struct {
	Title      string  `json:"title"`
	Content    string  `json:"content"`
	Categories []int64 `json:"categories,omitempty"`
	Status     string  `json:"status"`

	// ClientID makes retried submissions idempotent on the service side.
	ClientID string `json:"client_id"`
}

// DraftResult is the service's record of a created draft.
type DraftResult struct {
	ID  int64  `json:"ID"`
	URL string `json:"URL"`
}

// CreateDraft submits a new draft post for a site. A missing ClientID is
// filled with a fresh UUID.
func (c *Client) CreateDraft(ctx context.Context, siteID int64, draft Draft) (DraftResult, error) {
	if draft.Status == "" {
		draft.Status = "draft"
	}
	if draft.ClientID == "" {
		draft.ClientID = uuid.NewString()
	}

	var out DraftResult
	path := fmt.Sprintf("/sites/%d/posts/new", siteID)
	if err := c.do(ctx, http.MethodPost, path, nil, draft, &out); err != nil {
		return DraftResult{}, err
	}
	return out, nil
}
