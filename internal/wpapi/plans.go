package wpapi

import (
	"context"
	"fmt"
	"net/http"
)

// Plan is one subscription tier offered for a site.
type Plan struct {
	ID          int64  `json:"id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"formatted_price"`
	Currency    string `json:"currency"`
}

// IsFree reports whether the plan is the no-cost tier.
func (p Plan) IsFree() bool { return p.Slug == "free" }

type plansResponse struct {
	Plans      []Plan `json:"plans"`
	ActivePlan int64  `json:"active_plan"`
}

// Plans fetches the plans available to a site, plus the ID of the plan the
// site currently has.
func (c *Client) Plans(ctx context.Context, siteID int64) ([]Plan, int64, error) {
	var resp plansResponse
	path := fmt.Sprintf("/sites/%d/plans", siteID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, 0, err
	}
	return resp.Plans, resp.ActivePlan, nil
}
