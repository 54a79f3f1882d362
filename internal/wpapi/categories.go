package wpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Category is one post category of a site.
type Category struct {
	ID     int64  `json:"ID"`
	Name   string `json:"name"`
	Parent int64  `json:"parent"`
}

type categoriesResponse struct {
	Categories []Category `json:"categories"`
	Found      int        `json:"found"`
}

const categoriesPageSize = 100

// Categories fetches every post category of a site, following pagination.
func (c *Client) Categories(ctx context.Context, siteID int64) ([]Category, error) {
	path := fmt.Sprintf("/sites/%d/categories", siteID)

	var out []Category
	for page := 1; ; page++ {
		query := url.Values{
			"page":   {strconv.Itoa(page)},
			"number": {strconv.Itoa(categoriesPageSize)},
		}
		var resp categoriesResponse
		if err := c.do(ctx, http.MethodGet, path, query, nil, &resp); err != nil {
			return nil, err
		}
		out = append(out, resp.Categories...)
		if len(resp.Categories) < categoriesPageSize || len(out) >= resp.Found {
			break
		}
	}
	return out, nil
}
