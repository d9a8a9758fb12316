package upstream

import (
	"context"
	"fmt"
	"net/http"
)

// ListCustomers returns one page of the platform customer directory.
func (c *Client) ListCustomers(ctx context.Context, page int) (*CustomerPage, error) {
	if page <= 0 {
		page = 1
	}
	var resp CustomerPage
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/customers/?page=%d", page), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
