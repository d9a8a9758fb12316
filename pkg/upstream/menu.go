package upstream

import (
	"context"
	"net/http"
)

// SidebarMenu returns the navigation tree scoped to the calling register.
func (c *Client) SidebarMenu(ctx context.Context) ([]SidebarItem, error) {
	var items []SidebarItem
	if err := c.do(ctx, http.MethodGet, "/sidebar-menu", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}
