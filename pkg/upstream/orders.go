package upstream

import (
	"context"
	"net/http"

	pkgerrors "github.com/paypointhq/pos-register/pkg/errors"
)

// SubmitOrder posts a completed sale and returns the platform-assigned order ID.
func (c *Client) SubmitOrder(ctx context.Context, req OrderRequest) (*OrderResponse, error) {
	if len(req.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order must contain at least one item")
	}
	var resp OrderResponse
	if err := c.do(ctx, http.MethodPost, "/orders/", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
