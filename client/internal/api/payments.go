package api

import (
	"context"
	"fmt"

	"github.com/channelgate/channelgate-go/client/internal/types"
)

// DefaultPaymentLimit is used when ListPayments gets a zero limit.
const DefaultPaymentLimit = 100

// ListPayments returns up to limit payments. Zero selects DefaultPaymentLimit;
// any other value, negative included, is sent as is and validated by the backend.
func ListPayments(ctx context.Context, r *Requester, limit int) (*types.Envelope[[]types.Payment], error) {
	if limit == 0 {
		limit = DefaultPaymentLimit
	}
	return Get[[]types.Payment](ctx, r, fmt.Sprintf("/api/sellers/payments?limit=%d", limit))
}

// CreateCheckout starts a hosted checkout session.
func CreateCheckout(ctx context.Context, r *Requester, req types.CreateCheckoutRequest) (*types.Envelope[types.CheckoutSessionResponse], error) {
	return Post[types.CheckoutSessionResponse](ctx, r, "/api/payments/checkout", req)
}
