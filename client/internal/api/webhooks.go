package api

import (
	"context"
	"net/url"

	"github.com/channelgate/channelgate-go/client/internal/types"
)

const pathWebhooks = "/api/sellers/webhooks"

// ListWebhooks returns the seller's webhooks.
func ListWebhooks(ctx context.Context, r *Requester) (*types.Envelope[[]types.Webhook], error) {
	return Get[[]types.Webhook](ctx, r, pathWebhooks)
}

// CreateWebhook subscribes a URL to events. The response includes the
// signing secret, which is only returned at creation.
func CreateWebhook(ctx context.Context, r *Requester, req types.CreateWebhookRequest) (*types.Envelope[types.Webhook], error) {
	return Post[types.Webhook](ctx, r, pathWebhooks, req)
}

// DeleteWebhook removes a webhook by id.
func DeleteWebhook(ctx context.Context, r *Requester, webhookID string) (*types.Envelope[types.DeleteWebhookResult], error) {
	if webhookID == "" {
		return nil, ErrEmptyID
	}
	return Delete[types.DeleteWebhookResult](ctx, r, pathWebhooks+"/"+url.PathEscape(webhookID))
}
