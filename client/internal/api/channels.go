package api

import (
	"context"

	"github.com/channelgate/channelgate-go/client/internal/types"
)

// ListChannels returns the seller's channels.
func ListChannels(ctx context.Context, r *Requester) (*types.Envelope[[]types.Channel], error) {
	return Get[[]types.Channel](ctx, r, "/api/sellers/channels")
}

// AddChannel registers a Telegram chat; the backend checks the bot's rights.
func AddChannel(ctx context.Context, r *Requester, req types.AddChannelRequest) (*types.Envelope[types.AddChannelResponse], error) {
	return Post[types.AddChannelResponse](ctx, r, "/api/telegram/channels", req)
}

// UpdateChannel updates an existing channel. The backend upserts on POST.
func UpdateChannel(ctx context.Context, r *Requester, req types.AddChannelRequest) (*types.Envelope[types.AddChannelResponse], error) {
	return Post[types.AddChannelResponse](ctx, r, "/api/sellers/channels", req)
}
