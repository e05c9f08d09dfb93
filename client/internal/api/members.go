package api

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/channelgate/channelgate-go/client/internal/types"
)

// StatusAll is the filter value that means "any status".
const StatusAll = "all"

// ListMembers returns memberships with their users. A zero ChatID and an
// empty or "all" Status are left out of the query.
func ListMembers(ctx context.Context, r *Requester, f types.MemberFilter) (*types.Envelope[[]types.MemberDetails], error) {
	return Get[[]types.MemberDetails](ctx, r, "/api/sellers/members"+memberQuery(f))
}

func memberQuery(f types.MemberFilter) string {
	params := url.Values{}
	if f.ChatID != 0 {
		params.Set("chat_id", strconv.FormatInt(f.ChatID, 10))
	}
	if f.Status != "" && f.Status != StatusAll {
		params.Set("status", f.Status)
	}
	if len(params) == 0 {
		return ""
	}
	return "?" + params.Encode()
}

// RemoveMember force-removes a user from a chat.
func RemoveMember(ctx context.Context, r *Requester, req types.RemoveMemberRequest) (*types.Envelope[json.RawMessage], error) {
	return Post[json.RawMessage](ctx, r, "/api/telegram/force-remove", req)
}

// GrantAccess grants a user access to one or more chats and returns invites.
func GrantAccess(ctx context.Context, r *Requester, req types.GrantAccessRequest) (*types.Envelope[types.GrantAccessResponse], error) {
	return Post[types.GrantAccessResponse](ctx, r, "/api/telegram/grant-access", req)
}
