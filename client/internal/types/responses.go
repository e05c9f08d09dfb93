package types

import "encoding/json"

// ------------------------------
// Response Types
// ------------------------------

// AuthTokens is returned by a successful login
type AuthTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// RegistrationData is returned by a successful registration
type RegistrationData struct {
	SellerID string `json:"seller_id"`
	Email    string `json:"email"`
	APIKey   string `json:"api_key"`
}

// ChannelPermissions lists the bot's admin rights in a chat
type ChannelPermissions struct {
	CanInviteUsers     bool `json:"can_invite_users"`
	CanManageChat      bool `json:"can_manage_chat"`
	CanRestrictMembers bool `json:"can_restrict_members"`
}

// ChannelChecks reports what the backend verified about the bot in a chat
type ChannelChecks struct {
	BotID       int64              `json:"bot_id"`
	ChatFound   bool               `json:"chat_found"`
	IsAdmin     bool               `json:"is_admin"`
	Permissions ChannelPermissions `json:"permissions"`
}

// AddChannelResponse is returned when a channel is added or updated
type AddChannelResponse struct {
	ChatID       int64         `json:"chat_id"`
	StoredChatID int64         `json:"stored_chat_id"`
	Name         string        `json:"name"`
	JoinModel    string        `json:"join_model"`
	Checks       ChannelChecks `json:"checks"`
}

// GrantAccessResponse maps chat ids to invite links
type GrantAccessResponse struct {
	UserID    string            `json:"user_id"`
	Invites   map[string]string `json:"invites"`
	PeriodEnd Timestamp         `json:"period_end"`
	Errors    json.RawMessage   `json:"errors,omitempty"`
}

// CheckoutSessionResponse identifies a hosted checkout session
type CheckoutSessionResponse struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
}

// DeleteWebhookResult is the payload of a webhook deletion
type DeleteWebhookResult struct {
	Success bool `json:"success"`
}
