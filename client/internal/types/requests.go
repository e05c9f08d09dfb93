package types

// ------------------------------
// Request Types
// ------------------------------

// LoginRequest holds seller credentials
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest holds parameters for a new seller
type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	CompanyName string `json:"company_name,omitempty"`
}

// StripeKeysRequest holds the seller's own Stripe credentials
type StripeKeysRequest struct {
	PublishableKey string `json:"publishable_key"`
	SecretKey      string `json:"secret_key"`
}

// AddChannelRequest registers or updates a channel
type AddChannelRequest struct {
	ChatID        int64    `json:"chat_id"`
	Name          string   `json:"name"`
	JoinModel     string   `json:"join_model,omitempty"`
	Description   string   `json:"description,omitempty"`
	PricePerMonth *float64 `json:"price_per_month,omitempty"`
}

// RemoveMemberRequest force-removes a user from a chat
type RemoveMemberRequest struct {
	ExtUserID string `json:"ext_user_id"`
	ChatID    int64  `json:"chat_id"`
	Reason    string `json:"reason,omitempty"`
	DryRun    bool   `json:"dry_run,omitempty"`
}

// GrantAccessRequest grants a user access to chats for a period
type GrantAccessRequest struct {
	ExtUserID  string  `json:"ext_user_id"`
	ChatIDs    []int64 `json:"chat_ids"`
	PeriodDays int     `json:"period_days"`
	Ref        string  `json:"ref,omitempty"`
}

// CreateCheckoutRequest starts a hosted checkout session
type CreateCheckoutRequest struct {
	PriceID       string            `json:"price_id"`
	SuccessURL    string            `json:"success_url"`
	CancelURL     string            `json:"cancel_url"`
	CustomerEmail string            `json:"customer_email,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

// CreateWebhookRequest subscribes a URL to events
type CreateWebhookRequest struct {
	URL    string   `json:"url"`
	Events []string `json:"events"`
}

// MemberFilter narrows a member listing. Zero values mean "no filter";
// Status "all" is treated the same as empty.
type MemberFilter struct {
	ChatID int64
	Status string
}
