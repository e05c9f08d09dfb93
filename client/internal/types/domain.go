package types

// ------------------------------
// Core Domain Entities
// ------------------------------

// Seller is the tenant account that owns channels, members and payments.
type Seller struct {
	ID                 string     `json:"id"`
	Email              string     `json:"email"`
	CompanyName        string     `json:"company_name,omitempty"`
	IsActive           bool       `json:"is_active"`
	IsVerified         bool       `json:"is_verified"`
	SubscriptionStatus string     `json:"subscription_status"`
	CreatedAt          Timestamp  `json:"created_at"`
	LastLogin          *Timestamp `json:"last_login,omitempty"`
}

// SellerStats aggregates a seller's channels, members and revenue.
type SellerStats struct {
	TotalChannels       int     `json:"total_channels"`
	ActiveMembers       int     `json:"active_members"`
	TotalMembers        int     `json:"total_members"`
	TotalRevenueCents   int64   `json:"total_revenue_cents"`
	TotalRevenueDollars float64 `json:"total_revenue_dollars"`
}

// Channel is a Telegram chat sold by a seller.
type Channel struct {
	ID            string   `json:"id"`
	ChatID        int64    `json:"chat_id"`
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	PricePerMonth *float64 `json:"price_per_month,omitempty"`
	TotalMembers  int      `json:"total_members"`
	ActiveMembers int      `json:"active_members"`
	IsActive      bool     `json:"is_active"`
}

// User is the end customer behind a membership.
type User struct {
	ID               string    `json:"_id"`
	ExtUserID        string    `json:"ext_user_id"`
	TelegramUserID   *int64    `json:"telegram_user_id,omitempty"`
	TelegramUsername string    `json:"telegram_username,omitempty"`
	CreatedAt        Timestamp `json:"created_at"`
}

// MembershipStatus is the lifecycle state of a membership.
type MembershipStatus string

const (
	MembershipActive    MembershipStatus = "active"
	MembershipCancelled MembershipStatus = "cancelled"
	MembershipExpired   MembershipStatus = "expired"
)

// Membership grants a user access to a chat until CurrentPeriodEnd.
type Membership struct {
	ID               string           `json:"_id"`
	UserID           string           `json:"user_id"`
	ChatID           int64            `json:"chat_id"`
	Status           MembershipStatus `json:"status"`
	CurrentPeriodEnd Timestamp        `json:"current_period_end"`
	CreatedAt        Timestamp        `json:"created_at"`
}

// MemberDetails pairs a membership with its user.
type MemberDetails struct {
	Membership Membership `json:"membership"`
	User       User       `json:"user"`
}

// PaymentStatus is the settlement state of a payment.
type PaymentStatus string

const (
	PaymentSucceeded PaymentStatus = "succeeded"
	PaymentPending   PaymentStatus = "pending"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

// Payment is a charge collected for a seller. Amount is in cents.
type Payment struct {
	ID                    string        `json:"id"`
	Amount                int64         `json:"amount"`
	Currency              string        `json:"currency"`
	Status                PaymentStatus `json:"status"`
	StripePaymentIntentID string        `json:"stripe_payment_intent_id"`
	UsedSellerStripe      bool          `json:"used_seller_stripe"`
	CreatedAt             Timestamp     `json:"created_at"`
}

// Webhook is an outbound event subscription registered by a seller.
type Webhook struct {
	WebhookID string    `json:"webhook_id"`
	URL       string    `json:"url"`
	Secret    string    `json:"secret"`
	Events    []string  `json:"events"`
	IsActive  bool      `json:"is_active"`
	CreatedAt Timestamp `json:"created_at"`
}
