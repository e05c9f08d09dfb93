package client

import "github.com/channelgate/channelgate-go/client/internal/types"

// Public type aliases so SDK consumers can import only the client package.
type (
	// Envelope wraps every response.
	Envelope[T any] = types.Envelope[T]
	ErrorBody       = types.ErrorBody

	// Requests
	LoginRequest          = types.LoginRequest
	RegisterRequest       = types.RegisterRequest
	StripeKeysRequest     = types.StripeKeysRequest
	AddChannelRequest     = types.AddChannelRequest
	RemoveMemberRequest   = types.RemoveMemberRequest
	GrantAccessRequest    = types.GrantAccessRequest
	CreateCheckoutRequest = types.CreateCheckoutRequest
	CreateWebhookRequest  = types.CreateWebhookRequest
	MemberFilter          = types.MemberFilter

	// Domain entities
	Timestamp        = types.Timestamp
	Seller           = types.Seller
	SellerStats      = types.SellerStats
	Channel          = types.Channel
	User             = types.User
	Membership       = types.Membership
	MembershipStatus = types.MembershipStatus
	MemberDetails    = types.MemberDetails
	Payment          = types.Payment
	PaymentStatus    = types.PaymentStatus
	Webhook          = types.Webhook

	// Responses
	AuthTokens              = types.AuthTokens
	RegistrationData        = types.RegistrationData
	AddChannelResponse      = types.AddChannelResponse
	ChannelChecks           = types.ChannelChecks
	ChannelPermissions      = types.ChannelPermissions
	GrantAccessResponse     = types.GrantAccessResponse
	CheckoutSessionResponse = types.CheckoutSessionResponse
	DeleteWebhookResult     = types.DeleteWebhookResult
)

const (
	MembershipActive    = types.MembershipActive
	MembershipCancelled = types.MembershipCancelled
	MembershipExpired   = types.MembershipExpired

	PaymentSucceeded = types.PaymentSucceeded
	PaymentPending   = types.PaymentPending
	PaymentFailed    = types.PaymentFailed
	PaymentRefunded  = types.PaymentRefunded
)
