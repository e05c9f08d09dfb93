package fakebackend

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/channelgate/channelgate-go/client"
)

type registerInput struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	CompanyName string `json:"company_name"`
}

type loginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type stripeKeysInput struct {
	PublishableKey string `json:"publishable_key" validate:"required,startswith=pk_"`
	SecretKey      string `json:"secret_key" validate:"required,startswith=sk_"`
}

func (b *Backend) register(w http.ResponseWriter, r *http.Request) {
	var in registerInput
	if !b.decode(w, r, &in) {
		return
	}
	email := strings.ToLower(in.Email)

	b.mu.Lock()
	defer b.mu.Unlock()
	if _, exists := b.sellers[email]; exists {
		writeFail(w, http.StatusConflict, "Email already registered", "seller_exists")
		return
	}
	s := &seller{
		profile: client.Seller{
			ID:                 uuid.NewString(),
			Email:              email,
			CompanyName:        in.CompanyName,
			IsActive:           true,
			SubscriptionStatus: "inactive",
			CreatedAt:          client.Timestamp{Time: b.now().UTC()},
		},
		password: in.Password,
		apiKey:   "sk_live_" + strings.ReplaceAll(uuid.NewString(), "-", ""),
		channels: make(map[int64]*client.Channel),
		users:    make(map[string]*client.User),
	}
	b.sellers[email] = s
	writeOK(w, http.StatusCreated, "Seller registered", client.RegistrationData{
		SellerID: s.profile.ID,
		Email:    email,
		APIKey:   s.apiKey,
	})
}

func (b *Backend) login(w http.ResponseWriter, r *http.Request) {
	var in loginInput
	if !b.decode(w, r, &in) {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	s, ok := b.sellers[strings.ToLower(in.Email)]
	if !ok || s.password != in.Password {
		writeFail(w, http.StatusUnauthorized, "Invalid email or password", "invalid_credentials")
		return
	}
	access, err := b.issueToken(s)
	if err != nil {
		writeFail(w, http.StatusInternalServerError, "Could not issue token", "internal")
		return
	}
	now := b.now().UTC()
	s.profile.LastLogin = &client.Timestamp{Time: now}
	writeOK(w, http.StatusOK, "Login successful", client.AuthTokens{
		AccessToken:  access,
		RefreshToken: "rt_" + uuid.NewString(),
		TokenType:    "bearer",
	})
}

func (b *Backend) profile(w http.ResponseWriter, r *http.Request) {
	s, ok := b.authenticate(w, r)
	if !ok {
		return
	}
	defer b.mu.Unlock()
	writeOK(w, http.StatusOK, "", s.profile)
}

func (b *Backend) stats(w http.ResponseWriter, r *http.Request) {
	s, ok := b.authenticate(w, r)
	if !ok {
		return
	}
	defer b.mu.Unlock()

	st := client.SellerStats{TotalChannels: len(s.channels), TotalMembers: len(s.members)}
	for _, m := range s.members {
		if m.Membership.Status == client.MembershipActive {
			st.ActiveMembers++
		}
	}
	for _, p := range s.payments {
		if p.Status == client.PaymentSucceeded {
			st.TotalRevenueCents += p.Amount
		}
	}
	st.TotalRevenueDollars = float64(st.TotalRevenueCents) / 100
	writeOK(w, http.StatusOK, "", st)
}

func (b *Backend) stripeKeys(w http.ResponseWriter, r *http.Request) {
	s, ok := b.authenticate(w, r)
	if !ok {
		return
	}
	defer b.mu.Unlock()

	var in stripeKeysInput
	if !b.decode(w, r, &in) {
		return
	}
	s.stripe = &client.StripeKeysRequest{PublishableKey: in.PublishableKey, SecretKey: in.SecretKey}
	writeOK(w, http.StatusOK, "Stripe keys updated", map[string]bool{"configured": true})
}
