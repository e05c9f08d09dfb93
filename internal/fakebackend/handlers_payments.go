package fakebackend

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/google/uuid"

	"github.com/channelgate/channelgate-go/client"
)

const defaultPaymentLimit = 100

type checkoutInput struct {
	PriceID       string            `json:"price_id" validate:"required"`
	SuccessURL    string            `json:"success_url" validate:"required,url"`
	CancelURL     string            `json:"cancel_url" validate:"required,url"`
	CustomerEmail string            `json:"customer_email" validate:"omitempty,email"`
	Metadata      map[string]string `json:"metadata"`
}

func (b *Backend) listPayments(w http.ResponseWriter, r *http.Request) {
	limit := defaultPaymentLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeFail(w, http.StatusBadRequest, "limit must be a positive integer", "bad_request")
			return
		}
		limit = n
	}

	s, ok := b.authenticate(w, r)
	if !ok {
		return
	}
	defer b.mu.Unlock()

	out := append([]client.Payment(nil), s.payments...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt.Time) })
	if len(out) > limit {
		out = out[:limit]
	}
	if out == nil {
		out = []client.Payment{}
	}
	writeOK(w, http.StatusOK, "", out)
}

func (b *Backend) checkout(w http.ResponseWriter, r *http.Request) {
	_, ok := b.authenticate(w, r)
	if !ok {
		return
	}
	defer b.mu.Unlock()

	var in checkoutInput
	if !b.decode(w, r, &in) {
		return
	}

	id := "cs_test_" + uuid.NewString()
	writeOK(w, http.StatusOK, "Checkout session created", client.CheckoutSessionResponse{
		SessionID: id,
		URL:       "https://checkout.stripe.com/c/pay/" + id,
	})
}
