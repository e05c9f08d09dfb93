package fakebackend

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/channelgate/channelgate-go/client"
)

type webhookInput struct {
	URL    string   `json:"url" validate:"required,url"`
	Events []string `json:"events" validate:"required,min=1,dive,required"`
}

func (b *Backend) listWebhooks(w http.ResponseWriter, r *http.Request) {
	s, ok := b.authenticate(w, r)
	if !ok {
		return
	}
	defer b.mu.Unlock()
	out := append([]client.Webhook{}, s.webhooks...)
	writeOK(w, http.StatusOK, "", out)
}

func (b *Backend) createWebhook(w http.ResponseWriter, r *http.Request) {
	s, ok := b.authenticate(w, r)
	if !ok {
		return
	}
	defer b.mu.Unlock()

	var in webhookInput
	if !b.decode(w, r, &in) {
		return
	}

	wh := client.Webhook{
		WebhookID: "wh_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16],
		URL:       in.URL,
		Secret:    "whsec_" + strings.ReplaceAll(uuid.NewString(), "-", ""),
		Events:    in.Events,
		IsActive:  true,
		CreatedAt: client.Timestamp{Time: b.now().UTC()},
	}
	s.webhooks = append(s.webhooks, wh)
	writeOK(w, http.StatusCreated, "Webhook created", wh)
}

func (b *Backend) deleteWebhook(w http.ResponseWriter, r *http.Request) {
	id, err := url.PathUnescape(mux.Vars(r)["webhookId"])
	if err != nil {
		writeFail(w, http.StatusBadRequest, "Malformed webhook id", "bad_request")
		return
	}
	s, ok := b.authenticate(w, r)
	if !ok {
		return
	}
	defer b.mu.Unlock()

	for i, wh := range s.webhooks {
		if wh.WebhookID == id {
			s.webhooks = append(s.webhooks[:i], s.webhooks[i+1:]...)
			writeOK(w, http.StatusOK, "Webhook deleted", client.DeleteWebhookResult{Success: true})
			return
		}
	}
	writeFail(w, http.StatusNotFound, "Webhook not found", "webhook_not_found")
}
