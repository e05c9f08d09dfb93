package fakebackend

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/channelgate/channelgate-go/client"
)

type removeInput struct {
	ExtUserID string `json:"ext_user_id" validate:"required"`
	ChatID    int64  `json:"chat_id" validate:"required"`
	Reason    string `json:"reason"`
	DryRun    bool   `json:"dry_run"`
}

type grantInput struct {
	ExtUserID  string  `json:"ext_user_id" validate:"required"`
	ChatIDs    []int64 `json:"chat_ids" validate:"required,min=1"`
	PeriodDays int     `json:"period_days" validate:"required,gt=0"`
	Ref        string  `json:"ref"`
}

type grantError struct {
	ChatID int64  `json:"chat_id"`
	Error  string `json:"error"`
}

func (b *Backend) listMembers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var chatID int64
	if raw := q.Get("chat_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeFail(w, http.StatusBadRequest, "chat_id must be an integer", "bad_request")
			return
		}
		chatID = id
	}
	status := q.Get("status")

	s, ok := b.authenticate(w, r)
	if !ok {
		return
	}
	defer b.mu.Unlock()

	out := make([]client.MemberDetails, 0, len(s.members))
	for _, m := range s.members {
		if chatID != 0 && m.Membership.ChatID != chatID {
			continue
		}
		if status != "" && string(m.Membership.Status) != status {
			continue
		}
		out = append(out, *m)
	}
	writeOK(w, http.StatusOK, "", out)
}

func (b *Backend) forceRemove(w http.ResponseWriter, r *http.Request) {
	s, ok := b.authenticate(w, r)
	if !ok {
		return
	}
	defer b.mu.Unlock()

	var in removeInput
	if !b.decode(w, r, &in) {
		return
	}

	var target *client.MemberDetails
	for _, m := range s.members {
		if m.User.ExtUserID == in.ExtUserID && m.Membership.ChatID == in.ChatID && m.Membership.Status == client.MembershipActive {
			target = m
			break
		}
	}
	if target == nil {
		writeFail(w, http.StatusNotFound, "No active membership for user in chat", "membership_not_found")
		return
	}
	if !in.DryRun {
		target.Membership.Status = client.MembershipCancelled
		s.recount()
	}
	writeOK(w, http.StatusOK, "Member removed", map[string]any{
		"membership_id": target.Membership.ID,
		"dry_run":       in.DryRun,
		"reason":        in.Reason,
	})
}

func (b *Backend) grantAccess(w http.ResponseWriter, r *http.Request) {
	s, ok := b.authenticate(w, r)
	if !ok {
		return
	}
	defer b.mu.Unlock()

	var in grantInput
	if !b.decode(w, r, &in) {
		return
	}

	now := b.now().UTC()
	user, exists := s.users[in.ExtUserID]
	if !exists {
		user = &client.User{ID: uuid.NewString(), ExtUserID: in.ExtUserID, CreatedAt: client.Timestamp{Time: now}}
		s.users[in.ExtUserID] = user
	}
	periodEnd := now.Add(time.Duration(in.PeriodDays) * 24 * time.Hour)

	resp := client.GrantAccessResponse{UserID: user.ID, Invites: make(map[string]string), PeriodEnd: client.Timestamp{Time: periodEnd}}
	var failures []grantError
	for _, chatID := range in.ChatIDs {
		if _, known := s.channels[chatID]; !known {
			failures = append(failures, grantError{ChatID: chatID, Error: "channel not found"})
			continue
		}
		s.upsertMembership(user, chatID, periodEnd, now)
		resp.Invites[chatKey(chatID)] = "https://t.me/+" + uuid.NewString()[:12]
	}
	if len(failures) > 0 {
		raw, _ := json.Marshal(failures)
		resp.Errors = raw
	}
	s.recount()
	writeOK(w, http.StatusOK, "Access granted", resp)
}

// upsertMembership extends an existing membership or creates a new one.
func (s *seller) upsertMembership(user *client.User, chatID int64, periodEnd, now time.Time) {
	for _, m := range s.members {
		if m.Membership.UserID == user.ID && m.Membership.ChatID == chatID {
			m.Membership.Status = client.MembershipActive
			m.Membership.CurrentPeriodEnd = client.Timestamp{Time: periodEnd}
			return
		}
	}
	s.members = append(s.members, &client.MemberDetails{
		Membership: client.Membership{
			ID:               uuid.NewString(),
			UserID:           user.ID,
			ChatID:           chatID,
			Status:           client.MembershipActive,
			CurrentPeriodEnd: client.Timestamp{Time: periodEnd},
			CreatedAt:        client.Timestamp{Time: now},
		},
		User: *user,
	})
}
