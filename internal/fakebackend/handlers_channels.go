package fakebackend

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/channelgate/channelgate-go/client"
)

// JoinModelInviteLink is used when a request leaves join_model empty.
const JoinModelInviteLink = "invite_link"

// BotID is reported in channel checks.
const BotID int64 = 7000000001

type channelInput struct {
	ChatID        int64    `json:"chat_id" validate:"required"`
	Name          string   `json:"name" validate:"required"`
	JoinModel     string   `json:"join_model" validate:"omitempty,oneof=invite_link join_request"`
	Description   string   `json:"description"`
	PricePerMonth *float64 `json:"price_per_month" validate:"omitempty,gte=0"`
}

func (b *Backend) listChannels(w http.ResponseWriter, r *http.Request) {
	s, ok := b.authenticate(w, r)
	if !ok {
		return
	}
	defer b.mu.Unlock()
	writeOK(w, http.StatusOK, "", s.sortedChannels())
}

func (b *Backend) addChannel(w http.ResponseWriter, r *http.Request) {
	s, ok := b.authenticate(w, r)
	if !ok {
		return
	}
	defer b.mu.Unlock()

	var in channelInput
	if !b.decode(w, r, &in) {
		return
	}

	if _, exists := s.channels[in.ChatID]; exists {
		writeFail(w, http.StatusConflict, "Channel already added", "channel_exists")
		return
	}
	s.channels[in.ChatID] = &client.Channel{
		ID:            uuid.NewString(),
		ChatID:        in.ChatID,
		Name:          in.Name,
		Description:   in.Description,
		PricePerMonth: in.PricePerMonth,
		IsActive:      true,
	}
	writeOK(w, http.StatusCreated, "Channel added", channelResponse(in))
}

func (b *Backend) updateChannel(w http.ResponseWriter, r *http.Request) {
	s, ok := b.authenticate(w, r)
	if !ok {
		return
	}
	defer b.mu.Unlock()

	var in channelInput
	if !b.decode(w, r, &in) {
		return
	}

	ch, exists := s.channels[in.ChatID]
	if !exists {
		writeFail(w, http.StatusNotFound, "Channel not found", "channel_not_found")
		return
	}
	ch.Name = in.Name
	ch.Description = in.Description
	if in.PricePerMonth != nil {
		ch.PricePerMonth = in.PricePerMonth
	}
	writeOK(w, http.StatusOK, "Channel updated", channelResponse(in))
}

func channelResponse(in channelInput) client.AddChannelResponse {
	joinModel := in.JoinModel
	if joinModel == "" {
		joinModel = JoinModelInviteLink
	}
	return client.AddChannelResponse{
		ChatID:       in.ChatID,
		StoredChatID: in.ChatID,
		Name:         in.Name,
		JoinModel:    joinModel,
		Checks: client.ChannelChecks{
			BotID:     BotID,
			ChatFound: true,
			IsAdmin:   true,
			Permissions: client.ChannelPermissions{
				CanInviteUsers:     true,
				CanManageChat:      true,
				CanRestrictMembers: true,
			},
		},
	}
}
