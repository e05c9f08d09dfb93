package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/channelgate/channelgate-go/client/internal/types"
)

func TestChannels(t *testing.T) {
	t.Parallel()
	var paths []string
	r, _ := newTestRequester(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		paths = append(paths, req.Method+" "+req.URL.Path)
		if req.Method == http.MethodGet {
			writeEnvelope(w, http.StatusOK, true, "ok", []types.Channel{{ID: "c1", ChatID: -100, Name: "VIP"}})
			return
		}
		var body types.AddChannelRequest
		_ = json.NewDecoder(req.Body).Decode(&body)
		writeEnvelope(w, http.StatusOK, true, "ok", types.AddChannelResponse{ChatID: body.ChatID, StoredChatID: body.ChatID, Name: body.Name, JoinModel: "invite_link"})
	}))
	ctx := context.Background()

	list, err := ListChannels(ctx, r)
	if err != nil || (*list.Data)[0].Name != "VIP" {
		t.Fatalf("ListChannels: %+v %v", list, err)
	}
	added, err := AddChannel(ctx, r, types.AddChannelRequest{ChatID: -100, Name: "VIP"})
	if err != nil || added.Data.StoredChatID != -100 {
		t.Fatalf("AddChannel: %+v %v", added, err)
	}
	if _, err := UpdateChannel(ctx, r, types.AddChannelRequest{ChatID: -100, Name: "VIP+"}); err != nil {
		t.Fatalf("UpdateChannel: %v", err)
	}
	want := []string{"GET /api/sellers/channels", "POST /api/telegram/channels", "POST /api/sellers/channels"}
	for i := range want {
		if paths[i] != want[i] {
			t.Fatalf("paths = %v", paths)
		}
	}
}
