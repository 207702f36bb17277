package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ananevdm/SpotInfoBot-Go/bot/spotify"
	"github.com/mymmrac/telego"
)

func TestInlineIgnoresUnrecognizedExpandedLink(t *testing.T) {
	target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer target.Close()

	short := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, target.URL, http.StatusFound)
	}))
	defer short.Close()

	// The nil Fetcher and bot prove no search or answer is attempted: a
	// shortened link expanding to a non-catalog page is dropped, not
	// treated as a free-text query.
	h := &InlineHandler{Resolver: spotify.NewResolver(nil)}
	h.Handle(context.Background(), nil, &telego.Update{
		InlineQuery: &telego.InlineQuery{
			ID:    "q1",
			Query: short.URL + "/spotify.link/abc",
		},
	})
}

func TestInlineIgnoresEmptyQuery(t *testing.T) {
	h := &InlineHandler{}
	h.Handle(context.Background(), nil, &telego.Update{
		InlineQuery: &telego.InlineQuery{ID: "q2", Query: "   "},
	})
}
