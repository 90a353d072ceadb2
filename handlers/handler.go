package handlers

import (
	"net/http"
	"strconv"

	"github.com/andrewpaige1/studyset-web/auth"
	"github.com/andrewpaige1/studyset-web/client"
	"github.com/andrewpaige1/studyset-web/store"
	"github.com/andrewpaige1/studyset-web/utils"
)

// Handler serves the pages. One value is shared by all requests; anything
// per-user comes from the request context or the store.
type Handler struct {
	Store       *store.Store
	API         *client.Client
	Cookie      auth.CookieSettings
	LoginURL    string
	GameCatalog []string
}

// api returns a client that carries the caller's credential.
func (h *Handler) api(r *http.Request) *client.Client {
	return h.API.WithToken(utils.Credential(r))
}

func (h *Handler) isGame(name string) bool {
	for _, g := range h.GameCatalog {
		if g == name {
			return true
		}
	}
	return false
}

func pathID(r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(r.PathValue(name))
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
