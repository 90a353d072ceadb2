package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/andrewpaige1/studyset-web/client"
	"github.com/andrewpaige1/studyset-web/editor"
	"github.com/andrewpaige1/studyset-web/middleware"
	"github.com/andrewpaige1/studyset-web/models"
	"github.com/andrewpaige1/studyset-web/store"
	"github.com/andrewpaige1/studyset-web/utils"
)

func draftURL(key string) string {
	return fmt.Sprintf("/drafts/%s/", key)
}

// GET /sets/new/
func (h *Handler) NewStudySet(w http.ResponseWriter, r *http.Request) {
	if utils.Credential(r) == models.GuestToken {
		http.Error(w, "Guests cannot create study sets", http.StatusForbidden)
		return
	}

	ctx := r.Context()
	session := utils.SessionID(r)

	// A create draft has no study set yet, so it is found under ID 0.
	existing, err := h.Store.FindEditDraft(ctx, session, 0)
	if err == nil {
		http.Redirect(w, r, draftURL(existing.Key), http.StatusSeeOther)
		return
	}

	d, err := h.Store.CreateDraft(ctx, session, editor.Draft{Tab: editor.TabManual})
	if err != nil {
		log.Error().Err(err).Msg("NewStudySet: failed to create draft")
		http.Error(w, "Failed to start a new study set", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, draftURL(d.Key), http.StatusSeeOther)
}

// GET /sets/{setID}/edit/
func (h *Handler) EditStudySet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "setID")
	if !ok {
		http.Error(w, "Invalid study set ID", http.StatusBadRequest)
		return
	}
	ctx := r.Context()
	session := utils.SessionID(r)

	existing, err := h.Store.FindEditDraft(ctx, session, id)
	if err == nil {
		http.Redirect(w, r, draftURL(existing.Key), http.StatusSeeOther)
		return
	}
	if !errors.Is(err, store.ErrNotFound) {
		log.Error().Err(err).Int("setID", id).Msg("EditStudySet: failed to look up draft")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	sets, err := h.api(r).ListStudySets(ctx)
	if errors.Is(err, client.ErrInvalidCredentials) {
		http.Redirect(w, r, middleware.LogoutPath, http.StatusSeeOther)
		return
	}
	if err != nil {
		log.Error().Err(err).Int("setID", id).Msg("EditStudySet: failed to fetch study sets")
		http.Error(w, client.Detail(err), http.StatusBadGateway)
		return
	}

	set, found := sets.Find(id)
	if !found {
		http.Error(w, fmt.Sprintf("Study set %d not found", id), http.StatusNotFound)
		return
	}

	d, err := h.Store.CreateDraft(ctx, session, editor.NewEditDraft(set))
	if err != nil {
		log.Error().Err(err).Int("setID", id).Msg("EditStudySet: failed to create draft")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, draftURL(d.Key), http.StatusSeeOther)
}

// POST /sets/{setID}/delete/
func (h *Handler) DeleteStudySet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "setID")
	if !ok {
		http.Error(w, "Invalid study set ID", http.StatusBadRequest)
		return
	}
	ctx := r.Context()
	api := h.api(r)

	sets, err := api.ListStudySets(ctx)
	if errors.Is(err, client.ErrInvalidCredentials) {
		http.Redirect(w, r, middleware.LogoutPath, http.StatusSeeOther)
		return
	}
	if err != nil {
		log.Error().Err(err).Int("setID", id).Msg("DeleteStudySet: failed to fetch study sets")
		h.renderDashboard(w, r, http.StatusBadGateway, nil, &Notice{Level: "error", Title: "Something went wrong", Description: client.Detail(err)})
		return
	}

	if err := api.DeleteStudySet(ctx, id); err != nil {
		if errors.Is(err, client.ErrInvalidCredentials) {
			http.Redirect(w, r, middleware.LogoutPath, http.StatusSeeOther)
			return
		}
		log.Warn().Err(err).Int("setID", id).Msg("DeleteStudySet: backend refused delete")
		h.renderDashboard(w, r, http.StatusOK, sets, &Notice{
			Level:       "error",
			Title:       "Error while deleting studyset",
			Description: client.Detail(err),
		})
		return
	}

	subject, _ := utils.GetSubject(r)
	log.Info().Int("setID", id).Str("subject", subject).Msg("DeleteStudySet: deleted")
	h.renderDashboard(w, r, http.StatusOK, sets.Without(id), &Notice{Level: "success", Title: "Study set deleted"})
}

// POST /sets/{setID}/play/ and POST /sets/play/ with a study_set field.
func (h *Handler) PlayStudySet(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	id, ok := pathID(r, "setID")
	if !ok {
		id, _ = strconv.Atoi(r.PostForm.Get("study_set"))
	}
	ctx := r.Context()
	api := h.api(r)

	sets, err := api.ListStudySets(ctx)
	if errors.Is(err, client.ErrInvalidCredentials) {
		http.Redirect(w, r, middleware.LogoutPath, http.StatusSeeOther)
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("PlayStudySet: failed to fetch study sets")
		h.renderDashboard(w, r, http.StatusBadGateway, nil, &Notice{Level: "error", Title: "Something went wrong", Description: client.Detail(err)})
		return
	}

	game := r.PostForm.Get("game")
	if game == "" || !h.isGame(game) {
		h.renderDashboard(w, r, http.StatusUnprocessableEntity, sets, &Notice{Level: "warning", Title: "Please select a game"})
		return
	}

	set, found := sets.Find(id)
	if !found {
		http.Error(w, fmt.Sprintf("Study set %d not found", id), http.StatusNotFound)
		return
	}

	user, err := api.Me(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("PlayStudySet: profile unavailable")
	}

	gs := models.GameSession{Game: game, StudySet: set, Avatar: user.ProfilePictureIndex}
	if err := h.Store.SaveGameSession(ctx, utils.SessionID(r), gs); err != nil {
		log.Error().Err(err).Msg("PlayStudySet: failed to save game session")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/games/", http.StatusSeeOther)
}

type gamesView struct {
	page
	Session models.GameSession
}

// GET /games/
func (h *Handler) Games(w http.ResponseWriter, r *http.Request) {
	gs, err := h.Store.LatestGameSession(r.Context(), utils.SessionID(r))
	if errors.Is(err, store.ErrNotFound) {
		http.Redirect(w, r, "/dashboard/?section=games", http.StatusSeeOther)
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("Games: failed to load game session")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	render(w, http.StatusOK, "games", gamesView{page: page{Title: gs.Game}, Session: gs})
}
