package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/andrewpaige1/studyset-web/client"
	"github.com/andrewpaige1/studyset-web/middleware"
	"github.com/andrewpaige1/studyset-web/models"
	"github.com/andrewpaige1/studyset-web/utils"
)

const (
	SectionSets    = "sets"
	SectionGames   = "games"
	SectionExplore = "explore"
	SectionClass   = "class"
)

type dashboardView struct {
	page
	User       models.User
	Sets       models.StudySets
	Games      []string
	Classrooms []models.Classroom
	Classroom  *models.Classroom
	Section    string
	Grouped    bool
}

// Dashboard shows the study sets of the caller in the requested section.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	view, err := h.loadDashboard(r, nil)
	if errors.Is(err, client.ErrInvalidCredentials) {
		http.Redirect(w, r, middleware.LogoutPath, http.StatusSeeOther)
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("Dashboard: failed to load")
		view.Notice = &Notice{Level: "error", Title: "Something went wrong", Description: client.Detail(err)}
	}
	render(w, http.StatusOK, "dashboard", view)
}

// loadDashboard fetches everything the dashboard shows. When sets is non-nil
// it is used as the list instead of asking the backend again, so a page can
// show the result of a change it just made.
func (h *Handler) loadDashboard(r *http.Request, sets models.StudySets) (dashboardView, error) {
	ctx := r.Context()
	api := h.api(r)

	view := dashboardView{
		page:    page{Title: "Dashboard"},
		Sets:    models.StudySets{},
		Games:   h.GameCatalog,
		Section: r.URL.Query().Get("section"),
	}
	if view.Section == "" {
		view.Section = SectionSets
	}

	pref, err := h.Store.GetPreference(ctx, utils.SessionID(r))
	if err != nil {
		log.Error().Err(err).Msg("loadDashboard: failed to read preferences")
	}
	view.Grouped = pref.Grouped

	user, err := api.Me(ctx)
	if err != nil {
		return view, err
	}
	view.User = user
	if user.IsGuest() {
		return view, nil
	}

	if sets == nil {
		sets, err = api.ListStudySets(ctx)
		if err != nil {
			return view, err
		}
	}
	view.Sets = sets

	classrooms, err := api.ListClassrooms(ctx)
	if err != nil {
		if errors.Is(err, client.ErrInvalidCredentials) {
			return view, err
		}
		log.Warn().Err(err).Msg("loadDashboard: classrooms unavailable")
	}
	view.Classrooms = classrooms

	if view.Section == SectionClass {
		classID, _ := strconv.Atoi(r.URL.Query().Get("class"))
		for i := range classrooms {
			if classrooms[i].ID == classID {
				view.Classroom = &classrooms[i]
				view.Sets = sets.Filter(classrooms[i].StudySets)
				break
			}
		}
		if view.Classroom == nil {
			view.Sets = models.StudySets{}
		}
	}

	return view, nil
}

// renderDashboard shows the dashboard with sets and a notice after a change.
func (h *Handler) renderDashboard(w http.ResponseWriter, r *http.Request, status int, sets models.StudySets, notice *Notice) {
	view, err := h.loadDashboard(r, sets)
	if errors.Is(err, client.ErrInvalidCredentials) {
		http.Redirect(w, r, middleware.LogoutPath, http.StatusSeeOther)
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("renderDashboard: failed to load")
		if notice == nil {
			notice = &Notice{Level: "error", Title: "Something went wrong", Description: client.Detail(err)}
		}
	}
	view.Notice = notice
	render(w, status, "dashboard", view)
}

// SetPreferences stores the grouped-sections toggle.
func (h *Handler) SetPreferences(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	if err := h.Store.SetGrouped(r.Context(), utils.SessionID(r), r.PostForm.Has("grouped")); err != nil {
		log.Error().Err(err).Msg("SetPreferences: failed to save")
		http.Error(w, "Failed to save preferences", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/dashboard/", http.StatusSeeOther)
}
