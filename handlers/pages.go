package handlers

import (
	"net/http"

	"github.com/andrewpaige1/studyset-web/auth"
	"github.com/andrewpaige1/studyset-web/models"
)

type page struct {
	Title  string
	Notice *Notice
}

func (h *Handler) Landing(w http.ResponseWriter, r *http.Request) {
	render(w, http.StatusOK, "landing", page{Title: "Study sets"})
}

type loginView struct {
	page
	LoginURL string
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	render(w, http.StatusOK, "login", loginView{page: page{Title: "Log in"}, LoginURL: h.LoginURL})
}

// LoginGuest signs the browser in with the shared guest credential.
func (h *Handler) LoginGuest(w http.ResponseWriter, r *http.Request) {
	auth.SetCredential(w, h.Cookie, models.GuestToken)
	http.Redirect(w, r, "/dashboard/", http.StatusSeeOther)
}

// Logout drops the credential. It is also where rejected credentials end up.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	auth.ClearCredential(w, h.Cookie)
	http.Redirect(w, r, "/login/", http.StatusSeeOther)
}
