package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/andrewpaige1/studyset-web/client"
	"github.com/andrewpaige1/studyset-web/editor"
	"github.com/andrewpaige1/studyset-web/middleware"
	"github.com/andrewpaige1/studyset-web/models"
	"github.com/andrewpaige1/studyset-web/store"
	"github.com/andrewpaige1/studyset-web/utils"
)

type editorView struct {
	page
	Key   string
	Draft editor.Draft
}

func (h *Handler) loadDraft(w http.ResponseWriter, r *http.Request) (*store.Draft, bool) {
	d, err := h.Store.GetDraft(r.Context(), utils.SessionID(r), r.PathValue("draftKey"))
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "Draft not found", http.StatusNotFound)
		return nil, false
	}
	if err != nil {
		log.Error().Err(err).Msg("loadDraft: failed to read draft")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return nil, false
	}
	return d, true
}

func renderEditor(w http.ResponseWriter, status int, key string, ed editor.Draft, notice *Notice) {
	title := "Create a study set"
	if !ed.IsCreate() {
		title = "Edit " + ed.Subject
	}
	render(w, status, "editor", editorView{
		page:  page{Title: title, Notice: notice},
		Key:   key,
		Draft: ed,
	})
}

// GET /drafts/{draftKey}/
func (h *Handler) ShowDraft(w http.ResponseWriter, r *http.Request) {
	d, ok := h.loadDraft(w, r)
	if !ok {
		return
	}

	ed := d.Editor()
	if tab, err := strconv.Atoi(r.URL.Query().Get("tab")); err == nil && ed.IsCreate() {
		ed.Tab = clampTab(tab)
	}
	renderEditor(w, http.StatusOK, d.Key, ed, nil)
}

// POST /drafts/{draftKey}/
//
// The form always carries every visible field, so the edits are applied
// first and then the one action named by the pressed button.
func (h *Handler) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	d, ok := h.loadDraft(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	ctx := r.Context()

	ed := applyForm(d.Editor(), r.PostForm)
	action := r.PostForm.Get("action")

	switch action {
	case "cancel":
		if err := h.Store.DeleteDraft(ctx, d); err != nil {
			log.Error().Err(err).Str("draft", d.Key).Msg("UpdateDraft: failed to discard draft")
		}
		http.Redirect(w, r, "/dashboard/", http.StatusSeeOther)
		return

	case "submit":
		h.submitDraft(w, r, d, ed)
		return
	}

	var notice *Notice
	ed, notice = applyAction(ed, action)

	d.Set(ed)
	if err := h.Store.SaveDraft(ctx, d); err != nil {
		log.Error().Err(err).Str("draft", d.Key).Msg("UpdateDraft: failed to save draft")
		http.Error(w, "Failed to save draft", http.StatusInternalServerError)
		return
	}

	if notice != nil {
		renderEditor(w, http.StatusOK, d.Key, ed, notice)
		return
	}
	http.Redirect(w, r, draftURL(d.Key), http.StatusSeeOther)
}

func (h *Handler) submitDraft(w http.ResponseWriter, r *http.Request, d *store.Draft, ed editor.Draft) {
	ctx := r.Context()

	// Keep what was typed before talking to the backend; a failed submit
	// must not cost the user their edits.
	d.Set(ed)
	if err := h.Store.SaveDraft(ctx, d); err != nil {
		log.Error().Err(err).Str("draft", d.Key).Msg("submitDraft: failed to save draft")
		http.Error(w, "Failed to save draft", http.StatusInternalServerError)
		return
	}

	set, err := ed.Submit(ctx, h.api(r))
	switch {
	case errors.Is(err, editor.ErrEmpty):
		renderEditor(w, http.StatusUnprocessableEntity, d.Key, ed, &Notice{Level: "warning", Title: err.Error()})
		return
	case errors.Is(err, client.ErrInvalidCredentials):
		http.Redirect(w, r, middleware.LogoutPath, http.StatusSeeOther)
		return
	case err != nil:
		log.Warn().Err(err).Str("draft", d.Key).Msg("submitDraft: backend rejected study set")
		renderEditor(w, http.StatusOK, d.Key, ed, &Notice{Level: "error", Title: "Something went wrong", Description: client.Detail(err)})
		return
	}

	if err := h.Store.DeleteDraft(ctx, d); err != nil {
		log.Error().Err(err).Str("draft", d.Key).Msg("submitDraft: failed to discard submitted draft")
	}
	subject, _ := utils.GetSubject(r)
	log.Info().Int("setID", set.ID).Bool("created", ed.IsCreate()).Str("subject", subject).Msg("submitDraft: study set saved")

	sets, err := h.api(r).ListStudySets(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("submitDraft: could not refresh study sets")
		sets = models.StudySets{}
	}
	h.renderDashboard(w, r, http.StatusOK, sets.Replace(set), &Notice{Level: "success", Title: "Study set saved"})
}

// applyForm copies the posted field values into ed. Fields are named by
// key, so an input rendered before a removal can only ever update the item
// it was rendered for.
func applyForm(ed editor.Draft, form url.Values) editor.Draft {
	if form.Has("subject") {
		ed.Subject = form.Get("subject")
	}
	if form.Has("import_tab") {
		ed.ImportText = form.Get("import_text")
		ed.Reverse = form.Has("reverse")
	}

	for i, e := range ed.Entries {
		if v, ok := form["q."+e.Key]; ok {
			ed.Entries = ed.Entries.EditQuestion(i, v[0])
		}
		for j, a := range e.Answers {
			if v, ok := form["a."+e.Key+"."+a.Key]; ok {
				ed.Entries = ed.Entries.EditAnswer(i, j, v[0])
			}
		}
	}
	return ed
}

// applyAction runs one structural change named by action. Unknown keys are
// no-ops, which is what a repeated click on a remove button produces.
func applyAction(ed editor.Draft, action string) (editor.Draft, *Notice) {
	name, arg, _ := strings.Cut(action, ":")

	switch name {
	case "add_question":
		ed.Entries = ed.Entries.AddQuestion()
		if ed.IsCreate() && ed.Tab == editor.TabImport {
			ed.Tab = editor.TabManual
		}

	case "remove_question":
		ed.Entries = ed.Entries.RemoveQuestion(ed.Entries.IndexOf(arg))

	case "add_answer":
		ed.Entries = ed.Entries.AddAnswer(ed.Entries.IndexOf(arg))

	case "remove_answer":
		qKey, aKey, _ := strings.Cut(arg, ":")
		i := ed.Entries.IndexOf(qKey)
		ed.Entries = ed.Entries.RemoveAnswer(i, ed.Entries.AnswerIndexOf(i, aKey))

	case "import":
		ed = ed.Import()
		return ed, &Notice{Level: "info", Title: "Now, add a subject! It has to be at least 2 letters long."}

	case "tab":
		// Only the create view has tabs.
		if tab, err := strconv.Atoi(arg); err == nil && ed.IsCreate() {
			ed.Tab = clampTab(tab)
		}
	}

	return ed, nil
}

func clampTab(tab int) int {
	if tab < editor.TabManual || tab > editor.TabReview {
		return editor.TabManual
	}
	return tab
}
