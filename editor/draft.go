package editor

import (
	"context"
	"errors"
	"fmt"

	"github.com/andrewpaige1/studyset-web/importer"
	"github.com/andrewpaige1/studyset-web/models"
)

// Tabs of the create view.
const (
	TabManual = iota
	TabImport
	TabReview
)

// ErrEmpty is returned by Submit when there is nothing to send.
var ErrEmpty = errors.New("Please fill in something.")

// Remote is the part of the API client a draft submits to.
type Remote interface {
	CreateStudySet(ctx context.Context, in models.StudySetInput) (models.StudySet, error)
	UpdateStudySet(ctx context.Context, id int, in models.StudySetInput) (models.StudySet, error)
}

// Draft is one create or edit session. StudySetID is zero until the backend
// has assigned an id.
type Draft struct {
	StudySetID int
	Subject    string
	Entries    List
	ImportText string
	Reverse    bool
	Tab        int
}

// NewEditDraft seeds a draft from an existing set.
func NewEditDraft(set models.StudySet) Draft {
	return Draft{
		StudySetID: set.ID,
		Subject:    set.Subject,
		Entries:    New(set.Questions),
		Tab:        TabReview,
	}
}

// IsCreate reports whether submitting d creates a new set.
func (d Draft) IsCreate() bool {
	return d.StudySetID == 0
}

// Import replaces the entries with the parsed import text and moves to the
// review tab.
func (d Draft) Import() Draft {
	d.Entries = New(importer.Parse(d.ImportText, d.Reverse))
	d.Tab = TabReview
	return d
}

// Input is the payload Submit sends.
func (d Draft) Input() models.StudySetInput {
	return models.StudySetInput{
		Subject:   d.Subject,
		Questions: d.Entries.Questions(),
	}
}

// Submit sends the draft to the backend and returns the canonical set. The
// draft itself is a value and is never modified, so a failed submit can be
// retried as is.
func (d Draft) Submit(ctx context.Context, remote Remote) (models.StudySet, error) {
	if d.Entries.Len() < 1 {
		return models.StudySet{}, ErrEmpty
	}

	if d.IsCreate() {
		set, err := remote.CreateStudySet(ctx, d.Input())
		if err != nil {
			return models.StudySet{}, fmt.Errorf("create study set: %w", err)
		}
		return set, nil
	}

	set, err := remote.UpdateStudySet(ctx, d.StudySetID, d.Input())
	if err != nil {
		return models.StudySet{}, fmt.Errorf("update study set %d: %w", d.StudySetID, err)
	}
	return set, nil
}
