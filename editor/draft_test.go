package editor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewpaige1/studyset-web/models"
)

type fakeRemote struct {
	calls   int
	err     error
	created models.StudySetInput
	updated models.StudySetInput
	id      int
}

func (f *fakeRemote) CreateStudySet(_ context.Context, in models.StudySetInput) (models.StudySet, error) {
	f.calls++
	f.created = in
	if f.err != nil {
		return models.StudySet{}, f.err
	}
	return models.StudySet{ID: 42, Subject: in.Subject, Questions: in.Questions}, nil
}

func (f *fakeRemote) UpdateStudySet(_ context.Context, id int, in models.StudySetInput) (models.StudySet, error) {
	f.calls++
	f.id = id
	f.updated = in
	if f.err != nil {
		return models.StudySet{}, f.err
	}
	return models.StudySet{ID: id, Subject: "canonical " + in.Subject, Questions: in.Questions}, nil
}

func TestDraft_SubmitEmptyNeverCallsRemote(t *testing.T) {
	remote := &fakeRemote{}
	d := Draft{Subject: "Biology"}

	_, err := d.Submit(context.Background(), remote)

	require.ErrorIs(t, err, ErrEmpty)
	assert.Equal(t, "Please fill in something.", err.Error())
	assert.Equal(t, 0, remote.calls)
}

func TestDraft_SubmitCreate(t *testing.T) {
	remote := &fakeRemote{}
	d := Draft{Subject: "Biology", Entries: New([]models.Question{{Question: "cell", Answers: []string{"unit"}}})}

	set, err := d.Submit(context.Background(), remote)

	require.NoError(t, err)
	assert.Equal(t, 42, set.ID)
	assert.Equal(t, "Biology", remote.created.Subject)
	assert.Equal(t, []models.Question{{Question: "cell", Answers: []string{"unit"}}}, remote.created.Questions)
}

func TestDraft_SubmitUpdateReturnsCanonical(t *testing.T) {
	remote := &fakeRemote{}
	d := NewEditDraft(models.StudySet{ID: 7, Subject: "Chem", Questions: []models.Question{{Question: "H", Answers: []string{"1"}}}})
	require.False(t, d.IsCreate())

	set, err := d.Submit(context.Background(), remote)

	require.NoError(t, err)
	assert.Equal(t, 7, remote.id)
	assert.Equal(t, "canonical Chem", set.Subject)
}

func TestDraft_FailedSubmitLeavesDraftUnchanged(t *testing.T) {
	remote := &fakeRemote{err: errors.New("boom")}
	d := NewEditDraft(models.StudySet{ID: 7, Subject: "Chem", Questions: []models.Question{{Question: "H", Answers: []string{"1"}}}})
	d.Entries = d.Entries.EditQuestion(0, "He")
	before := d.Entries.Questions()
	beforeSubject := d.Subject

	_, err := d.Submit(context.Background(), remote)
	require.Error(t, err)
	assert.Equal(t, before, d.Entries.Questions())
	assert.Equal(t, beforeSubject, d.Subject)

	// Retry sends the same payload.
	_, _ = d.Submit(context.Background(), remote)
	assert.Equal(t, 2, remote.calls)
	assert.Equal(t, before, remote.updated.Questions)
}

func TestDraft_Import(t *testing.T) {
	d := Draft{ImportText: "Q1\tA1\nQ2\tA2", Reverse: true}

	got := d.Import()

	assert.Equal(t, TabReview, got.Tab)
	assert.Equal(t, []models.Question{
		{Question: "A1", Answers: []string{"Q1"}},
		{Question: "A2", Answers: []string{"Q2"}},
	}, got.Entries.Questions())
	assert.Equal(t, TabManual, d.Tab)
}
