// Package store keeps per-session state the pages need between requests:
// in-progress drafts, dashboard preferences and launched game sessions.
package store

import (
	"context"
	"errors"
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"gorm.io/gorm"

	"github.com/andrewpaige1/studyset-web/editor"
	"github.com/andrewpaige1/studyset-web/models"
)

var ErrNotFound = errors.New("store: not found")

// Draft is a persisted editor.Draft owned by one browser session.
type Draft struct {
	gorm.Model
	Key        string      `gorm:"column:draft_key;size:32;uniqueIndex;not null"`
	SessionID  string      `gorm:"size:64;index;not null"`
	StudySetID int         `gorm:"index"`
	Subject    string      `gorm:"size:200"`
	Entries    editor.List `gorm:"serializer:json"`
	ImportText string
	Reverse    bool
	Tab        int
}

// Editor returns the editable value held by d.
func (d *Draft) Editor() editor.Draft {
	return editor.Draft{
		StudySetID: d.StudySetID,
		Subject:    d.Subject,
		Entries:    d.Entries,
		ImportText: d.ImportText,
		Reverse:    d.Reverse,
		Tab:        d.Tab,
	}
}

// Set copies ed into d.
func (d *Draft) Set(ed editor.Draft) {
	d.StudySetID = ed.StudySetID
	d.Subject = ed.Subject
	d.Entries = ed.Entries
	d.ImportText = ed.ImportText
	d.Reverse = ed.Reverse
	d.Tab = ed.Tab
}

// Preference holds dashboard settings for a session.
type Preference struct {
	gorm.Model
	SessionID string `gorm:"size:64;uniqueIndex;not null"`
	Grouped   bool   `gorm:"default:false"`
}

// GameSession is the last game a session launched.
type GameSession struct {
	gorm.Model
	SessionID string          `gorm:"size:64;index;not null"`
	Game      string          `gorm:"size:100;not null"`
	StudySet  models.StudySet `gorm:"serializer:json"`
	Avatar    int
}

// Models lists everything Store needs migrated.
func Models() []interface{} {
	return []interface{}{&Draft{}, &Preference{}, &GameSession{}}
}

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// CreateDraft stores ed as a new draft for session.
func (s *Store) CreateDraft(ctx context.Context, session string, ed editor.Draft) (*Draft, error) {
	key, err := gonanoid.New()
	if err != nil {
		return nil, fmt.Errorf("generate draft key: %w", err)
	}

	d := &Draft{Key: key, SessionID: session}
	d.Set(ed)
	if err := s.db.WithContext(ctx).Create(d).Error; err != nil {
		return nil, fmt.Errorf("create draft: %w", err)
	}
	return d, nil
}

// GetDraft loads a draft, but only for the session that owns it.
func (s *Store) GetDraft(ctx context.Context, session, key string) (*Draft, error) {
	var d Draft
	err := s.db.WithContext(ctx).Where("draft_key = ? AND session_id = ?", key, session).First(&d).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &d, nil
}

// FindEditDraft returns the session's open draft for an existing set.
func (s *Store) FindEditDraft(ctx context.Context, session string, studySetID int) (*Draft, error) {
	var d Draft
	err := s.db.WithContext(ctx).
		Where("session_id = ? AND study_set_id = ?", session, studySetID).
		Order("updated_at desc").
		First(&d).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &d, nil
}

// SaveDraft writes every field of d.
func (s *Store) SaveDraft(ctx context.Context, d *Draft) error {
	if err := s.db.WithContext(ctx).Save(d).Error; err != nil {
		return fmt.Errorf("save draft %s: %w", d.Key, err)
	}
	return nil
}

// DeleteDraft drops a draft once it has been submitted or cancelled.
func (s *Store) DeleteDraft(ctx context.Context, d *Draft) error {
	if err := s.db.WithContext(ctx).Unscoped().Delete(d).Error; err != nil {
		return fmt.Errorf("delete draft %s: %w", d.Key, err)
	}
	return nil
}

// GetPreference returns the session's preferences, or the defaults.
func (s *Store) GetPreference(ctx context.Context, session string) (Preference, error) {
	var p Preference
	err := s.db.WithContext(ctx).Where("session_id = ?", session).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Preference{SessionID: session}, nil
	}
	if err != nil {
		return Preference{}, err
	}
	return p, nil
}

// SetGrouped stores the "sets and games together" preference.
func (s *Store) SetGrouped(ctx context.Context, session string, grouped bool) error {
	p, err := s.GetPreference(ctx, session)
	if err != nil {
		return err
	}
	p.Grouped = grouped
	if err := s.db.WithContext(ctx).Save(&p).Error; err != nil {
		return fmt.Errorf("save preference: %w", err)
	}
	return nil
}

// SaveGameSession records a launched game.
func (s *Store) SaveGameSession(ctx context.Context, session string, gs models.GameSession) error {
	rec := GameSession{SessionID: session, Game: gs.Game, StudySet: gs.StudySet, Avatar: gs.Avatar}
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("save game session: %w", err)
	}
	return nil
}

// LatestGameSession returns the most recently launched game for session.
func (s *Store) LatestGameSession(ctx context.Context, session string) (models.GameSession, error) {
	var rec GameSession
	err := s.db.WithContext(ctx).Where("session_id = ?", session).Order("id desc").First(&rec).Error
	if err != nil {
		return models.GameSession{}, notFound(err)
	}
	return models.GameSession{Game: rec.Game, StudySet: rec.StudySet, Avatar: rec.Avatar}, nil
}
