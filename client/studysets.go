package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/andrewpaige1/studyset-web/models"
)

// ListStudySets returns the caller's study sets.
func (c *Client) ListStudySets(ctx context.Context) (models.StudySets, error) {
	sets := models.StudySets{}
	if err := c.do(ctx, http.MethodGet, "/studysets/", nil, &sets); err != nil {
		return nil, err
	}
	return sets, nil
}

// CreateStudySet creates a set and returns it with its new id.
func (c *Client) CreateStudySet(ctx context.Context, in models.StudySetInput) (models.StudySet, error) {
	var set models.StudySet
	if err := c.do(ctx, http.MethodPost, "/studysets/new/", in, &set); err != nil {
		return models.StudySet{}, err
	}
	return set, nil
}

// UpdateStudySet replaces the subject and questions of set id.
func (c *Client) UpdateStudySet(ctx context.Context, id int, in models.StudySetInput) (models.StudySet, error) {
	var set models.StudySet
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/studysets/%d/update/", id), in, &set); err != nil {
		return models.StudySet{}, err
	}
	return set, nil
}

// DeleteStudySet deletes set id.
func (c *Client) DeleteStudySet(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/studysets/%d/delete_study_set/", id), nil, nil)
}

// ListClassrooms returns the classrooms the caller belongs to.
func (c *Client) ListClassrooms(ctx context.Context) ([]models.Classroom, error) {
	classrooms := []models.Classroom{}
	if err := c.do(ctx, http.MethodGet, "/classrooms/", nil, &classrooms); err != nil {
		return nil, err
	}
	return classrooms, nil
}
