package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewpaige1/studyset-web/models"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/", WithHTTPClient(srv.Client())).WithToken("tok")
}

func TestListStudySets(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/studysets/", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.Write([]byte(`[{"id":1,"subject":"Bio","questions":[{"question":"q","answers":["a"]}]}]`))
	})

	sets, err := c.ListStudySets(context.Background())

	require.NoError(t, err)
	require.Len(t, sets, 1)
	assert.Equal(t, models.StudySet{ID: 1, Subject: "Bio", Questions: []models.Question{{Question: "q", Answers: []string{"a"}}}}, sets[0])
}

func TestCreateAndUpdateStudySet(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody models.StudySetInput
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(models.StudySet{ID: 9, Subject: gotBody.Subject, Questions: gotBody.Questions})
	})
	in := models.StudySetInput{Subject: "Chem", Questions: []models.Question{{Question: "H", Answers: []string{"1"}}}}

	set, err := c.CreateStudySet(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/studysets/new/", gotPath)
	assert.Equal(t, in, gotBody)
	assert.Equal(t, 9, set.ID)

	_, err = c.UpdateStudySet(context.Background(), 9, in)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/studysets/9/update/", gotPath)
}

func TestDeleteStudySet(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/studysets/3/delete_study_set/", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, c.DeleteStudySet(context.Background(), 3))
}

func TestAPIErrorDetail(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"string detail", http.StatusBadRequest, `{"detail":"Subject too short"}`, "Subject too short"},
		{"validation list", http.StatusUnprocessableEntity, `{"detail":[{"loc":["body"],"msg":"field required"}]}`, "field required"},
		{"no body", http.StatusInternalServerError, ``, "Something went wrong"},
		{"not json", http.StatusBadGateway, `<html>`, "Something went wrong"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			err := c.DeleteStudySet(context.Background(), 1)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.want, Detail(err))
			assert.False(t, errors.Is(err, ErrInvalidCredentials))
		})
	}
}

func TestInvalidCredentials(t *testing.T) {
	t.Run("detail", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"detail":"Could not validate credentials"}`))
		})
		_, err := c.Me(context.Background())
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("status", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
		_, err := c.ListStudySets(context.Background())
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestMe(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "/auth/users/me/", r.URL.Path)
		w.Write([]byte(`{"name":"Ada","email":"ada@example.com","role":"student","profile_picture_index":3}`))
	})

	user, err := c.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.User{Name: "Ada", Email: "ada@example.com", Role: "student", ProfilePictureIndex: 3}, user)

	guest, err := c.WithToken(models.GuestToken).Me(context.Background())
	require.NoError(t, err)
	assert.True(t, guest.IsGuest())
	assert.Equal(t, 1, calls)
}

func TestListClassrooms(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/classrooms/", r.URL.Path)
		w.Write([]byte(`[{"id":2,"name":"Period 1","color":"blue","students":[5],"teacher":1,"study_sets":[1,3]}]`))
	})

	classrooms, err := c.ListClassrooms(context.Background())
	require.NoError(t, err)
	require.Len(t, classrooms, 1)
	assert.Equal(t, []int{1, 3}, classrooms[0].StudySets)
}

func TestWithTokenDoesNotShareState(t *testing.T) {
	base := New("http://example.invalid")
	a := base.WithToken("a")
	b := base.WithToken("b")

	assert.Equal(t, "", base.token)
	assert.Equal(t, "a", a.token)
	assert.Equal(t, "b", b.token)
}

func TestWithTimeoutDoesNotTouchSharedClient(t *testing.T) {
	shared := &http.Client{Timeout: time.Minute}

	c := New("http://example.test", WithHTTPClient(shared), WithTimeout(time.Second))

	assert.Equal(t, time.Minute, shared.Timeout)
	assert.Equal(t, time.Second, c.httpClient.Timeout)

	assert.NotPanics(t, func() {
		c = New("http://example.test", WithHTTPClient(nil), WithTimeout(2*time.Second))
	})
	assert.Equal(t, 2*time.Second, c.httpClient.Timeout)
}
