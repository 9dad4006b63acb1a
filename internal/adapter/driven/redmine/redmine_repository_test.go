package redmine

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/redmine-timecheck-go/internal/domain/entity"
	"github.com/diillson/redmine-timecheck-go/internal/shared/types"
)

func newTestRepository(t *testing.T, handler http.HandlerFunc) *RedmineRepositoryImpl {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := types.DefaultConfig()
	cfg.RedmineURL = server.URL + "/"
	cfg.APIKey = "secret-key"
	return NewRedmineRepositoryWithClient(cfg, server.Client())
}

func TestGetProjectMembers(t *testing.T) {
	repo := newTestRepository(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, http.MethodGet, request.Method)
		assert.Equal(t, "/projects/test251115/memberships.json", request.URL.Path)
		assert.Equal(t, "100", request.URL.Query().Get("limit"))
		assert.Equal(t, "secret-key", request.Header.Get("X-Redmine-API-Key"))

		writer.Write([]byte(`{"memberships":[
			{"id":1,"user":{"id":6,"name":"A"},"roles":[{"id":3}]},
			{"id":2,"group":{"id":30,"name":"Developers"}},
			{"id":3,"user":{"id":7,"name":"B"}}
		],"total_count":3}`))
	})

	members, err := repo.GetProjectMembers(context.Background(), "test251115")
	require.NoError(t, err)
	assert.Equal(t, []entity.Member{{ID: 6, Name: "A"}, {ID: 7, Name: "B"}}, members)
}

func TestGetProjectMembers_MalformedPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty object", body: `{}`},
		{name: "null list", body: `{"memberships":null}`},
		{name: "error body", body: `{"error":"x"}`},
		{name: "not a list", body: `{"memberships":{"user":{"id":6}}}`},
		{name: "user without id", body: `{"memberships":[{"user":{"name":"noid"}}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newTestRepository(t, func(writer http.ResponseWriter, request *http.Request) {
				writer.Write([]byte(tt.body))
			})

			members, err := repo.GetProjectMembers(context.Background(), "test251115")
			assert.ErrorIs(t, err, types.ErrMalformedPayload)
			assert.Nil(t, members)
		})
	}
}

func TestGetProjectMembers_EmptyList(t *testing.T) {
	repo := newTestRepository(t, func(writer http.ResponseWriter, request *http.Request) {
		writer.Write([]byte(`{"memberships":[],"total_count":0}`))
	})

	members, err := repo.GetProjectMembers(context.Background(), "test251115")
	require.NoError(t, err)
	assert.Empty(t, members)
}

func TestGetProjectMembers_HTTPError(t *testing.T) {
	repo := newTestRepository(t, func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusUnauthorized)
	})

	_, err := repo.GetProjectMembers(context.Background(), "test")
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
}

func TestGetTimeEntries(t *testing.T) {
	repo := newTestRepository(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/time_entries.json", request.URL.Path)
		assert.Equal(t, "2025-12-18", request.URL.Query().Get("spent_on"))
		assert.Equal(t, "100", request.URL.Query().Get("limit"))

		writer.Write([]byte(`{"time_entries":[
			{"id":1,"project":{"id":1,"name":"Project A"},"user":{"id":6,"name":"A"},"hours":8.0,"spent_on":"2025-12-18"},
			{"id":2,"project":{"id":2,"name":"Project B"},"user":{"id":7,"name":"B"},"hours":7.5,"spent_on":"2025-12-18"}
		]}`))
	})

	entries, err := repo.GetTimeEntries(context.Background(), time.Date(2025, 12, 18, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 6, entries[0].UserID)
	assert.Equal(t, "Project A", entries[0].ProjectName)
	assert.Equal(t, "8.00", entries[0].Hours.StringFixed(2))
	assert.Equal(t, "7.50", entries[1].Hours.StringFixed(2))
}

func TestGetTimeEntries_MalformedPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing list", body: `{"total_count":0}`},
		{name: "not a list", body: `{"time_entries":"oops"}`},
		{name: "entry without user", body: `{"time_entries":[{"project":{"name":"P"},"hours":1}]}`},
		{name: "negative hours", body: `{"time_entries":[{"user":{"id":6},"project":{"name":"P"},"hours":-1}]}`},
		{name: "not json", body: `<html>maintenance</html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newTestRepository(t, func(writer http.ResponseWriter, request *http.Request) {
				writer.Write([]byte(tt.body))
			})

			_, err := repo.GetTimeEntries(context.Background(), time.Now())
			assert.ErrorIs(t, err, types.ErrMalformedPayload)
		})
	}
}

func TestFindLatestIssue(t *testing.T) {
	repo := newTestRepository(t, func(writer http.ResponseWriter, request *http.Request) {
		query := request.URL.Query()
		assert.Equal(t, "/issues.json", request.URL.Path)
		assert.Equal(t, "test251115", query.Get("project_id"))
		assert.Equal(t, "~Time entry check", query.Get("subject"))
		assert.Equal(t, "3", query.Get("tracker_id"))
		assert.Equal(t, "created_on:desc", query.Get("sort"))
		assert.Equal(t, "1", query.Get("limit"))

		writer.Write([]byte(`{"issues":[{"id":50,"subject":"[Complete] Time entry check (2025-12-17)","created_on":"2025-12-18T00:05:00Z"}]}`))
	})

	issue, err := repo.FindLatestIssue(context.Background(), entity.IssueQuery{
		ProjectID:      "test251115",
		TrackerID:      3,
		SubjectKeyword: "Time entry check",
	})
	require.NoError(t, err)
	require.NotNil(t, issue)
	assert.Equal(t, 50, issue.ID)
	assert.Equal(t, "[Complete] Time entry check (2025-12-17)", issue.Subject)
	assert.Equal(t, time.Date(2025, 12, 18, 0, 5, 0, 0, time.UTC), issue.CreatedOn.UTC())
}

func TestFindLatestIssue_NoIssues(t *testing.T) {
	repo := newTestRepository(t, func(writer http.ResponseWriter, request *http.Request) {
		writer.Write([]byte(`{"issues":[],"total_count":0}`))
	})

	issue, err := repo.FindLatestIssue(context.Background(), entity.IssueQuery{ProjectID: "p", SubjectKeyword: "k"})
	require.NoError(t, err)
	assert.Nil(t, issue)
}

func TestCreateIssue(t *testing.T) {
	repo := newTestRepository(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, http.MethodPost, request.Method)
		assert.Equal(t, "/issues.json", request.URL.Path)
		assert.Equal(t, "application/json", request.Header.Get("Content-Type"))
		assert.Equal(t, "secret-key", request.Header.Get("X-Redmine-API-Key"))

		body, err := io.ReadAll(request.Body)
		require.NoError(t, err)

		var payload map[string]map[string]any
		require.NoError(t, json.Unmarshal(body, &payload))
		issue := payload["issue"]
		assert.Equal(t, "test251115", issue["project_id"])
		assert.EqualValues(t, 3, issue["tracker_id"])
		assert.EqualValues(t, 44, issue["parent_issue_id"])
		assert.EqualValues(t, 1, issue["priority_id"])
		assert.Equal(t, "[Missing entries] Time entry check (2025-12-18)", issue["subject"])
		assert.Equal(t, []any{float64(7)}, issue["watcher_user_ids"])

		writer.WriteHeader(http.StatusCreated)
		writer.Write([]byte(`{"issue":{"id":123,"subject":"x"}}`))
	})

	id, err := repo.CreateIssue(context.Background(), entity.NewIssue{
		ProjectID:     "test251115",
		TrackerID:     3,
		ParentIssueID: 44,
		Ticket: entity.Ticket{
			Subject:     "[Missing entries] Time entry check (2025-12-18)",
			Description: "h3. Target date: 2025-12-18\n",
			PriorityID:  1,
			WatcherIDs:  []int{7},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 123, id)
}

func TestCreateIssue_OmitsParentAndSendsEmptyWatchers(t *testing.T) {
	repo := newTestRepository(t, func(writer http.ResponseWriter, request *http.Request) {
		var payload map[string]map[string]any
		require.NoError(t, json.NewDecoder(request.Body).Decode(&payload))

		_, hasParent := payload["issue"]["parent_issue_id"]
		assert.False(t, hasParent)
		assert.Equal(t, []any{}, payload["issue"]["watcher_user_ids"])

		writer.WriteHeader(http.StatusCreated)
		writer.Write([]byte(`{"issue":{"id":1}}`))
	})

	_, err := repo.CreateIssue(context.Background(), entity.NewIssue{ProjectID: "p", TrackerID: 3})
	require.NoError(t, err)
}

func TestCreateIssue_ValidationError(t *testing.T) {
	repo := newTestRepository(t, func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusUnprocessableEntity)
		writer.Write([]byte(`{"errors":["Tracker is not included in the list","Subject cannot be blank"]}`))
	})

	_, err := repo.CreateIssue(context.Background(), entity.NewIssue{ProjectID: "p"})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Equal(t, []string{"Tracker is not included in the list", "Subject cannot be blank"}, apiErr.Messages)
	assert.Contains(t, apiErr.ResponseBody(), "Subject cannot be blank")
	assert.Equal(t, "redmine: HTTP 422: Tracker is not included in the list; Subject cannot be blank", err.Error())

	var bodyErr types.ResponseBodyError
	assert.ErrorAs(t, err, &bodyErr)
}

func TestCreateIssue_MissingIssueInResponse(t *testing.T) {
	repo := newTestRepository(t, func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusCreated)
		writer.Write([]byte(`{}`))
	})

	_, err := repo.CreateIssue(context.Background(), entity.NewIssue{ProjectID: "p"})
	assert.ErrorIs(t, err, types.ErrMalformedPayload)
}

func TestNewRedmineRepository_InsecureTransport(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Write([]byte(`{"issues":[]}`))
	}))
	defer server.Close()

	cfg := types.DefaultConfig()
	cfg.RedmineURL = server.URL

	_, err := NewRedmineRepository(cfg).FindLatestIssue(context.Background(), entity.IssueQuery{})
	require.Error(t, err, "self-signed certificate must be rejected by default")

	cfg.InsecureSkipVerify = true
	issue, err := NewRedmineRepository(cfg).FindLatestIssue(context.Background(), entity.IssueQuery{})
	require.NoError(t, err)
	assert.Nil(t, issue)
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(&APIError{StatusCode: 404}))
	assert.False(t, IsNotFound(&APIError{StatusCode: 500}))
	assert.False(t, IsNotFound(assert.AnError))
}
