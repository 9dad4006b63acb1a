package redmine

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/diillson/redmine-timecheck-go/internal/domain/entity"
	"github.com/diillson/redmine-timecheck-go/internal/shared/types"
)

const (
	apiKeyHeader   = "X-Redmine-API-Key"
	requestTimeout = 30 * time.Second
	// maxResponseSize limita a leitura do corpo das respostas.
	maxResponseSize = 10 << 20
)

// RedmineRepositoryImpl implementa TimeTrackingRepository e IssueRepository sobre a API REST do Redmine.
type RedmineRepositoryImpl struct {
	baseURL    string
	apiKey     string
	pageLimit  int
	httpClient *http.Client
}

// NewRedmineRepository cria o cliente a partir da configuração.
// A verificação do certificado TLS só é desativada quando InsecureSkipVerify está ligado.
func NewRedmineRepository(config *types.Config) *RedmineRepositoryImpl {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if config.InsecureSkipVerify {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec
	}

	return NewRedmineRepositoryWithClient(config, &http.Client{
		Timeout:   requestTimeout,
		Transport: transport,
	})
}

// NewRedmineRepositoryWithClient cria o cliente usando um http.Client já configurado.
func NewRedmineRepositoryWithClient(config *types.Config, httpClient *http.Client) *RedmineRepositoryImpl {
	pageLimit := config.PageLimit
	if pageLimit <= 0 {
		pageLimit = types.DefaultPageLimit
	}
	return &RedmineRepositoryImpl{
		baseURL:    strings.TrimRight(config.RedmineURL, "/"),
		apiKey:     config.APIKey,
		pageLimit:  pageLimit,
		httpClient: httpClient,
	}
}

// GetProjectMembers returns the users that are members of the project, in API order.
// Group memberships carry no user and are skipped.
func (r *RedmineRepositoryImpl) GetProjectMembers(ctx context.Context, projectID string) ([]entity.Member, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(r.pageLimit))

	var resp membershipsResponse
	path := fmt.Sprintf("/projects/%s/memberships.json", url.PathEscape(projectID))
	if err := r.getJSON(ctx, path, params, &resp); err != nil {
		return nil, err
	}

	if resp.Memberships == nil {
		return nil, fmt.Errorf("%w: memberships is missing", types.ErrMalformedPayload)
	}

	members := make([]entity.Member, 0, len(*resp.Memberships))
	for i, m := range *resp.Memberships {
		if m.User == nil {
			continue
		}
		if m.User.ID == nil {
			return nil, fmt.Errorf("%w: membership %d has a user without id", types.ErrMalformedPayload, i)
		}
		members = append(members, entity.Member{ID: *m.User.ID, Name: m.User.Name})
	}
	return members, nil
}

// GetTimeEntries returns the time entries spent on the given date.
func (r *RedmineRepositoryImpl) GetTimeEntries(ctx context.Context, date time.Time) ([]entity.TimeEntry, error) {
	params := url.Values{}
	params.Set("spent_on", date.Format(time.DateOnly))
	params.Set("limit", strconv.Itoa(r.pageLimit))

	var resp timeEntriesResponse
	if err := r.getJSON(ctx, "/time_entries.json", params, &resp); err != nil {
		return nil, err
	}
	if resp.TimeEntries == nil {
		return nil, fmt.Errorf("%w: time_entries is missing", types.ErrMalformedPayload)
	}

	entries := make([]entity.TimeEntry, 0, len(*resp.TimeEntries))
	for i, e := range *resp.TimeEntries {
		if e.User == nil || e.Project == nil || e.Hours == nil {
			return nil, fmt.Errorf("%w: time entry %d lacks user, project or hours", types.ErrMalformedPayload, i)
		}
		if e.Hours.IsNegative() {
			return nil, fmt.Errorf("%w: time entry %d has negative hours %s", types.ErrMalformedPayload, i, e.Hours)
		}
		entries = append(entries, entity.TimeEntry{
			UserID:      e.User.ID,
			ProjectName: e.Project.Name,
			Hours:       *e.Hours,
		})
	}
	return entries, nil
}

// FindLatestIssue returns the newest issue whose subject contains the keyword, or nil.
func (r *RedmineRepositoryImpl) FindLatestIssue(ctx context.Context, query entity.IssueQuery) (*entity.IssueSummary, error) {
	params := url.Values{}
	params.Set("project_id", query.ProjectID)
	params.Set("subject", "~"+query.SubjectKeyword)
	if query.TrackerID > 0 {
		params.Set("tracker_id", strconv.Itoa(query.TrackerID))
	}
	params.Set("sort", "created_on:desc")
	params.Set("limit", "1")

	var resp issuesResponse
	if err := r.getJSON(ctx, "/issues.json", params, &resp); err != nil {
		return nil, err
	}
	if len(resp.Issues) == 0 {
		return nil, nil
	}

	latest := resp.Issues[0]
	return &entity.IssueSummary{
		ID:        latest.ID,
		Subject:   latest.Subject,
		CreatedOn: latest.CreatedOn,
	}, nil
}

// CreateIssue creates the issue and returns its ID.
func (r *RedmineRepositoryImpl) CreateIssue(ctx context.Context, issue entity.NewIssue) (int, error) {
	watchers := issue.WatcherIDs
	if watchers == nil {
		watchers = []int{}
	}

	payload := createIssueRequest{Issue: createIssuePayload{
		ProjectID:      issue.ProjectID,
		TrackerID:      issue.TrackerID,
		ParentIssueID:  issue.ParentIssueID,
		Subject:        issue.Subject,
		Description:    issue.Description,
		PriorityID:     issue.PriorityID,
		WatcherUserIDs: watchers,
	}}

	body, err := r.do(ctx, http.MethodPost, "/issues.json", nil, payload)
	if err != nil {
		return 0, err
	}

	var resp createIssueResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return 0, fmt.Errorf("%w: decoding created issue: %w", types.ErrMalformedPayload, err)
	}
	if resp.Issue == nil {
		return 0, fmt.Errorf("%w: created issue is missing", types.ErrMalformedPayload)
	}
	return resp.Issue.ID, nil
}

func (r *RedmineRepositoryImpl) getJSON(ctx context.Context, path string, params url.Values, target any) error {
	body, err := r.do(ctx, http.MethodGet, path, params, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("%w: decoding %s: %w", types.ErrMalformedPayload, path, err)
	}
	return nil
}

// do executa uma requisição autenticada e devolve o corpo da resposta.
// Respostas fora da faixa 2xx viram *APIError.
func (r *RedmineRepositoryImpl) do(ctx context.Context, method, path string, params url.Values, requestBody any) ([]byte, error) {
	endpoint := r.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var reader io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return nil, fmt.Errorf("redmine: encoding request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("redmine: building request: %w", err)
	}
	req.Header.Set(apiKeyHeader, r.apiKey)
	req.Header.Set("Accept", "application/json")
	if requestBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("redmine: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("redmine: reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newAPIError(resp.StatusCode, body)
	}
	return body, nil
}
