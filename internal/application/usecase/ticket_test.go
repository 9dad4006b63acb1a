package usecase_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/diillson/redmine-timecheck-go/internal/application/usecase"
	"github.com/diillson/redmine-timecheck-go/internal/domain/entity"
)

var ticketSettings = usecase.TicketSettings{SubjectKeyword: "Time entry check", PriorityID: 1}

func TestComposeTicket_WithMissingMembers(t *testing.T) {
	entries := []entity.TimeEntry{
		{UserID: 6, ProjectName: "Project A", Hours: hours("8")},
		{UserID: 8, ProjectName: "Project A", Hours: hours("6")},
	}
	userTotals, projectTotals := usecase.Aggregate(entries, sampleRoster())
	rec := usecase.Reconcile(sampleRoster(), userTotals)

	ticket := usecase.ComposeTicket(date(2025, 12, 18), rec, projectTotals, ticketSettings)

	expected := "h3. Target date: 2025-12-18\n" +
		"\n" +
		"h4. Members with missing entries\n" +
		"\n" +
		"Please log your hours.\n" +
		"\n" +
		"|_. Name |_. Hours |\n" +
		"|B|---|\n" +
		"\n" +
		"h4. Members who logged hours\n" +
		"\n" +
		"|_. Name |_. Hours |\n" +
		"|A|8.00|\n" +
		"|C|6.00|\n" +
		"\n" +
		"h4. Totals by project\n" +
		"\n" +
		"|_. Project |_. Total hours |\n" +
		"|Project A|14.00|\n"

	assert.Equal(t, expected, ticket.Description)
	assert.Equal(t, "[Missing entries] Time entry check (2025-12-18)", ticket.Subject)
	assert.Equal(t, 1, ticket.PriorityID)
	assert.Equal(t, []int{7}, ticket.WatcherIDs)
}

func TestComposeTicket_Complete(t *testing.T) {
	rec := usecase.Reconcile(sampleRoster().Restrict([]int{6}), entity.UserTotals{6: hours("8")})

	ticket := usecase.ComposeTicket(date(2025, 12, 18), rec, entity.NewProjectTotals(), ticketSettings)

	assert.Contains(t, ticket.Subject, "[Complete]")
	assert.NotContains(t, ticket.Subject, "[Missing entries]")
	assert.Contains(t, ticket.Description, "h4. All members have logged their hours\n")
	assert.NotContains(t, ticket.Description, "h4. Members with missing entries")
	assert.Contains(t, ticket.Description, "|A|8.00|")
	assert.NotContains(t, ticket.Description, "Totals by project")
	assert.Empty(t, ticket.WatcherIDs)
}

func TestComposeTicket_NobodyLogged(t *testing.T) {
	rec := usecase.Reconcile(sampleRoster(), entity.UserTotals{})

	ticket := usecase.ComposeTicket(date(2025, 12, 18), rec, entity.NewProjectTotals(), ticketSettings)

	assert.Contains(t, ticket.Description, "|A|---|\n|B|---|\n|C|---|\n")
	assert.NotContains(t, ticket.Description, "Members who logged hours")
	assert.Equal(t, []int{6, 7, 8}, ticket.WatcherIDs)
}

func TestComposeTicket_PriorityIsConstant(t *testing.T) {
	settings := usecase.TicketSettings{SubjectKeyword: "Check", PriorityID: 4}

	missing := usecase.ComposeTicket(date(2025, 1, 2), usecase.Reconcile(sampleRoster(), entity.UserTotals{}), nil, settings)
	complete := usecase.ComposeTicket(date(2025, 1, 2), entity.Reconciliation{}, nil, settings)

	assert.Equal(t, 4, missing.PriorityID)
	assert.Equal(t, 4, complete.PriorityID)
	assert.Equal(t, "[Complete] Check (2025-01-02)", complete.Subject)
}

func TestComposeTicket_Deterministic(t *testing.T) {
	entries := []entity.TimeEntry{
		{UserID: 6, ProjectName: "P2", Hours: hours("1.5")},
		{UserID: 7, ProjectName: "P1", Hours: hours("2")},
		{UserID: 6, ProjectName: "P3", Hours: hours("0.25")},
	}

	var first string
	for i := 0; i < 20; i++ {
		userTotals, projectTotals := usecase.Aggregate(entries, sampleRoster())
		ticket := usecase.ComposeTicket(date(2025, 12, 18), usecase.Reconcile(sampleRoster(), userTotals), projectTotals, ticketSettings)
		if i == 0 {
			first = ticket.Description
			continue
		}
		assert.Equal(t, first, ticket.Description)
	}
	assert.True(t, strings.Index(first, "|P2|") < strings.Index(first, "|P1|"), "projects keep first-seen order")
}

func TestComposeTicket_EscapesPipes(t *testing.T) {
	roster := entity.NewRoster([]entity.Member{{ID: 1, Name: "Ops | Infra"}})
	projects := entity.NewProjectTotals()
	projects.Add("A|B", hours("1"))

	ticket := usecase.ComposeTicket(date(2025, 12, 18), usecase.Reconcile(roster, entity.UserTotals{1: hours("1")}), projects, ticketSettings)

	assert.Contains(t, ticket.Description, "|Ops &#124; Infra|1.00|\n")
	assert.Contains(t, ticket.Description, "|A&#124;B|1.00|\n")
}
