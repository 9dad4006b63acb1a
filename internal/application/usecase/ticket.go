package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/diillson/redmine-timecheck-go/internal/domain/entity"
)

const (
	missingSubjectTag  = "[Missing entries]"
	completeSubjectTag = "[Complete]"

	userTableHeader    = "|_. Name |_. Hours |\n"
	projectTableHeader = "|_. Project |_. Total hours |\n"
	missingHoursCell   = "---"
)

// TicketSettings holds the fixed values used when composing a ticket.
type TicketSettings struct {
	SubjectKeyword string
	PriorityID     int
}

// ComposeTicket monta o assunto e a descrição (Textile) do ticket de verificação.
// Para as mesmas entradas a saída é idêntica byte a byte.
func ComposeTicket(date time.Time, rec entity.Reconciliation, projects *entity.ProjectTotals, settings TicketSettings) entity.Ticket {
	dateStr := date.Format(time.DateOnly)

	return entity.Ticket{
		Subject:     composeSubject(dateStr, rec, settings.SubjectKeyword),
		Description: composeDescription(dateStr, rec, projects),
		PriorityID:  settings.PriorityID,
		WatcherIDs:  rec.WatcherIDs(),
	}
}

func composeSubject(dateStr string, rec entity.Reconciliation, keyword string) string {
	tag := completeSubjectTag
	if !rec.Complete() {
		tag = missingSubjectTag
	}
	return fmt.Sprintf("%s %s (%s)", tag, keyword, dateStr)
}

func composeDescription(dateStr string, rec entity.Reconciliation, projects *entity.ProjectTotals) string {
	var b strings.Builder

	fmt.Fprintf(&b, "h3. Target date: %s\n\n", dateStr)

	if !rec.Complete() {
		b.WriteString("h4. Members with missing entries\n\n")
		b.WriteString("Please log your hours.\n\n")
		b.WriteString(userTableHeader)
		for _, m := range rec.Missing {
			writeRow(&b, m.Name, missingHoursCell)
		}
	} else {
		b.WriteString("h4. All members have logged their hours\n")
	}

	b.WriteString("\n")

	if len(rec.Reported) > 0 {
		b.WriteString("h4. Members who logged hours\n\n")
		b.WriteString(userTableHeader)
		for _, m := range rec.Reported {
			writeRow(&b, m.Name, formatHours(m.Hours))
		}
	}

	if projects.Len() > 0 {
		b.WriteString("\n")
		b.WriteString("h4. Totals by project\n\n")
		b.WriteString(projectTableHeader)
		for _, p := range projects.Items() {
			writeRow(&b, p.Name, formatHours(p.Hours))
		}
	}

	return b.String()
}

func writeRow(b *strings.Builder, name, value string) {
	fmt.Fprintf(b, "|%s|%s|\n", escapeCell(name), value)
}

// escapeCell impede que um "|" no nome quebre a linha da tabela Textile.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "&#124;")
}

func formatHours(h decimal.Decimal) string {
	return h.StringFixed(2)
}
