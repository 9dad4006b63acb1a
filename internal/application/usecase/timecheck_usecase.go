package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pterm/pterm"

	"github.com/diillson/redmine-timecheck-go/internal/domain/entity"
	"github.com/diillson/redmine-timecheck-go/internal/domain/repository"
	"github.com/diillson/redmine-timecheck-go/internal/shared/types"
)

// TimeCheckUseCase handles one time-entry check run.
type TimeCheckUseCase struct {
	config       *types.Config
	trackingRepo repository.TimeTrackingRepository
	issueRepo    repository.IssueRepository
	exportRepo   repository.ExportRepository
	console      types.ConsoleInterface
	now          func() time.Time
}

// NewTimeCheckUseCase creates a new time check use case.
func NewTimeCheckUseCase(
	config *types.Config,
	trackingRepo repository.TimeTrackingRepository,
	issueRepo repository.IssueRepository,
	exportRepo repository.ExportRepository,
	console types.ConsoleInterface,
) *TimeCheckUseCase {
	return &TimeCheckUseCase{
		config:       config,
		trackingRepo: trackingRepo,
		issueRepo:    issueRepo,
		exportRepo:   exportRepo,
		console:      console,
		now:          time.Now,
	}
}

// WithClock substitui a fonte de "agora"; usado nos testes.
func (uc *TimeCheckUseCase) WithClock(now func() time.Time) *TimeCheckUseCase {
	uc.now = now
	return uc
}

// RunTimeCheck executa a verificação completa: data alvo, coleta, agregação,
// reconciliação e criação do ticket.
//
// A fetch failure short-circuits every later step and is returned wrapped in
// types.ErrFetchFailed. A creation failure is returned wrapped in
// types.ErrCreateFailed together with the report that was composed.
func (uc *TimeCheckUseCase) RunTimeCheck(ctx context.Context, args *types.CLIArgs) (*entity.CheckReport, error) {
	targetDate := uc.resolveTargetDate(ctx, args)
	dateStr := targetDate.Format(time.DateOnly)

	uc.console.LogInfo("--- Fetching data for %s ---", dateStr)

	roster, entries, err := uc.fetchData(ctx, targetDate)
	if err != nil {
		uc.console.LogError("%s", err)
		return nil, err
	}

	userTotals, projectTotals := Aggregate(entries, roster)

	// A agregação usa todos os membros do projeto; a reconciliação só os usuários alvo.
	targets := roster.Restrict(uc.config.TargetUserIDs)
	if len(uc.config.TargetUserIDs) > 0 && targets.Len() < len(uc.config.TargetUserIDs) {
		uc.console.LogWarning("%d configured target user(s) are not members of project '%s'",
			len(uc.config.TargetUserIDs)-targets.Len(), uc.config.ProjectID)
	}
	rec := Reconcile(targets, userTotals)

	uc.console.LogInfo("Target date: %s", dateStr)
	uc.console.LogInfo("Target users: %d", targets.Len())
	uc.console.LogInfo("Users who logged time: %d", len(userTotals))

	ticket := ComposeTicket(targetDate, rec, projectTotals, TicketSettings{
		SubjectKeyword: uc.config.SubjectKeyword,
		PriorityID:     uc.config.PriorityID,
	})

	report := &entity.CheckReport{
		TargetDate:     targetDate,
		Date:           dateStr,
		TargetUsers:    targets.Len(),
		LoggedUsers:    len(userTotals),
		Reconciliation: rec,
		Projects:       projectTotals.Items(),
		Ticket:         ticket,
		DryRun:         args.DryRun,
	}

	uc.displaySummary(report)

	if args.DryRun {
		uc.console.LogWarning("Dry run: the ticket will not be created")
		uc.console.Println(ticket.Subject)
		uc.console.Println()
		uc.console.Print(ticket.Description)
	} else {
		issueID, err := uc.createTicket(ctx, ticket)
		if err != nil {
			return report, err
		}
		report.IssueID = issueID
	}

	uc.exportReport(*report, args)

	return report, nil
}

// resolveTargetDate usa a data informada na CLI ou deduz a próxima data a partir do último ticket.
func (uc *TimeCheckUseCase) resolveTargetDate(ctx context.Context, args *types.CLIArgs) time.Time {
	today := truncateToDate(uc.now())

	if args.Date != nil {
		return truncateToDate(*args.Date)
	}

	latest, err := uc.issueRepo.FindLatestIssue(ctx, entity.IssueQuery{
		ProjectID:      uc.config.ProjectID,
		TrackerID:      uc.config.TrackerID,
		SubjectKeyword: uc.config.SubjectKeyword,
	})
	if err != nil {
		uc.console.LogWarning("Could not look up the previous check ticket, checking yesterday: %s", err)
		return ResolveTargetDate("", false, today)
	}
	if latest == nil {
		uc.console.LogInfo("No previous check ticket found, checking yesterday")
		return ResolveTargetDate("", false, today)
	}

	if !subjectDateRegex.MatchString(latest.Subject) {
		uc.console.LogWarning("Previous ticket #%d found but its date could not be parsed, checking yesterday", latest.ID)
	} else {
		uc.console.LogInfo("Previous check ticket: %s", latest.Subject)
	}
	return ResolveTargetDate(latest.Subject, true, today)
}

// fetchData busca os membros do projeto e as entradas de tempo da data alvo.
func (uc *TimeCheckUseCase) fetchData(ctx context.Context, date time.Time) (entity.Roster, []entity.TimeEntry, error) {
	status := uc.console.Status("Fetching project members...")
	defer status.Stop()

	members, err := uc.trackingRepo.GetProjectMembers(ctx, uc.config.ProjectID)
	if err != nil {
		return entity.Roster{}, nil, fmt.Errorf("%w: project members: %w", types.ErrFetchFailed, err)
	}

	status.Update("Fetching time entries...")
	entries, err := uc.trackingRepo.GetTimeEntries(ctx, date)
	if err != nil {
		return entity.Roster{}, nil, fmt.Errorf("%w: time entries: %w", types.ErrFetchFailed, err)
	}

	return entity.NewRoster(members), entries, nil
}

// createTicket envia o ticket ao Redmine com os membros pendentes como observadores.
func (uc *TimeCheckUseCase) createTicket(ctx context.Context, ticket entity.Ticket) (int, error) {
	uc.console.LogInfo("Creating Redmine ticket...")

	issueID, err := uc.issueRepo.CreateIssue(ctx, entity.NewIssue{
		ProjectID:     uc.config.ProjectID,
		TrackerID:     uc.config.TrackerID,
		ParentIssueID: uc.config.ParentIssueID,
		Ticket:        ticket,
	})
	if err != nil {
		uc.console.LogError("Failed to create ticket: %s", err)
		var bodyErr types.ResponseBodyError
		if errors.As(err, &bodyErr) && bodyErr.ResponseBody() != "" {
			uc.console.Println(bodyErr.ResponseBody())
		}
		return 0, fmt.Errorf("%w: %w", types.ErrCreateFailed, err)
	}

	uc.console.LogSuccess("Ticket created! Issue ID: %d", issueID)
	if len(ticket.WatcherIDs) > 0 {
		uc.console.LogInfo("Watchers added: %d", len(ticket.WatcherIDs))
	}
	return issueID, nil
}

func (uc *TimeCheckUseCase) displaySummary(report *entity.CheckReport) {
	table := uc.console.CreateTable()
	table.AddColumn("Member")
	table.AddColumn("Hours")
	table.AddColumn("Status")

	for _, m := range report.Reconciliation.Missing {
		table.AddRow(m.Name, missingHoursCell, pterm.FgRed.Sprint("missing"))
	}
	for _, m := range report.Reconciliation.Reported {
		table.AddRow(m.Name, formatHours(m.Hours), pterm.FgGreen.Sprint("logged"))
	}
	uc.console.Println(table.Render())

	if len(report.Projects) == 0 {
		return
	}
	bars := make([]types.ProjectHours, 0, len(report.Projects))
	for _, p := range report.Projects {
		bars = append(bars, types.ProjectHours{Project: p.Name, Hours: p.Hours.InexactFloat64()})
	}
	uc.console.DisplayHoursBars(bars)
}

// exportReport grava o relatório nos formatos pedidos; falhas são apenas registradas.
func (uc *TimeCheckUseCase) exportReport(report entity.CheckReport, args *types.CLIArgs) {
	if args.ReportName == "" || uc.exportRepo == nil {
		return
	}

	for _, reportType := range args.ReportType {
		var (
			path string
			err  error
		)
		switch reportType {
		case "csv":
			path, err = uc.exportRepo.ExportCheckReportToCSV(report, args.ReportName, args.Dir)
		case "json":
			path, err = uc.exportRepo.ExportCheckReportToJSON(report, args.ReportName, args.Dir)
		case "pdf":
			path, err = uc.exportRepo.ExportCheckReportToPDF(report, args.ReportName, args.Dir)
		default:
			uc.console.LogWarning("Unsupported report type: %s", reportType)
			continue
		}
		if err != nil {
			uc.console.LogError("Failed to export check report to %s: %s", reportType, err)
			continue
		}
		uc.console.LogSuccess("Successfully exported check report to %s: %s", reportType, path)
	}
}
