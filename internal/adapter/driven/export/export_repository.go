package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/diillson/redmine-timecheck-go/internal/domain/entity"
	"github.com/diillson/redmine-timecheck-go/internal/domain/repository"
	"github.com/jung-kurt/gofpdf"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct {
	now      func() time.Time
	fontPath string
}

// NewExportRepository cria uma nova implementação do ExportRepository.
// fontPath é opcional: uma fonte TrueType que cubra os nomes (ex.: japonês) no PDF.
func NewExportRepository(fontPath string) repository.ExportRepository {
	return &ExportRepositoryImpl{now: time.Now, fontPath: fontPath}
}

const pdfFontFamily = "ReportFont"

// setupPDFFont registra a fonte UTF-8 configurada ou cai para Arial em cp1252.
func (r *ExportRepositoryImpl) setupPDFFont(pdf *gofpdf.Fpdf) (string, func(string) string, error) {
	if r.fontPath == "" {
		return "Arial", pdf.UnicodeTranslatorFromDescriptor(""), nil
	}

	fontPath, err := filepath.Abs(r.fontPath)
	if err != nil {
		return "", nil, fmt.Errorf("error resolving PDF font path: %w", err)
	}
	if _, err := os.Stat(fontPath); err != nil {
		return "", nil, fmt.Errorf("error reading PDF font: %w", err)
	}
	for _, style := range []string{"", "B", "I"} {
		pdf.AddUTF8Font(pdfFontFamily, style, fontPath)
	}
	if err := pdf.Error(); err != nil {
		return "", nil, fmt.Errorf("error loading PDF font: %w", err)
	}
	return pdfFontFamily, func(s string) string { return s }, nil
}

// --- Funções de Exportação do Relatório de Verificação ---

func (r *ExportRepositoryImpl) ExportCheckReportToCSV(report entity.CheckReport, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	headers := []string{"Date", "Section", "Name", "Hours", "Member ID"}
	if err := writer.Write(headers); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}

	var records [][]string
	for _, m := range report.Reconciliation.Missing {
		records = append(records, []string{report.Date, "missing", m.Name, "", strconv.Itoa(m.ID)})
	}
	for _, m := range report.Reconciliation.Reported {
		records = append(records, []string{report.Date, "reported", m.Name, m.Hours.StringFixed(2), strconv.Itoa(m.ID)})
	}
	for _, p := range report.Projects {
		records = append(records, []string{report.Date, "project", p.Name, p.Hours.StringFixed(2), ""})
	}

	for _, record := range records {
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("error writing CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("error flushing CSV file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportCheckReportToJSON(report entity.CheckReport, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportCheckReportToPDF(report entity.CheckReport, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	family, tr, err := r.setupPDFFont(pdf)
	if err != nil {
		return "", err
	}

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	drawSectionTitle := func(title string) {
		pdf.SetFont(family, "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(7)

		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)
	}

	drawTable := func(title, nameHeader, valueHeader string, rows [][2]string) {
		if len(rows) == 0 {
			return
		}
		drawSectionTitle(title)

		pdf.SetFont(family, "B", 10)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.CellFormat(140, 7, tr(nameHeader), "B", 0, "L", false, 0, "")
		pdf.CellFormat(50, 7, tr(valueHeader), "B", 1, "R", false, 0, "")

		pdf.SetFont(family, "", 10)
		for _, row := range rows {
			pdf.CellFormat(140, 6, tr(row[0]), "", 0, "L", false, 0, "")
			pdf.CellFormat(50, 6, tr(row[1]), "", 1, "R", false, 0, "")
		}
		pdf.Ln(8)
	}

	pdf.AddPage()

	// Cabeçalho
	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont(family, "B", 14)
	pdf.CellFormat(0, 12, tr(fmt.Sprintf("  %s", report.Ticket.Subject)), "", 1, "L", true, 0, "")

	pdf.SetFont(family, "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	summary := fmt.Sprintf("  Target date: %s | Target users: %d | Users who logged time: %d",
		report.Date, report.TargetUsers, report.LoggedUsers)
	pdf.CellFormat(0, 8, tr(summary), "", 1, "L", true, 0, "")
	pdf.Ln(10)

	var missingRows, reportedRows, projectRows [][2]string
	for _, m := range report.Reconciliation.Missing {
		missingRows = append(missingRows, [2]string{m.Name, "---"})
	}
	for _, m := range report.Reconciliation.Reported {
		reportedRows = append(reportedRows, [2]string{m.Name, m.Hours.StringFixed(2)})
	}
	for _, p := range report.Projects {
		projectRows = append(projectRows, [2]string{p.Name, p.Hours.StringFixed(2)})
	}

	if len(missingRows) == 0 {
		drawSectionTitle("All members have logged their hours")
		pdf.Ln(4)
	}
	drawTable("Members with missing entries", "Name", "Hours", missingRows)
	drawTable("Members who logged hours", "Name", "Hours", reportedRows)
	drawTable("Totals by project", "Project", "Total hours", projectRows)

	// Rodapé
	pdf.SetY(-15)
	pdf.SetFont(family, "I", 8)
	pdf.SetTextColor(128, 128, 128)
	footerText := fmt.Sprintf("Time Entry Check | %s", r.now().Format("2006-01-02"))
	pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Funções Auxiliares ---

// generateFilename cria um nome de arquivo único com timestamp e garante que o diretório exista.
func (r *ExportRepositoryImpl) generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := r.now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}
