package repository

import (
	"github.com/diillson/redmine-timecheck-go/internal/domain/entity"
)

type ExportRepository interface {
	ExportCheckReportToCSV(report entity.CheckReport, filename, outputDir string) (string, error)
	ExportCheckReportToJSON(report entity.CheckReport, filename, outputDir string) (string, error)
	ExportCheckReportToPDF(report entity.CheckReport, filename, outputDir string) (string, error)
}
