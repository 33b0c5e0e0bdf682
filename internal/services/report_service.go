package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"jobly/internal/repositories"
	"jobly/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// ReportService renders the printable company summary.
type ReportService struct {
	CompanyRepo repositories.CompanyRepository
	RequestID   string
	Loader      func(handle string) (companyReportData, error)
}

type companyReportData struct {
	Handle       string
	Name         string
	Description  string
	NumEmployees int
	Jobs         []reportJob
}

type reportJob struct {
	ID     int64
	Title  string
	Salary int
	Equity float64
}

func (s ReportService) GenerateCompanyReport(handle string) ([]byte, string, error) {
	data, err := s.loadCompanyReportData(handle)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "report", "generate_company", "handle="+handle)
	return buildCompanyReportPDF(data)
}

func (s ReportService) loadCompanyReportData(handle string) (companyReportData, error) {
	if s.Loader != nil {
		return s.Loader(handle)
	}

	var out companyReportData
	detail, err := s.CompanyRepo.Get(handle)
	if err != nil {
		return out, err
	}

	out.Handle = detail.Handle
	out.Name = detail.Name
	out.Description = detail.Description
	out.NumEmployees = detail.NumEmployees
	for _, j := range detail.Jobs {
		out.Jobs = append(out.Jobs, reportJob{ID: j.ID, Title: j.Title, Salary: j.Salary, Equity: j.Equity})
	}
	return out, nil
}

func buildCompanyReportPDF(d companyReportData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Company Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "COMPANY REPORT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Company   : %s (%s)", safe(d.Name, "-"), d.Handle),
		fmt.Sprintf("Employees : %d", d.NumEmployees),
		fmt.Sprintf("Generated : %s", time.Now().Format("2006-01-02 15:04")),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	if strings.TrimSpace(d.Description) != "" {
		pdf.Ln(3)
		pdf.MultiCell(0, 6, d.Description, "", "", false)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Open positions (%d):", len(d.Jobs)))
	pdf.Ln(9)

	pdf.SetFont("Helvetica", "", 11)
	if len(d.Jobs) == 0 {
		pdf.Cell(0, 6, "No open positions.")
		pdf.Ln(6)
	}
	for _, j := range d.Jobs {
		line := fmt.Sprintf("#%d  %s  salary %d  equity %.3f", j.ID, safe(j.Title, "-"), j.Salary, j.Equity)
		pdf.Cell(0, 6, line)
		pdf.Ln(6)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("COMPANY_%s.pdf", safeFilenamePart(d.Handle))
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func safeFilenamePart(s string) string {
	out := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_':
			return r
		default:
			return '_'
		}
	}, strings.TrimSpace(s))
	if out == "" {
		return "report"
	}
	return out
}
