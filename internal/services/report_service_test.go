package services

import (
	"strings"
	"testing"
)

func TestReportServiceGenerateCompanyReport(t *testing.T) {
	loader := func(handle string) (companyReportData, error) {
		return companyReportData{
			Handle:       handle,
			Name:         "Anvil Co",
			Description:  "Heavy objects, delivered fast.",
			NumEmployees: 120,
			Jobs: []reportJob{
				{ID: 1, Title: "Forger", Salary: 60000, Equity: 0},
				{ID: 2, Title: "Dropper", Salary: 55000, Equity: 0.02},
			},
		}, nil
	}

	svc := ReportService{Loader: loader}

	pdf, filename, err := svc.GenerateCompanyReport("anvil")
	if err != nil {
		t.Fatalf("GenerateCompanyReport returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("empty PDF output")
	}
	if !strings.HasPrefix(filename, "COMPANY_anvil") {
		t.Fatalf("unexpected filename: %s", filename)
	}
}

func TestReportServiceNoOpenPositions(t *testing.T) {
	loader := func(handle string) (companyReportData, error) {
		return companyReportData{Handle: handle, Name: "Empty Inc"}, nil
	}

	svc := ReportService{Loader: loader}

	pdf, _, err := svc.GenerateCompanyReport("empty")
	if err != nil {
		t.Fatalf("GenerateCompanyReport returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("empty PDF output")
	}
}
