package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func queryContext(t *testing.T, target string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", target, nil)
	return c
}

func TestParseCompanyFilterTypedValues(t *testing.T) {
	f := parseCompanyFilter(queryContext(t, "/api/companies?name=net&minEmployees=200"))
	if f.Name == nil || *f.Name != "net" {
		t.Fatalf("name not parsed: %+v", f)
	}
	if f.MinEmployees == nil || *f.MinEmployees != 200 {
		t.Fatalf("minEmployees not parsed: %+v", f)
	}
	if f.MaxEmployees != nil {
		t.Fatalf("maxEmployees should be absent: %+v", f)
	}
}

func TestParseCompanyFilterDropsNonNumeric(t *testing.T) {
	f := parseCompanyFilter(queryContext(t, "/api/companies?minEmployees=abc&maxEmployees="))
	if f.MinEmployees != nil || f.MaxEmployees != nil {
		t.Fatalf("non-numeric bounds should be dropped, not zero-filled: %+v", f)
	}
}

func TestParseCompanyFilterIgnoresUnknownKeys(t *testing.T) {
	f := parseCompanyFilter(queryContext(t, "/api/companies?color=blue"))
	if f.Name != nil || f.MinEmployees != nil || f.MaxEmployees != nil {
		t.Fatalf("unknown keys should be ignored: %+v", f)
	}
}

func TestParseJobFilterStrictBoolean(t *testing.T) {
	f := parseJobFilter(queryContext(t, "/api/jobs?hasEquity=true"))
	if f.HasEquity == nil || !*f.HasEquity {
		t.Fatalf("hasEquity=true not parsed: %+v", f)
	}

	f = parseJobFilter(queryContext(t, "/api/jobs?hasEquity=false"))
	if f.HasEquity == nil || *f.HasEquity {
		t.Fatalf("hasEquity=false not parsed: %+v", f)
	}

	// anything but the two literals is dropped, never treated as truthy
	f = parseJobFilter(queryContext(t, "/api/jobs?hasEquity=yes"))
	if f.HasEquity != nil {
		t.Fatalf("non-literal boolean should be dropped: %+v", f)
	}
}

func TestParseJobFilterNumeric(t *testing.T) {
	f := parseJobFilter(queryContext(t, "/api/jobs?title=eng&minSalary=100000"))
	if f.Title == nil || *f.Title != "eng" {
		t.Fatalf("title not parsed: %+v", f)
	}
	if f.MinSalary == nil || *f.MinSalary != 100000 {
		t.Fatalf("minSalary not parsed: %+v", f)
	}
}
