package handlers

import (
	"strconv"
	"strings"

	"jobly/internal/repositories"

	"github.com/gin-gonic/gin"
)

// parseCompanyFilter coerces raw query strings into a typed company filter.
// Non-numeric numeric params are dropped, never zero-filled; unrecognized
// params are ignored.
func parseCompanyFilter(c *gin.Context) repositories.CompanyFilter {
	var f repositories.CompanyFilter

	if v := strings.TrimSpace(c.Query("name")); v != "" {
		f.Name = &v
	}
	if v := strings.TrimSpace(c.Query("minEmployees")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			f.MinEmployees = &n
		}
	}
	if v := strings.TrimSpace(c.Query("maxEmployees")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			f.MaxEmployees = &n
		}
	}
	return f
}

// parseJobFilter coerces raw query strings into a typed job filter.
// hasEquity only accepts the literals "true" and "false"; anything else is
// dropped rather than treated as truthy.
func parseJobFilter(c *gin.Context) repositories.JobFilter {
	var f repositories.JobFilter

	if v := strings.TrimSpace(c.Query("title")); v != "" {
		f.Title = &v
	}
	if v := strings.TrimSpace(c.Query("minSalary")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			f.MinSalary = &n
		}
	}
	switch strings.TrimSpace(c.Query("hasEquity")) {
	case "true":
		t := true
		f.HasEquity = &t
	case "false":
		t := false
		f.HasEquity = &t
	}
	return f
}
