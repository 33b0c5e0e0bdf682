package handlers

import (
	"net/http"

	"jobly/internal/domain/models"
	"jobly/internal/http/middleware"
	"jobly/internal/repositories"
	"jobly/internal/services"
	"jobly/internal/utils"

	"github.com/gin-gonic/gin"
)

type companyCreateRequest struct {
	Handle       string `json:"handle" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	NumEmployees int    `json:"numEmployees"`
	LogoURL      string `json:"logoUrl"`
}

// POST /api/companies (admin)
func CreateCompany(c *gin.Context) {
	var req companyCreateRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	company, err := repositories.CompanyRepository{}.Create(models.Company{
		Handle:       req.Handle,
		Name:         req.Name,
		Description:  req.Description,
		NumEmployees: req.NumEmployees,
		LogoURL:      req.LogoURL,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "company", "create", "handle="+company.Handle)
	c.JSON(http.StatusCreated, gin.H{"company": company})
}

// GET /api/companies (public)
// Optional query: name, minEmployees, maxEmployees.
func GetCompanies(c *gin.Context) {
	companies, err := repositories.CompanyRepository{}.FindAll(parseCompanyFilter(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"companies": companies})
}

// GET /api/companies/:handle (public)
func GetCompany(c *gin.Context) {
	company, err := repositories.CompanyRepository{}.Get(c.Param("handle"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"company": company})
}

// PATCH /api/companies/:handle (admin)
func UpdateCompany(c *gin.Context) {
	var req repositories.CompanyUpdate
	if !BindSparseJSON(c, &req, "handle") {
		return
	}

	company, err := repositories.CompanyRepository{}.Update(c.Param("handle"), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "company", "update", "handle="+company.Handle)
	c.JSON(http.StatusOK, gin.H{"company": company})
}

// DELETE /api/companies/:handle (admin)
func DeleteCompany(c *gin.Context) {
	handle := c.Param("handle")
	if err := (repositories.CompanyRepository{}).Delete(handle); err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "company", "delete", "handle="+handle)
	c.JSON(http.StatusOK, gin.H{"deleted": handle})
}

// GET /api/companies/:handle/report (public)
// Printable PDF summary of the company and its open positions.
func GetCompanyReport(c *gin.Context) {
	svc := services.ReportService{
		CompanyRepo: repositories.CompanyRepository{},
		RequestID:   middleware.GetRequestID(c),
	}

	pdfBytes, filename, err := svc.GenerateCompanyReport(c.Param("handle"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
