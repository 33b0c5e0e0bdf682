package handlers

import (
	"net/http"
	"strconv"

	"jobly/internal/domain/models"
	"jobly/internal/http/middleware"
	"jobly/internal/repositories"
	"jobly/internal/utils"

	"github.com/gin-gonic/gin"
)

type jobCreateRequest struct {
	Title         string  `json:"title" binding:"required"`
	Salary        int     `json:"salary" binding:"min=0"`
	Equity        float64 `json:"equity" binding:"min=0,max=1"`
	CompanyHandle string  `json:"companyHandle" binding:"required"`
}

func jobIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "invalid_job_id", "invalid job id", nil)
		return 0, false
	}
	return id, true
}

// POST /api/jobs (admin)
func CreateJob(c *gin.Context) {
	var req jobCreateRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	job, err := repositories.JobRepository{}.Create(models.Job{
		Title:         req.Title,
		Salary:        req.Salary,
		Equity:        req.Equity,
		CompanyHandle: req.CompanyHandle,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "job", "create", "id="+strconv.FormatInt(job.ID, 10))
	c.JSON(http.StatusCreated, gin.H{"job": job})
}

// GET /api/jobs (public)
// Optional query: title, minSalary, hasEquity.
func GetJobs(c *gin.Context) {
	jobs, err := repositories.JobRepository{}.FindAll(parseJobFilter(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

// GET /api/jobs/:id (public)
func GetJob(c *gin.Context) {
	id, ok := jobIDParam(c)
	if !ok {
		return
	}

	job, err := repositories.JobRepository{}.Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"job": job})
}

// PATCH /api/jobs/:id (admin)
// The id and the owning company cannot be changed.
func UpdateJob(c *gin.Context) {
	id, ok := jobIDParam(c)
	if !ok {
		return
	}

	var req repositories.JobUpdate
	if !BindSparseJSON(c, &req, "id", "companyHandle") {
		return
	}

	job, err := repositories.JobRepository{}.Update(id, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "job", "update", "id="+strconv.FormatInt(id, 10))
	c.JSON(http.StatusOK, gin.H{"job": job})
}

// DELETE /api/jobs/:id (admin)
func DeleteJob(c *gin.Context) {
	id, ok := jobIDParam(c)
	if !ok {
		return
	}

	if err := (repositories.JobRepository{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "job", "delete", "id="+strconv.FormatInt(id, 10))
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
