package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"workhive_backend/internal/services"
	"workhive_backend/internal/services/dto"
	"workhive_backend/internal/validator"
)

type JobHandler struct {
	BaseHandler
	jobService services.JobService
}

func NewJobHandler(v *validator.Validator, jobService services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: NewBaseHandler(v),
		jobService:  jobService,
	}
}

func (h *JobHandler) RegisterRoutes(authorized *gin.RouterGroup) {
	grp := authorized.Group("/jobs")
	{
		grp.POST("/create", h.Create)
		grp.GET("/list", h.List)
		grp.GET("/my", h.MyJobs)
		grp.GET("/assigned", h.AssignedJobs)

		grp.POST("/accept", h.Accept)
		grp.POST("/decline", h.Decline)
		grp.POST("/cancel", h.Cancel)
		grp.POST("/complete", h.Complete)
		grp.DELETE("/delete", h.Delete)

		// Registered last so the fixed segments above keep priority.
		grp.GET("/:id", h.GetByID)
	}
}

func (h *JobHandler) Create(c *gin.Context) {
	userID, ok := h.AuthenticatedUserID(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	job, err := h.jobService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Job posted successfully", "job": job})
}

// List is the role-dependent feed: category matches for workers, own
// postings for hiring users.
func (h *JobHandler) List(c *gin.Context) {
	userID, ok := h.AuthenticatedUserID(c)
	if !ok {
		return
	}

	jobs, err := h.jobService.ListForUser(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

func (h *JobHandler) MyJobs(c *gin.Context) {
	userID, ok := h.AuthenticatedUserID(c)
	if !ok {
		return
	}

	jobs, err := h.jobService.MyJobs(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

func (h *JobHandler) AssignedJobs(c *gin.Context) {
	userID, ok := h.AuthenticatedUserID(c)
	if !ok {
		return
	}

	jobs, err := h.jobService.AssignedJobs(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

func (h *JobHandler) GetByID(c *gin.Context) {
	userID, ok := h.AuthenticatedUserID(c)
	if !ok {
		return
	}

	job, err := h.jobService.GetJob(userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"job": job})
}

func (h *JobHandler) Accept(c *gin.Context) {
	userID, ok := h.AuthenticatedUserID(c)
	if !ok {
		return
	}

	var req dto.JobActionRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	job, err := h.jobService.Accept(userID, req.JobID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job accepted", "job": job})
}

func (h *JobHandler) Decline(c *gin.Context) {
	userID, ok := h.AuthenticatedUserID(c)
	if !ok {
		return
	}

	var req dto.JobActionRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	job, err := h.jobService.Decline(userID, req.JobID, req.Reason)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job declined", "job": job})
}

func (h *JobHandler) Cancel(c *gin.Context) {
	userID, ok := h.AuthenticatedUserID(c)
	if !ok {
		return
	}

	var req dto.JobActionRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	job, err := h.jobService.Cancel(userID, req.JobID, req.Reason)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job cancelled", "job": job})
}

func (h *JobHandler) Complete(c *gin.Context) {
	userID, ok := h.AuthenticatedUserID(c)
	if !ok {
		return
	}

	var req dto.JobActionRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	job, err := h.jobService.Complete(userID, req.JobID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job completed", "job": job})
}

func (h *JobHandler) Delete(c *gin.Context) {
	userID, ok := h.AuthenticatedUserID(c)
	if !ok {
		return
	}

	var req dto.JobActionRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.jobService.Delete(userID, req.JobID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job deleted"})
}
