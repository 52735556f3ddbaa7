package dto

type CreateJobRequest struct {
	Title       string  `json:"title" binding:"required" validate:"required,min=3,max=200"`
	Description string  `json:"description" binding:"required" validate:"required,min=10"`
	Category    string  `json:"category" binding:"required" validate:"required"`
	SubCategory string  `json:"subCategory"`
	Budget      float64 `json:"budget" binding:"required" validate:"required,gt=0"`
	Mobile      string  `json:"mobile" binding:"required" validate:"required,mobile"`
	City        string  `json:"city" binding:"required" validate:"required"`
	WorkDate    string  `json:"workDate" binding:"required" validate:"required,datetime=2006-01-02"`
	Location    string  `json:"location"`
	WorkPhoto   string  `json:"workPhoto"`
}

// JobActionRequest drives accept/decline/cancel/complete/delete. Reason is
// only meaningful for decline and cancel.
type JobActionRequest struct {
	JobID  string `json:"jobId" binding:"required" validate:"required"`
	Reason string `json:"reason"`
}
