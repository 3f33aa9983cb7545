package dto

import "silverwork/internal/domain/application"

type ApplicationResponse struct {
	ID              int64  `json:"id"`
	JobID           int64  `json:"job_id"`
	SeniorID        string `json:"senior_id"`
	SeniorName      string `json:"senior_name"`
	JobTitle        string `json:"job_title"`
	Status          string `json:"status"`
	ApplicationDate string `json:"application_date"`
}

func NewApplicationResponse(a application.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:              a.ID,
		JobID:           a.JobID,
		SeniorID:        a.SeniorID,
		SeniorName:      a.SeniorName,
		JobTitle:        a.JobTitle,
		Status:          string(a.Status),
		ApplicationDate: a.AppliedAt.Format(dateLayout),
	}
}
