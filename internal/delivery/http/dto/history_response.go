package dto

import "silverwork/internal/domain/history"

type HistoryResponse struct {
	ID          int64   `json:"id"`
	SeniorID    string  `json:"senior_id"`
	JobID       int64   `json:"job_id"`
	CompanyID   string  `json:"company_id"`
	CompanyName string  `json:"company_name"`
	JobTitle    string  `json:"job_title"`
	StartDate   string  `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Status      string  `json:"status"`
	Verified    bool    `json:"verified"`
}

func NewHistoryResponse(h history.History) HistoryResponse {
	var end *string
	if h.EndDate != nil {
		d := h.EndDate.Format(dateLayout)
		end = &d
	}

	return HistoryResponse{
		ID:          h.ID,
		SeniorID:    h.SeniorID,
		JobID:       h.JobID,
		CompanyID:   h.CompanyID,
		CompanyName: h.CompanyName,
		JobTitle:    h.JobTitle,
		StartDate:   h.StartDate.Format(dateLayout),
		EndDate:     end,
		Status:      h.Status,
		Verified:    !h.VerifiedAt.IsZero(),
	}
}
