package dto

import "silverwork/internal/domain/posting"

const dateLayout = "2006-01-02"

type JobResponse struct {
	ID                 int64   `json:"id"`
	CompanyID          string  `json:"company_id"`
	CompanyName        string  `json:"company_name"`
	Title              string  `json:"title"`
	Description        string  `json:"description"`
	Location           string  `json:"location"`
	EmploymentType     string  `json:"employment_type"`
	WageType           string  `json:"wage_type"`
	WageAmount         int64   `json:"wage_amount"`
	WorkDays           string  `json:"work_days"`
	WorkHours          string  `json:"work_hours"`
	WorkPeriod         string  `json:"work_period"`
	Deadline           *string `json:"deadline"`
	Status             string  `json:"status"`
	GovernmentApproved bool    `json:"government_approved"`
}

func NewJobResponse(p posting.Posting) JobResponse {
	var deadline *string
	if p.Deadline != nil {
		d := p.Deadline.Format(dateLayout)
		deadline = &d
	}

	return JobResponse{
		ID:                 p.ID,
		CompanyID:          p.CompanyID,
		CompanyName:        p.CompanyName,
		Title:              p.Title,
		Description:        p.Description,
		Location:           p.Location,
		EmploymentType:     p.EmploymentType,
		WageType:           p.WageType,
		WageAmount:         p.WageAmount,
		WorkDays:           p.WorkDays,
		WorkHours:          p.WorkHours,
		WorkPeriod:         p.WorkPeriod,
		Deadline:           deadline,
		Status:             string(p.Status),
		GovernmentApproved: p.GovernmentApproved(),
	}
}
