package request

import "time"

type CreateMatter struct {
	Name         string `json:"name" validate:"required"`
	Description  string `json:"description" validate:"required"`
	PracticeArea string `json:"practiceArea" validate:"required"`
	Status       string `json:"status" validate:"omitempty,matter_status"`
}

// UpdateMatter is a merge patch: nil means "leave unchanged".
type UpdateMatter struct {
	Name         *string    `json:"name"`
	Description  *string    `json:"description"`
	Status       *string    `json:"status" validate:"omitempty,matter_status"`
	PracticeArea *string    `json:"practiceArea"`
	OpenDate     *time.Time `json:"openDate"`
	CloseDate    *time.Time `json:"closeDate"`
}
