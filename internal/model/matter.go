package model

import "time"

type Matter struct {
	ID           string     `json:"id" db:"id"`
	CustomerID   string     `json:"customerId" db:"customer_id"`
	Name         string     `json:"name" db:"name"`
	Description  string     `json:"description" db:"description"`
	Status       string     `json:"status" db:"status"`
	OpenDate     time.Time  `json:"openDate" db:"open_date"`
	CloseDate    *time.Time `json:"closeDate,omitempty" db:"close_date"`
	PracticeArea string     `json:"practiceArea" db:"practice_area"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time  `json:"updatedAt" db:"updated_at"`
}
