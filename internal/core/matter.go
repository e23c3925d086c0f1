package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ernestofreyreg/law-api/internal/model"
)

// MatterService manages matters. Matter rows never store the user ID;
// ownership is derived through the parent customer, which callers must
// resolve with CustomerService.GetOwned before touching matter rows.
type MatterService struct {
	db DB
}

func NewMatterService(db DB) *MatterService {
	return &MatterService{db: db}
}

// MatterPatch carries partial-update fields with the same merge
// semantics as CustomerPatch.
type MatterPatch struct {
	Name         *string
	Description  *string
	Status       *string
	PracticeArea *string
	OpenDate     *time.Time
	CloseDate    *time.Time
}

const matterColumns = `id, customer_id, name, description, status, open_date, close_date, practice_area, created_at, updated_at`

func scanMatter(row pgx.Row) (*model.Matter, error) {
	var m model.Matter
	err := row.Scan(&m.ID, &m.CustomerID, &m.Name, &m.Description, &m.Status,
		&m.OpenDate, &m.CloseDate, &m.PracticeArea, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Create inserts a new matter under a customer.
func (s *MatterService) Create(ctx context.Context, m *model.Matter) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO matters (id, customer_id, name, description, status, open_date, close_date, practice_area, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		m.ID, m.CustomerID, m.Name, m.Description, m.Status, m.OpenDate, m.CloseDate,
		m.PracticeArea, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert matter: %w", err)
	}
	return nil
}

// ListByCustomer returns a customer's matters, newest first.
func (s *MatterService) ListByCustomer(ctx context.Context, customerID string) ([]model.Matter, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+matterColumns+` FROM matters WHERE customer_id = $1 ORDER BY created_at DESC`, customerID)
	if err != nil {
		return nil, fmt.Errorf("list matters for customer %s: %w", customerID, err)
	}
	defer rows.Close()

	var matters []model.Matter
	for rows.Next() {
		m, err := scanMatter(rows)
		if err != nil {
			return nil, fmt.Errorf("scan matter: %w", err)
		}
		matters = append(matters, *m)
	}
	return matters, rows.Err()
}

// GetByCustomer returns a matter scoped to its parent customer.
// A matter that exists under a different customer returns ErrNotFound.
func (s *MatterService) GetByCustomer(ctx context.Context, customerID, matterID string) (*model.Matter, error) {
	m, err := scanMatter(s.db.QueryRow(ctx,
		`SELECT `+matterColumns+` FROM matters WHERE id = $1 AND customer_id = $2`,
		matterID, customerID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get matter %s: %w", matterID, err)
	}
	return m, nil
}

// Update applies a merge patch to a matter and returns the updated record.
func (s *MatterService) Update(ctx context.Context, customerID, matterID string, patch MatterPatch) (*model.Matter, error) {
	m, err := s.GetByCustomer(ctx, customerID, matterID)
	if err != nil {
		return nil, err
	}

	if v := patch.Name; v != nil && *v != "" {
		m.Name = *v
	}
	if v := patch.Description; v != nil && *v != "" {
		m.Description = *v
	}
	if v := patch.Status; v != nil && *v != "" {
		m.Status = *v
	}
	if v := patch.PracticeArea; v != nil && *v != "" {
		m.PracticeArea = *v
	}
	if v := patch.OpenDate; v != nil && !v.IsZero() {
		m.OpenDate = *v
	}
	if v := patch.CloseDate; v != nil && !v.IsZero() {
		m.CloseDate = v
	}
	m.UpdatedAt = time.Now()

	_, err = s.db.Exec(ctx,
		`UPDATE matters SET name = $1, description = $2, status = $3, open_date = $4, close_date = $5, practice_area = $6, updated_at = $7
		 WHERE id = $8 AND customer_id = $9`,
		m.Name, m.Description, m.Status, m.OpenDate, m.CloseDate, m.PracticeArea, m.UpdatedAt,
		matterID, customerID,
	)
	if err != nil {
		return nil, fmt.Errorf("update matter %s: %w", matterID, err)
	}
	return m, nil
}
