package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ernestofreyreg/law-api/internal/model"
)

// CustomerService manages customer records. Every read and write is
// scoped to the owning user: a row owned by someone else behaves
// exactly like a row that does not exist.
type CustomerService struct {
	db DB
}

func NewCustomerService(db DB) *CustomerService {
	return &CustomerService{db: db}
}

// CustomerPatch carries partial-update fields. A nil field leaves the
// stored value unchanged; so does a present-but-empty string, keeping
// the merge contract that a falsy value never clears a stored one.
type CustomerPatch struct {
	Name        *string
	PhoneNumber *string
	Email       *string
	Address     *string
	Notes       *string
}

const customerColumns = `id, user_id, name, phone_number, email, address, notes, created_at, updated_at`

func scanCustomer(row pgx.Row) (*model.Customer, error) {
	var c model.Customer
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.PhoneNumber, &c.Email,
		&c.Address, &c.Notes, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a new customer owned by the given user.
func (s *CustomerService) Create(ctx context.Context, c *model.Customer) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO customers (id, user_id, name, phone_number, email, address, notes, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		c.ID, c.UserID, c.Name, c.PhoneNumber, c.Email, c.Address, c.Notes, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// ListByUser returns the user's customers ordered by name ascending.
func (s *CustomerService) ListByUser(ctx context.Context, userID string) ([]model.Customer, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+customerColumns+` FROM customers WHERE user_id = $1 ORDER BY name ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list customers for user %s: %w", userID, err)
	}
	defer rows.Close()

	var customers []model.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		customers = append(customers, *c)
	}
	return customers, rows.Err()
}

// GetOwned returns the customer only if it belongs to the user.
// Unowned and missing rows are indistinguishable: both return ErrNotFound.
func (s *CustomerService) GetOwned(ctx context.Context, userID, customerID string) (*model.Customer, error) {
	c, err := scanCustomer(s.db.QueryRow(ctx,
		`SELECT `+customerColumns+` FROM customers WHERE id = $1 AND user_id = $2`,
		customerID, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get customer %s: %w", customerID, err)
	}
	return c, nil
}

// Update applies a merge patch to an owned customer and returns the
// updated record.
func (s *CustomerService) Update(ctx context.Context, userID, customerID string, patch CustomerPatch) (*model.Customer, error) {
	c, err := s.GetOwned(ctx, userID, customerID)
	if err != nil {
		return nil, err
	}

	if v := patch.Name; v != nil && *v != "" {
		c.Name = *v
	}
	if v := patch.PhoneNumber; v != nil && *v != "" {
		c.PhoneNumber = *v
	}
	if v := patch.Email; v != nil && *v != "" {
		c.Email = v
	}
	if v := patch.Address; v != nil && *v != "" {
		c.Address = v
	}
	if v := patch.Notes; v != nil && *v != "" {
		c.Notes = v
	}
	c.UpdatedAt = time.Now()

	_, err = s.db.Exec(ctx,
		`UPDATE customers SET name = $1, phone_number = $2, email = $3, address = $4, notes = $5, updated_at = $6
		 WHERE id = $7 AND user_id = $8`,
		c.Name, c.PhoneNumber, c.Email, c.Address, c.Notes, c.UpdatedAt, customerID, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("update customer %s: %w", customerID, err)
	}
	return c, nil
}

// Delete removes an owned customer. The customer's matters go with it
// (ON DELETE CASCADE on the matters foreign key).
func (s *CustomerService) Delete(ctx context.Context, userID, customerID string) error {
	tag, err := s.db.Exec(ctx,
		`DELETE FROM customers WHERE id = $1 AND user_id = $2`, customerID, userID)
	if err != nil {
		return fmt.Errorf("delete customer %s: %w", customerID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
