package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ernestofreyreg/law-api/internal/api/request"
	"github.com/ernestofreyreg/law-api/internal/api/response"
	"github.com/ernestofreyreg/law-api/internal/core"
	"github.com/ernestofreyreg/law-api/internal/model"
)

// Customer handles customer CRUD. Every operation runs scoped to the
// authenticated user.
type Customer struct {
	svc *core.CustomerService
}

func NewCustomer(svc *core.CustomerService) *Customer {
	return &Customer{svc: svc}
}

// List returns the caller's customers ordered by name.
func (h *Customer) List(w http.ResponseWriter, r *http.Request) {
	identity := requireIdentity(w, r)
	if identity == nil {
		return
	}

	customers, err := h.svc.ListByUser(r.Context(), identity.ID)
	if err != nil {
		response.WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}
	if customers == nil {
		customers = []model.Customer{}
	}

	response.WriteJSON(w, http.StatusOK, customers)
}

// Create adds a new customer owned by the caller.
func (h *Customer) Create(w http.ResponseWriter, r *http.Request) {
	identity := requireIdentity(w, r)
	if identity == nil {
		return
	}

	var req request.CreateCustomer
	if err := request.Decode(r, &req); err != nil {
		writeRequestError(w, err)
		return
	}

	now := time.Now()
	customer := &model.Customer{
		ID:          uuid.New().String(),
		UserID:      identity.ID,
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Address:     req.Address,
		Notes:       req.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := h.svc.Create(r.Context(), customer); err != nil {
		response.WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}

	response.WriteJSON(w, http.StatusCreated, customer)
}

// Get returns a single owned customer.
func (h *Customer) Get(w http.ResponseWriter, r *http.Request) {
	identity := requireIdentity(w, r)
	if identity == nil {
		return
	}

	customerID := chi.URLParam(r, "customerID")
	if err := request.RequireUUID(customerID, "id", "customer ID"); err != nil {
		writeRequestError(w, err)
		return
	}

	customer, err := h.svc.GetOwned(r.Context(), identity.ID, customerID)
	if err != nil {
		writeServiceError(w, err, "Customer not found")
		return
	}

	response.WriteJSON(w, http.StatusOK, customer)
}

// Update applies a merge patch to an owned customer.
func (h *Customer) Update(w http.ResponseWriter, r *http.Request) {
	identity := requireIdentity(w, r)
	if identity == nil {
		return
	}

	customerID := chi.URLParam(r, "customerID")
	if err := request.RequireUUID(customerID, "id", "customer ID"); err != nil {
		writeRequestError(w, err)
		return
	}

	var req request.UpdateCustomer
	if err := request.Decode(r, &req); err != nil {
		writeRequestError(w, err)
		return
	}

	customer, err := h.svc.Update(r.Context(), identity.ID, customerID, core.CustomerPatch{
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Address:     req.Address,
		Notes:       req.Notes,
	})
	if err != nil {
		writeServiceError(w, err, "Customer not found")
		return
	}

	response.WriteJSON(w, http.StatusOK, customer)
}

// Delete removes an owned customer and, through the schema cascade, its
// matters.
func (h *Customer) Delete(w http.ResponseWriter, r *http.Request) {
	identity := requireIdentity(w, r)
	if identity == nil {
		return
	}

	customerID := chi.URLParam(r, "customerID")
	if err := request.RequireUUID(customerID, "id", "customer ID"); err != nil {
		writeRequestError(w, err)
		return
	}

	if err := h.svc.Delete(r.Context(), identity.ID, customerID); err != nil {
		writeServiceError(w, err, "Customer not found")
		return
	}

	response.WriteMessage(w, http.StatusOK, "Customer removed")
}
