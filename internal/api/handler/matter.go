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

// Matter handles matter routes nested under a customer. Every route
// re-verifies that the parent customer belongs to the caller before any
// matter row is touched.
type Matter struct {
	svc         *core.MatterService
	customerSvc *core.CustomerService
}

func NewMatter(svc *core.MatterService, customerSvc *core.CustomerService) *Matter {
	return &Matter{svc: svc, customerSvc: customerSvc}
}

// params validates the customer (and optionally matter) path IDs.
// Returns false after writing a 400 if either is not a UUID.
func (h *Matter) params(w http.ResponseWriter, r *http.Request, withMatter bool) (customerID, matterID string, ok bool) {
	customerID = chi.URLParam(r, "customerID")
	if err := request.RequireUUID(customerID, "customerId", "customer ID"); err != nil {
		writeRequestError(w, err)
		return "", "", false
	}
	if withMatter {
		matterID = chi.URLParam(r, "matterID")
		if err := request.RequireUUID(matterID, "matterId", "matter ID"); err != nil {
			writeRequestError(w, err)
			return "", "", false
		}
	}
	return customerID, matterID, true
}

// List returns a customer's matters, newest first.
func (h *Matter) List(w http.ResponseWriter, r *http.Request) {
	identity := requireIdentity(w, r)
	if identity == nil {
		return
	}
	customerID, _, ok := h.params(w, r, false)
	if !ok {
		return
	}
	if requireCustomer(w, r, h.customerSvc, identity.ID, customerID) == nil {
		return
	}

	matters, err := h.svc.ListByCustomer(r.Context(), customerID)
	if err != nil {
		response.WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}
	if matters == nil {
		matters = []model.Matter{}
	}

	response.WriteJSON(w, http.StatusOK, matters)
}

// Create opens a new matter under an owned customer. Status defaults to
// open and the open date to now.
func (h *Matter) Create(w http.ResponseWriter, r *http.Request) {
	identity := requireIdentity(w, r)
	if identity == nil {
		return
	}
	customerID, _, ok := h.params(w, r, false)
	if !ok {
		return
	}

	var req request.CreateMatter
	if err := request.Decode(r, &req); err != nil {
		writeRequestError(w, err)
		return
	}

	if requireCustomer(w, r, h.customerSvc, identity.ID, customerID) == nil {
		return
	}

	status := req.Status
	if status == "" {
		status = model.MatterStatusOpen
	}

	now := time.Now()
	matter := &model.Matter{
		ID:           uuid.New().String(),
		CustomerID:   customerID,
		Name:         req.Name,
		Description:  req.Description,
		Status:       status,
		OpenDate:     now,
		PracticeArea: req.PracticeArea,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := h.svc.Create(r.Context(), matter); err != nil {
		response.WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}

	response.WriteJSON(w, http.StatusCreated, matter)
}

// Get returns a single matter scoped to its owned parent customer.
func (h *Matter) Get(w http.ResponseWriter, r *http.Request) {
	identity := requireIdentity(w, r)
	if identity == nil {
		return
	}
	customerID, matterID, ok := h.params(w, r, true)
	if !ok {
		return
	}
	if requireCustomer(w, r, h.customerSvc, identity.ID, customerID) == nil {
		return
	}

	matter, err := h.svc.GetByCustomer(r.Context(), customerID, matterID)
	if err != nil {
		writeServiceError(w, err, "Matter not found")
		return
	}

	response.WriteJSON(w, http.StatusOK, matter)
}

// Update applies a merge patch to a matter, including status
// transitions and closure.
func (h *Matter) Update(w http.ResponseWriter, r *http.Request) {
	identity := requireIdentity(w, r)
	if identity == nil {
		return
	}
	customerID, matterID, ok := h.params(w, r, true)
	if !ok {
		return
	}

	var req request.UpdateMatter
	if err := request.Decode(r, &req); err != nil {
		writeRequestError(w, err)
		return
	}

	if requireCustomer(w, r, h.customerSvc, identity.ID, customerID) == nil {
		return
	}

	matter, err := h.svc.Update(r.Context(), customerID, matterID, core.MatterPatch{
		Name:         req.Name,
		Description:  req.Description,
		Status:       req.Status,
		PracticeArea: req.PracticeArea,
		OpenDate:     req.OpenDate,
		CloseDate:    req.CloseDate,
	})
	if err != nil {
		writeServiceError(w, err, "Matter not found")
		return
	}

	response.WriteJSON(w, http.StatusOK, matter)
}
