package handler

import (
	"errors"
	"net/http"

	mw "github.com/ernestofreyreg/law-api/internal/api/middleware"
	"github.com/ernestofreyreg/law-api/internal/api/request"
	"github.com/ernestofreyreg/law-api/internal/api/response"
	"github.com/ernestofreyreg/law-api/internal/core"
	"github.com/ernestofreyreg/law-api/internal/model"
)

// requireIdentity re-checks that the auth middleware attached a caller
// identity. Returns nil and writes a 401 if it is absent.
func requireIdentity(w http.ResponseWriter, r *http.Request) *mw.Identity {
	identity := mw.GetIdentity(r.Context())
	if identity == nil {
		response.WriteError(w, http.StatusUnauthorized, "Not authorized")
		return nil
	}
	return identity
}

// requireCustomer resolves a customer and verifies it belongs to the
// caller. Ownership misses and missing rows both produce the same 404,
// so customer existence never leaks across accounts. This is the single
// authorization predicate every matter route runs before touching
// matter rows.
func requireCustomer(w http.ResponseWriter, r *http.Request, svc *core.CustomerService, userID, customerID string) *model.Customer {
	customer, err := svc.GetOwned(r.Context(), userID, customerID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			response.WriteError(w, http.StatusNotFound, "Customer not found")
		} else {
			response.WriteError(w, http.StatusInternalServerError, "Server error")
		}
		return nil
	}
	return customer
}

// writeRequestError maps a Decode or RequireUUID failure to a 400.
// Validation failures carry the full violation list; malformed JSON
// gets a plain error body.
func writeRequestError(w http.ResponseWriter, err error) {
	var verr *request.ValidationError
	if errors.As(err, &verr) {
		response.WriteJSON(w, http.StatusBadRequest, map[string]any{"errors": verr.Violations})
		return
	}
	response.WriteError(w, http.StatusBadRequest, err.Error())
}

// writeServiceError maps a service failure to a response: ErrNotFound
// becomes a 404 with the given message, everything else a 500.
func writeServiceError(w http.ResponseWriter, err error, notFoundMessage string) {
	if errors.Is(err, core.ErrNotFound) {
		response.WriteError(w, http.StatusNotFound, notFoundMessage)
		return
	}
	response.WriteError(w, http.StatusInternalServerError, "Server error")
}
