package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	mw "github.com/ernestofreyreg/law-api/internal/api/middleware"
	"github.com/ernestofreyreg/law-api/internal/model"
)

const (
	testUserID     = "22222222-2222-2222-2222-222222222222"
	testCustomerID = "11111111-1111-1111-1111-111111111111"
	testMatterID   = "44444444-4444-4444-4444-444444444444"
)

func testIdentity() *mw.Identity {
	return &mw.Identity{ID: testUserID, Email: "lawyer@firm.test", FirmName: "Cooper & Assoc"}
}

// stubDB satisfies core.DB. QueryRow serves scan funcs from rowQueue in
// order; a nil entry (or an exhausted queue) behaves like no rows.
type stubDB struct {
	rowQueue  []func(dest ...any) error
	rowCalls  int
	queryRows *stubRows
	queryErr  error
	execTag   pgconn.CommandTag
	execErr   error
	execArgs  [][]any
}

func (s *stubDB) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	s.execArgs = append(s.execArgs, arguments)
	return s.execTag, s.execErr
}

func (s *stubDB) Query(ctx context.Context, sql string, arguments ...any) (pgx.Rows, error) {
	if s.queryErr != nil {
		return nil, s.queryErr
	}
	if s.queryRows == nil {
		return &stubRows{}, nil
	}
	return s.queryRows, nil
}

func (s *stubDB) QueryRow(ctx context.Context, sql string, arguments ...any) pgx.Row {
	var scan func(dest ...any) error
	if s.rowCalls < len(s.rowQueue) {
		scan = s.rowQueue[s.rowCalls]
	}
	s.rowCalls++
	return stubRow{scanFunc: scan}
}

type stubRow struct {
	scanFunc func(dest ...any) error
}

func (r stubRow) Scan(dest ...any) error {
	if r.scanFunc == nil {
		return pgx.ErrNoRows
	}
	return r.scanFunc(dest...)
}

type stubRows struct {
	scanFuncs []func(dest ...any) error
	idx       int
}

func (r *stubRows) Next() bool {
	if r.idx >= len(r.scanFuncs) {
		return false
	}
	r.idx++
	return true
}

func (r *stubRows) Scan(dest ...any) error { return r.scanFuncs[r.idx-1](dest...) }

func (r *stubRows) Close()                                       {}
func (r *stubRows) Err() error                                   { return nil }
func (r *stubRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *stubRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *stubRows) Values() ([]any, error)                       { return nil, nil }
func (r *stubRows) RawValues() [][]byte                          { return nil }
func (r *stubRows) Conn() *pgx.Conn                              { return nil }

// ---------- Row builders ----------

func customerScan(c model.Customer) func(dest ...any) error {
	return func(dest ...any) error {
		*(dest[0].(*string)) = c.ID
		*(dest[1].(*string)) = c.UserID
		*(dest[2].(*string)) = c.Name
		*(dest[3].(*string)) = c.PhoneNumber
		*(dest[4].(**string)) = c.Email
		*(dest[5].(**string)) = c.Address
		*(dest[6].(**string)) = c.Notes
		*(dest[7].(*time.Time)) = c.CreatedAt
		*(dest[8].(*time.Time)) = c.UpdatedAt
		return nil
	}
}

func matterScan(m model.Matter) func(dest ...any) error {
	return func(dest ...any) error {
		*(dest[0].(*string)) = m.ID
		*(dest[1].(*string)) = m.CustomerID
		*(dest[2].(*string)) = m.Name
		*(dest[3].(*string)) = m.Description
		*(dest[4].(*string)) = m.Status
		*(dest[5].(*time.Time)) = m.OpenDate
		*(dest[6].(**time.Time)) = m.CloseDate
		*(dest[7].(*string)) = m.PracticeArea
		*(dest[8].(*time.Time)) = m.CreatedAt
		*(dest[9].(*time.Time)) = m.UpdatedAt
		return nil
	}
}

func ownedCustomer() model.Customer {
	now := time.Now().Truncate(time.Microsecond)
	return model.Customer{
		ID:          testCustomerID,
		UserID:      testUserID,
		Name:        "Jane Cooper",
		PhoneNumber: "555-0100",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func existingMatter() model.Matter {
	now := time.Now().Truncate(time.Microsecond)
	return model.Matter{
		ID:           testMatterID,
		CustomerID:   testCustomerID,
		Name:         "Estate planning",
		Description:  "Will and trust work",
		Status:       model.MatterStatusOpen,
		OpenDate:     now,
		PracticeArea: "Estate",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// ---------- Request helpers ----------

func authedRequest(method, target, body string) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	return r.WithContext(mw.WithIdentity(r.Context(), testIdentity()))
}

func withURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	decodeBody(t, w, &body)
	return body.Error
}

type violationList struct {
	Errors []struct {
		Message string `json:"message"`
		Field   string `json:"field"`
	} `json:"errors"`
}
