package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barlev-tours/schedule-board/internal/domain"
	"github.com/barlev-tours/schedule-board/internal/service"
	"github.com/barlev-tours/schedule-board/internal/teable"
)

// mockStore is a hand-written test double for service.Store.
// Each method is a function field — set only the ones your test needs.
type mockStore struct {
	listRecords   func(ctx context.Context, tableID string, opts teable.ListOptions) (teable.Page, error)
	listAll       func(ctx context.Context, tableID string) ([]domain.Record, error)
	createRecord  func(ctx context.Context, tableID string, fields map[string]any) (domain.Record, error)
	updateRecord  func(ctx context.Context, tableID, recordID string, fields map[string]any) (domain.Record, error)
	deleteRecord  func(ctx context.Context, tableID, recordID string) error
	deleteRecords func(ctx context.Context, tableID string, recordIDs []string) error
}

func (m *mockStore) ListRecords(ctx context.Context, tableID string, opts teable.ListOptions) (teable.Page, error) {
	return m.listRecords(ctx, tableID, opts)
}
func (m *mockStore) ListAll(ctx context.Context, tableID string) ([]domain.Record, error) {
	return m.listAll(ctx, tableID)
}
func (m *mockStore) CreateRecord(ctx context.Context, tableID string, fields map[string]any) (domain.Record, error) {
	return m.createRecord(ctx, tableID, fields)
}
func (m *mockStore) UpdateRecord(ctx context.Context, tableID, recordID string, fields map[string]any) (domain.Record, error) {
	return m.updateRecord(ctx, tableID, recordID, fields)
}
func (m *mockStore) DeleteRecord(ctx context.Context, tableID, recordID string) error {
	return m.deleteRecord(ctx, tableID, recordID)
}
func (m *mockStore) DeleteRecords(ctx context.Context, tableID string, recordIDs []string) error {
	return m.deleteRecords(ctx, tableID, recordIDs)
}

// compile-time check: mockStore must satisfy service.Store.
var _ service.Store = (*mockStore)(nil)

const schedTable = "tblSched"

func newScheduleService(store *mockStore) *service.ScheduleService {
	return service.NewScheduleService(store, schedTable, testFieldMap())
}

// ---- List ------------------------------------------------------------------

func TestScheduleService_List_FetchesAllThenFilters(t *testing.T) {
	store := &mockStore{
		listAll: func(_ context.Context, tableID string) ([]domain.Record, error) {
			require.Equal(t, schedTable, tableID)
			return []domain.Record{
				rec("recA", map[string]any{"fldDate": "2026-01-19T10:00:00Z"}),
				rec("recB", map[string]any{"fldDate": "2026-02-01T10:00:00Z"}),
			}, nil
		},
	}
	svc := newScheduleService(store)

	got, err := svc.List(context.Background(), service.ScheduleQuery{Day: "2026-01-19"})

	require.NoError(t, err)
	assert.Equal(t, []string{"recA"}, ids(got))
}

func TestScheduleService_List_StoreError(t *testing.T) {
	storeErr := errors.New("upstream down")
	store := &mockStore{
		listAll: func(_ context.Context, _ string) ([]domain.Record, error) { return nil, storeErr },
	}
	svc := newScheduleService(store)

	_, err := svc.List(context.Background(), service.ScheduleQuery{AllDates: true})
	assert.ErrorIs(t, err, storeErr)
}

// ---- Create ----------------------------------------------------------------

func TestScheduleService_Create_RemapsSemanticFields(t *testing.T) {
	var gotFields map[string]any
	store := &mockStore{
		createRecord: func(_ context.Context, tableID string, fields map[string]any) (domain.Record, error) {
			require.Equal(t, schedTable, tableID)
			gotFields = fields
			return domain.Record{ID: "recNew", Fields: fields}, nil
		},
	}
	svc := newScheduleService(store)

	created, err := svc.Create(context.Background(), service.CreateInput{
		Date:              "2026-01-19",
		Customer:          "Acme Tours",
		Driver:            "Yossi",
		VehicleType:       "Minibus",
		VehicleNumber:     "12-345-67",
		Description:       "Airport run",
		CustomerPriceExcl: "100",
		CustomerPriceIncl: "118",
		DriverPriceExcl:   "",
		DriverPriceIncl:   "not a number",
	})

	require.NoError(t, err)
	assert.Equal(t, "recNew", created.ID)
	assert.Equal(t, "2026-01-19", gotFields["fldDate"])
	assert.Equal(t, "Acme Tours", gotFields["fldCustomer"])
	assert.Equal(t, "Yossi", gotFields["fldDriver"])
	assert.Equal(t, 100.0, gotFields["fldCustExcl"])
	assert.Equal(t, 118.0, gotFields["fldCustIncl"])
	// Empty and unparsable price text is stored as 0, as the form always has.
	assert.Equal(t, 0.0, gotFields["fldDrvExcl"])
	assert.Equal(t, 0.0, gotFields["fldDrvIncl"])
}

func TestScheduleService_Create_MissingDate(t *testing.T) {
	svc := newScheduleService(&mockStore{})

	_, err := svc.Create(context.Background(), service.CreateInput{Customer: "Acme"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestScheduleService_Create_MalformedDate(t *testing.T) {
	svc := newScheduleService(&mockStore{})

	_, err := svc.Create(context.Background(), service.CreateInput{Date: "19/01/2026"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// ---- Update ----------------------------------------------------------------

func TestScheduleService_Update_PrunesEmptyAndExpandsDate(t *testing.T) {
	var gotFields map[string]any
	store := &mockStore{
		updateRecord: func(_ context.Context, _, recordID string, fields map[string]any) (domain.Record, error) {
			require.Equal(t, "recA1", recordID)
			gotFields = fields
			return domain.Record{ID: recordID, Fields: fields}, nil
		},
	}
	svc := newScheduleService(store)

	_, err := svc.Update(context.Background(), "recA1", map[string]any{
		"date":        "2026-01-19",
		"customer":    "Acme",
		"description": "", // untouched dialog field — must not blank the stored value
		"driverNotes": nil,
	})

	require.NoError(t, err)
	assert.Equal(t, "2026-01-19T00:00:00.000Z", gotFields["fldDate"])
	assert.Equal(t, "Acme", gotFields["fldCustomer"])
	assert.NotContains(t, gotFields, "fldDescription")
	assert.Len(t, gotFields, 2)
}

// A nil or empty value for an optional role the deployment never bound
// (driverNotes here) is dropped like any other untouched field; only a
// non-empty value for an unresolvable role fails the patch.
func TestScheduleService_Update_UnboundOptionalRoleIsDropped(t *testing.T) {
	var gotFields map[string]any
	store := &mockStore{
		updateRecord: func(_ context.Context, _, _ string, fields map[string]any) (domain.Record, error) {
			gotFields = fields
			return domain.Record{ID: "recA1", Fields: fields}, nil
		},
	}
	svc := newScheduleService(store)

	_, err := svc.Update(context.Background(), "recA1", map[string]any{
		"customer":    "Acme",
		"driverNotes": "",
		"sent":        nil,
	})

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"fldCustomer": "Acme"}, gotFields)

	_, err = svc.Update(context.Background(), "recA1", map[string]any{
		"customer":    "Acme",
		"driverNotes": "call before pickup",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestScheduleService_Update_UnknownRole(t *testing.T) {
	svc := newScheduleService(&mockStore{})

	_, err := svc.Update(context.Background(), "recA1", map[string]any{"colour": "red"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestScheduleService_Update_MalformedID(t *testing.T) {
	svc := newScheduleService(&mockStore{})

	_, err := svc.Update(context.Background(), "tblNope", map[string]any{"customer": "Acme"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestScheduleService_Update_AllFieldsPrunedIsValidationError(t *testing.T) {
	svc := newScheduleService(&mockStore{})

	_, err := svc.Update(context.Background(), "recA1", map[string]any{"customer": ""})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// ---- Delete ----------------------------------------------------------------

func TestScheduleService_Delete(t *testing.T) {
	var deleted string
	store := &mockStore{
		deleteRecord: func(_ context.Context, _, recordID string) error {
			deleted = recordID
			return nil
		},
	}
	svc := newScheduleService(store)

	require.NoError(t, svc.Delete(context.Background(), "recA1"))
	assert.Equal(t, "recA1", deleted)

	assert.ErrorIs(t, svc.Delete(context.Background(), "nonsense"), domain.ErrValidation)
}

func TestScheduleService_DeleteMany(t *testing.T) {
	var deleted []string
	store := &mockStore{
		deleteRecords: func(_ context.Context, _ string, recordIDs []string) error {
			deleted = recordIDs
			return nil
		},
	}
	svc := newScheduleService(store)

	require.NoError(t, svc.DeleteMany(context.Background(), []string{"recA", "recB"}))
	assert.Equal(t, []string{"recA", "recB"}, deleted)

	assert.ErrorIs(t, svc.DeleteMany(context.Background(), nil), domain.ErrValidation)
	assert.ErrorIs(t, svc.DeleteMany(context.Background(), []string{"recA", "oops"}), domain.ErrValidation)
}

// ---- ClearAttachment -------------------------------------------------------

func TestScheduleService_ClearAttachment_NullsTheField(t *testing.T) {
	var gotFields map[string]any
	store := &mockStore{
		updateRecord: func(_ context.Context, _, recordID string, fields map[string]any) (domain.Record, error) {
			require.Equal(t, "recA1", recordID)
			gotFields = fields
			return domain.Record{ID: recordID}, nil
		},
	}
	svc := newScheduleService(store)

	require.NoError(t, svc.ClearAttachment(context.Background(), "recA1"))
	require.Contains(t, gotFields, "fldFile")
	assert.Nil(t, gotFields["fldFile"])
}

func TestScheduleService_ClearAttachment_RejectsMalformedID(t *testing.T) {
	svc := newScheduleService(&mockStore{})

	err := svc.ClearAttachment(context.Background(), `recA1"; DROP`)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestScheduleService_ClearAttachment_NoAttachmentFieldConfigured(t *testing.T) {
	fm := testFieldMap()
	fm.Attachment = ""
	svc := service.NewScheduleService(&mockStore{}, schedTable, fm)

	err := svc.ClearAttachment(context.Background(), "recA1")
	assert.ErrorIs(t, err, domain.ErrValidation)
}
