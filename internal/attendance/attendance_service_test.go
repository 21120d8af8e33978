package attendance

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"bluscan-backend/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	createFn     func(ctx context.Context, rec *AttendanceRecord) error
	findAllFn    func(ctx context.Context, skip, limit int, studentID string) ([]AttendanceRecord, error)
	countFn      func(ctx context.Context, studentID string) (int64, error)
	findByIDFn   func(ctx context.Context, id int64) (*AttendanceRecord, error)
	deleteByIDFn func(ctx context.Context, id int64) (bool, error)
}

func (f *fakeRepo) Create(ctx context.Context, rec *AttendanceRecord) error {
	return f.createFn(ctx, rec)
}
func (f *fakeRepo) FindAll(ctx context.Context, skip, limit int, studentID string) ([]AttendanceRecord, error) {
	return f.findAllFn(ctx, skip, limit, studentID)
}
func (f *fakeRepo) Count(ctx context.Context, studentID string) (int64, error) {
	return f.countFn(ctx, studentID)
}
func (f *fakeRepo) FindByID(ctx context.Context, id int64) (*AttendanceRecord, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) DeleteByID(ctx context.Context, id int64) (bool, error) {
	return f.deleteByIDFn(ctx, id)
}

func validCreateRequest() CreateAttendanceRequest {
	signal := -45
	return CreateAttendanceRequest{
		StudentName:             "John Doe",
		StudentID:               "STU123",
		Timestamp:               "2025-11-08T10:30:00",
		BluetoothSignalStrength: &signal,
		Status:                  StatusPresent,
	}
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	var saved AttendanceRecord
	repo := &fakeRepo{}
	repo.createFn = func(ctx context.Context, rec *AttendanceRecord) error {
		// The store assigns id and created_at on insert.
		rec.ID = 1
		rec.CreatedAt = time.Date(2025, 11, 8, 10, 30, 5, 0, time.UTC)
		saved = *rec
		return nil
	}

	svc := NewService(repo)
	resp, err := svc.Create(ctx, validCreateRequest())

	assert.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "John Doe", resp.StudentName)
	assert.Equal(t, "STU123", resp.StudentID)
	assert.Equal(t, "2025-11-08T10:30:00", resp.Timestamp)
	assert.Equal(t, -45, *resp.BluetoothSignalStrength)
	assert.Equal(t, StatusPresent, resp.Status)
	assert.Equal(t, "2025-11-08T10:30:05", resp.CreatedAt)
	assert.Nil(t, resp.UpdatedAt)

	// Fields are copied verbatim; id is never caller-computed.
	assert.Equal(t, "STU123", saved.StudentID)
	assert.Equal(t, time.Date(2025, 11, 8, 10, 30, 0, 0, time.UTC), saved.Timestamp)
	assert.Nil(t, saved.UpdatedAt)
}

func TestService_Create_InvalidTimestamp(t *testing.T) {
	created := false
	repo := &fakeRepo{}
	repo.createFn = func(ctx context.Context, rec *AttendanceRecord) error {
		created = true
		return nil
	}

	svc := NewService(repo)
	_, err := svc.Create(context.Background(), CreateAttendanceRequest{
		StudentName: "John Doe",
		StudentID:   "STU123",
		Timestamp:   "yesterday at noon",
		Status:      StatusPresent,
	})

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.HTTPStatus)
	assert.False(t, created, "repository must not be reached on validation failure")
}

func TestService_Create_StoreFailure(t *testing.T) {
	repo := &fakeRepo{}
	repo.createFn = func(ctx context.Context, rec *AttendanceRecord) error {
		return errors.New("connection reset by peer")
	}

	svc := NewService(repo)
	_, err := svc.Create(context.Background(), validCreateRequest())

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPStatus)
	assert.Equal(t, "Failed to store attendance record", appErr.Message)
}

func TestService_List(t *testing.T) {
	repo := &fakeRepo{}

	var gotSkip, gotLimit int
	var gotStudentID string
	repo.findAllFn = func(ctx context.Context, skip, limit int, studentID string) ([]AttendanceRecord, error) {
		gotSkip, gotLimit, gotStudentID = skip, limit, studentID
		return []AttendanceRecord{
			{ID: 2, StudentID: studentID, Timestamp: time.Date(2025, 11, 8, 11, 0, 0, 0, time.UTC)},
			{ID: 1, StudentID: studentID, Timestamp: time.Date(2025, 11, 8, 10, 0, 0, 0, time.UTC)},
		}, nil
	}
	repo.countFn = func(ctx context.Context, studentID string) (int64, error) {
		return 7, nil
	}

	svc := NewService(repo)
	resp, err := svc.List(context.Background(), 3, 2, "STU123")

	assert.NoError(t, err)
	assert.Equal(t, 3, gotSkip)
	assert.Equal(t, 2, gotLimit)
	assert.Equal(t, "STU123", gotStudentID)
	// Total reflects every matching row, not just this page.
	assert.Equal(t, int64(7), resp.Total)
	assert.Len(t, resp.Records, 2)
	assert.Equal(t, int64(2), resp.Records[0].ID)
}

func TestService_GetByID_NotFound(t *testing.T) {
	repo := &fakeRepo{}
	repo.findByIDFn = func(ctx context.Context, id int64) (*AttendanceRecord, error) {
		return nil, nil
	}

	svc := NewService(repo)
	_, err := svc.GetByID(context.Background(), 42)

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPStatus)
	assert.Equal(t, "Attendance record with ID 42 not found", appErr.Message)
}

func TestService_Delete(t *testing.T) {
	existing := map[int64]bool{5: true}
	repo := &fakeRepo{}
	repo.deleteByIDFn = func(ctx context.Context, id int64) (bool, error) {
		if existing[id] {
			delete(existing, id)
			return true, nil
		}
		return false, nil
	}

	svc := NewService(repo)

	assert.NoError(t, svc.Delete(context.Background(), 5))

	// Second delete of the same id reports not found, store unchanged.
	err := svc.Delete(context.Background(), 5)
	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPStatus)
}

func TestService_ConcurrentCreates(t *testing.T) {
	var seq atomic.Int64
	var mu sync.Mutex
	rows := make([]AttendanceRecord, 0, 50)

	repo := &fakeRepo{}
	repo.createFn = func(ctx context.Context, rec *AttendanceRecord) error {
		rec.ID = seq.Add(1)
		rec.CreatedAt = time.Now().UTC()
		mu.Lock()
		rows = append(rows, *rec)
		mu.Unlock()
		return nil
	}

	svc := NewService(repo)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := validCreateRequest()
			req.StudentID = fmt.Sprintf("STU%03d", i)
			_, err := svc.Create(context.Background(), req)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	assert.Len(t, rows, 50)
	seen := make(map[int64]bool, 50)
	for _, r := range rows {
		assert.False(t, seen[r.ID], "id %d assigned twice", r.ID)
		seen[r.ID] = true
	}
}
