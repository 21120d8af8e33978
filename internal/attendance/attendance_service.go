package attendance

import (
	"context"

	"bluscan-backend/internal/shared/apperror"
	"bluscan-backend/internal/shared/contextutil"

	"go.uber.org/zap"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error)
	List(ctx context.Context, skip, limit int, studentID string) (ListAttendanceResponse, error)
	GetByID(ctx context.Context, id int64) (AttendanceResponse, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error) {
	ts, err := req.ParsedTimestamp()
	if err != nil {
		return AttendanceResponse{}, apperror.Validation([]apperror.FieldError{{
			Field:  "timestamp",
			Reason: "Timestamp must be a valid date-time",
		}})
	}

	// id and created_at are assigned by the store on insert.
	row := &AttendanceRecord{
		StudentName:             req.StudentName,
		StudentID:               req.StudentID,
		Timestamp:               ts,
		BluetoothSignalStrength: req.BluetoothSignalStrength,
		Status:                  req.Status,
	}

	if err := s.repo.Create(ctx, row); err != nil {
		contextutil.GetLogger(ctx, zap.L()).Error("failed to store attendance record",
			zap.String("student_id", req.StudentID), zap.Error(err))
		return AttendanceResponse{}, mapRepositoryError(err, "Failed to store attendance record")
	}

	contextutil.GetLogger(ctx, zap.L()).Info("attendance record stored",
		zap.Int64("id", row.ID),
		zap.String("student_id", row.StudentID),
		zap.String("status", row.Status),
	)
	return mapToResponse(*row), nil
}

func (s *service) List(ctx context.Context, skip, limit int, studentID string) (ListAttendanceResponse, error) {
	rows, err := s.repo.FindAll(ctx, skip, limit, studentID)
	if err != nil {
		return ListAttendanceResponse{}, mapRepositoryError(err, "Failed to retrieve attendance records")
	}

	// Total counts all matching rows, not just this page.
	total, err := s.repo.Count(ctx, studentID)
	if err != nil {
		return ListAttendanceResponse{}, mapRepositoryError(err, "Failed to retrieve attendance records")
	}

	records := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		records[i] = mapToResponse(r)
	}

	contextutil.GetLogger(ctx, zap.L()).Info("attendance records retrieved",
		zap.Int("count", len(records)), zap.Int64("total", total))

	return ListAttendanceResponse{Total: total, Records: records}, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (AttendanceResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return AttendanceResponse{}, mapRepositoryError(err, "Failed to retrieve attendance record")
	}
	if row == nil {
		return AttendanceResponse{}, recordNotFound(id)
	}
	return mapToResponse(*row), nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err, "Failed to delete attendance record")
	}
	if !deleted {
		return recordNotFound(id)
	}
	contextutil.GetLogger(ctx, zap.L()).Info("attendance record deleted", zap.Int64("id", id))
	return nil
}

func mapToResponse(a AttendanceRecord) AttendanceResponse {
	resp := AttendanceResponse{
		ID:                      a.ID,
		StudentName:             a.StudentName,
		StudentID:               a.StudentID,
		Timestamp:               a.Timestamp.Format(timestampLayout),
		BluetoothSignalStrength: a.BluetoothSignalStrength,
		Status:                  a.Status,
		CreatedAt:               a.CreatedAt.Format(timestampLayout),
	}
	if a.UpdatedAt != nil {
		v := a.UpdatedAt.Format(timestampLayout)
		resp.UpdatedAt = &v
	}
	return resp
}
