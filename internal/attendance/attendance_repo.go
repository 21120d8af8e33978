package attendance

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, rec *AttendanceRecord) error
	FindAll(ctx context.Context, skip, limit int, studentID string) ([]AttendanceRecord, error)
	Count(ctx context.Context, studentID string) (int64, error)
	// FindByID returns (nil, nil) when no row matches: absence is a
	// result, not an error.
	FindByID(ctx context.Context, id int64) (*AttendanceRecord, error)
	// DeleteByID reports whether a row was actually removed. Deleting a
	// nonexistent id is not an error.
	DeleteByID(ctx context.Context, id int64) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, rec *AttendanceRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *repository) FindAll(ctx context.Context, skip, limit int, studentID string) ([]AttendanceRecord, error) {
	var rows []AttendanceRecord
	q := r.db.WithContext(ctx).Model(&AttendanceRecord{})
	if studentID != "" {
		q = q.Where("student_id = ?", studentID)
	}
	// id DESC keeps the order stable when timestamps collide.
	err := q.Order("timestamp DESC, id DESC").
		Offset(skip).
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (r *repository) Count(ctx context.Context, studentID string) (int64, error) {
	var total int64
	q := r.db.WithContext(ctx).Model(&AttendanceRecord{})
	if studentID != "" {
		q = q.Where("student_id = ?", studentID)
	}
	err := q.Count(&total).Error
	return total, err
}

func (r *repository) FindByID(ctx context.Context, id int64) (*AttendanceRecord, error) {
	var rec AttendanceRecord
	err := r.db.WithContext(ctx).First(&rec, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *repository) DeleteByID(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&AttendanceRecord{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
