package attendance

import (
	"time"
)

const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusLate    = "late"
)

// AttendanceRecord is one attendance observation captured by the mobile
// app over Bluetooth. A student may have any number of records; duplicate
// (student_id, timestamp) submissions are stored as distinct rows.
type AttendanceRecord struct {
	ID                      int64      `gorm:"column:id;primaryKey;autoIncrement"`
	StudentName             string     `gorm:"column:student_name;type:varchar(100);not null"`
	StudentID               string     `gorm:"column:student_id;type:varchar(50);not null;index"`
	Timestamp               time.Time  `gorm:"column:timestamp;type:timestamp;not null;index"`
	BluetoothSignalStrength *int       `gorm:"column:bluetooth_signal_strength"`
	Status                  string     `gorm:"column:status;type:varchar(20);not null;default:present"`
	CreatedAt               time.Time  `gorm:"column:created_at;type:timestamptz;not null"`
	// Reserved for a future update operation; stays NULL until one exists.
	UpdatedAt *time.Time `gorm:"column:updated_at;type:timestamptz;autoUpdateTime:false"`
}

func (AttendanceRecord) TableName() string {
	return "attendance_records"
}
