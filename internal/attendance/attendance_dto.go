package attendance

import (
	"fmt"
	"time"
)

// Wire format for timestamps. The Android client sends zone-less ISO
// times, so responses mirror that rather than RFC 3339.
const timestampLayout = "2006-01-02T15:04:05"

// Accepted inbound layouts, tried in order.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

type CreateAttendanceRequest struct {
	StudentName             string `json:"student_name" binding:"required,max=100"`
	StudentID               string `json:"student_id" binding:"required,max=50"`
	Timestamp               string `json:"timestamp" binding:"required"`
	BluetoothSignalStrength *int   `json:"bluetooth_signal_strength" binding:"omitempty,gte=-100,lte=0"`
	Status                  string `json:"status" binding:"required,oneof=present absent late"`
}

// ParsedTimestamp validates and parses the client-supplied timestamp.
func (r CreateAttendanceRequest) ParsedTimestamp() (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, r.Timestamp); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", r.Timestamp)
}

type AttendanceResponse struct {
	ID                      int64   `json:"id"`
	StudentName             string  `json:"student_name"`
	StudentID               string  `json:"student_id"`
	Timestamp               string  `json:"timestamp"`
	BluetoothSignalStrength *int    `json:"bluetooth_signal_strength"`
	Status                  string  `json:"status"`
	CreatedAt               string  `json:"created_at"`
	UpdatedAt               *string `json:"updated_at"`
}

type ListAttendanceResponse struct {
	Total   int64                `json:"total"`
	Records []AttendanceResponse `json:"records"`
}
