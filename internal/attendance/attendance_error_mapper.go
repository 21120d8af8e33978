package attendance

import (
	"errors"
	"fmt"
	"net/http"

	"bluscan-backend/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func recordNotFound(id int64) *apperror.AppError {
	return apperror.NotFound(fmt.Sprintf("Attendance record with ID %d not found", id))
}

// mapRepositoryError translates a store failure into a generic AppError
// carrying the given user-facing message. Postgres detail is logged but
// never leaks to the caller.
func mapRepositoryError(err error, message string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.New(apperror.CodeNotFound, "Attendance record not found", http.StatusNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		zap.L().Error("postgres error",
			zap.String("code", pgErr.Code),
			zap.String("constraint", pgErr.ConstraintName),
			zap.String("detail", pgErr.Detail),
		)
	}

	return apperror.Wrap(err, apperror.CodeInternalError, message, http.StatusInternalServerError)
}
