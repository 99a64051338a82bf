package metrics

import (
	"errors"
	"time"

	"magazine-catalog/internal/domain/entity"
)

// Result labels for OperationsTotal.
const (
	ResultSuccess   = "success"
	ResultInvalid   = "invalid"
	ResultImmutable = "immutable"
	ResultNotFound  = "not_found"
	ResultError     = "error"
)

// notFoundErrors lets use case packages register their own not-found sentinels
// without this package importing them.
var notFoundErrors = []error{entity.ErrNotFound}

// RegisterNotFound marks err as a not-found outcome for ClassifyResult.
// Intended to be called from package init.
func RegisterNotFound(err error) {
	notFoundErrors = append(notFoundErrors, err)
}

// ClassifyResult maps an operation error to a result label.
func ClassifyResult(err error) string {
	switch {
	case err == nil:
		return ResultSuccess
	case errors.Is(err, entity.ErrValidationFailed):
		return ResultInvalid
	case errors.Is(err, entity.ErrImmutableField):
		return ResultImmutable
	}
	for _, nf := range notFoundErrors {
		if errors.Is(err, nf) {
			return ResultNotFound
		}
	}
	return ResultError
}

// RecordOperation records the outcome of a catalog operation.
func RecordOperation(operation string, err error) {
	OperationsTotal.WithLabelValues(operation, ClassifyResult(err)).Inc()
}

// RecordValidationFailure records a rejected field when err is a ValidationError.
// Other errors are ignored.
func RecordValidationFailure(entityName string, err error) {
	var ve *entity.ValidationError
	if errors.As(err, &ve) {
		ValidationFailuresTotal.WithLabelValues(entityName, ve.Field).Inc()
	}
}

// RecordQueryDuration records how long a relationship query took.
func RecordQueryDuration(query string, duration time.Duration) {
	QueryDuration.WithLabelValues(query).Observe(duration.Seconds())
}

// UpdateAuthorsTotal sets the registered author count.
func UpdateAuthorsTotal(count int) {
	AuthorsTotal.Set(float64(count))
}

// UpdateMagazinesTotal sets the registered magazine count.
func UpdateMagazinesTotal(count int) {
	MagazinesTotal.Set(float64(count))
}

// UpdateArticlesTotal sets the registered article count.
func UpdateArticlesTotal(count int) {
	ArticlesTotal.Set(float64(count))
}
