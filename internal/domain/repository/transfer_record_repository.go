package repository

import (
	"time"

	"github.com/jhoicas/fabrica-api/internal/domain/entity"
)

// TransferRecordRepository define el puerto de persistencia para los
// registros de traslado. Solo inserción y consulta: los registros son
// inmutables.
type TransferRecordRepository interface {
	Create(record *entity.TransferRecord) error
	ListByDateRange(from, to *time.Time, limit, offset int) ([]*entity.TransferRecord, error)
	CountByDateRange(from, to *time.Time) (int, error)
}
