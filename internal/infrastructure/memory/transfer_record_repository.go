package memory

import (
	"sort"
	"time"

	"github.com/jhoicas/fabrica-api/internal/domain/entity"
	"github.com/jhoicas/fabrica-api/internal/domain/repository"
)

var _ repository.TransferRecordRepository = (*TransferRecordRepo)(nil)

// TransferRecordRepo implementación en memoria de TransferRecordRepository.
type TransferRecordRepo struct {
	store *Store
}

// NewTransferRecordRepository construye el adaptador sobre el Store dado.
func NewTransferRecordRepository(store *Store) *TransferRecordRepo {
	return &TransferRecordRepo{store: store}
}

func (r *TransferRecordRepo) Create(record *entity.TransferRecord) error {
	c := *record
	r.store.transfers = append(r.store.transfers, &c)
	return nil
}

func inRange(t time.Time, from, to *time.Time) bool {
	if from != nil && t.Before(*from) {
		return false
	}
	if to != nil && t.After(*to) {
		return false
	}
	return true
}

func (r *TransferRecordRepo) ListByDateRange(from, to *time.Time, limit, offset int) ([]*entity.TransferRecord, error) {
	var records []*entity.TransferRecord
	for _, rec := range r.store.transfers {
		if inRange(rec.TransferredAt, from, to) {
			c := *rec
			records = append(records, &c)
		}
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].TransferredAt.After(records[j].TransferredAt)
	})
	return paginate(records, limit, offset), nil
}

func (r *TransferRecordRepo) CountByDateRange(from, to *time.Time) (int, error) {
	total := 0
	for _, rec := range r.store.transfers {
		if inRange(rec.TransferredAt, from, to) {
			total++
		}
	}
	return total, nil
}
