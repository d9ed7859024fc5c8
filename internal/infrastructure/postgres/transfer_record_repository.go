package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/fabrica-api/internal/domain/entity"
	"github.com/jhoicas/fabrica-api/internal/domain/repository"
)

var _ repository.TransferRecordRepository = (*TransferRecordRepo)(nil)

// TransferRecordRepo implementación de TransferRecordRepository sobre PostgreSQL.
// Solo INSERT y SELECT: los registros de traslado son inmutables.
type TransferRecordRepo struct {
	q Querier
}

// NewTransferRecordRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransferRecordRepository(q Querier) *TransferRecordRepo {
	return &TransferRecordRepo{q: q}
}

// Create persiste un registro de traslado.
func (r *TransferRecordRepo) Create(record *entity.TransferRecord) error {
	query := `
		INSERT INTO transfer_records (id, product_id, from_department, to_department, qty, transferred_by, transferred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		record.ID, record.ProductID, string(record.FromDepartment), string(record.ToDepartment),
		record.Qty, record.TransferredBy, record.TransferredAt,
	)
	if err != nil {
		return fmt.Errorf("insert transfer record: %w", err)
	}
	return nil
}

// dateRangeClause arma el WHERE por rango de fechas sobre la columna dada.
func dateRangeClause(column string, from, to *time.Time, args []any) (string, []any) {
	clause := ""
	if from != nil {
		args = append(args, *from)
		clause += fmt.Sprintf(" AND %s >= $%d", column, len(args))
	}
	if to != nil {
		args = append(args, *to)
		clause += fmt.Sprintf(" AND %s <= $%d", column, len(args))
	}
	return clause, args
}

// ListByDateRange lista traslados del rango, más recientes primero.
func (r *TransferRecordRepo) ListByDateRange(from, to *time.Time, limit, offset int) ([]*entity.TransferRecord, error) {
	query := `
		SELECT id, product_id, from_department, to_department, qty, transferred_by, transferred_at
		FROM transfer_records WHERE 1=1`
	clause, args := dateRangeClause("transferred_at", from, to, nil)
	query += clause
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY transferred_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transfer records: %w", err)
	}
	defer rows.Close()

	var records []*entity.TransferRecord
	for rows.Next() {
		var rec entity.TransferRecord
		if err := rows.Scan(&rec.ID, &rec.ProductID, &rec.FromDepartment, &rec.ToDepartment,
			&rec.Qty, &rec.TransferredBy, &rec.TransferredAt); err != nil {
			return nil, fmt.Errorf("scan transfer record: %w", err)
		}
		records = append(records, &rec)
	}
	return records, rows.Err()
}

// CountByDateRange cuenta traslados del rango (para paginación de reportes).
func (r *TransferRecordRepo) CountByDateRange(from, to *time.Time) (int, error) {
	query := `SELECT count(*) FROM transfer_records WHERE 1=1`
	clause, args := dateRangeClause("transferred_at", from, to, nil)
	query += clause

	var total int
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count transfer records: %w", err)
	}
	return total, nil
}
