package repository

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/melsayed/sales-analyst-api/infrastructure/database/postgres"
)

// Rollup definitions the refresh replays. Rebuilding from scratch keeps the
// summaries honest after any reseed without incremental bookkeeping.
const (
	rebuildSalesSummary = `
		INSERT INTO sales_summary (
			year, month_label, month_sort, brand, salesman, manager, gm,
			emirate, channel, customer_name, total_amount, total_qty,
			total_bonus, transaction_count
		)
		SELECT
			year, month_label, month_sort, brand, salesman, manager, gm,
			emirate, channel, customer_name,
			COALESCE(SUM(amount), 0),
			COALESCE(SUM(regular_qty), 0),
			COALESCE(SUM(bonus_qty), 0),
			COUNT(*)
		FROM sales
		GROUP BY year, month_label, month_sort, brand, salesman, manager, gm,
			emirate, channel, customer_name`

	rebuildTargetSummary = `
		INSERT INTO target_summary (
			month_label, month_sort, brand, salesman, manager, gm, emirate,
			channel, customer_name, total_target
		)
		SELECT
			month_label, month_sort, brand, salesman, manager, gm, emirate,
			channel, customer_name,
			COALESCE(SUM(target_amount), 0)
		FROM targets
		GROUP BY month_label, month_sort, brand, salesman, manager, gm,
			emirate, channel, customer_name`
)

type SummaryRepository interface {
	Refresh(ctx context.Context) (salesRows, targetRows int64, err error)
}

type summaryRepository struct {
	conn *postgres.Connection
}

func NewSummaryRepository(conn *postgres.Connection) SummaryRepository {
	return &summaryRepository{
		conn: conn,
	}
}

// Refresh rebuilds both summary tables inside one transaction so readers
// never observe a truncated summary.
func (r *summaryRepository) Refresh(ctx context.Context) (int64, int64, error) {
	var salesRows, targetRows int64

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.Exec("TRUNCATE TABLE sales_summary"); err != nil {
			return fmt.Errorf("truncating sales_summary: %w", err)
		}

		result, err := tx.Exec(rebuildSalesSummary)
		if err != nil {
			return fmt.Errorf("rebuilding sales_summary: %w", err)
		}
		salesRows, _ = result.RowsAffected()

		if _, err := tx.Exec("TRUNCATE TABLE target_summary"); err != nil {
			return fmt.Errorf("truncating target_summary: %w", err)
		}

		result, err = tx.Exec(rebuildTargetSummary)
		if err != nil {
			return fmt.Errorf("rebuilding target_summary: %w", err)
		}
		targetRows, _ = result.RowsAffected()

		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	return salesRows, targetRows, nil
}
