package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/melsayed/sales-analyst-api/infrastructure/database/postgres"
	"github.com/melsayed/sales-analyst-api/internal/domain"
)

// coverageDimensions whitelists what "coverage" can count.
var coverageDimensions = map[string]string{
	"customer": "customer_name",
	"channel":  "channel",
	"emirate":  "emirate",
	"group":    "account_group",
	"salesman": "salesman",
}

// ValidCoverageDimension reports whether coverage can count the given
// dimension. The empty string is valid and counts customers.
func ValidCoverageDimension(dimension string) bool {
	if dimension == "" {
		return true
	}
	_, ok := coverageDimensions[dimension]
	return ok
}

type CoverageRepository interface {
	WindowStats(level domain.CoverageLevel, entity string, masked bool, since time.Time, dimension string) (*domain.CoverageWindow, error)
	LostAccounts(level domain.CoverageLevel, entity string, masked bool, recentSince, historicalSince time.Time, limit uint64) ([]domain.LostAccount, error)
	AccountReach(level domain.CoverageLevel, entity string, masked bool, since time.Time) (int, float64, error)
	SharedAccounts(brandA, brandB string, since time.Time) (int, error)
	Movement(level domain.CoverageLevel, entity string, masked bool, recentSince, previousSince time.Time) (*domain.CoverageMovement, error)
}

type coverageRepository struct {
	conn *postgres.Connection
}

func NewCoverageRepository(conn *postgres.Connection) CoverageRepository {
	return &coverageRepository{
		conn: conn,
	}
}

// withScope narrows a query to the coverage level's entity.
func withScope(builder squirrel.SelectBuilder, level domain.CoverageLevel, entity string, masked bool) squirrel.SelectBuilder {
	switch level {
	case domain.CoverageBrand:
		return withBrandFilter(builder, domain.BrandFilter{Brand: entity, Masked: masked})
	case domain.CoverageItem:
		return builder.Where(squirrel.Eq{"item_code": entity})
	default:
		return builder
	}
}

// scopeCondition is the raw-SQL sibling of withScope for queries built by
// hand. It appends one positional argument when the level is scoped.
func scopeCondition(level domain.CoverageLevel, entity string, masked bool, position int) (string, []interface{}) {
	switch level {
	case domain.CoverageBrand:
		if masked {
			return fmt.Sprintf(" AND brand_mask ILIKE $%d", position), []interface{}{"%" + entity + "%"}
		}
		return fmt.Sprintf(" AND brand = $%d", position), []interface{}{entity}
	case domain.CoverageItem:
		return fmt.Sprintf(" AND item_code = $%d", position), []interface{}{entity}
	default:
		return "", nil
	}
}

func (r *coverageRepository) WindowStats(
	level domain.CoverageLevel,
	entity string,
	masked bool,
	since time.Time,
	dimension string,
) (*domain.CoverageWindow, error) {
	column, ok := coverageDimensions[dimension]
	if !ok {
		column = coverageDimensions["customer"]
	}

	queryBuilder := squirrel.
		Select(
			fmt.Sprintf("COUNT(DISTINCT %s) AS coverage_count", column),
			"COALESCE(SUM(amount), 0) AS total_sales",
			"COUNT(*) AS transaction_count",
		).
		From(salesTable).
		Where(squirrel.GtOrEq{"invoice_date": since}).
		PlaceholderFormat(squirrel.Dollar)

	queryBuilder = withScope(queryBuilder, level, entity, masked)

	windowSQL, windowArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building coverage query: %w", err)
	}

	var window domain.CoverageWindow
	err = r.conn.QueryRow(windowSQL, windowArgs...).Scan(&window.Count, &window.TotalSales, &window.Transactions)
	if err != nil {
		return nil, fmt.Errorf("querying coverage window: %w", err)
	}

	return &window, nil
}

// LostAccounts lists accounts that bought within the historical window but
// not since the recent cutoff, biggest historical buyers first.
func (r *coverageRepository) LostAccounts(
	level domain.CoverageLevel,
	entity string,
	masked bool,
	recentSince, historicalSince time.Time,
	limit uint64,
) ([]domain.LostAccount, error) {
	queryBuilder := squirrel.
		Select(
			"customer_name",
			"MAX(invoice_date) AS last_purchase",
			"COALESCE(SUM(amount), 0) AS historical_sales",
			"COALESCE(SUM(regular_qty), 0) AS historical_qty",
			"COUNT(*) AS historical_transactions",
			"COUNT(DISTINCT item_code) AS items_bought",
		).
		From(salesTable).
		Where(squirrel.GtOrEq{"invoice_date": historicalSince}).
		GroupBy("customer_name").
		Having(squirrel.Lt{"MAX(invoice_date)": recentSince}).
		OrderBy("historical_sales DESC").
		PlaceholderFormat(squirrel.Dollar)

	queryBuilder = withScope(queryBuilder, level, entity, masked)

	if limit > 0 {
		queryBuilder = queryBuilder.Limit(limit)
	}

	lostSQL, lostArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building lost accounts query: %w", err)
	}

	rows, err := r.conn.Query(lostSQL, lostArgs...)
	if err != nil {
		return nil, fmt.Errorf("querying lost accounts: %w", err)
	}
	defer rows.Close()

	var accounts []domain.LostAccount
	for rows.Next() {
		var account domain.LostAccount
		if err := rows.Scan(
			&account.Name,
			&account.LastPurchaseDate,
			&account.HistoricalSales,
			&account.HistoricalQty,
			&account.HistoricalTransactions,
			&account.ItemsBought,
		); err != nil {
			return nil, fmt.Errorf("scanning lost account: %w", err)
		}
		accounts = append(accounts, account)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating lost accounts: %w", err)
	}

	return accounts, nil
}

func (r *coverageRepository) AccountReach(
	level domain.CoverageLevel,
	entity string,
	masked bool,
	since time.Time,
) (int, float64, error) {
	queryBuilder := squirrel.
		Select(
			"COUNT(DISTINCT customer_name)",
			"COALESCE(SUM(amount), 0)",
		).
		From(salesTable).
		Where(squirrel.GtOrEq{"invoice_date": since}).
		PlaceholderFormat(squirrel.Dollar)

	queryBuilder = withScope(queryBuilder, level, entity, masked)

	reachSQL, reachArgs, err := queryBuilder.ToSql()
	if err != nil {
		return 0, 0, fmt.Errorf("building account reach query: %w", err)
	}

	var count int
	var sales float64
	if err := r.conn.QueryRow(reachSQL, reachArgs...).Scan(&count, &sales); err != nil {
		return 0, 0, fmt.Errorf("querying account reach: %w", err)
	}

	return count, sales, nil
}

func (r *coverageRepository) SharedAccounts(brandA, brandB string, since time.Time) (int, error) {
	query := `
		SELECT COUNT(*) FROM (
			SELECT DISTINCT customer_name FROM sales WHERE invoice_date >= $1 AND brand = $2
			INTERSECT
			SELECT DISTINCT customer_name FROM sales WHERE invoice_date >= $1 AND brand = $3
		) shared`

	var count int
	if err := r.conn.QueryRow(query, since, brandA, brandB).Scan(&count); err != nil {
		return 0, fmt.Errorf("querying shared accounts: %w", err)
	}

	return count, nil
}

// Movement splits accounts into new (recent period only), lost (previous
// period only) and retained (both). The previous period runs from
// previousSince up to recentSince.
func (r *coverageRepository) Movement(
	level domain.CoverageLevel,
	entity string,
	masked bool,
	recentSince, previousSince time.Time,
) (*domain.CoverageMovement, error) {
	condition, conditionArgs := scopeCondition(level, entity, masked, 3)

	query := fmt.Sprintf(`
		WITH recent AS (
			SELECT DISTINCT customer_name FROM sales
			WHERE invoice_date >= $1%[1]s
		), previous AS (
			SELECT DISTINCT customer_name FROM sales
			WHERE invoice_date >= $2 AND invoice_date < $1%[1]s
		)
		SELECT
			(SELECT COUNT(*) FROM (SELECT customer_name FROM recent EXCEPT SELECT customer_name FROM previous) n),
			(SELECT COUNT(*) FROM (SELECT customer_name FROM previous EXCEPT SELECT customer_name FROM recent) l),
			(SELECT COUNT(*) FROM (SELECT customer_name FROM recent INTERSECT SELECT customer_name FROM previous) k)`,
		condition,
	)

	args := []interface{}{recentSince, previousSince}
	args = append(args, conditionArgs...)

	movement := &domain.CoverageMovement{Entity: entity}
	err := r.conn.QueryRow(query, args...).Scan(&movement.New, &movement.Lost, &movement.Retained)
	if err != nil {
		return nil, fmt.Errorf("querying coverage movement: %w", err)
	}

	return movement, nil
}
