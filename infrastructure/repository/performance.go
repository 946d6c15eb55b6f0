package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/melsayed/sales-analyst-api/infrastructure/database/postgres"
	"github.com/melsayed/sales-analyst-api/internal/domain"
)

const (
	salesSummaryTable  = "sales_summary"
	targetSummaryTable = "target_summary"
)

// trendDimensions whitelists the monthly-trend and year-over-year axes.
var trendDimensions = map[string]string{
	"brand":    "brand",
	"salesman": "salesman",
	"gm":       "gm",
	"manager":  "manager",
	"customer": "customer_name",
	"channel":  "channel",
	"emirate":  "emirate",
}

// ValidTrendDimension reports whether trends can slice by the given
// dimension. The empty string is valid and keeps the company total.
func ValidTrendDimension(dimension string) bool {
	if dimension == "" {
		return true
	}
	_, ok := trendDimensions[dimension]
	return ok
}

type PerformanceRepository interface {
	BrandPerformance(year int) ([]domain.PerformanceRow, error)
	GMPerformance(year int) ([]domain.PerformanceRow, error)
	SalesmanPerformance(year int, gm, brand string) ([]domain.PerformanceRow, error)
	AccountPerformance(year int, salesman, brand string) ([]domain.PerformanceRow, error)
	MonthlyTrend(year int, dimension, value string) ([]domain.TrendPoint, error)
	YearOverYear(dimension, value string) ([]domain.YearlyTotals, error)
}

type performanceRepository struct {
	conn *postgres.Connection
}

func NewPerformanceRepository(conn *postgres.Connection) PerformanceRepository {
	return &performanceRepository{
		conn: conn,
	}
}

// yearPattern matches a month_sort prefix ("2025-01" begins with "2025-").
// target rows carry no year column, only month_sort.
func yearPattern(year int) string {
	return fmt.Sprintf("%d-%%", year)
}

func (r *performanceRepository) BrandPerformance(year int) ([]domain.PerformanceRow, error) {
	query := `
		SELECT
			s.brand,
			s.total_sales,
			s.total_qty,
			s.total_bonus,
			s.transactions,
			s.customers,
			COALESCE(t.total_target, 0) AS target
		FROM (
			SELECT
				brand,
				COALESCE(SUM(total_amount), 0) AS total_sales,
				COALESCE(SUM(total_qty), 0) AS total_qty,
				COALESCE(SUM(total_bonus), 0) AS total_bonus,
				COALESCE(SUM(transaction_count), 0) AS transactions,
				COUNT(DISTINCT customer_name) AS customers
			FROM sales_summary
			WHERE year = $1
			GROUP BY brand
		) s
		LEFT JOIN (
			SELECT brand, SUM(total_target) AS total_target
			FROM target_summary
			WHERE month_sort LIKE $2
			GROUP BY brand
		) t ON t.brand = s.brand
		ORDER BY s.total_sales DESC`

	rows, err := r.conn.Query(query, year, yearPattern(year))
	if err != nil {
		return nil, fmt.Errorf("querying brand performance: %w", err)
	}
	defer rows.Close()

	var performance []domain.PerformanceRow
	for rows.Next() {
		var row domain.PerformanceRow
		if err := rows.Scan(
			&row.Brand,
			&row.Sales,
			&row.Quantity,
			&row.BonusQty,
			&row.Transactions,
			&row.Customers,
			&row.Target,
		); err != nil {
			return nil, fmt.Errorf("scanning brand performance row: %w", err)
		}
		performance = append(performance, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating brand performance rows: %w", err)
	}

	return performance, nil
}

func (r *performanceRepository) GMPerformance(year int) ([]domain.PerformanceRow, error) {
	query := `
		SELECT
			s.gm,
			s.total_sales,
			s.total_qty,
			s.transactions,
			s.brands,
			s.customers,
			COALESCE(t.total_target, 0) AS target
		FROM (
			SELECT
				COALESCE(gm, 'N/A') AS gm,
				COALESCE(SUM(total_amount), 0) AS total_sales,
				COALESCE(SUM(total_qty), 0) AS total_qty,
				COALESCE(SUM(transaction_count), 0) AS transactions,
				COUNT(DISTINCT brand) AS brands,
				COUNT(DISTINCT customer_name) AS customers
			FROM sales_summary
			WHERE year = $1
			GROUP BY COALESCE(gm, 'N/A')
		) s
		LEFT JOIN (
			SELECT COALESCE(gm, 'N/A') AS gm, SUM(total_target) AS total_target
			FROM target_summary
			WHERE month_sort LIKE $2
			GROUP BY COALESCE(gm, 'N/A')
		) t ON t.gm = s.gm
		ORDER BY s.total_sales DESC`

	rows, err := r.conn.Query(query, year, yearPattern(year))
	if err != nil {
		return nil, fmt.Errorf("querying gm performance: %w", err)
	}
	defer rows.Close()

	var performance []domain.PerformanceRow
	for rows.Next() {
		var row domain.PerformanceRow
		if err := rows.Scan(
			&row.GM,
			&row.Sales,
			&row.Quantity,
			&row.Transactions,
			&row.Brands,
			&row.Customers,
			&row.Target,
		); err != nil {
			return nil, fmt.Errorf("scanning gm performance row: %w", err)
		}
		performance = append(performance, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating gm performance rows: %w", err)
	}

	return performance, nil
}

// SalesmanPerformance lists every salesman for a year, optionally narrowed to
// one GM line or one brand. The target join keys on salesman and brand so a
// brand-filtered view compares against the brand's own targets.
func (r *performanceRepository) SalesmanPerformance(year int, gm, brand string) ([]domain.PerformanceRow, error) {
	salesQuery := squirrel.
		Select(
			"salesman",
			"MAX(COALESCE(gm, 'N/A')) AS gm",
			"MAX(COALESCE(manager, 'N/A')) AS manager",
			"COALESCE(SUM(total_amount), 0) AS total_sales",
			"COALESCE(SUM(total_qty), 0) AS total_qty",
			"COALESCE(SUM(transaction_count), 0) AS transactions",
			"COUNT(DISTINCT customer_name) AS customers",
		).
		From(salesSummaryTable).
		Where(squirrel.Eq{"year": year}).
		GroupBy("salesman")

	targetQuery := squirrel.
		Select("salesman", "SUM(total_target) AS total_target").
		From(targetSummaryTable).
		Where(squirrel.Like{"month_sort": yearPattern(year)}).
		GroupBy("salesman")

	if gm != "" {
		salesQuery = salesQuery.Where(squirrel.Eq{"gm": gm})
		targetQuery = targetQuery.Where(squirrel.Eq{"gm": gm})
	}
	if brand != "" {
		salesQuery = salesQuery.Where(squirrel.Eq{"brand": brand})
		targetQuery = targetQuery.Where(squirrel.Eq{"brand": brand})
	}

	return r.joinedPerformance(salesQuery, targetQuery, "salesman", func(row *domain.PerformanceRow, scan scanFunc) error {
		return scan(
			&row.Salesman,
			&row.GM,
			&row.Manager,
			&row.Sales,
			&row.Quantity,
			&row.Transactions,
			&row.Customers,
			&row.Target,
		)
	})
}

func (r *performanceRepository) AccountPerformance(year int, salesman, brand string) ([]domain.PerformanceRow, error) {
	salesQuery := squirrel.
		Select(
			"customer_name",
			"MAX(COALESCE(salesman, 'N/A')) AS salesman",
			"MAX(COALESCE(channel, 'N/A')) AS channel",
			"MAX(COALESCE(emirate, 'N/A')) AS emirate",
			"COALESCE(SUM(total_amount), 0) AS total_sales",
			"COALESCE(SUM(total_qty), 0) AS total_qty",
			"COALESCE(SUM(transaction_count), 0) AS transactions",
			"COUNT(DISTINCT brand) AS brands",
		).
		From(salesSummaryTable).
		Where(squirrel.Eq{"year": year}).
		GroupBy("customer_name")

	targetQuery := squirrel.
		Select("customer_name", "SUM(total_target) AS total_target").
		From(targetSummaryTable).
		Where(squirrel.Like{"month_sort": yearPattern(year)}).
		GroupBy("customer_name")

	if salesman != "" {
		salesQuery = salesQuery.Where(squirrel.Eq{"salesman": salesman})
		targetQuery = targetQuery.Where(squirrel.Eq{"salesman": salesman})
	}
	if brand != "" {
		salesQuery = salesQuery.Where(squirrel.Eq{"brand": brand})
		targetQuery = targetQuery.Where(squirrel.Eq{"brand": brand})
	}

	return r.joinedPerformance(salesQuery, targetQuery, "customer_name", func(row *domain.PerformanceRow, scan scanFunc) error {
		return scan(
			&row.CustomerName,
			&row.Salesman,
			&row.Channel,
			&row.Emirate,
			&row.Sales,
			&row.Quantity,
			&row.Transactions,
			&row.Brands,
			&row.Target,
		)
	})
}

type scanFunc func(dest ...any) error

// joinedPerformance composes the sales and target subqueries into one left
// join keyed on the grouping column and scans with the caller's layout.
func (r *performanceRepository) joinedPerformance(
	salesQuery, targetQuery squirrel.SelectBuilder,
	key string,
	scanRow func(row *domain.PerformanceRow, scan scanFunc) error,
) ([]domain.PerformanceRow, error) {
	salesSQL, salesArgs, err := salesQuery.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building sales subquery: %w", err)
	}

	targetSQL, targetArgs, err := targetQuery.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building target subquery: %w", err)
	}

	query := fmt.Sprintf(
		"SELECT s.*, COALESCE(t.total_target, 0) AS target FROM (%s) s LEFT JOIN (%s) t ON t.%s = s.%s ORDER BY s.total_sales DESC",
		salesSQL, targetSQL, key, key,
	)

	// The two subqueries were built with ? placeholders so their argument
	// positions stay contiguous after concatenation.
	query, err = squirrel.Dollar.ReplacePlaceholders(query)
	if err != nil {
		return nil, fmt.Errorf("rewriting placeholders: %w", err)
	}

	args := append(salesArgs, targetArgs...)

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying performance: %w", err)
	}
	defer rows.Close()

	var performance []domain.PerformanceRow
	for rows.Next() {
		var row domain.PerformanceRow
		if err := scanRow(&row, rows.Scan); err != nil {
			return nil, fmt.Errorf("scanning performance row: %w", err)
		}
		performance = append(performance, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating performance rows: %w", err)
	}

	return performance, nil
}

func (r *performanceRepository) MonthlyTrend(year int, dimension, value string) ([]domain.TrendPoint, error) {
	queryBuilder := squirrel.
		Select(
			"month_label",
			"month_sort",
			"COALESCE(SUM(total_amount), 0) AS sales",
			"COALESCE(SUM(total_qty), 0) AS quantity",
		).
		From(salesSummaryTable).
		Where(squirrel.Eq{"year": year}).
		GroupBy("month_label", "month_sort").
		OrderBy("month_sort ASC").
		PlaceholderFormat(squirrel.Dollar)

	if dimension != "" && value != "" {
		column, ok := trendDimensions[dimension]
		if !ok {
			return nil, fmt.Errorf("unknown trend dimension %q", dimension)
		}
		queryBuilder = queryBuilder.Where(squirrel.Eq{column: value})
	}

	trendSQL, trendArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building trend query: %w", err)
	}

	rows, err := r.conn.Query(trendSQL, trendArgs...)
	if err != nil {
		return nil, fmt.Errorf("querying monthly trend: %w", err)
	}
	defer rows.Close()

	var points []domain.TrendPoint
	for rows.Next() {
		var point domain.TrendPoint
		if err := rows.Scan(&point.MonthLabel, &point.MonthSort, &point.Sales, &point.Quantity); err != nil {
			return nil, fmt.Errorf("scanning trend point: %w", err)
		}
		points = append(points, point)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating trend points: %w", err)
	}

	return points, nil
}

func (r *performanceRepository) YearOverYear(dimension, value string) ([]domain.YearlyTotals, error) {
	queryBuilder := squirrel.
		Select(
			"year",
			"COALESCE(SUM(total_amount), 0) AS sales",
			"COALESCE(SUM(total_qty), 0) AS quantity",
			"COUNT(DISTINCT customer_name) AS customers",
		).
		From(salesSummaryTable).
		GroupBy("year").
		OrderBy("year ASC").
		PlaceholderFormat(squirrel.Dollar)

	if dimension != "" && value != "" {
		column, ok := trendDimensions[dimension]
		if !ok {
			return nil, fmt.Errorf("unknown comparison dimension %q", dimension)
		}
		queryBuilder = queryBuilder.Where(squirrel.Eq{column: value})
	}

	yoySQL, yoyArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building year-over-year query: %w", err)
	}

	rows, err := r.conn.Query(yoySQL, yoyArgs...)
	if err != nil {
		return nil, fmt.Errorf("querying year-over-year totals: %w", err)
	}
	defer rows.Close()

	var totals []domain.YearlyTotals
	for rows.Next() {
		var t domain.YearlyTotals
		if err := rows.Scan(&t.Year, &t.Sales, &t.Quantity, &t.Customers); err != nil {
			return nil, fmt.Errorf("scanning yearly totals: %w", err)
		}
		totals = append(totals, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating yearly totals: %w", err)
	}

	return totals, nil
}
