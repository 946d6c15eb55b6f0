package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/melsayed/sales-analyst-api/infrastructure/database/postgres"
	"github.com/melsayed/sales-analyst-api/internal/domain"
)

type SupplyRepository interface {
	OOSCandidates(filter domain.BrandFilter, historicalSince, recentSince time.Time, minHistoricalSales float64) ([]domain.OOSItem, error)
	ItemWindowStats(itemCode string, since time.Time, until *time.Time) (*domain.WindowStats, error)
	ChannelSplit(itemCode string, historicalSince, recentSince time.Time) ([]domain.ChannelStatus, error)
	Stoppages(filter domain.BrandFilter, activeSince, stoppedSince time.Time, minAccounts int) ([]domain.Stoppage, error)
	DailyAverage(itemCode string, since time.Time) (float64, error)
	MonthlySeries(level domain.CoverageLevel, entity string, masked bool, since time.Time) ([]domain.MonthPoint, error)
	ItemMonthlySeries(filter domain.BrandFilter, since time.Time) ([]domain.ItemMonthPoint, error)
	SeasonalCandidates(filter domain.BrandFilter, since time.Time, minSales float64) ([]domain.SeasonalItem, error)
	CustomerLoadings(filter domain.BrandFilter, historicalSince, recentSince time.Time) ([]domain.CustomerLoading, error)
}

type supplyRepository struct {
	conn *postgres.Connection
}

func NewSupplyRepository(conn *postgres.Connection) SupplyRepository {
	return &supplyRepository{
		conn: conn,
	}
}

// brandCondition renders the brand filter for hand-built SQL, appending one
// positional argument when a brand is set.
func brandCondition(filter domain.BrandFilter, position int) (string, []interface{}) {
	if filter.Brand == "" {
		return "", nil
	}
	if filter.Masked {
		return fmt.Sprintf(" AND brand_mask ILIKE $%d", position), []interface{}{"%" + filter.Brand + "%"}
	}
	return fmt.Sprintf(" AND brand = $%d", position), []interface{}{filter.Brand}
}

// OOSCandidates returns items whose sales inside [historicalSince,
// recentSince) cleared the floor, together with their recent-window sales.
// Risk scoring happens in the usecase; this query only splits the windows.
func (r *supplyRepository) OOSCandidates(
	filter domain.BrandFilter,
	historicalSince, recentSince time.Time,
	minHistoricalSales float64,
) ([]domain.OOSItem, error) {
	condition, conditionArgs := brandCondition(filter, 4)

	query := fmt.Sprintf(`
		SELECT
			item_code,
			MAX(item_desc) AS item_desc,
			MAX(COALESCE(brand, '')) AS brand,
			COALESCE(SUM(CASE WHEN invoice_date < $2 THEN amount ELSE 0 END), 0) AS historical_sales,
			COUNT(DISTINCT customer_name) AS affected_accounts,
			COUNT(CASE WHEN invoice_date < $2 THEN 1 END) AS historical_transactions,
			COALESCE(SUM(CASE WHEN invoice_date < $2 THEN regular_qty ELSE 0 END), 0) AS historical_qty,
			COALESCE(SUM(CASE WHEN invoice_date >= $2 THEN amount ELSE 0 END), 0) AS recent_sales,
			MAX(invoice_date) AS last_sale
		FROM sales
		WHERE invoice_date >= $1%s
		GROUP BY item_code
		HAVING COALESCE(SUM(CASE WHEN invoice_date < $2 THEN amount ELSE 0 END), 0) > $3
		ORDER BY historical_sales DESC`,
		condition,
	)

	args := []interface{}{historicalSince, recentSince, minHistoricalSales}
	args = append(args, conditionArgs...)

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying oos candidates: %w", err)
	}
	defer rows.Close()

	var items []domain.OOSItem
	for rows.Next() {
		var item domain.OOSItem
		if err := rows.Scan(
			&item.ItemCode,
			&item.ItemDesc,
			&item.Brand,
			&item.HistoricalSales,
			&item.AffectedAccounts,
			&item.HistoricalTransactions,
			&item.HistoricalQty,
			&item.RecentSales,
			&item.LastSaleDate,
		); err != nil {
			return nil, fmt.Errorf("scanning oos candidate: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating oos candidates: %w", err)
	}

	return items, nil
}

// ItemWindowStats aggregates one item between since and until. A nil until
// leaves the window open-ended.
func (r *supplyRepository) ItemWindowStats(itemCode string, since time.Time, until *time.Time) (*domain.WindowStats, error) {
	queryBuilder := squirrel.
		Select(
			"COALESCE(SUM(amount), 0) AS sales",
			"COALESCE(SUM(regular_qty), 0) AS quantity",
			"COUNT(*) AS transactions",
			"COUNT(DISTINCT customer_name) AS customers",
			"MAX(invoice_date) AS last_sale",
		).
		From(salesTable).
		Where(squirrel.Eq{"item_code": itemCode}).
		Where(squirrel.GtOrEq{"invoice_date": since}).
		PlaceholderFormat(squirrel.Dollar)

	if until != nil {
		queryBuilder = queryBuilder.Where(squirrel.Lt{"invoice_date": *until})
	}

	statsSQL, statsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building window stats query: %w", err)
	}

	var stats domain.WindowStats
	err = r.conn.QueryRow(statsSQL, statsArgs...).Scan(
		&stats.Sales,
		&stats.Quantity,
		&stats.Transactions,
		&stats.Customers,
		&stats.LastSale,
	)
	if err != nil {
		return nil, fmt.Errorf("querying window stats for %s: %w", itemCode, err)
	}

	return &stats, nil
}

func (r *supplyRepository) ChannelSplit(itemCode string, historicalSince, recentSince time.Time) ([]domain.ChannelStatus, error) {
	query := `
		SELECT
			COALESCE(channel, 'N/A') AS channel,
			COALESCE(SUM(CASE WHEN invoice_date >= $3 THEN amount ELSE 0 END), 0) AS recent_sales,
			COALESCE(SUM(CASE WHEN invoice_date < $3 THEN amount ELSE 0 END), 0) AS historical_sales,
			COUNT(DISTINCT CASE WHEN invoice_date >= $3 THEN customer_name END) AS recent_customers,
			COUNT(DISTINCT CASE WHEN invoice_date < $3 THEN customer_name END) AS historical_customers
		FROM sales
		WHERE item_code = $1 AND invoice_date >= $2
		GROUP BY channel
		ORDER BY historical_sales DESC`

	rows, err := r.conn.Query(query, itemCode, historicalSince, recentSince)
	if err != nil {
		return nil, fmt.Errorf("querying channel split for %s: %w", itemCode, err)
	}
	defer rows.Close()

	var channels []domain.ChannelStatus
	for rows.Next() {
		var status domain.ChannelStatus
		if err := rows.Scan(
			&status.Channel,
			&status.RecentSales,
			&status.HistoricalSales,
			&status.RecentCustomers,
			&status.HistoricalCustomers,
		); err != nil {
			return nil, fmt.Errorf("scanning channel status: %w", err)
		}
		channels = append(channels, status)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating channel statuses: %w", err)
	}

	return channels, nil
}

// Stoppages finds items that at least minAccounts accounts were buying during
// the active window and then all stopped before the stopped cutoff.
func (r *supplyRepository) Stoppages(
	filter domain.BrandFilter,
	activeSince, stoppedSince time.Time,
	minAccounts int,
) ([]domain.Stoppage, error) {
	condition, conditionArgs := brandCondition(filter, 4)

	query := fmt.Sprintf(`
		SELECT
			item_code,
			MAX(item_desc) AS item_desc,
			MAX(brand) AS brand,
			COUNT(DISTINCT customer_name) AS stopped_accounts,
			MAX(last_buy) AS most_recent_stop,
			COALESCE(SUM(account_sales), 0) AS lost_sales_potential
		FROM (
			SELECT
				item_code,
				customer_name,
				MAX(item_desc) AS item_desc,
				MAX(COALESCE(brand, '')) AS brand,
				MAX(invoice_date) AS last_buy,
				SUM(amount) AS account_sales
			FROM sales
			WHERE invoice_date >= $1%s
			GROUP BY item_code, customer_name
			HAVING MAX(invoice_date) < $2
		) stopped
		GROUP BY item_code
		HAVING COUNT(DISTINCT customer_name) >= $3
		ORDER BY stopped_accounts DESC, lost_sales_potential DESC`,
		condition,
	)

	args := []interface{}{activeSince, stoppedSince, minAccounts}
	args = append(args, conditionArgs...)

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying stoppages: %w", err)
	}
	defer rows.Close()

	var stoppages []domain.Stoppage
	for rows.Next() {
		var stoppage domain.Stoppage
		if err := rows.Scan(
			&stoppage.ItemCode,
			&stoppage.ItemDesc,
			&stoppage.Brand,
			&stoppage.StoppedAccounts,
			&stoppage.MostRecentStop,
			&stoppage.LostSalesPotential,
		); err != nil {
			return nil, fmt.Errorf("scanning stoppage: %w", err)
		}
		stoppages = append(stoppages, stoppage)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating stoppages: %w", err)
	}

	return stoppages, nil
}

// DailyAverage is the mean of per-day sales totals since the cutoff, used to
// price an out-of-stock gap.
func (r *supplyRepository) DailyAverage(itemCode string, since time.Time) (float64, error) {
	query := `
		SELECT COALESCE(AVG(day_total), 0) FROM (
			SELECT SUM(amount) AS day_total
			FROM sales
			WHERE item_code = $1 AND invoice_date >= $2
			GROUP BY invoice_date
		) daily`

	var avg float64
	if err := r.conn.QueryRow(query, itemCode, since).Scan(&avg); err != nil {
		return 0, fmt.Errorf("querying daily average for %s: %w", itemCode, err)
	}

	return avg, nil
}

func (r *supplyRepository) MonthlySeries(
	level domain.CoverageLevel,
	entity string,
	masked bool,
	since time.Time,
) ([]domain.MonthPoint, error) {
	queryBuilder := squirrel.
		Select(
			"month_sort",
			"COALESCE(SUM(amount), 0) AS sales",
			"COALESCE(SUM(regular_qty), 0) AS quantity",
			"COUNT(DISTINCT customer_name) AS customers",
		).
		From(salesTable).
		Where(squirrel.GtOrEq{"invoice_date": since}).
		GroupBy("month_sort").
		OrderBy("month_sort ASC").
		PlaceholderFormat(squirrel.Dollar)

	queryBuilder = withScope(queryBuilder, level, entity, masked)

	seriesSQL, seriesArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building monthly series query: %w", err)
	}

	rows, err := r.conn.Query(seriesSQL, seriesArgs...)
	if err != nil {
		return nil, fmt.Errorf("querying monthly series: %w", err)
	}
	defer rows.Close()

	var series []domain.MonthPoint
	for rows.Next() {
		var point domain.MonthPoint
		if err := rows.Scan(&point.Month, &point.Sales, &point.Quantity, &point.Customers); err != nil {
			return nil, fmt.Errorf("scanning month point: %w", err)
		}
		series = append(series, point)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating month points: %w", err)
	}

	return series, nil
}

// ItemMonthlySeries returns every item's monthly totals in one scan, ordered
// by item then month. The anomaly detector groups the rows per item in Go.
func (r *supplyRepository) ItemMonthlySeries(filter domain.BrandFilter, since time.Time) ([]domain.ItemMonthPoint, error) {
	condition, conditionArgs := brandCondition(filter, 2)

	query := fmt.Sprintf(`
		SELECT
			item_code,
			MAX(item_desc) AS item_desc,
			MAX(COALESCE(brand, '')) AS brand,
			month_sort,
			COALESCE(SUM(amount), 0) AS sales
		FROM sales
		WHERE invoice_date >= $1%s
		GROUP BY item_code, month_sort
		ORDER BY item_code ASC, month_sort ASC`,
		condition,
	)

	args := []interface{}{since}
	args = append(args, conditionArgs...)

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying item monthly series: %w", err)
	}
	defer rows.Close()

	var points []domain.ItemMonthPoint
	for rows.Next() {
		var point domain.ItemMonthPoint
		if err := rows.Scan(&point.ItemCode, &point.ItemDesc, &point.Brand, &point.Month, &point.Sales); err != nil {
			return nil, fmt.Errorf("scanning item month point: %w", err)
		}
		points = append(points, point)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating item month points: %w", err)
	}

	return points, nil
}

// SeasonalCandidates lists items big enough to be worth a pattern scan. Only
// identity and total sales are filled; classification fills the rest.
func (r *supplyRepository) SeasonalCandidates(filter domain.BrandFilter, since time.Time, minSales float64) ([]domain.SeasonalItem, error) {
	queryBuilder := squirrel.
		Select(
			"item_code",
			"MAX(item_desc) AS item_desc",
			"MAX(COALESCE(brand, '')) AS brand",
			"COALESCE(SUM(amount), 0) AS total_sales",
		).
		From(salesTable).
		Where(squirrel.GtOrEq{"invoice_date": since}).
		GroupBy("item_code").
		Having(squirrel.Gt{"SUM(amount)": minSales}).
		OrderBy("total_sales DESC").
		PlaceholderFormat(squirrel.Dollar)

	queryBuilder = withBrandFilter(queryBuilder, filter)

	candidatesSQL, candidatesArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building seasonal candidates query: %w", err)
	}

	rows, err := r.conn.Query(candidatesSQL, candidatesArgs...)
	if err != nil {
		return nil, fmt.Errorf("querying seasonal candidates: %w", err)
	}
	defer rows.Close()

	var candidates []domain.SeasonalItem
	for rows.Next() {
		var candidate domain.SeasonalItem
		if err := rows.Scan(&candidate.ItemCode, &candidate.ItemDesc, &candidate.Brand, &candidate.TotalSales); err != nil {
			return nil, fmt.Errorf("scanning seasonal candidate: %w", err)
		}
		candidates = append(candidates, candidate)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating seasonal candidates: %w", err)
	}

	return candidates, nil
}

// CustomerLoadings splits each account's buying into the historical stretch
// [historicalSince, recentSince) and the recent stretch from recentSince on.
// Accounts with no recent buying are skipped; they are a coverage problem,
// not an overstock one.
func (r *supplyRepository) CustomerLoadings(
	filter domain.BrandFilter,
	historicalSince, recentSince time.Time,
) ([]domain.CustomerLoading, error) {
	condition, conditionArgs := brandCondition(filter, 3)

	query := fmt.Sprintf(`
		SELECT
			customer_name,
			COALESCE(SUM(CASE WHEN invoice_date < $2 THEN amount ELSE 0 END), 0) AS historical_total,
			COALESCE(SUM(CASE WHEN invoice_date >= $2 THEN amount ELSE 0 END), 0) AS recent_total,
			MAX(invoice_date) AS last_purchase
		FROM sales
		WHERE invoice_date >= $1%s
		GROUP BY customer_name
		HAVING COALESCE(SUM(CASE WHEN invoice_date >= $2 THEN amount ELSE 0 END), 0) > 0
		ORDER BY recent_total DESC`,
		condition,
	)

	args := []interface{}{historicalSince, recentSince}
	args = append(args, conditionArgs...)

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying customer loadings: %w", err)
	}
	defer rows.Close()

	var loadings []domain.CustomerLoading
	for rows.Next() {
		var loading domain.CustomerLoading
		if err := rows.Scan(
			&loading.CustomerName,
			&loading.HistoricalTotal,
			&loading.RecentTotal,
			&loading.LastPurchase,
		); err != nil {
			return nil, fmt.Errorf("scanning customer loading: %w", err)
		}
		loadings = append(loadings, loading)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating customer loadings: %w", err)
	}

	return loadings, nil
}
