package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/melsayed/sales-analyst-api/infrastructure/database/postgres"
	"github.com/melsayed/sales-analyst-api/internal/domain"
	"github.com/melsayed/sales-analyst-api/pkg/utils"
)

const salesTable = "sales"

// dimensionColumns whitelists the breakdown axes. Anything outside this map
// never reaches SQL.
var dimensionColumns = map[domain.BrandDimension]string{
	domain.DimensionChannel:  "channel",
	domain.DimensionGroup:    "account_group",
	domain.DimensionCustomer: "customer_name",
	domain.DimensionEmirate:  "emirate",
	domain.DimensionSalesman: "salesman",
}

type SalesRepository interface {
	ListBrands() ([]string, error)
	FindItemByCode(code string) (*domain.ItemRef, error)
	FindItemByDesc(fragment string) (*domain.ItemRef, error)
	BrandOverview(filter domain.BrandFilter, yearFrom, yearTo int) ([]domain.YearTotals, error)
	BrandBreakdown(filter domain.BrandFilter, yearFrom, yearTo int, dimension domain.BrandDimension, focus domain.Focus, limit uint64) ([]domain.DimensionRow, error)
	MonthlyTrend(filter domain.BrandFilter, year int) ([]domain.TrendPoint, error)
	RunQuery(query string, maxRows int) (*domain.ResultSet, error)
}

type salesRepository struct {
	conn *postgres.Connection
}

func NewSalesRepository(conn *postgres.Connection) SalesRepository {
	return &salesRepository{
		conn: conn,
	}
}

// withBrandFilter narrows a query to one brand. Masked brands are matched
// against brand_mask because their rows carry the distributor's own label in
// the brand column.
func withBrandFilter(builder squirrel.SelectBuilder, filter domain.BrandFilter) squirrel.SelectBuilder {
	if filter.Brand == "" {
		return builder
	}
	if filter.Masked {
		return builder.Where(squirrel.ILike{"brand_mask": "%" + filter.Brand + "%"})
	}
	return builder.Where(squirrel.Eq{"brand": filter.Brand})
}

func (r *salesRepository) ListBrands() ([]string, error) {
	queryBuilder := squirrel.
		Select("DISTINCT brand").
		From(salesTable).
		Where(squirrel.NotEq{"brand": nil}).
		Where(squirrel.NotEq{"brand": ""}).
		OrderBy("brand ASC").
		PlaceholderFormat(squirrel.Dollar)

	brandsSQL, brandsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building brand list query: %w", err)
	}

	rows, err := r.conn.Query(brandsSQL, brandsArgs...)
	if err != nil {
		return nil, fmt.Errorf("listing brands: %w", err)
	}
	defer rows.Close()

	var brands []string
	for rows.Next() {
		var brand string
		if err := rows.Scan(&brand); err != nil {
			return nil, fmt.Errorf("scanning brand: %w", err)
		}
		brands = append(brands, brand)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating brands: %w", err)
	}

	return brands, nil
}

func (r *salesRepository) FindItemByCode(code string) (*domain.ItemRef, error) {
	var item domain.ItemRef
	err := r.conn.QueryRow(
		"SELECT item_code, MAX(item_desc), MAX(COALESCE(brand, '')) FROM sales WHERE UPPER(item_code) = UPPER($1) GROUP BY item_code",
		code,
	).Scan(&item.Code, &item.Desc, &item.Brand)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("finding item %s: %w", code, err)
	}

	return &item, nil
}

// FindItemByDesc resolves a quoted product name to the best-selling item whose
// description contains it.
func (r *salesRepository) FindItemByDesc(fragment string) (*domain.ItemRef, error) {
	queryBuilder := squirrel.
		Select("item_code", "MAX(item_desc)", "MAX(COALESCE(brand, ''))").
		From(salesTable).
		Where(squirrel.ILike{"item_desc": "%" + fragment + "%"}).
		GroupBy("item_code").
		OrderBy("SUM(amount) DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar)

	itemSQL, itemArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building item lookup query: %w", err)
	}

	var item domain.ItemRef
	err = r.conn.QueryRow(itemSQL, itemArgs...).Scan(&item.Code, &item.Desc, &item.Brand)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("finding item by description: %w", err)
	}

	return &item, nil
}

func (r *salesRepository) BrandOverview(filter domain.BrandFilter, yearFrom, yearTo int) ([]domain.YearTotals, error) {
	queryBuilder := squirrel.
		Select(
			"year",
			"COALESCE(SUM(amount), 0) AS total_sales",
			"COUNT(*) AS transactions",
			"COUNT(DISTINCT customer_name) AS customers",
			"COUNT(DISTINCT item_code) AS items",
		).
		From(salesTable).
		Where(squirrel.Eq{"year": []int{yearFrom, yearTo}}).
		GroupBy("year").
		OrderBy("year ASC").
		PlaceholderFormat(squirrel.Dollar)

	queryBuilder = withBrandFilter(queryBuilder, filter)

	overviewSQL, overviewArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building overview query: %w", err)
	}

	rows, err := r.conn.Query(overviewSQL, overviewArgs...)
	if err != nil {
		return nil, fmt.Errorf("querying brand overview: %w", err)
	}
	defer rows.Close()

	var totals []domain.YearTotals
	for rows.Next() {
		var t domain.YearTotals
		if err := rows.Scan(&t.Year, &t.TotalSales, &t.Transactions, &t.Customers, &t.Items); err != nil {
			return nil, fmt.Errorf("scanning overview row: %w", err)
		}
		totals = append(totals, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating overview rows: %w", err)
	}

	return totals, nil
}

// BrandBreakdown compares two years along one dimension. Ordering follows the
// question's focus: declining questions surface the biggest losses first,
// growing questions the biggest gains. Person-level dimensions drop rows with
// no sales in either year.
func (r *salesRepository) BrandBreakdown(
	filter domain.BrandFilter,
	yearFrom, yearTo int,
	dimension domain.BrandDimension,
	focus domain.Focus,
	limit uint64,
) ([]domain.DimensionRow, error) {
	y1Sum := fmt.Sprintf("SUM(CASE WHEN year = %d THEN amount ELSE 0 END)", yearFrom)
	y2Sum := fmt.Sprintf("SUM(CASE WHEN year = %d THEN amount ELSE 0 END)", yearTo)

	withLabel := dimension == domain.DimensionItem

	var queryBuilder squirrel.SelectBuilder
	if withLabel {
		queryBuilder = squirrel.
			Select("item_code AS value", "MAX(item_desc) AS label").
			From(salesTable).
			GroupBy("item_code")
	} else {
		column, ok := dimensionColumns[dimension]
		if !ok {
			return nil, fmt.Errorf("unknown breakdown dimension %q", dimension)
		}
		queryBuilder = squirrel.
			Select("COALESCE(" + column + ", 'N/A') AS value").
			From(salesTable).
			GroupBy(column)
	}

	queryBuilder = queryBuilder.
		Column(y1Sum + " AS sales_y1").
		Column(y2Sum + " AS sales_y2").
		Where(squirrel.Eq{"year": []int{yearFrom, yearTo}}).
		PlaceholderFormat(squirrel.Dollar)

	queryBuilder = withBrandFilter(queryBuilder, filter)

	switch dimension {
	case domain.DimensionItem, domain.DimensionCustomer, domain.DimensionSalesman:
		queryBuilder = queryBuilder.Having(y1Sum + " > 0 OR " + y2Sum + " > 0")
	}

	direction := "ASC"
	if focus == domain.FocusGrowing {
		direction = "DESC"
	}
	queryBuilder = queryBuilder.OrderBy(fmt.Sprintf("(%s - %s) %s", y2Sum, y1Sum, direction))

	if limit > 0 {
		queryBuilder = queryBuilder.Limit(limit)
	}

	breakdownSQL, breakdownArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building %s breakdown query: %w", dimension, err)
	}

	rows, err := r.conn.Query(breakdownSQL, breakdownArgs...)
	if err != nil {
		return nil, fmt.Errorf("querying %s breakdown: %w", dimension, err)
	}
	defer rows.Close()

	var breakdown []domain.DimensionRow
	for rows.Next() {
		var row domain.DimensionRow
		if withLabel {
			err = rows.Scan(&row.Value, &row.Label, &row.SalesY1, &row.SalesY2)
		} else {
			err = rows.Scan(&row.Value, &row.SalesY1, &row.SalesY2)
		}
		if err != nil {
			return nil, fmt.Errorf("scanning %s breakdown row: %w", dimension, err)
		}

		row.Variance = row.SalesY2 - row.SalesY1
		if row.SalesY1 != 0 {
			row.GrowthPct = utils.RoundWithTwoDecimalPlace(row.Variance * 100.0 / row.SalesY1)
		}
		breakdown = append(breakdown, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s breakdown rows: %w", dimension, err)
	}

	return breakdown, nil
}

func (r *salesRepository) MonthlyTrend(filter domain.BrandFilter, year int) ([]domain.TrendPoint, error) {
	queryBuilder := squirrel.
		Select(
			"month_label",
			"month_sort",
			"COALESCE(SUM(amount), 0) AS sales",
			"COALESCE(SUM(regular_qty), 0) AS quantity",
		).
		From(salesTable).
		Where(squirrel.Eq{"year": year}).
		GroupBy("month_label", "month_sort").
		OrderBy("month_sort ASC").
		PlaceholderFormat(squirrel.Dollar)

	queryBuilder = withBrandFilter(queryBuilder, filter)

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
		var p domain.TrendPoint
		if err := rows.Scan(&p.MonthLabel, &p.MonthSort, &p.Sales, &p.Quantity); err != nil {
			return nil, fmt.Errorf("scanning trend point: %w", err)
		}
		points = append(points, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating trend points: %w", err)
	}

	return points, nil
}

// RunQuery executes one already-validated SELECT and captures up to maxRows
// rows with their column names. Byte slices are converted to strings so the
// result serializes as JSON text rather than base64.
func (r *salesRepository) RunQuery(query string, maxRows int) (*domain.ResultSet, error) {
	rows, err := r.conn.Query(query)
	if err != nil {
		return nil, fmt.Errorf("executing generated query: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("reading result columns: %w", err)
	}

	result := &domain.ResultSet{Columns: columns}
	for rows.Next() {
		if maxRows > 0 && len(result.Rows) >= maxRows {
			break
		}

		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}

		if err := rows.Scan(pointers...); err != nil {
			return nil, fmt.Errorf("scanning result row: %w", err)
		}

		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		result.Rows = append(result.Rows, values)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating result rows: %w", err)
	}

	return result, nil
}
