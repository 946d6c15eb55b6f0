package domain

// BrandDimension names a breakdown axis of the comprehensive brand analysis.
// Values are closed; repositories map them to whitelisted columns.
type BrandDimension string

const (
	DimensionChannel  BrandDimension = "channel"
	DimensionGroup    BrandDimension = "group"
	DimensionItem     BrandDimension = "item"
	DimensionCustomer BrandDimension = "customer"
	DimensionEmirate  BrandDimension = "emirate"
	DimensionSalesman BrandDimension = "salesman"
)

// YearTotals is one year's side of a brand overview comparison.
type YearTotals struct {
	Year         int     `json:"year"`
	TotalSales   float64 `json:"total_sales"`
	Transactions int     `json:"transactions"`
	Customers    int     `json:"customers"`
	Items        int     `json:"items"`
}

// DimensionRow is one row of a two-year breakdown along a dimension, ordered
// by variance in the direction the question's focus asks for. Label carries
// the item description when the dimension is item.
type DimensionRow struct {
	Value     string  `json:"value"`
	Label     string  `json:"label,omitempty"`
	SalesY1   float64 `json:"sales_y1"`
	SalesY2   float64 `json:"sales_y2"`
	Variance  float64 `json:"variance"`
	GrowthPct float64 `json:"growth_pct"`
}

// ItemRef identifies one catalog item.
type ItemRef struct {
	Code  string `json:"item_code"`
	Desc  string `json:"item_desc"`
	Brand string `json:"brand,omitempty"`
}

// BrandAnalysisSummary condenses the overview into headline numbers.
type BrandAnalysisSummary struct {
	TotalY1     float64 `json:"total_y1"`
	TotalY2     float64 `json:"total_y2"`
	GrowthValue float64 `json:"growth_value"`
	GrowthPct   float64 `json:"growth_pct"`
}

// BrandAnalysis bundles the overview with every dimension breakdown for one
// brand across two years.
type BrandAnalysis struct {
	Brand     string                            `json:"brand"`
	YearFrom  int                               `json:"year_from"`
	YearTo    int                               `json:"year_to"`
	Focus     Focus                             `json:"focus"`
	Overview  []YearTotals                      `json:"overview"`
	Summary   BrandAnalysisSummary              `json:"summary"`
	Breakdown map[BrandDimension][]DimensionRow `json:"breakdown"`
}
