package domain

import "time"

// CoverageLevel scopes a coverage query.
type CoverageLevel string

const (
	CoverageCompany CoverageLevel = "company"
	CoverageBrand   CoverageLevel = "brand"
	CoverageItem    CoverageLevel = "item"
)

// CoverageWindow is the reach within one trailing window: how many distinct
// accounts (or channels, emirates) bought, and how much.
type CoverageWindow struct {
	Label        string  `json:"time_window"` // e.g. "12M"
	Months       int     `json:"months"`
	Count        int     `json:"coverage_count"`
	TotalSales   float64 `json:"total_sales"`
	Transactions int     `json:"transaction_count"`
}

// CoverageReport is the coverage across all requested windows for one scope.
type CoverageReport struct {
	Level   CoverageLevel    `json:"level"`
	Entity  string           `json:"entity,omitempty"`
	Windows []CoverageWindow `json:"windows"`
}

// LostAccount is an account that bought in the historical window but not the
// recent one.
type LostAccount struct {
	Name                   string     `json:"name"`
	LastPurchaseDate       *time.Time `json:"last_purchase_date"`
	HistoricalSales        float64    `json:"historical_sales"`
	HistoricalQty          float64    `json:"historical_qty"`
	HistoricalTransactions int        `json:"historical_transactions"`
	ItemsBought            int        `json:"items_bought"`
	DaysSinceLastPurchase  int        `json:"days_since_last_purchase"`
}

// CoverageComparison compares account reach between two scopes. Overlap is
// the true intersection; exclusives are each side's reach minus the overlap.
type CoverageComparison struct {
	EntityA    string  `json:"entity_a"`
	EntityB    string  `json:"entity_b"`
	CoverageA  int     `json:"coverage_a"`
	CoverageB  int     `json:"coverage_b"`
	SalesA     float64 `json:"sales_a"`
	SalesB     float64 `json:"sales_b"`
	Overlap    int     `json:"overlap"`
	ExclusiveA int     `json:"exclusive_a"`
	ExclusiveB int     `json:"exclusive_b"`
}

// CoverageMovement is the new / lost / retained account split between a
// period and the period before it.
type CoverageMovement struct {
	Entity       string `json:"entity"`
	PeriodMonths int    `json:"period_months"`
	New          int    `json:"new_customers"`
	Lost         int    `json:"lost_customers"`
	Retained     int    `json:"retained_customers"`
}

// BrandCompanyCoverage lays one brand's coverage windows beside the whole
// company's, the dataset behind coverage-comparison questions.
type BrandCompanyCoverage struct {
	Brand   CoverageReport `json:"brand"`
	Company CoverageReport `json:"company"`
}
