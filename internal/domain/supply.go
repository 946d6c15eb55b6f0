package domain

import "time"

// OOS risk levels inferred from recent sales against the historical run-rate.
const (
	OOSRiskHigh   = "High"
	OOSRiskMedium = "Medium"
	OOSRiskLow    = "Low"
)

// Decline cause labels for the demand-vs-supply classification.
const (
	DeclineSupplyOOS      = "Supply-Driven (High Probability OOS) - Sudden zero sales"
	DeclineSupplyStoppage = "Supply-Driven (Widespread Stoppage) - All accounts stopped buying"
	DeclineDemand         = "Demand-Driven (Declining Trend) - Sales dropped but not zero"
	DeclineInconclusive   = "Inconclusive - Needs manual check"
	DeclineNoData         = "Unknown - No Data"
)

// OOSItem is an item whose recent sales fell below its historical run-rate.
type OOSItem struct {
	ItemCode               string     `json:"item_code"`
	ItemDesc               string     `json:"item_desc"`
	Brand                  string     `json:"brand"`
	HistoricalSales        float64    `json:"historical_sales"`
	AffectedAccounts       int        `json:"affected_accounts"`
	HistoricalTransactions int        `json:"historical_transactions"`
	AvgMonthlySales        float64    `json:"avg_monthly_sales"`
	HistoricalQty          float64    `json:"historical_qty"`
	RecentSales            float64    `json:"recent_sales"`
	LastSaleDate           *time.Time `json:"last_sale_date"`
	DaysSinceSale          int        `json:"days_since_sale"`
	RiskLevel              string     `json:"oos_risk_level"`
	ForecastSuggestion     string     `json:"forecast_suggestion"`
}

// WindowStats aggregates an item's sales over one time window.
type WindowStats struct {
	Sales        float64    `json:"sales"`
	Quantity     float64    `json:"quantity"`
	Transactions int        `json:"transactions"`
	Customers    int        `json:"customers"`
	LastSale     *time.Time `json:"last_sale,omitempty"`
}

// CustomerLoading is one account's historical versus recent buying volume,
// the raw input of the overstock scan.
type CustomerLoading struct {
	CustomerName    string     `json:"customer_name"`
	HistoricalTotal float64    `json:"historical_total"`
	RecentTotal     float64    `json:"recent_total"`
	LastPurchase    *time.Time `json:"last_purchase"`
}

// ChannelStatus is the recent-vs-historical picture of one item in one channel.
type ChannelStatus struct {
	Channel             string  `json:"channel"`
	RecentSales         float64 `json:"recent_sales"`
	HistoricalSales     float64 `json:"historical_sales"`
	RecentCustomers     int     `json:"recent_customers"`
	HistoricalCustomers int     `json:"historical_customers"`
	OOSRisk             bool    `json:"oos_risk"`
	SalesDropPct        float64 `json:"sales_drop_pct"`
}

// Stoppage is an item many accounts stopped buying around the same time.
type Stoppage struct {
	ItemCode           string     `json:"item_code"`
	ItemDesc           string     `json:"item_desc"`
	Brand              string     `json:"brand"`
	StoppedAccounts    int        `json:"stopped_accounts"`
	MostRecentStop     *time.Time `json:"most_recent_stop"`
	LostSalesPotential float64    `json:"lost_sales_potential"`
}

// OOSImpact estimates what an out-of-stock period cost.
type OOSImpact struct {
	ItemCode           string  `json:"item_code"`
	OOSDays            int     `json:"oos_days"`
	EstimatedLostSales float64 `json:"estimated_lost_sales"`
	AffectedCustomers  int     `json:"affected_customers"`
	AnnualSales        float64 `json:"annual_sales"`
}

// SupplyChainReport is the per-brand dashboard: OOS candidates, widespread
// stoppages, lost accounts, seasonal items and anomalies in one bundle.
type SupplyChainReport struct {
	Brand         string         `json:"brand"`
	OOSItems      []OOSItem      `json:"oos_items"`
	SupplyIssues  []Stoppage     `json:"supply_issues"`
	CoverageLoss  []LostAccount  `json:"coverage_loss"`
	SeasonalItems []SeasonalItem `json:"seasonal_items"`
	Anomalies     []Anomaly      `json:"anomalies"`
}
