package domain

import "time"

// Pattern labels assigned to a monthly sales series.
const (
	PatternInsufficient = "Insufficient Data"
	PatternSeasonal     = "Seasonal"
	PatternStable       = "Stable"
	PatternFluctuating  = "Fluctuating"
	PatternModerate     = "Moderate Variation"
	PatternSpike        = "Strange (Spike)"
	PatternDrop         = "Strange (Drop)"
)

// Stability labels for run-rate analysis.
const (
	StabilityInsufficient = "Insufficient Data"
	StabilityVeryStable   = "Very Stable"
	StabilityStable       = "Stable"
	StabilityModerate     = "Moderate"
	StabilityUnstable     = "Unstable"
)

// MonthPoint is one month of an entity's sales series.
type MonthPoint struct {
	Month     string  `json:"month"` // YYYY-MM
	Sales     float64 `json:"sales"`
	Quantity  float64 `json:"quantity,omitempty"`
	Customers int     `json:"customers,omitempty"`
}

// PatternReport classifies an item's monthly series.
type PatternReport struct {
	ItemCode            string       `json:"item_code"`
	Pattern             string       `json:"pattern"`
	PlanningImplication string       `json:"planning_implication"`
	CV                  float64      `json:"cv"`
	IsSeasonal          bool         `json:"is_seasonal"`
	SeasonalLag         int          `json:"seasonal_lag,omitempty"`
	HasAnomalies        bool         `json:"has_anomalies"`
	AnomalyCount        int          `json:"anomaly_count"`
	HasTrend            bool         `json:"has_trend"`
	TrendDirection      string       `json:"trend_direction"`
	PeakMonths          []string     `json:"peak_months"`
	MeanSales           float64      `json:"mean_sales"`
	StdSales            float64      `json:"std_sales"`
	MonthlyData         []MonthPoint `json:"monthly_data,omitempty"`
}

// ItemMonthPoint is one month of one item's series inside a brand-wide scan.
type ItemMonthPoint struct {
	ItemCode string  `json:"item_code"`
	ItemDesc string  `json:"item_desc"`
	Brand    string  `json:"brand"`
	Month    string  `json:"month"`
	Sales    float64 `json:"sales"`
}

// SeasonalItem is an item whose series classified Seasonal.
type SeasonalItem struct {
	ItemCode    string  `json:"item_code"`
	ItemDesc    string  `json:"item_desc"`
	Brand       string  `json:"brand"`
	TotalSales  float64 `json:"total_sales"`
	Pattern     string  `json:"pattern"`
	PeakMonths  string  `json:"peak_months"`
	CV          float64 `json:"cv"`
	SeasonalLag int     `json:"seasonal_lag"`
}

// Anomaly is one month where an item's sales left its normal band.
type Anomaly struct {
	ItemCode     string  `json:"item_code"`
	ItemDesc     string  `json:"item_desc"`
	Brand        string  `json:"brand"`
	Month        string  `json:"month"`
	Sales        float64 `json:"sales"`
	ZScore       float64 `json:"z_score"`
	Type         string  `json:"type"` // Spike or Drop
	DeviationPct float64 `json:"deviation_pct"`
}

// StabilityReport summarizes run-rate stability for a brand or item.
type StabilityReport struct {
	Entity           string       `json:"entity"`
	Stability        string       `json:"stability"`
	CV               float64      `json:"cv"`
	MeanMonthlySales float64      `json:"mean_monthly_sales"`
	StdMonthlySales  float64      `json:"std_monthly_sales"`
	MinMonthlySales  float64      `json:"min_monthly_sales"`
	MaxMonthlySales  float64      `json:"max_monthly_sales"`
	MonthlyData      []MonthPoint `json:"monthly_data,omitempty"`
}

// OverstockRisk flags an account that loaded heavily and then went quiet.
type OverstockRisk struct {
	CustomerName   string     `json:"customer_name"`
	AvgMonthlyBuy  float64    `json:"avg_monthly_buy"`
	RecentTotal    float64    `json:"recent_total"`
	LastPurchase   *time.Time `json:"last_purchase"`
	StockLoadIndex float64    `json:"stock_load_index"`
}

// ItemHealth is the integrated health check for one item.
type ItemHealth struct {
	ItemCode      string           `json:"item_code"`
	ItemDesc      string           `json:"item_desc"`
	Brand         string           `json:"brand"`
	TotalSales12M float64          `json:"total_sales_12m"`
	CustomerCount int              `json:"customer_count"`
	LastSaleDate  *time.Time       `json:"last_sale_date"`
	Coverage      []CoverageWindow `json:"coverage"`
	Pattern       *PatternReport   `json:"pattern"`
	Stability     *StabilityReport `json:"stability,omitempty"`
	OOSRisk       *OOSItem         `json:"oos_risk,omitempty"`
	Channels      []ChannelStatus  `json:"channel_distribution"`
	DeclineCause  string           `json:"decline_cause"`
}
