package domain

// Priority labels for gap-analysis entries.
const (
	GapPriorityUrgent = "urgent"
	GapPriorityFocus  = "focus"
	GapPriorityClose  = "close"
)

// Severity labels for rule-derived recommendations.
const (
	SeverityCritical    = "critical"
	SeverityTactical    = "tactical"
	SeverityCoaching    = "coaching"
	SeverityFocus       = "focus"
	SeverityRisk        = "risk"
	SeverityDevelopment = "development"
	SeverityMomentum    = "momentum"
)

// PerformanceRow is one entity's sales against target for a year. The Entity
// fields that apply depend on the grouping: brand rows fill Brand only,
// salesman rows fill Salesman/GM/Manager, account rows fill Customer details.
type PerformanceRow struct {
	Brand        string  `json:"brand,omitempty"`
	GM           string  `json:"gm,omitempty"`
	Manager      string  `json:"manager,omitempty"`
	Salesman     string  `json:"salesman,omitempty"`
	CustomerName string  `json:"customer_name,omitempty"`
	Emirate      string  `json:"emirate,omitempty"`
	Channel      string  `json:"channel,omitempty"`
	Sales        float64 `json:"sales"`
	Target       float64 `json:"target"`
	Quantity     float64 `json:"quantity"`
	BonusQty     float64 `json:"bonus_qty,omitempty"`
	Transactions int     `json:"transactions"`
	Brands       int     `json:"brands,omitempty"`
	Customers    int     `json:"customers,omitempty"`
	Salesmen     int     `json:"salesmen,omitempty"`
	Achievement  float64 `json:"achievement"`
	Gap          float64 `json:"gap"`
	AvgPerCust   float64 `json:"avg_per_customer,omitempty"`
}

// EntityName returns whichever identity field the grouping filled.
func (r PerformanceRow) EntityName() string {
	switch {
	case r.CustomerName != "":
		return r.CustomerName
	case r.Salesman != "":
		return r.Salesman
	case r.GM != "" && r.Brand == "":
		return r.GM
	default:
		return r.Brand
	}
}

// GapEntry is one entity in the gap analysis, ordered by gap size.
type GapEntry struct {
	Entity      string  `json:"entity"`
	Sales       float64 `json:"sales"`
	Target      float64 `json:"target"`
	Gap         float64 `json:"gap"`
	Achievement float64 `json:"achievement"`
	Priority    string  `json:"priority"`
}

// GapReport aggregates the gaps for one entity type and year.
type GapReport struct {
	EntityType   string     `json:"entity_type"`
	Year         int        `json:"year"`
	TotalGap     float64    `json:"total_gap"`
	DailyRunRate float64    `json:"daily_run_rate"` // gap spread over 22 working days
	Entries      []GapEntry `json:"entries"`
}

// Recommendation is one rule-derived action for an entity.
type Recommendation struct {
	EntityType  string  `json:"entity_type"`
	Entity      string  `json:"entity"`
	Severity    string  `json:"severity"`
	Achievement float64 `json:"achievement"`
	Gap         float64 `json:"gap"`
	Message     string  `json:"message"`
}

// TrendPoint is one month of the sales trend for a year.
type TrendPoint struct {
	MonthLabel string  `json:"month_label"`
	MonthSort  string  `json:"month_sort"`
	Sales      float64 `json:"sales"`
	Quantity   float64 `json:"quantity"`
}

// YearlyTotals is one year of a year-over-year comparison.
type YearlyTotals struct {
	Year      int     `json:"year"`
	Sales     float64 `json:"sales"`
	Quantity  float64 `json:"quantity"`
	Customers int     `json:"customers"`
}
