package answering

import (
	"fmt"
	"strings"
	"time"

	"github.com/melsayed/sales-analyst-api/internal/domain"
)

// Section builders turn analytics reports into the generic tabular shape an
// answer carries. Captions are set by the caller, which knows the question
// context; builders only fix the column layout.

var analysisDimensionOrder = []domain.BrandDimension{
	domain.DimensionChannel,
	domain.DimensionGroup,
	domain.DimensionItem,
	domain.DimensionCustomer,
	domain.DimensionEmirate,
	domain.DimensionSalesman,
}

func coverageSection(report *domain.CoverageReport) domain.AnswerSection {
	section := domain.AnswerSection{
		Name:    "coverage",
		Columns: []string{"Window", "Months", "Accounts", "Total Sales", "Transactions"},
	}

	for _, window := range report.Windows {
		section.Rows = append(section.Rows, []any{
			window.Label, window.Months, window.Count, window.TotalSales, window.Transactions,
		})
	}

	return section
}

// comparisonSection lays brand and company coverage side by side in long
// format, one row per scope and window.
func comparisonSection(comparison *domain.BrandCompanyCoverage) domain.AnswerSection {
	section := domain.AnswerSection{
		Name:    "coverage_comparison",
		Columns: []string{"Scope", "Window", "Accounts", "Total Sales"},
	}

	for _, window := range comparison.Brand.Windows {
		section.Rows = append(section.Rows, []any{
			comparison.Brand.Entity, window.Label, window.Count, window.TotalSales,
		})
	}
	for _, window := range comparison.Company.Windows {
		section.Rows = append(section.Rows, []any{
			"Company", window.Label, window.Count, window.TotalSales,
		})
	}

	return section
}

func lostAccountsSection(accounts []domain.LostAccount) domain.AnswerSection {
	section := domain.AnswerSection{
		Name: "lost_accounts",
		Columns: []string{
			"Account", "Last Purchase", "Historical Sales", "Historical Qty",
			"Transactions", "Items Bought", "Days Since Purchase",
		},
	}

	for _, account := range accounts {
		section.Rows = append(section.Rows, []any{
			account.Name, dateCell(account.LastPurchaseDate), account.HistoricalSales,
			account.HistoricalQty, account.HistoricalTransactions, account.ItemsBought,
			account.DaysSinceLastPurchase,
		})
	}

	return section
}

func movementSection(movement *domain.CoverageMovement) domain.AnswerSection {
	return domain.AnswerSection{
		Name:    "account_movement",
		Columns: []string{"Entity", "Period Months", "New", "Lost", "Retained"},
		Rows: [][]any{{
			movement.Entity, movement.PeriodMonths, movement.New, movement.Lost, movement.Retained,
		}},
	}
}

func oosSection(items []domain.OOSItem) domain.AnswerSection {
	section := domain.AnswerSection{
		Name: "oos_items",
		Columns: []string{
			"Item Code", "Item", "Brand", "Historical Sales", "Avg Monthly Sales",
			"Recent Sales", "Last Sale", "Days Since Sale", "Risk", "Suggestion",
		},
	}

	for _, item := range items {
		section.Rows = append(section.Rows, []any{
			item.ItemCode, item.ItemDesc, item.Brand, item.HistoricalSales,
			item.AvgMonthlySales, item.RecentSales, dateCell(item.LastSaleDate),
			item.DaysSinceSale, item.RiskLevel, item.ForecastSuggestion,
		})
	}

	return section
}

func stoppagesSection(stoppages []domain.Stoppage) domain.AnswerSection {
	section := domain.AnswerSection{
		Name: "widespread_stoppages",
		Columns: []string{
			"Item Code", "Item", "Brand", "Stopped Accounts", "Most Recent Stop", "Lost Sales Potential",
		},
	}

	for _, stoppage := range stoppages {
		section.Rows = append(section.Rows, []any{
			stoppage.ItemCode, stoppage.ItemDesc, stoppage.Brand, stoppage.StoppedAccounts,
			dateCell(stoppage.MostRecentStop), stoppage.LostSalesPotential,
		})
	}

	return section
}

func declineCauseSection(itemCode, cause string) domain.AnswerSection {
	return domain.AnswerSection{
		Name:    "decline_cause",
		Columns: []string{"Item Code", "Cause"},
		Rows:    [][]any{{itemCode, cause}},
	}
}

func patternSection(report *domain.PatternReport) domain.AnswerSection {
	return domain.AnswerSection{
		Name: "pattern",
		Columns: []string{
			"Item Code", "Pattern", "CV", "Seasonal Lag", "Anomalies",
			"Trend", "Peak Months", "Mean Monthly Sales",
		},
		Rows: [][]any{{
			report.ItemCode, report.Pattern, report.CV, report.SeasonalLag,
			report.AnomalyCount, report.TrendDirection, strings.Join(report.PeakMonths, ", "),
			report.MeanSales,
		}},
	}
}

func monthlySeriesSection(points []domain.MonthPoint) domain.AnswerSection {
	section := domain.AnswerSection{
		Name:    "monthly_sales",
		Columns: []string{"Month", "Sales"},
	}

	for _, point := range points {
		section.Rows = append(section.Rows, []any{point.Month, point.Sales})
	}

	return section
}

func seasonalSection(items []domain.SeasonalItem) domain.AnswerSection {
	section := domain.AnswerSection{
		Name: "seasonal_items",
		Columns: []string{
			"Item Code", "Item", "Brand", "Total Sales", "Pattern", "Peak Months", "CV",
		},
	}

	for _, item := range items {
		section.Rows = append(section.Rows, []any{
			item.ItemCode, item.ItemDesc, item.Brand, item.TotalSales,
			item.Pattern, item.PeakMonths, item.CV,
		})
	}

	return section
}

func anomaliesSection(anomalies []domain.Anomaly) domain.AnswerSection {
	section := domain.AnswerSection{
		Name: "anomalies",
		Columns: []string{
			"Item Code", "Item", "Brand", "Month", "Sales", "Z-Score", "Type", "Deviation %",
		},
	}

	for _, anomaly := range anomalies {
		section.Rows = append(section.Rows, []any{
			anomaly.ItemCode, anomaly.ItemDesc, anomaly.Brand, anomaly.Month,
			anomaly.Sales, anomaly.ZScore, anomaly.Type, anomaly.DeviationPct,
		})
	}

	return section
}

func overstockSection(risks []domain.OverstockRisk) domain.AnswerSection {
	section := domain.AnswerSection{
		Name: "overstock_risk",
		Columns: []string{
			"Account", "Avg Monthly Buy", "Recent Total", "Last Purchase", "Stock Load Index",
		},
	}

	for _, risk := range risks {
		section.Rows = append(section.Rows, []any{
			risk.CustomerName, risk.AvgMonthlyBuy, risk.RecentTotal,
			dateCell(risk.LastPurchase), risk.StockLoadIndex,
		})
	}

	return section
}

func resultSetSection(result *domain.ResultSet) domain.AnswerSection {
	return domain.AnswerSection{
		Name:    "query_results",
		Caption: fmt.Sprintf("Found %d rows", len(result.Rows)),
		Columns: result.Columns,
		Rows:    result.Rows,
	}
}

// analysisSections flattens a comprehensive brand analysis: the two-year
// overview first, then one section per breakdown dimension in a fixed order.
func analysisSections(analysis *domain.BrandAnalysis) []domain.AnswerSection {
	overview := domain.AnswerSection{
		Name:    "overview",
		Caption: fmt.Sprintf("%s overview %d vs %d", analysis.Brand, analysis.YearFrom, analysis.YearTo),
		Columns: []string{"Year", "Total Sales", "Transactions", "Customers", "Items"},
	}
	for _, totals := range analysis.Overview {
		overview.Rows = append(overview.Rows, []any{
			totals.Year, totals.TotalSales, totals.Transactions, totals.Customers, totals.Items,
		})
	}

	sections := []domain.AnswerSection{overview}

	salesY1 := fmt.Sprintf("Sales %d", analysis.YearFrom)
	salesY2 := fmt.Sprintf("Sales %d", analysis.YearTo)

	for _, dimension := range analysisDimensionOrder {
		rows, ok := analysis.Breakdown[dimension]
		if !ok {
			continue
		}

		section := domain.AnswerSection{
			Name:    string(dimension) + "_breakdown",
			Columns: []string{dimensionHeading(dimension), salesY1, salesY2, "Variance", "Growth %"},
		}

		for _, row := range rows {
			value := row.Value
			if row.Label != "" {
				value = fmt.Sprintf("%s (%s)", row.Label, row.Value)
			}
			section.Rows = append(section.Rows, []any{
				value, row.SalesY1, row.SalesY2, row.Variance, row.GrowthPct,
			})
		}

		sections = append(sections, section)
	}

	return sections
}

func dimensionHeading(dimension domain.BrandDimension) string {
	switch dimension {
	case domain.DimensionChannel:
		return "Channel"
	case domain.DimensionGroup:
		return "Account Group"
	case domain.DimensionItem:
		return "Item"
	case domain.DimensionCustomer:
		return "Customer"
	case domain.DimensionEmirate:
		return "Emirate"
	case domain.DimensionSalesman:
		return "Salesman"
	}
	return string(dimension)
}

func dateCell(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format("2006-01-02")
}
