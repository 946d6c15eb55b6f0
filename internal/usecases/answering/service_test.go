package answering

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	integratormocks "github.com/melsayed/sales-analyst-api/infrastructure/integrator/openai/mocks"
	repomocks "github.com/melsayed/sales-analyst-api/infrastructure/repository/mocks"
	"github.com/melsayed/sales-analyst-api/internal/config"
	"github.com/melsayed/sales-analyst-api/internal/domain"
	analyzingmocks "github.com/melsayed/sales-analyst-api/internal/usecases/analyzing/mocks"
	"github.com/melsayed/sales-analyst-api/internal/usecases/classifying"
)

func newAnswerTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Analysis.DefaultYearFrom = 2024
	cfg.Analysis.DefaultYearTo = 2025
	cfg.Analysis.WindowDays = 30
	cfg.Analysis.BrandAliases = map[string]string{"duphalac": "DUP"}
	cfg.Analysis.MaskedBrands = map[string]bool{"BAYER": true}

	return cfg
}

type answerMocks struct {
	analyzer   *analyzingmocks.MockAnalyzingService
	integrator *integratormocks.MockIntegrator
	sales      *repomocks.MockSalesRepository
	answers    *repomocks.MockAnswerRepository
}

func newTestService(ctrl *gomock.Controller) (*Service, answerMocks) {
	cfg := newAnswerTestConfig()
	m := answerMocks{
		analyzer:   analyzingmocks.NewMockAnalyzingService(ctrl),
		integrator: integratormocks.NewMockIntegrator(ctrl),
		sales:      repomocks.NewMockSalesRepository(ctrl),
		answers:    repomocks.NewMockAnswerRepository(ctrl),
	}

	service := &Service{
		classifier:       classifying.NewService(cfg),
		analyzer:         m.analyzer,
		integrator:       m.integrator,
		salesRepository:  m.sales,
		answerRepository: m.answers,
		cfg:              cfg,
	}

	return service, m
}

func TestAskRoutesEnhancedIntents(t *testing.T) {
	brandCoverage := &domain.CoverageReport{
		Level:  domain.CoverageBrand,
		Entity: "DUP",
		Windows: []domain.CoverageWindow{
			{Label: "12M", Months: 12, Count: 180, TotalSales: 1200000, Transactions: 900},
		},
	}
	companyCoverage := &domain.CoverageReport{
		Level: domain.CoverageCompany,
		Windows: []domain.CoverageWindow{
			{Label: "12M", Months: 12, Count: 620, TotalSales: 9800000, Transactions: 5400},
		},
	}
	movement := &domain.CoverageMovement{Entity: "DUP", PeriodMonths: 12, New: 14, Lost: 9, Retained: 120}
	lostAccounts := []domain.LostAccount{
		{Name: "CITY PHARMACY", HistoricalSales: 84000, HistoricalQty: 1200, HistoricalTransactions: 36, ItemsBought: 8, DaysSinceLastPurchase: 95},
	}
	oosItems := []domain.OOSItem{
		{ItemCode: "DUP-100-TAB", ItemDesc: "DUPHALAC 100ML", Brand: "DUP", HistoricalSales: 240000, AvgMonthlySales: 20000, DaysSinceSale: 52, RiskLevel: domain.OOSRiskHigh},
	}
	stoppages := []domain.Stoppage{
		{ItemCode: "DUP-100-TAB", ItemDesc: "DUPHALAC 100ML", Brand: "DUP", StoppedAccounts: 7, LostSalesPotential: 61000},
	}
	seasonal := []domain.SeasonalItem{
		{ItemCode: "DUP-200-SYR", ItemDesc: "DUPHALAC SYRUP", Brand: "DUP", TotalSales: 310000, Pattern: domain.PatternSeasonal, PeakMonths: "08, 03", CV: 0.61, SeasonalLag: 12},
	}
	anomalies := []domain.Anomaly{
		{ItemCode: "DUP-200-SYR", ItemDesc: "DUPHALAC SYRUP", Brand: "DUP", Month: "2025-03", Sales: 90000, ZScore: 3.1, Type: "Spike", DeviationPct: 240.5},
	}
	overstock := []domain.OverstockRisk{
		{CustomerName: "CITY PHARMACY", AvgMonthlyBuy: 12000, RecentTotal: 54000, StockLoadIndex: 4.5},
	}

	tests := []struct {
		name         string
		question     string
		setup        func(m answerMocks)
		wantIntent   domain.Intent
		wantBrand    string
		wantItem     string
		wantSummary  string
		wantSections []string
	}{
		{
			name:     "brand coverage",
			question: "What is the coverage for DUP?",
			setup: func(m answerMocks) {
				m.analyzer.EXPECT().
					Coverage(domain.CoverageBrand, "DUP", false, gomock.Nil(), "").
					Return(brandCoverage, nil)
			},
			wantIntent:   domain.IntentCoverage,
			wantBrand:    "DUP",
			wantSummary:  "Coverage analysis for DUP over 1Y, 2Y, 3Y, 4Y",
			wantSections: []string{"coverage"},
		},
		{
			name:     "company coverage",
			question: "How many accounts bought in the last 12 months?",
			setup: func(m answerMocks) {
				m.analyzer.EXPECT().
					Coverage(domain.CoverageCompany, "", false, gomock.Nil(), "").
					Return(companyCoverage, nil)
			},
			wantIntent:   domain.IntentCoverage,
			wantSummary:  "Company-wide coverage analysis over 1Y, 2Y, 3Y, 4Y",
			wantSections: []string{"coverage"},
		},
		{
			name:     "item coverage loss",
			question: `Which accounts stopped buying "DUP-100-TAB"?`,
			setup: func(m answerMocks) {
				m.sales.EXPECT().
					FindItemByCode("DUP-100-TAB").
					Return(&domain.ItemRef{Code: "DUP-100-TAB", Desc: "DUPHALAC 100ML", Brand: "DUP"}, nil)
				m.analyzer.EXPECT().
					CoverageLoss(domain.CoverageItem, "DUP-100-TAB", false, 12, 24, uint64(50)).
					Return(lostAccounts, nil)
			},
			wantIntent:   domain.IntentCoverageLoss,
			wantBrand:    "DUP",
			wantItem:     "DUP-100-TAB",
			wantSummary:  "Accounts that bought item DUP-100-TAB historically but not recently",
			wantSections: []string{"lost_accounts"},
		},
		{
			name:     "brand coverage loss with movement",
			question: "Which accounts stopped buying DUP recently?",
			setup: func(m answerMocks) {
				m.analyzer.EXPECT().
					CoverageLoss(domain.CoverageBrand, "DUP", false, 12, 24, uint64(50)).
					Return(lostAccounts, nil)
				m.analyzer.EXPECT().
					CoverageMovement(domain.CoverageBrand, "DUP", false, 12).
					Return(movement, nil)
			},
			wantIntent:   domain.IntentCoverageLoss,
			wantBrand:    "DUP",
			wantSummary:  "Accounts that bought DUP historically but not recently",
			wantSections: []string{"lost_accounts", "account_movement"},
		},
		{
			name:        "coverage loss needs entity",
			question:    "Show churn in accounts",
			wantIntent:  domain.IntentCoverageLoss,
			wantSummary: "Please specify a brand or item for coverage loss analysis",
		},
		{
			name:     "brand vs company comparison",
			question: "Compare DUP coverage vs company coverage",
			setup: func(m answerMocks) {
				m.analyzer.EXPECT().
					BrandVsCompany(domain.BrandFilter{Brand: "DUP"}, gomock.Nil()).
					Return(&domain.BrandCompanyCoverage{Brand: *brandCoverage, Company: *companyCoverage}, nil)
			},
			wantIntent:   domain.IntentComparison,
			wantBrand:    "DUP",
			wantSummary:  "Comparison: DUP coverage vs company coverage",
			wantSections: []string{"coverage_comparison"},
		},
		{
			name:        "comparison needs brand",
			question:    "Compare coverage vs company overall",
			wantIntent:  domain.IntentComparison,
			wantSummary: "Please specify a brand to compare with company coverage",
		},
		{
			name:     "decline cause classification",
			question: `Is the decline of "PAN-500-TAB" demand-driven or supply-driven?`,
			setup: func(m answerMocks) {
				m.sales.EXPECT().
					FindItemByCode("PAN-500-TAB").
					Return(&domain.ItemRef{Code: "PAN-500-TAB", Desc: "PANADOL EXTRA 24S", Brand: "GSK"}, nil)
				m.analyzer.EXPECT().
					ClassifyDeclineCause("PAN-500-TAB").
					Return(domain.DeclineDemand, nil)
			},
			wantIntent:   domain.IntentOOS,
			wantItem:     "PAN-500-TAB",
			wantSummary:  "Decline classification for item PAN-500-TAB: " + domain.DeclineDemand,
			wantSections: []string{"decline_cause"},
		},
		{
			name:     "brand oos with stoppages",
			question: "Any out of stock items for DUP in the last 45 days?",
			setup: func(m answerMocks) {
				m.analyzer.EXPECT().
					DetectOOS(domain.BrandFilter{Brand: "DUP"}, 45, float64(10000)).
					Return(oosItems, nil)
				m.analyzer.EXPECT().
					WidespreadStoppage(domain.BrandFilter{Brand: "DUP"}, 5, 45).
					Return(stoppages, nil)
			},
			wantIntent:   domain.IntentOOS,
			wantBrand:    "DUP",
			wantSummary:  "Potential out-of-stock items for DUP (last 45 days)",
			wantSections: []string{"oos_items", "widespread_stoppages"},
		},
		{
			name:     "company oos",
			question: "Which items show zero sales recently?",
			setup: func(m answerMocks) {
				m.analyzer.EXPECT().
					DetectOOS(domain.BrandFilter{}, 30, float64(10000)).
					Return(oosItems, nil)
			},
			wantIntent:   domain.IntentOOS,
			wantSummary:  "Potential out-of-stock items across all brands (last 30 days)",
			wantSections: []string{"oos_items"},
		},
		{
			name:     "overstock scan",
			question: "Which accounts show overstock behavior?",
			setup: func(m answerMocks) {
				m.analyzer.EXPECT().
					OverstockRisk(domain.BrandFilter{}, 90).
					Return(overstock, nil)
			},
			wantIntent:   domain.IntentPattern,
			wantSummary:  "Accounts at risk of overstock (high recent loading, no reorder)",
			wantSections: []string{"overstock_risk"},
		},
		{
			name:     "brand seasonality",
			question: "Show seasonal items for DUP",
			setup: func(m answerMocks) {
				m.analyzer.EXPECT().
					SeasonalItems(domain.BrandFilter{Brand: "DUP"}, float64(50000), 24).
					Return(seasonal, nil)
				m.analyzer.EXPECT().
					Anomalies(domain.BrandFilter{Brand: "DUP"}, 12, 2.5).
					Return(anomalies, nil)
			},
			wantIntent:   domain.IntentPattern,
			wantBrand:    "DUP",
			wantSummary:  "Seasonal items for DUP",
			wantSections: []string{"seasonal_items", "anomalies"},
		},
		{
			name:     "item pattern via description",
			question: `What is the sales pattern of "PANADOL EXTRA 24S"?`,
			setup: func(m answerMocks) {
				m.sales.EXPECT().FindItemByCode("PANADOL EXTRA 24S").Return(nil, nil)
				m.sales.EXPECT().
					FindItemByDesc("PANADOL EXTRA 24S").
					Return(&domain.ItemRef{Code: "PAN-500-TAB", Desc: "PANADOL EXTRA 24S", Brand: "GSK"}, nil)
				m.analyzer.EXPECT().
					ClassifyPattern(domain.CoverageItem, "PAN-500-TAB", false, 24).
					Return(&domain.PatternReport{
						ItemCode:            "PAN-500-TAB",
						Pattern:             domain.PatternSeasonal,
						PlanningImplication: "Stock up ahead of peak months",
						CV:                  0.62,
						IsSeasonal:          true,
						SeasonalLag:         12,
						PeakMonths:          []string{"08", "03"},
					}, nil)
			},
			wantIntent:   domain.IntentPattern,
			wantItem:     "PAN-500-TAB",
			wantSummary:  "Pattern analysis for item PAN-500-TAB: Seasonal. Stock up ahead of peak months",
			wantSections: []string{"pattern"},
		},
		{
			name:     "portfolio seasonality",
			question: "Show seasonal items across the portfolio",
			setup: func(m answerMocks) {
				m.analyzer.EXPECT().
					SeasonalItems(domain.BrandFilter{}, float64(50000), 24).
					Return(seasonal, nil)
			},
			wantIntent:   domain.IntentPattern,
			wantSummary:  "Seasonal items across all brands",
			wantSections: []string{"seasonal_items"},
		},
		{
			name:     "supply chain dashboard",
			question: "Show the supply chain status for DUP",
			setup: func(m answerMocks) {
				m.analyzer.EXPECT().
					SupplyChainDashboard(domain.BrandFilter{Brand: "DUP"}, 30).
					Return(&domain.SupplyChainReport{
						Brand:         "DUP",
						OOSItems:      oosItems,
						SupplyIssues:  stoppages,
						CoverageLoss:  lostAccounts,
						SeasonalItems: seasonal,
						Anomalies:     anomalies,
					}, nil)
			},
			wantIntent:   domain.IntentSupplyChain,
			wantBrand:    "DUP",
			wantSummary:  "Supply chain dashboard for DUP",
			wantSections: []string{"oos_items", "supply_issues", "lost_accounts", "seasonal_items", "anomalies"},
		},
		{
			name:        "supply chain needs brand",
			question:    "Any supply issues lately?",
			wantIntent:  domain.IntentSupplyChain,
			wantSummary: "Please specify a brand for supply chain analysis",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, m := newTestService(ctrl)
			m.sales.EXPECT().ListBrands().Return([]string{"DUP", "OBG"}, nil).AnyTimes()
			m.integrator.EXPECT().Enabled().Return(false).AnyTimes()
			m.answers.EXPECT().SaveAnswer(gomock.Any()).Return(nil)
			if tt.setup != nil {
				tt.setup(m)
			}

			answer, err := service.Ask(context.Background(), domain.AskRequest{Question: tt.question})

			assert.NoError(t, err)
			assert.Equal(t, tt.wantIntent, answer.Intent)
			assert.Equal(t, tt.wantBrand, answer.Brand)
			assert.Equal(t, tt.wantItem, answer.ItemCode)
			assert.Equal(t, tt.wantSummary, answer.Summary)

			var names []string
			for _, section := range answer.Sections {
				names = append(names, section.Name)
			}
			assert.Equal(t, tt.wantSections, names)
			assert.Empty(t, answer.GeneratedSQL)
			assert.NotEmpty(t, answer.ID)
		})
	}
}

func TestAskRunsBrandAnalysisForInvestigationQuestions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)
	question := "Why is OBG declining in 2025?"

	m.sales.EXPECT().ListBrands().Return([]string{"DUP", "OBG"}, nil)
	m.integrator.EXPECT().Enabled().Return(false).AnyTimes()

	expectedProfile := domain.QuestionProfile{
		Question:    question,
		Focus:       domain.FocusDeclining,
		Intent:      domain.IntentNone,
		Investigate: true,
		YearFrom:    2024,
		YearTo:      2025,
		WindowDays:  30,
		Brand:       "OBG",
	}
	m.analyzer.EXPECT().BrandAnalysis(expectedProfile).Return(&domain.BrandAnalysis{
		Brand:    "OBG",
		YearFrom: 2024,
		YearTo:   2025,
		Focus:    domain.FocusDeclining,
		Overview: []domain.YearTotals{
			{Year: 2024, TotalSales: 900000, Transactions: 410, Customers: 80, Items: 24},
			{Year: 2025, TotalSales: 700000, Transactions: 350, Customers: 71, Items: 22},
		},
		Summary: domain.BrandAnalysisSummary{TotalY1: 900000, TotalY2: 700000, GrowthValue: -200000, GrowthPct: -22.22},
		Breakdown: map[domain.BrandDimension][]domain.DimensionRow{
			domain.DimensionItem: {
				{Value: "OBG-10", Label: "OBG TABLET 10MG", SalesY1: 300000, SalesY2: 180000, Variance: -120000, GrowthPct: -40},
			},
		},
	}, nil)

	var saved *domain.Answer
	m.answers.EXPECT().SaveAnswer(gomock.Any()).DoAndReturn(func(answer *domain.Answer) error {
		saved = answer
		return nil
	})

	answer, err := service.Ask(context.Background(), domain.AskRequest{Question: question})

	assert.NoError(t, err)
	assert.Equal(t, domain.FocusDeclining, answer.Focus)
	assert.Equal(t, "OBG 2024 vs 2025: AED 900,000 to AED 700,000 (-22.22%)", answer.Summary)
	assert.Len(t, answer.Sections, 2)
	assert.Equal(t, "overview", answer.Sections[0].Name)
	assert.Equal(t, "item_breakdown", answer.Sections[1].Name)
	assert.Equal(t, "OBG TABLET 10MG (OBG-10)", answer.Sections[1].Rows[0][0])
	assert.Same(t, answer, saved)
}

func TestAskGeneratedSQLPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)
	question := "List the top 10 customers by total sales"
	generated := "SELECT customer_name, SUM(amount) AS total FROM sales GROUP BY customer_name ORDER BY total DESC LIMIT 10"

	m.sales.EXPECT().ListBrands().Return([]string{"DUP", "OBG"}, nil)
	m.integrator.EXPECT().Enabled().Return(true).AnyTimes()
	m.integrator.EXPECT().GenerateSQL(gomock.Any(), question).Return(generated, nil)
	m.sales.EXPECT().RunQuery(generated, 500).Return(&domain.ResultSet{
		Columns: []string{"customer_name", "total"},
		Rows:    [][]any{{"CITY PHARMACY", 84000.0}, {"METRO CLINIC", 51000.0}},
	}, nil)
	m.integrator.EXPECT().
		Narrate(gomock.Any(), question, gomock.Any()).
		Return("CITY PHARMACY leads with AED 84,000.", nil)
	m.answers.EXPECT().SaveAnswer(gomock.Any()).Return(nil)

	answer, err := service.Ask(context.Background(), domain.AskRequest{Question: question})

	assert.NoError(t, err)
	assert.Equal(t, domain.IntentNone, answer.Intent)
	assert.Equal(t, generated, answer.GeneratedSQL)
	assert.Equal(t, "Found 2 rows", answer.Summary)
	assert.Equal(t, "CITY PHARMACY leads with AED 84,000.", answer.Narrative)
	assert.Len(t, answer.Sections, 1)
	assert.Equal(t, "query_results", answer.Sections[0].Name)
	assert.Equal(t, []string{"customer_name", "total"}, answer.Sections[0].Columns)
}

func TestAskGeneratedSQLSelfCorrects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)
	question := "Total sales by emirate this year"
	first := "SELECT emirate, SUM(amount) FROM sales_sumary GROUP BY emirate"
	fixed := "SELECT emirate, SUM(amount) FROM sales GROUP BY emirate"
	execErr := errors.New(`relation "sales_sumary" does not exist`)

	m.sales.EXPECT().ListBrands().Return([]string{"DUP", "OBG"}, nil)
	m.integrator.EXPECT().Enabled().Return(true).AnyTimes()
	m.integrator.EXPECT().GenerateSQL(gomock.Any(), question).Return(first, nil)
	m.sales.EXPECT().RunQuery(first, 500).Return(nil, execErr)
	m.integrator.EXPECT().FixSQL(gomock.Any(), question, first, execErr.Error()).Return(fixed, nil)
	m.sales.EXPECT().RunQuery(fixed, 500).Return(&domain.ResultSet{
		Columns: []string{"emirate", "sum"},
		Rows:    [][]any{{"DUBAI", 4200000.0}},
	}, nil)
	m.integrator.EXPECT().Narrate(gomock.Any(), question, gomock.Any()).Return("Dubai dominates.", nil)
	m.answers.EXPECT().SaveAnswer(gomock.Any()).Return(nil)

	answer, err := service.Ask(context.Background(), domain.AskRequest{Question: question})

	assert.NoError(t, err)
	assert.Equal(t, fixed, answer.GeneratedSQL)
	assert.Equal(t, "Found 1 rows", answer.Summary)
}

func TestAskRejectsUnsafeGeneratedSQL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)
	question := "Show the raw table"

	m.sales.EXPECT().ListBrands().Return([]string{"DUP", "OBG"}, nil)
	m.integrator.EXPECT().Enabled().Return(true)
	m.integrator.EXPECT().GenerateSQL(gomock.Any(), question).Return("DROP TABLE sales", nil)

	answer, err := service.Ask(context.Background(), domain.AskRequest{Question: question})

	assert.ErrorIs(t, err, ErrUnsafeSQL)
	assert.Nil(t, answer)
}

func TestAskRequiresIntegratorForFreeFormQuestions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	m.sales.EXPECT().ListBrands().Return([]string{"DUP", "OBG"}, nil)
	m.integrator.EXPECT().Enabled().Return(false)

	answer, err := service.Ask(context.Background(), domain.AskRequest{Question: "Show the raw table"})

	assert.ErrorIs(t, err, ErrIntegratorDisabled)
	assert.Nil(t, answer)
}

func TestAskRejectsEmptyQuestion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newTestService(ctrl)

	answer, err := service.Ask(context.Background(), domain.AskRequest{Question: "   "})

	assert.ErrorIs(t, err, ErrEmptyQuestion)
	assert.Nil(t, answer)
}

func TestAskPropagatesAnalyticsErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	m.sales.EXPECT().ListBrands().Return([]string{"DUP", "OBG"}, nil)
	m.analyzer.EXPECT().
		Coverage(domain.CoverageBrand, "DUP", false, gomock.Nil(), "").
		Return(nil, assert.AnError)

	answer, err := service.Ask(context.Background(), domain.AskRequest{Question: "What is the coverage for DUP?"})

	assert.ErrorIs(t, err, assert.AnError)
	assert.Nil(t, answer)
}

func TestAskNarrationFailureDoesNotFailAnswer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)
	question := "What is the coverage for DUP?"

	m.sales.EXPECT().ListBrands().Return([]string{"DUP", "OBG"}, nil)
	m.integrator.EXPECT().Enabled().Return(true).AnyTimes()
	m.analyzer.EXPECT().
		Coverage(domain.CoverageBrand, "DUP", false, gomock.Nil(), "").
		Return(&domain.CoverageReport{
			Level:   domain.CoverageBrand,
			Entity:  "DUP",
			Windows: []domain.CoverageWindow{{Label: "12M", Months: 12, Count: 180, TotalSales: 1200000, Transactions: 900}},
		}, nil)

	var digest string
	m.integrator.EXPECT().
		Narrate(gomock.Any(), question, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, d string) (string, error) {
			digest = d
			return "", errors.New("rate limited")
		})
	m.answers.EXPECT().SaveAnswer(gomock.Any()).Return(nil)

	answer, err := service.Ask(context.Background(), domain.AskRequest{Question: question})

	assert.NoError(t, err)
	assert.Empty(t, answer.Narrative)
	assert.Contains(t, digest, "Coverage analysis for DUP over 1Y, 2Y, 3Y, 4Y")
	assert.Contains(t, digest, "Window | Months | Accounts | Total Sales | Transactions")
}

func TestAskPersistsAnswer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)
	question := "What is the coverage for DUP?"

	m.sales.EXPECT().ListBrands().Return([]string{"DUP", "OBG"}, nil)
	m.integrator.EXPECT().Enabled().Return(true).AnyTimes()
	m.analyzer.EXPECT().
		Coverage(domain.CoverageBrand, "DUP", false, gomock.Nil(), "").
		Return(&domain.CoverageReport{
			Level:   domain.CoverageBrand,
			Entity:  "DUP",
			Windows: []domain.CoverageWindow{{Label: "12M", Months: 12, Count: 180, TotalSales: 1200000, Transactions: 900}},
		}, nil)
	m.integrator.EXPECT().
		Narrate(gomock.Any(), question, gomock.Any()).
		Return("DUP reached 180 accounts over the last year.", nil)

	var saved *domain.Answer
	m.answers.EXPECT().SaveAnswer(gomock.Any()).DoAndReturn(func(answer *domain.Answer) error {
		saved = answer
		return nil
	})

	answer, err := service.Ask(context.Background(), domain.AskRequest{Question: question})

	assert.NoError(t, err)
	assert.Same(t, answer, saved)
	assert.Len(t, answer.ID, 12)
	assert.False(t, answer.CreatedAt.IsZero())
	assert.GreaterOrEqual(t, answer.DurationMs, int64(0))
	assert.Equal(t, 2024, answer.YearFrom)
	assert.Equal(t, 2025, answer.YearTo)
	assert.Equal(t, "DUP reached 180 accounts over the last year.", answer.Narrative)
}

func TestAskReturnsSaveError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	m.sales.EXPECT().ListBrands().Return([]string{"DUP", "OBG"}, nil)
	m.integrator.EXPECT().Enabled().Return(false).AnyTimes()
	m.answers.EXPECT().SaveAnswer(gomock.Any()).Return(assert.AnError)

	answer, err := service.Ask(context.Background(), domain.AskRequest{Question: "Show churn in accounts"})

	assert.ErrorIs(t, err, assert.AnError)
	assert.Nil(t, answer)
}

func TestAskBrandDetectionSurvivesCatalogError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	m.sales.EXPECT().ListBrands().Return(nil, errors.New("connection refused"))
	m.integrator.EXPECT().Enabled().Return(false).AnyTimes()
	m.analyzer.EXPECT().
		Coverage(domain.CoverageBrand, "DUP", false, gomock.Nil(), "").
		Return(&domain.CoverageReport{Level: domain.CoverageBrand, Entity: "DUP"}, nil)
	m.answers.EXPECT().SaveAnswer(gomock.Any()).Return(nil)

	answer, err := service.Ask(context.Background(), domain.AskRequest{Question: "What is the coverage for Duphalac?"})

	assert.NoError(t, err)
	assert.Equal(t, "DUP", answer.Brand)
}

func TestRecentAnswersClampsLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	m.answers.EXPECT().ListAnswers(uint64(20)).Return([]*domain.Answer{}, nil)
	m.answers.EXPECT().ListAnswers(uint64(100)).Return([]*domain.Answer{}, nil)

	_, err := service.RecentAnswers(0)
	assert.NoError(t, err)

	_, err = service.RecentAnswers(5000)
	assert.NoError(t, err)
}
