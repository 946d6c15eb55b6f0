package classifying

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/melsayed/sales-analyst-api/internal/config"
	"github.com/melsayed/sales-analyst-api/internal/domain"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Analysis.DefaultYearFrom = 2024
	cfg.Analysis.DefaultYearTo = 2025
	cfg.Analysis.WindowDays = 30
	cfg.Analysis.BrandAliases = map[string]string{
		"abbott":    "DUP",
		"duphalac":  "DUP",
		"duphaston": "DUP",
		"bayer":     "BAYER",
	}
	cfg.Analysis.MaskedBrands = map[string]bool{"BAYER": true}

	return cfg
}

func TestClassifyFocus(t *testing.T) {
	service := NewService(newTestConfig())

	tests := []struct {
		question string
		expected domain.Focus
	}{
		{"Which brands are growing in 2025 vs 2024 for OBG?", domain.FocusGrowing},
		{"Show me DUP products declining in 2025", domain.FocusDeclining},
		{"Show non-growing items for DUP", domain.FocusDeclining},
		{"List growing items for OBG", domain.FocusGrowing},
		{"Which items are increasing for DUP?", domain.FocusGrowing},
		{"Why is there a drop in sales?", domain.FocusDeclining},
		{"Is OBG growth improving?", domain.FocusGrowing},
		{"Explain the decline for DUP", domain.FocusDeclining},
		{"Which items have positive growth?", domain.FocusGrowing},
		{"Which products are underperforming?", domain.FocusDeclining},
		{"Compare OBG 2024 vs 2025", domain.FocusAll},
	}

	for _, test := range tests {
		t.Run(test.question, func(t *testing.T) {
			profile := service.Classify(test.question)

			assert.Equal(t, test.expected, profile.Focus)
		})
	}
}

func TestClassifyIntent(t *testing.T) {
	service := NewService(newTestConfig())

	tests := []struct {
		name     string
		question string
		expected domain.Intent
	}{
		{"comparison beats coverage", "Compare coverage of DUP vs the company", domain.IntentComparison},
		{"coverage vs is comparison", "How is our coverage vs last year?", domain.IntentComparison},
		{"stopped buying", "Which accounts stopped buying DUP?", domain.IntentCoverageLoss},
		{"at risk accounts", "Show accounts at risk", domain.IntentCoverageLoss},
		{"out of stock", "Which items are out of stock?", domain.IntentOOS},
		{"stopped selling is oos", "Which items stopped selling?", domain.IntentOOS},
		{"seasonal pattern", "Is demand for DUP-100-TAB seasonal?", domain.IntentPattern},
		{"supply issues", "Any supply issues this month?", domain.IntentSupplyChain},
		{"plain coverage", "What is our account coverage?", domain.IntentCoverage},
		{"accounts bought", "How many accounts bought DUP this year?", domain.IntentCoverage},
		{"no analytics route", "Total sales for 2025", domain.IntentNone},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			profile := service.Classify(test.question)

			assert.Equal(t, test.expected, profile.Intent)
		})
	}
}

func TestClassifyInvestigate(t *testing.T) {
	service := NewService(newTestConfig())

	tests := []struct {
		name     string
		question string
		expected bool
	}{
		{"why question", "Why are DUP sales falling?", true},
		{"comparison", "DUP 2024 vs 2025", true},
		{"breakdown", "Give me a sales breakdown by channel", true},
		{"performance", "How is OBG performing?", true},
		{"plain total", "Total sales for DUP this year", false},
		{"plain listing", "List all items sold in Dubai", false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			profile := service.Classify(test.question)

			assert.Equal(t, test.expected, profile.Investigate)
		})
	}
}

func TestClassifyYears(t *testing.T) {
	service := NewService(newTestConfig())

	tests := []struct {
		name     string
		question string
		yearFrom int
		yearTo   int
	}{
		{"two years", "Compare 2023 vs 2025", 2023, 2025},
		{"two years reversed", "Compare 2025 against 2022", 2022, 2025},
		{"single year implies previous", "Sales in 2024", 2023, 2024},
		{"repeated year counts once", "2025 vs 2025", 2024, 2025},
		{"three years keeps earliest two", "Trend across 2022, 2025 and 2023", 2022, 2023},
		{"no year uses defaults", "Which brands are doing well?", 2024, 2025},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			profile := service.Classify(test.question)

			assert.Equal(t, test.yearFrom, profile.YearFrom)
			assert.Equal(t, test.yearTo, profile.YearTo)
		})
	}
}

func TestClassifyWindowDays(t *testing.T) {
	service := NewService(newTestConfig())

	tests := []struct {
		name     string
		question string
		expected int
	}{
		{"explicit window", "Items with no sales in the last 60 days", 60},
		{"singular day", "Orders in a 90 day window", 90},
		{"no window uses default", "Items with no recent sales", 30},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			profile := service.Classify(test.question)

			assert.Equal(t, test.expected, profile.WindowDays)
		})
	}
}

func TestDetectBrand(t *testing.T) {
	service := NewService(newTestConfig())

	brands := []string{"OBG", "DUP", "CARE", "VITAL CARE"}

	tests := []struct {
		name     string
		question string
		brand    string
		masked   bool
	}{
		{"alias", "How is abbott doing this year?", "DUP", false},
		{"alias product name", "Duphalac sales in Dubai", "DUP", false},
		{"masked alias", "Show me bayer sales", "BAYER", true},
		{"catalog brand", "Total sales for OBG in 2025", "OBG", false},
		{"longest brand wins", "vital care sales by emirate", "VITAL CARE", false},
		{"word boundary", "obgyn clinic sales", "", false},
		{"no brand", "Total sales by channel", "", false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			brand, masked := service.DetectBrand(test.question, brands)

			assert.Equal(t, test.brand, brand)
			assert.Equal(t, test.masked, masked)
		})
	}
}

func TestDetectItemCandidates(t *testing.T) {
	service := NewService(newTestConfig())

	tests := []struct {
		name     string
		question string
		quoted   []string
		codes    []string
	}{
		{
			name:     "quoted description",
			question: `Show sales for "DUPHALAC SYRUP 300ML"`,
			quoted:   []string{"DUPHALAC SYRUP 300ML"},
		},
		{
			name:     "code token",
			question: "Why did DUP-100-TAB stop selling?",
			codes:    []string{"DUP-100-TAB"},
		},
		{
			name:     "quoted and code",
			question: `Compare "DUPHALAC SYRUP" with OBG-200-CAP`,
			quoted:   []string{"DUPHALAC SYRUP"},
			codes:    []string{"OBG-200-CAP"},
		},
		{
			name:     "empty quotes ignored",
			question: `What does "" mean here?`,
		},
		{
			name:     "no candidates",
			question: "Total sales by brand",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			candidates := service.DetectItemCandidates(test.question)

			assert.Equal(t, test.quoted, candidates.Quoted)
			assert.Equal(t, test.codes, candidates.Codes)
		})
	}
}
