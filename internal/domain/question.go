package domain

// Focus is the growth or decline orientation detected in a question.
type Focus string

const (
	FocusDeclining Focus = "declining"
	FocusGrowing   Focus = "growing"
	FocusAll       Focus = "all"
)

// Intent is the analytics route a question maps to. IntentNone means the
// question follows the generated-SQL path instead of a canned analysis.
type Intent string

const (
	IntentComparison   Intent = "comparison"
	IntentCoverageLoss Intent = "coverage_loss"
	IntentOOS          Intent = "oos"
	IntentPattern      Intent = "pattern"
	IntentSupplyChain  Intent = "supply_chain"
	IntentCoverage     Intent = "coverage"
	IntentNone         Intent = "none"
)

// NeedsEnhanced reports whether the intent routes to the analytics engine.
func (i Intent) NeedsEnhanced() bool {
	return i != IntentNone && i != ""
}

// QuestionProfile is the classifier output that parameterizes query shaping.
type QuestionProfile struct {
	Question    string `json:"question"`
	Focus       Focus  `json:"focus"`
	Intent      Intent `json:"intent"`
	Investigate bool   `json:"investigate"`
	YearFrom    int    `json:"year_from"`
	YearTo      int    `json:"year_to"`
	WindowDays  int    `json:"window_days"`
	Brand       string `json:"brand,omitempty"`
	BrandMasked bool   `json:"brand_masked,omitempty"`
	ItemCode    string `json:"item_code,omitempty"`
}

// BrandFilter selects rows for one brand. Masked brands (sold under another
// brand's label) are matched against the brand_mask column instead.
type BrandFilter struct {
	Brand  string
	Masked bool
}

type AskRequest struct {
	Question string `json:"question"`
}
