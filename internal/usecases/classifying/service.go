package classifying

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/melsayed/sales-analyst-api/internal/config"
	"github.com/melsayed/sales-analyst-api/internal/domain"
)

// Keyword tables drive every routing decision. Matching is plain substring
// search over the lowercased question, so "breakdown" hits "down" and
// "dropped" hits "drop". Order matters: decline keywords are checked before
// growth keywords, and intents are checked in precedence order.
var (
	declineKeywords = []string{
		"declining", "decline", "decrease", "decreasing", "drop", "dropping",
		"fall", "falling", "loss", "losing", "down", "negative",
		"non-growing", "non growing", "not growing", "underperforming", "slowing",
	}

	growthKeywords = []string{
		"growing", "growth", "increase", "increasing", "rise", "rising",
		"improve", "improving", "gain", "gaining", "up", "positive",
	}

	// A negated-growth phrase blocks the growth branch so "not growing"
	// never classifies as growing via its "growing" substring.
	negatedGrowthPhrases = []string{"not growing", "non-growing", "non growing"}

	intentKeywords = []struct {
		intent   domain.Intent
		keywords []string
	}{
		{domain.IntentComparison, []string{
			"compare coverage", "coverage vs", "coverage comparison",
			"brand vs company", "company vs brand",
		}},
		{domain.IntentCoverageLoss, []string{
			"stopped buying", "lost accounts", "inactive", "not buying",
			"churn", "not recently", "dropped", "lost", "risk",
		}},
		{domain.IntentOOS, []string{
			"out of stock", "oos", "no sales", "stopped selling",
			"zero sales", "not selling", "supply vs demand",
			"demand vs supply", "demand-driven", "supply-driven",
		}},
		{domain.IntentPattern, []string{
			"seasonal", "seasonality", "pattern", "stable", "fluctuating",
			"behavior", "repeat", "reorder", "strange", "spike",
		}},
		{domain.IntentSupplyChain, []string{
			"supply chain", "supply issues", "availability",
		}},
		{domain.IntentCoverage, []string{
			"coverage", "reach", "penetration", "accounts bought",
			"how many accounts", "listing",
		}},
	}

	investigateKeywords = []string{
		"why", "reason", "cause", "explain", "investigate",
		"declining", "decline", "drop", "dropping", "decrease", "decreasing",
		"growing", "growth", "increase", "increasing",
		"change", "changed", "difference",
		"compare", "comparison", "vs", "versus",
		"what happened", "what is happening",
		"analyze", "analysis", "breakdown",
		"contributing", "contribution",
		"performance", "performing",
	}
)

var (
	yearPattern   = regexp.MustCompile(`20\d{2}`)
	daysPattern   = regexp.MustCompile(`(\d+)\s*days?`)
	quotedPattern = regexp.MustCompile(`"([^"]*)"`)
	codePattern   = regexp.MustCompile(`\b[A-Za-z0-9]+-[A-Za-z0-9-]+\b`)
)

// ItemCandidates are the raw item references found in a question, before
// they are verified against the catalog. Quoted strings may be item codes
// or description fragments; code-shaped tokens are only ever codes.
type ItemCandidates struct {
	Quoted []string
	Codes  []string
}

type ClassifyingService interface {
	Classify(question string) domain.QuestionProfile
	DetectBrand(question string, brands []string) (string, bool)
	DetectItemCandidates(question string) ItemCandidates
}

type Service struct {
	cfg *config.Config
}

func NewService(cfg *config.Config) ClassifyingService {
	return &Service{cfg: cfg}
}

// Classify derives focus, intent, the investigation flag and the analysis
// window from the question text alone. Brand and item resolution need the
// catalog and are done separately by the caller.
func (s *Service) Classify(question string) domain.QuestionProfile {
	lower := strings.ToLower(question)

	profile := domain.QuestionProfile{
		Question:    question,
		Focus:       detectFocus(lower),
		Intent:      detectIntent(lower),
		Investigate: containsAny(lower, investigateKeywords),
		WindowDays:  s.cfg.Analysis.WindowDays,
	}

	profile.YearFrom, profile.YearTo = s.extractYears(question)

	if days, ok := extractWindowDays(lower); ok {
		profile.WindowDays = days
	}

	return profile
}

func detectFocus(lower string) domain.Focus {
	if containsAny(lower, declineKeywords) {
		return domain.FocusDeclining
	}

	if containsAny(lower, growthKeywords) && !containsAny(lower, negatedGrowthPhrases) {
		return domain.FocusGrowing
	}

	return domain.FocusAll
}

func detectIntent(lower string) domain.Intent {
	for _, entry := range intentKeywords {
		if containsAny(lower, entry.keywords) {
			return entry.intent
		}
	}

	return domain.IntentNone
}

// extractYears pulls four-digit years out of the question. Two or more
// distinct years give a comparison range, a single year is compared against
// the year before it, and no year falls back to the configured defaults.
func (s *Service) extractYears(question string) (int, int) {
	matches := yearPattern.FindAllString(question, -1)

	seen := make(map[int]bool, len(matches))
	years := make([]int, 0, len(matches))

	for _, match := range matches {
		year, err := strconv.Atoi(match)
		if err != nil || seen[year] {
			continue
		}

		seen[year] = true
		years = append(years, year)
	}

	sort.Ints(years)

	switch {
	case len(years) >= 2:
		return years[0], years[1]
	case len(years) == 1:
		return years[0] - 1, years[0]
	default:
		return s.cfg.Analysis.DefaultYearFrom, s.cfg.Analysis.DefaultYearTo
	}
}

func extractWindowDays(lower string) (int, bool) {
	match := daysPattern.FindStringSubmatch(lower)
	if match == nil {
		return 0, false
	}

	days, err := strconv.Atoi(match[1])
	if err != nil || days <= 0 {
		return 0, false
	}

	return days, true
}

// DetectBrand resolves a brand mention against the configured aliases first
// and then against the catalog brand list. Longer brand names are tried
// before shorter ones so "DUPHALAC SYRUP" wins over "DUP". Catalog names
// must match on word boundaries; aliases match as substrings. The second
// return reports whether the brand is sold under a masked label.
func (s *Service) DetectBrand(question string, brands []string) (string, bool) {
	lower := strings.ToLower(question)

	aliases := make([]string, 0, len(s.cfg.Analysis.BrandAliases))
	for alias := range s.cfg.Analysis.BrandAliases {
		aliases = append(aliases, alias)
	}

	sort.Strings(aliases)

	for _, alias := range aliases {
		if strings.Contains(lower, alias) {
			brand := s.cfg.Analysis.BrandAliases[alias]

			return brand, s.cfg.Analysis.MaskedBrands[strings.ToUpper(brand)]
		}
	}

	sorted := make([]string, len(brands))
	copy(sorted, brands)

	sort.Slice(sorted, func(i, j int) bool {
		if len(sorted[i]) != len(sorted[j]) {
			return len(sorted[i]) > len(sorted[j])
		}

		return sorted[i] < sorted[j]
	})

	for _, brand := range sorted {
		if brand == "" {
			continue
		}

		pattern, err := regexp.Compile(`\b` + regexp.QuoteMeta(strings.ToLower(brand)) + `\b`)
		if err != nil {
			continue
		}

		if pattern.MatchString(lower) {
			return brand, s.cfg.Analysis.MaskedBrands[strings.ToUpper(brand)]
		}
	}

	return "", false
}

// DetectItemCandidates collects quoted strings and code-shaped tokens such
// as "DUP-100-TAB". Verification against the item catalog is the caller's
// job; a candidate that matches nothing is simply ignored there.
func (s *Service) DetectItemCandidates(question string) ItemCandidates {
	candidates := ItemCandidates{}

	for _, match := range quotedPattern.FindAllStringSubmatch(question, -1) {
		quoted := strings.TrimSpace(match[1])
		if quoted != "" {
			candidates.Quoted = append(candidates.Quoted, quoted)
		}
	}

	for _, code := range codePattern.FindAllString(question, -1) {
		candidates.Codes = append(candidates.Codes, code)
	}

	return candidates
}

func containsAny(lower string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}

	return false
}
