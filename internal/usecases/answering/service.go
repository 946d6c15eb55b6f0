package answering

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/melsayed/sales-analyst-api/infrastructure/integrator/openai"
	"github.com/melsayed/sales-analyst-api/infrastructure/repository"
	"github.com/melsayed/sales-analyst-api/internal/config"
	"github.com/melsayed/sales-analyst-api/internal/domain"
	"github.com/melsayed/sales-analyst-api/internal/usecases/analyzing"
	"github.com/melsayed/sales-analyst-api/internal/usecases/classifying"
	"github.com/melsayed/sales-analyst-api/pkg/utils"
)

// Sentinel errors the handlers map onto API error codes.
var (
	ErrEmptyQuestion      = errors.New("question text is required")
	ErrIntegratorDisabled = errors.New("free-form questions need the language model integration enabled")
	ErrGeneration         = errors.New("generating SQL for the question failed")
	ErrExecution          = errors.New("running the generated query failed")
)

// Tuning constants of the enhanced-analytics routes. Values mirror the
// thresholds the analytics engine was calibrated with.
const (
	queryRowLimit        = 500
	oosMinHistorical     = 10000
	stoppageMinAccounts  = 5
	overstockDays        = 90
	anomalyMonths        = 12
	anomalyThreshold     = 2.5
	patternMonths        = 24
	seasonalMinSales     = 50000
	seasonalMonths       = 24
	dashboardDays        = 30
	lossRecentMonths     = 12
	lossHistoricalMonths = 24
	lossLimit            = 50

	defaultAnswerLimit = 20
	maxAnswerLimit     = 100
)

// declineWordings are the phrasings that turn an OOS question about an item
// into a demand-versus-supply classification.
var declineWordings = []string{
	"demand driven", "demand-driven", "supply driven", "supply-driven", "demand or supply",
}

type AnsweringService interface {
	Ask(ctx context.Context, request domain.AskRequest) (*domain.Answer, error)
	GetAnswer(id string) (*domain.Answer, error)
	RecentAnswers(limit uint64) ([]*domain.Answer, error)
}

type Service struct {
	classifier       classifying.ClassifyingService
	analyzer         analyzing.AnalyzingService
	integrator       openai.Integrator
	salesRepository  repository.SalesRepository
	answerRepository repository.AnswerRepository
	cfg              *config.Config
}

func NewService(
	classifier classifying.ClassifyingService,
	analyzer analyzing.AnalyzingService,
	integrator openai.Integrator,
	salesRepository repository.SalesRepository,
	answerRepository repository.AnswerRepository,
	cfg *config.Config,
) AnsweringService {
	return &Service{
		classifier:       classifier,
		analyzer:         analyzer,
		integrator:       integrator,
		salesRepository:  salesRepository,
		answerRepository: answerRepository,
		cfg:              cfg,
	}
}

// Ask answers one natural-language question: classify it, run the route it
// maps to, narrate the datasets when the model is available, and persist the
// result. Narration failures degrade to a digest-only answer; they never fail
// the request.
func (s *Service) Ask(ctx context.Context, request domain.AskRequest) (*domain.Answer, error) {
	question := strings.TrimSpace(request.Question)
	if question == "" {
		return nil, ErrEmptyQuestion
	}

	started := time.Now()

	profile := s.classifier.Classify(question)
	s.resolveBrand(&profile)
	s.resolveItem(&profile)

	answer := &domain.Answer{
		Question: question,
		Focus:    profile.Focus,
		Intent:   profile.Intent,
		Brand:    profile.Brand,
		ItemCode: profile.ItemCode,
		YearFrom: profile.YearFrom,
		YearTo:   profile.YearTo,
	}

	var err error
	switch {
	case profile.Intent.NeedsEnhanced():
		err = s.answerEnhanced(profile, answer)
	case profile.Investigate && profile.Brand != "":
		err = s.answerBrandAnalysis(profile, answer)
	default:
		err = s.answerGenerated(ctx, profile, answer)
	}
	if err != nil {
		return nil, err
	}

	s.narrate(ctx, answer)

	answer.ID, err = utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("generating answer id: %w", err)
	}
	answer.CreatedAt = time.Now().UTC()
	answer.DurationMs = time.Since(started).Milliseconds()

	if err := s.answerRepository.SaveAnswer(answer); err != nil {
		return nil, err
	}

	return answer, nil
}

func (s *Service) GetAnswer(id string) (*domain.Answer, error) {
	return s.answerRepository.GetAnswerByID(id)
}

func (s *Service) RecentAnswers(limit uint64) ([]*domain.Answer, error) {
	if limit == 0 {
		limit = defaultAnswerLimit
	}
	if limit > maxAnswerLimit {
		limit = maxAnswerLimit
	}

	return s.answerRepository.ListAnswers(limit)
}

// resolveBrand matches the question against the catalog brand list. A failed
// catalog read degrades to alias-only detection instead of failing the
// question.
func (s *Service) resolveBrand(profile *domain.QuestionProfile) {
	brands, err := s.salesRepository.ListBrands()
	if err != nil {
		logrus.WithError(err).Warn("listing brands for detection failed")
	}

	profile.Brand, profile.BrandMasked = s.classifier.DetectBrand(profile.Question, brands)
}

// resolveItem verifies the detected item candidates against the catalog.
// Quoted fragments are tried as exact codes first, then as description
// fragments when long enough to be distinctive.
func (s *Service) resolveItem(profile *domain.QuestionProfile) {
	candidates := s.classifier.DetectItemCandidates(profile.Question)

	for _, quoted := range candidates.Quoted {
		item, err := s.salesRepository.FindItemByCode(quoted)
		if err != nil {
			logrus.WithError(err).Warn("item lookup failed")
			continue
		}
		if item == nil && len(quoted) > 4 {
			item, err = s.salesRepository.FindItemByDesc(quoted)
			if err != nil {
				logrus.WithError(err).Warn("item lookup failed")
				continue
			}
		}
		if item != nil {
			profile.ItemCode = item.Code
			return
		}
	}

	for _, code := range candidates.Codes {
		item, err := s.salesRepository.FindItemByCode(code)
		if err != nil {
			logrus.WithError(err).Warn("item lookup failed")
			continue
		}
		if item != nil {
			profile.ItemCode = item.Code
			return
		}
	}
}

func (s *Service) answerEnhanced(profile domain.QuestionProfile, answer *domain.Answer) error {
	switch profile.Intent {
	case domain.IntentCoverage:
		return s.coverageAnswer(profile, answer)
	case domain.IntentCoverageLoss:
		return s.coverageLossAnswer(profile, answer)
	case domain.IntentComparison:
		return s.comparisonAnswer(profile, answer)
	case domain.IntentOOS:
		return s.oosAnswer(profile, answer)
	case domain.IntentPattern:
		return s.patternAnswer(profile, answer)
	case domain.IntentSupplyChain:
		return s.supplyChainAnswer(profile, answer)
	}

	return fmt.Errorf("unhandled intent %q", profile.Intent)
}

func (s *Service) coverageAnswer(profile domain.QuestionProfile, answer *domain.Answer) error {
	if profile.Brand != "" {
		report, err := s.analyzer.Coverage(domain.CoverageBrand, profile.Brand, profile.BrandMasked, nil, "")
		if err != nil {
			return err
		}

		answer.Summary = fmt.Sprintf("Coverage analysis for %s over 1Y, 2Y, 3Y, 4Y", profile.Brand)
		answer.Sections = append(answer.Sections, coverageSection(report))
		return nil
	}

	report, err := s.analyzer.Coverage(domain.CoverageCompany, "", false, nil, "")
	if err != nil {
		return err
	}

	answer.Summary = "Company-wide coverage analysis over 1Y, 2Y, 3Y, 4Y"
	answer.Sections = append(answer.Sections, coverageSection(report))
	return nil
}

func (s *Service) coverageLossAnswer(profile domain.QuestionProfile, answer *domain.Answer) error {
	switch {
	case profile.ItemCode != "":
		lost, err := s.analyzer.CoverageLoss(
			domain.CoverageItem, profile.ItemCode, false,
			lossRecentMonths, lossHistoricalMonths, lossLimit,
		)
		if err != nil {
			return err
		}

		answer.Summary = fmt.Sprintf("Accounts that bought item %s historically but not recently", profile.ItemCode)
		answer.Sections = append(answer.Sections, lostAccountsSection(lost))

	case profile.Brand != "":
		lost, err := s.analyzer.CoverageLoss(
			domain.CoverageBrand, profile.Brand, profile.BrandMasked,
			lossRecentMonths, lossHistoricalMonths, lossLimit,
		)
		if err != nil {
			return err
		}

		movement, err := s.analyzer.CoverageMovement(
			domain.CoverageBrand, profile.Brand, profile.BrandMasked, lossRecentMonths,
		)
		if err != nil {
			return err
		}

		answer.Summary = fmt.Sprintf("Accounts that bought %s historically but not recently", profile.Brand)
		answer.Sections = append(answer.Sections, lostAccountsSection(lost), movementSection(movement))

	default:
		answer.Summary = "Please specify a brand or item for coverage loss analysis"
	}

	return nil
}

func (s *Service) comparisonAnswer(profile domain.QuestionProfile, answer *domain.Answer) error {
	if profile.Brand == "" {
		answer.Summary = "Please specify a brand to compare with company coverage"
		return nil
	}

	comparison, err := s.analyzer.BrandVsCompany(brandFilter(profile), nil)
	if err != nil {
		return err
	}

	answer.Summary = fmt.Sprintf("Comparison: %s coverage vs company coverage", profile.Brand)
	answer.Sections = append(answer.Sections, comparisonSection(comparison))
	return nil
}

func (s *Service) oosAnswer(profile domain.QuestionProfile, answer *domain.Answer) error {
	lower := strings.ToLower(profile.Question)
	days := profile.WindowDays

	classification := false
	for _, wording := range declineWordings {
		if strings.Contains(lower, wording) {
			classification = true
			break
		}
	}

	switch {
	case classification && profile.ItemCode != "":
		cause, err := s.analyzer.ClassifyDeclineCause(profile.ItemCode)
		if err != nil {
			return err
		}

		answer.Summary = fmt.Sprintf("Decline classification for item %s: %s", profile.ItemCode, cause)
		answer.Sections = append(answer.Sections, declineCauseSection(profile.ItemCode, cause))

	case profile.Brand != "":
		items, err := s.analyzer.DetectOOS(brandFilter(profile), days, oosMinHistorical)
		if err != nil {
			return err
		}

		stoppages, err := s.analyzer.WidespreadStoppage(brandFilter(profile), stoppageMinAccounts, days)
		if err != nil {
			return err
		}

		answer.Summary = fmt.Sprintf("Potential out-of-stock items for %s (last %d days)", profile.Brand, days)
		answer.Sections = append(answer.Sections, oosSection(items), stoppagesSection(stoppages))

	default:
		items, err := s.analyzer.DetectOOS(domain.BrandFilter{}, days, oosMinHistorical)
		if err != nil {
			return err
		}

		answer.Summary = fmt.Sprintf("Potential out-of-stock items across all brands (last %d days)", days)
		answer.Sections = append(answer.Sections, oosSection(items))
	}

	return nil
}

func (s *Service) patternAnswer(profile domain.QuestionProfile, answer *domain.Answer) error {
	lower := strings.ToLower(profile.Question)

	switch {
	case strings.Contains(lower, "overstock") || strings.Contains(lower, "risk"):
		risks, err := s.analyzer.OverstockRisk(domain.BrandFilter{}, overstockDays)
		if err != nil {
			return err
		}

		answer.Summary = "Accounts at risk of overstock (high recent loading, no reorder)"
		answer.Sections = append(answer.Sections, overstockSection(risks))

	case profile.Brand != "":
		seasonal, err := s.analyzer.SeasonalItems(brandFilter(profile), seasonalMinSales, seasonalMonths)
		if err != nil {
			return err
		}

		anomalies, err := s.analyzer.Anomalies(brandFilter(profile), anomalyMonths, anomalyThreshold)
		if err != nil {
			return err
		}

		answer.Summary = fmt.Sprintf("Seasonal items for %s", profile.Brand)
		answer.Sections = append(answer.Sections, seasonalSection(seasonal), anomaliesSection(anomalies))

	case profile.ItemCode != "":
		report, err := s.analyzer.ClassifyPattern(domain.CoverageItem, profile.ItemCode, false, patternMonths)
		if err != nil {
			return err
		}

		answer.Summary = fmt.Sprintf(
			"Pattern analysis for item %s: %s. %s",
			profile.ItemCode, report.Pattern, report.PlanningImplication,
		)
		answer.Sections = append(answer.Sections, patternSection(report))
		if len(report.MonthlyData) > 0 {
			answer.Sections = append(answer.Sections, monthlySeriesSection(report.MonthlyData))
		}

	default:
		seasonal, err := s.analyzer.SeasonalItems(domain.BrandFilter{}, seasonalMinSales, seasonalMonths)
		if err != nil {
			return err
		}

		answer.Summary = "Seasonal items across all brands"
		answer.Sections = append(answer.Sections, seasonalSection(seasonal))
	}

	return nil
}

func (s *Service) supplyChainAnswer(profile domain.QuestionProfile, answer *domain.Answer) error {
	if profile.Brand == "" {
		answer.Summary = "Please specify a brand for supply chain analysis"
		return nil
	}

	report, err := s.analyzer.SupplyChainDashboard(brandFilter(profile), dashboardDays)
	if err != nil {
		return err
	}

	answer.Summary = fmt.Sprintf("Supply chain dashboard for %s", profile.Brand)

	supplyIssues := stoppagesSection(report.SupplyIssues)
	supplyIssues.Name = "supply_issues"

	answer.Sections = append(answer.Sections,
		oosSection(report.OOSItems),
		supplyIssues,
		lostAccountsSection(report.CoverageLoss),
		seasonalSection(report.SeasonalItems),
		anomaliesSection(report.Anomalies),
	)

	return nil
}

func (s *Service) answerBrandAnalysis(profile domain.QuestionProfile, answer *domain.Answer) error {
	analysis, err := s.analyzer.BrandAnalysis(profile)
	if err != nil {
		return err
	}

	answer.Summary = fmt.Sprintf(
		"%s %d vs %d: AED %s to AED %s (%+.2f%%)",
		analysis.Brand, analysis.YearFrom, analysis.YearTo,
		utils.FormatAmount(analysis.Summary.TotalY1),
		utils.FormatAmount(analysis.Summary.TotalY2),
		analysis.Summary.GrowthPct,
	)
	answer.Sections = analysisSections(analysis)

	return nil
}

// answerGenerated is the free-form path: the model writes one SELECT, the
// guard checks it, and a failed execution gets exactly one corrected retry.
func (s *Service) answerGenerated(ctx context.Context, profile domain.QuestionProfile, answer *domain.Answer) error {
	if !s.integrator.Enabled() {
		return ErrIntegratorDisabled
	}

	generated, err := s.integrator.GenerateSQL(ctx, profile.Question)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrGeneration, err)
	}
	if err := validateSQL(generated); err != nil {
		return err
	}
	answer.GeneratedSQL = generated

	result, execErr := s.salesRepository.RunQuery(generated, queryRowLimit)
	if execErr != nil {
		fixed, fixErr := s.integrator.FixSQL(ctx, profile.Question, generated, execErr.Error())
		if fixErr != nil {
			return fmt.Errorf("%w: %w", ErrGeneration, fixErr)
		}
		if err := validateSQL(fixed); err != nil {
			return err
		}
		answer.GeneratedSQL = fixed

		result, execErr = s.salesRepository.RunQuery(fixed, queryRowLimit)
		if execErr != nil {
			return fmt.Errorf("%w: %w", ErrExecution, execErr)
		}
	}

	section := resultSetSection(result)
	answer.Summary = section.Caption
	answer.Sections = append(answer.Sections, section)

	return nil
}

func (s *Service) narrate(ctx context.Context, answer *domain.Answer) {
	if !s.integrator.Enabled() {
		return
	}

	digest := renderDigest(answer)
	if digest == "" {
		return
	}

	narrative, err := s.integrator.Narrate(ctx, answer.Question, digest)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"intent": answer.Intent,
			"brand":  answer.Brand,
		}).Warn("narrative generation failed, returning digest-only answer")
		return
	}

	answer.Narrative = narrative
}

func brandFilter(profile domain.QuestionProfile) domain.BrandFilter {
	return domain.BrandFilter{Brand: profile.Brand, Masked: profile.BrandMasked}
}
