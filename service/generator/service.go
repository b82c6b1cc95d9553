package generator

import (
	"math/rand"
	"time"

	"github.com/ClaudiaCodeLab/DemoMB/config"
	"github.com/ClaudiaCodeLab/DemoMB/model"
	"go.uber.org/zap"
)

//go:generate moq -out sink_mocks_test.go . RecordSink

// RecordSink consumes rows of one output stream. Implementations own the
// destination; a returned error aborts the run immediately.
type RecordSink interface {
	Write(row []string) error
}

// Sinks groups the three output streams of one run.
type Sinks struct {
	Customers RecordSink
	Marketing RecordSink
	Product   RecordSink
}

// Summary holds the per-stage row counts of one run.
type Summary struct {
	Customers   int
	Impressions int
	Clicks      int
	Leads       int

	Accounts             int
	Cards                int
	LoanApplications     int
	LoanApprovals        int
	MortgageApplications int
	MortgageApprovals    int
}

// Service generates the three synthetic funnel datasets in one
// deterministic pass over a single seeded random source: customers,
// then marketing events, then product events.
type Service struct {
	conf   config.GeneratorConfig
	logger *zap.Logger

	rng *rand.Rand
	now time.Time

	customers  []model.Customer
	registry   *Registry
	firstLeads map[string]model.FirstLead
}

// NewService creates a Service. now anchors the lookback window, so
// identical (seed, customers, days, now) inputs reproduce every row.
func NewService(conf config.GeneratorConfig, now time.Time, logger *zap.Logger) *Service {
	return &Service{
		conf:       conf,
		logger:     logger,
		rng:        rand.New(rand.NewSource(conf.Seed)),
		now:        now.UTC(),
		firstLeads: map[string]model.FirstLead{},
	}
}

// Run executes the full pass. The draw order is fixed and must not
// change: campaign pool first, then per customer profile draws, then per
// customer marketing draws, then per customer product draws, customers
// iterated in creation order throughout.
func (s *Service) Run(sinks Sinks) (Summary, error) {
	var sum Summary

	s.registry = NewRegistry(s.rng)

	if err := s.generateCustomers(sinks.Customers, &sum); err != nil {
		return sum, err
	}
	s.logger.Info("customers generated", zap.Int("count", sum.Customers))

	if err := s.generateMarketing(sinks.Marketing, &sum); err != nil {
		return sum, err
	}
	s.logger.Info("marketing events generated",
		zap.Int("impressions", sum.Impressions),
		zap.Int("clicks", sum.Clicks),
		zap.Int("leads", sum.Leads),
	)

	if err := s.generateProduct(sinks.Product, &sum); err != nil {
		return sum, err
	}
	s.logger.Info("product events generated",
		zap.Int("accounts", sum.Accounts),
		zap.Int("cards", sum.Cards),
		zap.Int("loanApplications", sum.LoanApplications),
		zap.Int("loanApprovals", sum.LoanApprovals),
		zap.Int("mortgageApplications", sum.MortgageApplications),
		zap.Int("mortgageApprovals", sum.MortgageApprovals),
	)

	return sum, nil
}

// randBetween draws a uniform integer in [lo, hi], both inclusive.
func randBetween(rng *rand.Rand, lo int, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}
