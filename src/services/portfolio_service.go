package services

import (
	"context"
	"fmt"
	"time"

	"networth/src/models"
	"networth/src/repositories"
	"networth/src/schemas"
	"networth/src/utils"

	"github.com/jackc/pgx/v5"
)

// TxBeginner is the slice of pgxpool.Pool the recompute run needs to open
// its all-or-nothing write transaction.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type PortfolioServiceI interface {
	Recompute(ctx context.Context, periodKey string) (*schemas.RecomputeSummary, error)
	GetAggregatedHoldings(ctx context.Context) ([]models.AggregatedHolding, error)
	GetSnapshots(ctx context.Context, fromKey, toKey string) ([]models.PeriodicSnapshot, error)
}

type PortfolioService struct {
	baseCurrency string
	rules        ClassificationRules

	db                 TxBeginner
	rawHoldingRepo     repositories.RawHoldingRepository
	quoteRepo          repositories.QuoteRepository
	rateRepo           repositories.ExchangeRateRepository
	otherAssetRepo     repositories.OtherAssetRepository
	accountBalanceRepo repositories.AccountBalanceRepository
	aggregatedRepo     repositories.AggregatedHoldingRepository
	snapshotRepo       repositories.SnapshotRepository
	runLock            repositories.RunLockRepository
}

func NewPortfolioService(
	baseCurrency string,
	rules ClassificationRules,
	db TxBeginner,
	rawHoldingRepo repositories.RawHoldingRepository,
	quoteRepo repositories.QuoteRepository,
	rateRepo repositories.ExchangeRateRepository,
	otherAssetRepo repositories.OtherAssetRepository,
	accountBalanceRepo repositories.AccountBalanceRepository,
	aggregatedRepo repositories.AggregatedHoldingRepository,
	snapshotRepo repositories.SnapshotRepository,
	runLock repositories.RunLockRepository,
) *PortfolioService {
	return &PortfolioService{
		baseCurrency:       baseCurrency,
		rules:              rules,
		db:                 db,
		rawHoldingRepo:     rawHoldingRepo,
		quoteRepo:          quoteRepo,
		rateRepo:           rateRepo,
		otherAssetRepo:     otherAssetRepo,
		accountBalanceRepo: accountBalanceRepo,
		aggregatedRepo:     aggregatedRepo,
		snapshotRepo:       snapshotRepo,
		runLock:            runLock,
	}
}

// Recompute runs the full aggregation pipeline and persists the recomputed
// tables. periodKey may be empty, in which case today's key is used. When
// another run holds the lock the call is a no-op reported via
// Summary.Skipped, not an error.
func (s *PortfolioService) Recompute(ctx context.Context, periodKey string) (*schemas.RecomputeSummary, error) {
	logger := utils.LoggerFromContext(ctx)

	if periodKey == "" {
		periodKey = utils.PeriodKeyFor(time.Now())
	} else if _, err := utils.ParsePeriodKey(periodKey); err != nil {
		return nil, err
	}

	lock, acquired, err := s.runLock.TryAcquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire run lock: %w", err)
	}
	if !acquired {
		logger.Warn("recompute already in progress, skipping run")
		return &schemas.RecomputeSummary{PeriodKey: periodKey, Skipped: true}, nil
	}
	defer lock.Release(ctx)

	input, err := s.loadInput(ctx, periodKey)
	if err != nil {
		return nil, err
	}

	result := RunPipeline(s.rules, *input)

	// All writes land in one transaction: either the recomputed tables
	// replace the old ones entirely, or readers keep seeing the previous run.
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin write transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if err := s.aggregatedRepo.ReplaceAll(ctx, tx, result.Aggregated); err != nil {
		return nil, fmt.Errorf("failed to replace aggregated holdings: %w", err)
	}
	if err := s.snapshotRepo.Upsert(ctx, tx, &result.Snapshot); err != nil {
		return nil, fmt.Errorf("failed to upsert snapshot: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit recompute transaction: %w", err)
	}

	logger.WithFields(map[string]interface{}{
		"periodKey":     result.Summary.PeriodKey,
		"holdings":      result.Summary.HoldingsProcessed,
		"rowsSkipped":   result.Summary.RowsSkipped,
		"missingQuotes": result.Summary.MissingQuotes,
		"missingRates":  result.Summary.MissingRates,
		"netWorthBase":  result.Summary.TotalNetWorthBase,
	}).Info("recompute run completed")

	return &result.Summary, nil
}

func (s *PortfolioService) GetAggregatedHoldings(ctx context.Context) ([]models.AggregatedHolding, error) {
	return s.aggregatedRepo.GetAll(ctx)
}

func (s *PortfolioService) GetSnapshots(ctx context.Context, fromKey, toKey string) ([]models.PeriodicSnapshot, error) {
	if _, err := utils.ParsePeriodKey(fromKey); err != nil {
		return nil, err
	}
	if _, err := utils.ParsePeriodKey(toKey); err != nil {
		return nil, err
	}
	return s.snapshotRepo.GetRange(ctx, fromKey, toKey)
}

// loadInput reads all upstream tables. An unreadable table is a whole-run
// failure; there is no point aggregating half the inputs.
func (s *PortfolioService) loadInput(ctx context.Context, periodKey string) (*PipelineInput, error) {
	holdings, err := s.rawHoldingRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load raw holdings: %w", err)
	}
	quotes, err := s.quoteRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load quotes: %w", err)
	}
	rates, err := s.rateRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load exchange rates: %w", err)
	}
	otherAssets, err := s.otherAssetRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load other assets: %w", err)
	}
	balances, err := s.accountBalanceRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load account balances: %w", err)
	}

	return &PipelineInput{
		BaseCurrency:    s.baseCurrency,
		PeriodKey:       periodKey,
		Holdings:        holdings,
		Quotes:          quotes,
		Rates:           rates,
		OtherAssets:     otherAssets,
		AccountBalances: balances,
	}, nil
}
