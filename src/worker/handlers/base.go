package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"networth/src/clients/fx"
	"networth/src/clients/quotes"
	"networth/src/config"
	"networth/src/database"
	"networth/src/repositories"
	"networth/src/services"
	"networth/src/utils"
	redis_utils "networth/src/utils/redis"
	"networth/src/worker/controllers"

	"github.com/sirupsen/logrus"
)

type Handler struct {
	Controller *controllers.Controller
}

func NewHandler(cfg *config.Config) (*Handler, error) {
	logLevel, err := logrus.ParseLevel(cfg.Service.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger := utils.NewLogger(logLevel, false, "")

	db, err := database.SetupDB(cfg)
	if err != nil {
		return nil, err
	}

	rules, err := services.LoadClassificationRules(cfg.Portfolio.ClassificationRulesFile)
	if err != nil {
		return nil, err
	}

	rawHoldingRepo := repositories.NewRawHoldingRepository(db)
	quoteRepo := repositories.NewQuoteRepository(db)
	rateRepo := repositories.NewExchangeRateRepository(db)
	otherAssetRepo := repositories.NewOtherAssetRepository(db)
	accountBalanceRepo := repositories.NewAccountBalanceRepository(db)
	aggregatedRepo := repositories.NewAggregatedHoldingRepository(db)
	snapshotRepo := repositories.NewSnapshotRepository(db)
	runLock := repositories.NewRunLockRepository(db, cfg.Portfolio.RunLockKey)

	portfolioService := services.NewPortfolioService(
		cfg.Portfolio.BaseCurrency,
		rules,
		db,
		rawHoldingRepo,
		quoteRepo,
		rateRepo,
		otherAssetRepo,
		accountBalanceRepo,
		aggregatedRepo,
		snapshotRepo,
		runLock,
	)

	var cache *redis_utils.RedisHandler
	if cfg.Databases.Redis.Host != "" {
		cache, err = redis_utils.NewRedisHandler(cfg)
		if err != nil {
			return nil, err
		}
	}

	syncService := services.NewSyncService(
		cfg.Portfolio.BaseCurrency,
		quotes.NewClient(cfg, cache),
		fx.NewClient(cfg, cache),
		rawHoldingRepo,
		otherAssetRepo,
		accountBalanceRepo,
		quoteRepo,
		rateRepo,
	)

	controller := controllers.NewController(portfolioService, syncService, logger)

	if cfg.Portfolio.RecomputeCron != "" {
		if err := controller.ScheduleRecompute(cfg.Portfolio.RecomputeCron); err != nil {
			return nil, err
		}
	}
	if cfg.Portfolio.MarketRefreshCron != "" {
		if err := controller.ScheduleMarketRefresh(cfg.Portfolio.MarketRefreshCron); err != nil {
			return nil, err
		}
	}

	return &Handler{Controller: controller}, nil
}

func (h *Handler) respond(w http.ResponseWriter, _ *http.Request, data interface{}, status int) {
	res, err := json.Marshal(data)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write(res)
}

func (h *Handler) HandleErrors(w http.ResponseWriter, err error) {
	var httpErr *utils.HTTPError
	if errors.Is(err, context.DeadlineExceeded) {
		h.respond(w, nil, map[string]string{"error": "Request timed out"}, http.StatusGatewayTimeout)
	} else if errors.As(err, &httpErr) {
		h.respond(w, nil, map[string]string{"error": httpErr.Message}, httpErr.Code)
	} else if err != nil {
		h.respond(w, nil, map[string]string{"error": err.Error()}, http.StatusInternalServerError)
	} else {
		h.respond(w, nil, map[string]string{"error": "Unhandled error"}, http.StatusInternalServerError)
	}
}
