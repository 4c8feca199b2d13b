package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	catalogapp "game-store/internal/application/catalog"
	historyapp "game-store/internal/application/history"
	promoapp "game-store/internal/application/promo"
	purchaseapp "game-store/internal/application/purchase"
	sessionapp "game-store/internal/application/session"
	supportapp "game-store/internal/application/support"
	walletapp "game-store/internal/application/wallet"
	"game-store/internal/domain/service"
	"game-store/internal/infrastructure/config"
	otelinfra "game-store/internal/infrastructure/observability/otel"
	"game-store/internal/infrastructure/persistence/memory"
	"game-store/internal/infrastructure/scheduler"
	"game-store/internal/infrastructure/seed"
	grpcserver "game-store/internal/presentation/grpc"
	grpchandler "game-store/internal/presentation/grpc/handler"
	"game-store/internal/presentation/rest"
)

func main() {
	// 設定の読み込み
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// OpenTelemetryの初期化
	otelShutdown, err := otelinfra.Setup(context.Background(), &cfg.OpenTelemetry)
	if err != nil {
		log.Fatalf("Failed to initialize OpenTelemetry: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := otelShutdown(ctx); err != nil {
			log.Printf("Failed to shutdown OpenTelemetry: %v", err)
		}
	}()

	// ロガーとメトリクスの初期化
	tracer := otelinfra.Tracer("game-store")
	logger := otelinfra.NewLoggerWithWriter(tracer, os.Stderr, otelinfra.ParseLogLevel(cfg.LogLevel)).
		With(map[string]interface{}{
			"service":     cfg.OpenTelemetry.ServiceName,
			"environment": cfg.Environment,
		})
	metrics, err := otelinfra.NewMetrics("game-store")
	if err != nil {
		log.Fatalf("Failed to create metrics: %v", err)
	}

	// カタログとプロモコードの読み込み
	storeSeed, err := seed.Load(cfg.Store.CatalogFile)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	// サポート返信のスケジューラー
	replies := scheduler.New()

	// リポジトリの初期化。期限切れの通知先はセッションサービス生成後に決まる
	var expireHandler atomic.Pointer[sessionapp.SessionApplicationService]
	sessionRepo := memory.NewSessionRepository(cfg.Store.SessionTTL, cfg.Store.SessionSweepInterval, func(sessionID string) {
		if h := expireHandler.Load(); h != nil {
			h.HandleExpired(sessionID)
		}
	})
	transactionRepo := memory.NewTransactionRepository()

	// ドメインサービスの初期化
	purchaseService := service.NewPurchaseService(sessionRepo, storeSeed.Catalog)

	// アプリケーションサービスの初期化
	sessionAppService := sessionapp.NewSessionApplicationService(
		sessionRepo,
		transactionRepo,
		replies,
		&cfg.JWT,
		cfg.Store.InitialBalance,
		logger,
		metrics,
	)
	expireHandler.Store(sessionAppService)
	catalogAppService := catalogapp.NewCatalogApplicationService(storeSeed.Catalog, sessionRepo, logger)
	walletAppService := walletapp.NewWalletApplicationService(sessionRepo, transactionRepo, logger, metrics)
	promoAppService := promoapp.NewPromoApplicationService(storeSeed.Promos, sessionRepo, logger, metrics)
	purchaseAppService := purchaseapp.NewPurchaseApplicationService(
		purchaseService,
		storeSeed.Catalog,
		sessionRepo,
		transactionRepo,
		logger,
		metrics,
	)
	historyAppService := historyapp.NewHistoryApplicationService(sessionRepo, transactionRepo, logger)
	supportAppService := supportapp.NewSupportApplicationService(
		sessionRepo,
		replies,
		cfg.Store.SupportReplyDelay,
		logger,
		metrics,
	)

	// REST APIルーターの初期化
	router, err := rest.NewRouter(cfg, logger, metrics, rest.Services{
		Session:  sessionAppService,
		Catalog:  catalogAppService,
		Wallet:   walletAppService,
		Promo:    promoAppService,
		Purchase: purchaseAppService,
		History:  historyAppService,
		Support:  supportAppService,
	})
	if err != nil {
		log.Fatalf("Failed to create router: %v", err)
	}

	// gRPCサーバーの初期化
	grpcSrv, err := grpcserver.NewServer(cfg, logger, metrics, grpchandler.Services{
		Session:  sessionAppService,
		Catalog:  catalogAppService,
		Wallet:   walletAppService,
		Promo:    promoAppService,
		Purchase: purchaseAppService,
		History:  historyAppService,
		Support:  supportAppService,
	})
	if err != nil {
		log.Fatalf("Failed to create gRPC server: %v", err)
	}

	address := fmt.Sprintf(":%d", cfg.Server.Port)

	// グレースフルシャットダウンの設定
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info(context.Background(), "REST API server starting", map[string]interface{}{
			"address": address,
		})
		if err := router.Start(address); err != nil {
			logger.Warn(context.Background(), "REST API server stopped", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}()

	go func() {
		if err := grpcSrv.Start(); err != nil {
			logger.Error(context.Background(), "gRPC server error", err, nil)
		}
	}()

	<-quit
	logger.Info(context.Background(), "Shutting down servers", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := router.Shutdown(shutdownCtx); err != nil {
		logger.Error(shutdownCtx, "Error shutting down REST API server", err, nil)
	}
	if err := grpcSrv.Stop(shutdownCtx); err != nil {
		logger.Error(shutdownCtx, "Error shutting down gRPC server", err, nil)
	}

	// 未送信のサポート返信を破棄してから期限切れの掃除を止める
	if err := replies.Close(); err != nil {
		logger.Error(shutdownCtx, "Error stopping reply scheduler", err, nil)
	}
	if err := sessionRepo.Close(); err != nil {
		logger.Error(shutdownCtx, "Error stopping session repository", err, nil)
	}

	logger.Info(context.Background(), "Servers stopped", nil)
}
