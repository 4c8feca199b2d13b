package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	catalogapp "game-store/internal/application/catalog"
	historyapp "game-store/internal/application/history"
	promoapp "game-store/internal/application/promo"
	purchaseapp "game-store/internal/application/purchase"
	sessionapp "game-store/internal/application/session"
	supportapp "game-store/internal/application/support"
	walletapp "game-store/internal/application/wallet"
	"game-store/internal/infrastructure/auth"
	"game-store/internal/infrastructure/config"
	otelinfra "game-store/internal/infrastructure/observability/otel"
	"game-store/internal/presentation/rest/handler"
	restmiddleware "game-store/internal/presentation/rest/middleware"
)

// Services ルーターが公開するアプリケーションサービス群
type Services struct {
	Session  *sessionapp.SessionApplicationService
	Catalog  *catalogapp.CatalogApplicationService
	Wallet   *walletapp.WalletApplicationService
	Promo    *promoapp.PromoApplicationService
	Purchase *purchaseapp.PurchaseApplicationService
	History  *historyapp.HistoryApplicationService
	Support  *supportapp.SupportApplicationService
}

// Router REST APIルーター
type Router struct {
	echo *echo.Echo
}

// NewRouter 新しいRouterを作成
func NewRouter(
	cfg *config.Config,
	logger *otelinfra.Logger,
	metrics *otelinfra.Metrics,
	services Services,
) (*Router, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.Server.IdleTimeout = cfg.Server.IdleTimeout
	e.Validator = newRequestValidator()

	// エラーはErrorHandlerMiddlewareでレスポンスに変換済み。
	// ルーティング前のエラー（404/405など）だけここに届く
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		code := http.StatusInternalServerError
		message := http.StatusText(code)
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			if m, ok := he.Message.(string); ok {
				message = m
			}
		}
		_ = c.JSON(code, restmiddleware.ErrorResponse{
			Error:   http.StatusText(code),
			Message: message,
		})
	}

	proxyTrust, err := auth.NewProxyTrust(cfg.Server.TrustedProxies)
	if err != nil {
		return nil, fmt.Errorf("failed to configure trusted proxies: %w", err)
	}
	e.IPExtractor = ipExtractor(proxyTrust)

	adminGuard, err := auth.NewAdminGuard(&cfg.AdminAPI)
	if err != nil {
		return nil, fmt.Errorf("failed to configure admin API: %w", err)
	}

	setupMiddleware(e, logger, metrics)
	setupRoutes(e, cfg, logger, adminGuard, services)
	SetupSwagger(e)

	return &Router{echo: e}, nil
}

// ipExtractor 信頼済みプロキシがなければ接続元アドレスのみを使う
func ipExtractor(trust *auth.ProxyTrust) echo.IPExtractor {
	networks := trust.Networks()
	if len(networks) == 0 {
		return echo.ExtractIPDirect()
	}
	opts := []echo.TrustOption{
		echo.TrustLoopback(false),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(false),
	}
	for _, network := range networks {
		opts = append(opts, echo.TrustIPRange(network))
	}
	return echo.ExtractIPFromXFFHeader(opts...)
}

// setupMiddleware ミドルウェアを設定
func setupMiddleware(e *echo.Echo, logger *otelinfra.Logger, metrics *otelinfra.Metrics) {
	e.Use(middleware.Recover())

	// CORS設定
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"}, // 本番環境では適切に設定
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, "X-API-Key"},
	}))

	e.Use(middleware.RequestID())
	e.Use(restmiddleware.SecurityHeadersMiddleware())
	e.Use(restmiddleware.TracingMiddleware())
	e.Use(restmiddleware.LoggingMiddleware(logger))
	e.Use(restmiddleware.MetricsMiddleware(metrics))

	// 最内側でドメインエラーをHTTPレスポンスに変換
	e.Use(restmiddleware.ErrorHandlerMiddleware(logger))
}

// setupRoutes ルーティングを設定
func setupRoutes(e *echo.Echo, cfg *config.Config, logger *otelinfra.Logger, adminGuard *auth.AdminGuard, services Services) {
	sessionHandler := handler.NewSessionHandler(services.Session)
	catalogHandler := handler.NewCatalogHandler(services.Catalog)
	walletHandler := handler.NewWalletHandler(services.Wallet)
	promoHandler := handler.NewPromoHandler(services.Promo, services.Session)
	purchaseHandler := handler.NewPurchaseHandler(services.Purchase)
	historyHandler := handler.NewHistoryHandler(services.History)
	supportHandler := handler.NewSupportHandler(services.Support)
	adminHandler := handler.NewAdminHandler(services.Promo, services.Session)

	api := e.Group("/api/v1")

	// 認証不要
	api.POST("/sessions", sessionHandler.StartSession)
	api.GET("/genres", catalogHandler.ListGenres)
	api.GET("/wallet/presets", walletHandler.ListPresets)
	api.GET("/promo-codes/:code", promoHandler.ResolveCode)

	// セッショントークンが必要
	authGroup := api.Group("", restmiddleware.AuthMiddleware(&cfg.JWT, logger))

	authGroup.GET("/session", sessionHandler.GetSession)
	authGroup.DELETE("/session", sessionHandler.EndSession)

	authGroup.GET("/catalog", catalogHandler.ListItems)
	authGroup.GET("/catalog/:item_id", catalogHandler.GetItem)
	authGroup.GET("/catalog/:item_id/quote", purchaseHandler.Quote)
	authGroup.POST("/purchases", purchaseHandler.Purchase)

	authGroup.GET("/wallet", walletHandler.GetBalance)
	authGroup.POST("/wallet/topup", walletHandler.TopUp)

	authGroup.GET("/promo", promoHandler.GetActive)
	authGroup.PUT("/promo", promoHandler.ApplyCode)
	authGroup.DELETE("/promo", promoHandler.ClearCode)

	authGroup.GET("/transactions", historyHandler.GetTransactionHistory)
	authGroup.GET("/library", historyHandler.GetLibrary)

	authGroup.GET("/support/messages", supportHandler.GetTranscript)
	authGroup.POST("/support/messages", supportHandler.SendMessage)

	// 管理API（APIキー認証）
	adminGroup := api.Group("/admin", restmiddleware.APIKeyMiddleware(adminGuard, logger))
	adminGroup.GET("/promo-codes", adminHandler.ListPromoCodes)
	adminGroup.GET("/sessions/count", adminHandler.CountSessions)

	// ヘルスチェックエンドポイント（認証不要）
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
}

// ServeHTTP http.Handlerの実装（テスト用）
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.echo.ServeHTTP(w, req)
}

// Start サーバーを起動
func (r *Router) Start(address string) error {
	return r.echo.Start(address)
}

// Shutdown 処理中のリクエストを待ってサーバーを停止
func (r *Router) Shutdown(ctx context.Context) error {
	return r.echo.Shutdown(ctx)
}
