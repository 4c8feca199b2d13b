package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

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
	restmiddleware "game-store/internal/presentation/rest/middleware"
)

type structValidator struct {
	v *validator.Validate
}

func (sv structValidator) Validate(i interface{}) error { return sv.v.Struct(i) }

type fixture struct {
	t        *testing.T
	e        *echo.Echo
	session  *sessionapp.SessionApplicationService
	catalog  *catalogapp.CatalogApplicationService
	wallet   *walletapp.WalletApplicationService
	promo    *promoapp.PromoApplicationService
	purchase *purchaseapp.PurchaseApplicationService
	history  *historyapp.HistoryApplicationService
	support  *supportapp.SupportApplicationService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	jwtCfg := &config.JWTConfig{Secret: "test-secret", Issuer: "game-store", Expiration: time.Hour}
	logger := otelinfra.NewLoggerWithWriter(otel.Tracer("test"), io.Discard, otelinfra.LogLevelDebug)
	metrics, err := otelinfra.NewMetrics("test")
	require.NoError(t, err)

	s, err := seed.Default()
	require.NoError(t, err)

	replies := scheduler.New()
	t.Cleanup(func() { _ = replies.Close() })
	sessionRepo := memory.NewSessionRepository(time.Hour, 0, nil)
	t.Cleanup(func() { _ = sessionRepo.Close() })
	txRepo := memory.NewTransactionRepository()

	e := echo.New()
	e.Validator = structValidator{v: validator.New()}

	return &fixture{
		t:        t,
		e:        e,
		session:  sessionapp.NewSessionApplicationService(sessionRepo, txRepo, replies, jwtCfg, 5000, logger, metrics),
		catalog:  catalogapp.NewCatalogApplicationService(s.Catalog, sessionRepo, logger),
		wallet:   walletapp.NewWalletApplicationService(sessionRepo, txRepo, logger, metrics),
		promo:    promoapp.NewPromoApplicationService(s.Promos, sessionRepo, logger, metrics),
		purchase: purchaseapp.NewPurchaseApplicationService(service.NewPurchaseService(sessionRepo, s.Catalog), s.Catalog, sessionRepo, txRepo, logger, metrics),
		history:  historyapp.NewHistoryApplicationService(sessionRepo, txRepo, logger),
		support:  supportapp.NewSupportApplicationService(sessionRepo, replies, 10*time.Millisecond, logger, metrics),
	}
}

// startSession 新しいセッションを開始してIDを返す
func (f *fixture) startSession() string {
	f.t.Helper()
	resp, err := f.session.StartSession(context.Background())
	require.NoError(f.t, err)
	return resp.SessionID
}

// newContext リクエストを組み立てる。paramsはパスパラメータの名前と値の組
func (f *fixture) newContext(method, target, body, sessionID string, params ...string) (echo.Context, *httptest.ResponseRecorder) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := f.e.NewContext(req, rec)
	if sessionID != "" {
		c.Set(restmiddleware.SessionIDKey, sessionID)
	}
	if len(params) > 0 {
		var names, values []string
		for i := 0; i+1 < len(params); i += 2 {
			names = append(names, params[i])
			values = append(values, params[i+1])
		}
		c.SetParamNames(names...)
		c.SetParamValues(values...)
	}
	return c, rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}
