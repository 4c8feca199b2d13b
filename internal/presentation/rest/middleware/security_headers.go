package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
)

const (
	apiCSP  = "default-src 'none'; frame-ancestors 'none'"
	docsCSP = "default-src 'self'; script-src 'self' 'unsafe-inline' https://unpkg.com https://cdn.jsdelivr.net; " +
		"style-src 'self' 'unsafe-inline' https://unpkg.com https://fonts.googleapis.com; " +
		"font-src 'self' https://fonts.gstatic.com; img-src 'self' data: https:"
	hsts = "max-age=31536000; includeSubDomains"
)

// 全レスポンス共通
var staticSecurityHeaders = [][2]string{
	{"X-Frame-Options", "DENY"},
	{"X-Content-Type-Options", "nosniff"},
	{"Referrer-Policy", "no-referrer"},
	{"Cross-Origin-Resource-Policy", "same-origin"},
}

// SecurityHeadersMiddleware セキュリティヘッダーを設定するミドルウェア。
// ドキュメント系のパスだけCDNを許可し、APIのレスポンスはキャッシュさせない
func SecurityHeadersMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			for _, kv := range staticSecurityHeaders {
				h.Set(kv[0], kv[1])
			}

			path := c.Request().URL.Path
			if isDocsPath(path) {
				h.Set("Content-Security-Policy", docsCSP)
			} else {
				h.Set("Content-Security-Policy", apiCSP)
			}
			// 残高や購入履歴はセッション固有
			if strings.HasPrefix(path, "/api/") {
				h.Set(echo.HeaderCacheControl, "no-store")
			}
			if c.Scheme() == "https" {
				h.Set(echo.HeaderStrictTransportSecurity, hsts)
			}

			return next(c)
		}
	}
}

func isDocsPath(path string) bool {
	return strings.HasPrefix(path, "/swagger") || path == "/redoc" || path == "/openapi.yaml"
}
