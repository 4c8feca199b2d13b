package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"game-store/internal/infrastructure/config"
)

var (
	// ErrMissingToken Authorizationヘッダーがない
	ErrMissingToken = errors.New("missing authorization header")
	// ErrMalformedHeader Bearer形式でない
	ErrMalformedHeader = errors.New("invalid authorization header format")
	// ErrInvalidToken 署名・発行者・有効期限のいずれかが不正
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrMissingSessionID session_idクレームがない
	ErrMissingSessionID = errors.New("missing session_id in token")
)

// SessionClaims セッショントークンのクレーム
type SessionClaims struct {
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

// SignSessionToken セッションIDを含むHS256トークンを発行
func SignSessionToken(cfg *config.JWTConfig, sessionID string, now time.Time) (string, error) {
	claims := SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.Expiration)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.Secret))
}

// VerifySessionToken トークンを検証してセッションIDを返す
func VerifySessionToken(cfg *config.JWTConfig, tokenString string) (string, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(cfg.Secret), nil
	}, jwt.WithIssuer(cfg.Issuer), jwt.WithExpirationRequired())
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.SessionID == "" {
		return "", ErrMissingSessionID
	}
	return claims.SessionID, nil
}

// BearerToken "Bearer <token>"形式のヘッダー値からトークンを取り出す
func BearerToken(header string) (string, error) {
	if header == "" {
		return "", ErrMissingToken
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || scheme != "Bearer" || token == "" || strings.Contains(token, " ") {
		return "", ErrMalformedHeader
	}
	return token, nil
}

// Authenticate Authorizationヘッダーを検証してセッションIDを返す
func Authenticate(cfg *config.JWTConfig, header string) (string, error) {
	token, err := BearerToken(header)
	if err != nil {
		return "", err
	}
	return VerifySessionToken(cfg, token)
}

// Reason クライアントに返す認証エラーの説明。内部の詳細は含めない
func Reason(err error) string {
	for _, known := range []error{ErrMissingToken, ErrMalformedHeader, ErrMissingSessionID, ErrInvalidToken} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	return ErrInvalidToken.Error()
}
