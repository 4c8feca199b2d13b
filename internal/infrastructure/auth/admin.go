package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"net"

	"game-store/internal/infrastructure/config"
)

var (
	ErrAdminDisabled = errors.New("admin API is disabled")
	ErrMissingAPIKey = errors.New("missing X-API-Key")
	ErrInvalidAPIKey = errors.New("invalid API key")
	ErrIPNotAllowed  = errors.New("IP address not allowed")
)

// AdminGuard 管理APIのアクセス制御
type AdminGuard struct {
	enabled  bool
	apiKey   []byte
	networks []*net.IPNet
}

// NewAdminGuard 許可リスト（単一IPまたはCIDR）を解析してAdminGuardを作成
func NewAdminGuard(cfg *config.AdminAPIConfig) (*AdminGuard, error) {
	g := &AdminGuard{
		enabled: cfg.Enabled,
		apiKey:  []byte(cfg.APIKey),
	}
	for _, entry := range cfg.AllowedIPs {
		network, err := parseNetwork(entry)
		if err != nil {
			return nil, fmt.Errorf("invalid allowed IP %q: %w", entry, err)
		}
		g.networks = append(g.networks, network)
	}
	return g, nil
}

// Check APIキーとクライアントIPを検証
func (g *AdminGuard) Check(apiKey, clientIP string) error {
	if !g.enabled {
		return ErrAdminDisabled
	}
	if apiKey == "" {
		return ErrMissingAPIKey
	}
	if subtle.ConstantTimeCompare([]byte(apiKey), g.apiKey) != 1 {
		return ErrInvalidAPIKey
	}
	if !g.IPAllowed(clientIP) {
		return ErrIPNotAllowed
	}
	return nil
}

// IPAllowed 許可リストが空なら常にtrue
func (g *AdminGuard) IPAllowed(ip string) bool {
	if len(g.networks) == 0 {
		return true
	}
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return false
	}
	for _, network := range g.networks {
		if network.Contains(parsed) {
			return true
		}
	}
	return false
}
