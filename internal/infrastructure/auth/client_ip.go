package auth

import (
	"fmt"
	"net"
	"strings"
)

// ProxyTrust 信頼するリバースプロキシのアドレス範囲
// 接続元がこの範囲にある場合のみX-Forwarded-Forを参照する
type ProxyTrust struct {
	networks []*net.IPNet
}

// NewProxyTrust 単一IPまたはCIDRのリストからProxyTrustを作成
func NewProxyTrust(entries []string) (*ProxyTrust, error) {
	p := &ProxyTrust{}
	for _, entry := range entries {
		network, err := parseNetwork(entry)
		if err != nil {
			return nil, fmt.Errorf("invalid trusted proxy %q: %w", entry, err)
		}
		p.networks = append(p.networks, network)
	}
	return p, nil
}

// Networks 信頼済みの範囲を返す
func (p *ProxyTrust) Networks() []*net.IPNet {
	return p.networks
}

// Trusted ipが信頼済みプロキシかどうか
func (p *ProxyTrust) Trusted(ip string) bool {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return false
	}
	for _, network := range p.networks {
		if network.Contains(parsed) {
			return true
		}
	}
	return false
}

// ClientIP 接続元アドレスとX-Forwarded-Forからクライアントを決める
// 接続元が信頼済みでなければヘッダーは無視する。信頼済みなら右から辿り、最初の信頼外のアドレスを返す
func (p *ProxyTrust) ClientIP(remoteAddr string, forwardedFor []string) string {
	direct := HostOnly(remoteAddr)
	if !p.Trusted(direct) {
		return direct
	}

	var hops []string
	for _, value := range forwardedFor {
		for _, hop := range strings.Split(value, ",") {
			if hop = strings.TrimSpace(hop); hop != "" {
				hops = append(hops, hop)
			}
		}
	}
	for i := len(hops) - 1; i >= 0; i-- {
		if net.ParseIP(hops[i]) == nil {
			return direct
		}
		if !p.Trusted(hops[i]) {
			return hops[i]
		}
	}
	if len(hops) > 0 {
		return hops[0]
	}
	return direct
}

// HostOnly "host:port"からホスト部分を返す。ポートがなければそのまま
func HostOnly(addr string) string {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return host
}

// parseNetwork CIDRはそのまま、単一IPはホスト範囲として解析
func parseNetwork(entry string) (*net.IPNet, error) {
	entry = strings.TrimSpace(entry)
	if strings.Contains(entry, "/") {
		_, network, err := net.ParseCIDR(entry)
		return network, err
	}
	ip := net.ParseIP(entry)
	if ip == nil {
		return nil, fmt.Errorf("not an IP address")
	}
	bits := 128
	if v4 := ip.To4(); v4 != nil {
		ip, bits = v4, 32
	}
	return &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)}, nil
}
