// Package network resolves the client address of a request.
//
// Forwarding headers are only believed when the connection comes from a
// trusted proxy. Loopback is always trusted: the site posts contact forms to
// its own API over loopback and forwards the visitor address.
package network

import (
	"fmt"
	"net"
	"net/http"
	"strings"
)

// Trusted is the set of proxy networks whose forwarding headers are
// honoured. A nil *Trusted trusts loopback only.
type Trusted struct {
	nets []*net.IPNet
}

// NewTrusted parses proxy addresses or CIDR ranges. Blank entries are skipped.
func NewTrusted(proxies ...string) (*Trusted, error) {
	t := &Trusted{}
	for _, p := range proxies {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if !strings.Contains(p, "/") {
			ip := net.ParseIP(p)
			if ip == nil {
				return nil, fmt.Errorf("trusted proxy %q: not an IP address", p)
			}
			bits := 128
			if ip.To4() != nil {
				ip, bits = ip.To4(), 32
			}
			t.nets = append(t.nets, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
			continue
		}
		_, n, err := net.ParseCIDR(p)
		if err != nil {
			return nil, fmt.Errorf("trusted proxy %q: %w", p, err)
		}
		t.nets = append(t.nets, n)
	}
	return t, nil
}

func (t *Trusted) trusts(ip net.IP) bool {
	if ip == nil {
		return false
	}
	if ip.IsLoopback() {
		return true
	}
	if t == nil {
		return false
	}
	for _, n := range t.nets {
		if n.Contains(ip) {
			return true
		}
	}
	return false
}

// ClientIP returns the originating client address. When the peer is
// trusted, X-Forwarded-For is walked from the right and the first untrusted
// hop wins; X-Real-IP is the fallback. Otherwise the peer address is the
// client and the headers are ignored.
func (t *Trusted) ClientIP(r *http.Request) string {
	peer := RemoteHost(r)
	if !t.trusts(net.ParseIP(peer)) {
		return peer
	}

	var hops []string
	for _, v := range r.Header.Values("X-Forwarded-For") {
		hops = append(hops, strings.Split(v, ",")...)
	}
	leftmost := ""
	for i := len(hops) - 1; i >= 0; i-- {
		hop := canonicalIP(hops[i])
		if hop == "" {
			break
		}
		if !t.trusts(net.ParseIP(hop)) {
			return hop
		}
		leftmost = hop
	}
	if leftmost != "" {
		return leftmost
	}
	if ip := canonicalIP(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}
	return peer
}

// RealIP replaces r.RemoteAddr with ClientIP so later handlers and logs see
// the client. It takes the place of chi's RealIP, which trusts any sender.
func (t *Trusted) RealIP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ip := t.ClientIP(r); ip != "" {
			r.RemoteAddr = ip
		}
		next.ServeHTTP(w, r)
	})
}

// RemoteHost returns the canonical host part of r.RemoteAddr, which may or
// may not carry a port.
func RemoteHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if ip := canonicalIP(host); ip != "" {
		return ip
	}
	return host
}

func canonicalIP(s string) string {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil {
		return ""
	}
	return ip.String()
}
