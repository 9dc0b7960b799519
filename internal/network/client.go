package network

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/proxy"

	"lingua/backend/internal/logger"
)

var ErrUnsupportedProxy = errors.New("unsupported proxy scheme")

// ClientFactory creates HTTP clients for outbound model calls, routed
// through the configured proxy when one is set.
type ClientFactory struct {
	proxy  *url.URL
	dialer proxy.Dialer // set for socks proxies only
}

// NewClientFactory creates a new client factory. proxyURL may be empty;
// otherwise it must be an http, https, socks5 or socks5h URL. SOCKS dialers
// are built here so a bad proxy fails startup instead of bypassing it.
func NewClientFactory(proxyURL string) (*ClientFactory, error) {
	f := &ClientFactory{}
	if proxyURL == "" {
		return f, nil
	}

	parsed, err := url.Parse(proxyURL)
	if err != nil {
		return nil, fmt.Errorf("parse proxy url: %w", err)
	}
	switch parsed.Scheme {
	case "http", "https", "socks5", "socks5h":
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedProxy, parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("parse proxy url: missing host")
	}
	f.proxy = parsed

	if strings.HasPrefix(parsed.Scheme, "socks") {
		dialer, err := newSOCKSDialer(parsed)
		if err != nil {
			return nil, fmt.Errorf("socks proxy: %w", err)
		}
		f.dialer = dialer
	}
	return f, nil
}

// NewHTTPClient creates a standard http.Client with proxy configuration.
func (f *ClientFactory) NewHTTPClient(timeout time.Duration) *http.Client {
	client := &http.Client{Timeout: timeout}
	if f.proxy != nil {
		client.Transport = f.NewHTTPTransport()
		logger.Info("proxy enabled", "module", "network", "action", "request", "resource", "http", "result", "ok", "scheme", f.proxy.Scheme, "host", f.proxy.Host)
	}
	return client
}

// NewHTTPTransport creates an http.Transport with proxy configuration.
// For SOCKS5 proxies, it dials through golang.org/x/net/proxy.
// For HTTP/HTTPS proxies, it uses the standard http.ProxyURL.
func (f *ClientFactory) NewHTTPTransport() *http.Transport {
	switch {
	case f.dialer != nil:
		dialer := f.dialer
		return &http.Transport{
			DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
				if cd, ok := dialer.(proxy.ContextDialer); ok {
					return cd.DialContext(ctx, network, addr)
				}
				return dialer.Dial(network, addr)
			},
		}
	case f.proxy != nil:
		return &http.Transport{Proxy: http.ProxyURL(f.proxy)}
	default:
		return &http.Transport{}
	}
}

func newSOCKSDialer(parsed *url.URL) (proxy.Dialer, error) {
	var auth *proxy.Auth
	if parsed.User != nil {
		auth = &proxy.Auth{
			User: parsed.User.Username(),
		}
		if password, ok := parsed.User.Password(); ok {
			auth.Password = password
		}
	}
	return proxy.SOCKS5("tcp", parsed.Host, auth, proxy.Direct)
}
