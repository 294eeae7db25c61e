// Package httpclient builds the outbound HTTP client: optional proxy
// routing and an opt-in browser TLS fingerprint for hosts that reject Go's
// default handshake.
package httpclient

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	utls "github.com/refraction-networking/utls"
	"golang.org/x/net/http2"
	"golang.org/x/net/proxy"
)

// Config controls transport construction.
type Config struct {
	Timeout time.Duration
	// ProxyURL routes every request through an http(s) or socks5(h) proxy.
	ProxyURL string
	// BrowserTLS dials HTTPS with a Chrome ClientHello. It cannot be combined
	// with a proxy.
	BrowserTLS bool
}

// New returns an *http.Client for cfg.
func New(cfg Config) (*http.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	if cfg.BrowserTLS {
		if cfg.ProxyURL != "" {
			return nil, fmt.Errorf("browser TLS cannot be combined with a proxy")
		}
		return &http.Client{Transport: newUTLSRoundTripper(), Timeout: timeout}, nil
	}

	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		MaxIdleConns:          20,
		MaxIdleConnsPerHost:   4,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		ForceAttemptHTTP2:     true,
	}

	if cfg.ProxyURL != "" {
		if err := applyProxy(transport, cfg.ProxyURL); err != nil {
			return nil, err
		}
	}

	return &http.Client{Transport: transport, Timeout: timeout}, nil
}

func applyProxy(transport *http.Transport, raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("parse proxy url: %w", err)
	}

	switch parsed.Scheme {
	case "socks5", "socks5h":
		dialer, err := proxy.FromURL(parsed, proxy.Direct)
		if err != nil {
			return fmt.Errorf("socks5 dialer: %w", err)
		}
		transport.Proxy = nil
		if contextDialer, ok := dialer.(proxy.ContextDialer); ok {
			transport.DialContext = contextDialer.DialContext
		} else {
			transport.Dial = dialer.Dial
		}
	case "http", "https":
		transport.Proxy = http.ProxyURL(parsed)
	default:
		return fmt.Errorf("unsupported proxy scheme %q", parsed.Scheme)
	}
	return nil
}

// utlsRoundTripper speaks HTTP/2 or HTTP/1.1 over a utls connection.
// HTTP/2 connections are kept per host and reused while they accept new
// streams; HTTP/1.1 connections close with the response body.
type utlsRoundTripper struct {
	dial        func(ctx context.Context, addr, serverName string) (net.Conn, string, error)
	h2Transport *http2.Transport
	fallback    http.RoundTripper

	mu    sync.Mutex
	conns map[string]*http2.ClientConn
}

func newUTLSRoundTripper() *utlsRoundTripper {
	dialer := &net.Dialer{
		Timeout:   30 * time.Second,
		KeepAlive: 60 * time.Second,
	}
	return &utlsRoundTripper{
		dial: func(ctx context.Context, addr, serverName string) (net.Conn, string, error) {
			return dialUTLS(ctx, dialer, addr, serverName)
		},
		h2Transport: &http2.Transport{IdleConnTimeout: 90 * time.Second},
		fallback:    http.DefaultTransport,
		conns:       make(map[string]*http2.ClientConn),
	}
}

// dialUTLS returns a handshaken connection and the negotiated ALPN protocol.
func dialUTLS(ctx context.Context, dialer *net.Dialer, addr, serverName string) (net.Conn, string, error) {
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, "", err
	}
	uconn := utls.UClient(conn, &utls.Config{ServerName: serverName}, utls.HelloChrome_Auto)
	if err := uconn.HandshakeContext(ctx); err != nil {
		conn.Close()
		return nil, "", err
	}
	return uconn, uconn.ConnectionState().NegotiatedProtocol, nil
}

func (t *utlsRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.URL.Scheme != "https" {
		return t.fallback.RoundTrip(req)
	}

	addr := req.URL.Host
	if req.URL.Port() == "" {
		addr = net.JoinHostPort(req.URL.Hostname(), "443")
	}

	if cc := t.idleConn(addr); cc != nil {
		return t.roundTripHTTP2(addr, cc, req)
	}

	conn, proto, err := t.dial(req.Context(), addr, req.URL.Hostname())
	if err != nil {
		return nil, err
	}

	if proto == http2.NextProtoTLS {
		cc, err := t.h2Transport.NewClientConn(conn)
		if err != nil {
			conn.Close()
			return nil, err
		}
		t.mu.Lock()
		t.conns[addr] = cc
		t.mu.Unlock()
		return t.roundTripHTTP2(addr, cc, req)
	}

	return roundTripHTTP1(conn, req)
}

// idleConn returns the cached HTTP/2 connection for addr if it can take
// another request, dropping it from the cache otherwise.
func (t *utlsRoundTripper) idleConn(addr string) *http2.ClientConn {
	t.mu.Lock()
	defer t.mu.Unlock()
	cc, ok := t.conns[addr]
	if !ok {
		return nil
	}
	if cc.CanTakeNewRequest() {
		return cc
	}
	delete(t.conns, addr)
	return nil
}

func (t *utlsRoundTripper) roundTripHTTP2(addr string, cc *http2.ClientConn, req *http.Request) (*http.Response, error) {
	resp, err := cc.RoundTrip(req)
	if err != nil && !cc.CanTakeNewRequest() {
		t.mu.Lock()
		if t.conns[addr] == cc {
			delete(t.conns, addr)
		}
		t.mu.Unlock()
		if cc.State().StreamsActive == 0 {
			cc.Close()
		}
	}
	return resp, err
}

// CloseIdleConnections closes cached HTTP/2 connections with no streams in
// flight. http.Client.CloseIdleConnections calls it.
func (t *utlsRoundTripper) CloseIdleConnections() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for addr, cc := range t.conns {
		if cc.State().StreamsActive == 0 {
			cc.Close()
			delete(t.conns, addr)
		}
	}
}

func roundTripHTTP1(conn net.Conn, req *http.Request) (*http.Response, error) {
	if err := req.Write(conn); err != nil {
		conn.Close()
		return nil, err
	}
	resp, err := http.ReadResponse(bufio.NewReader(conn), req)
	if err != nil {
		conn.Close()
		return nil, err
	}
	resp.Body = &connCloser{ReadCloser: resp.Body, conn: conn}
	return resp, nil
}

type connCloser struct {
	io.ReadCloser
	conn net.Conn
}

func (c *connCloser) Close() error {
	c.ReadCloser.Close()
	return c.conn.Close()
}
