// Package intercept wraps a net.Listener so that the ClientHello of
// each accepted connection is fingerprinted before crypto/tls consumes
// it. The resulting record travels with the connection and can be
// pulled out of a request context via http.Server.ConnContext.
package intercept

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/http"

	"github.com/tlsprint/ja3"
)

// context key used for store/retrieve of the client hello fingerprint
type contextKey string

const fingerprintKey contextKey = "ja3Fingerprint"

// HelloConn is a TLS connection carrying the fingerprint of the
// ClientHello that opened it.
type HelloConn struct {
	net.Conn
	Fingerprint *ja3.Fingerprint
}

// ConnContext is meant to be installed as http.Server.ConnContext; it
// moves the fingerprint from the connection into the request context.
func ConnContext(ctx context.Context, c net.Conn) context.Context {
	if hc, ok := c.(*HelloConn); ok {
		return context.WithValue(ctx, fingerprintKey, hc.Fingerprint)
	}
	return ctx
}

// FromRequest returns the fingerprint of the connection the request
// arrived on, or a zero record when there is none.
func FromRequest(r *http.Request) ja3.Fingerprint {
	return FromContext(r.Context())
}

// FromContext returns the fingerprint stored by ConnContext, or a zero
// record when there is none.
func FromContext(ctx context.Context) ja3.Fingerprint {
	if fp, ok := ctx.Value(fingerprintKey).(*ja3.Fingerprint); ok && fp != nil {
		return *fp
	}
	return ja3.Fingerprint{}
}

type listener struct {
	net.Listener
	tlsConfig *tls.Config
}

// NewListener wraps inner so that every accepted connection is served
// TLS from tlsConfig with its ClientHello fingerprinted first.
func NewListener(inner net.Listener, tlsConfig *tls.Config) net.Listener {
	return &listener{Listener: inner, tlsConfig: tlsConfig}
}

func (l *listener) Accept() (net.Conn, error) {
	conn, err := l.Listener.Accept()
	if err != nil {
		return nil, err
	}

	peeked, err := peekClientHello(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("peekClientHello: %w", err)
	}

	// A hello we cannot parse still gets served, just unfingerprinted
	var fp ja3.Fingerprint
	if err := fp.ProcessClientHello(peeked); err != nil {
		fp = ja3.Fingerprint{}
	}

	reader := io.MultiReader(bytes.NewReader(peeked), conn)
	wrapped := &readFirstConn{Conn: conn, reader: reader}

	return &HelloConn{
		Conn:        tls.Server(wrapped, l.tlsConfig),
		Fingerprint: &fp,
	}, nil
}

// readFirstConn replays the peeked hello bytes ahead of the live
// connection so the TLS stack sees an untouched stream.
type readFirstConn struct {
	net.Conn
	reader io.Reader
}

func (c *readFirstConn) Read(b []byte) (int, error) {
	return c.reader.Read(b)
}

func peekClientHello(conn net.Conn) ([]byte, error) {
	hdr := make([]byte, 5)
	if _, err := io.ReadFull(conn, hdr); err != nil {
		return nil, err
	}

	length := int(hdr[3])<<8 | int(hdr[4])
	body := make([]byte, length)
	if _, err := io.ReadFull(conn, body); err != nil {
		return nil, err
	}

	return append(hdr, body...), nil
}
