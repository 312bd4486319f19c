package mailer_test

import (
	"bufio"
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"math/big"
	"net"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apex360/sitecms/pkg/mailer"
)

// fakeServer is a scripted single-connection SMTP server. It records every
// command line and the raw DATA payload it receives.
type fakeServer struct {
	t        *testing.T
	ln       net.Listener
	tlsCfg   *tls.Config
	greeting string
	rcptCode string
	authFail bool
	done     chan struct{}

	mu       sync.Mutex
	commands []string
	data     string
}

func newFakeServer(t *testing.T, configure ...func(*fakeServer)) *fakeServer {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	s := &fakeServer{
		t:        t,
		ln:       ln,
		greeting: "220 fake.test ESMTP ready",
		rcptCode: "250 ok",
		done:     make(chan struct{}),
	}
	for _, c := range configure {
		c(s)
	}

	t.Cleanup(func() { _ = ln.Close() })
	go s.serve()
	return s
}

func (s *fakeServer) hostPort() (string, int) {
	addr := s.ln.Addr().(*net.TCPAddr)
	return "127.0.0.1", addr.Port
}

func (s *fakeServer) wait() {
	select {
	case <-s.done:
	case <-time.After(5 * time.Second):
		s.t.Fatal("fake SMTP server did not finish")
	}
}

func (s *fakeServer) record(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commands = append(s.commands, line)
}

func (s *fakeServer) recorded() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.commands...)
}

func (s *fakeServer) receivedData() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data
}

func (s *fakeServer) serve() {
	defer close(s.done)

	conn, err := s.ln.Accept()
	if err != nil {
		return
	}
	defer conn.Close()
	_ = conn.SetDeadline(time.Now().Add(5 * time.Second))

	r := bufio.NewReader(conn)
	writeLine := func(line string) { _, _ = conn.Write([]byte(line + "\r\n")) }

	writeLine(s.greeting)

	authStage := 0
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			return
		}
		line = strings.TrimRight(line, "\r\n")
		s.record(line)

		switch {
		case authStage == 1:
			authStage = 2
			writeLine("334 UGFzc3dvcmQ6")
		case authStage == 2:
			authStage = 0
			if s.authFail {
				writeLine("535 authentication credentials invalid")
			} else {
				writeLine("235 authentication successful")
			}
		case strings.HasPrefix(line, "EHLO"):
			// Multi-line reply: the continuation hyphen must be handled
			// by the client.
			writeLine("250-fake.test greets you")
			writeLine("250-STARTTLS")
			writeLine("250 AUTH LOGIN")
		case line == "STARTTLS":
			if s.tlsCfg == nil {
				writeLine("502 command not implemented")
				continue
			}
			writeLine("220 go ahead")
			tlsConn := tls.Server(conn, s.tlsCfg)
			if err := tlsConn.Handshake(); err != nil {
				return
			}
			conn = tlsConn
			_ = conn.SetDeadline(time.Now().Add(5 * time.Second))
			r = bufio.NewReader(conn)
			writeLine = func(line string) { _, _ = conn.Write([]byte(line + "\r\n")) }
		case line == "AUTH LOGIN":
			authStage = 1
			writeLine("334 VXNlcm5hbWU6")
		case strings.HasPrefix(line, "MAIL FROM"):
			writeLine("250 sender ok")
		case strings.HasPrefix(line, "RCPT TO"):
			writeLine(s.rcptCode)
		case line == "DATA":
			writeLine("354 end data with <CRLF>.<CRLF>")
			var payload strings.Builder
			for {
				dataLine, err := r.ReadString('\n')
				if err != nil {
					return
				}
				if strings.TrimRight(dataLine, "\r\n") == "." {
					break
				}
				payload.WriteString(dataLine)
			}
			s.mu.Lock()
			s.data = payload.String()
			s.mu.Unlock()
			writeLine("250 message queued")
		case line == "QUIT":
			writeLine("221 bye")
			return
		default:
			writeLine("500 unrecognized command")
		}
	}
}

// serverTLSConfig builds a self-signed certificate for the STARTTLS test.
func serverTLSConfig(t *testing.T) *tls.Config {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	tmpl := x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "127.0.0.1"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
		IPAddresses:  []net.IP{net.ParseIP("127.0.0.1")},
	}
	der, err := x509.CreateCertificate(rand.Reader, &tmpl, &tmpl, &key.PublicKey, key)
	require.NoError(t, err)

	return &tls.Config{Certificates: []tls.Certificate{{
		Certificate: [][]byte{der},
		PrivateKey:  key,
	}}}
}

func testMessage() mailer.Message {
	return mailer.Message{
		From:    "contacto@apex360.cl",
		To:      "contacto@apex360.cl",
		ReplyTo: "cliente@example.com",
		Subject: "Consulta desde el sitio Apex 360",
		Body:    "Nombre: Ana\nCorreo: cliente@example.com\nComentarios:\nHola\n",
	}
}

func newClient(t *testing.T, srv *fakeServer, cfg mailer.Config, opts ...mailer.Option) *mailer.SMTPClient {
	t.Helper()

	host, port := srv.hostPort()
	cfg.Host = host
	cfg.Port = port
	if cfg.Timeout == 0 {
		cfg.Timeout = 2 * time.Second
	}

	client, err := mailer.NewSMTPClient(cfg, opts...)
	require.NoError(t, err)
	return client
}

func TestSMTPClientSend(t *testing.T) {
	t.Run("plain session with auth succeeds", func(t *testing.T) {
		srv := newFakeServer(t)
		client := newClient(t, srv, mailer.Config{
			Username:   "user",
			Password:   "secret",
			Encryption: mailer.EncryptionNone,
		})

		require.NoError(t, client.Send(context.Background(), testMessage()))
		srv.wait()

		commands := strings.Join(srv.recorded(), "\n")
		assert.Contains(t, commands, "EHLO")
		assert.Contains(t, commands, "AUTH LOGIN")
		assert.Contains(t, commands, "dXNlcg==")     // base64("user")
		assert.Contains(t, commands, "c2VjcmV0")     // base64("secret")
		assert.Contains(t, commands, "MAIL FROM: <contacto@apex360.cl>")
		assert.Contains(t, commands, "RCPT TO: <contacto@apex360.cl>")
		assert.Contains(t, commands, "QUIT")

		data := srv.receivedData()
		assert.Contains(t, data, "From: contacto@apex360.cl\r\n")
		assert.Contains(t, data, "Reply-To: cliente@example.com\r\n")
		assert.Contains(t, data, "Subject: Consulta desde el sitio Apex 360\r\n")
		assert.Contains(t, data, "Content-Type: text/plain; charset=UTF-8\r\n")
		assert.Contains(t, data, "Nombre: Ana\r\n")
	})

	t.Run("session without credentials skips auth", func(t *testing.T) {
		srv := newFakeServer(t)
		client := newClient(t, srv, mailer.Config{Encryption: mailer.EncryptionNone})

		require.NoError(t, client.Send(context.Background(), testMessage()))
		srv.wait()
		assert.NotContains(t, srv.recorded(), "AUTH LOGIN")
	})

	t.Run("starttls upgrades in place and re-issues EHLO", func(t *testing.T) {
		srv := newFakeServer(t, func(s *fakeServer) { s.tlsCfg = serverTLSConfig(t) })
		client := newClient(t, srv,
			mailer.Config{Encryption: mailer.EncryptionTLS},
			mailer.WithTLSConfig(&tls.Config{InsecureSkipVerify: true}),
		)

		require.NoError(t, client.Send(context.Background(), testMessage()))
		srv.wait()

		ehlos := 0
		for _, cmd := range srv.recorded() {
			if strings.HasPrefix(cmd, "EHLO") {
				ehlos++
			}
		}
		assert.Equal(t, 2, ehlos, "EHLO must be re-issued after the TLS upgrade")
		assert.Contains(t, srv.recorded(), "STARTTLS")
		assert.Contains(t, srv.receivedData(), "Subject: Consulta desde el sitio Apex 360\r\n")
	})

	t.Run("starttls rejection aborts without plaintext fallback", func(t *testing.T) {
		srv := newFakeServer(t) // no tlsCfg: STARTTLS answered with 502
		client := newClient(t, srv, mailer.Config{Encryption: mailer.EncryptionTLS})

		err := client.Send(context.Background(), testMessage())
		require.ErrorIs(t, err, mailer.ErrTLS)
		srv.wait()
		assert.NotContains(t, srv.recorded(), "DATA")
	})

	t.Run("rcpt rejection fails with protocol error carrying the reply", func(t *testing.T) {
		srv := newFakeServer(t, func(s *fakeServer) { s.rcptCode = "550 no such user" })
		client := newClient(t, srv, mailer.Config{Encryption: mailer.EncryptionNone})

		err := client.Send(context.Background(), testMessage())
		require.ErrorIs(t, err, mailer.ErrProtocol)
		assert.Contains(t, err.Error(), "550 no such user")
		srv.wait()
		assert.NotContains(t, srv.recorded(), "DATA")
	})

	t.Run("unexpected greeting fails", func(t *testing.T) {
		srv := newFakeServer(t, func(s *fakeServer) { s.greeting = "554 not accepting mail" })
		client := newClient(t, srv, mailer.Config{Encryption: mailer.EncryptionNone})

		err := client.Send(context.Background(), testMessage())
		require.ErrorIs(t, err, mailer.ErrProtocol)
		assert.Contains(t, err.Error(), "554")
	})

	t.Run("rejected credentials fail with auth error", func(t *testing.T) {
		srv := newFakeServer(t, func(s *fakeServer) { s.authFail = true })
		client := newClient(t, srv, mailer.Config{
			Username:   "user",
			Password:   "wrong",
			Encryption: mailer.EncryptionNone,
		})

		err := client.Send(context.Background(), testMessage())
		require.ErrorIs(t, err, mailer.ErrAuth)
		srv.wait()
		assert.NotContains(t, srv.recorded(), "DATA")
	})

	t.Run("dot lines in the body are stuffed", func(t *testing.T) {
		srv := newFakeServer(t)
		client := newClient(t, srv, mailer.Config{Encryption: mailer.EncryptionNone})

		msg := testMessage()
		msg.Body = "primera\n.oculta\nultima\n"
		require.NoError(t, client.Send(context.Background(), msg))
		srv.wait()

		assert.Contains(t, srv.receivedData(), "\r\n..oculta\r\n")
	})

	t.Run("connection refused fails with connect error", func(t *testing.T) {
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		addr := ln.Addr().(*net.TCPAddr)
		require.NoError(t, ln.Close())

		client, err := mailer.NewSMTPClient(mailer.Config{
			Host:       "127.0.0.1",
			Port:       addr.Port,
			Encryption: mailer.EncryptionNone,
			Timeout:    time.Second,
		})
		require.NoError(t, err)

		sendErr := client.Send(context.Background(), testMessage())
		assert.ErrorIs(t, sendErr, mailer.ErrConnect)
	})
}

func TestNewSMTPClient(t *testing.T) {
	t.Run("empty host is invalid", func(t *testing.T) {
		_, err := mailer.NewSMTPClient(mailer.Config{})
		assert.ErrorIs(t, err, mailer.ErrInvalidConfig)
	})

	t.Run("unknown encryption mode is invalid", func(t *testing.T) {
		_, err := mailer.NewSMTPClient(mailer.Config{Host: "smtp.test", Encryption: "starttlsss"})
		assert.ErrorIs(t, err, mailer.ErrInvalidConfig)
	})
}
