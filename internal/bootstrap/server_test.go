package bootstrap

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type recordingAudit struct {
	entries []AuditLog
}

func (r *recordingAudit) Log(ctx context.Context, entry AuditLog) {
	r.entries = append(r.entries, entry)
}

func TestServe_ShutsDownWhenContextEnds(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if !assert.NoError(t, err) {
		return
	}
	audit := &recordingAudit{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, ln, handler, ServerConfig{ShutdownTimeout: time.Second}, audit, zap.NewNop())
	}()

	resp, err := http.Get("http://" + ln.Addr().String())
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		resp.Body.Close()
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancel")
	}

	if assert.Len(t, audit.entries, 1) {
		assert.Equal(t, "SERVER_SHUTDOWN", audit.entries[0].Action)
		assert.Equal(t, context.Canceled.Error(), audit.entries[0].Meta["reason"])
	}
}

func TestServe_ReturnsServeError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if !assert.NoError(t, err) {
		return
	}
	ln.Close()

	err = serve(context.Background(), ln, http.NotFoundHandler(), ServerConfig{}, &recordingAudit{}, zap.NewNop())

	assert.Error(t, err)
}

func TestRunHTTPServer_InvalidPort(t *testing.T) {
	err := RunHTTPServer(context.Background(), http.NotFoundHandler(), ServerConfig{Port: "-1"}, &recordingAudit{}, zap.NewNop())

	assert.ErrorContains(t, err, "listen on port -1")
}
