package assistant

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func silentLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubProvider struct {
	reply string
	err   error
	last  struct {
		system string
		user   string
	}
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) Complete(_ context.Context, system, user string) (string, error) {
	s.last.system = system
	s.last.user = user
	return s.reply, s.err
}

func TestReplySendsSystemInstructionAndLatestMessageOnly(t *testing.T) {
	stub := &stubProvider{reply: "Sure!"}
	a := New(stub, silentLogger())

	got, err := a.Reply(context.Background(), "  What is Meta Planet?  ")
	if err != nil {
		t.Fatalf("Reply() error = %v", err)
	}
	if got != "Sure!" {
		t.Errorf("Reply() = %q, want provider text", got)
	}
	if stub.last.system != SystemInstruction {
		t.Error("system instruction not forwarded")
	}
	if stub.last.user != "What is Meta Planet?" {
		t.Errorf("user message = %q, want trimmed input", stub.last.user)
	}
}

func TestReplyEmptyProviderTextFallsBack(t *testing.T) {
	a := New(&stubProvider{reply: "   "}, silentLogger())

	got, err := a.Reply(context.Background(), "hello")
	if err != nil {
		t.Fatalf("Reply() error = %v", err)
	}
	if got != FallbackReply {
		t.Errorf("Reply() = %q, want fallback", got)
	}
}

func TestReplyPropagatesProviderError(t *testing.T) {
	wantErr := errors.New("boom")
	a := New(&stubProvider{err: wantErr}, silentLogger())

	_, err := a.Reply(context.Background(), "hello")
	if !errors.Is(err, wantErr) {
		t.Errorf("Reply() error = %v, want %v", err, wantErr)
	}
}

func TestReplyRejectsEmptyMessage(t *testing.T) {
	a := New(&stubProvider{reply: "x"}, silentLogger())
	if _, err := a.Reply(context.Background(), "   "); err == nil {
		t.Error("Reply() accepted an empty message")
	}
}

func TestGeminiProviderParsesCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if got := r.Header.Get("x-goog-api-key"); got != "test-key" {
			t.Errorf("api key header = %q", got)
		}
		_, _ = w.Write([]byte(`{"candidates": [{"content": {"role": "model", "parts": [{"text": "Hello "}, {"text": "there"}]}}]}`))
	}))
	defer srv.Close()

	p := NewGeminiProvider("test-key", "gemini-3-pro-preview")
	p.baseURL = srv.URL

	got, err := p.Complete(context.Background(), "sys", "hi")
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if got != "Hello there" {
		t.Errorf("Complete() = %q, want joined parts", got)
	}
}

func TestGeminiProviderSurfacesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": {"code": 400, "message": "API key not valid"}}`))
	}))
	defer srv.Close()

	p := NewGeminiProvider("bad-key", "gemini-3-pro-preview")
	p.baseURL = srv.URL

	if _, err := p.Complete(context.Background(), "sys", "hi"); err == nil {
		t.Error("Complete() succeeded on an API error response")
	}
}

func TestGeminiProviderNoCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"candidates": []}`))
	}))
	defer srv.Close()

	p := NewGeminiProvider("key", "model")
	p.baseURL = srv.URL

	if _, err := p.Complete(context.Background(), "sys", "hi"); err == nil {
		t.Error("Complete() succeeded with no candidates")
	}
}
