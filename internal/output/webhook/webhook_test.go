package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/crimson-sun/wordfreq/internal/model"
	"github.com/crimson-sun/wordfreq/internal/output"
)

func testReport() model.Report {
	return model.Report{
		Source:   "moby.txt",
		TopK:     2,
		Distinct: 3,
		Tokens:   6,
		Words:    []model.WordCount{{Word: "WHALE", Count: 3}, {Word: "SEA", Count: 2}},
	}
}

func TestWritePostsReport(t *testing.T) {
	var got model.Report
	var contentType string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &got); err != nil {
			t.Errorf("unmarshal body: %v", err)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	out := New(srv.URL, output.Options{})
	if err := out.Write(context.Background(), testReport()); err != nil {
		t.Fatalf("Write: %v", err)
	}

	if contentType != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", contentType)
	}
	if got.Source != "moby.txt" || got.Distinct != 3 {
		t.Errorf("got %+v", got)
	}
	if len(got.Words) != 2 || got.Words[0].Word != "WHALE" {
		t.Errorf("words = %+v", got.Words)
	}
}

func TestPrettyBody(t *testing.T) {
	var body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		body = string(b)
	}))
	defer srv.Close()

	out := New(srv.URL, output.Options{Format: "text", Pretty: true})
	if err := out.Write(context.Background(), testReport()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.Contains(body, "\n  \"top_k\": 2") {
		t.Errorf("body not indented JSON:\n%s", body)
	}
}

func TestRetryOn5xx(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	out := New(srv.URL, output.Options{}, WithBackoff(time.Millisecond))
	if err := out.Write(context.Background(), testReport()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if attempts.Load() != 3 {
		t.Errorf("attempts = %d, want 3", attempts.Load())
	}
}

func TestGivesUpAfterMaxRetries(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	out := New(srv.URL, output.Options{}, WithBackoff(time.Millisecond))
	err := out.Write(context.Background(), testReport())
	if err == nil || !strings.Contains(err.Error(), "HTTP 500") {
		t.Fatalf("err = %v, want HTTP 500", err)
	}
	if attempts.Load() != maxRetries+1 {
		t.Errorf("attempts = %d, want %d", attempts.Load(), maxRetries+1)
	}
}

func TestNoRetryOn4xx(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	out := New(srv.URL, output.Options{}, WithBackoff(time.Millisecond))
	if err := out.Write(context.Background(), testReport()); err == nil {
		t.Fatal("expected error for 400")
	}
	if attempts.Load() != 1 {
		t.Errorf("expected exactly 1 attempt for 4xx, got %d", attempts.Load())
	}
}

func TestCustomHeaders(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("X-Api-Key")
	}))
	defer srv.Close()

	out := New(srv.URL, output.Options{}, WithHeaders(map[string]string{"X-Api-Key": "secret123"}))
	if err := out.Write(context.Background(), testReport()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if gotAuth != "secret123" {
		t.Errorf("custom header = %q, want secret123", gotAuth)
	}
}

func TestCancelledDuringBackoff(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	out := New(srv.URL, output.Options{}, WithBackoff(time.Hour))
	err := out.Write(ctx, testReport())
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("err = %v, want deadline exceeded", err)
	}
}

func TestCloseIsNoop(t *testing.T) {
	if err := New("http://127.0.0.1:0", output.Options{}).Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}
