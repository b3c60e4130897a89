package http

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/chainsafe/cat-bridge/pkg/app/errors"
	"github.com/chainsafe/cat-bridge/pkg/config"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var got errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	return got
}

func TestHandleError_ServiceError(t *testing.T) {
	h := HandleError(func(http.ResponseWriter, *http.Request) error {
		return apperrors.ConflictError(nil, "message already processed")
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected status %d, got %d", http.StatusConflict, rec.Code)
	}
	got := decodeError(t, rec)
	if got.ErrMsg != "message already processed" {
		t.Fatalf("expected error %q, got %q", "message already processed", got.ErrMsg)
	}
	if got.ID != "" {
		t.Fatalf("expected no correlation id, got %q", got.ID)
	}
}

func TestLoggedHandler_InternalErrorGetsID(t *testing.T) {
	h := LoggedHandler(zap.NewNop(), func(http.ResponseWriter, *http.Request) error {
		return errors.New("database exploded")
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, rec.Code)
	}
	got := decodeError(t, rec)
	if got.ErrMsg != "Unexpected Service Error" {
		t.Fatalf("expected generic error, got %q", got.ErrMsg)
	}
	if got.ID == "" {
		t.Fatalf("expected correlation id")
	}
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		Amount uint64 `json:"amount"`
	}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"amount": 5}`))
	if err := DecodeJSON(rec, req, &v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Amount != 5 {
		t.Fatalf("expected amount 5, got %d", v.Amount)
	}

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"amount": 5, "extra": 1}`))
	if err := DecodeJSON(rec, req, &v); !apperrors.Is(err, apperrors.CategoryDataError) {
		t.Fatalf("expected data error for unknown field, got %v", err)
	}
}

func TestServeAndWait_ShutsDownOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to reserve port: %v", err)
	}
	port := ln.Addr().(*net.TCPAddr).Port
	_ = ln.Close()

	cfg := &config.ServerConfig{Host: "127.0.0.1", Port: port, ShutdownTimeout: time.Second}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- ServeAndWait(ctx, http.NotFoundHandler(), zap.NewNop(), cfg)
	}()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("server did not stop")
	}
}

func TestServeAndWait_InvalidArgs(t *testing.T) {
	if err := ServeAndWait(context.Background(), nil, nil, &config.ServerConfig{}); err == nil {
		t.Fatalf("expected error for nil handler")
	}
	if err := ServeAndWait(context.Background(), http.NotFoundHandler(), nil, nil); err == nil {
		t.Fatalf("expected error for nil config")
	}
}
