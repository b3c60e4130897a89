package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/chainsafe/cat-bridge/pkg/bridge"
	"github.com/chainsafe/cat-bridge/pkg/emitter"
	"github.com/chainsafe/cat-bridge/pkg/replay"
)

func TestFromBridge_StatusCodes(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", &bridge.Error{Kind: bridge.KindValidation, Op: "bridge_out", Err: bridge.ErrZeroAmount}, http.StatusBadRequest},
		{"payload", &bridge.Error{Kind: bridge.KindPayload, Op: "bridge_in"}, http.StatusBadRequest},
		{"arithmetic", &bridge.Error{Kind: bridge.KindArithmetic, Op: "bridge_in"}, http.StatusBadRequest},
		{"trust", &bridge.Error{Kind: bridge.KindTrust, Op: "bridge_in"}, http.StatusUnauthorized},
		{"authorization", &bridge.Error{Kind: bridge.KindAuthorization, Op: "mint_tokens"}, http.StatusForbidden},
		{"replay", &bridge.Error{Kind: bridge.KindReplay, Op: "bridge_in"}, http.StatusConflict},
		{"collaborator", &bridge.Error{Kind: bridge.KindCollaborator, Op: "bridge_out"}, http.StatusBadGateway},
		{"emitter lookup", emitter.ErrNotFound, http.StatusNotFound},
		{"received lookup", fmt.Errorf("lookup: %w", replay.ErrNotFound), http.StatusNotFound},
		{"config lookup", bridge.ErrNotInitialized, http.StatusNotFound},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var svcErr *ServiceError
			if !errors.As(FromBridge(tt.err), &svcErr) {
				t.Fatalf("expected a ServiceError")
			}
			if svcErr.StatusCode() != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, svcErr.StatusCode())
			}
			if !errors.Is(svcErr, tt.err) {
				t.Fatalf("expected cause to stay reachable")
			}
		})
	}
}

func TestFromBridge_ClassifiedNotInitializedIsBadRequest(t *testing.T) {
	err := FromBridge(&bridge.Error{Kind: bridge.KindValidation, Op: "bridge_out", Err: bridge.ErrNotInitialized})
	if !Is(err, CategoryDataError) {
		t.Fatalf("expected data error, got %v", err)
	}
}

func TestFromBridge_HidesCollaboratorDetail(t *testing.T) {
	err := FromBridge(&bridge.Error{Kind: bridge.KindCollaborator, Op: "bridge_out", Err: errors.New("connection reset")})
	var svcErr *ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("expected a ServiceError")
	}
	if svcErr.Message != "dependency failure" {
		t.Fatalf("expected generic message, got %q", svcErr.Message)
	}
	if !IsInternalError(err) {
		t.Fatalf("expected collaborator failure to be internal")
	}
	if IsInternalError(BadRequestError(nil, "bad")) {
		t.Fatalf("expected bad request not to be internal")
	}
	if FromBridge(nil) != nil {
		t.Fatalf("expected nil")
	}
}
