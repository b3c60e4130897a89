// Package api exposes bridge.Service over HTTP.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/chainsafe/cat-bridge/pkg/amount"
	apperrors "github.com/chainsafe/cat-bridge/pkg/app/errors"
	apphttp "github.com/chainsafe/cat-bridge/pkg/app/http"
	"github.com/chainsafe/cat-bridge/pkg/bridge"
	"github.com/chainsafe/cat-bridge/pkg/chain"
	"github.com/chainsafe/cat-bridge/pkg/emitter"
	"github.com/chainsafe/cat-bridge/pkg/messaging"
	"github.com/chainsafe/cat-bridge/pkg/replay"
)

// Units is an amount in native token units. It is encoded as a decimal
// string so that values above 2^53 survive JSON clients; plain numbers are
// accepted on input.
type Units uint64

func (u Units) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatUint(uint64(u), 10))
}

func (u *Units) UnmarshalJSON(b []byte) error {
	text := string(b)
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		text = s
	}
	n, err := amount.Parse(text, 0)
	if err != nil {
		return err
	}
	*u = Units(n)
	return nil
}

type initializeRequest struct {
	Token          chain.Address `json:"token"`
	Decimals       uint8         `json:"decimals"`
	MaxSupply      Units         `json:"max_supply"`
	InitialSupply  Units         `json:"initial_supply"`
	TransferFeeBps uint16        `json:"transfer_fee_bps"`
	BatchID        uint32        `json:"batch_id"`
	Finality       string        `json:"finality"`
}

type ownershipRequest struct {
	NewOwner chain.Address `json:"new_owner"`
}

type mintRequest struct {
	Recipient chain.Address `json:"recipient"`
	Amount    Units         `json:"amount"`
}

type outRequest struct {
	Amount            Units         `json:"amount"`
	RecipientChainID  chain.ID      `json:"recipient_chain_id"`
	RecipientAccount  chain.Address `json:"recipient_account"`
	RecipientContract chain.Address `json:"recipient_contract"`
}

type deliverResponse struct {
	MessageHash chain.Hash `json:"message_hash"`
}

type handler struct {
	svc    bridge.Service
	logger *zap.Logger
}

// RegisterRoutes mounts the bridge API under /api/v1. Lookups are public;
// state-changing routes need a caller token and envelope delivery also needs
// the messenger role.
func RegisterRoutes(r chi.Router, svc bridge.Service, authn *Authenticator, logger *zap.Logger) {
	h := &handler{svc: svc, logger: logger}
	wrap := func(fn apphttp.HandlerFunc) http.HandlerFunc {
		return apphttp.LoggedHandler(logger, fn)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/config", wrap(h.getConfig))
		r.Get("/emitters", wrap(h.listEmitters))
		r.Get("/emitters/{chainID}", wrap(h.getEmitter))
		r.Get("/received/{chainID}/{sequence}", wrap(h.getReceived))
		r.Get("/messages/{sequence}", wrap(h.getPosted))
		r.Get("/balances/{owner}", wrap(h.getBalances))

		r.Group(func(r chi.Router) {
			r.Use(authn.Middleware)
			r.Post("/initialize", wrap(h.initialize))
			r.Post("/ownership", wrap(h.transferOwnership))
			r.Post("/emitters", wrap(h.registerEmitter))
			r.Post("/mint", wrap(h.mint))
			r.Post("/bridge/out", wrap(h.bridgeOut))
			r.Post("/bridge/in", wrap(h.bridgeIn))
			r.With(RequireRole(RoleMessenger)).Post("/messages", wrap(h.deliver))
		})
	})
}

func caller(r *http.Request) (chain.Address, error) {
	c, ok := CallerFromContext(r.Context())
	if !ok {
		return chain.ZeroAddress, apperrors.UnAuthorizedError(nil, "caller not authenticated")
	}
	return c, nil
}

func (h *handler) initialize(w http.ResponseWriter, r *http.Request) error {
	c, err := caller(r)
	if err != nil {
		return err
	}
	var body initializeRequest
	if err := apphttp.DecodeJSON(w, r, &body); err != nil {
		return err
	}
	finality, err := messaging.ParseFinality(body.Finality)
	if err != nil {
		return apperrors.BadRequestError(err, err.Error())
	}
	cfg, err := h.svc.Initialize(r.Context(), c, &bridge.InitializeRequest{
		Token:          body.Token,
		Decimals:       body.Decimals,
		MaxSupply:      uint64(body.MaxSupply),
		InitialSupply:  uint64(body.InitialSupply),
		TransferFeeBps: body.TransferFeeBps,
		BatchID:        body.BatchID,
		Finality:       finality,
	})
	if err != nil {
		return apperrors.FromBridge(err)
	}
	return apphttp.WriteJSON(w, http.StatusCreated, cfg)
}

func (h *handler) transferOwnership(w http.ResponseWriter, r *http.Request) error {
	c, err := caller(r)
	if err != nil {
		return err
	}
	var body ownershipRequest
	if err := apphttp.DecodeJSON(w, r, &body); err != nil {
		return err
	}
	cfg, err := h.svc.TransferOwnership(r.Context(), c, body.NewOwner)
	if err != nil {
		return apperrors.FromBridge(err)
	}
	return apphttp.WriteJSON(w, http.StatusOK, cfg)
}

func (h *handler) registerEmitter(w http.ResponseWriter, r *http.Request) error {
	c, err := caller(r)
	if err != nil {
		return err
	}
	var body emitter.Record
	if err := apphttp.DecodeJSON(w, r, &body); err != nil {
		return err
	}
	if err := h.svc.RegisterEmitter(r.Context(), c, body); err != nil {
		return apperrors.FromBridge(err)
	}
	return apphttp.WriteJSON(w, http.StatusCreated, &body)
}

func (h *handler) mint(w http.ResponseWriter, r *http.Request) error {
	c, err := caller(r)
	if err != nil {
		return err
	}
	var body mintRequest
	if err := apphttp.DecodeJSON(w, r, &body); err != nil {
		return err
	}
	acc, err := h.svc.MintTokens(r.Context(), c, &bridge.MintRequest{Recipient: body.Recipient, Amount: uint64(body.Amount)})
	if err != nil {
		return apperrors.FromBridge(err)
	}
	return apphttp.WriteJSON(w, http.StatusOK, acc)
}

func (h *handler) bridgeOut(w http.ResponseWriter, r *http.Request) error {
	c, err := caller(r)
	if err != nil {
		return err
	}
	var body outRequest
	if err := apphttp.DecodeJSON(w, r, &body); err != nil {
		return err
	}
	receipt, err := h.svc.BridgeOut(r.Context(), c, &bridge.OutRequest{
		Amount:            uint64(body.Amount),
		RecipientChainID:  body.RecipientChainID,
		RecipientAccount:  body.RecipientAccount,
		RecipientContract: body.RecipientContract,
	})
	if err != nil {
		return apperrors.FromBridge(err)
	}
	return apphttp.WriteJSON(w, http.StatusCreated, receipt)
}

func (h *handler) bridgeIn(w http.ResponseWriter, r *http.Request) error {
	c, err := caller(r)
	if err != nil {
		return err
	}
	var body bridge.InRequest
	if err := apphttp.DecodeJSON(w, r, &body); err != nil {
		return err
	}
	receipt, err := h.svc.BridgeIn(r.Context(), c, &body)
	if err != nil {
		return apperrors.FromBridge(err)
	}
	return apphttp.WriteJSON(w, http.StatusOK, receipt)
}

func (h *handler) deliver(w http.ResponseWriter, r *http.Request) error {
	var env messaging.Envelope
	if err := apphttp.DecodeJSON(w, r, &env); err != nil {
		return err
	}
	hash, err := h.svc.DeliverMessage(r.Context(), &env)
	if err != nil {
		return apperrors.FromBridge(err)
	}
	return apphttp.WriteJSON(w, http.StatusAccepted, &deliverResponse{MessageHash: hash})
}

func (h *handler) getConfig(w http.ResponseWriter, r *http.Request) error {
	cfg, err := h.svc.Config(r.Context())
	if err != nil {
		return apperrors.FromBridge(err)
	}
	return apphttp.WriteJSON(w, http.StatusOK, cfg)
}

func (h *handler) listEmitters(w http.ResponseWriter, r *http.Request) error {
	recs, err := h.svc.Emitters(r.Context())
	if err != nil {
		return apperrors.FromBridge(err)
	}
	if recs == nil {
		recs = []*emitter.Record{}
	}
	return apphttp.WriteJSON(w, http.StatusOK, map[string]any{"emitters": recs})
}

func (h *handler) getEmitter(w http.ResponseWriter, r *http.Request) error {
	id, err := chainParam(r)
	if err != nil {
		return err
	}
	rec, err := h.svc.Emitter(r.Context(), id)
	if err != nil {
		return apperrors.FromBridge(err)
	}
	return apphttp.WriteJSON(w, http.StatusOK, rec)
}

func (h *handler) getReceived(w http.ResponseWriter, r *http.Request) error {
	id, err := chainParam(r)
	if err != nil {
		return err
	}
	seq, err := uintParam(r, "sequence")
	if err != nil {
		return err
	}
	rec, err := h.svc.Received(r.Context(), replay.Key{ChainID: id, Sequence: seq})
	if err != nil {
		return apperrors.FromBridge(err)
	}
	return apphttp.WriteJSON(w, http.StatusOK, rec)
}

func (h *handler) getPosted(w http.ResponseWriter, r *http.Request) error {
	seq, err := uintParam(r, "sequence")
	if err != nil {
		return err
	}
	msg, err := h.svc.Posted(r.Context(), seq)
	if err != nil {
		return apperrors.FromBridge(err)
	}
	return apphttp.WriteJSON(w, http.StatusOK, msg)
}

func (h *handler) getBalances(w http.ResponseWriter, r *http.Request) error {
	owner, err := chain.ParseAddress(chi.URLParam(r, "owner"))
	if err != nil {
		return apperrors.BadRequestError(err, "invalid owner address")
	}
	b, err := h.svc.Balances(r.Context(), owner)
	if err != nil {
		return apperrors.FromBridge(err)
	}
	return apphttp.WriteJSON(w, http.StatusOK, b)
}

func chainParam(r *http.Request) (chain.ID, error) {
	n, err := uintParam(r, "chainID")
	return chain.ID(n), err
}

func uintParam(r *http.Request, name string) (uint64, error) {
	raw := chi.URLParam(r, name)
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, apperrors.BadRequestError(err, name+" out of range")
		}
		return 0, apperrors.BadRequestError(fmt.Errorf("parse %s %q: %w", name, raw, err), "invalid "+name)
	}
	return n, nil
}
