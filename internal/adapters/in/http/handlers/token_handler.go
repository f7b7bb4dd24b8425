package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	usecase "launchpad/internal/application/usecase"
	tokendom "launchpad/internal/domain/token"
)

// TokenService is what the handler needs from the workflow.
type TokenService interface {
	CreateToken(ctx context.Context, draft tokendom.Draft) (usecase.CreateTokenResult, error)
	StateSnapshot() tokendom.Snapshot
}

// TokenHandler serves /tokens: submit a creation and read workflow state.
type TokenHandler struct {
	svc      TokenService
	validate *validator.Validate
}

func NewTokenHandler(svc TokenService) *TokenHandler {
	return &TokenHandler{
		svc:      svc,
		validate: validator.New(),
	}
}

type createTokenRequest struct {
	Name          string `json:"name" validate:"required"`
	Symbol        string `json:"symbol" validate:"required"`
	MetadataURI   string `json:"metadataUri" validate:"required"`
	InitialSupply string `json:"initialSupply" validate:"required"`
}

type createTokenResponse struct {
	MintAddress       string            `json:"mintAddress"`
	AssociatedAccount string            `json:"associatedAccount"`
	Signatures        map[string]string `json:"signatures"`
}

// Create handles POST /tokens (JSON or form-encoded).
func (h *TokenHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, err := decodeCreateRequest(r)
	if err != nil {
		writeErr(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeErr(w, http.StatusBadRequest, "missing fields")
		return
	}

	res, err := h.svc.CreateToken(r.Context(), tokendom.Draft{
		Name:          req.Name,
		Symbol:        req.Symbol,
		MetadataURI:   req.MetadataURI,
		InitialSupply: req.InitialSupply,
	})
	if err != nil {
		writeTokenErr(w, err)
		return
	}

	writeJSON(w, http.StatusOK, createTokenResponse{
		MintAddress:       res.MintAddress,
		AssociatedAccount: res.AssociatedAccount,
		Signatures: map[string]string{
			"mintInit":          res.MintInitSig,
			"associatedAccount": res.AssociatedSig,
			"mintTo":            res.MintToSig,
		},
	})
}

// State handles GET /tokens/state.
func (h *TokenHandler) State(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.StateSnapshot())
}

func decodeCreateRequest(r *http.Request) (createTokenRequest, error) {
	var req createTokenRequest

	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return createTokenRequest{}, err
		}
		return req, nil
	}

	// browser form fallback
	if err := r.ParseForm(); err != nil {
		return createTokenRequest{}, err
	}
	req.Name = r.PostFormValue("name")
	req.Symbol = r.PostFormValue("symbol")
	req.MetadataURI = r.PostFormValue("metadataUri")
	req.InitialSupply = r.PostFormValue("initialSupply")
	return req, nil
}

func writeTokenErr(w http.ResponseWriter, err error) {
	switch {
	case usecase.IsValidation(err):
		writeErr(w, http.StatusBadRequest, displayMessage(err))
	case errors.Is(err, usecase.ErrSubmissionInFlight):
		writeErr(w, http.StatusConflict, "a submission is already in flight")
	default:
		var ext *usecase.ExternalCallError
		if errors.As(err, &ext) {
			writeErr(w, http.StatusBadGateway, err.Error())
			return
		}
		writeErr(w, http.StatusInternalServerError, err.Error())
	}
}

func displayMessage(err error) string {
	switch {
	case errors.Is(err, usecase.ErrWalletNotConnected):
		return "wallet not connected"
	case errors.Is(err, tokendom.ErrMissingFields):
		return "missing fields"
	default:
		return err.Error()
	}
}
