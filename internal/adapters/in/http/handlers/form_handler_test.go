package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tokendom "launchpad/internal/domain/token"
)

type stubWallet struct {
	addr string
}

func (w *stubWallet) Owner() (string, bool) { return w.addr, w.addr != "" }

func TestFormIndexRendersState(t *testing.T) {
	svc := &stubService{snap: tokendom.Snapshot{
		Phase:       tokendom.PhaseSucceeded,
		MintAddress: "MintAddr111",
	}}
	h, err := NewFormHandler(svc, &stubWallet{addr: "OwnerAddr111"})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.Index(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "OwnerAddr111")
	assert.Contains(t, body, "MintAddr111")
}

func TestFormIndexRendersLoadingDisabled(t *testing.T) {
	svc := &stubService{snap: tokendom.Snapshot{
		Phase:   tokendom.PhaseLoading,
		Loading: true,
	}}
	h, err := NewFormHandler(svc, &stubWallet{addr: "OwnerAddr111"})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.Index(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	// all four inputs and the submit control are disabled mid-submission
	assert.Equal(t, 5, strings.Count(body, "disabled>"))
	assert.Contains(t, body, "Creating...")
	assert.NotContains(t, body, "Create token</button>")
}

func TestFormIndexIdleFormEnabled(t *testing.T) {
	h, err := NewFormHandler(&stubService{}, &stubWallet{addr: "OwnerAddr111"})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.Index(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.NotContains(t, body, "disabled>")
	assert.Contains(t, body, "Create token</button>")
}

func TestFormIndexDisconnectedWallet(t *testing.T) {
	h, err := NewFormHandler(&stubService{}, &stubWallet{})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.Index(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "not connected")
}
