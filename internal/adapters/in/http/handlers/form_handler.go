package handlers

import (
	"html/template"
	"net/http"

	"launchpad/internal/adapters/in/http/web"
	tokendom "launchpad/internal/domain/token"
)

// FormHandler serves the browser form bound to the workflow state.
type FormHandler struct {
	svc    TokenService
	wallet WalletInfo
	tmpl   *template.Template
}

// WalletInfo is the read-only identity shown on the page.
type WalletInfo interface {
	Owner() (string, bool)
}

func NewFormHandler(svc TokenService, wallet WalletInfo) (*FormHandler, error) {
	tmpl, err := template.ParseFS(web.Templates, "templates/index.html")
	if err != nil {
		return nil, err
	}
	return &FormHandler{svc: svc, wallet: wallet, tmpl: tmpl}, nil
}

type formPage struct {
	WalletAddress string
	State         tokendom.Snapshot
}

// Index handles GET /.
func (h *FormHandler) Index(w http.ResponseWriter, r *http.Request) {
	addr, _ := h.wallet.Owner()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = h.tmpl.Execute(w, formPage{
		WalletAddress: addr,
		State:         h.svc.StateSnapshot(),
	})
}
