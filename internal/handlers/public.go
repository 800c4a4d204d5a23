package handlers

import (
	"net/http"
	"os"
	"path/filepath"
)

// PublicHandler serves the prebuilt pages and static assets for the
// storefront. It is a thin asset-server collaborator: a path maps to bytes
// on disk or a 404, nothing more.
type PublicHandler struct {
	dir string
}

// NewPublicHandler creates a handler serving files from dir
func NewPublicHandler(dir string) *PublicHandler {
	return &PublicHandler{dir: dir}
}

// Index serves the event listing page
func (h *PublicHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.servePage(w, r, "index.html")
}

// EventPage serves the event detail page; the page itself fetches the event
// by the id in its URL.
func (h *PublicHandler) EventPage(w http.ResponseWriter, r *http.Request) {
	h.servePage(w, r, "event.html")
}

// CartPage serves the cart page
func (h *PublicHandler) CartPage(w http.ResponseWriter, r *http.Request) {
	h.servePage(w, r, "cart.html")
}

// CartSummaryPage serves the cart summary page
func (h *PublicHandler) CartSummaryPage(w http.ResponseWriter, r *http.Request) {
	h.servePage(w, r, "cart-summary.html")
}

// Static serves any other file under the public directory, or 404
func (h *PublicHandler) Static(w http.ResponseWriter, r *http.Request) {
	path := filepath.Join(h.dir, filepath.Clean("/"+r.URL.Path))

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}

	http.ServeFile(w, r, path)
}

func (h *PublicHandler) servePage(w http.ResponseWriter, r *http.Request, name string) {
	path := filepath.Join(h.dir, name)

	if _, err := os.Stat(path); err != nil {
		http.NotFound(w, r)
		return
	}

	http.ServeFile(w, r, path)
}
