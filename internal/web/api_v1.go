package web

import (
	"encoding/json"
	"fmt"
	"image/color"
	"net/http"

	"github.com/skip2/go-qrcode"
)

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type okResponse struct {
	OK bool `json:"ok"`
}

type iconResponse struct {
	Name  string `json:"name"`
	Size  int    `json:"size"`
	Bytes int    `json:"bytes"`
	URL   string `json:"url"`
	ETag  string `json:"etag"`
}

type iconsResponse struct {
	Icons []iconResponse `json:"icons"`
}

type panelResponse struct {
	Box    [4]int `json:"box"`
	Radius int    `json:"radius"`
	Alpha  uint8  `json:"alpha"`
}

type sparkleResponse struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Radius int `json:"radius"`
}

type designResponse struct {
	Size         int               `json:"size"`
	GradientFrom string            `json:"gradientFrom"`
	GradientTo   string            `json:"gradientTo"`
	BlurSigma    float64           `json:"blurSigma"`
	GlassPanels  []panelResponse   `json:"glassPanels"`
	BracketWidth int               `json:"bracketWidth"`
	Sparkles     []sparkleResponse `json:"sparkles"`
}

func apiV1Router(deps Deps) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", handleHealth)
	mux.HandleFunc("/icons", func(w http.ResponseWriter, r *http.Request) { handleIcons(w, r, deps) })
	mux.HandleFunc("/design", func(w http.ResponseWriter, r *http.Request) { handleDesign(w, r, deps) })
	mux.HandleFunc("/qr.png", handleQRCode)
	return mux
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

func handleIcons(w http.ResponseWriter, r *http.Request, deps Deps) {
	if !allowGet(w, r) {
		return
	}
	if deps.Icons == nil {
		writeAPIError(w, http.StatusServiceUnavailable, "not_ready", "icons not rendered")
		return
	}
	resp := iconsResponse{Icons: []iconResponse{}}
	for _, icon := range deps.Icons.List() {
		resp.Icons = append(resp.Icons, iconResponse{
			Name:  icon.Name,
			Size:  icon.Size,
			Bytes: len(icon.Data),
			URL:   "/icons/" + icon.Name,
			ETag:  icon.ETag,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func handleDesign(w http.ResponseWriter, r *http.Request, deps Deps) {
	if !allowGet(w, r) {
		return
	}
	d := deps.Design
	resp := designResponse{
		Size:         d.Size,
		GradientFrom: hexColor(d.GradientFrom),
		GradientTo:   hexColor(d.GradientTo),
		BlurSigma:    d.BlurSigma,
		BracketWidth: d.BracketWidth,
		GlassPanels:  []panelResponse{},
		Sparkles:     []sparkleResponse{},
	}
	for _, p := range d.GlassPanels() {
		// Report the inclusive box the panel was specified with.
		resp.GlassPanels = append(resp.GlassPanels, panelResponse{
			Box:    [4]int{p.Bounds.Min.X, p.Bounds.Min.Y, p.Bounds.Max.X - 1, p.Bounds.Max.Y - 1},
			Radius: p.Radius,
			Alpha:  p.Fill.A,
		})
	}
	for _, s := range d.Sparkles {
		resp.Sparkles = append(resp.Sparkles, sparkleResponse{X: s.X, Y: s.Y, Radius: s.Radius})
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleQRCode returns a QR code pointing at the server root as seen by
// the client.
func handleQRCode(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	png, err := qrcode.Encode("http://"+r.Host+"/", qrcode.Medium, defaultQRCodeSizePx)
	if err != nil {
		writeAPIError(w, http.StatusInternalServerError, "qr_failed", err.Error())
		return
	}
	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}

func allowGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return true
	}
	writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
	return false
}

func hexColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeAPIError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, apiError{Error: code, Message: message})
}
