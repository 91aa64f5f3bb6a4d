package web

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rook-computer/glassicon/internal/output"
)

// Icon is an encoded artifact held in memory.
type Icon struct {
	Name string
	Size int
	Data []byte
	ETag string
}

// IconSet serves pre-encoded icons by file name.
type IconSet struct {
	icons  []Icon
	byName map[string]int
	// modTime is fixed at construction so conditional requests are stable.
	modTime time.Time
}

// NewIconSet encodes every artifact once.
func NewIconSet(artifacts []output.Artifact) (*IconSet, error) {
	set := &IconSet{byName: make(map[string]int, len(artifacts)), modTime: time.Now()}
	for _, a := range artifacts {
		if _, dup := set.byName[a.Name]; dup {
			return nil, fmt.Errorf("duplicate icon name %q", a.Name)
		}
		data, err := output.EncodeBytes(a.Image)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", a.Name, err)
		}
		sum := sha256.Sum256(data)
		set.byName[a.Name] = len(set.icons)
		set.icons = append(set.icons, Icon{
			Name: a.Name,
			Size: a.Size,
			Data: data,
			ETag: `"` + hex.EncodeToString(sum[:8]) + `"`,
		})
	}
	return set, nil
}

// List returns the icons in artifact order.
func (s *IconSet) List() []Icon {
	return append([]Icon(nil), s.icons...)
}

// Get looks up an icon by file name.
func (s *IconSet) Get(name string) (Icon, bool) {
	i, ok := s.byName[name]
	if !ok {
		return Icon{}, false
	}
	return s.icons[i], true
}

// ServeHTTP serves the icon named by the request path (without prefix).
func (s *IconSet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	icon, ok := s.Get(strings.TrimPrefix(r.URL.Path, "/"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("ETag", icon.ETag)
	w.Header().Set("Cache-Control", "no-cache")
	http.ServeContent(w, r, icon.Name, s.modTime, bytes.NewReader(icon.Data))
}
