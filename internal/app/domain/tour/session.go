package tour

import (
	"sync"

	"github.com/google/uuid"
	"github.com/pandusatria/wisata-tour/internal/app/models"
)

// Session tracks one viewer walking a Graph. Hotspots are handed out the
// first time a scene is entered and never again for that scene, the
// testimonial prompt fires at most once per session, and at most one
// detail overlay is open at a time.
type Session struct {
	mu          sync.Mutex
	graph       *Graph
	populated   map[string]bool
	promptShown bool
	overlay     *Hotspot
}

// EnterResult is what the viewer needs when switching to a scene.
type EnterResult struct {
	Scene      *Scene
	Hotspots   []Hotspot
	ShowPrompt bool
}

func NewSession(graph *Graph) *Session {
	return &Session{
		graph:     graph,
		populated: make(map[string]bool, len(graph.Scenes)),
	}
}

// Enter activates the scene with the given key. Hotspots come back only on
// the first entry; re-entering yields an empty slice so markers are never
// attached twice.
func (s *Session) Enter(key string) (*EnterResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	scene := s.graph.Scene(key)
	if scene == nil {
		return nil, models.ErrNotFound
	}

	res := &EnterResult{Scene: scene, Hotspots: []Hotspot{}}
	if !s.populated[key] {
		s.populated[key] = true
		res.Hotspots = scene.Hotspots
	}
	if scene.ShowTestimonialPrompt && !s.promptShown {
		s.promptShown = true
		res.ShowPrompt = true
	}
	return res, nil
}

// OpenOverlay opens the detail overlay for a hotspot, replacing whichever
// overlay was open before.
func (s *Session) OpenOverlay(sceneKey string, hotspotID uuid.UUID) (*Hotspot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	scene := s.graph.Scene(sceneKey)
	if scene == nil {
		return nil, models.ErrNotFound
	}
	for i := range scene.Hotspots {
		if scene.Hotspots[i].ID == hotspotID {
			s.overlay = &scene.Hotspots[i]
			return s.overlay, nil
		}
	}
	return nil, models.ErrNotFound
}

// CloseOverlay dismisses the open overlay, if any.
func (s *Session) CloseOverlay() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overlay = nil
}

// Overlay returns the currently open overlay, or nil.
func (s *Session) Overlay() *Hotspot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.overlay
}
