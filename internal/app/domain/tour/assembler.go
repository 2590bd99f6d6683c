// Package tour turns stored panoramas and points of interest into the
// navigable scene graph consumed by the panorama viewer.
package tour

import (
	"github.com/google/uuid"

	"github.com/pandusatria/wisata-tour/internal/app/models"
)

// LinkMode selects how scenes are chained together.
type LinkMode int

const (
	// LinkRing closes the tour into a ring: the last scene links forward
	// to the first. Default.
	LinkRing LinkMode = iota
	// LinkChain stops at the last scene, matching the older viewer
	// behavior.
	LinkChain
)

// Position is a 3-D offset inside a scene, in viewer coordinates.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Hotspot is a clickable marker that opens the detail overlay.
type Hotspot struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Position    Position  `json:"position"`
}

// NavLink points at another scene, with the arrow placed at Position.
type NavLink struct {
	TargetKey string   `json:"target_key"`
	Position  Position `json:"position"`
}

// Scene is one renderable viewpoint with its markers and navigation edges.
type Scene struct {
	Key                   string    `json:"key"`
	Name                  string    `json:"name"`
	Description           string    `json:"description"`
	Image                 string    `json:"image"`
	DisplayOrder          int       `json:"display_order"`
	Hotspots              []Hotspot `json:"hotspots"`
	Links                 []NavLink `json:"links"`
	ShowTestimonialPrompt bool      `json:"show_testimonial_prompt"`
}

// Graph is the assembled tour. Scenes keep panorama display order.
type Graph struct {
	Scenes  []Scene `json:"scenes"`
	Skipped int     `json:"skipped_points_of_interest"`
}

// Navigation arrows sit ahead of and behind the camera, mirroring the
// offsets the viewer has always used.
var (
	forwardLinkPosition  = Position{X: 3000, Y: 0, Z: 500}
	backwardLinkPosition = Position{X: -3000, Y: 0, Z: 500}
)

// Assemble builds one scene per panorama, attaches every point of interest
// to its owning scene and wires bidirectional navigation edges. Points of
// interest referencing an unknown panorama are skipped and counted, never
// dropped silently.
func Assemble(panoramas []models.Panorama, pois []models.PointOfInterest, mode LinkMode) *Graph {
	graph := &Graph{Scenes: make([]Scene, 0, len(panoramas))}
	index := make(map[string]int, len(panoramas))

	for i, p := range panoramas {
		key := p.ID.String()
		graph.Scenes = append(graph.Scenes, Scene{
			Key:          key,
			Name:         p.Name,
			Description:  p.Description,
			Image:        p.Image,
			DisplayOrder: p.DisplayOrder,
			Hotspots:     []Hotspot{},
			Links:        []NavLink{},
		})
		index[key] = i
	}

	for _, poi := range pois {
		i, ok := index[poi.PanoramaID.String()]
		if !ok {
			graph.Skipped++
			continue
		}
		graph.Scenes[i].Hotspots = append(graph.Scenes[i].Hotspots, Hotspot{
			ID:          poi.ID,
			Title:       poi.Title,
			Description: poi.Description,
			Image:       poi.Image,
			Position:    Position{X: poi.PositionX, Y: poi.PositionY, Z: poi.PositionZ},
		})
	}

	linkScenes(graph.Scenes, mode)

	// The completion prompt belongs to the final scene in display order.
	if n := len(graph.Scenes); n > 0 {
		graph.Scenes[n-1].ShowTestimonialPrompt = true
	}

	return graph
}

// linkScenes wires i -> i+1 and back for each neighboring pair; in ring
// mode the pair (last, first) is a neighbor too.
func linkScenes(scenes []Scene, mode LinkMode) {
	n := len(scenes)
	if n < 2 {
		return
	}

	last := n - 1
	if mode == LinkRing {
		last = n
	}
	for i := 0; i < last; i++ {
		next := (i + 1) % n
		scenes[i].Links = append(scenes[i].Links, NavLink{
			TargetKey: scenes[next].Key,
			Position:  forwardLinkPosition,
		})
		scenes[next].Links = append(scenes[next].Links, NavLink{
			TargetKey: scenes[i].Key,
			Position:  backwardLinkPosition,
		})
	}
}

// Scene returns the scene with the given key, or nil.
func (g *Graph) Scene(key string) *Scene {
	for i := range g.Scenes {
		if g.Scenes[i].Key == key {
			return &g.Scenes[i]
		}
	}
	return nil
}
