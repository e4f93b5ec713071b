package scene

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownScene is returned when a scene name matches no built-in scene
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string // Name used to load the scene
	DisplayName string // Human readable name
	Description string // One line summary
}

// Constructor builds a scene from options
type Constructor func(opts Options) (*Scene, error)

type builtinScene struct {
	description string
	build       Constructor
}

var builtinScenes = map[string]builtinScene{
	"default": {"Diffuse, hollow glass and metal spheres on a ground sphere", NewDefaultScene},
	"random":  {"Hundreds of small random spheres around three large ones", NewRandomScene},
	"metals":  {"Grid of metal spheres with increasing fuzz", NewMetalsScene},
	"glass":   {"Dielectric spheres of increasing refractive index", NewGlassScene},
}

// ListScenes returns the built-in scenes sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for id, s := range builtinScenes {
		scenes = append(scenes, SceneInfo{
			ID:          id,
			DisplayName: titleCase(id),
			Description: s.description,
		})
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// Load builds the built-in scene called name. Names are case-insensitive.
func Load(name string, opts Options) (*Scene, error) {
	id := strings.ToLower(strings.TrimSpace(name))
	s, ok := builtinScenes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}

	sc, err := s.build(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build scene %q: %w", id, err)
	}
	return sc, nil
}

// titleCase converts a filename-style string to title case
// e.g., "hollow-glass" -> "Hollow Glass"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}

	return strings.Join(words, " ")
}
