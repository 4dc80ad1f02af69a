package tool

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownTool is returned when selecting an unregistered tool ID.
var ErrUnknownTool = errors.New("tool: unknown tool")

// ID names a tool in a Registry.
type ID string

// Built-in tool IDs, in palette order.
const (
	IDPencil        ID = "pencil"
	IDEraser        ID = "eraser"
	IDMarker        ID = "marker"
	IDBucket        ID = "bucket"
	IDColorSelector ID = "color-select"
	IDBoxSelector   ID = "box-select"
	IDEyedropper    ID = "eyedropper"
	IDDragger       ID = "dragger"
	IDHueChanger    ID = "hue"
	IDDarken        ID = "darken"
	IDLighten       ID = "lighten"
	IDSmoother      ID = "smoother"
	IDSmudger       ID = "smudger"
	IDWarper        ID = "warper"
)

// Registry owns one instance of every tool and tracks the active one.
// Instances live as long as the registry, so their settings survive
// switching tools.
type Registry struct {
	tools  map[ID]Tool
	order  []ID
	active ID
}

// NewRegistry returns a registry holding every built-in tool with the
// pencil active.
func NewRegistry() *Registry {
	r := &Registry{tools: make(map[ID]Tool)}
	r.Register(IDPencil, NewPencil())
	r.Register(IDEraser, NewEraser())
	r.Register(IDMarker, NewMarker())
	r.Register(IDBucket, NewBucket())
	r.Register(IDColorSelector, NewColorSelector())
	r.Register(IDBoxSelector, NewBoxSelector())
	r.Register(IDEyedropper, NewEyedropper())
	r.Register(IDDragger, NewDragger())
	r.Register(IDHueChanger, NewHueChanger())
	r.Register(IDDarken, NewShader(ShadeDark))
	r.Register(IDLighten, NewShader(ShadeLight))
	r.Register(IDSmoother, NewSmoother())
	r.Register(IDSmudger, NewSmudger())
	r.Register(IDWarper, NewWarper(nil))
	r.active = IDPencil
	return r
}

// Register adds or replaces the tool for id. The first registered tool
// becomes active.
func (r *Registry) Register(id ID, t Tool) {
	if _, ok := r.tools[id]; !ok {
		r.order = append(r.order, id)
	}
	r.tools[id] = t
	if r.active == "" {
		r.active = id
	}
}

// Get returns the tool for id.
func (r *Registry) Get(id ID) (Tool, bool) {
	t, ok := r.tools[id]
	return t, ok
}

// Select makes id the active tool. Switching from the eyedropper to the
// pencil or marker carries the picked alpha over.
func (r *Registry) Select(id ID) error {
	t, ok := r.tools[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTool, id)
	}
	if prev, ok := r.tools[r.active].(*Eyedropper); ok {
		switch t.(type) {
		case *Pencil, *Marker:
			t.Settings().SetStrength(prev.Settings().Strength)
		}
	}
	r.active = id
	return nil
}

// Active returns the active tool, or nil for an empty registry.
func (r *Registry) Active() Tool { return r.tools[r.active] }

// ActiveID returns the active tool's ID.
func (r *Registry) ActiveID() ID { return r.active }

// IDs returns the registered IDs in registration order.
func (r *Registry) IDs() []ID { return slices.Clone(r.order) }
