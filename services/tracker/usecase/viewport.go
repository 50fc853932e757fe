package usecase

import (
	"sync"
	"time"

	"github.com/mototrack/mototrack/internal/pkg/logger"
	"github.com/mototrack/mototrack/internal/pkg/models"
	"github.com/mototrack/mototrack/services/tracker"
)

// Viewport is one map display surface with its own center, zoom, and marker.
// Viewports are session-scoped; they have no persisted identity.
type Viewport struct {
	Name    string
	Center  models.Coordinates
	Zoom    int
	Primary bool // the overview viewport; recentred stochastically
	Marker  *Marker
}

// Marker is the vehicle's visual position on one viewport. Once created it is
// never removed and never reset to the no-fix sentinel.
type Marker struct {
	Position models.Coordinates
	Popup    models.MarkerPopup
}

// ViewportSpec declares a viewport the dashboard needs
type ViewportSpec struct {
	Name    string
	Center  models.Coordinates
	Zoom    int
	Primary bool
}

// retryDelays is the bounded ensure-viewport schedule: attempts after a
// triggering event, then give up until the next real event.
var retryDelays = []time.Duration{0, 100 * time.Millisecond, 500 * time.Millisecond, 2 * time.Second}

// ViewportRegistry tracks which viewports exist and creates them lazily once
// their backing containers are present. Creation is idempotent per name.
type ViewportRegistry struct {
	mu        sync.Mutex
	renderer  tracker.MapRenderer
	specs     []ViewportSpec
	viewports map[string]*Viewport
	active    string

	// afterFunc schedules a retry attempt; replaced in tests
	afterFunc func(time.Duration, func())
}

// NewViewportRegistry creates a registry for the declared viewports
func NewViewportRegistry(renderer tracker.MapRenderer, specs []ViewportSpec) *ViewportRegistry {
	return &ViewportRegistry{
		renderer:  renderer,
		specs:     specs,
		viewports: make(map[string]*Viewport),
		afterFunc: func(d time.Duration, f func()) { time.AfterFunc(d, f) },
	}
}

// EnsureViewport returns the viewport with the given name, creating it if the
// backing container is present. Returns nil when the container does not exist
// yet; callers retry via Kick rather than treating this as an error.
func (r *ViewportRegistry) EnsureViewport(name string, center models.Coordinates, zoom int) *Viewport {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ensureLocked(name, center, zoom)
}

func (r *ViewportRegistry) ensureLocked(name string, center models.Coordinates, zoom int) *Viewport {
	if vp, ok := r.viewports[name]; ok {
		return vp
	}

	if !r.renderer.ContainerReady(name) {
		logger.Debug("Viewport container not present yet",
			logger.String("viewport", name))
		return nil
	}

	vp := &Viewport{
		Name:    name,
		Center:  center,
		Zoom:    zoom,
		Primary: r.isPrimary(name),
	}
	r.viewports[name] = vp

	logger.Info("Viewport created",
		logger.String("viewport", name),
		logger.Float64("lat", center.Latitude),
		logger.Float64("lng", center.Longitude))
	return vp
}

func (r *ViewportRegistry) isPrimary(name string) bool {
	for _, spec := range r.specs {
		if spec.Name == name {
			return spec.Primary
		}
	}
	return false
}

// Kick runs the bounded retry schedule for every declared viewport that does
// not exist yet. Safe to call redundantly; attempts for viewports that were
// created in the meantime are no-ops.
func (r *ViewportRegistry) Kick(trigger string) {
	if !r.MissingAny() {
		return
	}

	logger.Debug("Scheduling viewport creation attempts",
		logger.String("trigger", trigger))

	for _, delay := range retryDelays {
		r.afterFunc(delay, r.ensureAll)
	}
}

func (r *ViewportRegistry) ensureAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, spec := range r.specs {
		r.ensureLocked(spec.Name, spec.Center, spec.Zoom)
	}
}

// MissingAny reports whether any declared viewport has not been created yet
func (r *ViewportRegistry) MissingAny() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, spec := range r.specs {
		if _, ok := r.viewports[spec.Name]; !ok {
			return true
		}
	}
	return false
}

// All returns every created viewport
func (r *ViewportRegistry) All() []*Viewport {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*Viewport, 0, len(r.viewports))
	for _, spec := range r.specs {
		if vp, ok := r.viewports[spec.Name]; ok {
			out = append(out, vp)
		}
	}
	return out
}

// Get returns a viewport by name, or nil
func (r *ViewportRegistry) Get(name string) *Viewport {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.viewports[name]
}

// SetActive records which viewport is the currently focused view
func (r *ViewportRegistry) SetActive(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.active = name
}

// Active returns the name of the currently focused viewport
func (r *ViewportRegistry) Active() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active
}
