package region

import (
	"fmt"
	"sort"
	"sync"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// RegionID identifies a registry-owned region for the registry's lifetime.
type RegionID uint64

// Lifetime tags a named region with the boundary at which its owner intends
// to destroy it. The registry itself only acts on tags through
// DestroyLifetime; the tag is otherwise bookkeeping for the caller.
type Lifetime uint8

const (
	// LifetimeFrame regions are expected to be reset every frame.
	LifetimeFrame Lifetime = iota
	// LifetimeLevel regions live from level load to level unload.
	LifetimeLevel
	// LifetimePersistent regions live until process teardown.
	LifetimePersistent
)

func (l Lifetime) String() string {
	switch l {
	case LifetimeFrame:
		return "frame"
	case LifetimeLevel:
		return "level"
	case LifetimePersistent:
		return "persistent"
	default:
		return "unknown"
	}
}

type namedRegion struct {
	id       RegionID
	region   *Region
	lifetime Lifetime
}

// Registry owns named regions and their buffers. Lookups hand out borrowed
// references: ownership never leaves the registry, and Destroy/Close are the
// only places region buffers are released back to the runtime (heap-fallback
// allocations aside, which the runtime reclaims individually).
//
// Unlike a single region, the registry is safe for concurrent use; creation
// and destruction happen at load boundaries, never on the allocation hot
// path.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*namedRegion
	nextID  RegionID
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*namedRegion)}
}

// Create allocates a new owned region under a unique name. The name doubles
// as the region's metric label.
func (g *Registry) Create(name string, capacity int, lifetime Lifetime, opts ...Option) (RegionID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.entries[name]; ok {
		return 0, fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	g.nextID++
	r := NewRegion(capacity, append(opts, WithName(name))...)
	g.entries[name] = &namedRegion{id: g.nextID, region: r, lifetime: lifetime}
	publishRegionStats(r)
	zap.L().Debug("region created",
		zap.String("name", name),
		zap.Int("capacity", r.Capacity()),
		zap.Stringer("lifetime", lifetime))
	return g.nextID, nil
}

// Get returns a borrowed reference to a named region. Callers must not
// release it; they only allocate from it.
func (g *Registry) Get(name string) (*Region, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.entries[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return e.region, nil
}

// Destroy releases a named region's buffer and removes its entry and metric
// series.
func (g *Registry) Destroy(name string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	e, ok := g.entries[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	g.destroyLocked(name, e)
	return nil
}

// DestroyLifetime destroys every region carrying the given lifetime tag and
// returns how many were destroyed. Intended for level-unload boundaries.
func (g *Registry) DestroyLifetime(lifetime Lifetime) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	n := 0
	for name, e := range g.entries {
		if e.lifetime == lifetime {
			g.destroyLocked(name, e)
			n++
		}
	}
	return n
}

func (g *Registry) destroyLocked(name string, e *namedRegion) {
	e.region.Release()
	delete(g.entries, name)
	dropRegionStats(name)
	zap.L().Debug("region destroyed",
		zap.String("name", name),
		zap.Stringer("lifetime", e.lifetime))
}

// Names returns the registered region names in sorted order.
func (g *Registry) Names() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	names := lo.Keys(g.entries)
	sort.Strings(names)
	return names
}

// TotalUsed returns the summed cursor positions of all owned regions.
func (g *Registry) TotalUsed() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return lo.SumBy(lo.Values(g.entries), func(e *namedRegion) int {
		return e.region.Used()
	})
}

// TotalCapacity returns the summed capacities of all owned regions.
func (g *Registry) TotalCapacity() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return lo.SumBy(lo.Values(g.entries), func(e *namedRegion) int {
		return e.region.Capacity()
	})
}

// PublishMetrics refreshes the per-region prometheus gauges. It reads
// allocator state but never mutates it; call it from a metrics tick or after
// frame boundaries.
func (g *Registry) PublishMetrics() {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, e := range g.entries {
		publishRegionStats(e.region)
	}
}

// Close destroys every owned region. This is the single teardown point at
// which registry-owned buffers go back to the runtime.
func (g *Registry) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	for name, e := range g.entries {
		g.destroyLocked(name, e)
	}
}
