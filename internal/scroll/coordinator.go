// Package scroll tracks the scrollable children of a sheet and arbitrates
// which one drags and scroll requests are routed to.
package scroll

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// Deceleration rates applied to the active scrollable. Momentum is locked
// while the sheet is below its last snap point so a fling moves the sheet
// instead of the list.
const (
	DecelerationNormal = 0.998
	DecelerationLocked = 0.0
)

//go:generate mockgen -destination=mocks/scrollable.go -package=mocks github.com/llehouerou/sheet/internal/scroll Scrollable

// Scrollable is a child view whose content can scroll inside the sheet.
//
// ContentOffsetY is read from the motion goroutine and must be safe for
// concurrent use. The other methods are requests; implementations may apply
// them later on their own goroutine.
type Scrollable interface {
	ContentOffsetY() float64
	SetDecelerationRate(rate float64)
	FlashIndicators()
	ScrollTo(offset float64)
}

// Registration is a registered scrollable and the id it is known by.
type Registration struct {
	ID         string
	Scrollable Scrollable
}

// Coordinator keeps the set of registered scrollables and the active one.
type Coordinator struct {
	mu      sync.Mutex
	entries map[string]*Registration
	active  atomic.Pointer[Registration]
	logger  *slog.Logger
}

// NewCoordinator creates an empty coordinator. A nil logger discards output.
func NewCoordinator(logger *slog.Logger) *Coordinator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Coordinator{
		entries: make(map[string]*Registration),
		logger:  logger,
	}
}

// Register adds s under id, generating an id when empty. Registering an id
// again replaces its scrollable. The first registration becomes active when
// nothing else is.
func (c *Coordinator) Register(id string, s Scrollable) Registration {
	if id == "" {
		id = uuid.NewString()
	}
	reg := &Registration{ID: id, Scrollable: s}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[id] = reg
	if cur := c.active.Load(); cur == nil || cur.ID == id {
		c.active.Store(reg)
	}
	c.logger.Debug("scrollable registered", "id", id)
	return *reg
}

// Unregister removes id. It returns false when id was not registered.
// Removing the active scrollable leaves no scrollable active.
func (c *Coordinator) Unregister(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[id]; !ok {
		return false
	}
	delete(c.entries, id)
	if cur := c.active.Load(); cur != nil && cur.ID == id {
		c.active.Store(nil)
	}
	c.logger.Debug("scrollable unregistered", "id", id)
	return true
}

// SetActive makes id the scrollable that receives arbitration. It returns
// false when id is not registered.
func (c *Coordinator) SetActive(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	reg, ok := c.entries[id]
	if !ok {
		return false
	}
	c.active.Store(reg)
	return true
}

// Active returns the active registration.
func (c *Coordinator) Active() (Registration, bool) {
	reg := c.active.Load()
	if reg == nil {
		return Registration{}, false
	}
	return *reg, true
}

// Len returns the number of registered scrollables.
func (c *Coordinator) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// ContentOffsetY returns the live offset of the active scrollable, zero
// when none is registered.
func (c *Coordinator) ContentOffsetY() float64 {
	if reg := c.active.Load(); reg != nil {
		return reg.Scrollable.ContentOffsetY()
	}
	return 0
}

// SetDecelerationRate forwards rate to the active scrollable.
func (c *Coordinator) SetDecelerationRate(rate float64) {
	if reg := c.active.Load(); reg != nil {
		reg.Scrollable.SetDecelerationRate(rate)
	}
}

// FlashIndicators asks the active scrollable to flash its indicators.
func (c *Coordinator) FlashIndicators() {
	if reg := c.active.Load(); reg != nil {
		reg.Scrollable.FlashIndicators()
	}
}

// ScrollTo asks the active scrollable to move its content to offset.
// Negative offsets are clamped to zero.
func (c *Coordinator) ScrollTo(offset float64) {
	if reg := c.active.Load(); reg != nil {
		reg.Scrollable.ScrollTo(max(offset, 0))
	}
}
