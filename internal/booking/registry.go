package booking

import (
	"sync"
	"time"

	"swiftride/internal/models"
	"swiftride/pkg/logger"
)

// DraftTTL is how long an untouched draft survives before Sweep reclaims it.
const DraftTTL = 2 * time.Hour

// Registry holds the open booking drafts, keyed by draft id. Drafts are
// in-memory only; a restart abandons them, which is acceptable because
// nothing is charged or reserved until submission.
type Registry struct {
	mu     sync.RWMutex
	drafts map[string]*Flow
	log    *logger.Logger
}

func NewRegistry(log *logger.Logger) *Registry {
	return &Registry{
		drafts: make(map[string]*Flow),
		log:    log,
	}
}

// Open creates a draft for a vehicle and registers it.
func (r *Registry) Open(vehicle models.VehicleRecord) *Flow {
	flow := NewFlow(vehicle, r.log)

	r.mu.Lock()
	r.drafts[flow.ID()] = flow
	r.mu.Unlock()
	return flow
}

// Get looks up a draft by id.
func (r *Registry) Get(id string) (*Flow, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	flow, ok := r.drafts[id]
	return flow, ok
}

// Discard removes a draft. Removing an unknown id is a no-op.
func (r *Registry) Discard(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.drafts, id)
}

// Len reports the number of open drafts.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.drafts)
}

// Sweep drops drafts older than DraftTTL along with submitted ones, and
// returns how many were removed. Run it periodically from the server loop.
func (r *Registry) Sweep() int {
	cutoff := time.Now().UTC().Add(-DraftTTL)

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, flow := range r.drafts {
		if flow.State() == StateSubmitted || flow.createdAt.Before(cutoff) {
			delete(r.drafts, id)
			removed++
		}
	}
	return removed
}
