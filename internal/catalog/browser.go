package catalog

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"swiftride/internal/models"
)

// ErrSuperseded reports that a newer browse started while this one was in
// flight. The caller's result was discarded and must not be rendered.
var ErrSuperseded = errors.New("catalog: browse superseded by a newer request")

// BrowseQuery selects one upstream catalog page.
type BrowseQuery struct {
	Category models.VehicleCategory
	Page     int
	PageSize int
}

// FetchFunc retrieves one normalized catalog page.
type FetchFunc func(ctx context.Context, query BrowseQuery) (models.VehiclePage, error)

// Browser serializes listing state across overlapping fetches. Every browse
// is tagged with a monotonically increasing generation; a result that is no
// longer the newest generation when it lands is dropped instead of
// overwriting fresher data. A failed fetch likewise leaves the previous
// listing untouched.
type Browser struct {
	fetch FetchFunc

	gen atomic.Uint64

	mu     sync.RWMutex
	latest *models.VehiclePage
}

func NewBrowser(fetch FetchFunc) *Browser {
	return &Browser{fetch: fetch}
}

// Browse fetches a page and installs it as the current listing. When a newer
// browse started in the meantime the result is returned to no one:
// ErrSuperseded tells the caller to keep whatever it is showing.
func (b *Browser) Browse(ctx context.Context, query BrowseQuery) (models.VehiclePage, error) {
	myGen := b.gen.Add(1)

	page, err := b.fetch(ctx, query)
	if err != nil {
		return models.VehiclePage{}, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.gen.Load() != myGen {
		return models.VehiclePage{}, ErrSuperseded
	}
	b.latest = &page
	return page, nil
}

// Latest returns the most recent successfully installed listing, or false
// before the first successful browse.
func (b *Browser) Latest() (models.VehiclePage, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.latest == nil {
		return models.VehiclePage{}, false
	}
	return *b.latest, true
}
