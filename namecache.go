package tinky

import (
	"context"

	"github.com/psylone/tinky/tinvest"
)

// NameCache resolves opaque instrument identifiers to display names.
//
// Successful resolutions are memoized for the life of the cache, which
// may span report cycles: instrument identity is stable. Failed lookups
// are remembered only for the current warm-up, so a transient error is
// never retried within one cycle but is retried on the next.
type NameCache struct {
	names  map[string]string
	missed map[string]string // fallback names of this cycle's failed lookups
}

// NewNameCache returns an empty cache.
func NewNameCache() *NameCache {
	return &NameCache{
		names:  make(map[string]string),
		missed: make(map[string]string),
	}
}

// Warm resolves every position's display name before any of them is
// needed, issuing at most one lookup per identifier. A failed lookup
// must not abort the build: the instrument keeps its exchange symbol as
// the display name and the failure is reported to the caller.
func (c *NameCache) Warm(ctx context.Context, b Broker, positions []Position) []Failure {
	c.missed = make(map[string]string, len(c.missed))
	var failures []Failure

	for _, p := range positions {
		id := p.ID()
		if id == "" {
			// nothing to look up; Resolve falls back to the symbol
			continue
		}
		if _, ok := c.names[id]; ok {
			continue
		}

		idType := tinvest.IDTypeUID
		if p.UID == "" {
			idType = tinvest.IDTypeFigi
		}
		instrument, err := b.Instrument(ctx, idType, id)
		if err != nil {
			c.missed[id] = fallbackName(p)
			failures = append(failures, Failure{ID: id, Op: "instrument", Err: err})
			continue
		}

		// register both identifiers, so dividend and coupon results can
		// be linked back through either one
		c.names[id] = instrument.Name
		if p.UID != "" && p.Figi != "" && p.Figi != p.UID {
			c.names[p.Figi] = instrument.Name
		}
	}
	return failures
}

// Resolve returns the display name of a position: the cached instrument
// name when the lookup succeeded, the exchange symbol otherwise.
func (c *NameCache) Resolve(p Position) string {
	if p.UID != "" {
		if name, ok := c.names[p.UID]; ok {
			return name
		}
	}
	if p.Figi != "" {
		if name, ok := c.names[p.Figi]; ok {
			return name
		}
	}
	if name, ok := c.missed[p.ID()]; ok {
		return name
	}
	return fallbackName(p)
}

func fallbackName(p Position) string {
	if p.Ticker != "" {
		return p.Ticker
	}
	return p.Figi
}

// Len returns the number of successfully resolved identifiers.
func (c *NameCache) Len() int { return len(c.names) }
