package tinky

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psylone/tinky/tinvest"
)

func TestNameCacheWarm(t *testing.T) {
	b := newFakeBroker()
	b.instruments["share-uid"] = &tinvest.Instrument{UID: "share-uid", Figi: "BBG01", Name: "Gazprom"}

	cache := NewNameCache()
	p, err := NewPosition(sharePosition("share-uid", "BBG01", "GAZP", 10))
	require.NoError(t, err)

	failures := cache.Warm(context.Background(), b, []Position{p})
	assert.Empty(t, failures)
	assert.Equal(t, "Gazprom", cache.Resolve(p))

	// the exchange identifier resolves to the same name
	figiOnly := Position{Figi: "BBG01", Ticker: "GAZP", Type: Share}
	assert.Equal(t, "Gazprom", cache.Resolve(figiOnly))
}

func TestNameCacheMemoizes(t *testing.T) {
	b := newFakeBroker()
	b.instruments["share-uid"] = &tinvest.Instrument{UID: "share-uid", Name: "Gazprom"}

	cache := NewNameCache()
	p, err := NewPosition(sharePosition("share-uid", "BBG01", "GAZP", 10))
	require.NoError(t, err)

	// same id in the list twice, and warmed twice: one lookup total
	cache.Warm(context.Background(), b, []Position{p, p})
	cache.Warm(context.Background(), b, []Position{p})
	assert.Equal(t, 1, b.instrumentCalls["share-uid"])
}

func TestNameCacheLookupFailure(t *testing.T) {
	b := newFakeBroker()
	b.instrumentErr["bad-uid"] = &tinvest.Error{Status: 500, Body: "internal"}
	b.instruments["good-uid"] = &tinvest.Instrument{UID: "good-uid", Name: "Lukoil"}

	cache := NewNameCache()
	bad, err := NewPosition(sharePosition("bad-uid", "BBG02", "BAD", 1))
	require.NoError(t, err)
	good, err := NewPosition(sharePosition("good-uid", "BBG03", "LKOH", 1))
	require.NoError(t, err)

	// one failing lookup must not abort the build
	failures := cache.Warm(context.Background(), b, []Position{bad, good})
	require.Len(t, failures, 1)
	assert.Equal(t, "bad-uid", failures[0].ID)
	assert.Equal(t, "instrument", failures[0].Op)

	// the failed id still yields a usable name: the exchange symbol
	assert.Equal(t, "BAD", cache.Resolve(bad))
	assert.Equal(t, "Lukoil", cache.Resolve(good))

	// the failure is memoized for this cycle
	cache.Warm(context.Background(), b, []Position{bad})
	assert.Equal(t, 2, b.instrumentCalls["bad-uid"], "a new warm-up may retry a transient failure")
}

func TestNameCacheFigiFallbackLookup(t *testing.T) {
	// without a uid, the exchange identifier is both the lookup id and
	// the key
	b := newFakeBroker()
	b.instruments["BBG04"] = &tinvest.Instrument{Figi: "BBG04", Name: "Sberbank"}

	cache := NewNameCache()
	p, err := NewPosition(sharePosition("", "BBG04", "SBER", 1))
	require.NoError(t, err)

	failures := cache.Warm(context.Background(), b, []Position{p})
	assert.Empty(t, failures)
	assert.Equal(t, "Sberbank", cache.Resolve(p))
	assert.Equal(t, 1, cache.Len())
}

func TestNameCacheResolveUnknown(t *testing.T) {
	cache := NewNameCache()
	p := Position{Figi: "BBG05", Ticker: "MGNT", Type: Share}
	assert.Equal(t, "MGNT", cache.Resolve(p))

	noTicker := Position{Figi: "BBG06", Type: Share}
	assert.Equal(t, "BBG06", cache.Resolve(noTicker))
}
