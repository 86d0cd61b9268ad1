package cookiecart

import (
	"context"
	"testing"
	"time"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mapJar is an in-memory Jar for tests.
type mapJar struct {
	values map[string]string
}

func newMapJar() *mapJar {
	return &mapJar{values: make(map[string]string)}
}

func (j *mapJar) Get(name string) (string, bool) {
	value, ok := j.values[name]

	return value, ok
}

func (j *mapJar) Set(name, value string, _ int) {
	j.values[name] = value
}

func newTestStore() *Store {
	return NewStore(&config.CartConfig{
		CookieName:   "cartItems",
		CookieSecret: "test-secret",
		CookieTTL:    360 * 24 * time.Hour,
	})
}

func testContext(jar Jar) context.Context {
	return WithJar(context.Background(), jar)
}

func TestStoreAddAndLines(t *testing.T) {
	t.Parallel()

	store := newTestStore()
	jar := newMapJar()
	ctx := testContext(jar)
	anon := entity.AnonymousIdentity()

	require.NoError(t, store.Add(ctx, anon, &entity.CartLine{
		ProductID: 1, OptionIDs: entity.OptionSet{7, 3}, Quantity: 2, Price: 5000,
	}))
	require.NoError(t, store.Add(ctx, anon, &entity.CartLine{
		ProductID: 2, Quantity: 1, Price: 1200,
	}))

	lines, err := store.Lines(ctx, anon)
	require.NoError(t, err)
	require.Len(t, lines, 2)

	// First-added order is preserved and option sets come back normalized.
	assert.Equal(t, int64(1), lines[0].ProductID)
	assert.Equal(t, entity.OptionSet{3, 7}, lines[0].OptionIDs)
	assert.Equal(t, int32(2), lines[0].Quantity)
	assert.Equal(t, int64(5000), lines[0].Price)
	assert.Equal(t, int64(2), lines[1].ProductID)
}

func TestStoreRepeatAddMergesAndRefreshesPrice(t *testing.T) {
	t.Parallel()

	store := newTestStore()
	jar := newMapJar()
	ctx := testContext(jar)
	anon := entity.AnonymousIdentity()

	require.NoError(t, store.Add(ctx, anon, &entity.CartLine{
		ProductID: 1, OptionIDs: entity.OptionSet{3, 7}, Quantity: 1, Price: 5000,
	}))

	// Same selection in a different order, at a new catalog price.
	require.NoError(t, store.Add(ctx, anon, &entity.CartLine{
		ProductID: 1, OptionIDs: entity.OptionSet{7, 3}, Quantity: 2, Price: 6000,
	}))

	lines, err := store.Lines(ctx, anon)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, int32(3), lines[0].Quantity)
	assert.Equal(t, int64(6000), lines[0].Price, "repeat add refreshes the cookie snapshot price")
}

func TestStoreRepeatAddKeepsSnapshotWhenRefreshDisabled(t *testing.T) {
	t.Parallel()

	store := newTestStore()
	store.refreshPriceOnRepeatAdd = false
	jar := newMapJar()
	ctx := testContext(jar)
	anon := entity.AnonymousIdentity()

	require.NoError(t, store.Add(ctx, anon, &entity.CartLine{
		ProductID: 1, OptionIDs: entity.OptionSet{3, 7}, Quantity: 1, Price: 5000,
	}))
	require.NoError(t, store.Add(ctx, anon, &entity.CartLine{
		ProductID: 1, OptionIDs: entity.OptionSet{3, 7}, Quantity: 2, Price: 6000,
	}))

	lines, err := store.Lines(ctx, anon)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, int32(3), lines[0].Quantity)
	assert.Equal(t, int64(5000), lines[0].Price, "the snapshot survives when refresh is off")
}

func TestStoreSetQuantity(t *testing.T) {
	t.Parallel()

	store := newTestStore()
	jar := newMapJar()
	ctx := testContext(jar)
	anon := entity.AnonymousIdentity()

	require.NoError(t, store.Add(ctx, anon, &entity.CartLine{ProductID: 1, Quantity: 1, Price: 100}))

	require.NoError(t, store.SetQuantity(ctx, anon, 1, nil, 5))
	lines, err := store.Lines(ctx, anon)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, int32(5), lines[0].Quantity)

	// Zero quantity removes the line.
	require.NoError(t, store.SetQuantity(ctx, anon, 1, nil, 0))
	lines, err = store.Lines(ctx, anon)
	require.NoError(t, err)
	assert.Empty(t, lines)

	// Updating a missing line is an error.
	err = store.SetQuantity(ctx, anon, 99, nil, 1)
	assert.ErrorIs(t, err, repository.ErrCartLineNotFound)
}

func TestStoreRemove(t *testing.T) {
	t.Parallel()

	store := newTestStore()
	jar := newMapJar()
	ctx := testContext(jar)
	anon := entity.AnonymousIdentity()

	require.NoError(t, store.Add(ctx, anon, &entity.CartLine{ProductID: 1, Quantity: 1, Price: 100}))
	require.NoError(t, store.Remove(ctx, anon, 1, nil))

	lines, err := store.Lines(ctx, anon)
	require.NoError(t, err)
	assert.Empty(t, lines)

	// Removing again is a no-op.
	require.NoError(t, store.Remove(ctx, anon, 1, nil))
}

func TestStoreClear(t *testing.T) {
	t.Parallel()

	store := newTestStore()
	jar := newMapJar()
	ctx := testContext(jar)
	anon := entity.AnonymousIdentity()

	require.NoError(t, store.Add(ctx, anon, &entity.CartLine{ProductID: 1, Quantity: 1, Price: 100}))
	require.NoError(t, store.Add(ctx, anon, &entity.CartLine{ProductID: 2, Quantity: 1, Price: 200}))
	require.NoError(t, store.Clear(ctx, anon))

	lines, err := store.Lines(ctx, anon)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestStoreTamperedCookieReadsAsEmpty(t *testing.T) {
	t.Parallel()

	store := newTestStore()
	jar := newMapJar()
	ctx := testContext(jar)
	anon := entity.AnonymousIdentity()

	require.NoError(t, store.Add(ctx, anon, &entity.CartLine{ProductID: 1, Quantity: 1, Price: 100}))

	// Flip a byte of the cookie value.
	value := jar.values["cartItems"]
	jar.values["cartItems"] = "x" + value[1:]

	lines, err := store.Lines(ctx, anon)
	require.NoError(t, err)
	assert.Empty(t, lines, "a tampered cookie must never be trusted")
}

func TestStoreMissingJar(t *testing.T) {
	t.Parallel()

	store := newTestStore()
	_, err := store.Lines(context.Background(), entity.AnonymousIdentity())
	require.Error(t, err)
}

func TestCodecRoundTrip(t *testing.T) {
	t.Parallel()

	c := newCodec("secret")
	payload := &cartPayload{Lines: []cookieLine{{ProductID: 1, OptionIDs: []int64{3, 7}, Quantity: 2, Price: 5000}}}

	value, err := c.Encode(payload)
	require.NoError(t, err)

	decoded, err := c.Decode(value)
	require.NoError(t, err)
	assert.Equal(t, payload, decoded)

	// A different secret rejects the signature.
	_, err = newCodec("other").Decode(value)
	require.Error(t, err)
}
