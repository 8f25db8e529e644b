package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedProfile struct {
	Username string `json:"username"`
	Bio      string `json:"bio"`
}

func setupMiniredis(t *testing.T) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
}

func TestAsideMissThenHit(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	fetchCalls := 0
	fetch := func(dest *cachedProfile) func() error {
		return func() error {
			fetchCalls++
			dest.Username = "ana"
			dest.Bio = "designer"
			return nil
		}
	}

	var first cachedProfile
	require.NoError(t, Aside(ctx, ProfileKey("ana"), &first, ProfileTTL, fetch(&first)))
	assert.Equal(t, 1, fetchCalls)
	assert.Equal(t, "ana", first.Username)

	// Second lookup is served from cache without another fetch.
	var second cachedProfile
	require.NoError(t, Aside(ctx, ProfileKey("ana"), &second, ProfileTTL, fetch(&second)))
	assert.Equal(t, 1, fetchCalls)
	assert.Equal(t, first, second)
}

func TestAsideFetchErrorNotCached(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	var dest cachedProfile
	fetchErr := errors.New("db unavailable")
	err := Aside(ctx, ProfileKey("bob"), &dest, ProfileTTL, func() error { return fetchErr })
	assert.ErrorIs(t, err, fetchErr)

	found, err := GetJSON(ctx, ProfileKey("bob"), &dest)
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestInvalidateProfile(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, ProfileKey("ana"), cachedProfile{Username: "ana"}, ProfileTTL))
	InvalidateProfile(ctx, "ana")

	var dest cachedProfile
	found, err := GetJSON(ctx, ProfileKey("ana"), &dest)
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestNilClientDegradesToNoCache(t *testing.T) {
	SetClient(nil)
	ctx := context.Background()

	fetchCalls := 0
	var dest cachedProfile
	for i := 0; i < 2; i++ {
		require.NoError(t, Aside(ctx, ProfileKey("ana"), &dest, ProfileTTL, func() error {
			fetchCalls++
			dest.Username = "ana"
			return nil
		}))
	}
	// Every lookup goes to the source when Redis is unavailable.
	assert.Equal(t, 2, fetchCalls)
}
