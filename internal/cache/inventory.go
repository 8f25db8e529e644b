package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	ProfileKeyPrefix = "profile:%s"
	ItemsKeyPrefix   = "items:%d"
	LinksKeyPrefix   = "links:%d"
)

const (
	ProfileTTL = 5 * time.Minute
	ItemsTTL   = 2 * time.Minute
	LinksTTL   = 10 * time.Minute
)

// ProfileKey keys the public profile lookup by username.
func ProfileKey(username string) string {
	return fmt.Sprintf(ProfileKeyPrefix, username)
}

// ItemsKey keys the portfolio item list of one owner.
func ItemsKey(userID uint) string {
	return fmt.Sprintf(ItemsKeyPrefix, userID)
}

// LinksKey keys the social link list of one owner.
func LinksKey(userID uint) string {
	return fmt.Sprintf(LinksKeyPrefix, userID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidateProfile drops the cached public profile after a profile update.
func InvalidateProfile(ctx context.Context, username string) {
	Invalidate(ctx, ProfileKey(username))
}

// InvalidateItems drops the cached item list after any item mutation.
func InvalidateItems(ctx context.Context, userID uint) {
	Invalidate(ctx, ItemsKey(userID))
}

// InvalidateLinks drops the cached link list after any link mutation.
func InvalidateLinks(ctx context.Context, userID uint) {
	Invalidate(ctx, LinksKey(userID))
}
