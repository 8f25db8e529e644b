package repository

import (
	"context"
	"testing"
	"time"

	"folio/internal/cache"
	"folio/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.PortfolioItem{},
		&models.SocialLink{},
		&models.ContactMessage{},
	))

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := &models.User{
		Username:    username,
		Email:       username + "@example.com",
		Password:    "hashed-password",
		DisplayName: "Test " + username,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestUserRepositoryCreateAndLookups(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &models.User{
		Username:    "ada",
		Email:       "ada@example.com",
		Password:    "hashed",
		DisplayName: "Ada Lovelace",
	}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotZero(t, user.ID)

	byID, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada", byID.Username)

	byEmail, err := repo.GetByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, user.ID, byEmail.ID)

	byUsername, err := repo.GetByUsername(ctx, "ada")
	require.NoError(t, err)
	require.NotNil(t, byUsername)
	assert.Equal(t, "Ada Lovelace", byUsername.DisplayName)
}

func TestUserRepositoryLookupMissReturnsNilNil(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	byEmail, err := repo.GetByEmail(ctx, "ghost@example.com")
	assert.NoError(t, err)
	assert.Nil(t, byEmail)

	byUsername, err := repo.GetByUsername(ctx, "ghost")
	assert.NoError(t, err)
	assert.Nil(t, byUsername)
}

func TestUserRepositoryGetByIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	_, err := repo.GetByID(context.Background(), 999)
	require.Error(t, err)

	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestUserRepositoryDuplicateUsername(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	createTestUser(t, db, "ada")

	err := repo.Create(ctx, &models.User{
		Username: "ada",
		Email:    "other@example.com",
		Password: "hashed",
	})
	require.Error(t, err)

	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestUserRepositoryUpdate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "ada")
	user.Bio = "Analyst and programmer"
	user.DisplayName = "A. Lovelace"
	require.NoError(t, repo.Update(ctx, user))

	reloaded, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Analyst and programmer", reloaded.Bio)
	assert.Equal(t, "A. Lovelace", reloaded.DisplayName)
}

func TestUserRepositoryUpdateInvalidatesCachedProfile(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache.SetClient(client)
	t.Cleanup(func() { cache.SetClient(nil) })

	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "ada")

	// First lookup populates the cache.
	first, err := repo.GetByUsername(ctx, "ada")
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.True(t, mr.Exists(cache.ProfileKey("ada")))

	user.Bio = "updated bio"
	require.NoError(t, repo.Update(ctx, user))
	assert.False(t, mr.Exists(cache.ProfileKey("ada")))

	fresh, err := repo.GetByUsername(ctx, "ada")
	require.NoError(t, err)
	require.NotNil(t, fresh)
	assert.Equal(t, "updated bio", fresh.Bio)
}

func TestItemRepositoryMutationsInvalidateCachedList(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache.SetClient(client)
	t.Cleanup(func() { cache.SetClient(nil) })

	db := setupTestDB(t)
	repo := NewItemRepository(db)
	ctx := context.Background()
	user := createTestUser(t, db, "ada")

	item := &models.PortfolioItem{
		UserID: user.ID, ContentType: models.ContentTypeProject, Title: "first",
	}
	require.NoError(t, repo.Create(ctx, item))

	items, err := repo.ListByOwner(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, mr.Exists(cache.ItemsKey(user.ID)))

	// Creating a second item drops the cached list, so it shows up immediately.
	require.NoError(t, repo.Create(ctx, &models.PortfolioItem{
		UserID: user.ID, ContentType: models.ContentTypeBlog, Title: "second",
	}))
	assert.False(t, mr.Exists(cache.ItemsKey(user.ID)))

	items, err = repo.ListByOwner(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestItemRepositoryListNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewItemRepository(db)
	ctx := context.Background()
	user := createTestUser(t, db, "ada")

	base := time.Now().Add(-time.Hour)
	titles := []string{"first", "second", "third"}
	for i, title := range titles {
		item := &models.PortfolioItem{
			UserID:      user.ID,
			ContentType: models.ContentTypeProject,
			Title:       title,
		}
		require.NoError(t, repo.Create(ctx, item))
		require.NoError(t, db.Model(item).
			UpdateColumn("created_at", base.Add(time.Duration(i)*time.Minute)).Error)
	}

	items, err := repo.ListByOwner(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "third", items[0].Title)
	assert.Equal(t, "second", items[1].Title)
	assert.Equal(t, "first", items[2].Title)
}

func TestItemRepositoryListScopedToOwner(t *testing.T) {
	db := setupTestDB(t)
	repo := NewItemRepository(db)
	ctx := context.Background()
	ada := createTestUser(t, db, "ada")
	grace := createTestUser(t, db, "grace")

	require.NoError(t, repo.Create(ctx, &models.PortfolioItem{
		UserID: ada.ID, ContentType: models.ContentTypeImage, Title: "ada-item",
	}))
	require.NoError(t, repo.Create(ctx, &models.PortfolioItem{
		UserID: grace.ID, ContentType: models.ContentTypeBlog, Title: "grace-item",
	}))

	items, err := repo.ListByOwner(ctx, ada.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "ada-item", items[0].Title)
}

func TestItemRepositoryUpdatePersistsTags(t *testing.T) {
	db := setupTestDB(t)
	repo := NewItemRepository(db)
	ctx := context.Background()
	user := createTestUser(t, db, "ada")

	item := &models.PortfolioItem{
		UserID:      user.ID,
		ContentType: models.ContentTypeProject,
		Title:       "engine",
		Tags:        models.TagList{"math"},
	}
	require.NoError(t, repo.Create(ctx, item))

	item.Tags = models.TagList{"math", "design"}
	item.Title = "analytical engine"
	require.NoError(t, repo.Update(ctx, item))

	reloaded, err := repo.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "analytical engine", reloaded.Title)
	assert.Equal(t, models.TagList{"math", "design"}, reloaded.Tags)
}

func TestItemRepositoryDeleteEnforcesOwnership(t *testing.T) {
	db := setupTestDB(t)
	repo := NewItemRepository(db)
	ctx := context.Background()
	ada := createTestUser(t, db, "ada")
	grace := createTestUser(t, db, "grace")

	item := &models.PortfolioItem{
		UserID: ada.ID, ContentType: models.ContentTypeVideo, Title: "talk",
	}
	require.NoError(t, repo.Create(ctx, item))

	err := repo.Delete(ctx, item.ID, grace.ID)
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", appErr.Code)

	// Still present for the real owner.
	_, err = repo.GetByID(ctx, item.ID)
	assert.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, item.ID, ada.ID))
	_, err = repo.GetByID(ctx, item.ID)
	assert.Error(t, err)
}

func TestItemRepositoryIncrementViews(t *testing.T) {
	db := setupTestDB(t)
	repo := NewItemRepository(db)
	ctx := context.Background()
	user := createTestUser(t, db, "ada")

	item := &models.PortfolioItem{
		UserID: user.ID, ContentType: models.ContentTypeImage, Title: "sketch",
	}
	require.NoError(t, repo.Create(ctx, item))

	require.NoError(t, repo.IncrementViews(ctx, item.ID))
	require.NoError(t, repo.IncrementViews(ctx, item.ID))

	reloaded, err := repo.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, reloaded.ViewCount)
}

func TestLinkRepositoryCreateListDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLinkRepository(db)
	ctx := context.Background()
	user := createTestUser(t, db, "ada")

	github := &models.SocialLink{
		UserID: user.ID, Platform: models.PlatformGitHub, URL: "https://github.com/ada",
	}
	require.NoError(t, repo.Create(ctx, github))
	require.NoError(t, repo.Create(ctx, &models.SocialLink{
		UserID: user.ID, Platform: models.PlatformTwitter, URL: "https://twitter.com/ada",
	}))

	links, err := repo.ListByOwner(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.Equal(t, models.PlatformGitHub, links[0].Platform)

	require.NoError(t, repo.Delete(ctx, github.ID, user.ID))

	links, err = repo.ListByOwner(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, models.PlatformTwitter, links[0].Platform)
}

func TestLinkRepositoryDeleteForeignRow(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLinkRepository(db)
	ctx := context.Background()
	ada := createTestUser(t, db, "ada")
	grace := createTestUser(t, db, "grace")

	link := &models.SocialLink{
		UserID: ada.ID, Platform: models.PlatformLinkedIn, URL: "https://linkedin.com/in/ada",
	}
	require.NoError(t, repo.Create(ctx, link))

	err := repo.Delete(ctx, link.ID, grace.ID)
	require.Error(t, err)

	links, listErr := repo.ListByOwner(ctx, ada.ID)
	require.NoError(t, listErr)
	assert.Len(t, links, 1)
}

func TestMessageRepositoryCreateAndList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMessageRepository(db)
	ctx := context.Background()
	user := createTestUser(t, db, "ada")

	base := time.Now().Add(-time.Hour)
	for i, name := range []string{"older", "newer"} {
		msg := &models.ContactMessage{
			UserID:      user.ID,
			SenderName:  name,
			SenderEmail: name + "@example.com",
			Message:     "Hello",
		}
		require.NoError(t, repo.Create(ctx, msg))
		require.NoError(t, db.Model(msg).
			UpdateColumn("created_at", base.Add(time.Duration(i)*time.Minute)).Error)
	}

	messages, err := repo.ListByOwner(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "newer", messages[0].SenderName)
	assert.False(t, messages[0].Read)
}

func TestMessageRepositoryMarkRead(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMessageRepository(db)
	ctx := context.Background()
	ada := createTestUser(t, db, "ada")
	grace := createTestUser(t, db, "grace")

	msg := &models.ContactMessage{
		UserID: ada.ID, SenderName: "Visitor", SenderEmail: "v@example.com", Message: "Hi",
	}
	require.NoError(t, repo.Create(ctx, msg))

	// Only the recipient can mark a message read.
	err := repo.MarkRead(ctx, msg.ID, grace.ID)
	require.Error(t, err)

	require.NoError(t, repo.MarkRead(ctx, msg.ID, ada.ID))

	messages, err := repo.ListByOwner(ctx, ada.ID)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.True(t, messages[0].Read)
}

func TestMessageRepositoryDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMessageRepository(db)
	ctx := context.Background()
	user := createTestUser(t, db, "ada")

	msg := &models.ContactMessage{
		UserID: user.ID, SenderName: "Visitor", SenderEmail: "v@example.com", Message: "Hi",
	}
	require.NoError(t, repo.Create(ctx, msg))
	require.NoError(t, repo.Delete(ctx, msg.ID, user.ID))

	messages, err := repo.ListByOwner(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, messages)

	err = repo.Delete(ctx, msg.ID, user.ID)
	require.Error(t, err)
}
