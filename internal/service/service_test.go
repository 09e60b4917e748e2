package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selimist/AiStudio-Wellness/internal/domain"
	"github.com/selimist/AiStudio-Wellness/internal/repository"
	"github.com/selimist/AiStudio-Wellness/internal/service"
	"github.com/selimist/AiStudio-Wellness/internal/validator"
)

func newSeededStore(t *testing.T) *repository.MemoryStore {
	t.Helper()
	store := repository.NewMemoryStore(repository.NewSequenceProvider("id-"))
	store.Seed()
	return store
}

func TestCatalogService_Reads(t *testing.T) {
	ctx := context.Background()
	store := newSeededStore(t)
	svc := service.NewCatalogService(store)

	t.Run("lists events in insertion order", func(t *testing.T) {
		events := svc.ListEvents(ctx)
		require.Len(t, events, 3)
		assert.Equal(t, "e1", events[0].ID)
	})

	t.Run("lists only featured events", func(t *testing.T) {
		featured := svc.ListFeaturedEvents(ctx)
		require.Len(t, featured, 2)
	})

	t.Run("gets event by id", func(t *testing.T) {
		event, err := svc.GetEventByID(ctx, "e1")
		require.NoError(t, err)
		assert.Equal(t, "Weekend Yoga Retreat in Bodrum", event.Title)
	})

	t.Run("empty event id is invalid input", func(t *testing.T) {
		_, err := svc.GetEventByID(ctx, "  ")
		assert.ErrorIs(t, err, service.ErrInvalidInput)
	})

	t.Run("unknown event id surfaces not found", func(t *testing.T) {
		_, err := svc.GetEventByID(ctx, "ghost")
		assert.ErrorIs(t, err, repository.ErrEventNotFound)
	})

	t.Run("gets article by slug", func(t *testing.T) {
		article, err := svc.GetArticleBySlug(ctx, "modern-dunyada-mindfulness")
		require.NoError(t, err)
		assert.Equal(t, "Modern Dünyada Mindfulness Pratiği", article.Title)
	})

	t.Run("empty slug is invalid input", func(t *testing.T) {
		_, err := svc.GetArticleBySlug(ctx, "")
		assert.ErrorIs(t, err, service.ErrInvalidInput)
	})
}

func TestCatalogService_LoginAs(t *testing.T) {
	ctx := context.Background()
	store := newSeededStore(t)
	svc := service.NewCatalogService(store)

	t.Run("returns the admin identity", func(t *testing.T) {
		user, err := svc.LoginAs(ctx, domain.RoleAdmin)
		require.NoError(t, err)
		assert.Equal(t, "admin-1", user.ID)
	})

	t.Run("returns the regular identity", func(t *testing.T) {
		user, err := svc.LoginAs(ctx, domain.RoleUser)
		require.NoError(t, err)
		assert.Equal(t, "user-1", user.ID)
	})

	t.Run("unknown role is invalid input", func(t *testing.T) {
		_, err := svc.LoginAs(ctx, "SUPERUSER")
		assert.ErrorIs(t, err, service.ErrInvalidInput)
	})

	t.Run("role without an identity surfaces not found", func(t *testing.T) {
		_, err := svc.LoginAs(ctx, domain.RoleOrganizer)
		assert.ErrorIs(t, err, repository.ErrUserNotFound)
	})
}

func TestRegistrationService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a registration and trims input", func(t *testing.T) {
		svc := service.NewRegistrationService(newSeededStore(t))

		reg, created, err := svc.Register(ctx, " u42 ", " e1 ")
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, "u42", reg.UserID)
		assert.Equal(t, "e1", reg.EventID)
	})

	t.Run("repeat registration succeeds without a new record", func(t *testing.T) {
		svc := service.NewRegistrationService(newSeededStore(t))

		first, created, err := svc.Register(ctx, "u42", "e1")
		require.NoError(t, err)
		require.True(t, created)

		second, created, err := svc.Register(ctx, "u42", "e1")
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, first.ID, second.ID)
	})

	t.Run("full event surfaces ErrEventFull", func(t *testing.T) {
		svc := service.NewRegistrationService(newSeededStore(t))

		_, _, err := svc.Register(ctx, "newUser", "e3")
		assert.ErrorIs(t, err, repository.ErrEventFull)
	})

	t.Run("unknown event surfaces ErrEventNotFound", func(t *testing.T) {
		svc := service.NewRegistrationService(newSeededStore(t))

		_, _, err := svc.Register(ctx, "u1", "ghost")
		assert.ErrorIs(t, err, repository.ErrEventNotFound)
	})

	t.Run("missing ids are invalid input", func(t *testing.T) {
		svc := service.NewRegistrationService(newSeededStore(t))

		_, _, err := svc.Register(ctx, "", "e1")
		assert.ErrorIs(t, err, service.ErrInvalidInput)

		_, _, err = svc.Register(ctx, "u1", "")
		assert.ErrorIs(t, err, service.ErrInvalidInput)
	})
}

func TestRegistrationService_ListUserRegistrations(t *testing.T) {
	ctx := context.Background()
	store := newSeededStore(t)
	svc := service.NewRegistrationService(store)

	_, _, err := svc.Register(ctx, "u42", "e1")
	require.NoError(t, err)

	regs, err := svc.ListUserRegistrations(ctx, "u42")
	require.NoError(t, err)
	require.Len(t, regs, 1)
	require.NotNil(t, regs[0].Event)
	assert.Equal(t, "e1", regs[0].Event.ID)

	_, err = svc.ListUserRegistrations(ctx, "")
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestAdminService_CreateEvent(t *testing.T) {
	ctx := context.Background()
	store := newSeededStore(t)
	svc := service.NewAdminService(store, validator.NewValidator())

	t.Run("creates a valid event with zero occupancy", func(t *testing.T) {
		created, err := svc.CreateEvent(ctx, domain.Event{
			Title:                "Sound Healing Circle",
			Location:             "Izmir",
			StartDate:            time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC),
			EndDate:              time.Date(2024, 8, 2, 0, 0, 0, 0, time.UTC),
			Price:                120,
			Capacity:             10,
			CurrentRegistrations: 7,
			Type:                 domain.EventTypeWorkshop,
			Status:               domain.EventStatusDraft,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, 0, created.CurrentRegistrations)
	})

	t.Run("rejects an invalid event", func(t *testing.T) {
		_, err := svc.CreateEvent(ctx, domain.Event{Title: "No Capacity"})
		assert.ErrorIs(t, err, service.ErrInvalidInput)
	})
}

func TestAdminService_UpdateEvent(t *testing.T) {
	ctx := context.Background()
	store := newSeededStore(t)
	svc := service.NewAdminService(store, validator.NewValidator())

	t.Run("patches status and keeps other fields", func(t *testing.T) {
		status := domain.EventStatusSoldOut
		updated, err := svc.UpdateEvent(ctx, "e2", domain.EventPatch{Status: &status})
		require.NoError(t, err)
		assert.Equal(t, domain.EventStatusSoldOut, updated.Status)
		assert.Equal(t, "Mindfulness Workshop: Breath & Focus", updated.Title)
	})

	t.Run("rejects an invalid patch", func(t *testing.T) {
		capacity := -1
		_, err := svc.UpdateEvent(ctx, "e1", domain.EventPatch{Capacity: &capacity})
		assert.ErrorIs(t, err, service.ErrInvalidInput)
	})

	t.Run("unknown id surfaces not found", func(t *testing.T) {
		title := "x"
		_, err := svc.UpdateEvent(ctx, "ghost", domain.EventPatch{Title: &title})
		assert.ErrorIs(t, err, repository.ErrEventNotFound)
	})
}

func TestAdminService_ToggleEventStatus(t *testing.T) {
	ctx := context.Background()
	store := newSeededStore(t)
	svc := service.NewAdminService(store, validator.NewValidator())

	t.Run("flips published to sold out and back", func(t *testing.T) {
		updated, err := svc.ToggleEventStatus(ctx, "e1")
		require.NoError(t, err)
		assert.Equal(t, domain.EventStatusSoldOut, updated.Status)

		updated, err = svc.ToggleEventStatus(ctx, "e1")
		require.NoError(t, err)
		assert.Equal(t, domain.EventStatusPublished, updated.Status)
	})

	t.Run("rejects draft events", func(t *testing.T) {
		created, err := svc.CreateEvent(ctx, domain.Event{
			Title:    "Draft Event",
			Capacity: 5,
			Type:     domain.EventTypeOnline,
			Status:   domain.EventStatusDraft,
		})
		require.NoError(t, err)

		_, err = svc.ToggleEventStatus(ctx, created.ID)
		assert.ErrorIs(t, err, service.ErrInvalidInput)
	})

	t.Run("unknown id surfaces not found", func(t *testing.T) {
		_, err := svc.ToggleEventStatus(ctx, "ghost")
		assert.ErrorIs(t, err, repository.ErrEventNotFound)
	})
}

func TestAdminService_DeleteEvent(t *testing.T) {
	ctx := context.Background()
	store := newSeededStore(t)
	svc := service.NewAdminService(store, validator.NewValidator())

	require.NoError(t, svc.DeleteEvent(ctx, "e1"))
	assert.ErrorIs(t, svc.DeleteEvent(ctx, "e1"), repository.ErrEventNotFound)
	assert.ErrorIs(t, svc.DeleteEvent(ctx, ""), service.ErrInvalidInput)
}

func TestAdminService_CreateArticle(t *testing.T) {
	ctx := context.Background()
	store := newSeededStore(t)
	svc := service.NewAdminService(store, validator.NewValidator())

	t.Run("creates a valid article", func(t *testing.T) {
		created, err := svc.CreateArticle(ctx, domain.Article{
			Slug:    "breathwork-basics",
			Title:   "Breathwork Basics",
			Content: "Start with the exhale...",
			Author:  "Deniz Aksu",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)

		found, err := store.GetArticleBySlug(ctx, "breathwork-basics")
		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)
	})

	t.Run("rejects a bad slug", func(t *testing.T) {
		_, err := svc.CreateArticle(ctx, domain.Article{
			Slug:    "Not A Slug",
			Title:   "t",
			Content: "c",
			Author:  "a",
		})
		assert.ErrorIs(t, err, service.ErrInvalidInput)
	})
}
