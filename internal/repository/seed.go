package repository

import (
	"time"

	"github.com/selimist/AiStudio-Wellness/internal/domain"
)

// Seed loads the static fixture data: three events, two articles, and the two
// demo identities. Safe to call once on an empty store at startup.
func (s *MemoryStore) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = append(s.events, FixtureEvents()...)
	s.articles = append(s.articles, FixtureArticles()...)
	s.users = append(s.users, FixtureUsers()...)
}

// FixtureEvents returns the seed events.
func FixtureEvents() []domain.Event {
	return []domain.Event{
		{
			ID:                   "e1",
			Title:                "Weekend Yoga Retreat in Bodrum",
			Description:          "Join us for a 3-day immersive yoga experience overlooking the Aegean Sea. Perfect for all levels.",
			Location:             "Bodrum",
			Venue:                "Sea View Sanctuary",
			StartDate:            date(2024, 6, 15),
			EndDate:              date(2024, 6, 18),
			Price:                450,
			Capacity:             20,
			CurrentRegistrations: 12,
			Organizer:            "Zeynep Yoga",
			CoverImage:           "https://picsum.photos/seed/retreat1/800/600",
			Type:                 domain.EventTypeRetreat,
			Status:               domain.EventStatusPublished,
			IsFeatured:           true,
		},
		{
			ID:                   "e2",
			Title:                "Mindfulness Workshop: Breath & Focus",
			Description:          "Learn ancient breathing techniques to reduce stress and improve mental clarity in this intensive one-day workshop.",
			Location:             "Istanbul",
			Venue:                "Kolektif House Levent",
			StartDate:            date(2024, 5, 20),
			EndDate:              date(2024, 5, 20),
			Price:                80,
			Capacity:             30,
			CurrentRegistrations: 28,
			Organizer:            "Mert Koç",
			CoverImage:           "https://picsum.photos/seed/workshop1/800/600",
			Type:                 domain.EventTypeWorkshop,
			Status:               domain.EventStatusPublished,
			IsFeatured:           true,
		},
		{
			ID:                   "e3",
			Title:                "Digital Detox & Silence Retreat",
			Description:          "Escape the noise. Five days of silence, meditation, and reconnecting with nature in the mountains of Bolu.",
			Location:             "Bolu",
			Venue:                "Pine Forest Lodge",
			StartDate:            date(2024, 7, 10),
			EndDate:              date(2024, 7, 15),
			Price:                600,
			Capacity:             15,
			CurrentRegistrations: 15,
			Organizer:            "Quiet Mind Collective",
			CoverImage:           "https://picsum.photos/seed/retreat2/800/600",
			Type:                 domain.EventTypeRetreat,
			Status:               domain.EventStatusSoldOut,
			IsFeatured:           false,
		},
	}
}

// FixtureArticles returns the seed articles.
func FixtureArticles() []domain.Article {
	return []domain.Article{
		{
			ID:          "c1",
			Title:       "Modern Dünyada Mindfulness Pratiği",
			Slug:        "modern-dunyada-mindfulness",
			CoverImage:  "https://picsum.photos/seed/blog1/800/400",
			Content:     "Mindfulness, günümüzün hızlı tempolu dünyasında bir lüks değil, bir gereklilik haline geldi...",
			Tags:        []string{"Mindfulness", "Meditasyon"},
			Author:      "Deniz Aksu",
			PublishedAt: date(2024, 4, 1),
			ReadingTime: "5 min",
		},
		{
			ID:          "c2",
			Title:       "Sabah Rutininizi Değiştirecek 5 İpucu",
			Slug:        "sabah-rutini-ipuclari",
			CoverImage:  "https://picsum.photos/seed/blog2/800/400",
			Content:     "Güne nasıl başladığınız, gününüzün geri kalanını nasıl geçireceğinizi belirler...",
			Tags:        []string{"Lifestyle", "Wellness"},
			Author:      "Caner Öz",
			PublishedAt: date(2024, 4, 5),
			ReadingTime: "3 min",
		},
	}
}

// FixtureUsers returns the two demo identities.
func FixtureUsers() []domain.User {
	return []domain.User{
		{
			ID:        "user-1",
			Name:      "Ayşe Yılmaz",
			Email:     "ayse@example.com",
			Role:      domain.RoleUser,
			Interests: []string{"Yoga", "Meditation", "Healthy Living"},
			Avatar:    "https://picsum.photos/seed/ayse/200/200",
		},
		{
			ID:        "admin-1",
			Name:      "ZenHub Admin",
			Email:     "admin@zenhub.com",
			Role:      domain.RoleAdmin,
			Interests: []string{"Management"},
			Avatar:    "https://picsum.photos/seed/admin/200/200",
		},
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
