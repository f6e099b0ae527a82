package store

import (
	"time"

	"zenyoga/backend/models"
)

// DefaultClasses is the demo catalog shown when no backend has any data yet.
// It is returned as-is, never written back to a store.
func DefaultClasses() []models.YogaClass {
	return []models.YogaClass{
		{
			ID:           "1",
			Title:        "Morning Awakening: Gentle Vinyasa",
			Description:  "A fluid practice to start the day with energy and presence.",
			YouTubeID:    "dQw4w9WgXcQ",
			Category:     models.CategoryVinyasa,
			Duration:     "20 min",
			Level:        models.LevelBeginner,
			ThumbnailURL: "https://picsum.photos/seed/yoga1/800/450",
			CreatedAt:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}

// InitialAllowedEmails is the demo roster: the administrator plus one sample
// student account.
func InitialAllowedEmails(adminEmail string) []string {
	return []string{adminEmail, "student@zenyoga.com"}
}
