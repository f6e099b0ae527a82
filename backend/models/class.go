package models

import "time"

// Category is the closed set of class categories. Adding a category is a
// single-point change here; filter and validation sites range over Categories.
type Category string

const (
	CategoryHatha       Category = "Hatha Yoga"
	CategoryVinyasa     Category = "Vinyasa Flow"
	CategoryYin         Category = "Yin Yoga"
	CategoryMeditation  Category = "Meditation"
	CategoryPranayama   Category = "Pranayama"
	CategoryFlexibility Category = "Flexibility"
)

var Categories = []Category{
	CategoryHatha,
	CategoryVinyasa,
	CategoryYin,
	CategoryMeditation,
	CategoryPranayama,
	CategoryFlexibility,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
)

var Levels = []Level{LevelBeginner, LevelIntermediate, LevelAdvanced}

func (l Level) Valid() bool {
	for _, known := range Levels {
		if l == known {
			return true
		}
	}
	return false
}

// YogaClass is a catalog entry. The ID is assigned once at creation (creation
// timestamp in milliseconds, as a string) and never reused. ThumbnailURL is
// always derived from YouTubeID, never set independently.
type YogaClass struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Title        string    `json:"title" gorm:"not null"`
	Description  string    `json:"description"`
	YouTubeID    string    `json:"youtubeId" gorm:"column:youtube_id;not null"`
	Category     Category  `json:"category" gorm:"not null"`
	Duration     string    `json:"duration"`
	Level        Level     `json:"level" gorm:"not null"`
	ThumbnailURL string    `json:"thumbnailUrl"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (YogaClass) TableName() string {
	return "classes"
}
