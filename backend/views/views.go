// Package views holds the pure derivations over the catalog and progress
// state: category filtering, completion percentage, YouTube id extraction and
// thumbnail derivation. Nothing here touches a store.
package views

import (
	"fmt"
	"math"
	"strings"

	"zenyoga/backend/models"
)

// Filter selects which slice of the catalog a student sees. Besides the two
// fixed values below, any category name is a valid filter.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterCompleted Filter = "completed"
)

// CategoryFilter wraps a specific category as a filter value.
func CategoryFilter(cat models.Category) Filter {
	return Filter(cat)
}

// FilterClasses returns the subsequence of classes matching the active
// filter, always preserving catalog order. FilterCompleted keeps classes
// whose id is in completedIDs; a category filter keeps classes of that
// category; FilterAll returns the input unchanged.
func FilterClasses(classes []models.YogaClass, f Filter, completedIDs []string) []models.YogaClass {
	switch f {
	case FilterAll, "":
		return classes
	case FilterCompleted:
		completed := make(map[string]struct{}, len(completedIDs))
		for _, id := range completedIDs {
			completed[id] = struct{}{}
		}
		filtered := make([]models.YogaClass, 0, len(completedIDs))
		for _, class := range classes {
			if _, ok := completed[class.ID]; ok {
				filtered = append(filtered, class)
			}
		}
		return filtered
	default:
		filtered := make([]models.YogaClass, 0, len(classes))
		for _, class := range classes {
			if class.Category == models.Category(f) {
				filtered = append(filtered, class)
			}
		}
		return filtered
	}
}

// CompletionPercentage computes round(100 * |completed ∩ catalog| / |catalog|)
// with round half up. An empty catalog is 0%, not a division by zero. Stale
// completed ids that no longer match a catalog entry do not count.
func CompletionPercentage(classes []models.YogaClass, completedIDs []string) int {
	if len(classes) == 0 {
		return 0
	}
	completed := make(map[string]struct{}, len(completedIDs))
	for _, id := range completedIDs {
		completed[id] = struct{}{}
	}
	count := 0
	for _, class := range classes {
		if _, ok := completed[class.ID]; ok {
			count++
		}
	}
	return int(math.Round(100 * float64(count) / float64(len(classes))))
}

// ExtractYouTubeID pulls the video id token out of a pasted value. It
// understands the watch?v=, youtu.be/ and embed/ URL shapes; anything else is
// passed through trimmed, so a bare id pastes cleanly. Extraction is
// idempotent: a bare id never contains one of the URL markers.
func ExtractYouTubeID(raw string) string {
	id := strings.TrimSpace(raw)
	matched := false
	if _, after, found := strings.Cut(id, "v="); found {
		id, matched = after, true
	} else if _, after, found := strings.Cut(id, "youtu.be/"); found {
		id, matched = after, true
	} else if _, after, found := strings.Cut(id, "embed/"); found {
		id, matched = after, true
	}
	if !matched {
		return id
	}
	for _, sep := range []string{"&", "?", "/"} {
		if before, _, found := strings.Cut(id, sep); found {
			id = before
		}
	}
	return strings.TrimSpace(id)
}

// ThumbnailURL derives the preview image for a video id. Thumbnails are never
// stored on their own, so a catalog record cannot drift out of sync with its
// video.
func ThumbnailURL(youtubeID string) string {
	return fmt.Sprintf("https://img.youtube.com/vi/%s/maxresdefault.jpg", youtubeID)
}

// DisplayName derives the greeting name from an email local part.
func DisplayName(email string) string {
	local, _, _ := strings.Cut(email, "@")
	if local == "" {
		return email
	}
	return strings.ToUpper(local[:1]) + local[1:]
}
