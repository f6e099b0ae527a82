package store

import (
	"time"

	"zenyoga/backend/models"
)

// Backup is the point-in-time export snapshot the admin can download. It is
// not a restorable format; no import operation exists.
type Backup struct {
	Classes       []models.YogaClass `json:"classes"`
	AllowedEmails []string           `json:"allowedEmails"`
	ExportDate    time.Time          `json:"exportDate"`
}

// Snapshot captures the current catalog and roster.
func (s *Store) Snapshot() (Backup, error) {
	classes, err := s.ListClasses()
	if err != nil {
		return Backup{}, err
	}
	emails, err := s.ListAllowedEmails()
	if err != nil {
		return Backup{}, err
	}
	return Backup{
		Classes:       classes,
		AllowedEmails: emails,
		ExportDate:    time.Now().UTC(),
	}, nil
}
