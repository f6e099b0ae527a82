// Package store is the data-access layer of the portal. A single facade
// decides, per call, whether to use the remote relational store or the local
// fallback cache; controllers never touch either backend directly.
package store

import (
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/pkg/errors"

	"zenyoga/backend/models"
)

// Store is the unifying data-access facade. Failure policy is strict: when
// the remote store is configured, its failures are logged and surfaced as
// *RemoteError — the facade never silently substitutes the fallback store,
// because silent fallback masks data loss. The fallback store serves only
// when no remote store is configured at all.
type Store struct {
	remote     Remote
	fallback   *Fallback
	adminEmail string
	log        *log.Logger
}

// New builds the facade from explicitly constructed backends. Either backend
// may be nil; with both nil every operation returns ErrNotConfigured.
func New(remote Remote, fallback *Fallback, adminEmail string, logger *log.Logger) *Store {
	return &Store{
		remote:     remote,
		fallback:   fallback,
		adminEmail: NormalizeEmail(adminEmail),
		log:        logger,
	}
}

// Connected reports whether the remote store is in use.
func (s *Store) Connected() bool {
	return s.remote != nil
}

// AdminEmail returns the normalized administrator address.
func (s *Store) AdminEmail() string {
	return s.adminEmail
}

// NormalizeEmail lower-cases and trims an address. Every email entering the
// store goes through this exactly once, at the facade boundary.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ListClasses returns the catalog, newest first.
func (s *Store) ListClasses() ([]models.YogaClass, error) {
	switch {
	case s.remote != nil:
		classes, err := s.remote.ListClasses()
		if err != nil {
			return nil, s.remoteErr("list classes", err)
		}
		return classes, nil
	case s.fallback != nil:
		return s.fallbackClasses()
	}
	return nil, ErrNotConfigured
}

// SaveClass inserts a new catalog entry and returns the updated catalog as
// the backend reports it. Writing an id that already exists is rejected with
// ErrClassExists; there is no partial-update path.
func (s *Store) SaveClass(class models.YogaClass) ([]models.YogaClass, error) {
	existing, err := s.ListClasses()
	if err != nil {
		return nil, err
	}
	for _, c := range existing {
		if c.ID == class.ID {
			return nil, ErrClassExists
		}
	}

	if s.remote != nil {
		if err := s.remote.InsertClass(class); err != nil {
			return nil, s.remoteErr("insert class", err)
		}
		// Re-fetch rather than patching the local copy, so the caller sees
		// server-assigned ordering.
		classes, err := s.remote.ListClasses()
		if err != nil {
			return nil, s.remoteErr("list classes", err)
		}
		return classes, nil
	}

	updated := append([]models.YogaClass{class}, existing...)
	if err := s.writeFallbackJSON(keyClasses, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteClass removes a catalog entry by id and returns the updated catalog.
// Removing an absent id is a no-op, not an error.
func (s *Store) DeleteClass(id string) ([]models.YogaClass, error) {
	if s.remote != nil {
		if err := s.remote.DeleteClass(id); err != nil {
			return nil, s.remoteErr("delete class", err)
		}
		classes, err := s.remote.ListClasses()
		if err != nil {
			return nil, s.remoteErr("list classes", err)
		}
		return classes, nil
	}

	existing, err := s.ListClasses()
	if err != nil {
		return nil, err
	}
	updated := make([]models.YogaClass, 0, len(existing))
	for _, c := range existing {
		if c.ID != id {
			updated = append(updated, c)
		}
	}
	if err := s.writeFallbackJSON(keyClasses, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// ListAllowedEmails returns the stored roster. The administrator address is
// implicitly authorized whether or not it appears here; membership checks go
// through IsAllowed.
func (s *Store) ListAllowedEmails() ([]string, error) {
	switch {
	case s.remote != nil:
		emails, err := s.remote.ListEmails()
		if err != nil {
			return nil, s.remoteErr("list emails", err)
		}
		return emails, nil
	case s.fallback != nil:
		return s.fallbackEmails()
	}
	return nil, ErrNotConfigured
}

// IsAllowed is the single membership check:
// allowed = email ∈ roster ∨ email == adminEmail.
func (s *Store) IsAllowed(email string) (bool, error) {
	norm := NormalizeEmail(email)
	if norm == s.adminEmail {
		return true, nil
	}
	emails, err := s.ListAllowedEmails()
	if err != nil {
		return false, err
	}
	for _, e := range emails {
		if e == norm {
			return true, nil
		}
	}
	return false, nil
}

// AuthorizeEmail adds an address to the roster and returns the updated set.
// Authorizing an address that is already present is a no-op.
func (s *Store) AuthorizeEmail(email string) ([]string, error) {
	norm := NormalizeEmail(email)
	emails, err := s.ListAllowedEmails()
	if err != nil {
		return nil, err
	}
	for _, e := range emails {
		if e == norm {
			return emails, nil
		}
	}

	if s.remote != nil {
		if err := s.remote.InsertEmail(norm); err != nil {
			return nil, s.remoteErr("insert email", err)
		}
		updated, err := s.remote.ListEmails()
		if err != nil {
			return nil, s.remoteErr("list emails", err)
		}
		return updated, nil
	}

	updated := append(emails, norm)
	if err := s.writeFallbackJSON(keyAllowedEmails, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// RevokeEmail removes an address from the roster and returns the updated
// set. The administrator address is protected here, not just in the UI.
func (s *Store) RevokeEmail(email string) ([]string, error) {
	norm := NormalizeEmail(email)
	if norm == s.adminEmail {
		return nil, ErrAdminProtected
	}

	if s.remote != nil {
		if err := s.remote.DeleteEmail(norm); err != nil {
			return nil, s.remoteErr("delete email", err)
		}
		updated, err := s.remote.ListEmails()
		if err != nil {
			return nil, s.remoteErr("list emails", err)
		}
		return updated, nil
	}

	emails, err := s.ListAllowedEmails()
	if err != nil {
		return nil, err
	}
	updated := make([]string, 0, len(emails))
	for _, e := range emails {
		if e != norm {
			updated = append(updated, e)
		}
	}
	if err := s.writeFallbackJSON(keyAllowedEmails, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// CompletedClassIDs returns the ids of the classes this student completed,
// and nothing about any other student.
func (s *Store) CompletedClassIDs(studentEmail string) ([]string, error) {
	norm := NormalizeEmail(studentEmail)
	switch {
	case s.remote != nil:
		ids, err := s.remote.ListProgress(norm)
		if err != nil {
			return nil, s.remoteErr("list progress", err)
		}
		return ids, nil
	case s.fallback != nil:
		return s.fallbackProgress(norm)
	}
	return nil, ErrNotConfigured
}

// SetCompletion marks or unmarks a class as completed for a student. Setting
// an already-set state is a no-op.
func (s *Store) SetCompletion(studentEmail, classID string, completed bool) error {
	norm := NormalizeEmail(studentEmail)

	if s.remote != nil {
		if completed {
			mark := models.ProgressMark{
				StudentEmail: norm,
				ClassID:      classID,
				CompletedAt:  time.Now().UTC(),
			}
			if err := s.remote.InsertProgress(mark); err != nil {
				return s.remoteErr("insert progress", err)
			}
			return nil
		}
		if err := s.remote.DeleteProgress(norm, classID); err != nil {
			return s.remoteErr("delete progress", err)
		}
		return nil
	}

	ids, err := s.CompletedClassIDs(norm)
	if err != nil {
		return err
	}
	present := false
	for _, id := range ids {
		if id == classID {
			present = true
			break
		}
	}
	if present == completed {
		return nil
	}
	if completed {
		return s.writeFallbackJSON(keyProgress+norm, append(ids, classID))
	}
	updated := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != classID {
			updated = append(updated, id)
		}
	}
	return s.writeFallbackJSON(keyProgress+norm, updated)
}

// fallback helpers: whole-collection read-modify-write over JSON values.

func (s *Store) fallbackClasses() ([]models.YogaClass, error) {
	raw, ok, err := s.fallback.Read(keyClasses)
	if err != nil {
		return nil, err
	}
	if !ok {
		return DefaultClasses(), nil
	}
	var classes []models.YogaClass
	if err := json.Unmarshal(raw, &classes); err != nil {
		return nil, errors.Wrap(err, "decoding cached classes")
	}
	return classes, nil
}

func (s *Store) fallbackEmails() ([]string, error) {
	raw, ok, err := s.fallback.Read(keyAllowedEmails)
	if err != nil {
		return nil, err
	}
	if !ok {
		return InitialAllowedEmails(s.adminEmail), nil
	}
	var emails []string
	if err := json.Unmarshal(raw, &emails); err != nil {
		return nil, errors.Wrap(err, "decoding cached emails")
	}
	return emails, nil
}

func (s *Store) fallbackProgress(studentEmail string) ([]string, error) {
	if s.fallback == nil {
		return nil, ErrNotConfigured
	}
	raw, ok, err := s.fallback.Read(keyProgress + studentEmail)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []string{}, nil
	}
	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, errors.Wrap(err, "decoding cached progress")
	}
	return ids, nil
}

func (s *Store) writeFallbackJSON(key string, value interface{}) error {
	if s.fallback == nil {
		return ErrNotConfigured
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "encoding %q", key)
	}
	return s.fallback.Write(key, raw)
}

func (s *Store) remoteErr(op string, err error) error {
	if s.log != nil {
		s.log.Printf("remote store failure: %s: %v", op, err)
	}
	return &RemoteError{Op: op, Err: err}
}
