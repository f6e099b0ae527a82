package store

import (
	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"zenyoga/backend/config"
	"zenyoga/backend/models"
)

// Remote is the query surface of the hosted relational store: per-table list,
// insert and delete, nothing else. The facade owns every decision about when
// to call it. Tests substitute a fake.
type Remote interface {
	ListClasses() ([]models.YogaClass, error)
	InsertClass(class models.YogaClass) error
	DeleteClass(id string) error

	ListEmails() ([]string, error)
	InsertEmail(email string) error
	DeleteEmail(email string) error

	ListProgress(studentEmail string) ([]string, error)
	InsertProgress(mark models.ProgressMark) error
	DeleteProgress(studentEmail, classID string) error
}

type gormRemote struct {
	db *gorm.DB
}

var _ Remote = (*gormRemote)(nil)

// NewRemote connects to the remote store described by the config. When the
// config carries no remote credentials it returns (nil, nil) and the caller
// runs fallback-only; a connection failure against a configured endpoint is
// an error.
func NewRemote(cfg *config.Config) (Remote, error) {
	if !cfg.RemoteConfigured() {
		return nil, nil
	}
	dsn, err := cfg.RemoteDSN()
	if err != nil {
		return nil, errors.Wrap(err, "parsing remote endpoint")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errors.Wrap(err, "connecting to remote store")
	}
	if err := db.AutoMigrate(&models.YogaClass{}, &models.AllowedEmail{}, &models.ProgressMark{}); err != nil {
		return nil, errors.Wrap(err, "migrating remote store")
	}
	return &gormRemote{db: db}, nil
}

func (r *gormRemote) ListClasses() ([]models.YogaClass, error) {
	var classes []models.YogaClass
	if err := r.db.Order("created_at DESC").Find(&classes).Error; err != nil {
		return nil, err
	}
	return classes, nil
}

func (r *gormRemote) InsertClass(class models.YogaClass) error {
	return r.db.Create(&class).Error
}

func (r *gormRemote) DeleteClass(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.YogaClass{}).Error
}

func (r *gormRemote) ListEmails() ([]string, error) {
	var emails []string
	err := r.db.Model(&models.AllowedEmail{}).Order("email").Pluck("email", &emails).Error
	if err != nil {
		return nil, err
	}
	return emails, nil
}

func (r *gormRemote) InsertEmail(email string) error {
	entry := models.AllowedEmail{Email: email}
	// ON CONFLICT DO NOTHING keeps authorization idempotent across sessions.
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&entry).Error
}

func (r *gormRemote) DeleteEmail(email string) error {
	return r.db.Where("email = ?", email).Delete(&models.AllowedEmail{}).Error
}

func (r *gormRemote) ListProgress(studentEmail string) ([]string, error) {
	var ids []string
	err := r.db.Model(&models.ProgressMark{}).
		Where("student_email = ?", studentEmail).
		Order("completed_at").
		Pluck("class_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *gormRemote) InsertProgress(mark models.ProgressMark) error {
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&mark).Error
}

func (r *gormRemote) DeleteProgress(studentEmail, classID string) error {
	return r.db.Where("student_email = ? AND class_id = ?", studentEmail, classID).
		Delete(&models.ProgressMark{}).Error
}
