package storage

import (
	"context"
	"fmt"
	"log"
	"time"

	"sab_waitlist/internal/models"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Journal appends a record of every successful mutation. It is write-mostly:
// nothing reads it back to rebuild the waitlist.
type Journal interface {
	Record(ctx context.Context, action, accountID, detail string) error
	Recent(ctx context.Context, limit int) ([]models.AuditRecord, error)
}

// ConnectDatabase opens a postgres connection through gorm.
func ConnectDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	log.Println("Database connection established")
	return db, nil
}

// GormJournal stores audit records in a SQL database.
type GormJournal struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGormJournal migrates the audit table and returns a journal over db.
func NewGormJournal(db *gorm.DB) (*GormJournal, error) {
	if err := db.AutoMigrate(&models.AuditRecord{}); err != nil {
		return nil, fmt.Errorf("migrate audit records: %w", err)
	}
	return &GormJournal{db: db, now: time.Now}, nil
}

func (j *GormJournal) Record(ctx context.Context, action, accountID, detail string) error {
	rec := models.AuditRecord{
		ID:        uuid.NewString(),
		Action:    action,
		AccountID: accountID,
		Detail:    detail,
		CreatedAt: j.now(),
	}
	return j.db.WithContext(ctx).Create(&rec).Error
}

func (j *GormJournal) Recent(ctx context.Context, limit int) ([]models.AuditRecord, error) {
	var records []models.AuditRecord
	err := j.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&records).Error
	return records, err
}

// Discard is the journal used when no database is configured.
type Discard struct{}

func (Discard) Record(context.Context, string, string, string) error { return nil }

func (Discard) Recent(context.Context, int) ([]models.AuditRecord, error) {
	return []models.AuditRecord{}, nil
}
