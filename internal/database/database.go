package database

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/DeutscheGabanna/Obsidian-Daylio-Parser/internal/entities"
)

// Database is the local journal store. Imported entries are kept here so
// the vault can be re-exported later without the original CSV.
type Database struct {
	DB *gorm.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&entities.Entry{},
		&entities.ImportSession{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return &Database{DB: db}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// SaveEntries persists entries, skipping ones already present. An entry
// is considered a duplicate of an existing one when date, time, mood and
// note all match, which makes re-importing the same export a no-op.
// Returns how many entries were newly saved.
func (d *Database) SaveEntries(entries []entities.Entry) (int, error) {
	saved := 0
	for i := range entries {
		entry := entries[i]

		var existing entities.Entry
		result := d.DB.Where(
			"date = ? AND time_minutes = ? AND mood = ? AND note = ?",
			entry.Date, entry.TimeMinutes, entry.Mood, entry.Note,
		).First(&existing)

		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			if err := d.DB.Create(&entry).Error; err != nil {
				return saved, fmt.Errorf("failed to save entry for %s: %w", entry.Date, err)
			}
			saved++
			continue
		}
		if result.Error != nil {
			return saved, result.Error
		}
	}
	return saved, nil
}

// GetAllEntries returns every stored entry ordered by date, then by
// time-of-day (untimed entries last within a day), then by insertion
// order — the same order the grouper would produce.
func (d *Database) GetAllEntries() ([]entities.Entry, error) {
	var entries []entities.Entry
	err := d.DB.
		Order("date asc").
		Order("case when time_minutes < 0 then 1 else 0 end asc").
		Order("time_minutes asc").
		Order("id asc").
		Find(&entries).Error
	return entries, err
}

// CountEntries returns the number of stored entries.
func (d *Database) CountEntries() (int64, error) {
	var count int64
	err := d.DB.Model(&entities.Entry{}).Count(&count).Error
	return count, err
}

// RecordImportSession stores the summary of one converter run.
func (d *Database) RecordImportSession(session *entities.ImportSession) error {
	return d.DB.Create(session).Error
}

// GetRecentImportSessions returns the newest import sessions, most
// recent first.
func (d *Database) GetRecentImportSessions(limit int) ([]entities.ImportSession, error) {
	var sessions []entities.ImportSession
	err := d.DB.Order("created_at desc").Limit(limit).Find(&sessions).Error
	return sessions, err
}
