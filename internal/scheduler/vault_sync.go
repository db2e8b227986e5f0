package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/DeutscheGabanna/Obsidian-Daylio-Parser/internal/database"
	"github.com/DeutscheGabanna/Obsidian-Daylio-Parser/internal/exporters"
	"github.com/DeutscheGabanna/Obsidian-Daylio-Parser/internal/importers"
)

var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// ValidateCronSchedule checks a 5-field cron expression.
func ValidateCronSchedule(schedule string) error {
	_, err := cronParser.Parse(schedule)
	return err
}

// VaultSyncScheduler periodically re-exports the vault from the local
// journal database, so notes stay current without re-running the
// converter by hand.
type VaultSyncScheduler struct {
	db        *database.Database
	outputDir string
	options   exporters.NoteOptions
	schedule  string

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

// NewVaultSyncScheduler creates a scheduler writing into outputDir on the
// given cron schedule.
func NewVaultSyncScheduler(db *database.Database, outputDir string, options exporters.NoteOptions, schedule string) *VaultSyncScheduler {
	return &VaultSyncScheduler{
		db:        db,
		outputDir: outputDir,
		options:   options,
		schedule:  schedule,
		cron:      cron.New(cron.WithParser(cronParser)),
	}
}

// Start begins the scheduler.
func (s *VaultSyncScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if s.outputDir == "" {
		return fmt.Errorf("vault sync: output directory not configured")
	}

	if err := ValidateCronSchedule(s.schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", s.schedule, err)
	}

	entryID, err := s.cron.AddFunc(s.schedule, func() {
		s.RunSync()
	})
	if err != nil {
		return fmt.Errorf("failed to schedule sync job: %w", err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	log.Printf("Vault sync scheduler: started with schedule '%s'", s.schedule)

	// Monitor for context cancellation
	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop gracefully stops the scheduler, waiting for a running sync to
// finish.
func (s *VaultSyncScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()

	s.isRunning = false
	if s.cancelFunc != nil {
		s.cancelFunc()
		s.cancelFunc = nil
	}

	log.Printf("Vault sync scheduler: stopped")
}

// IsRunning returns whether the scheduler is active.
func (s *VaultSyncScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// GetNextRunTime returns when the next sync will occur.
func (s *VaultSyncScheduler) GetNextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}

	for _, entry := range s.cron.Entries() {
		if entry.ID == s.entryID {
			t := entry.Next
			return &t
		}
	}
	return nil
}

// RunSync performs one export from the database to the vault. Also used
// by the CLI for a one-shot sync.
func (s *VaultSyncScheduler) RunSync() {
	log.Printf("Vault sync: starting export to %s", s.outputDir)
	startTime := time.Now()

	entries, err := s.db.GetAllEntries()
	if err != nil {
		log.Printf("Vault sync: failed to read entries from database: %v", err)
		return
	}

	if len(entries) == 0 {
		log.Printf("Vault sync: no entries to export")
		return
	}

	days := importers.GroupByDay(entries)
	exporter := exporters.NewMarkdownExporter(s.outputDir, s.options, exporters.SkipUnchanged)

	result, err := exporter.Export(days)
	if err != nil {
		log.Printf("Vault sync: export failed: %v", err)
		return
	}

	duration := time.Since(startTime)
	log.Printf("Vault sync: wrote %d notes (%d unchanged, %d failed) covering %d entries in %v",
		result.NotesProcessed, result.NotesSkipped, result.NotesFailed,
		result.EntriesProcessed, duration.Round(time.Millisecond))
}
