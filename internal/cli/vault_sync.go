package cli

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/DeutscheGabanna/Obsidian-Daylio-Parser/internal/config"
	"github.com/DeutscheGabanna/Obsidian-Daylio-Parser/internal/database"
	"github.com/DeutscheGabanna/Obsidian-Daylio-Parser/internal/exporters"
	"github.com/DeutscheGabanna/Obsidian-Daylio-Parser/internal/moods"
	"github.com/DeutscheGabanna/Obsidian-Daylio-Parser/internal/scheduler"
)

// VaultSyncCommand re-exports the vault from the local journal database,
// either once or on a cron schedule.
type VaultSyncCommand struct {
	OutputDir    string
	DatabasePath string
	MoodsPath    string
	Schedule     string
	Tags         string
	Prefix       string
	Suffix       string
	HeaderLevel  int
	Colour       bool
	Once         bool
}

func NewVaultSyncCommand() *VaultSyncCommand {
	return &VaultSyncCommand{}
}

func (cmd *VaultSyncCommand) ParseFlags(args []string) error {
	cfg := config.NewConfig()

	fs := flag.NewFlagSet("vault-sync", flag.ExitOnError)

	fs.StringVar(&cmd.OutputDir, "output", cfg.Vault.OutputDir, "Vault directory to write notes into (required)")
	fs.StringVar(&cmd.DatabasePath, "db", cfg.Database.Path, "Path to the local journal database")
	fs.StringVar(&cmd.MoodsPath, "moods", cfg.Daylio.MoodsPath, "Path to a custom moods JSON file")
	fs.StringVar(&cmd.Schedule, "schedule", cfg.VaultSync.Schedule, "Cron schedule for periodic sync")
	fs.StringVar(&cmd.Tags, "tags", cfg.Vault.Tags, "Space-separated tags for the YAML frontmatter of each note")
	fs.StringVar(&cmd.Prefix, "prefix", cfg.Vault.Prefix, "String prepended to the date in each note filename")
	fs.StringVar(&cmd.Suffix, "suffix", cfg.Vault.Suffix, "String appended after the date in each note filename")
	fs.IntVar(&cmd.HeaderLevel, "header-level", cfg.Vault.HeaderLevel, "Markdown heading level for each entry")
	fs.BoolVar(&cmd.Colour, "colour", cfg.Vault.Colour, "Prepend a colour emoji to each entry heading depending on mood group")
	fs.BoolVar(&cmd.Once, "once", false, "Run a single sync and exit instead of scheduling")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s vault-sync -output <dir> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Re-export vault notes from the local journal database.\n\n")
		fmt.Fprintf(os.Stderr, "Unchanged notes are left untouched, so scheduled runs are cheap.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  # One-shot export:\n")
		fmt.Fprintf(os.Stderr, "  %s vault-sync -output ~/Obsidian/Journal -once\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  # Keep the vault current, syncing hourly:\n")
		fmt.Fprintf(os.Stderr, "  %s vault-sync -output ~/Obsidian/Journal -schedule \"0 * * * *\"\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.OutputDir == "" {
		return fmt.Errorf("required flag -output not provided")
	}

	return nil
}

func (cmd *VaultSyncCommand) Run() error {
	absOutputDir, err := filepath.Abs(cmd.OutputDir)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for output: %w", err)
	}
	cmd.OutputDir = absOutputDir

	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	moodSet := moods.Standard()
	if cmd.MoodsPath != "" {
		if set, err := moods.Load(cmd.MoodsPath); err != nil {
			log.Printf("Warning: %v", err)
		} else {
			moodSet = set
		}
	}

	options := exporters.NoteOptions{
		Tags:        strings.Fields(cmd.Tags),
		HeaderLevel: cmd.HeaderLevel,
		Colour:      cmd.Colour,
		Prefix:      cmd.Prefix,
		Suffix:      cmd.Suffix,
		Moods:       moodSet,
	}

	syncer := scheduler.NewVaultSyncScheduler(db, cmd.OutputDir, options, cmd.Schedule)

	if cmd.Once {
		syncer.RunSync()
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := syncer.Start(ctx); err != nil {
		return err
	}

	if next := syncer.GetNextRunTime(); next != nil {
		log.Printf("Next sync: %v", next)
	}

	<-ctx.Done()
	syncer.Stop()

	return nil
}
