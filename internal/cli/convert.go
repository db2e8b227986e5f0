package cli

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/DeutscheGabanna/Obsidian-Daylio-Parser/internal/config"
	"github.com/DeutscheGabanna/Obsidian-Daylio-Parser/internal/database"
	"github.com/DeutscheGabanna/Obsidian-Daylio-Parser/internal/daylio"
	"github.com/DeutscheGabanna/Obsidian-Daylio-Parser/internal/entities"
	"github.com/DeutscheGabanna/Obsidian-Daylio-Parser/internal/exporters"
	"github.com/DeutscheGabanna/Obsidian-Daylio-Parser/internal/importers"
	"github.com/DeutscheGabanna/Obsidian-Daylio-Parser/internal/moods"
)

// ConvertCommand turns a Daylio CSV export into per-day vault notes.
type ConvertCommand struct {
	CSVPath           string
	OutputDir         string
	DatabasePath      string
	MoodsPath         string
	DateFormat        string
	ActivityDelimiter string
	Tags              string
	Prefix            string
	Suffix            string
	HeaderLevel       int
	Colour            bool
	Overwrite         bool
	ExportMarkdown    bool
	Verbose           bool
	DryRun            bool
}

func NewConvertCommand() *ConvertCommand {
	return &ConvertCommand{}
}

func (cmd *ConvertCommand) ParseFlags(args []string) error {
	cfg := config.NewConfig()

	fs := flag.NewFlagSet("convert", flag.ExitOnError)

	fs.StringVar(&cmd.CSVPath, "file", "", "Path to the Daylio CSV export (required)")
	fs.StringVar(&cmd.OutputDir, "output", cfg.Vault.OutputDir, "Vault directory to write one markdown note per day into")
	fs.StringVar(&cmd.DatabasePath, "db", cfg.Database.Path, "Path to the local journal database for storing imported entries")
	fs.StringVar(&cmd.MoodsPath, "moods", cfg.Daylio.MoodsPath, "Path to a custom moods JSON file (default: standard rad/good/neutral/bad/awful set)")
	fs.StringVar(&cmd.DateFormat, "date-format", cfg.Daylio.DateFormat, "Go time layout the full_date column uses")
	fs.StringVar(&cmd.ActivityDelimiter, "activity-delimiter", cfg.Daylio.ActivityDelimiter, "Delimiter between activities inside one CSV cell")
	fs.StringVar(&cmd.Tags, "tags", cfg.Vault.Tags, "Space-separated tags for the YAML frontmatter of each note")
	fs.StringVar(&cmd.Prefix, "prefix", cfg.Vault.Prefix, "String prepended to the date in each note filename")
	fs.StringVar(&cmd.Suffix, "suffix", cfg.Vault.Suffix, "String appended after the date in each note filename")
	fs.IntVar(&cmd.HeaderLevel, "header-level", cfg.Vault.HeaderLevel, "Markdown heading level for each entry")
	fs.BoolVar(&cmd.Colour, "colour", cfg.Vault.Colour, "Prepend a colour emoji to each entry heading depending on mood group")
	fs.BoolVar(&cmd.Overwrite, "overwrite", true, "Rewrite existing notes unconditionally (false = leave byte-identical notes untouched)")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Enable verbose logging")
	fs.BoolVar(&cmd.DryRun, "dry-run", false, "Parse and validate without writing notes or touching the database")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s convert -file <path> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Convert a Daylio CSV export into one markdown note per calendar day.\n\n")
		fmt.Fprintf(os.Stderr, "Accepted entries are also saved to a local journal database so the\n")
		fmt.Fprintf(os.Stderr, "vault can be re-exported later with the vault-sync command.\n\n")
		fmt.Fprintf(os.Stderr, "Invalid rows never abort the run: they are skipped, counted and\n")
		fmt.Fprintf(os.Stderr, "listed in the final summary.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  # Convert an export into an Obsidian vault:\n")
		fmt.Fprintf(os.Stderr, "  %s convert -file daylio_export.csv -output ~/Obsidian/Journal\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  # Preview what would be converted:\n")
		fmt.Fprintf(os.Stderr, "  %s convert -file daylio_export.csv -dry-run -verbose\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.CSVPath == "" {
		return fmt.Errorf("required flag -file not provided")
	}

	cmd.ExportMarkdown = cmd.OutputDir != ""

	return nil
}

func (cmd *ConvertCommand) Run() error {
	fmt.Println("Daylio Convert")
	fmt.Println("==============")

	if cmd.DryRun {
		fmt.Println("DRY RUN MODE - No changes will be made")
		fmt.Println()
	}

	// Verify the export file exists
	if _, err := os.Stat(cmd.CSVPath); os.IsNotExist(err) {
		return fmt.Errorf("export file not found: %s", cmd.CSVPath)
	}

	fmt.Printf("File: %s\n", cmd.CSVPath)

	moodSet := cmd.loadMoods()

	fmt.Println("\nReading entries from Daylio export...")

	file, err := os.Open(cmd.CSVPath)
	if err != nil {
		return fmt.Errorf("failed to open export file: %w", err)
	}
	defer file.Close()

	rows, parseErrs, err := daylio.ParseCSV(file)
	if err != nil {
		return fmt.Errorf("failed to parse export: %w", err)
	}

	opts := daylio.Options{
		DateFormat:        cmd.DateFormat,
		ActivityDelimiter: cmd.ActivityDelimiter,
		Moods:             moodSet,
	}
	converter := importers.NewDaylioConverter(rows, parseErrs, opts, cmd.CSVPath)
	entries, rowErrs, source := converter.Convert()

	var exporter importers.NoteExporter
	if cmd.ExportMarkdown && !cmd.DryRun {
		absOutputDir, err := filepath.Abs(cmd.OutputDir)
		if err != nil {
			return fmt.Errorf("failed to get absolute path for output: %w", err)
		}
		cmd.OutputDir = absOutputDir
		exporter = exporters.NewMarkdownExporter(cmd.OutputDir, cmd.noteOptions(moodSet), cmd.strategy())
	}

	pipeline := importers.NewPipeline(exporter)
	result, err := pipeline.ImportEntries(entries, rowErrs, source)
	if err != nil {
		return fmt.Errorf("failed to convert export: %w", err)
	}

	cmd.printSummary(result)

	if cmd.DryRun {
		fmt.Println("\nDry run complete. Use without -dry-run to convert.")
		return nil
	}

	if cmd.DatabasePath != "" {
		if err := cmd.saveToDatabase(entries, result); err != nil {
			return err
		}
	}

	fmt.Println("\nConversion complete!")
	return nil
}

// loadMoods builds the mood vocabulary, falling back to the standard set
// when the custom file cannot be used. The fallback is a warning, not an
// error, matching how unknown moods only cost colouring and validation.
func (cmd *ConvertCommand) loadMoods() moods.Set {
	if cmd.MoodsPath == "" {
		fmt.Println("Standard mood set (rad, good, neutral, bad, awful) will be used.")
		return moods.Standard()
	}

	set, err := moods.Load(cmd.MoodsPath)
	if err != nil {
		log.Printf("Warning: %v", err)
		fmt.Println("Standard mood set (rad, good, neutral, bad, awful) will be used.")
		return moods.Standard()
	}

	if cmd.Verbose {
		fmt.Printf("Loaded custom mood set from %s\n", cmd.MoodsPath)
	}
	return set
}

func (cmd *ConvertCommand) noteOptions(moodSet moods.Set) exporters.NoteOptions {
	return exporters.NoteOptions{
		Tags:        strings.Fields(cmd.Tags),
		HeaderLevel: cmd.HeaderLevel,
		Colour:      cmd.Colour,
		Prefix:      cmd.Prefix,
		Suffix:      cmd.Suffix,
		Moods:       moodSet,
	}
}

func (cmd *ConvertCommand) strategy() exporters.WriteStrategy {
	if cmd.Overwrite {
		return exporters.OverwriteAlways
	}
	return exporters.SkipUnchanged
}

func (cmd *ConvertCommand) printSummary(result importers.ImportResult) {
	fmt.Println("\n=== Conversion Summary ===")
	fmt.Printf("Entries accepted: %d\n", result.EntriesAccepted)
	fmt.Printf("Rows skipped: %d\n", result.RowsSkipped)
	fmt.Printf("Days grouped: %d\n", result.DaysGrouped)

	if cmd.ExportMarkdown && !cmd.DryRun {
		fmt.Printf("Notes written: %d\n", result.NotesWritten)
		if result.NotesSkipped > 0 {
			fmt.Printf("Notes unchanged: %d\n", result.NotesSkipped)
		}
		if result.NotesFailed > 0 {
			fmt.Printf("Notes failed: %d\n", result.NotesFailed)
		}
	}

	if len(result.SkippedRows) > 0 {
		counts := make(map[daylio.Reason]int)
		for _, rowErr := range result.SkippedRows {
			counts[rowErr.Reason]++
		}
		fmt.Println("\nSkipped rows by reason:")
		for _, reason := range []daylio.Reason{
			daylio.ReasonMalformedRow,
			daylio.ReasonInvalidDate,
			daylio.ReasonInvalidTime,
			daylio.ReasonUnknownMood,
		} {
			if counts[reason] > 0 {
				fmt.Printf("  %s: %d\n", reason, counts[reason])
			}
		}

		if cmd.Verbose {
			fmt.Println()
			for _, rowErr := range result.SkippedRows {
				fmt.Printf("  [SKIP] %v\n", rowErr)
			}
		}
	}
}

func (cmd *ConvertCommand) saveToDatabase(entries []entities.Entry, result importers.ImportResult) error {
	absDBPath, err := filepath.Abs(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for database: %w", err)
	}
	cmd.DatabasePath = absDBPath

	fmt.Printf("\nSaving to database: %s\n", cmd.DatabasePath)

	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	saved, err := db.SaveEntries(entries)
	if err != nil {
		return fmt.Errorf("failed to save entries: %w", err)
	}

	fmt.Printf("Entries saved: %d/%d (%d already present)\n", saved, len(entries), len(entries)-saved)

	session := &entities.ImportSession{
		SourceFile:      cmd.CSVPath,
		Status:          entities.ImportStatusCompleted,
		EntriesAccepted: result.EntriesAccepted,
		RowsSkipped:     result.RowsSkipped,
		NotesWritten:    result.NotesWritten,
	}
	if err := db.RecordImportSession(session); err != nil {
		log.Printf("Warning: failed to record import session: %v", err)
	}

	return nil
}
