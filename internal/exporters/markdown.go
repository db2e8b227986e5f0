package exporters

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/DeutscheGabanna/Obsidian-Daylio-Parser/internal/entities"
	"github.com/DeutscheGabanna/Obsidian-Daylio-Parser/internal/moods"
	"github.com/DeutscheGabanna/Obsidian-Daylio-Parser/internal/utils"
)

// WriteStrategy decides what happens when a note file already exists.
// Re-runs of the converter are expected; last writer wins either way.
type WriteStrategy string

const (
	// OverwriteAlways rewrites every note unconditionally.
	OverwriteAlways WriteStrategy = "overwrite"
	// SkipUnchanged leaves a note alone when its on-disk content is
	// byte-identical to what would be written.
	SkipUnchanged WriteStrategy = "skip-unchanged"
)

// NoteOptions configures how a day note is rendered and named.
type NoteOptions struct {
	Tags        []string // YAML frontmatter tags
	HeaderLevel int      // markdown heading level for each entry
	Colour      bool     // prepend a mood-group colour emoji to each entry heading
	Prefix      string   // prepended to the date in the filename
	Suffix      string   // appended after the date in the filename
	Moods       moods.Set
}

// DefaultNoteOptions returns the rendering defaults of a stock conversion.
func DefaultNoteOptions() NoteOptions {
	return NoteOptions{
		Tags:        []string{"daily"},
		HeaderLevel: 2,
		Moods:       moods.Standard(),
	}
}

// GenerateMarkdown renders one day's entries into markdown. Deterministic:
// the same day always produces byte-identical output. No clock reads, no
// randomness, so re-runs are idempotent and output is directly testable.
func GenerateMarkdown(day entities.Day, opts NoteOptions) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "---\ntags: %s\n---\n\n", strings.Join(opts.Tags, " "))

	level := opts.HeaderLevel
	if level < 1 {
		level = 2
	}

	for _, entry := range day.Entries {
		title := entry.Mood
		if opts.Colour {
			if colour := opts.Moods.Colour(entry.Mood); colour != "" {
				title = colour + " " + title
			}
		}
		if entry.HasTime() {
			title += " - " + entry.Time
		}
		if entry.NoteTitle != "" {
			title += " | " + entry.NoteTitle
		}
		fmt.Fprintf(&builder, "%s %s\n", strings.Repeat("#", level), title)

		builder.WriteString("I felt #" + utils.Slugify(entry.Mood))
		if len(entry.Activities) > 0 {
			builder.WriteString(" with the following:")
			for _, activity := range entry.Activities {
				builder.WriteString(" #" + activity)
			}
		} else {
			builder.WriteString(".")
		}

		if entry.Note != "" {
			builder.WriteString("\n" + entry.Note + "\n\n")
		} else {
			builder.WriteString("\n\n")
		}
	}

	return builder.String()
}

// MarkdownExporter writes one markdown note per day into a vault
// directory.
type MarkdownExporter struct {
	OutputDir string
	Options   NoteOptions
	Strategy  WriteStrategy
	Result    ExportResult
}

func NewMarkdownExporter(outputDir string, options NoteOptions, strategy WriteStrategy) *MarkdownExporter {
	return &MarkdownExporter{
		OutputDir: outputDir,
		Options:   options,
		Strategy:  strategy,
		Result:    ExportResult{},
	}
}

// NotePath derives the deterministic file path for a day's note:
// <prefix><YYYY-MM-DD><suffix>.md inside the output directory.
func (exporter *MarkdownExporter) NotePath(date string) string {
	name := utils.SanitizeFilename(exporter.Options.Prefix+date+exporter.Options.Suffix) + ".md"
	return filepath.Join(exporter.OutputDir, name)
}

// Export renders and writes every day. A failure to write one note is
// counted and logged, but does not abort the remaining notes; only an
// unusable output directory is fatal.
func (exporter *MarkdownExporter) Export(days []entities.Day) (ExportResult, error) {
	// Reset result state for each export
	exporter.Result = ExportResult{}

	if err := os.MkdirAll(exporter.OutputDir, 0o755); err != nil {
		return ExportResult{}, fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, day := range days {
		content := GenerateMarkdown(day, exporter.Options)
		path := exporter.NotePath(day.Date)

		wrote, err := exporter.writeNote(path, content)
		if err != nil {
			log.Printf("Failed to write note for %s: %v", day.Date, err)
			exporter.Result.NotesFailed++
			continue
		}

		if wrote {
			exporter.Result.NotesProcessed++
		} else {
			exporter.Result.NotesSkipped++
		}
		exporter.Result.EntriesProcessed += len(day.Entries)
	}

	return exporter.Result, nil
}

// writeNote writes content to path, honouring the write strategy.
// Returns false when the existing file was left untouched.
func (exporter *MarkdownExporter) writeNote(path, content string) (bool, error) {
	if exporter.Strategy == SkipUnchanged {
		same, err := matchesChecksum(path, content)
		if err == nil && same {
			return false, nil
		}
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return false, err
	}
	return true, nil
}

// matchesChecksum compares the SHA-256 of the file at path against the
// candidate content.
func matchesChecksum(path, content string) (bool, error) {
	file, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer file.Close()

	existing := sha256.New()
	if _, err := io.Copy(existing, file); err != nil {
		return false, err
	}

	candidate := sha256.Sum256([]byte(content))
	return bytes.Equal(existing.Sum(nil), candidate[:]), nil
}

// Compile-time interface check
var _ DayExporter = (*MarkdownExporter)(nil)
