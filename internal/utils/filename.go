package utils

import (
	"regexp"
	"strings"
)

var (
	// Characters invalid in filenames on most filesystems
	invalidFilenameChars = regexp.MustCompile(`[<>:"/\\|?*]`)
	// Whitespace characters to normalize
	whitespaceChars = regexp.MustCompile(`[\r\n\t]`)
	// Multiple spaces to collapse
	multipleSpaces = regexp.MustCompile(`\s+`)

	slugSpaces      = regexp.MustCompile(`\s+`)
	slugNonWord     = regexp.MustCompile(`[^a-z0-9_\-\p{L}\p{N}]+`)
	slugMultiDash   = regexp.MustCompile(`--+`)
	slugEdgeDashes  = regexp.MustCompile(`^-+|-+$`)
	slugDigitPrefix = regexp.MustCompile(`^[0-9]`)
)

// SanitizeFilename sanitizes a filename for Obsidian compatibility.
// It removes or replaces characters that are invalid in filenames or
// problematic in Obsidian (slashes, colons, quotes, hashtags, brackets, etc.)
func SanitizeFilename(filename string) string {
	// Remove invalid filename characters
	filename = invalidFilenameChars.ReplaceAllString(filename, "")

	// Replace newlines/tabs with spaces
	filename = whitespaceChars.ReplaceAllString(filename, " ")

	// Collapse multiple spaces
	filename = multipleSpaces.ReplaceAllString(filename, " ")

	// Trim whitespace
	filename = strings.TrimSpace(filename)

	// Obsidian-specific sanitization
	filename = strings.ReplaceAll(filename, "#", "")
	filename = strings.ReplaceAll(filename, "[", "(")
	filename = strings.ReplaceAll(filename, "]", ")")

	// Limit length (most filesystems support 255, but leave room for extension)
	if len(filename) > 200 {
		filename = strings.TrimSpace(filename[:200])
	}

	// Ensure it's not empty
	if filename == "" {
		filename = "Untitled"
	}

	return filename
}

// Slugify transforms free text into a hashtag-friendly slug: lowercase,
// whitespace becomes a single dash, everything outside letters, digits,
// underscores and dashes is dropped. Works on non-latin characters too.
func Slugify(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	text = slugSpaces.ReplaceAllString(text, "-")
	text = slugNonWord.ReplaceAllString(text, "")
	text = slugMultiDash.ReplaceAllString(text, "-")
	text = slugEdgeDashes.ReplaceAllString(text, "")
	return text
}

// IsValidTag reports whether a slug can serve as an Obsidian tag.
// Obsidian rejects tags that start with a digit.
func IsValidTag(slug string) bool {
	return slug != "" && !slugDigitPrefix.MatchString(slug)
}
