// Package database provides the local journal store.
//
// Imported entries and import-session summaries are persisted in a
// single sqlite file (gorm with auto-migration), so the vault can be
// re-exported by the sync scheduler without re-reading the original CSV.
//
//	db, err := database.NewDatabase("./daylio-journal.db")
//	defer db.Close()
//
//	saved, err := db.SaveEntries(entries)
//	entries, err := db.GetAllEntries()
//
// SaveEntries is deduplicating: re-importing the same export adds
// nothing, which keeps repeated conversions idempotent.
package database
