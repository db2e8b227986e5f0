package config

import (
	"github.com/spf13/viper"
)

type (
	Config struct {
		Daylio
		Vault
		VaultSync
		Database
	}

	Daylio struct {
		DateFormat        string // Go time layout for the full_date column
		ActivityDelimiter string
		MoodsPath         string // path to a custom moods JSON, empty = standard set
	}
	Vault struct {
		OutputDir   string // destination directory for day notes
		Tags        string // space-separated frontmatter tags
		Prefix      string // prepended to the date in each filename
		Suffix      string // appended after the date in each filename
		HeaderLevel int
		Colour      bool
	}
	VaultSync struct {
		Enabled  bool
		Schedule string // Cron format: "0 * * * *" = hourly
	}
	Database struct {
		Path string
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("daylio_date_format", DefaultDateFormat)
	v.SetDefault("daylio_activity_delimiter", DefaultActivityDelimiter)
	v.SetDefault("daylio_moods_path", "")
	v.SetDefault("vault_output_dir", "")
	v.SetDefault("vault_tags", "daily")
	v.SetDefault("vault_prefix", "")
	v.SetDefault("vault_suffix", "")
	v.SetDefault("vault_header_level", 2)
	v.SetDefault("vault_colour", false)
	v.SetDefault("vault_sync_enabled", false)
	v.SetDefault("vault_sync_schedule", "0 * * * *") // Hourly at :00
	v.SetDefault("database_path", DefaultDatabasePath)

	return &Config{
		Daylio: Daylio{
			DateFormat:        v.GetString("DAYLIO_DATE_FORMAT"),
			ActivityDelimiter: v.GetString("DAYLIO_ACTIVITY_DELIMITER"),
			MoodsPath:         v.GetString("DAYLIO_MOODS_PATH"),
		},
		Vault: Vault{
			OutputDir:   v.GetString("VAULT_OUTPUT_DIR"),
			Tags:        v.GetString("VAULT_TAGS"),
			Prefix:      v.GetString("VAULT_PREFIX"),
			Suffix:      v.GetString("VAULT_SUFFIX"),
			HeaderLevel: v.GetInt("VAULT_HEADER_LEVEL"),
			Colour:      v.GetBool("VAULT_COLOUR"),
		},
		VaultSync: VaultSync{
			Enabled:  v.GetBool("VAULT_SYNC_ENABLED"),
			Schedule: v.GetString("VAULT_SYNC_SCHEDULE"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
	}
}
