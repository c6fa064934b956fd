package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds everything the pipeline needs for one run. Values come from
// environment variables with sensible defaults; CLI flags may override
// individual fields afterwards.
type Config struct {
	// SourceFeed is a Kyero V3 feed, either a local path or an HTTP(S) URL.
	SourceFeed string
	// OutputFeed is the ImmoScout24 XML document written on success.
	OutputFeed string
	// Split switches output to one document per property under SplitDir.
	Split    bool
	SplitDir string

	// ImagesDir is the root of the local image store, one subdirectory
	// per property id.
	ImagesDir string

	LogFile string

	HTTPTimeout    time.Duration
	MaxRetries     int
	RetryBaseDelay time.Duration
	UserAgent      string
}

// Load reads configuration from the environment.
func Load() *Config {
	viper.SetDefault("SOURCE_FEED", "input/bv.xml")
	viper.SetDefault("OUTPUT_FEED", "output/immoscout24.xml")
	viper.SetDefault("SPLIT_DIR", "output/transformado")
	viper.SetDefault("IMAGES_DIR", "images")
	viper.SetDefault("LOG_FILE", "kyero2is24.log")
	viper.SetDefault("HTTP_TIMEOUT_SECONDS", 10)
	viper.SetDefault("MAX_RETRIES", 3)
	viper.SetDefault("RETRY_BASE_DELAY_MS", 500)
	viper.SetDefault("USER_AGENT", "Mozilla/5.0")

	viper.AutomaticEnv()

	return &Config{
		SourceFeed:     viper.GetString("SOURCE_FEED"),
		OutputFeed:     viper.GetString("OUTPUT_FEED"),
		SplitDir:       viper.GetString("SPLIT_DIR"),
		ImagesDir:      viper.GetString("IMAGES_DIR"),
		LogFile:        viper.GetString("LOG_FILE"),
		HTTPTimeout:    time.Duration(viper.GetInt("HTTP_TIMEOUT_SECONDS")) * time.Second,
		MaxRetries:     viper.GetInt("MAX_RETRIES"),
		RetryBaseDelay: time.Duration(viper.GetInt("RETRY_BASE_DELAY_MS")) * time.Millisecond,
		UserAgent:      viper.GetString("USER_AGENT"),
	}
}
