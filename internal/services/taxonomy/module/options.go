package module

import (
	"taller/internal/platform/config"
)

// Options holds configuration settings for the taxonomy module
type Options struct {
	// Refresh is a cron spec for dropping the cache; empty disables it
	Refresh string
	// SeedOnBoot installs the embedded seed when the store holds no categories
	SeedOnBoot bool
}

// FromConfig reads CORE_TAXONOMY_* settings
func FromConfig(cfg config.Conf) Options {
	tf := cfg.Prefix("CORE_TAXONOMY_")
	return Options{
		Refresh:    tf.MayString("REFRESH", ""),
		SeedOnBoot: tf.MayBool("SEED_ON_BOOT", false),
	}
}
