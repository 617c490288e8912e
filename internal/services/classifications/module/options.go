package module

import "taller/internal/platform/config"

// Options holds configuration settings for the classifications module
type Options struct {
	StatsLimit int
	HardLimit  int
}

// FromConfig reads CORE_CLASSIFICATIONS_* settings
func FromConfig(cfg config.Conf) Options {
	cf := cfg.Prefix("CORE_CLASSIFICATIONS_")
	return Options{
		StatsLimit: cf.MayInt("STATS_LIMIT", 10),
		HardLimit:  cf.MayInt("HARD_LIMIT", 100),
	}
}
