package module

import (
	"taller/internal/core/classifier"
	"taller/internal/platform/config"
	"taller/internal/services/analysis/service"
)

// FromConfig reads CORE_ANALYSIS_* settings on top of the defaults
func FromConfig(cfg config.Conf) service.Config {
	af := cfg.Prefix("CORE_ANALYSIS_")
	d := service.DefaultConfig()
	return service.Config{
		Threshold:   af.MayFloat64("THRESHOLD", classifier.DefaultThreshold),
		TopN:        af.MayInt("TOP_N", d.TopN),
		PartLabels:  af.MayCSV("PART_LABELS", d.PartLabels),
		LaborLabels: af.MayCSV("LABOR_LABELS", d.LaborLabels),
		Record:      af.MayBool("RECORD", d.Record),
		Workers:     af.MayInt("WORKERS", d.Workers),
		BatchMax:    af.MayInt("BATCH_MAX", d.BatchMax),
	}
}
