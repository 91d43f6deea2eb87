package module

import "vibecheck/internal/platform/config"

// Options are the classify knobs, read from VIBECHECK_MODEL_*
type Options struct {
	// TrainFile optionally seeds the model at startup; empty skips seeding
	TrainFile     string
	ProgressEvery int
}

// FromConfig reads the model knobs from their env scope
func FromConfig(cfg config.Conf) Options {
	mf := cfg.Prefix("MODEL_")
	return Options{
		TrainFile:     mf.MayString("TRAIN_FILE", ""),
		ProgressEvery: mf.MayInt("PROGRESS_EVERY", 100000),
	}
}
