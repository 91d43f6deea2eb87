package module

import "vibecheck/internal/platform/config"

// Options bound how much detail a run archives, read from VIBECHECK_RUNS_*
type Options struct {
	HardLimit    int
	MissLimit    int
	LexiconLimit int
}

// FromConfig reads the archive knobs from their env scope
func FromConfig(cfg config.Conf) Options {
	rf := cfg.Prefix("RUNS_")
	return Options{
		HardLimit:    rf.MayInt("HARD_LIMIT", 100),
		MissLimit:    rf.MayInt("MISS_LIMIT", 1000),
		LexiconLimit: rf.MayInt("LEXICON_LIMIT", 100),
	}
}
