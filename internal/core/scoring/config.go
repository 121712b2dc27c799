package scoring

// SDGStrategy selects how sdg_alignment is produced
type SDGStrategy string

const (
	// SDGShuffle draws a random 3-subset of the catalog's shuffle pool
	SDGShuffle SDGStrategy = "shuffle"

	// SDGKeywordRule qualifies each SDG whose rule keywords appear in the text
	SDGKeywordRule SDGStrategy = "keyword_rule"
)

// Config names one scoring variant. All tunables live here so that
// "which variant runs" is a configuration choice, not duplicated code
type Config struct {
	Name string

	// Base score plus PerMatch per distinct lexicon hit, saturating at Cap
	Base     int
	PerMatch int
	Cap      int

	// Absolute floor for the post-jitter score
	Floor int

	// Confidence is drawn uniformly from [ConfMin, ConfMax]
	ConfMin float64
	ConfMax float64

	SDGStrategy SDGStrategy
}

// PresetStandard is the shuffle-based variant
func PresetStandard() Config {
	return Config{
		Name:        "standard",
		Base:        80,
		PerMatch:    5,
		Cap:         95,
		Floor:       0,
		ConfMin:     85,
		ConfMax:     100,
		SDGStrategy: SDGShuffle,
	}
}

// PresetKeywordRule is the keyword-rule variant with a raised score floor
func PresetKeywordRule() Config {
	return Config{
		Name:        "keyword_rule",
		Base:        70,
		PerMatch:    6,
		Cap:         95,
		Floor:       30,
		ConfMin:     80,
		ConfMax:     100,
		SDGStrategy: SDGKeywordRule,
	}
}

// PresetByName resolves a preset from configuration. Unknown names report false
func PresetByName(name string) (Config, bool) {
	switch name {
	case "standard", "":
		return PresetStandard(), true
	case "keyword_rule":
		return PresetKeywordRule(), true
	default:
		return Config{}, false
	}
}
