// Package scoring evaluates free-text business ideas against a fixed
// sustainability catalog and produces a bounded score plus supporting
// signals (confidence, risks, opportunities, SDG alignment).
// The catalog is loaded from the embedded catalog.json
package scoring

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

//go:embed catalog.json
var embedded []byte

type rawSDGRule struct {
	SDG      int      `json:"sdg"`
	Keywords []string `json:"keywords"`
}

type rawCatalog struct {
	Version         int            `json:"version"`
	Meta            map[string]any `json:"meta"`
	Lexicon         []string       `json:"lexicon"`
	SDGRules        []rawSDGRule   `json:"sdg_rules"`
	DefaultSDGs     []int          `json:"default_sdgs"`
	ShufflePool     []int          `json:"shuffle_pool"`
	Risks           []string       `json:"risks"`
	Opportunities   []string       `json:"opportunities"`
	Recommendations []string       `json:"recommendations"`
}

// SDGRule maps one SDG number to the keywords that qualify it
type SDGRule struct {
	SDG      int
	Keywords []string
}

// Pack is the compiled catalog consumed by the Scorer
type Pack struct {
	Version int
	Meta    map[string]any

	// Lexicon terms, lowercased and deduped, sorted for deterministic iteration
	Lexicon []string

	// SDG keyword rules in catalog order
	Rules       []SDGRule
	DefaultSDGs []int
	ShufflePool []int

	// Ordered narrative catalogs (truncated per call, never reordered)
	Risks           []string
	Opportunities   []string
	Recommendations []string
}

// Load returns the compiled pack from the embedded catalog.json
func Load() (*Pack, error) {
	var rc rawCatalog
	if err := json.Unmarshal(embedded, &rc); err != nil {
		return nil, fmt.Errorf("scoring: parse catalog.json: %w", err)
	}
	if rc.Version != 1 {
		return nil, fmt.Errorf("scoring: unsupported catalog.json version %d (want 1)", rc.Version)
	}

	p := &Pack{
		Version:         rc.Version,
		Meta:            rc.Meta,
		DefaultSDGs:     rc.DefaultSDGs,
		ShufflePool:     rc.ShufflePool,
		Risks:           rc.Risks,
		Opportunities:   rc.Opportunities,
		Recommendations: rc.Recommendations,
	}

	// Lexicon: lowercase, trim, dedupe; sorted so match counting is stable
	seen := make(map[string]struct{}, len(rc.Lexicon))
	for _, term := range rc.Lexicon {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" {
			continue
		}
		if _, ok := seen[term]; ok {
			continue
		}
		seen[term] = struct{}{}
		p.Lexicon = append(p.Lexicon, term)
	}
	sort.Strings(p.Lexicon)

	for _, r := range rc.SDGRules {
		if r.SDG <= 0 {
			return nil, fmt.Errorf("scoring: sdg rule with non-positive sdg %d", r.SDG)
		}
		var kws []string
		for _, kw := range r.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw != "" {
				kws = append(kws, kw)
			}
		}
		if len(kws) == 0 {
			return nil, fmt.Errorf("scoring: sdg rule %d has no keywords", r.SDG)
		}
		p.Rules = append(p.Rules, SDGRule{SDG: r.SDG, Keywords: kws})
	}

	if len(p.Lexicon) == 0 {
		return nil, fmt.Errorf("scoring: empty lexicon")
	}
	if len(p.DefaultSDGs) == 0 {
		return nil, fmt.Errorf("scoring: empty default_sdgs")
	}
	if len(p.ShufflePool) < 3 {
		return nil, fmt.Errorf("scoring: shuffle_pool needs at least 3 entries, got %d", len(p.ShufflePool))
	}
	if len(p.Risks) < 3 || len(p.Opportunities) < 3 {
		return nil, fmt.Errorf("scoring: risks and opportunities catalogs need at least 3 entries")
	}
	if len(p.Recommendations) == 0 {
		return nil, fmt.Errorf("scoring: empty recommendations")
	}

	return p, nil
}

// MustLoad is Load for process init paths where a broken embed is fatal
func MustLoad() *Pack {
	p, err := Load()
	if err != nil {
		panic(err)
	}
	return p
}
