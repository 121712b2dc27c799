package scoring

import (
	"math"
	"math/rand"
	"sort"
	"testing"
)

func newTestScorer(t *testing.T, cfg Config, seed int64) *Scorer {
	t.Helper()
	p, err := Load()
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}
	return New(cfg, p, rand.NewSource(seed))
}

func TestScoreInvariants(t *testing.T) {
	for _, cfg := range []Config{PresetStandard(), PresetKeywordRule()} {
		t.Run(cfg.Name, func(t *testing.T) {
			s := newTestScorer(t, cfg, 1)
			in := Input{
				Title:       "Solar co-op",
				Description: "Community-owned renewable energy with zero waste packaging",
			}
			for i := 0; i < 200; i++ {
				got := s.Score(in)
				if got.Score < cfg.Floor || got.Score > 100 {
					t.Fatalf("score %d outside [%d,100]", got.Score, cfg.Floor)
				}
				if got.Confidence < cfg.ConfMin || got.Confidence > cfg.ConfMax {
					t.Fatalf("confidence %.2f outside [%.0f,%.0f]", got.Confidence, cfg.ConfMin, cfg.ConfMax)
				}
				if n := len(got.Risks); n < 2 || n > 3 {
					t.Fatalf("risks length %d", n)
				}
				if n := len(got.Opportunities); n < 2 || n > 3 {
					t.Fatalf("opportunities length %d", n)
				}
				if len(got.SDGAlignment) == 0 {
					t.Fatalf("empty sdg alignment")
				}
				if len(got.Recommendations) != len(s.pack.Recommendations) {
					t.Fatalf("recommendations truncated: %d", len(got.Recommendations))
				}
			}
		})
	}
}

func TestRiskOpportunityTruncationIsOrdered(t *testing.T) {
	s := newTestScorer(t, PresetStandard(), 3)
	got := s.Score(Input{Description: "sustainable packaging"})
	for i, r := range got.Risks {
		if r != s.pack.Risks[i] {
			t.Fatalf("risk %d reordered: %q", i, r)
		}
	}
	for i, o := range got.Opportunities {
		if o != s.pack.Opportunities[i] {
			t.Fatalf("opportunity %d reordered: %q", i, o)
		}
	}
}

func TestMatchesCountsDistinctTerms(t *testing.T) {
	s := newTestScorer(t, PresetKeywordRule(), 1)
	cases := []struct {
		name string
		in   Input
		want int
	}{
		{"no hits", Input{Description: "A new mobile game app"}, 0},
		{"repeats count once", Input{Description: "green green green"}, 1},
		{"multi-word terms", Input{Description: "Clean Energy and zero waste logistics"}, 2},
		{"title feeds matching", Input{Title: "Recycling depot", Description: "pickup routes"}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.Matches(tc.in); got != tc.want {
				t.Fatalf("Matches = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestBaseScoreMonotonicUpToCap(t *testing.T) {
	s := newTestScorer(t, PresetKeywordRule(), 1)
	prev := -1
	for m := 0; m < 20; m++ {
		base := s.BaseScore(m)
		if base < prev {
			t.Fatalf("base score decreased: %d matches -> %d (prev %d)", m, base, prev)
		}
		if base > s.cfg.Cap {
			t.Fatalf("base score %d above cap %d", base, s.cfg.Cap)
		}
		prev = base
	}
	if s.BaseScore(0) != 70 {
		t.Fatalf("zero matches base = %d, want 70", s.BaseScore(0))
	}
	if s.BaseScore(2) != 82 {
		t.Fatalf("two matches base = %d, want 82", s.BaseScore(2))
	}
	if s.BaseScore(10) != 95 {
		t.Fatalf("saturated base = %d, want 95", s.BaseScore(10))
	}
}

func TestKeywordRuleSDGDefaultWhenNothingMatches(t *testing.T) {
	s := newTestScorer(t, PresetKeywordRule(), 9)
	in := Input{Title: "Arcade", Description: "A new mobile game app"}
	for i := 0; i < 50; i++ {
		got := s.Score(in)
		if len(got.SDGAlignment) != 3 ||
			got.SDGAlignment[0] != 7 || got.SDGAlignment[1] != 11 || got.SDGAlignment[2] != 13 {
			t.Fatalf("expected default sdgs [7 11 13], got %v", got.SDGAlignment)
		}
		// zero matches: base 70, jitter within 10, floor 30
		if got.Score < 60 || got.Score > 80 {
			t.Fatalf("score %d outside jitter band around base 70", got.Score)
		}
	}
}

func TestKeywordRuleSDGMatching(t *testing.T) {
	s := newTestScorer(t, PresetKeywordRule(), 2)
	got := s.Score(Input{Description: "We recycle plastic waste into solar panels"})
	want := []int{7, 12} // solar -> 7, recycle/waste -> 12
	if len(got.SDGAlignment) != len(want) {
		t.Fatalf("sdgs = %v, want %v", got.SDGAlignment, want)
	}
	for i, sdg := range want {
		if got.SDGAlignment[i] != sdg {
			t.Fatalf("sdgs = %v, want %v", got.SDGAlignment, want)
		}
	}
}

func TestShuffleSDGsAreSubsetOfPool(t *testing.T) {
	s := newTestScorer(t, PresetStandard(), 5)
	pool := map[int]bool{}
	for _, sdg := range s.pack.ShufflePool {
		pool[sdg] = true
	}
	for i := 0; i < 50; i++ {
		got := s.Score(Input{Description: "urban farming"})
		if len(got.SDGAlignment) != 3 {
			t.Fatalf("expected 3 shuffled sdgs, got %v", got.SDGAlignment)
		}
		if !sort.IntsAreSorted(got.SDGAlignment) {
			t.Fatalf("shuffled sdgs not sorted: %v", got.SDGAlignment)
		}
		seen := map[int]bool{}
		for _, sdg := range got.SDGAlignment {
			if !pool[sdg] {
				t.Fatalf("sdg %d not in pool", sdg)
			}
			if seen[sdg] {
				t.Fatalf("duplicate sdg %d in %v", sdg, got.SDGAlignment)
			}
			seen[sdg] = true
		}
	}
}

// Pins the entropy source and replays the scorer's draw order to assert
// the exact output for one input
func TestScoreExactWithPinnedSeed(t *testing.T) {
	const seed = 7
	cfg := PresetKeywordRule()
	s := newTestScorer(t, cfg, seed)
	in := Input{
		Title:       "GridLoop",
		Description: "A renewable clean energy platform with recycling and zero waste packaging",
	}

	matches := s.Matches(in)
	if matches != 4 {
		t.Fatalf("expected 4 lexicon matches, got %d", matches)
	}
	base := s.BaseScore(matches) // 70 + 4*6 = 94

	rng := rand.New(rand.NewSource(seed))
	jitter := rng.Float64()*20 - 10
	conf := cfg.ConfMin + rng.Float64()*(cfg.ConfMax-cfg.ConfMin)
	nRisks := 2 + rng.Intn(2)
	nOpps := 2 + rng.Intn(2)

	final := float64(base) + jitter
	if final < float64(cfg.Floor) {
		final = float64(cfg.Floor)
	}
	if final > 100 {
		final = 100
	}
	wantScore := int(math.Round(final))

	got := s.Score(in)
	if got.Score != wantScore {
		t.Fatalf("score = %d, want %d", got.Score, wantScore)
	}
	if got.Confidence != conf {
		t.Fatalf("confidence = %v, want %v", got.Confidence, conf)
	}
	if len(got.Risks) != nRisks || len(got.Opportunities) != nOpps {
		t.Fatalf("lengths = %d/%d, want %d/%d", len(got.Risks), len(got.Opportunities), nRisks, nOpps)
	}
	// renewable/energy -> 7, recycle/waste -> 12
	if len(got.SDGAlignment) != 2 || got.SDGAlignment[0] != 7 || got.SDGAlignment[1] != 12 {
		t.Fatalf("sdgs = %v, want [7 12]", got.SDGAlignment)
	}
}

func TestPresetByName(t *testing.T) {
	if cfg, ok := PresetByName(""); !ok || cfg.Name != "standard" {
		t.Fatalf("empty name should resolve standard, got %v %v", cfg.Name, ok)
	}
	if cfg, ok := PresetByName("keyword_rule"); !ok || cfg.Base != 70 {
		t.Fatalf("keyword_rule preset wrong: %+v %v", cfg, ok)
	}
	if _, ok := PresetByName("nope"); ok {
		t.Fatalf("unknown preset should not resolve")
	}
}
