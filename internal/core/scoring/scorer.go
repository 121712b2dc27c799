package scoring

import (
	"math"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"
)

// Input is the ephemeral text a caller wants scored.
// Description carries the weight; Title only feeds keyword matching
type Input struct {
	Title       string
	Description string
}

// Result is a fully-populated validation outcome. Score and Confidence
// are always clamped into their ranges and SDGAlignment is never empty
type Result struct {
	Score           int      `json:"score"`
	Confidence      float64  `json:"confidence"`
	Risks           []string `json:"risks"`
	Opportunities   []string `json:"opportunities"`
	Recommendations []string `json:"recommendations"`
	SDGAlignment    []int    `json:"sdg_alignment"`
}

// Scorer evaluates idea text against its pack under one named Config.
// Safe for concurrent use; the entropy source is serialized internally
type Scorer struct {
	cfg  Config
	pack *Pack

	mu  sync.Mutex
	rng *rand.Rand
}

// New builds a Scorer. A nil src falls back to a time-seeded source;
// tests inject a fixed seed to pin exact outputs
func New(cfg Config, pack *Pack, src rand.Source) *Scorer {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Scorer{cfg: cfg, pack: pack, rng: rand.New(src)}
}

// Config returns the active variant
func (s *Scorer) Config() Config { return s.cfg }

// LexiconSize reports how many terms the active pack matches against
func (s *Scorer) LexiconSize() int { return len(s.pack.Lexicon) }

// Matches counts distinct lexicon terms present in the folded text
func (s *Scorer) Matches(in Input) int {
	text := Fold(in.Title + " " + in.Description)
	n := 0
	for _, term := range s.pack.Lexicon {
		if strings.Contains(text, term) {
			n++
		}
	}
	return n
}

// BaseScore is the pre-jitter score for the given match count
func (s *Scorer) BaseScore(matches int) int {
	base := s.cfg.Base + matches*s.cfg.PerMatch
	if base > s.cfg.Cap {
		base = s.cfg.Cap
	}
	return base
}

// Score produces a Result for the input. Not idempotent: jitter,
// confidence and the risk/opportunity truncation draw from the
// injected source, so repeated calls on the same text differ.
// Draw order is fixed (jitter, confidence, risk len, opportunity len,
// then the SDG shuffle) so a pinned seed yields exact outputs
func (s *Scorer) Score(in Input) Result {
	text := Fold(in.Title + " " + in.Description)

	matches := 0
	for _, term := range s.pack.Lexicon {
		if strings.Contains(text, term) {
			matches++
		}
	}
	base := s.BaseScore(matches)

	s.mu.Lock()
	jitter := s.rng.Float64()*20 - 10
	conf := s.cfg.ConfMin + s.rng.Float64()*(s.cfg.ConfMax-s.cfg.ConfMin)
	nRisks := 2 + s.rng.Intn(2)
	nOpps := 2 + s.rng.Intn(2)
	var sdgs []int
	if s.cfg.SDGStrategy == SDGShuffle {
		sdgs = s.shuffleSDGsLocked(3)
	}
	s.mu.Unlock()

	if s.cfg.SDGStrategy == SDGKeywordRule {
		sdgs = s.matchSDGs(text)
	}
	if len(sdgs) == 0 {
		sdgs = append([]int(nil), s.pack.DefaultSDGs...)
	}

	final := float64(base) + jitter
	if final < float64(s.cfg.Floor) {
		final = float64(s.cfg.Floor)
	}
	if final > 100 {
		final = 100
	}

	return Result{
		Score:           int(math.Round(final)),
		Confidence:      conf,
		Risks:           head(s.pack.Risks, nRisks),
		Opportunities:   head(s.pack.Opportunities, nOpps),
		Recommendations: append([]string(nil), s.pack.Recommendations...),
		SDGAlignment:    sdgs,
	}
}

// shuffleSDGsLocked draws n SDGs from the pool; caller holds s.mu
func (s *Scorer) shuffleSDGsLocked(n int) []int {
	pool := append([]int(nil), s.pack.ShufflePool...)
	s.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	if n > len(pool) {
		n = len(pool)
	}
	out := pool[:n]
	sort.Ints(out)
	return out
}

// matchSDGs qualifies each rule whose any keyword appears in the folded text
func (s *Scorer) matchSDGs(text string) []int {
	var out []int
	for _, rule := range s.pack.Rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(text, kw) {
				out = append(out, rule.SDG)
				break
			}
		}
	}
	return out
}

func head(src []string, n int) []string {
	if n > len(src) {
		n = len(src)
	}
	return append([]string(nil), src[:n]...)
}
