package words

import (
	"math/rand"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

const (
	// maxAttempts bounds the random search for a playable pool.
	maxAttempts = 10000
	// matchCap stops the formable-word scan early; counting past it tells
	// us nothing about playability.
	matchCap = 1000
	// minFormableLen excludes one-letter words from the playability count.
	minFormableLen = 2
)

// Generator produces randomized letter pools that are playable against a
// dictionary: at least minWordCount words must be spellable from the pool.
type Generator struct {
	dict *Dictionary

	// mu guards rand; pools for different rooms may be generated
	// concurrently.
	mu   sync.Mutex
	rand *rand.Rand
}

func NewGenerator(dict *Dictionary, src rand.Source) *Generator {
	return &Generator{
		dict: dict,
		rand: rand.New(src),
	}
}

// Generate draws random poolSize-letter subsets of the alphabet until one
// can spell at least minWordCount dictionary words, up to maxAttempts.
// On exhaustion it falls back to the first poolSize letters of the alphabet,
// a degraded but deterministic pool.
//
// With no dictionary loaded there is nothing to count against, so the
// search is skipped and the deterministic pool is returned immediately.
func (g *Generator) Generate(poolSize, minWordCount int) []string {
	if poolSize > len(alphabet) {
		poolSize = len(alphabet)
	}

	if g.dict.Empty() {
		log.Warn().Int("poolSize", poolSize).Msg("no dictionary loaded, using deterministic letter pool")
		return alphabetPrefix(poolSize)
	}

	for i := 0; i < maxAttempts; i++ {
		candidate := g.randomPool(poolSize)

		if g.countFormable(candidate) >= minWordCount {
			return candidate
		}
	}

	log.Warn().
		Int("poolSize", poolSize).
		Int("minWordCount", minWordCount).
		Msg("letter pool search exhausted, using deterministic fallback")

	return alphabetPrefix(poolSize)
}

// randomPool takes the first poolSize letters of a uniform random
// permutation of the alphabet.
func (g *Generator) randomPool(poolSize int) []string {
	g.mu.Lock()
	perm := g.rand.Perm(len(alphabet))
	g.mu.Unlock()

	pool := make([]string, poolSize)
	for i := 0; i < poolSize; i++ {
		pool[i] = string(alphabet[perm[i]])
	}

	return pool
}

// countFormable counts dictionary words of length >= 2 spellable from the
// pool, stopping at matchCap.
func (g *Generator) countFormable(pool []string) int {
	count := 0

	for w := range g.dict.words {
		if len(w) < minFormableLen {
			continue
		}

		if CanFormFromLetters(w, pool) {
			count++
			if count >= matchCap {
				break
			}
		}
	}

	return count
}

func alphabetPrefix(n int) []string {
	return strings.Split(alphabet[:n], "")
}
