// Package sampling draws a domain-balanced subset from a collection of
// URLs: every surviving domain contributes at most a fixed number of
// randomly chosen paths.
package sampling

import (
	"log/slog"
	"math/rand"
	"slices"

	"github.com/feltcat/courlan/pkg/urlstore"
)

// Store-backed grouping above this input size switches to compressed
// path storage.
const compressThreshold = 1_000_000

// Constraint governs one sampling pass. A zero ExcludeMin or
// ExcludeMax disables the corresponding bound.
type Constraint struct {
	SampleSize int
	ExcludeMin int
	ExcludeMax int
	Strict     bool
}

// Store is the consumed grouping backend: ingestion of a sorted URL
// collection, iteration over distinct domains, and retrieval of the
// path records belonging to a domain.
type Store interface {
	AddURLs(urls []string)
	Domains() []string
	Paths(domain string) []string
}

// Sampler holds the injectable collaborators of a sampling pass. The
// zero value uses the global random source, slog.Default and a fresh
// in-memory store per pass.
type Sampler struct {
	Rand  *rand.Rand
	Log   *slog.Logger
	Store Store
}

// SampleURLs samples a list of URLs by domain name with default
// collaborators. See Sampler.Sample.
func SampleURLs(urls []string, c Constraint) []string {
	return (&Sampler{}).Sample(urls, c)
}

// Sample groups the input by registrable domain and subsamples each
// domain's paths to at most c.SampleSize. Domains whose path count
// falls outside the configured bounds are discarded entirely, as are
// domains holding nothing but their homepage. Output follows the
// store's domain order; sampled paths are sorted within each domain.
func (s *Sampler) Sample(urls []string, c Constraint) []string {
	logger := s.Log
	if logger == nil {
		logger = slog.Default()
	}
	store := s.Store
	if store == nil {
		store = urlstore.New(urlstore.Options{
			Strict:     c.Strict,
			Compressed: len(urls) > compressThreshold,
		})
	}

	sorted := slices.Clone(urls)
	slices.Sort(sorted)
	store.AddURLs(sorted)

	var output []string
	for _, domain := range store.Domains() {
		paths := sampleablePaths(store.Paths(domain))
		total := len(paths)
		if total == 0 ||
			(c.ExcludeMin > 0 && total < c.ExcludeMin) ||
			(c.ExcludeMax > 0 && total > c.ExcludeMax) {
			logger.Warn("discarded (size)", "domain", domain, "urls", total)
			continue
		}
		if total > c.SampleSize {
			paths = s.pick(paths, c.SampleSize)
			slices.Sort(paths)
		}
		for _, p := range paths {
			output = append(output, domain+p)
		}
		logger.Debug("sampled", "domain", domain,
			"urls", len(paths), "proportion", float64(len(paths))/float64(total))
	}
	return output
}

// sampleablePaths drops empty entries and the bare homepage.
func sampleablePaths(paths []string) []string {
	kept := make([]string, 0, len(paths))
	for _, p := range paths {
		if p == "" || p == "/" {
			continue
		}
		kept = append(kept, p)
	}
	return kept
}

// pick draws k distinct paths uniformly without replacement via a
// partial Fisher-Yates shuffle.
func (s *Sampler) pick(paths []string, k int) []string {
	if k <= 0 {
		return nil
	}
	intn := rand.Intn
	if s.Rand != nil {
		intn = s.Rand.Intn
	}
	pool := slices.Clone(paths)
	for i := 0; i < k; i++ {
		j := i + intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}
