// Package urlstore keeps URLs deduplicated and grouped by registrable
// domain. It backs the sampler and exposes iteration over domains plus
// retrieval of per-domain path records. The store is single-writer;
// concurrency discipline belongs to its operator.
package urlstore

import (
	"net"
	"net/url"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/temoto/robotstxt"

	"github.com/feltcat/courlan/pkg/urlutils"
)

const maxURLLength = 2048

// Options configures a store. Strict drops malformed URLs on
// ingestion; Compressed keeps per-domain path lists as zstd blobs,
// which pays off above roughly a million URLs.
type Options struct {
	Strict     bool
	Compressed bool
}

type domainEntry struct {
	paths []string
	blob  []byte
	seen  map[string]struct{}
}

// Store groups URL paths by registrable domain in first-sight order.
type Store struct {
	opts    Options
	order   []string
	entries map[string]*domainEntry
	rules   map[string]*robotstxt.RobotsData
}

func New(opts Options) *Store {
	return &Store{
		opts:    opts,
		entries: make(map[string]*domainEntry),
		rules:   make(map[string]*robotstxt.RobotsData),
	}
}

// AddURLs ingests a collection of URL strings, usually pre-sorted by
// the caller. URLs without a resolvable domain or a usable path are
// skipped silently; strict mode additionally drops URLs failing
// ValidURL. Paths are deduplicated per domain.
func (s *Store) AddURLs(urls []string) {
	pending := make(map[string][]string)
	for _, raw := range urls {
		if s.opts.Strict && !ValidURL(raw) {
			continue
		}
		domain, ok := urlutils.ExtractDomain(raw, nil, true)
		if !ok {
			continue
		}
		_, urlpath, err := urlutils.HostAndPath(raw)
		if err != nil {
			continue
		}
		entry := s.entry(domain)
		if _, dup := entry.seen[urlpath]; dup {
			continue
		}
		entry.seen[urlpath] = struct{}{}
		if s.opts.Compressed {
			pending[domain] = append(pending[domain], urlpath)
		} else {
			entry.paths = append(entry.paths, urlpath)
		}
	}
	for domain, paths := range pending {
		entry := s.entries[domain]
		entry.blob = compressPaths(append(s.decode(entry), paths...))
	}
}

// Domains lists the distinct registrable domains in first-sight order.
func (s *Store) Domains() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Paths returns the path records stored for a domain, in ingestion
// order. Unknown domains yield nil.
func (s *Store) Paths(domain string) []string {
	entry := s.entries[domain]
	if entry == nil {
		return nil
	}
	if s.opts.Compressed {
		return s.decode(entry)
	}
	out := make([]string, len(entry.paths))
	copy(out, entry.paths)
	return out
}

// Known reports whether the exact URL (down to its path) has been
// ingested before.
func (s *Store) Known(rawURL string) bool {
	domain, ok := urlutils.ExtractDomain(rawURL, nil, true)
	if !ok {
		return false
	}
	entry := s.entries[domain]
	if entry == nil {
		return false
	}
	_, urlpath, err := urlutils.HostAndPath(rawURL)
	if err != nil {
		return false
	}
	_, ok = entry.seen[urlpath]
	return ok
}

func (s *Store) entry(domain string) *domainEntry {
	if e, ok := s.entries[domain]; ok {
		return e
	}
	e := &domainEntry{seen: make(map[string]struct{})}
	s.entries[domain] = e
	s.order = append(s.order, domain)
	return e
}

// ValidURL applies the strict ingestion rules: http(s) scheme, a
// dotted or IP-literal host, and a sane overall length.
func ValidURL(raw string) bool {
	if raw == "" || len(raw) > maxURLLength {
		return false
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return false
	}
	host := parsed.Hostname()
	if host == "" {
		return false
	}
	return strings.Contains(host, ".") || net.ParseIP(host) != nil
}

var (
	zstdEncoder, _ = zstd.NewWriter(nil)
	zstdDecoder, _ = zstd.NewReader(nil)
)

func compressPaths(paths []string) []byte {
	return zstdEncoder.EncodeAll([]byte(strings.Join(paths, "\n")), nil)
}

func (s *Store) decode(entry *domainEntry) []string {
	if len(entry.blob) == 0 {
		return nil
	}
	raw, err := zstdDecoder.DecodeAll(entry.blob, nil)
	if err != nil {
		return nil
	}
	return strings.Split(string(raw), "\n")
}
