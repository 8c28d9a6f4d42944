// Package urlutils provides registrable-domain resolution, URL
// decomposition and link filtering for crawl pipelines.
package urlutils

import (
	"net"
	"net/url"
	"regexp"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/net/publicsuffix"
)

// DefaultCacheSize bounds the process-wide resolver memoization.
const DefaultCacheSize = 1024

var (
	// Fast-path recognizer: protocol, optional subdomain segment, then a
	// domain+extension, an IPv4 literal or a hex-colon IPv6-ish literal,
	// terminated by a slash or end of string.
	domainRe = regexp.MustCompile(`^(?:http|ftp)s?://` +
		`(?:[^/?#]{0,63}\.)?` +
		`([^/?#.]{4,63}\.[^/?#]{2,63}|` +
		`[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}|` +
		`[0-9a-f:]{16,})` +
		`(?:/|$)`)
	userinfoRe = regexp.MustCompile(`^.+?:.*?@`)
	// Drops a :port only when preceded by a non-digit, so hex-colon
	// literals survive untouched.
	portRe     = regexp.MustCompile(`([^0-9]):[0-9]+`)
	noExtRe    = regexp.MustCompile(`^[^.]+`)
	cleanFLDRe = regexp.MustCompile(`^www[0-9]*\.`)
)

// DomainInfo is the outcome of registrable-domain resolution: Apex is
// the second-level label without suffix ("example"), Registrable the
// full registrable domain ("example.co.uk"). Both lower-cased, with any
// leading www-style prefix stripped from Registrable.
type DomainInfo struct {
	Apex        string
	Registrable string
}

type tldKey struct {
	url  string
	fast bool
}

type tldValue struct {
	info DomainInfo
	ok   bool
}

// Resolver memoizes domain resolution in a bounded LRU cache. Safe for
// concurrent use; under a race a result may be recomputed redundantly
// but is always stored under its own key.
type Resolver struct {
	cache *lru.Cache[tldKey, tldValue]
}

// NewResolver returns a resolver with the given cache capacity.
// Non-positive sizes fall back to DefaultCacheSize.
func NewResolver(size int) *Resolver {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, _ := lru.New[tldKey, tldValue](size)
	return &Resolver{cache: cache}
}

// TLDInfo extracts domain info from a raw URL. With fast set, a regex
// recognizer is tried first; the public-suffix fallback is consulted
// whenever the regex does not apply. Invalid input yields (zero, false).
func (r *Resolver) TLDInfo(rawURL string, fast bool) (DomainInfo, bool) {
	if rawURL == "" {
		return DomainInfo{}, false
	}
	key := tldKey{url: rawURL, fast: fast}
	if v, hit := r.cache.Get(key); hit {
		return v.info, v.ok
	}
	info, ok := resolveTLD(rawURL, fast)
	r.cache.Add(key, tldValue{info: info, ok: ok})
	return info, ok
}

// ExtractDomain returns the registrable domain of a URL, unless the
// apex or the registrable domain is blacklisted. A nil blacklist is
// treated as empty.
func (r *Resolver) ExtractDomain(rawURL string, blacklist map[string]struct{}, fast bool) (string, bool) {
	info, ok := r.TLDInfo(rawURL, fast)
	if !ok {
		return "", false
	}
	if _, hit := blacklist[info.Apex]; hit {
		return "", false
	}
	if _, hit := blacklist[info.Registrable]; hit {
		return "", false
	}
	return info.Registrable, true
}

func resolveTLD(rawURL string, fast bool) (DomainInfo, bool) {
	if fast {
		if m := domainRe.FindStringSubmatch(rawURL); m != nil {
			full := userinfoRe.ReplaceAllString(m[1], "")
			full = strings.ToLower(portRe.ReplaceAllString(full, "$1"))
			if apex := noExtRe.FindString(full); apex != "" {
				return DomainInfo{Apex: apex, Registrable: full}, true
			}
		}
	}
	return suffixListTLD(rawURL)
}

// suffixListTLD delegates to the public suffix list. IP-literal hosts
// and unknown shapes resolve to an absent result, never an error.
func suffixListTLD(rawURL string) (DomainInfo, bool) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return DomainInfo{}, false
	}
	host := strings.ToLower(strings.TrimSuffix(parsed.Hostname(), "."))
	if host == "" || net.ParseIP(host) != nil {
		return DomainInfo{}, false
	}
	etld1, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return DomainInfo{}, false
	}
	suffix, _ := publicsuffix.PublicSuffix(host)
	apex := strings.TrimSuffix(etld1, "."+suffix)
	if apex == "" {
		return DomainInfo{}, false
	}
	return DomainInfo{Apex: apex, Registrable: cleanFLDRe.ReplaceAllString(etld1, "")}, true
}

var defaultResolver = NewResolver(DefaultCacheSize)

// TLDInfo resolves via the shared process-wide resolver.
func TLDInfo(rawURL string, fast bool) (DomainInfo, bool) {
	return defaultResolver.TLDInfo(rawURL, fast)
}

// ExtractDomain resolves via the shared process-wide resolver.
func ExtractDomain(rawURL string, blacklist map[string]struct{}, fast bool) (string, bool) {
	return defaultResolver.ExtractDomain(rawURL, blacklist, fast)
}
