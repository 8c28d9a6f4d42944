package urlstore

import (
	"net/url"

	"github.com/temoto/robotstxt"

	"github.com/feltcat/courlan/pkg/urlutils"
)

// StoreRules parses a robots.txt body and keeps its rules for the
// given registrable domain. Bodies are caller-supplied; the store
// never fetches anything.
func (s *Store) StoreRules(domain string, robotsTxt []byte) error {
	rules, err := robotstxt.FromBytes(robotsTxt)
	if err != nil {
		return err
	}
	s.rules[domain] = rules
	return nil
}

// Allowed checks a URL against the stored rules for its domain.
// Missing or unresolvable rules fail open.
func (s *Store) Allowed(agent, rawURL string) bool {
	domain, ok := urlutils.ExtractDomain(rawURL, nil, true)
	if !ok {
		return true
	}
	rules := s.rules[domain]
	if rules == nil {
		return true
	}
	grp := rules.FindGroup(agent)
	if grp == nil {
		grp = rules.FindGroup("*")
	}
	if grp == nil {
		return true
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return true
	}
	urlpath := parsed.Path
	if urlpath == "" {
		urlpath = "/"
	}
	return grp.Test(urlpath)
}
