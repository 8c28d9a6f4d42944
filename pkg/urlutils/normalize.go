package urlutils

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// ErrIncompleteURL reports a URL whose host or path is empty after
// normalization. Callers are expected to skip the URL rather than retry.
var ErrIncompleteURL = errors.New("incomplete URL")

var innerSlashRe = regexp.MustCompile(`(.+/)+`)

// parseAny accepts a raw string or an already-parsed *url.URL. Other
// types are a programming error and panic. Unparsable strings degrade
// to an empty URL so that callers surface ErrIncompleteURL instead.
func parseAny(u any) *url.URL {
	switch v := u.(type) {
	case string:
		parsed, err := url.Parse(v)
		if err != nil {
			return &url.URL{}
		}
		return parsed
	case *url.URL:
		return v
	default:
		panic(fmt.Sprintf("urlutils: unsupported input type %T", u))
	}
}

func netloc(parsed *url.URL) string {
	if parsed.User != nil {
		return parsed.User.String() + "@" + parsed.Host
	}
	return parsed.Host
}

// BaseURL strips a URL down to scheme://host. The scheme prefix is
// empty when the input carries none. Accepts strings and *url.URL.
func BaseURL(u any) string {
	parsed := parseAny(u)
	if parsed.Scheme != "" {
		return parsed.Scheme + "://" + netloc(parsed)
	}
	return netloc(parsed)
}

// HostAndPath decomposes a URL into (scheme://host, path+query+fragment).
// An empty path becomes "/". Accepts strings and *url.URL.
func HostAndPath(u any) (string, string, error) {
	parsed := parseAny(u)
	host := BaseURL(parsed)
	urlpath := parsed.EscapedPath()
	if parsed.RawQuery != "" {
		urlpath += "?" + parsed.RawQuery
	}
	if parsed.Fragment != "" {
		urlpath += "#" + parsed.EscapedFragment()
	}
	// correction for root/homepage
	if urlpath == "" {
		urlpath = "/"
	}
	if host == "" || urlpath == "" {
		return "", "", fmt.Errorf("%w: %v", ErrIncompleteURL, u)
	}
	return host, urlpath, nil
}

// HostInfo returns the registrable domain (fast resolution) and the
// base URL of a raw URL string.
func HostInfo(rawURL string) (domain, base string, ok bool) {
	domain, ok = ExtractDomain(rawURL, nil, true)
	return domain, BaseURL(rawURL), ok
}

// FixRelativeURLs prepends protocol and host information to relative
// links. The dot-relative branch collapses leading path segments
// instead of resolving ".." properly; downstream consumers rely on
// that exact shape. Never fails.
func FixRelativeURLs(baseURL, link string) string {
	if strings.HasPrefix(link, "//") {
		if strings.HasPrefix(baseURL, "https") {
			return "https:" + link
		}
		return "http:" + link
	}
	if strings.HasPrefix(link, "/") {
		// imperfect path handling
		return baseURL + link
	}
	if strings.HasPrefix(link, ".") {
		return baseURL + "/" + innerSlashRe.ReplaceAllString(link, "")
	}
	if !strings.HasPrefix(link, "http") && !strings.HasPrefix(link, "{") {
		return baseURL + "/" + link
	}
	return link
}
