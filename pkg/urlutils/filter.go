package urlutils

import (
	"regexp"
	"slices"
	"strings"
)

var feedWhitelistRe = regexp.MustCompile(`(?i)(feedburner|feedproxy)`)

// FilterURLs returns the deduplicated, sorted links matching the given
// substring pattern. An empty pattern keeps everything. When the
// pattern matches nothing, feed-proxy links are kept as a fallback.
func FilterURLs(links []string, pattern string) []string {
	selected := links
	if pattern != "" {
		selected = make([]string, 0, len(links))
		for _, l := range links {
			if strings.Contains(l, pattern) {
				selected = append(selected, l)
			}
		}
		if len(selected) == 0 {
			for _, l := range links {
				if feedWhitelistRe.MatchString(l) {
					selected = append(selected, l)
				}
			}
		}
	}
	out := slices.Clone(selected)
	slices.Sort(out)
	return slices.Compact(out)
}

// IsExternal reports whether a link leads to another host than the
// reference URL. With ignoreSuffix, apexes are compared instead of
// full registrable domains, so sub.example.com and example.co.uk
// collapse to the same "example" owner.
func IsExternal(rawURL, reference string, ignoreSuffix bool) bool {
	refInfo, _ := TLDInfo(reference, true)
	urlInfo, _ := TLDInfo(rawURL, true)
	if ignoreSuffix {
		return urlInfo.Apex != refInfo.Apex
	}
	return urlInfo.Registrable != refInfo.Registrable
}

// IsKnownLink compares the link and its benign variants (trailing
// slash added/removed, http/https toggled) to the existing URL base.
func IsKnownLink(link string, knownLinks map[string]struct{}) bool {
	if _, ok := knownLinks[link]; ok {
		return true
	}

	trimmed := strings.TrimRight(link, "/")
	for _, test := range []string{trimmed, trimmed + "/"} {
		if _, ok := knownLinks[test]; ok {
			return true
		}
	}

	if strings.HasPrefix(link, "http") {
		var toggled string
		if strings.HasPrefix(link, "https") {
			toggled = link[:4] + link[5:]
		} else {
			toggled = link[:4] + "s" + link[4:]
		}
		toggledTrimmed := strings.TrimRight(toggled, "/")
		for _, test := range []string{toggled, toggledTrimmed, toggledTrimmed + "/"} {
			if _, ok := knownLinks[test]; ok {
				return true
			}
		}
	}

	return false
}
