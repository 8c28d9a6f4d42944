package urlutils

import (
	"strings"

	"golang.org/x/net/html"
)

// ExtractLinks collects the href targets of a page, repairs relative
// links against the page URL and keeps external or internal ones
// depending on the flag. The result is deduplicated and sorted.
func ExtractLinks(page, pageURL string, external bool) []string {
	base := BaseURL(pageURL)
	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		return nil
	}

	var links []string
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode && strings.EqualFold(node.Data, "a") {
			for _, attr := range node.Attr {
				if strings.EqualFold(attr.Key, "href") {
					raw := strings.TrimSpace(attr.Val)
					if raw != "" {
						links = append(links, FixRelativeURLs(base, raw))
					}
					break
				}
			}
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	kept := links[:0]
	for _, l := range links {
		if IsExternal(l, pageURL, true) == external {
			kept = append(kept, l)
		}
	}
	return FilterURLs(kept, "")
}
