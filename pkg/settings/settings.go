// Package settings holds the static configuration consumed by URL
// filtering: domain blacklists and query parameter allow-lists.
package settings

// Blacklist contains well-known high-traffic and infrastructure hosts
// (social networks, cloud storage, URL shorteners, adult platforms)
// whose URLs are usually noise in a crawl frontier. Both apex labels
// and full registrable domains are checked against it.
var Blacklist = set(
	"360", "akamai", "aliexpress", "amzn", "amazon", "amazonaws", "baidu",
	"bit", "bongacams", "chaturbate", "cloudfront", "daftsex", "delicious",
	"digg", "ebay", "ebay-kleinanzeigen", "facebook", "feedburner",
	"flickr", "gettyimages", "gmx", "google", "gravatar", "http", "imgur",
	"immobilienscout24", "instagr", "instagram", "jd", "last", "linkedin",
	"live", "livejasmin", "localhost", "mail", "naver", "netflix",
	"office", "ok", "onlyfans", "otto", "paypal", "pinterest", "pornhub",
	"postbank", "qq", "reddit", "redtube", "sina", "sohu", "soundcloud",
	"spankbang", "taobao", "telegram", "tiktok", "tmall", "tnaflix",
	"twitch", "twitter", "twitpic", "txxx", "vk", "vkontakte", "vimeo",
	"web", "weibo", "whatsapp", "xhamster", "xnxx", "xvideos", "yahoo",
	"yandex", "youjizz", "youporn", "youtube", "youtu", "zoom",
)

// AllowedParams are query parameter names that carry content identity
// and survive query cleaning.
var AllowedParams = set(
	"aid", "article_id", "artnr", "id", "itemid", "objectid", "p", "page",
	"pagenum", "page_id", "pid", "post", "postid", "product_id",
)

// ControlParams are query parameter names that select a page language.
var ControlParams = set("lang", "language")

// Language parameter values recognized as German and English targets.
var (
	TargetLangDE = set("de", "deutsch", "ger", "german")
	TargetLangEN = set("en", "english", "eng")
)

func set(items ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(items))
	for _, it := range items {
		m[it] = struct{}{}
	}
	return m
}
