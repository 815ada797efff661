package newsml

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"NewswireNotifier/internal/domain"
)

const (
	methodeSelector  = `property[formalname="NIMethodeName"]`
	legacyAuthorLink = "https://www.pressassociation.com/"
	modernAuthorLink = "http://about.reuters.com/"
	modernByline     = "Thomson Reuters"
	newsItemIDPrefix = "newsml_"
)

// rule reads one logical value from a node.
type rule func(*goquery.Selection) string

// schema is the extraction table of a single dialect.
type schema struct {
	articles   string
	priority   rule
	methode    rule
	headline   rule
	byline     rule
	slugline   rule
	newsItemID rule
	authorLink rule
	paragraphs func(*goquery.Selection) *goquery.Selection
}

var schemas = map[domain.Dialect]schema{
	domain.DialectLegacy: {
		articles:   "newsitem",
		priority:   attrOf("priority", "formalname"),
		methode:    attrOf(methodeSelector, "value"),
		headline:   textOf("headline"),
		byline:     textOf("byline"),
		slugline:   textOf("slugline"),
		newsItemID: textOf("newsitemid"),
		authorLink: constant(legacyAuthorLink),
		paragraphs: func(article *goquery.Selection) *goquery.Selection {
			return article.Find("body p")
		},
	},
	domain.DialectModern: {
		articles:   "newsitem",
		priority:   textOf("priority"),
		methode:    attrOf(methodeSelector, "value"),
		headline:   textOf("headline"),
		byline:     constant(modernByline),
		slugline:   textOf("slugline"),
		newsItemID: guidItemID("guid"),
		authorLink: constant(modernAuthorLink),
		paragraphs: func(article *goquery.Selection) *goquery.Selection {
			return article.Find("body").First().Children()
		},
	},
}

func textOf(selector string) rule {
	return func(s *goquery.Selection) string {
		return strings.TrimSpace(s.Find(selector).First().Text())
	}
}

func attrOf(selector, name string) rule {
	return func(s *goquery.Selection) string {
		return strings.TrimSpace(s.Find(selector).First().AttrOr(name, ""))
	}
}

func constant(value string) rule {
	return func(*goquery.Selection) string {
		return value
	}
}

// guidItemID derives the news item id from a colon-delimited guid such as
// "tag:reuters.com,2015:newsml_L5N11B2XY". The first segment after the
// scheme and authority that carries the newsml_ prefix wins; otherwise the
// third segment is used as-is.
func guidItemID(name string) rule {
	return func(s *goquery.Selection) string {
		return itemIDFromGUID(s.AttrOr(name, ""))
	}
}

func itemIDFromGUID(guid string) string {
	segments := strings.Split(strings.TrimSpace(guid), ":")
	if len(segments) < 3 {
		return ""
	}

	for _, segment := range segments[2:] {
		if strings.HasPrefix(segment, newsItemIDPrefix) {
			return strings.TrimPrefix(segment, newsItemIDPrefix)
		}
	}
	return segments[2]
}
