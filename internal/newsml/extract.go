package newsml

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"NewswireNotifier/internal/domain"
)

const bylinePrefix = "By "

// ArticleNode is a view of one news item inside a Document.
type ArticleNode struct {
	sel *goquery.Selection
}

// Extracted is what the document extractor finds before any article is parsed.
type Extracted struct {
	Articles     []ArticleNode
	Metadata     domain.DocumentMetadata
	MethodeFound bool
}

// ExtractDocument locates the news items and the bulletin-wide metadata.
// A bulletin without news items yields domain.ErrNoArticlesFound; when
// requireMethode is set, a missing NIMethodeName property yields
// domain.ErrMissingMethodeProperty.
func ExtractDocument(doc *Document, dialect domain.Dialect, requireMethode bool) (Extracted, error) {
	sc, ok := schemas[dialect]
	if !ok {
		return Extracted{}, fmt.Errorf("%w: unknown dialect %q", domain.ErrInvalidDocument, dialect)
	}

	var out Extracted
	doc.root.Find(sc.articles).Each(func(_ int, s *goquery.Selection) {
		out.Articles = append(out.Articles, ArticleNode{sel: s})
	})
	if len(out.Articles) == 0 {
		return Extracted{}, domain.ErrNoArticlesFound
	}

	out.MethodeFound = doc.root.Find(methodeSelector).Length() > 0
	if !out.MethodeFound && requireMethode {
		return Extracted{}, domain.ErrMissingMethodeProperty
	}

	out.Metadata = domain.DocumentMetadata{
		MethodeName: sc.methode(doc.root),
		RawPriority: sc.priority(doc.root),
	}
	return out, nil
}

// ExtractArticle reads one news item. The boolean is false when the item has
// no body text, in which case the item must be skipped.
func ExtractArticle(node ArticleNode, dialect domain.Dialect) (domain.ParsedArticle, bool) {
	sc, ok := schemas[dialect]
	if !ok || node.sel == nil {
		return domain.ParsedArticle{}, false
	}

	var paragraphs []string
	sc.paragraphs(node.sel).Each(func(_ int, p *goquery.Selection) {
		if text := strings.TrimSpace(p.Text()); text != "" {
			paragraphs = append(paragraphs, text)
		}
	})
	if len(paragraphs) == 0 {
		return domain.ParsedArticle{}, false
	}

	return domain.ParsedArticle{
		Headline:       sc.headline(node.sel),
		BodyParagraphs: paragraphs,
		Excerpt:        paragraphs[0],
		Byline:         normalizeByline(sc.byline(node.sel)),
		AuthorLink:     sc.authorLink(node.sel),
		Slugline:       sc.slugline(node.sel),
		NewsItemID:     sc.newsItemID(node.sel),
	}, true
}

func normalizeByline(byline string) string {
	return strings.TrimPrefix(strings.TrimSpace(byline), bylinePrefix)
}
