package newsml

import (
	"fmt"
	"strings"
)

func legacyBulletin(priority, methode string, items ...string) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n<NewsML Version=\"1.2\">\n")
	b.WriteString("  <NewsEnvelope>\n")
	if priority != "" {
		fmt.Fprintf(&b, "    <Priority FormalName=%q/>\n", priority)
	}
	b.WriteString("  </NewsEnvelope>\n")
	if methode != "" {
		fmt.Fprintf(&b, "  <Metadata><Property FormalName=\"NIMethodeName\" Value=%q/></Metadata>\n", methode)
	}
	for _, item := range items {
		b.WriteString(item)
	}
	b.WriteString("</NewsML>\n")
	return b.String()
}

func legacyItem(headline, byline, slugline, id string, paragraphs ...string) string {
	var body strings.Builder
	for _, p := range paragraphs {
		fmt.Fprintf(&body, "<p>%s</p>", p)
	}
	return fmt.Sprintf(`  <NewsItem>
    <Identification><NewsIdentifier><NewsItemId>%s</NewsItemId></NewsIdentifier></Identification>
    <NewsComponent>
      <NewsLines>
        <HeadLine>%s</HeadLine>
        <ByLine>%s</ByLine>
        <SlugLine>%s</SlugLine>
      </NewsLines>
      <ContentItem><DataContent><nitf><body><body.content>%s</body.content></body></nitf></DataContent></ContentItem>
    </NewsComponent>
  </NewsItem>
`, id, headline, byline, slugline, body.String())
}

func modernBulletin(priority, methode string, items ...string) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<newsMessage xmlns="http://iptc.org/std/nar/2006-10-01/">` + "\n")
	b.WriteString("  <header>\n")
	if priority != "" {
		fmt.Fprintf(&b, "    <priority>%s</priority>\n", priority)
	}
	if methode != "" {
		fmt.Fprintf(&b, "    <Property FormalName=\"NIMethodeName\" Value=%q/>\n", methode)
	}
	b.WriteString("  </header>\n  <itemSet>\n")
	for _, item := range items {
		b.WriteString(item)
	}
	b.WriteString("  </itemSet>\n</newsMessage>\n")
	return b.String()
}

func modernItem(guid, headline, slugline string, paragraphs ...string) string {
	var body strings.Builder
	for _, p := range paragraphs {
		fmt.Fprintf(&body, "<p>%s</p>", p)
	}
	return fmt.Sprintf(`    <newsItem guid=%q version="1">
      <contentMeta>
        <headline>%s</headline>
        <slugline>%s</slugline>
      </contentMeta>
      <contentSet><inlineXML contenttype="application/xhtml+html"><html><head/><body>%s</body></html></inlineXML></contentSet>
    </newsItem>
`, guid, headline, slugline, body.String())
}

func mustParse(raw string) *Document {
	doc, err := Parse([]byte(raw))
	if err != nil {
		panic(err)
	}
	return doc
}

func firstArticle(raw string) ArticleNode {
	doc := mustParse(raw)
	return ArticleNode{sel: doc.Root().Find("newsitem").First()}
}
