package newsml

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"

	"NewswireNotifier/internal/domain"
)

const (
	legacyRoot = "newsml"
	modernRoot = "newsmessage"
)

// Document is a parsed bulletin. Element and attribute names are folded to
// lower case so selectors match regardless of how the producer cased them.
type Document struct {
	tree     *goquery.Document
	root     *goquery.Selection
	rootName string
}

// RootName returns the lower-cased tag of the root element.
func (d *Document) RootName() string {
	return d.rootName
}

// Root returns the root element selection.
func (d *Document) Root() *goquery.Selection {
	return d.root
}

// Parse builds a selectable tree from raw XML. Malformed input and documents
// without a root element yield domain.ErrInvalidDocument.
func Parse(raw []byte) (*Document, error) {
	dec := xml.NewDecoder(bytes.NewReader(raw))
	dec.Entity = xml.HTMLEntity
	dec.CharsetReader = charset.NewReaderLabel

	top := &html.Node{Type: html.DocumentNode}
	cur := top
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidDocument, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			node := &html.Node{Type: html.ElementNode, Data: strings.ToLower(t.Name.Local)}
			for _, attr := range t.Attr {
				if attr.Name.Space == "xmlns" || attr.Name.Local == "xmlns" {
					continue
				}
				node.Attr = append(node.Attr, html.Attribute{
					Key: strings.ToLower(attr.Name.Local),
					Val: attr.Value,
				})
			}
			cur.AppendChild(node)
			cur = node
		case xml.EndElement:
			cur = cur.Parent
		case xml.CharData:
			if cur == top {
				continue
			}
			cur.AppendChild(&html.Node{Type: html.TextNode, Data: string(t)})
		}
	}

	tree := goquery.NewDocumentFromNode(top)
	root := tree.Children().First()
	if root.Length() == 0 {
		return nil, fmt.Errorf("%w: document has no root element", domain.ErrInvalidDocument)
	}

	return &Document{
		tree:     tree,
		root:     root,
		rootName: goquery.NodeName(root),
	}, nil
}

// Detect maps the root tag to a dialect.
func Detect(doc *Document) (domain.Dialect, error) {
	if doc == nil {
		return "", fmt.Errorf("%w: empty document", domain.ErrInvalidDocument)
	}

	switch doc.rootName {
	case modernRoot:
		return domain.DialectModern, nil
	case legacyRoot:
		return domain.DialectLegacy, nil
	default:
		return "", fmt.Errorf("%w: unexpected root <%s>", domain.ErrInvalidDocument, doc.rootName)
	}
}
