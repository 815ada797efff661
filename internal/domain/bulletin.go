package domain

import "strings"

// Dialect identifies which NewsML generation a bulletin is written in.
type Dialect string

const (
	// DialectLegacy is NewsML 1.x, rooted at <NewsML> (Press Association style).
	DialectLegacy Dialect = "legacy"
	// DialectModern is NewsML-G2, rooted at <newsMessage> (Reuters style).
	DialectModern Dialect = "modern"
)

// ParsedArticle is the normalized view of a single news item.
type ParsedArticle struct {
	Headline       string
	BodyParagraphs []string
	Excerpt        string
	Byline         string
	AuthorLink     string
	Slugline       string
	NewsItemID     string
}

// Text joins the body paragraphs the way they are rendered in a notification.
func (a ParsedArticle) Text() string {
	return strings.Join(a.BodyParagraphs, "\n")
}

// PriorityInfo is the classified editorial priority of a bulletin.
type PriorityInfo struct {
	Level  int
	Label  string
	Color  string
	Urgent bool
}

// DocumentMetadata carries values scoped to the whole bulletin.
type DocumentMetadata struct {
	MethodeName string
	RawPriority string
}

// Field is one short key/value row rendered under an attachment.
type Field struct {
	Title string `json:"title"`
	Value string `json:"value,omitempty"`
	Short bool   `json:"short"`
}

// Attachment is a rich-content block of a chat webhook message.
type Attachment struct {
	Fallback   string  `json:"fallback"`
	Title      string  `json:"title"`
	Color      string  `json:"color"`
	Pretext    string  `json:"pretext,omitempty"`
	Text       string  `json:"text"`
	AuthorName string  `json:"author_name"`
	AuthorLink string  `json:"author_link"`
	Fields     []Field `json:"fields"`
}

// NotificationPayload is the body posted to the incoming webhook.
type NotificationPayload struct {
	Text        string       `json:"text"`
	Dialect     Dialect      `json:"type"`
	Attachments []Attachment `json:"attachments"`
}
