package newsml

import (
	"fmt"

	"NewswireNotifier/internal/domain"
)

const (
	// DefaultAlertPriority is the highest level that still pings the whole channel.
	DefaultAlertPriority = 3
	// AlertMarker is the chat mention placed in pretext of alerting attachments.
	AlertMarker = "<!channel>"
)

// Options is the explicit configuration consumed by the assembler and gate.
type Options struct {
	// MinPriority withholds bulletins whose level is numerically greater. Nil disables the gate.
	MinPriority *int
	// AlertPriority pings the channel for levels at or below it. Zero disables alerts.
	AlertPriority int
	// RequireMethode turns a missing NIMethodeName property into a failure.
	RequireMethode bool
}

// DefaultOptions returns options with the default alert threshold and no gate.
func DefaultOptions() Options {
	return Options{AlertPriority: DefaultAlertPriority}
}

// Assemble builds the notification payload, one attachment per article in order.
func Assemble(articles []domain.ParsedArticle, priority domain.PriorityInfo, meta domain.DocumentMetadata, dialect domain.Dialect, opts Options) domain.NotificationPayload {
	attachments := make([]domain.Attachment, 0, len(articles))
	for _, article := range articles {
		attachments = append(attachments, buildAttachment(article, priority, meta, opts))
	}

	return domain.NotificationPayload{
		Text:        "",
		Dialect:     dialect,
		Attachments: attachments,
	}
}

func buildAttachment(article domain.ParsedArticle, priority domain.PriorityInfo, meta domain.DocumentMetadata, opts Options) domain.Attachment {
	var pretext string
	if opts.AlertPriority > 0 && priority.Level <= opts.AlertPriority {
		pretext = AlertMarker
	}

	return domain.Attachment{
		Fallback:   fmt.Sprintf("%s [%d] -- %s", article.Headline, priority.Level, article.Excerpt),
		Title:      article.Headline,
		Color:      priority.Color,
		Pretext:    pretext,
		Text:       article.Text(),
		AuthorName: article.Byline,
		AuthorLink: article.AuthorLink,
		Fields: []domain.Field{
			{Title: "slugline", Value: article.Slugline, Short: true},
			{Title: "Methode Name", Value: meta.MethodeName, Short: true},
			{Title: "News Item ID", Value: article.NewsItemID, Short: true},
			{Title: "Priority", Value: PriorityLabel(priority), Short: true},
		},
	}
}

// Gate rejects bulletins whose level is lower in priority than opts.MinPriority.
func Gate(priority domain.PriorityInfo, opts Options) error {
	if opts.MinPriority == nil {
		return nil
	}
	if priority.Level > *opts.MinPriority {
		return fmt.Errorf("%w: level %d, minimum %d", domain.ErrBelowPriorityThreshold, priority.Level, *opts.MinPriority)
	}
	return nil
}
