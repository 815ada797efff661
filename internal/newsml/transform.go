package newsml

import (
	"fmt"

	"NewswireNotifier/internal/domain"
)

// Result is everything a single transform produced.
type Result struct {
	Dialect  domain.Dialect
	Priority domain.PriorityInfo
	Metadata domain.DocumentMetadata
	Articles []domain.ParsedArticle
	Skipped  int
	Payload  domain.NotificationPayload
}

// Transform turns one raw bulletin into a notification payload.
//
// On domain.ErrBelowPriorityThreshold the returned Result is complete and
// valid; the error only signals that it must not be delivered. Every other
// error leaves the Result empty.
func Transform(raw []byte, opts Options) (Result, error) {
	doc, err := Parse(raw)
	if err != nil {
		return Result{}, err
	}

	dialect, err := Detect(doc)
	if err != nil {
		return Result{}, err
	}

	extracted, err := ExtractDocument(doc, dialect, opts.RequireMethode)
	if err != nil {
		return Result{}, fmt.Errorf("%s bulletin: %w", dialect, err)
	}

	res := Result{
		Dialect:  dialect,
		Priority: ClassifyPriority(extracted.Metadata.RawPriority),
		Metadata: extracted.Metadata,
	}

	for _, node := range extracted.Articles {
		article, ok := ExtractArticle(node, dialect)
		if !ok {
			res.Skipped++
			continue
		}
		res.Articles = append(res.Articles, article)
	}
	if len(res.Articles) == 0 {
		return Result{}, fmt.Errorf("%s bulletin: %w: all %d items have an empty body", dialect, domain.ErrNoArticlesFound, res.Skipped)
	}

	res.Payload = Assemble(res.Articles, res.Priority, res.Metadata, dialect, opts)

	return res, Gate(res.Priority, opts)
}
