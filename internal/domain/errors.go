package domain

import "errors"

var (
	// ErrInvalidDocument marks input that is not well-formed XML or has an unknown root.
	ErrInvalidDocument = errors.New("not valid NewsML")
	// ErrNoArticlesFound marks a bulletin without any usable news item.
	ErrNoArticlesFound = errors.New("no articles found")
	// ErrMissingMethodeProperty marks a bulletin lacking the NIMethodeName property when it is required.
	ErrMissingMethodeProperty = errors.New("missing NIMethodeName property")
	// ErrBelowPriorityThreshold marks a valid payload withheld because its priority is too low.
	ErrBelowPriorityThreshold = errors.New("below priority threshold")
	// ErrDeliveryFailed marks a payload the notifier could not hand over.
	ErrDeliveryFailed = errors.New("delivery failed")
)

// Outcome labels how a single bulletin invocation ended.
type Outcome string

const (
	OutcomeDelivered       Outcome = "delivered"
	OutcomeWithheld        Outcome = "withheld"
	OutcomeInvalidDocument Outcome = "invalid_document"
	OutcomeNoArticles      Outcome = "no_articles"
	OutcomeMissingMethode  Outcome = "missing_methode"
	OutcomeBelowThreshold  Outcome = "below_threshold"
	OutcomeDeliveryFailed  Outcome = "delivery_failed"
)

// OutcomeOf classifies a pipeline error. A nil error is OutcomeWithheld;
// callers that actually delivered report OutcomeDelivered themselves.
func OutcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeWithheld
	case errors.Is(err, ErrBelowPriorityThreshold):
		return OutcomeBelowThreshold
	case errors.Is(err, ErrNoArticlesFound):
		return OutcomeNoArticles
	case errors.Is(err, ErrMissingMethodeProperty):
		return OutcomeMissingMethode
	case errors.Is(err, ErrDeliveryFailed):
		return OutcomeDeliveryFailed
	default:
		return OutcomeInvalidDocument
	}
}
