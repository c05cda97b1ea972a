package reservation

import "context"

const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
)

// SubmissionRecorder counts submit attempts and the field errors they produced.
type SubmissionRecorder interface {
	RecordSubmission(ctx context.Context, outcome, category string)
	RecordFieldError(ctx context.Context, field, kind string)
}
