package errors

import (
	"context"
	stderrs "errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// Mongo error classification helpers. Repos call FromMongo so service and
// transport layers only ever see project error codes.

// IsNoDocuments reports whether err is the driver's no-result sentinel
func IsNoDocuments(err error) bool { return stderrs.Is(err, mongo.ErrNoDocuments) }

// FromMongo converts a mongo driver error into a project *Error
// msg is the context used for the wrapping message
func FromMongo(err error, msg string) error {
	if err == nil {
		return nil
	}
	switch {
	case IsNoDocuments(err):
		return Wrap(err, ErrorCodeNotFound, msg)
	case mongo.IsDuplicateKeyError(err):
		return Wrap(err, ErrorCodeDuplicateKey, msg)
	case mongo.IsTimeout(err),
		mongo.IsNetworkError(err),
		stderrs.Is(err, context.DeadlineExceeded):
		return Wrap(err, ErrorCodeUnavailable, msg)
	default:
		return Wrap(err, ErrorCodeDB, msg)
	}
}
