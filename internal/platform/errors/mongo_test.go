package errors

import (
	"context"
	stderrs "errors"
	"net/http"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestFromMongoClassification(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"nil passes through", nil, ErrorCodeUnknown},
		{"no documents is not found", mongo.ErrNoDocuments, ErrorCodeNotFound},
		{"deadline is unavailable", context.DeadlineExceeded, ErrorCodeUnavailable},
		{"anything else is db", stderrs.New("socket was unexpectedly closed"), ErrorCodeDB},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := FromMongo(c.err, "query failed")
			if c.err == nil {
				if got != nil {
					t.Fatalf("FromMongo(nil) = %v, want nil", got)
				}
				return
			}
			if CodeOf(got) != c.want {
				t.Fatalf("FromMongo code = %v, want %v", CodeOf(got), c.want)
			}
			if !stderrs.Is(got, c.err) {
				t.Fatalf("FromMongo lost the cause chain")
			}
		})
	}
}

func TestFromMongoHTTPStatus(t *testing.T) {
	if got := HTTPStatus(FromMongo(mongo.ErrNoDocuments, "missing contract")); got != http.StatusNotFound {
		t.Fatalf("not found status = %d", got)
	}
	if got := HTTPStatus(FromMongo(stderrs.New("x"), "store failure")); got != http.StatusInternalServerError {
		t.Fatalf("db status = %d", got)
	}
}
