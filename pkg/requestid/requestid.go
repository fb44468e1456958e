// Package requestid carries the id correlating an api request with its log lines,
// store transactions and the switchctl call that issued it.
package requestid

import (
	"context"
	"net/http"
	"regexp"

	"github.com/google/uuid"
)

type contextKey struct{}

// Header is the http header carrying the request id in both directions.
const Header = "X-Request-Id"

// ids supplied by callers end up in log lines; anything else is replaced
var validID = regexp.MustCompile(`^[A-Za-z0-9._-]{1,64}$`)

func Generate() string {
	return uuid.New().String()
}

func ToContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the request id of ctx or "".
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}

func FromRequest(r *http.Request) string {
	return FromContext(r.Context())
}

// FromHeader returns the id sent by the caller, or "" when it is missing or malformed.
func FromHeader(h http.Header) string {
	if id := h.Get(Header); validID.MatchString(id) {
		return id
	}
	return ""
}
