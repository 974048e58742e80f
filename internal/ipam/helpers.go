package ipam

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/pkg/errors"

	"github.com/isabella232/sdc-napi/internal/ipam/mw"
	"github.com/isabella232/sdc-napi/internal/storage"
	"github.com/isabella232/sdc-napi/pkg/types"
)

func errorReply(err error) mw.Response {
	var apiErr *types.Error
	if errors.As(err, &apiErr) {
		return mw.ApiError(apiErr)
	}
	if errors.Is(err, storage.ErrNotFound) {
		return mw.NotFound(err)
	}
	if errors.Is(err, storage.ErrEtagMismatch) {
		return mw.PreconditionFailed(err)
	}
	return mw.Error(err)
}

// createResponse returns the number of pages and total count in the
// response headers when the request asked for them.
func createResponse(count uint, limit types.Limit) mw.Response {
	resp := mw.Ok()
	if !limit.RetCount {
		return resp
	}
	size := limit.Size
	if size == 0 {
		size = types.DefaultLimit().Size
	}
	pages := (uint64(count) + size - 1) / size
	return resp.
		WithHeader("Count", fmt.Sprint(count)).
		WithHeader("Pages", fmt.Sprint(pages))
}

// withEtag attaches the entity version header to a response.
func withEtag(resp mw.Response, etag string) mw.Response {
	if etag == "" {
		return resp
	}
	return resp.WithHeader("Etag", etag)
}

// ifMatch extracts the expected etag of a conditional request. An absent
// header means unconditional.
func ifMatch(r *http.Request) string {
	return strings.Trim(r.Header.Get("If-Match"), `"`)
}

// actor returns the identity the gateway stamped on the request, empty
// when the request came in without one.
func actor(r *http.Request) string {
	return r.Header.Get("X-Actor-Uuid")
}

type actorCtxKey struct{}

// WithActor carries the request identity into the managers for audit
// logging.
func WithActor(ctx context.Context, actor string) context.Context {
	if actor == "" {
		return ctx
	}
	return context.WithValue(ctx, actorCtxKey{}, actor)
}

func actorFromCtx(ctx context.Context) string {
	a, _ := ctx.Value(actorCtxKey{}).(string)
	return a
}

// reqCtx is the context handed to the managers for one request.
func reqCtx(r *http.Request) context.Context {
	return WithActor(r.Context(), actor(r))
}

// storeFailure wraps an unexpected storage error for the wire.
func storeFailure(err error, msg string) error {
	return types.NewStoreUnavailable(errors.Wrap(err, msg))
}

func decodeBody(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.Wrap(err, "failed to decode request body")
	}
	return nil
}
