package analytics

import (
	"context"

	"dining-companion/internal/model"
)

// Result is the outcome of a fetch. Exactly one branch applies, named by Kind:
// KindOK carries Items and Count, every other kind carries Err.
// A KindCanceled result belongs to a caller that already went away and
// must be discarded.
type Result[T any] struct {
	Kind  Kind
	Items []T
	Count int
	Err   error
}

// OK reports whether the fetch succeeded.
func (r Result[T]) OK() bool {
	return r.Kind == KindOK
}

// Empty reports a successful fetch that found nothing.
func (r Result[T]) Empty() bool {
	return r.Kind == KindOK && len(r.Items) == 0
}

// Message returns the user-facing text for a non-OK result.
func (r Result[T]) Message() string {
	return Message(r.Kind, r.Err)
}

// RecommendationsResult folds the return values of GetRecommendations into a Result.
func RecommendationsResult(ctx context.Context, resp *model.RecommendationsResponse, err error) Result[model.Recommendation] {
	if err != nil || resp == nil {
		return failed[model.Recommendation](ctx, err)
	}
	return newResult(ctx, resp.Success, resp.Recommendations, resp.Count)
}

// DislikesResult folds the return values of GetDislikes into a Result.
func DislikesResult(ctx context.Context, resp *model.DislikesResponse, err error) Result[model.Dislike] {
	if err != nil || resp == nil {
		return failed[model.Dislike](ctx, err)
	}
	return newResult(ctx, resp.Success, resp.Dislikes, resp.Count)
}

// Recommendations fetches recommendations and returns a discriminated Result.
func (c *Client) Recommendations(ctx context.Context, userID string, limit int) Result[model.Recommendation] {
	resp, err := c.GetRecommendations(ctx, userID, limit)
	return RecommendationsResult(ctx, resp, err)
}

// Dislikes fetches dislikes and returns a discriminated Result.
func (c *Client) Dislikes(ctx context.Context, userID string) Result[model.Dislike] {
	resp, err := c.GetDislikes(ctx, userID)
	return DislikesResult(ctx, resp, err)
}

func newResult[T any](ctx context.Context, success bool, items []T, count int) Result[T] {
	if canceled(ctx) {
		return Result[T]{Kind: KindCanceled, Err: ctx.Err()}
	}
	if !success {
		return Result[T]{Kind: KindApplicationFailure, Err: ErrApplicationFailure}
	}
	if items == nil {
		items = []T{}
	}
	return Result[T]{Kind: KindOK, Items: items, Count: count}
}

func failed[T any](ctx context.Context, err error) Result[T] {
	if canceled(ctx) {
		return Result[T]{Kind: KindCanceled, Err: ctx.Err()}
	}
	if err == nil {
		err = &InvalidResponseFormatError{}
	}
	return Result[T]{Kind: Classify(err), Err: err}
}

// canceled reports whether the caller's scope has been cancelled.
// Deadline expiry is not cancellation; it surfaces as a transport failure.
func canceled(ctx context.Context) bool {
	return ctx.Err() == context.Canceled
}
