package service

import (
	"context"
	"strings"

	"dining-companion/internal/analytics"
	"dining-companion/internal/model"

	"github.com/rs/zerolog"
)

// insightService implements InsightService on top of an analytics fetcher.
type insightService struct {
	fetcher      analytics.Fetcher
	defaultLimit int
	logger       zerolog.Logger
}

// NewInsightService creates a new insight service. A limit of zero or less
// passed to Recommendations is replaced by defaultLimit.
func NewInsightService(fetcher analytics.Fetcher, defaultLimit int, logger zerolog.Logger) InsightService {
	if defaultLimit <= 0 {
		defaultLimit = analytics.DefaultLimit
	}
	return &insightService{
		fetcher:      fetcher,
		defaultLimit: defaultLimit,
		logger:       logger.With().Str("service", "insight").Logger(),
	}
}

// Recommendations fetches personalised recommendations.
func (s *insightService) Recommendations(ctx context.Context, userID string, limit int) (analytics.Result[model.Recommendation], error) {
	if strings.TrimSpace(userID) == "" {
		return analytics.Result[model.Recommendation]{}, model.ErrUserRequired
	}
	if limit <= 0 {
		limit = s.defaultLimit
	}

	resp, err := s.fetcher.GetRecommendations(ctx, userID, limit)
	result := analytics.RecommendationsResult(ctx, resp, err)
	s.logOutcome("recommendations", userID, result.Kind, len(result.Items), result.Err)

	return result, nil
}

// Dislikes fetches the foods a user tends to waste.
func (s *insightService) Dislikes(ctx context.Context, userID string) (analytics.Result[model.Dislike], error) {
	if strings.TrimSpace(userID) == "" {
		return analytics.Result[model.Dislike]{}, model.ErrUserRequired
	}

	resp, err := s.fetcher.GetDislikes(ctx, userID)
	result := analytics.DislikesResult(ctx, resp, err)
	s.logOutcome("dislikes", userID, result.Kind, len(result.Items), result.Err)

	return result, nil
}

func (s *insightService) logOutcome(resource, userID string, kind analytics.Kind, items int, err error) {
	switch kind {
	case analytics.KindOK:
		s.logger.Debug().
			Str("resource", resource).
			Str("user_id", userID).
			Int("count", items).
			Msg("analytics fetched")
	case analytics.KindCanceled:
		s.logger.Debug().
			Str("resource", resource).
			Str("user_id", userID).
			Msg("analytics result discarded after cancellation")
	default:
		s.logger.Warn().
			Err(err).
			Str("resource", resource).
			Str("user_id", userID).
			Str("kind", string(kind)).
			Msg("analytics fetch failed")
	}
}
