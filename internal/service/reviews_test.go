package service

import (
	"context"
	"errors"
	"testing"

	"dealerhub/internal/gateway"
	"dealerhub/internal/worker"

	"github.com/stretchr/testify/require"
)

type fakeAnalyzer struct {
	fn func(text string) (string, error)
}

func (f *fakeAnalyzer) Analyze(_ context.Context, text string) (string, error) {
	return f.fn(text)
}

func TestAnnotateReviews(t *testing.T) {
	wp := worker.NewPool(2)
	defer wp.Stop()

	reviews := []gateway.Review{
		{ID: 1, Review: "Great service"},
		{ID: 2, Review: "Terrible experience"},
		{ID: 3, Review: "It was fine"},
	}

	analyzer := &fakeAnalyzer{fn: func(text string) (string, error) {
		switch text {
		case "Great service":
			return "positive", nil
		case "Terrible experience":
			// 單筆分類失敗不影響其他評論
			return "", errors.New("unreachable")
		default:
			return "neutral", nil
		}
	}}

	AnnotateReviews(context.Background(), wp, analyzer, reviews)

	// 順序維持不變
	require.Equal(t, 1, reviews[0].ID)
	require.Equal(t, 2, reviews[1].ID)
	require.Equal(t, 3, reviews[2].ID)

	require.NotNil(t, reviews[0].Sentiment)
	require.Equal(t, "positive", *reviews[0].Sentiment)
	require.Nil(t, reviews[1].Sentiment)
	require.NotNil(t, reviews[2].Sentiment)
	require.Equal(t, "neutral", *reviews[2].Sentiment)
}

func TestAnnotateReviewsEmpty(t *testing.T) {
	wp := worker.NewPool(1)
	defer wp.Stop()
	called := false
	AnnotateReviews(context.Background(), wp, &fakeAnalyzer{fn: func(string) (string, error) {
		called = true
		return "", nil
	}}, nil)
	require.False(t, called)
}
