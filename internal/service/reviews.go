package service

import (
	"context"
	"sync"

	"dealerhub/internal/gateway"
	"dealerhub/internal/sentiment"
	"dealerhub/internal/worker"
)

// AnnotateReviews 為每則評論標注 sentiment
// 透過 worker pool 以有限併發執行分類；結果寫回原 slice，順序不變
// 個別分類失敗時該則評論的 Sentiment 維持 nil，不中斷其餘評論
func AnnotateReviews(ctx context.Context, wp worker.Pool, analyzer sentiment.Analyzer, reviews []gateway.Review) {
	var wg sync.WaitGroup
	for i := range reviews {
		wg.Add(1)
		idx := i
		wp.Submit(func() {
			defer wg.Done()
			label, err := analyzer.Analyze(ctx, reviews[idx].Review)
			if err != nil {
				reviews[idx].Sentiment = nil
				return
			}
			reviews[idx].Sentiment = &label
		})
	}
	wg.Wait()
}
