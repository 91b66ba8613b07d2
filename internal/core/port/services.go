package port

import (
	"context"

	"ledgerly.io/financemail/internal/core/domain"
)

type IngestionService interface {
	Run(ctx context.Context, params domain.RunParams) (*domain.RunSummary, error)
}

type DuplicateReviewService interface {
	Review(ctx context.Context, message domain.DuplicateDetectedMessage) error
}
