package service

import (
	"context"

	log "github.com/sirupsen/logrus"
	"ledgerly.io/financemail/internal/core/domain"
	"ledgerly.io/financemail/internal/core/port"
)

// DuplicateReviewService re-checks freshly detected duplicate candidates by
// comparing the amounts on the colliding documents. Matching amounts escalate
// the candidate to likely_duplicate; anything else leaves it pending human
// review. Only the status moves; the candidate row itself is write-once.
type DuplicateReviewService struct {
	storage port.FinanceStorage
}

func NewDuplicateReviewService(storage port.FinanceStorage) *DuplicateReviewService {
	return &DuplicateReviewService{
		storage: storage,
	}
}

func (s *DuplicateReviewService) Review(ctx context.Context, message domain.DuplicateDetectedMessage) error {
	candidate, err := s.storage.GetDuplicateCandidateByKey(ctx, message.DuplicateKey)
	if err != nil {
		return err
	}
	if candidate == nil {
		log.WithField("duplicateKey", message.DuplicateKey).Warn("Duplicate candidate not found, skipping review")
		return nil
	}
	if candidate.Status != domain.DuplicateStatusPendingReview {
		return nil
	}

	existingDoc, err := s.storage.GetDocumentByID(ctx, candidate.ExistingDocumentID)
	if err != nil {
		return err
	}

	if candidate.Amount == nil || existingDoc == nil || existingDoc.Amount == nil {
		log.WithField("duplicateKey", candidate.DuplicateKey).Info("Amounts unavailable, candidate stays pending review")
		return nil
	}

	if !candidate.Amount.Equal(*existingDoc.Amount) {
		log.WithFields(log.Fields{
			"duplicateKey":   candidate.DuplicateKey,
			"candidateGross": candidate.Amount.String(),
			"existingGross":  existingDoc.Amount.String(),
		}).Info("Amounts differ, candidate stays pending review")
		return nil
	}

	if err := s.storage.UpdateDuplicateCandidateStatus(ctx, candidate.ID, domain.DuplicateStatusLikelyDuplicate); err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"duplicateKey": candidate.DuplicateKey,
		"confidence":   candidate.Confidence,
	}).Info("Duplicate candidate escalated to likely_duplicate")

	return nil
}
