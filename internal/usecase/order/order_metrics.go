package usecase

import (
	"errors"

	"github.com/LavaJover/shvark-deal-service/internal/domain"
)

func (uc *DefaultOrderUsecase) recordPlaced(result string) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordOrderPlaced(result)
}

func (uc *DefaultOrderUsecase) recordTransition(from, to domain.OrderStatus) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordTransition(string(from), string(to))
}

func (uc *DefaultOrderUsecase) recordConfirmation(role domain.PartyRole) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordConfirmation(string(role))
}

// recordCompletion - время от создания до двойного подтверждения
func (uc *DefaultOrderUsecase) recordCompletion(order *domain.Order) {
	if uc.Metrics == nil || order.CompletedAt == nil || order.CreatedAt.IsZero() {
		return
	}
	uc.Metrics.RecordCompletion(order.CompletedAt.Sub(order.CreatedAt).Seconds())
}

func (uc *DefaultOrderUsecase) recordRejected(operation string, err error) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordRejected(operation, errorReason(err))
}

func errorReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrInvalidTransition):
		return "invalid_transition"
	case errors.Is(err, domain.ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, domain.ErrValidation):
		return "validation"
	case errors.Is(err, domain.ErrStorage):
		return "storage"
	default:
		return "unknown"
	}
}
