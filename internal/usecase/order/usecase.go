package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-deal-service/internal/domain"
	"github.com/LavaJover/shvark-deal-service/internal/infrastructure/metrics"
	orderdto "github.com/LavaJover/shvark-deal-service/internal/usecase/dto/order"
)

type OrderUsecase interface {
	PlaceOrder(ctx context.Context, input *orderdto.PlaceOrderInput) (*domain.Order, error)
	AcceptOrder(ctx context.Context, orderID string) (*domain.Order, error)
	RefuseOrder(ctx context.Context, orderID string) (*domain.Order, error)
	ConfirmOrder(ctx context.Context, orderID, callerID string, role domain.PartyRole) (*domain.Order, error)

	GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error)
	GetOrdersForAuthor(ctx context.Context, authorID string) ([]*domain.Order, error)
	GetOrdersForCustomer(ctx context.Context, customerID string) ([]*domain.Order, error)
	GetOrdersForUser(ctx context.Context, userID string) ([]*domain.Order, error)
}

type DefaultOrderUsecase struct {
	OrderRepo    domain.OrderRepository
	RoleResolver domain.RoleResolver
	Publisher    domain.EventPublisher
	Metrics      *metrics.OrderMetrics
	Logger       *slog.Logger
	// Now is replaceable in tests.
	Now func() time.Time
}

func NewDefaultOrderUsecase(
	orderRepo domain.OrderRepository,
	roleResolver domain.RoleResolver,
	publisher domain.EventPublisher,
	orderMetrics *metrics.OrderMetrics,
	logger *slog.Logger,
) *DefaultOrderUsecase {
	if logger == nil {
		logger = slog.Default()
	}
	return &DefaultOrderUsecase{
		OrderRepo:    orderRepo,
		RoleResolver: roleResolver,
		Publisher:    publisher,
		Metrics:      orderMetrics,
		Logger:       logger.With("module", "order-workflow"),
		Now:          time.Now,
	}
}

func (uc *DefaultOrderUsecase) now() time.Time {
	if uc.Now == nil {
		return time.Now().UTC()
	}
	return uc.Now().UTC()
}

func (uc *DefaultOrderUsecase) logger() *slog.Logger {
	if uc.Logger == nil {
		return slog.Default()
	}
	return uc.Logger
}
