package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/LavaJover/shvark-deal-service/internal/domain"
	"github.com/LavaJover/shvark-deal-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-deal-service/internal/infrastructure/postgres/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultOrderRepository struct {
	DB *gorm.DB
}

func NewDefaultOrderRepository(db *gorm.DB) *DefaultOrderRepository {
	return &DefaultOrderRepository{DB: db}
}

func (r *DefaultOrderRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	orderModel := mappers.ToGORMOrder(order)
	if err := r.DB.WithContext(ctx).Create(orderModel).Error; err != nil {
		return domain.NewStorageError(err, "create order %s", order.ID)
	}
	return nil
}

func (r *DefaultOrderRepository) GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	if !isOrderID(orderID) {
		return nil, domain.NewNotFoundError("order %s", orderID)
	}
	var order models.OrderModel
	if err := r.DB.WithContext(ctx).First(&order, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("order %s", orderID)
		}
		return nil, domain.NewStorageError(err, "get order %s", orderID)
	}
	return mappers.ToDomainOrder(&order), nil
}

// UpdateOrderStatus is a compare-and-set on status. Postgres re-checks the
// WHERE clause against the latest row version after waiting on a concurrent
// writer, so only one of two racing transitions matches.
func (r *DefaultOrderRepository) UpdateOrderStatus(ctx context.Context, tr domain.OrderTransition) (*domain.Order, bool, error) {
	if !isOrderID(tr.OrderID) {
		return nil, false, nil
	}
	updates := map[string]any{
		"status":     tr.To,
		"updated_at": tr.At,
	}
	if tr.To == domain.StatusAccepted {
		updates["accepted_at"] = tr.At
	}

	var row models.OrderModel
	res := r.DB.WithContext(ctx).
		Model(&row).
		Clauses(clause.Returning{}).
		Where("id = ? AND status = ?", tr.OrderID, tr.From).
		Updates(updates)
	if res.Error != nil {
		return nil, false, domain.NewStorageError(res.Error, "update order %s status", tr.OrderID)
	}
	if res.RowsAffected == 0 {
		return nil, false, nil
	}
	return mappers.ToDomainOrder(&row), true, nil
}

// ConfirmOrderParty sets one confirmation flag and completes the order in the
// same statement when the other flag is already true. SET expressions are
// evaluated on the row version that won the lock, so two parties confirming
// at once both keep their flag and the later one completes the order.
func (r *DefaultOrderRepository) ConfirmOrderParty(ctx context.Context, orderID string, role domain.PartyRole, at time.Time) (*domain.Order, bool, error) {
	own, other, err := confirmationColumns(role)
	if err != nil {
		return nil, false, err
	}
	if !isOrderID(orderID) {
		return nil, false, nil
	}

	var row models.OrderModel
	res := r.DB.WithContext(ctx).
		Model(&row).
		Clauses(clause.Returning{}).
		Where("id = ? AND status = ?", orderID, domain.StatusAccepted).
		Updates(map[string]any{
			own: true,
			"status": gorm.Expr(
				fmt.Sprintf("CASE WHEN %s THEN CAST(? AS text) ELSE status END", other),
				string(domain.StatusConfirmed),
			),
			"completed_at": gorm.Expr(
				fmt.Sprintf("CASE WHEN %s THEN CAST(? AS timestamptz) ELSE completed_at END", other),
				at,
			),
			"updated_at": at,
		})
	if res.Error != nil {
		return nil, false, domain.NewStorageError(res.Error, "confirm order %s as %s", orderID, role)
	}
	if res.RowsAffected == 0 {
		return nil, false, nil
	}
	return mappers.ToDomainOrder(&row), true, nil
}

func (r *DefaultOrderRepository) GetOrdersByAuthorID(ctx context.Context, authorID string) ([]*domain.Order, error) {
	return r.findOrders(ctx, "author_id = ?", authorID)
}

func (r *DefaultOrderRepository) GetOrdersByCustomerID(ctx context.Context, customerID string) ([]*domain.Order, error) {
	return r.findOrders(ctx, "customer_id = ?", customerID)
}

func (r *DefaultOrderRepository) findOrders(ctx context.Context, query string, userID string) ([]*domain.Order, error) {
	var orderModels []models.OrderModel
	if err := r.DB.WithContext(ctx).
		Where(query, userID).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, domain.NewStorageError(err, "list orders of %s", userID)
	}
	return mappers.ToDomainOrders(orderModels), nil
}

func confirmationColumns(role domain.PartyRole) (own, other string, err error) {
	switch role {
	case domain.RoleAuthor:
		return "author_confirmed", "customer_confirmed", nil
	case domain.RoleCustomer:
		return "customer_confirmed", "author_confirmed", nil
	default:
		return "", "", domain.NewValidationError("unknown party role %q", role)
	}
}

// ids are uuid columns; anything else cannot exist and would only make
// Postgres fail the cast.
func isOrderID(orderID string) bool {
	_, err := uuid.Parse(orderID)
	return err == nil
}
