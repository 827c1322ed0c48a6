package mappers

import (
	"github.com/LavaJover/shvark-deal-service/internal/domain"
	"github.com/LavaJover/shvark-deal-service/internal/infrastructure/postgres/models"
)

func ToDomainOrder(model *models.OrderModel) *domain.Order {
	return &domain.Order{
		ID:                model.ID,
		ServiceID:         model.ServiceID,
		AuthorID:          model.AuthorID,
		CustomerID:        model.CustomerID,
		Status:            model.Status,
		AuthorConfirmed:   model.AuthorConfirmed,
		CustomerConfirmed: model.CustomerConfirmed,
		Message:           model.Message,
		CreatedAt:         model.CreatedAt,
		AcceptedAt:        model.AcceptedAt,
		CompletedAt:       model.CompletedAt,
	}
}

func ToGORMOrder(order *domain.Order) *models.OrderModel {
	return &models.OrderModel{
		ID:                order.ID,
		ServiceID:         order.ServiceID,
		AuthorID:          order.AuthorID,
		CustomerID:        order.CustomerID,
		Status:            order.Status,
		AuthorConfirmed:   order.AuthorConfirmed,
		CustomerConfirmed: order.CustomerConfirmed,
		Message:           order.Message,
		CreatedAt:         order.CreatedAt,
		AcceptedAt:        order.AcceptedAt,
		CompletedAt:       order.CompletedAt,
		UpdatedAt:         order.CreatedAt,
	}
}

func ToDomainOrders(rows []models.OrderModel) []*domain.Order {
	orders := make([]*domain.Order, len(rows))
	for i := range rows {
		orders[i] = ToDomainOrder(&rows[i])
	}
	return orders
}
