package dependency

import (
	"context"

	"github.com/jekabolt/sales-digest/internal/entity"
)

//go:generate mockery --with-expecter --case underscore --all --output=./mocks
type (
	Sessions interface {
		// GetSessions returns the GA4 session count for the inclusive date range.
		GetSessions(ctx context.Context, dr entity.DateRange) (int, error)
	}

	Orders interface {
		// FetchOrders retrieves every order created in the inclusive date range.
		FetchOrders(ctx context.Context, dr entity.DateRange) (*entity.OrderBatch, error)
	}

	Notifier interface {
		// Push sends the message to each recipient independently.
		Push(ctx context.Context, recipients []string, message string) []entity.Delivery
	}
)
