package repository

import (
	"context"
	"errors"

	"github.com/jmorales/aguaruta-visits/internal/model"
)

// ErrNotFound is returned by both store variants when a lookup or delete
// resolves no record.
var ErrNotFound = errors.New("record not found")

// Store is the persistence contract. Two variants satisfy it: the SQLite
// store (durable) and the memory store (transient fallback). The variant is
// chosen once at process start; both must produce identical externally
// observable results, including ordering and the price-snapshot rule.
type Store interface {
	ListClients(ctx context.Context, query string) ([]model.Client, error)
	CreateClient(ctx context.Context, client *model.Client) error
	GetClient(ctx context.Context, id string) (*model.Client, error)
	UpdateClientPrices(ctx context.Context, id string, priceFardo, priceBotellon float64) error

	CreateVisit(ctx context.Context, visit *model.Visit) error
	ListVisitsByDate(ctx context.Context, date, clientID string) ([]model.VisitWithClient, error)
	DeleteVisit(ctx context.Context, id string) error
}
