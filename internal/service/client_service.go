package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jmorales/aguaruta-visits/internal/model"
	"github.com/jmorales/aguaruta-visits/internal/repository"
)

type ClientService struct {
	store repository.Store
}

type CreateClientInput struct {
	Name          string
	Phone         string
	Address       string
	PriceFardo    float64
	PriceBotellon float64
}

func NewClientService(store repository.Store) *ClientService {
	return &ClientService{store: store}
}

func (s *ClientService) List(ctx context.Context, query string) ([]model.Client, error) {
	return s.store.ListClients(ctx, strings.TrimSpace(query))
}

func (s *ClientService) Create(ctx context.Context, input CreateClientInput) (*model.Client, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	client := &model.Client{
		ID:            uuid.NewString(),
		Name:          input.Name,
		Phone:         input.Phone,
		Address:       input.Address,
		PriceFardo:    input.PriceFardo,
		PriceBotellon: input.PriceBotellon,
		CreatedAt:     time.Now(),
	}
	if err := s.store.CreateClient(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *ClientService) Get(ctx context.Context, id string) (*model.Client, error) {
	client, err := s.store.GetClient(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return client, nil
}

// UpdatePrices changes a client's price list. Unit prices on already created
// visits are snapshots and are never touched by this.
func (s *ClientService) UpdatePrices(ctx context.Context, id string, priceFardo, priceBotellon float64) error {
	err := s.store.UpdateClientPrices(ctx, id, priceFardo, priceBotellon)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
