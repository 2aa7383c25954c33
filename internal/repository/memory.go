package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/jmorales/aguaruta-visits/internal/model"
)

// MemoryStore is the transient Store variant, used when the SQLite driver
// cannot be loaded at startup. Data lives in the store value and is lost on
// restart. Guarded by a mutex since the HTTP server dispatches concurrently.
type MemoryStore struct {
	mu      sync.RWMutex
	clients []model.Client
	visits  []model.Visit
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) ListClients(ctx context.Context, query string) ([]model.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(query)
	clients := make([]model.Client, 0, len(s.clients))
	for _, client := range s.clients {
		if needle != "" &&
			!strings.Contains(strings.ToLower(client.Name), needle) &&
			!strings.Contains(strings.ToLower(client.Phone), needle) {
			continue
		}
		clients = append(clients, client)
	}
	sort.SliceStable(clients, func(i, j int) bool {
		return clients[i].CreatedAt.After(clients[j].CreatedAt)
	})
	return clients, nil
}

func (s *MemoryStore) CreateClient(ctx context.Context, client *model.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients = append(s.clients, *client)
	return nil
}

func (s *MemoryStore) GetClient(ctx context.Context, id string) (*model.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, client := range s.clients {
		if client.ID == id {
			found := client
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) UpdateClientPrices(ctx context.Context, id string, priceFardo, priceBotellon float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.clients {
		if s.clients[i].ID == id {
			s.clients[i].PriceFardo = priceFardo
			s.clients[i].PriceBotellon = priceBotellon
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) CreateVisit(ctx context.Context, visit *model.Visit) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visits = append(s.visits, *visit)
	return nil
}

func (s *MemoryStore) ListVisitsByDate(ctx context.Context, date, clientID string) ([]model.VisitWithClient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make(map[string]string, len(s.clients))
	for _, client := range s.clients {
		names[client.ID] = client.Name
	}

	visits := []model.VisitWithClient{}
	for _, visit := range s.visits {
		if visit.Date != date {
			continue
		}
		if clientID != "" && visit.ClientID != clientID {
			continue
		}
		name, ok := names[visit.ClientID]
		if !ok {
			// inner-join semantics: a visit without a known client is invisible
			continue
		}
		visits = append(visits, model.VisitWithClient{Visit: visit, ClientName: name})
	}
	sort.SliceStable(visits, func(i, j int) bool {
		return visits[i].CreatedAt.After(visits[j].CreatedAt)
	})
	return visits, nil
}

func (s *MemoryStore) DeleteVisit(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.visits {
		if s.visits[i].ID == id {
			s.visits = append(s.visits[:i], s.visits[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
