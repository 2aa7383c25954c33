package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/jmorales/aguaruta-visits/internal/model"
)

// SQLiteStore is the durable Store variant, backed by the embedded SQLite
// file opened in internal/db.
type SQLiteStore struct {
	db *gorm.DB
}

func NewSQLiteStore(db *gorm.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) ListClients(ctx context.Context, query string) ([]model.Client, error) {
	baseQuery := `
		SELECT id, name, phone, address, price_fardo, price_botellon, created_at
		FROM clients
	`
	var args []interface{}
	if query != "" {
		pattern := "%" + strings.ToLower(query) + "%"
		baseQuery += " WHERE LOWER(name) LIKE ? OR LOWER(phone) LIKE ?"
		args = append(args, pattern, pattern)
	}
	baseQuery += " ORDER BY created_at DESC"

	clients := []model.Client{}
	if err := s.db.WithContext(ctx).Raw(baseQuery, args...).Scan(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (s *SQLiteStore) CreateClient(ctx context.Context, client *model.Client) error {
	return s.db.WithContext(ctx).Exec(`
		INSERT INTO clients (id, name, phone, address, price_fardo, price_botellon, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, client.ID, client.Name, client.Phone, client.Address, client.PriceFardo, client.PriceBotellon, client.CreatedAt).Error
}

func (s *SQLiteStore) GetClient(ctx context.Context, id string) (*model.Client, error) {
	var client model.Client
	err := s.db.WithContext(ctx).Raw(`
		SELECT id, name, phone, address, price_fardo, price_botellon, created_at
		FROM clients
		WHERE id = ?
	`, id).Scan(&client).Error
	if err != nil {
		return nil, err
	}
	if client.ID == "" {
		return nil, ErrNotFound
	}
	return &client, nil
}

func (s *SQLiteStore) UpdateClientPrices(ctx context.Context, id string, priceFardo, priceBotellon float64) error {
	result := s.db.WithContext(ctx).Exec(`
		UPDATE clients SET price_fardo = ?, price_botellon = ? WHERE id = ?
	`, priceFardo, priceBotellon, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStore) CreateVisit(ctx context.Context, visit *model.Visit) error {
	return s.db.WithContext(ctx).Exec(`
		INSERT INTO visits (
			id, client_id, date, qty_fardo, qty_botellon, unit_price_fardo, unit_price_botellon,
			subtotal, vacios_recogidos, note, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, visit.ID, visit.ClientID, visit.Date, visit.QtyFardo, visit.QtyBotellon,
		visit.UnitPriceFardo, visit.UnitPriceBotellon, visit.Subtotal,
		visit.VaciosRecogidos, visit.Note, visit.CreatedAt).Error
}

func (s *SQLiteStore) ListVisitsByDate(ctx context.Context, date, clientID string) ([]model.VisitWithClient, error) {
	baseQuery := `
		SELECT
			v.id, v.client_id, v.date, v.qty_fardo, v.qty_botellon,
			v.unit_price_fardo, v.unit_price_botellon, v.subtotal,
			v.vacios_recogidos, v.note, v.created_at,
			c.name AS client_name
		FROM visits v
		JOIN clients c ON c.id = v.client_id
		WHERE v.date = ?
	`
	args := []interface{}{date}
	if clientID != "" {
		baseQuery += " AND v.client_id = ?"
		args = append(args, clientID)
	}
	baseQuery += " ORDER BY v.created_at DESC"

	visits := []model.VisitWithClient{}
	if err := s.db.WithContext(ctx).Raw(baseQuery, args...).Scan(&visits).Error; err != nil {
		return nil, err
	}
	return visits, nil
}

func (s *SQLiteStore) DeleteVisit(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Exec(`DELETE FROM visits WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
