package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jmorales/aguaruta-visits/internal/model"
	"github.com/jmorales/aguaruta-visits/internal/pricing"
	"github.com/jmorales/aguaruta-visits/internal/repository"
)

var dayPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

type VisitService struct {
	store repository.Store
}

type CreateVisitInput struct {
	ClientID        string
	Date            string
	QtyFardo        int
	QtyBotellon     int
	VaciosRecogidos int
	Note            string
}

func NewVisitService(store repository.Store) *VisitService {
	return &VisitService{store: store}
}

// Create records a visit, snapshotting the client's current unit prices.
// The snapshot is deliberate: later price changes must not reprice history.
// Absent or malformed dates fall back silently to today.
func (s *VisitService) Create(ctx context.Context, input CreateVisitInput) (*model.Visit, error) {
	if strings.TrimSpace(input.ClientID) == "" {
		return nil, fmt.Errorf("%w: client_id is required", ErrInvalidInput)
	}

	client, err := s.store.GetClient(ctx, input.ClientID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	date := input.Date
	if !dayPattern.MatchString(date) {
		date = today()
	}

	visit := &model.Visit{
		ID:                uuid.NewString(),
		ClientID:          client.ID,
		Date:              date,
		QtyFardo:          input.QtyFardo,
		QtyBotellon:       input.QtyBotellon,
		UnitPriceFardo:    client.PriceFardo,
		UnitPriceBotellon: client.PriceBotellon,
		Subtotal:          pricing.Subtotal(input.QtyFardo, input.QtyBotellon, client.PriceFardo, client.PriceBotellon),
		VaciosRecogidos:   input.VaciosRecogidos,
		Note:              input.Note,
		CreatedAt:         time.Now(),
	}
	if err := s.store.CreateVisit(ctx, visit); err != nil {
		return nil, err
	}
	return visit, nil
}

// DayReport lists one day's visits, newest first, with the day's totals.
// Date defaults to today only when absent; any other value is matched
// literally, so a malformed date yields an empty day. The total is the exact
// sum of returned subtotals.
func (s *VisitService) DayReport(ctx context.Context, date, clientID string) (*model.DayReport, error) {
	if date == "" {
		date = today()
	}

	visits, err := s.store.ListVisitsByDate(ctx, date, clientID)
	if err != nil {
		return nil, err
	}

	report := &model.DayReport{
		Date:   date,
		Visits: visits,
	}
	for _, visit := range visits {
		report.Total += visit.Subtotal
		report.TotalFardos += visit.QtyFardo
		report.TotalBotellones += visit.QtyBotellon
		report.TotalVacios += visit.VaciosRecogidos
	}
	return report, nil
}

func (s *VisitService) Delete(ctx context.Context, id string) error {
	err := s.store.DeleteVisit(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

func today() string {
	return time.Now().Format("2006-01-02")
}
