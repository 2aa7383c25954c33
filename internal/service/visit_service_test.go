package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmorales/aguaruta-visits/internal/model"
	"github.com/jmorales/aguaruta-visits/internal/repository"
	"github.com/jmorales/aguaruta-visits/internal/service"
)

func newServices() (*service.ClientService, *service.VisitService) {
	store := repository.NewMemoryStore()
	return service.NewClientService(store), service.NewVisitService(store)
}

func createAna(t *testing.T, clients *service.ClientService) *model.Client {
	t.Helper()
	ana, err := clients.Create(context.Background(), service.CreateClientInput{
		Name:          "Ana",
		PriceFardo:    5,
		PriceBotellon: 10,
	})
	require.NoError(t, err)
	return ana
}

func TestCreateClientRequiresName(t *testing.T) {
	clients, _ := newServices()

	_, err := clients.Create(context.Background(), service.CreateClientInput{Name: "  "})
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	all, err := clients.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, all, "rejected creation persists nothing")
}

func TestCreateVisitRequiresClientID(t *testing.T) {
	_, visits := newServices()

	_, err := visits.Create(context.Background(), service.CreateVisitInput{})
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestCreateVisitUnknownClient(t *testing.T) {
	_, visits := newServices()

	_, err := visits.Create(context.Background(), service.CreateVisitInput{ClientID: "missing"})
	assert.ErrorIs(t, err, service.ErrNotFound)

	report, err := visits.DayReport(context.Background(), "", "")
	require.NoError(t, err)
	assert.Empty(t, report.Visits, "failed creation persists nothing")
}

func TestCreateVisitSnapshotsPrices(t *testing.T) {
	clients, visits := newServices()
	ana := createAna(t, clients)

	visit, err := visits.Create(context.Background(), service.CreateVisitInput{
		ClientID:    ana.ID,
		Date:        "2026-03-02",
		QtyFardo:    2,
		QtyBotellon: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, 5.0, visit.UnitPriceFardo)
	assert.Equal(t, 10.0, visit.UnitPriceBotellon)
	assert.Equal(t, 20.0, visit.Subtotal)
}

func TestVisitPricesImmutableAfterClientPriceChange(t *testing.T) {
	clients, visits := newServices()
	ana := createAna(t, clients)

	_, err := visits.Create(context.Background(), service.CreateVisitInput{
		ClientID:    ana.ID,
		Date:        "2026-03-02",
		QtyFardo:    2,
		QtyBotellon: 1,
	})
	require.NoError(t, err)

	require.NoError(t, clients.UpdatePrices(context.Background(), ana.ID, 50, 100))

	report, err := visits.DayReport(context.Background(), "2026-03-02", "")
	require.NoError(t, err)
	require.Len(t, report.Visits, 1)
	assert.Equal(t, 5.0, report.Visits[0].UnitPriceFardo, "stored snapshot must not move")
	assert.Equal(t, 10.0, report.Visits[0].UnitPriceBotellon)
	assert.Equal(t, 20.0, report.Visits[0].Subtotal)

	later, err := visits.Create(context.Background(), service.CreateVisitInput{
		ClientID: ana.ID,
		Date:     "2026-03-02",
		QtyFardo: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, 50.0, later.Subtotal, "new visits use the new price list")
}

func TestCreateVisitDateFallback(t *testing.T) {
	clients, visits := newServices()
	ana := createAna(t, clients)
	todayDate := time.Now().Format("2006-01-02")

	tests := []struct {
		name string
		date string
		want string
	}{
		{"missing date", "", todayDate},
		{"invalid date", "not-a-date", todayDate},
		{"partial date", "2026-03", todayDate},
		{"valid date", "2026-03-02", "2026-03-02"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			visit, err := visits.Create(context.Background(), service.CreateVisitInput{
				ClientID: ana.ID,
				Date:     tt.date,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, visit.Date)
		})
	}
}

func TestDayReportTotals(t *testing.T) {
	clients, visits := newServices()
	ana := createAna(t, clients)

	_, err := visits.Create(context.Background(), service.CreateVisitInput{
		ClientID: ana.ID, Date: "2026-03-02", QtyFardo: 2, QtyBotellon: 1, VaciosRecogidos: 3,
	})
	require.NoError(t, err)
	_, err = visits.Create(context.Background(), service.CreateVisitInput{
		ClientID: ana.ID, Date: "2026-03-02", QtyBotellon: 2, VaciosRecogidos: 1,
	})
	require.NoError(t, err)
	_, err = visits.Create(context.Background(), service.CreateVisitInput{
		ClientID: ana.ID, Date: "2026-03-03", QtyFardo: 9,
	})
	require.NoError(t, err)

	report, err := visits.DayReport(context.Background(), "2026-03-02", "")
	require.NoError(t, err)
	require.Len(t, report.Visits, 2, "only the requested day")

	var sum float64
	for _, visit := range report.Visits {
		sum += visit.Subtotal
	}
	assert.Equal(t, sum, report.Total, "total is the exact sum of subtotals")
	assert.Equal(t, 40.0, report.Total)
	assert.Equal(t, 2, report.TotalFardos)
	assert.Equal(t, 3, report.TotalBotellones)
	assert.Equal(t, 4, report.TotalVacios)
}

func TestDayReportDateMatchedLiterally(t *testing.T) {
	clients, visits := newServices()
	ana := createAna(t, clients)

	_, err := visits.Create(context.Background(), service.CreateVisitInput{
		ClientID: ana.ID, QtyBotellon: 1,
	})
	require.NoError(t, err)

	// only an absent date defaults to today; anything else is taken as-is,
	// so a malformed date selects nothing
	report, err := visits.DayReport(context.Background(), "definitely-not-a-date", "")
	require.NoError(t, err)
	assert.Equal(t, "definitely-not-a-date", report.Date)
	assert.Empty(t, report.Visits)
	assert.Equal(t, 0.0, report.Total)

	report, err = visits.DayReport(context.Background(), "", "")
	require.NoError(t, err)
	assert.Equal(t, time.Now().Format("2006-01-02"), report.Date)
	require.Len(t, report.Visits, 1)
	assert.Equal(t, 10.0, report.Total)
}

func TestDeleteVisit(t *testing.T) {
	clients, visits := newServices()
	ana := createAna(t, clients)

	visit, err := visits.Create(context.Background(), service.CreateVisitInput{
		ClientID: ana.ID, Date: "2026-03-02",
	})
	require.NoError(t, err)

	assert.ErrorIs(t, visits.Delete(context.Background(), "missing"), service.ErrNotFound)
	require.NoError(t, visits.Delete(context.Background(), visit.ID))
	assert.ErrorIs(t, visits.Delete(context.Background(), visit.ID), service.ErrNotFound)
}
