package model

import "time"

type Visit struct {
	ID                string    `json:"id" gorm:"primaryKey"`
	ClientID          string    `json:"client_id"`
	Date              string    `json:"date"`
	QtyFardo          int       `json:"qty_fardo"`
	QtyBotellon       int       `json:"qty_botellon"`
	UnitPriceFardo    float64   `json:"unit_price_fardo"`
	UnitPriceBotellon float64   `json:"unit_price_botellon"`
	Subtotal          float64   `json:"subtotal"`
	VaciosRecogidos   int       `json:"vacios_recogidos"`
	Note              string    `json:"note"`
	CreatedAt         time.Time `json:"created_at"`
}

// VisitWithClient is the read shape of the day listing: a visit row joined
// with the owning client's name.
type VisitWithClient struct {
	Visit      `gorm:"embedded"`
	ClientName string `json:"client_name"`
}
