package model

import "time"

type Client struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	PriceFardo    float64   `json:"price_fardo"`
	PriceBotellon float64   `json:"price_botellon"`
	CreatedAt     time.Time `json:"created_at"`
}
