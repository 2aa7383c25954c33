package model

// DayReport aggregates one calendar day of visits. It backs the JSON listing
// and both export formats.
type DayReport struct {
	Date            string            `json:"date"`
	Total           float64           `json:"total"`
	TotalFardos     int               `json:"total_fardos"`
	TotalBotellones int               `json:"total_botellones"`
	TotalVacios     int               `json:"total_vacios"`
	Visits          []VisitWithClient `json:"visits"`
}
