package model

// Holiday is a single market holiday: the date the exchange is closed and a
// human-readable description. The description is informational only.
type Holiday struct {
	Date        Date   `json:"date"`
	Description string `json:"description"`
}
