package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Part is the automotive part (peça automotiva) persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - Preco is kept as an exact decimal end to end; it only becomes a float
//     at the JSON boundary.
//
// Timestamps:
//   - CreatedAt is set once at creation and never changes.
//   - UpdatedAt is refreshed on every successful mutation, so
//     CreatedAt <= UpdatedAt always holds.
type Part struct {
	ID         string          `json:"id"`
	Nome       string          `json:"nome"`
	Codigo     string          `json:"codigo"`
	Preco      decimal.Decimal `json:"preco"`
	Quantidade int             `json:"quantidade"`
	Descricao  string          `json:"descricao"`
	Fabricante string          `json:"fabricante"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// MarshalJSON emits preco as a JSON numeric literal. decimal.Decimal
// marshals as a quoted string by default, which clients do not expect.
func (p Part) MarshalJSON() ([]byte, error) {
	type alias Part
	return json.Marshal(struct {
		alias
		Preco json.Number `json:"preco"`
	}{
		alias: alias(p),
		Preco: json.Number(p.Preco.String()),
	})
}
