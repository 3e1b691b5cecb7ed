package entities

import "github.com/shopspring/decimal"

// NewPart carries the caller-supplied fields for part creation, already
// coerced to their storage types. ID and timestamps are generated by the
// use case, never supplied by callers.
type NewPart struct {
	Nome       string
	Codigo     string
	Preco      decimal.Decimal
	Quantidade int
	Descricao  string
	Fabricante string
}

// PartChange describes a partial mutation over the mutable field set.
// Nil fields are left untouched; updated_at is always refreshed by the
// persistence layer regardless of which fields are set.
type PartChange struct {
	Nome       *string
	Codigo     *string
	Preco      *decimal.Decimal
	Quantidade *int
	Descricao  *string
	Fabricante *string
}
