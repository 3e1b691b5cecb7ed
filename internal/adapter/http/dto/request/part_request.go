package request

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"autopecas_api/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// requiredFields is the creation-time required set, in the order missing
// fields are reported.
var requiredFields = [...]string{"nome", "codigo", "preco", "quantidade"}

// ValidationError carries the human-readable message returned on invalid
// input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// PartPayload is the typed partial-input structure bound from create and
// update bodies. Pointer fields distinguish "absent" from "empty"; preco and
// quantidade stay raw so that non-numeric input reaches Validate instead of
// failing JSON binding (callers send both 29.9 and "29.9").
type PartPayload struct {
	Nome       *string         `json:"nome"`
	Codigo     *string         `json:"codigo"`
	Preco      json.RawMessage `json:"preco,omitempty"`
	Quantidade json.RawMessage `json:"quantidade,omitempty"`
	Descricao  *string         `json:"descricao"`
	Fabricante *string         `json:"fabricante"`
}

// Validate checks presence and type/range. In partial mode nothing is
// required, but any field that is present is still checked. Coercion to
// storage types happens in ToNewPart/ToChange, not here.
func (p PartPayload) Validate(partial bool) error {
	if !partial {
		var missing []string
		for _, f := range requiredFields {
			if !p.has(f) {
				missing = append(missing, f)
			}
		}
		if len(missing) > 0 {
			return &ValidationError{Message: "Campos obrigatórios faltando: " + strings.Join(missing, ", ")}
		}
	}

	if p.hasPreco() {
		preco, err := p.precoValue()
		if err != nil {
			return &ValidationError{Message: "Preço deve ser um número válido"}
		}
		if preco.IsNegative() {
			return &ValidationError{Message: "Preço não pode ser negativo"}
		}
	}

	if p.hasQuantidade() {
		quantidade, err := p.quantidadeValue()
		if err != nil {
			return &ValidationError{Message: "Quantidade deve ser um número inteiro"}
		}
		if quantidade < 0 {
			return &ValidationError{Message: "Quantidade não pode ser negativa"}
		}
	}

	return nil
}

// ToNewPart coerces a validated create payload into the domain value.
func (p PartPayload) ToNewPart() (entities.NewPart, error) {
	preco, err := p.precoValue()
	if err != nil {
		return entities.NewPart{}, err
	}
	quantidade, err := p.quantidadeValue()
	if err != nil {
		return entities.NewPart{}, err
	}
	return entities.NewPart{
		Nome:       deref(p.Nome),
		Codigo:     deref(p.Codigo),
		Preco:      preco,
		Quantidade: quantidade,
		Descricao:  deref(p.Descricao),
		Fabricante: deref(p.Fabricante),
	}, nil
}

// ToChange coerces a validated update payload into the partial mutation:
// exactly the supplied fields, nothing else.
func (p PartPayload) ToChange() (entities.PartChange, error) {
	change := entities.PartChange{
		Nome:       p.Nome,
		Codigo:     p.Codigo,
		Descricao:  p.Descricao,
		Fabricante: p.Fabricante,
	}
	if p.hasPreco() {
		preco, err := p.precoValue()
		if err != nil {
			return entities.PartChange{}, err
		}
		change.Preco = &preco
	}
	if p.hasQuantidade() {
		quantidade, err := p.quantidadeValue()
		if err != nil {
			return entities.PartChange{}, err
		}
		change.Quantidade = &quantidade
	}
	return change, nil
}

func (p PartPayload) has(field string) bool {
	switch field {
	case "nome":
		return p.Nome != nil
	case "codigo":
		return p.Codigo != nil
	case "preco":
		return p.hasPreco()
	case "quantidade":
		return p.hasQuantidade()
	}
	return false
}

func (p PartPayload) hasPreco() bool {
	return rawPresent(p.Preco)
}

func (p PartPayload) hasQuantidade() bool {
	return rawPresent(p.Quantidade)
}

func (p PartPayload) precoValue() (decimal.Decimal, error) {
	s, err := rawScalar(p.Preco)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return decimal.NewFromString(s)
}

func (p PartPayload) quantidadeValue() (int, error) {
	s, err := rawScalar(p.Quantidade)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(s)
}

func rawPresent(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && string(trimmed) != "null"
}

// rawScalar extracts the textual form of a raw JSON number or string.
func rawScalar(raw json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return "", err
		}
		return strings.TrimSpace(s), nil
	}
	return string(trimmed), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
