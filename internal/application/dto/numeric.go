package dto

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Los formularios del cliente envían cantidades y precios como número o como
// string. La entrada no parseable se fuerza a cero en lugar de rechazarse:
// comportamiento heredado del formulario original, ver DESIGN.md.

// FlexibleInt acepta número o string JSON. Set indica si el campo vino en el
// cuerpo (para distinguir "ausente" de "cero" en la validación).
type FlexibleInt struct {
	Value int
	Set   bool
}

// UnmarshalJSON nunca devuelve error: lo no parseable queda en 0.
func (f *FlexibleInt) UnmarshalJSON(b []byte) error {
	f.Set = true
	s := strings.TrimSpace(string(bytes.Trim(bytes.TrimSpace(b), `"`)))
	if s == "" || s == "null" {
		f.Value = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		// Entrada tipo "12.7" enviada a un campo entero: truncar como parseInt.
		if fl, ferr := strconv.ParseFloat(s, 64); ferr == nil {
			f.Value = int(fl)
			return nil
		}
		f.Value = 0
		return nil
	}
	f.Value = n
	return nil
}

// FlexibleDecimal acepta número o string JSON; lo no parseable queda en cero.
type FlexibleDecimal struct {
	Value decimal.Decimal
	Set   bool
}

// UnmarshalJSON nunca devuelve error.
func (f *FlexibleDecimal) UnmarshalJSON(b []byte) error {
	f.Set = true
	s := strings.TrimSpace(string(bytes.Trim(bytes.TrimSpace(b), `"`)))
	if s == "" || s == "null" {
		f.Value = decimal.Zero
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		f.Value = decimal.Zero
		return nil
	}
	f.Value = d
	return nil
}
