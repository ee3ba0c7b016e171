package domain

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Money is a non-negative amount in centavos.
type Money int64

var brlPrinter = message.NewPrinter(language.BrazilianPortuguese)

// Format renders the amount with the fixed pt-BR/BRL rule,
// e.g. 5990 -> "R$ 59,90".
func (m Money) Format() string {
	return brlPrinter.Sprintf("R$ %.2f", float64(m)/100)
}

func (m Money) Mul(qty int) Money {
	return m * Money(qty)
}
