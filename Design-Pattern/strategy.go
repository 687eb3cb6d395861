package designpattern

import (
	"fmt"
)

// @Note: 输出格式可以在运行时替换, 比如终端里加颜色

type LineStrategy interface {
	Line(Beverage) string
}

// FormatPrice renders a price in reais with exactly two decimals.
func FormatPrice(price float64) string {
	return fmt.Sprintf("R$%.2f", price)
}

// PlainLine prints "Tipo: <description> | Preço: R$<price>".
type PlainLine struct{}

func (PlainLine) Line(b Beverage) string {
	return fmt.Sprintf("Tipo: %s | Preço: %s", b.Describe(), FormatPrice(b.Price()))
}

// LineFunc lets a plain function act as a LineStrategy.
type LineFunc func(Beverage) string

func (f LineFunc) Line(b Beverage) string {
	return f(b)
}
