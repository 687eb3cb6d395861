package main

import (
	"fmt"

	"github.com/fatih/color"

	designpattern "github.com/chriskaliX/coffee-decorator/Design-Pattern"
)

var (
	descColor  = color.New(color.FgCyan)
	priceColor = color.New(color.FgGreen, color.Bold)
)

// lineStrategy keeps the plain text layout; color only adds escape codes.
func lineStrategy(colored bool) designpattern.LineStrategy {
	if !colored {
		return designpattern.PlainLine{}
	}
	return designpattern.LineFunc(func(b designpattern.Beverage) string {
		return fmt.Sprintf("Tipo: %s | Preço: %s",
			descColor.Sprint(b.Describe()),
			priceColor.Sprint(designpattern.FormatPrice(b.Price())))
	})
}
