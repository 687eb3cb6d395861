package designpattern

import (
	"fmt"
	"io"
)

// Order is the subject: every stage of the composition is pushed to its
// observers.
type Order struct {
	observers []Observer
	current   Beverage
}

func NewOrder(base Beverage) (*Order, error) {
	if isNil(base) {
		return nil, ErrInvalidComposition
	}
	return &Order{
		observers: make([]Observer, 0),
		current:   base,
	}, nil
}

func (o *Order) Attach(ob Observer) {
	o.observers = append(o.observers, ob)
}

// notify pushes the current stage to every attached observer.
func (o *Order) notify() {
	for _, ob := range o.observers {
		ob.Update(o)
	}
}

// Start announces the base beverage before any wrap is added.
func (o *Order) Start() {
	o.notify()
}

// wrap and notify. On error the current beverage is kept.
func (o *Order) Add(w Wrap) error {
	next, err := Compose(o.current, w)
	if err != nil {
		return err
	}
	o.current = next
	o.notify()
	return nil
}

func (o *Order) Beverage() Beverage {
	return o.current
}

type Observer interface {
	Update(*Order)
}

// Printer writes one line per stage.
type Printer struct {
	w        io.Writer
	strategy LineStrategy
}

func (p *Printer) Update(o *Order) {
	fmt.Fprintln(p.w, p.strategy.Line(o.Beverage()))
}

func NewPrinter(w io.Writer, strategy LineStrategy) *Printer {
	if strategy == nil {
		strategy = PlainLine{}
	}
	return &Printer{
		w:        w,
		strategy: strategy,
	}
}
