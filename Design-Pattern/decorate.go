package designpattern

import (
	"errors"
	"fmt"
	"reflect"
)

// @Note: 装饰器模式, 在不修改原有对象的情况下动态地给对象添加职责
// @Note: every wrapper satisfies Beverage too, so wrappers stack in any order

// ErrInvalidComposition is returned when a decorator is built without a
// beverage to wrap.
var ErrInvalidComposition = errors.New("invalid composition: decorator needs a beverage to wrap")

type Beverage interface {
	Describe() string
	Price() float64
}

const (
	basicDescription = "plain coffee"
	basicPrice       = 5.0

	milkSuffix      = ", with milk"
	milkDelta       = 2.5
	chocolateSuffix = ", with chocolate"
	chocolateDelta  = 3.0
)

type BasicCoffee struct{}

func (BasicCoffee) Describe() string {
	return basicDescription
}

func (BasicCoffee) Price() float64 {
	return basicPrice
}

// decorator owns the wrapped beverage. It is only set by newDecorator.
type decorator struct {
	inner Beverage
}

func newDecorator(inner Beverage) (decorator, error) {
	if isNil(inner) {
		return decorator{}, ErrInvalidComposition
	}
	return decorator{inner: inner}, nil
}

// Unwrap returns the beverage one level down the chain.
func (d decorator) Unwrap() Beverage {
	return d.inner
}

// milk and chocolate are only built through NewMilk and NewChocolate, so
// a decorator without an inner beverage cannot exist.
type milk struct {
	decorator
}

func NewMilk(inner Beverage) (Beverage, error) {
	d, err := newDecorator(inner)
	if err != nil {
		return nil, fmt.Errorf("milk: %w", err)
	}
	return &milk{decorator: d}, nil
}

func (m *milk) Describe() string {
	return m.inner.Describe() + milkSuffix
}

func (m *milk) Price() float64 {
	return m.inner.Price() + milkDelta
}

type chocolate struct {
	decorator
}

func NewChocolate(inner Beverage) (Beverage, error) {
	d, err := newDecorator(inner)
	if err != nil {
		return nil, fmt.Errorf("chocolate: %w", err)
	}
	return &chocolate{decorator: d}, nil
}

func (c *chocolate) Describe() string {
	return c.inner.Describe() + chocolateSuffix
}

func (c *chocolate) Price() float64 {
	return c.inner.Price() + chocolateDelta
}

// Wrap builds a decorator around a beverage.
type Wrap func(Beverage) (Beverage, error)

var (
	WithMilk      Wrap = NewMilk
	WithChocolate Wrap = NewChocolate
)

// Compose applies wraps to base in order, so the first wrap ends up
// innermost and the last one outermost.
func Compose(base Beverage, wraps ...Wrap) (Beverage, error) {
	if isNil(base) {
		return nil, ErrInvalidComposition
	}
	composed := base
	for i, wrap := range wraps {
		if wrap == nil {
			return nil, fmt.Errorf("wrap %d: %w", i, ErrInvalidComposition)
		}
		next, err := wrap(composed)
		if err != nil {
			return nil, fmt.Errorf("wrap %d: %w", i, err)
		}
		composed = next
	}
	return composed, nil
}

// Chain lists the beverages from the outermost wrapper down to the base.
func Chain(b Beverage) []Beverage {
	var chain []Beverage
	for !isNil(b) {
		chain = append(chain, b)
		u, ok := b.(interface{ Unwrap() Beverage })
		if !ok {
			break
		}
		b = u.Unwrap()
	}
	return chain
}

// isNil also catches typed nils stored in the interface, for pointer
// backed beverages as well as func, map, slice or chan based ones.
func isNil(b Beverage) bool {
	if b == nil {
		return true
	}
	v := reflect.ValueOf(b)
	switch v.Kind() {
	case reflect.Ptr, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan:
		return v.IsNil()
	}
	return false
}
