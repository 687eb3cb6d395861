package designpattern

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownAddon = errors.New("unknown addon")

// MenuItem describes one addon that can wrap a coffee.
type MenuItem struct {
	Name   string  `yaml:"name"`
	Suffix string  `yaml:"suffix"`
	Delta  float64 `yaml:"delta"`
}

func Menu() []MenuItem {
	return []MenuItem{
		{Name: "milk", Suffix: milkSuffix, Delta: milkDelta},
		{Name: "chocolate", Suffix: chocolateSuffix, Delta: chocolateDelta},
	}
}

// AddonFactory returns the wrap registered under name, or nil.
func AddonFactory(name string) Wrap {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "milk":
		return WithMilk
	case "chocolate":
		return WithChocolate
	default:
		return nil
	}
}

func ParseAddons(names []string) ([]Wrap, error) {
	wraps := make([]Wrap, 0, len(names))
	for _, name := range names {
		wrap := AddonFactory(name)
		if wrap == nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAddon, name)
		}
		wraps = append(wraps, wrap)
	}
	return wraps, nil
}
