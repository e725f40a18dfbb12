package easing

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnknownEasing is returned by ByName for names not in the registry.
var ErrUnknownEasing = errors.New("easing: unknown easing function")

var registry = map[string]Func{
	"linear":         Linear,
	"in_quad":        InQuad,
	"out_quad":       OutQuad,
	"in_out_quad":    InOutQuad,
	"in_cubic":       InCubic,
	"out_cubic":      OutCubic,
	"in_out_cubic":   InOutCubic,
	"in_quart":       InQuart,
	"out_quart":      OutQuart,
	"in_out_quart":   InOutQuart,
	"in_quint":       InQuint,
	"out_quint":      OutQuint,
	"in_out_quint":   InOutQuint,
	"in_sine":        InSine,
	"out_sine":       OutSine,
	"in_out_sine":    InOutSine,
	"in_expo":        InExpo,
	"out_expo":       OutExpo,
	"in_out_expo":    InOutExpo,
	"in_circ":        InCirc,
	"out_circ":       OutCirc,
	"in_out_circ":    InOutCirc,
	"in_back":        InBack,
	"out_back":       OutBack,
	"in_out_back":    InOutBack,
	"in_elastic":     InElastic,
	"out_elastic":    OutElastic,
	"in_out_elastic": InOutElastic,
	"in_bounce":      InBounce,
	"out_bounce":     OutBounce,
	"in_out_bounce":  InOutBounce,
}

// ByName looks up an easing function by its snake_case name, e.g.
// "in_out_cubic". Lookup is case-insensitive. An empty name is linear.
func ByName(name string) (Func, error) {
	if name == "" {
		return Linear, nil
	}
	fn, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEasing, name)
	}
	return fn, nil
}

// Names returns every registered name in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
