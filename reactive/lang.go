package reactive

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// sameValue is the change-detection equality: strict comparison with NaN
// treated as equal to itself, and values of uncomparable types never equal
// (a write of a fresh slice or func always counts as a change).
func sameValue(a, b any) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if fa, ok := floatValue(a); ok {
		if fb, ok := floatValue(b); ok && math.IsNaN(fa) && math.IsNaN(fb) {
			return true
		}
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}

func floatValue(v any) (float64, bool) {
	switch f := v.(type) {
	case float64:
		return f, true
	case float32:
		return float64(f), true
	}
	return 0, false
}

func isContainer(v any) bool {
	switch v.(type) {
	case *Map, *Array:
		return true
	}
	return false
}

func asError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("%v", r)
}

// Scope resolves top-level identifiers for path watchers. Component
// instances implement it so paths can reach props, data and computed values
// through one lookup chain.
type Scope interface {
	Lookup(key string) (any, bool)
}

// ParsePath compiles a dot-delimited path like "user.address.city" into a
// getter that walks nested containers with tracked reads. Numeric segments
// index into arrays. Returns false when the expression is not a simple path.
func ParsePath(path string) (func(scope any) any, bool) {
	for _, r := range path {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '_', r == '$', r == '.':
		default:
			return nil, false
		}
	}
	segments := strings.Split(path, ".")
	return func(scope any) any {
		cur := scope
		for _, seg := range segments {
			if cur == nil {
				return nil
			}
			switch c := cur.(type) {
			case Scope:
				v, ok := c.Lookup(seg)
				if !ok {
					return nil
				}
				cur = v
			case *Map:
				cur = c.Get(seg)
			case *Array:
				i, err := strconv.Atoi(seg)
				if err != nil || i < 0 || i >= c.Len() {
					return nil
				}
				cur = c.Get(i)
			default:
				return nil
			}
		}
		return cur
	}, true
}
