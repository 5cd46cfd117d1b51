package grid

import (
	"cmp"
	"fmt"
	"reflect"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Comparer orders accessor values. It is not safe for concurrent use
// because the underlying collator reuses internal buffers.
type Comparer struct {
	coll *collate.Collator
}

// NewComparer returns a Comparer that collates strings with the root locale.
func NewComparer() *Comparer {
	return &Comparer{coll: collate.New(language.Und)}
}

// CompareStrings orders two strings with locale-aware collation.
func (c *Comparer) CompareStrings(a, b string) int {
	return c.coll.CompareString(a, b)
}

// Compare orders two accessor values ascending. Nil values sort after every
// non-nil value and two nils are equal. Strings are collated; numbers,
// booleans, and times use their natural order. Values of unrelated types
// fall back to comparing their string forms.
func (c *Comparer) Compare(a, b any) int {
	a, b = deref(a), deref(b)

	aNil, bNil := a == nil, b == nil
	switch {
	case aNil && bNil:
		return 0
	case aNil:
		return 1
	case bNil:
		return -1
	}

	switch x := a.(type) {
	case string:
		if y, ok := b.(string); ok {
			return c.coll.CompareString(x, y)
		}
	case bool:
		if y, ok := b.(bool); ok {
			return compareBool(x, y)
		}
	case time.Time:
		if y, ok := b.(time.Time); ok {
			return x.Compare(y)
		}
	}

	if n, ok := compareNumbers(a, b); ok {
		return n
	}

	return c.coll.CompareString(Stringify(a), Stringify(b))
}

// Stringify returns the string form used for filtering. Nil values, including
// typed nil pointers, become the empty string.
func Stringify(v any) string {
	v = deref(v)
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

// deref unwraps pointers so that *T values compare like T. Nil pointers and
// other nil-able kinds collapse to an untyped nil.
func deref(v any) any {
	for v != nil {
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Pointer:
			if rv.IsNil() {
				return nil
			}
			if _, ok := v.(fmt.Stringer); ok {
				return v
			}
			v = rv.Elem().Interface()
		case reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			if rv.IsNil() {
				return nil
			}
			return v
		default:
			return v
		}
	}
	return nil
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

// compareNumbers orders two numeric values of any built-in kind. Integers of
// the same signedness compare exactly; mixed kinds compare as float64.
func compareNumbers(a, b any) (int, bool) {
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	ka, kb := numericKind(ra.Kind()), numericKind(rb.Kind())
	if ka == kindNone || kb == kindNone {
		return 0, false
	}

	switch {
	case ka == kindInt && kb == kindInt:
		return cmp.Compare(ra.Int(), rb.Int()), true
	case ka == kindUint && kb == kindUint:
		return cmp.Compare(ra.Uint(), rb.Uint()), true
	default:
		return cmp.Compare(toFloat(ra, ka), toFloat(rb, kb)), true
	}
}

type numKind int

const (
	kindNone numKind = iota
	kindInt
	kindUint
	kindFloat
)

func numericKind(k reflect.Kind) numKind {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return kindInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return kindUint
	case reflect.Float32, reflect.Float64:
		return kindFloat
	default:
		return kindNone
	}
}

func toFloat(v reflect.Value, k numKind) float64 {
	switch k {
	case kindInt:
		return float64(v.Int())
	case kindUint:
		return float64(v.Uint())
	default:
		return v.Float()
	}
}
