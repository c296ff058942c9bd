package datatable

import (
	"cmp"
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"
)

// kind ranks used to keep Compare total across mixed value types.
const (
	kindNil = iota
	kindBool
	kindNumber
	kindTime
	kindString
	kindOther
)

// Compare is the natural order of column values: nil first, then booleans,
// numbers (compared numerically across widths), times, strings, and finally
// anything else by its display text.
func Compare(a, b any) int {
	ka, kb := kindOf(a), kindOf(b)
	if ka != kb {
		return cmp.Compare(ka, kb)
	}
	switch ka {
	case kindNil:
		return 0
	case kindBool:
		x, y := toBool(a), toBool(b)
		switch {
		case x == y:
			return 0
		case !x:
			return -1
		default:
			return 1
		}
	case kindNumber:
		return compareNumbers(a, b)
	case kindTime:
		return a.(time.Time).Compare(b.(time.Time))
	case kindString:
		return strings.Compare(toString(a), toString(b))
	default:
		return strings.Compare(Text(a), Text(b))
	}
}

func kindOf(v any) int {
	switch v.(type) {
	case nil:
		return kindNil
	case bool:
		return kindBool
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64, time.Duration:
		return kindNumber
	case time.Time:
		return kindTime
	case string:
		return kindString
	}
	// Named types such as `type cents int64` sort by their underlying kind.
	switch reflect.ValueOf(v).Kind() {
	case reflect.Bool:
		return kindBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return kindNumber
	case reflect.String:
		return kindString
	}
	return kindOther
}

func toBool(v any) bool {
	if b, ok := v.(bool); ok {
		return b
	}
	return reflect.ValueOf(v).Bool()
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return reflect.ValueOf(v).String()
}

// number holds a numeric value in the widest exact representation available.
type number struct {
	i     int64
	u     uint64
	f     float64
	class int // 0 signed, 1 unsigned, 2 float
}

func toNumber(v any) number {
	switch x := v.(type) {
	case int:
		return number{i: int64(x)}
	case int8:
		return number{i: int64(x)}
	case int16:
		return number{i: int64(x)}
	case int32:
		return number{i: int64(x)}
	case int64:
		return number{i: x}
	case time.Duration:
		return number{i: int64(x)}
	case uint:
		return number{u: uint64(x), class: 1}
	case uint8:
		return number{u: uint64(x), class: 1}
	case uint16:
		return number{u: uint64(x), class: 1}
	case uint32:
		return number{u: uint64(x), class: 1}
	case uint64:
		return number{u: x, class: 1}
	case uintptr:
		return number{u: uint64(x), class: 1}
	case float32:
		return number{f: float64(x), class: 2}
	case float64:
		return number{f: x, class: 2}
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return number{i: rv.Int()}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return number{u: rv.Uint(), class: 1}
	case reflect.Float32, reflect.Float64:
		return number{f: rv.Float(), class: 2}
	}
	return number{}
}

func compareNumbers(a, b any) int {
	x, y := toNumber(a), toNumber(b)
	switch {
	case x.class == 0 && y.class == 0:
		return cmp.Compare(x.i, y.i)
	case x.class == 1 && y.class == 1:
		return cmp.Compare(x.u, y.u)
	case x.class == 0 && y.class == 1:
		if x.i < 0 {
			return -1
		}
		return cmp.Compare(uint64(x.i), y.u)
	case x.class == 1 && y.class == 0:
		if y.i < 0 {
			return 1
		}
		return cmp.Compare(x.u, uint64(y.i))
	}

	// At least one side is a float. NaN sorts before every other number so
	// the order stays total.
	fx, fy := math.IsNaN(x.f) && x.class == 2, math.IsNaN(y.f) && y.class == 2
	switch {
	case fx && fy:
		return 0
	case fx:
		return -1
	case fy:
		return 1
	}
	switch {
	case x.class == 2 && y.class == 2:
		return cmp.Compare(x.f, y.f)
	case x.class == 2:
		return -compareIntegerFloat(y, x.f)
	default:
		return compareIntegerFloat(x, y.f)
	}
}

const (
	twoTo63 = 9223372036854775808.0  // 2^63
	twoTo64 = 18446744073709551616.0 // 2^64
)

// compareIntegerFloat compares an integer number with a non-NaN float
// exactly, without rounding the integer to float64.
func compareIntegerFloat(n number, f float64) int {
	t := math.Trunc(f)
	var c int
	if n.class == 1 {
		switch {
		case t < 0:
			return 1
		case t >= twoTo64:
			return -1
		}
		c = cmp.Compare(n.u, uint64(t))
	} else {
		switch {
		case t < -twoTo63:
			return 1
		case t >= twoTo63:
			return -1
		}
		c = cmp.Compare(n.i, int64(t))
	}
	if c != 0 {
		return c
	}
	// Equal integer parts; the fraction decides.
	return cmp.Compare(0, f-t)
}

// Text is the default display string of a column value.
func Text(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case time.Time:
		if x.IsZero() {
			return ""
		}
		if x.Hour() == 0 && x.Minute() == 0 && x.Second() == 0 && x.Nanosecond() == 0 {
			return x.Format(time.DateOnly)
		}
		return x.Format(time.RFC3339)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(v)
	}
}
