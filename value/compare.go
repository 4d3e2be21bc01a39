package value

// RelOp identifies a relational operator accepted by Compare and by the
// GOTO/GOSUB guard grammar's trailing "IF lhs op rhs" clause.
type RelOp string

const (
	LessThan           RelOp = "<"
	LessThanOrEqual    RelOp = "<="
	GreaterThan        RelOp = ">"
	GreaterThanOrEqual RelOp = ">="
	Equal              RelOp = "="
	NotEqual           RelOp = "<>"
)

// Compare implements Grin's compare(a, op, b): numeric comparison
// after Int→Float promotion (so Int(1) and Float(1.0) are equal under =
// and <>), lexicographic string comparison, and ErrCompareType for any
// mixed string/numeric pair.
func Compare(a Value, op RelOp, b Value) (bool, error) {
	switch {
	case numeric(a) && numeric(b):
		return compareFloat(asFloat(a), op, asFloat(b)), nil
	case a.Kind() == StrKind && b.Kind() == StrKind:
		return compareString(a.(Str).Value, op, b.(Str).Value), nil
	default:
		return false, ErrCompareType
	}
}

func compareFloat(a float64, op RelOp, b float64) bool {
	switch op {
	case LessThan:
		return a < b
	case LessThanOrEqual:
		return a <= b
	case GreaterThan:
		return a > b
	case GreaterThanOrEqual:
		return a >= b
	case Equal:
		return a == b
	case NotEqual:
		return a != b
	default:
		return false
	}
}

func compareString(a string, op RelOp, b string) bool {
	switch op {
	case LessThan:
		return a < b
	case LessThanOrEqual:
		return a <= b
	case GreaterThan:
		return a > b
	case GreaterThanOrEqual:
		return a >= b
	case Equal:
		return a == b
	case NotEqual:
		return a != b
	default:
		return false
	}
}
