package puzzle

import (
	"fmt"
)

/*

Errors

*/

// An Error describes a problem with a board or a requested
// operation on one.  It can produce an error message in English,
// but its main function is to let callers branch on structured
// data instead of matching message strings.  It tells the caller
// "this thing failed to meet this condition", and provides
// supplemental details about the thing and the condition.
type Error struct {
	Scope     ErrorScope     `json:"scope"`
	Structure ErrorStructure `json:"structure,omitempty"`
	Condition ErrorCondition `json:"condition,omitempty"`
	Attribute ErrorAttribute `json:"attribute,omitempty"`
	Values    ErrorData      `json:"values,omitempty"`
	Message   string         `json:"message,omitempty"` // custom message
}

// An ErrorScope explains what type of thing the error is
// referring to: a caller-supplied argument, the board as a whole,
// one of its groups or cells, or a failure of internal logic.
type ErrorScope int

// Constants for the various error scopes.
const (
	UnknownScope ErrorScope = iota
	ArgumentScope
	BoardScope
	GroupScope
	CellScope
	InternalScope
	MaxScope
)

// The ErrorStructure denotes whether the problem is in the
// overall Scope, an Attribute of the Scope, or the value of an
// Attribute of the Scope.
type ErrorStructure int

// Constants for the various structure codes.
const (
	UnknownStructure ErrorStructure = iota
	ScopeStructure
	AttributeStructure
	AttributeValueStructure
	MaxStructure
)

// The ErrorCondition is the predicate that the
// scope/attribute/value failed to satisfy.
type ErrorCondition int

// Constants for the various error conditions.
const (
	UnknownCondition ErrorCondition = iota
	GeneralCondition
	TooLargeCondition
	TooSmallCondition
	UnknownValueCondition
	EmptyGroupCondition
	QuotaExceededCondition
	QuotaUnreachableCondition
	AdjacentMarksCondition
	MaxCondition
)

// An ErrorAttribute names the attribute that has a problem.
type ErrorAttribute int

// Constants for the various attribute codes.
const (
	UnknownAttribute ErrorAttribute = iota
	IndexAttribute
	ValueAttribute
	WidthAttribute
	HeightAttribute
	QuotaAttribute
	CellsAttribute
	NamedAttribute
	MaxAttribute
)

// The ErrorData provides details about the thing that failed to
// meet the predicate (such as the value of an attribute) as well
// as the predicate itself (such as the allowed bounds).
//
// Every item in the slice of ErrorData is required to be
// JSON-serializable, so errors can be embedded in saved
// artifacts.  There is no good way to express this condition so
// the compiler checks it, so implementors have to do the right
// thing at runtime.
type ErrorData []interface{}

// Return an error string from an Error.  If the Error has a
// pre-canned message, this will use it, otherwise it will
// produce an appropriate (English, non-localized) message.
func (e Error) Error() string {
	es := e.Message
	if len(es) > 0 {
		return es
	}
	values := e.Values
	nextVal := func() interface{} {
		if len(values) == 0 {
			return "<unknown>"
		}
		val := values[0]
		values = values[1:]
		return val
	}
	switch e.Scope {
	case ArgumentScope:
		es = "Invalid argument: "
	case BoardScope:
		es = "Invalid board: "
	case GroupScope:
		es = fmt.Sprintf("Problem in %v: ", nextVal())
	case CellScope:
		es = fmt.Sprintf("Problem in cell %v: ", nextVal())
	case InternalScope:
		es = "Internal logic error: "
	default:
		es = "Unknown error: "
	}
	if e.Structure == AttributeStructure || e.Structure == AttributeValueStructure {
		switch e.Attribute {
		case IndexAttribute:
			es += "Index"
		case ValueAttribute:
			es += "Value"
		case WidthAttribute:
			es += "Width"
		case HeightAttribute:
			es += "Height"
		case QuotaAttribute:
			es += "Quota"
		case CellsAttribute:
			es += "Member cells"
		case NamedAttribute:
			es += fmt.Sprint(nextVal())
		default:
			es += "<Unknown attribute>"
		}
		if e.Structure == AttributeValueStructure {
			es += " (" + fmt.Sprint(nextVal()) + ")"
		}
		es += ": "
	}
	switch e.Condition {
	case GeneralCondition:
		es += fmt.Sprint(nextVal())
	case TooLargeCondition:
		es += fmt.Sprintf("Must be at most %v", nextVal())
	case TooSmallCondition:
		es += fmt.Sprintf("Must be at least %v", nextVal())
	case UnknownValueCondition:
		es += "Not a known cell value"
	case EmptyGroupCondition:
		es += "Group has no member cells"
	case QuotaExceededCondition:
		es += fmt.Sprintf("Marked count %v exceeds quota %v", nextVal(), nextVal())
	case QuotaUnreachableCondition:
		es += fmt.Sprintf("Remaining cells cannot reach quota %v", nextVal())
	case AdjacentMarksCondition:
		es += fmt.Sprintf("Marked cells %v and %v are adjacent", nextVal(), nextVal())
	default:
		es += fmt.Sprintf("Supplemental data is %v", values)
	}
	return es
}

// rangeError returns an Error that describes an out-of-range argument.
func rangeError(attr ErrorAttribute, val int, min int, max int) Error {
	err := Error{
		Scope:     ArgumentScope,
		Structure: AttributeValueStructure,
		Attribute: attr,
		Condition: TooLargeCondition,
		Values:    ErrorData{val, max},
	}
	if val < min {
		err.Condition = TooSmallCondition
		err.Values[1] = min
	}
	return err
}
