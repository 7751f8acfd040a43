// Package deserialize implements the schema-directed deserializer: a
// pull-based cursor over an event.Fragment driving a Visitor through a
// finite set of shape hints.
package deserialize

// Hint identifies the shape a Visitor expects next.
type Hint int

const (
	HintBool Hint = iota
	HintI64
	HintU64
	HintF64
	HintString
	HintOption
	HintUnit
	HintNewtype
	HintSequence
	HintTuple
	HintMap
	HintStruct
	HintEnum
	HintAny
	HintIgnoredAny
)

// ValueField is the sentinel struct-field name that switches an
// element's body interpretation to "capture text/children as $value".
const ValueField = "$value"

// Visitor is driven by the cursor according to the shape it reports via
// Hint. Only the methods relevant to the reported Hint are ever called.
type Visitor interface {
	Hint() Hint

	// Fields lists known field names when Hint() == HintStruct,
	// including ValueField if the struct captures element text/children
	// under that sentinel.
	Fields() []string

	VisitBool(v bool) error
	VisitI64(v int64) error
	VisitU64(v uint64) error
	VisitF64(v float64) error
	VisitString(v string) error
	VisitUnit() error

	// VisitSome is called for HintOption when the optional value is
	// present; the visitor must call DeserializeElement(c, inner) (or
	// an equivalent) to consume it.
	VisitSome(c *Cursor) error

	// VisitNewtype is called for HintNewtype with the cursor already
	// positioned inside the wrapping element's content; the visitor
	// must call c.DeserializeInline(inner) to consume the single inner
	// value sharing that element.
	VisitNewtype(c *Cursor) error

	VisitSeq(sa *SeqAccess) error
	VisitMap(ma *MapAccess) error
	VisitEnum(variant string, va *VariantAccess) error

	// VisitAny receives a generic decoded value: a string for a
	// text-only element, or a map[string]any keyed by child tag name.
	VisitAny(v any) error
	VisitIgnored() error
}
