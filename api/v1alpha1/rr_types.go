package v1alpha1

import "strings"

// RRType is a DNS resource record type. The well-known types (A, AAAA, NS,
// SOA) get predicate methods; any other opaque type string is preserved
// verbatim and simply never matches those predicates.
// +kubebuilder:validation:Type=string
type RRType string

const (
	RRTypeA    RRType = "A"
	RRTypeAAAA RRType = "AAAA"
	RRTypeNS   RRType = "NS"
	RRTypeSOA  RRType = "SOA"
)

// Normalized returns the upper-cased form of the type, used for comparisons
// since record types are conventionally upper-case but schemas don't enforce it.
func (t RRType) Normalized() RRType {
	return RRType(strings.ToUpper(string(t)))
}

func (t RRType) IsA() bool    { return t.Normalized() == RRTypeA }
func (t RRType) IsAAAA() bool { return t.Normalized() == RRTypeAAAA }
func (t RRType) IsNS() bool   { return t.Normalized() == RRTypeNS }
func (t RRType) IsSOA() bool  { return t.Normalized() == RRTypeSOA }

// RRClass is a DNS resource record class. IN is the only class the
// resolvers give special treatment to; others are preserved verbatim.
// +kubebuilder:validation:Type=string
type RRClass string

const (
	RRClassIN RRClass = "IN"
)

// Normalized returns the upper-cased form of the class.
func (c RRClass) Normalized() RRClass {
	return RRClass(strings.ToUpper(string(c)))
}

func (c RRClass) IsIN() bool { return c.Normalized() == RRClassIN }
