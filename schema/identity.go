package schema

import (
	"fmt"
	"reflect"
	"unsafe"
)

// NodeID is a comparable identity for a schema value, usable as a map key.
//
// Objects, arrays and other reference types are identified by the memory they
// point to, so two equal-looking schema objects are still distinct nodes.
// Scalars (boolean schemas, strings) are identified by value.
type NodeID struct {
	typ reflect.Type
	ptr unsafe.Pointer
	n   int
	val any
}

// IdentityOf returns the identity of v. It never fails; nil has the zero identity.
func IdentityOf(v any) NodeID {
	if v == nil {
		return NodeID{}
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Pointer, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return NodeID{typ: rv.Type(), ptr: rv.UnsafePointer()}
	case reflect.Slice:
		return NodeID{typ: rv.Type(), ptr: rv.UnsafePointer(), n: rv.Len()}
	}
	if rv.Comparable() {
		return NodeID{typ: rv.Type(), val: v}
	}
	return NodeID{typ: rv.Type(), val: fmt.Sprintf("%#v", v)}
}

// Same reports whether a and b are the same schema node.
func Same(a, b any) bool {
	return IdentityOf(a) == IdentityOf(b)
}

// IsZero reports whether id is the identity of nil.
func (id NodeID) IsZero() bool {
	return id == NodeID{}
}
