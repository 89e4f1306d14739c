package routes

import "reflect"

type viewKind uint8

const (
	viewNone viewKind = iota
	viewType
	viewInstance
)

// View identifies the handler bound to a route. It is either a reference to a
// view type or a bound view instance; both resolve to a single reflect.Type.
type View struct {
	kind  viewKind
	typ   reflect.Type
	value any
}

// TypeOf returns a View referencing the type T without an instance.
func TypeOf[T any]() View {
	return View{kind: viewType, typ: reflect.TypeFor[T]()}
}

// Instance returns a View bound to v. A nil v yields the zero View.
func Instance(v any) View {
	if v == nil {
		return View{}
	}
	return View{kind: viewInstance, typ: reflect.TypeOf(v), value: v}
}

// IsZero reports whether the view is unset.
func (v View) IsZero() bool {
	return v.kind == viewNone
}

// IsInstance reports whether the view is bound to an instance.
func (v View) IsInstance() bool {
	return v.kind == viewInstance
}

// Type returns the resolved identity of the view.
func (v View) Type() reflect.Type {
	return v.typ
}

// Value returns the bound instance, or nil for type references.
func (v View) Value() any {
	return v.value
}

// Origin returns the import path of the package that defines the view's named type.
// Pointer types are dereferenced first. Unnamed or unset views have no origin.
func (v View) Origin() string {
	t := v.typ
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return ""
	}
	return t.PkgPath()
}

func (v View) String() string {
	if v.typ == nil {
		return "<none>"
	}
	return v.typ.String()
}
