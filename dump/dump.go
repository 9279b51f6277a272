// Package dump implements the generic, reflection-driven tree printer
// (§4.6): a recursive depth-first traversal that renders any node of
// either the syntactic or semantic tree uniformly, without a per-node-kind
// type switch. Grounded on the teacher's build/ir/irstring/reflectstring.go
// (a reflect.Value-driven recursive stringer that special-cases a handful
// of leaf kinds and falls through to generic struct/slice walking), adapted
// from the teacher's ad hoc "skip zero fields" convention to the cardinality
// wrappers' own WrapperKind/AnyItems contract so every One/Maybe/Any/Many
// field renders by shape rather than by reflect.Kind.
package dump

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/jvanstraten/libcqasm/diagnostics"
	"github.com/jvanstraten/libcqasm/tree"
)

const indentUnit = "    "

// located is implemented by every node via tree.Base's promoted Location.
type located interface {
	Location() diagnostics.Location
}

// Dump renders node as an indented, human-readable tree: NodeName(
// followed by one "child_name: <child>" line per field, then a closing
// ")". An empty Maybe/Any renders as -/[]; a missing One/Many renders as
// !MISSING; a node for which IsComplete() is false is prefixed with "!";
// a node carrying a known source-location annotation has it appended as
// " # <location>" after the opening name.
func Dump(node any) string {
	var b strings.Builder
	writeValue(&b, reflect.ValueOf(node), 0)
	return b.String()
}

func writeIndent(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat(indentUnit, depth))
}

// writeValue renders whatever v holds: a cardinality wrapper (by address,
// since Wrapper's methods have pointer receivers), a tree node, or a plain
// leaf value.
func writeValue(b *strings.Builder, v reflect.Value, depth int) {
	if !v.IsValid() {
		b.WriteString("nil")
		return
	}
	if v.CanAddr() {
		if w, ok := v.Addr().Interface().(tree.Wrapper); ok {
			writeWrapper(b, w, depth)
			return
		}
	}
	if v.Kind() == reflect.Ptr && v.IsNil() {
		b.WriteString("!MISSING")
		return
	}
	iv := v.Interface()
	if w, ok := iv.(tree.Wrapper); ok {
		writeWrapper(b, w, depth)
		return
	}
	if n, ok := iv.(tree.Node); ok {
		writeNode(b, n, depth)
		return
	}
	writeLeaf(b, iv)
}

func writeWrapper(b *strings.Builder, w tree.Wrapper, depth int) {
	items := w.AnyItems()
	switch w.WrapperKind() {
	case tree.KindOne:
		if len(items) == 0 {
			b.WriteString("!MISSING")
			return
		}
		writeValue(b, reflect.ValueOf(items[0]), depth)
	case tree.KindMaybe:
		if len(items) == 0 {
			b.WriteString("-")
			return
		}
		writeValue(b, reflect.ValueOf(items[0]), depth)
	case tree.KindManyList:
		if len(items) == 0 {
			b.WriteString("!MISSING")
			return
		}
		writeList(b, items, depth)
	case tree.KindAnyList:
		if len(items) == 0 {
			b.WriteString("[]")
			return
		}
		writeList(b, items, depth)
	default:
		b.WriteString("!MISSING")
	}
}

func writeList(b *strings.Builder, items []any, depth int) {
	b.WriteString("[\n")
	for _, it := range items {
		writeIndent(b, depth+1)
		writeValue(b, reflect.ValueOf(it), depth+1)
		b.WriteString("\n")
	}
	writeIndent(b, depth)
	b.WriteString("]")
}

func writeNode(b *strings.Builder, n tree.Node, depth int) {
	v := reflect.ValueOf(n)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			b.WriteString("!MISSING")
			return
		}
		v = v.Elem()
	}
	typ := v.Type()

	if c, ok := n.(tree.Completable); ok && !c.IsComplete() {
		b.WriteString("!")
	}
	b.WriteString(typ.Name())
	b.WriteString("(")
	if l, ok := n.(located); ok {
		if loc := l.Location(); loc.Known() {
			b.WriteString(" # ")
			b.WriteString(loc.String())
		}
	}

	type child struct {
		name string
		val  reflect.Value
	}
	var children []child
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if f.Anonymous && f.Type == reflect.TypeOf(tree.Base{}) {
			continue
		}
		if f.PkgPath != "" {
			continue
		}
		children = append(children, child{f.Name, v.Field(i)})
	}

	if len(children) == 0 {
		b.WriteString(")")
		return
	}
	b.WriteString("\n")
	for _, c := range children {
		writeIndent(b, depth+1)
		b.WriteString(c.name)
		b.WriteString(": ")
		writeValue(b, c.val, depth+1)
		b.WriteString("\n")
	}
	writeIndent(b, depth)
	b.WriteString(")")
}

func writeLeaf(b *strings.Builder, iv any) {
	if iv == nil {
		b.WriteString("nil")
		return
	}
	switch x := iv.(type) {
	case string:
		b.WriteString(strconv.Quote(x))
		return
	case fmt.Stringer:
		b.WriteString(x.String())
		return
	}
	rv := reflect.ValueOf(iv)
	if rv.Kind() == reflect.Ptr && rv.IsNil() {
		b.WriteString("nil")
		return
	}
	fmt.Fprintf(b, "%v", iv)
}
