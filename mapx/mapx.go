// Package mapx evaluates small jq-style paths over generic decoded
// documents (map[string]any, []any, primitives).
//
// Supported syntax:
//
//	.foo.bar        object field access
//	.["a key"]      quoted field
//	.foo[0]         list index, negative counts from the end
//	.foo[1:4:2]     list slice [start:end(:step)], bounds as in Python
//	.foo[*]         every list element
//	.*              every object value
//	..              the node and all of its descendants
//
// Bare field names are ASCII letters, digits, '_' and '-'; other keys need
// the quoted form.
//
// Missing parts of a path yield no values rather than an error.
package mapx

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

type segmentKind int

const (
	segField segmentKind = iota
	segIndex
	segSlice
	segEachArr
	segEachObj
	segRecursive
)

type segment struct {
	kind  segmentKind
	field string
	index int
	// segSlice bounds, nil means default
	start, end, step *int
}

// Get returns all values matching path, in document order.
func Get(root any, path string) ([]any, error) {
	segs, err := parse(path)
	if err != nil {
		return nil, err
	}
	frontier := []any{root}
	for _, s := range segs {
		var next []any
		for _, node := range frontier {
			next = append(next, apply(node, s)...)
		}
		frontier = next
	}
	return frontier, nil
}

// GetOne expects path to match exactly one value.
func GetOne(root any, path string) (any, error) {
	vals, err := Get(root, path)
	if err != nil {
		return nil, err
	}
	switch len(vals) {
	case 0:
		return nil, errors.New("no value found for path")
	case 1:
		return vals[0], nil
	default:
		return nil, fmt.Errorf("path matched %d values; expected one", len(vals))
	}
}

func apply(node any, s segment) []any {
	switch s.kind {
	case segField:
		if m, ok := asMap(node); ok {
			if v, ok := m[s.field]; ok {
				return []any{v}
			}
		}
	case segIndex:
		if arr, ok := asSlice(node); ok {
			i := s.index
			if i < 0 {
				i += len(arr)
			}
			if i >= 0 && i < len(arr) {
				return []any{arr[i]}
			}
		}
	case segSlice:
		if arr, ok := asSlice(node); ok {
			return slice(arr, s)
		}
	case segEachArr:
		if arr, ok := asSlice(node); ok {
			return arr
		}
	case segEachObj:
		if m, ok := asMap(node); ok {
			return values(m)
		}
	case segRecursive:
		return descendants(node)
	}
	return nil
}

func slice(arr []any, s segment) []any {
	n := len(arr)
	step := 1
	if s.step != nil {
		step = *s.step
	}
	if step == 0 {
		return nil
	}

	// clamp follows Python: [0, n] for a positive step, [-1, n-1] otherwise
	lo, hi := 0, n
	if step < 0 {
		lo, hi = -1, n-1
	}
	bound := func(p *int, def int) int {
		if p == nil {
			return def
		}
		i := *p
		if i < 0 {
			i += n
		}
		return max(lo, min(hi, i))
	}

	var out []any
	if step > 0 {
		end := bound(s.end, n)
		for i := bound(s.start, 0); i < end; i += step {
			out = append(out, arr[i])
		}
		return out
	}
	end := bound(s.end, -1)
	for i := bound(s.start, n-1); i > end; i += step {
		out = append(out, arr[i])
	}
	return out
}

// values returns map values ordered by key so results are stable.
func values(m map[string]any) []any {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]any, 0, len(m))
	for _, k := range keys {
		out = append(out, m[k])
	}
	return out
}

func descendants(v any) []any {
	out := []any{v}
	if m, ok := asMap(v); ok {
		for _, child := range values(m) {
			out = append(out, descendants(child)...)
		}
	} else if arr, ok := asSlice(v); ok {
		for _, child := range arr {
			out = append(out, descendants(child)...)
		}
	}
	return out
}

func asMap(v any) (map[string]any, bool) {
	if m, ok := v.(map[string]any); ok {
		return m, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}

func asSlice(v any) ([]any, bool) {
	if arr, ok := v.([]any); ok {
		return arr, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// ----------------- parser -----------------

type scanner struct {
	s string
	i int
}

func parse(path string) ([]segment, error) {
	sc := &scanner{s: strings.TrimSpace(path)}
	var segs []segment
	for !sc.done() {
		switch ch := sc.peek(); {
		case ch == '.':
			sc.i++
			switch next := sc.peek(); {
			case next == '.':
				sc.i++
				segs = append(segs, segment{kind: segRecursive})
			case next == '*':
				sc.i++
				segs = append(segs, segment{kind: segEachObj})
			case isIdentStart(next):
				segs = append(segs, segment{kind: segField, field: sc.ident()})
			case next == '[' || next == 0:
				// ".[...]" or a bare "." selecting the root
			default:
				return nil, sc.errf("unexpected character %q after '.'", next)
			}
		case ch == '[':
			seg, err := sc.bracket()
			if err != nil {
				return nil, err
			}
			segs = append(segs, seg)
		case isIdentStart(ch) && (len(segs) == 0 || segs[len(segs)-1].kind == segRecursive):
			segs = append(segs, segment{kind: segField, field: sc.ident()})
		default:
			return nil, sc.errf("unexpected character %q", ch)
		}
	}
	return segs, nil
}

func (sc *scanner) bracket() (segment, error) {
	sc.i++ // '['
	var seg segment
	switch ch := sc.peek(); {
	case ch == '*':
		sc.i++
		seg = segment{kind: segEachArr}
	case ch == '"' || ch == '\'':
		key, err := sc.quoted()
		if err != nil {
			return segment{}, err
		}
		seg = segment{kind: segField, field: key}
	default:
		start, err := sc.int()
		if err != nil {
			return segment{}, err
		}
		if sc.peek() != ':' {
			if start == nil {
				return segment{}, sc.errf("index, slice, '*' or quoted key expected inside []")
			}
			seg = segment{kind: segIndex, index: *start}
			break
		}
		sc.i++
		seg = segment{kind: segSlice, start: start}
		if seg.end, err = sc.int(); err != nil {
			return segment{}, err
		}
		if sc.peek() == ':' {
			sc.i++
			if seg.step, err = sc.int(); err != nil {
				return segment{}, err
			}
		}
	}
	if sc.peek() != ']' {
		return segment{}, sc.errf("] expected")
	}
	sc.i++
	return seg, nil
}

func (sc *scanner) quoted() (string, error) {
	quote := sc.peek()
	sc.i++
	var b strings.Builder
	for !sc.done() {
		ch := sc.s[sc.i]
		sc.i++
		switch ch {
		case quote:
			return b.String(), nil
		case '\\':
			if sc.done() {
				return "", sc.errf("unterminated escape")
			}
			b.WriteByte(sc.s[sc.i])
			sc.i++
		default:
			b.WriteByte(ch)
		}
	}
	return "", sc.errf("unterminated string literal")
}

// int reads an optional signed integer; nil means none was present.
func (sc *scanner) int() (*int, error) {
	start := sc.i
	if sc.peek() == '-' {
		sc.i++
	}
	for !sc.done() && sc.peek() >= '0' && sc.peek() <= '9' {
		sc.i++
	}
	if sc.i == start {
		return nil, nil
	}
	v, err := strconv.Atoi(sc.s[start:sc.i])
	if err != nil {
		return nil, sc.errf("invalid integer %q", sc.s[start:sc.i])
	}
	return &v, nil
}

func (sc *scanner) ident() string {
	start := sc.i
	for !sc.done() && isIdentPart(sc.peek()) {
		sc.i++
	}
	return sc.s[start:sc.i]
}

func (sc *scanner) done() bool { return sc.i >= len(sc.s) }

func (sc *scanner) peek() byte {
	if sc.done() {
		return 0
	}
	return sc.s[sc.i]
}

func (sc *scanner) errf(format string, a ...any) error {
	return fmt.Errorf("parse error at %d: "+format, append([]any{sc.i}, a...)...)
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentPart(b byte) bool {
	return isIdentStart(b) || b == '-' || (b >= '0' && b <= '9')
}
