package components

import (
	"html"
	"slices"
	"strings"
)

// Attrs is the extension bag of native attributes forwarded to the control.
// An empty value renders as name="".
//
// Merge contract: attributes the component derives itself (id, class, aria
// wiring, state flags) always win. A bag entry naming one of them is
// discarded, never merged.
type Attrs map[string]string

type attr struct {
	name  string
	value string
	flag  bool
}

// attrList accumulates derived attributes in a fixed order, then appends the
// pass-through bag sorted by name.
type attrList struct {
	items    []attr
	reserved map[string]struct{}
}

func newAttrList(reserved ...string) *attrList {
	list := &attrList{reserved: make(map[string]struct{}, len(reserved))}
	for _, name := range reserved {
		list.reserved[name] = struct{}{}
	}
	return list
}

func (l *attrList) set(name, value string) {
	l.items = append(l.items, attr{name: name, value: value})
	l.reserved[name] = struct{}{}
}

func (l *attrList) setNonEmpty(name, value string) {
	if value == "" {
		l.reserved[name] = struct{}{}
		return
	}
	l.set(name, value)
}

func (l *attrList) flag(name string, on bool) {
	if on {
		l.items = append(l.items, attr{name: name, flag: true})
	}
	l.reserved[name] = struct{}{}
}

// merge appends the caller's bag. It returns the names dropped for being
// invalid attribute names.
func (l *attrList) merge(bag Attrs) (invalid []string) {
	if len(bag) == 0 {
		return nil
	}
	names := make([]string, 0, len(bag))
	for name := range bag {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, raw := range names {
		name := strings.ToLower(strings.TrimSpace(raw))
		if !validAttrName(name) {
			invalid = append(invalid, raw)
			continue
		}
		if _, taken := l.reserved[name]; taken {
			continue
		}
		l.items = append(l.items, attr{name: name, value: bag[raw]})
		l.reserved[name] = struct{}{}
	}
	return invalid
}

func (l *attrList) String() string {
	var builder strings.Builder
	for idx, item := range l.items {
		if idx > 0 {
			builder.WriteByte(' ')
		}
		builder.WriteString(item.name)
		if item.flag {
			continue
		}
		builder.WriteString(`="`)
		builder.WriteString(html.EscapeString(item.value))
		builder.WriteByte('"')
	}
	return builder.String()
}

// validAttrName accepts the attribute names HTML serialisers can emit
// unquoted: no whitespace, quotes, '>', '/', '=' or control characters.
func validAttrName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r <= 0x20, r == 0x7f:
			return false
		case r == '"', r == '\'', r == '>', r == '/', r == '=', r == '<':
			return false
		}
	}
	return true
}

func joinClasses(parts ...string) string {
	var tokens []string
	for _, part := range parts {
		tokens = append(tokens, strings.Fields(part)...)
	}
	return strings.Join(tokens, " ")
}
