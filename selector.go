package folio

import (
	"fmt"
	"strings"
)

// Selector matches nodes by tag, class, id (Name) and role, using a small
// subset of CSS selector syntax: a comma-separated list of compound
// selectors such as `a`, `.skill-tag`, `#about`, `[role="button"]` or
// `button.primary[role=button]`. Combinators are not supported.
type Selector struct {
	source    string
	compounds []compound
}

type compound struct {
	tag     string // "" or "*" matches any tag
	id      string
	classes []string
	attrs   []attrTest
}

type attrTest struct {
	name     string
	value    string
	hasValue bool
}

// ParseSelector parses a selector list.
func ParseSelector(src string) (Selector, error) {
	sel := Selector{source: src}
	for _, part := range strings.Split(src, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			return Selector{}, fmt.Errorf("folio: selector %q: empty compound", src)
		}
		c, err := parseCompound(part)
		if err != nil {
			return Selector{}, fmt.Errorf("folio: selector %q: %w", src, err)
		}
		sel.compounds = append(sel.compounds, c)
	}
	return sel, nil
}

// MustParseSelector is ParseSelector for constant selectors; it panics on error.
func MustParseSelector(src string) Selector {
	sel, err := ParseSelector(src)
	if err != nil {
		panic(err)
	}
	return sel
}

func parseCompound(s string) (compound, error) {
	var c compound
	i := 0
	if i < len(s) && s[i] == '*' {
		c.tag = "*"
		i++
	} else {
		j := scanIdent(s, i)
		c.tag = s[i:j]
		i = j
	}
	for i < len(s) {
		switch s[i] {
		case '.':
			j := scanIdent(s, i+1)
			if j == i+1 {
				return c, fmt.Errorf("missing class name at %d", i)
			}
			c.classes = append(c.classes, s[i+1:j])
			i = j
		case '#':
			j := scanIdent(s, i+1)
			if j == i+1 {
				return c, fmt.Errorf("missing id at %d", i)
			}
			c.id = s[i+1 : j]
			i = j
		case '[':
			end := strings.IndexByte(s[i:], ']')
			if end < 0 {
				return c, fmt.Errorf("unterminated attribute at %d", i)
			}
			a, err := parseAttr(s[i+1 : i+end])
			if err != nil {
				return c, err
			}
			c.attrs = append(c.attrs, a)
			i += end + 1
		default:
			return c, fmt.Errorf("unexpected %q at %d", s[i], i)
		}
	}
	return c, nil
}

func parseAttr(s string) (attrTest, error) {
	name, value, found := strings.Cut(s, "=")
	a := attrTest{name: strings.TrimSpace(name)}
	if a.name == "" || scanIdent(a.name, 0) != len(a.name) {
		return a, fmt.Errorf("invalid attribute name %q", a.name)
	}
	switch a.name {
	case "role", "id", "class", "name":
	default:
		return a, fmt.Errorf("unsupported attribute %q", a.name)
	}
	if !found {
		return a, nil
	}
	value = strings.TrimSpace(value)
	if len(value) >= 2 && (value[0] == '"' || value[0] == '\'') && value[len(value)-1] == value[0] {
		value = value[1 : len(value)-1]
	}
	a.value = value
	a.hasValue = true
	return a, nil
}

func scanIdent(s string, i int) int {
	for i < len(s) {
		c := s[i]
		if c == '-' || c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' {
			i++
			continue
		}
		break
	}
	return i
}

// String returns the selector source text.
func (sel Selector) String() string {
	return sel.source
}

// Match reports whether n matches any compound in the list.
func (sel Selector) Match(n *Node) bool {
	if n == nil {
		return false
	}
	for i := range sel.compounds {
		if sel.compounds[i].match(n) {
			return true
		}
	}
	return false
}

func (c *compound) match(n *Node) bool {
	if c.tag != "" && c.tag != "*" && !strings.EqualFold(c.tag, n.Tag) {
		return false
	}
	if c.id != "" && c.id != n.Name {
		return false
	}
	for _, cl := range c.classes {
		if !n.HasClass(cl) {
			return false
		}
	}
	for _, a := range c.attrs {
		if !a.match(n) {
			return false
		}
	}
	return true
}

func (a attrTest) match(n *Node) bool {
	switch a.name {
	case "role":
		if !a.hasValue {
			return n.Role != ""
		}
		return n.Role == a.value
	case "id", "name":
		if !a.hasValue {
			return n.Name != ""
		}
		return n.Name == a.value
	case "class":
		if !a.hasValue {
			return len(n.Classes) > 0
		}
		return strings.Join(n.Classes, " ") == a.value
	}
	return false
}

// QueryAll returns every node in the subtree rooted at root (inclusive) that
// matches sel, in depth-first order.
func QueryAll(root *Node, sel Selector) []*Node {
	var out []*Node
	if root == nil {
		return nil
	}
	root.Walk(func(n *Node) bool {
		if sel.Match(n) {
			out = append(out, n)
		}
		return true
	})
	return out
}

// QueryAll returns every matching node in the page tree followed by the
// overlay tree.
func (s *Scene) QueryAll(sel Selector) []*Node {
	return append(QueryAll(s.root, sel), QueryAll(s.overlay, sel)...)
}
