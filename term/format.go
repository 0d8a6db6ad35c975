package term

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"strings"
)

// ErrAlphabetExhausted is returned when printing a term which nests more abstractions
// than there are letters to name binders.
var ErrAlphabetExhausted = errors.New("too many nested abstractions to name binders")

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// Escape sequences to end a highlighted section (default foreground and background).
const highlightOff = "\x1b[39m\x1b[49m"

// Format renders a term in textual syntax:
//
//   - applications as a parenthesized, space-separated sequence
//   - abstractions as `x:body`, where x is a letter chosen by nesting depth
//   - bound variables by the name of their binder
//   - atoms as `'name`
//
// A bound variable without a binder is rendered as `!i!`, with i being its index.
// If t nests more abstractions than there are letters, Format returns
// ErrAlphabetExhausted.
func Format(t Term) (string, error) {
	p := &printer{}
	err := p.print(t, 0, Path{})
	return p.b.String(), err
}

// Highlight renders a term like Format, but wraps the node at path at into
// ANSI escape sequences for color. color is an SGR parameter, e.g. "31" for a
// red foreground.
//
// If more than one node is located at path at (an abstraction and its body share
// a path), the outermost one is highlighted.
func Highlight(t Term, at Path, color string) (string, error) {
	p := &printer{
		highlight: true,
		target:    at,
		color:     color,
	}
	err := p.print(t, 0, Path{})
	return p.b.String(), err
}

// display is the Stringer implementation for all kinds of terms.
func display(t Term) string {
	s, err := Format(t)
	if err != nil {
		return s + "<" + err.Error() + ">"
	}
	return s
}

// BinderName returns the name of the binder introduced at depth d.
func BinderName(d int) (string, error) {
	if d < 0 || d >= len(alphabet) {
		return "", fmt.Errorf("%w: depth %d", ErrAlphabetExhausted, d)
	}
	return alphabet[d : d+1], nil
}

type printer struct {
	b         strings.Builder
	highlight bool
	target    Path
	color     string
	marked    bool // target has already been highlighted
}

func (p *printer) print(t Term, depth int, path Path) error {
	mark := p.highlight && !p.marked && path.Equals(p.target)
	if mark {
		p.marked = true
		p.b.WriteString("\x1b[" + p.color + "m")
	}
	var err error
	switch x := t.(type) {
	case *Application:
		p.b.WriteByte('(')
		for i, c := range x.Terms {
			if i > 0 {
				p.b.WriteByte(' ')
			}
			if err = p.print(c, depth, path.Append(i)); err != nil {
				break
			}
		}
		if err == nil {
			p.b.WriteByte(')')
		}
	case *Abstraction:
		var name string
		if name, err = BinderName(depth); err == nil {
			p.b.WriteString(name)
			p.b.WriteByte(':')
			err = p.print(x.Body, depth+1, path)
		}
	case *BoundVar:
		if b := depth - x.Index - 1; b >= 0 {
			var name string
			if name, err = BinderName(b); err == nil {
				p.b.WriteString(name)
			}
		} else {
			tracer().Debugf("dangling reference %d at depth %d", x.Index, depth)
			fmt.Fprintf(&p.b, "!%d!", x.Index)
		}
	case *Atom:
		p.b.WriteByte('\'')
		p.b.WriteString(x.Name)
	default:
		err = fmt.Errorf("cannot print node of type %T", t)
	}
	if mark {
		p.b.WriteString(highlightOff)
	}
	return err
}
