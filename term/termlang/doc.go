/*
Package termlang provides a parser for lambda terms in textual syntax.

Grammar

	Term   ::=  '(' Term* ')'        // application, at least one term
	Term   ::=  name ':' Term        // abstraction binding name
	Term   ::=  name                 // variable, bound by an enclosing abstraction
	Term   ::=  '\'' chars           // atom, up to whitespace or parenthesis

Names start with a letter, followed by letters, digits or '_'.
Whitespace is insignificant, except for terminating names and atoms. An input
consisting of more than one term is parsed as an application of these terms.

Variables are resolved to de Bruijn indices while parsing. Names may be shadowed
by inner binders:

	f:x:(f (f x))      ⇒   a:b:(a (a b))
	x:x:x              ⇒   a:b:b

A name without an enclosing binder of that name is an error; parsing never
produces a term with dangling references.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package termlang

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lambdaman.termlang'
func tracer() tracing.Trace {
	return tracing.Select("lambdaman.termlang")
}
