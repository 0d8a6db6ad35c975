/*
Package lrepl/main provides an interactive command line tool (L.REPL)
for terms of the untyped lambda calculus. Every term entered is reduced to
normal form, showing each reduction step: the redex selected is highlighted
in red, the result of its reduction in green.

Besides terms, L.REPL understands a few commands:

	:tree <term>        display the structure of a term as a tree
	:church <n>         print the Church numeral for n
	:strategy <name>    select redexes with strategy best or leftmost
	:help               list commands
	:quit               leave L.REPL

Reduction of a term without a normal form stops after a number of steps,
configurable with flag -max-steps.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lambdaman.lrepl'
func tracer() tracing.Trace {
	return tracing.Select("lambdaman.lrepl")
}
