/*
Package lambdaman is a normalizer for the untyped lambda calculus, using
de Bruijn indices.

Terms are entered in a compact textual syntax, where `x:body` is an abstraction,
`(f a b)` is an application and `'name` is an opaque atom:

	(n:f:x:(f (n f x))) (f:x:(f x))

The normalizer finds candidate beta-redexes, applies them one at a time and
renders the resulting term back to text. Package structure is as follows:

■ term: Package term implements the term model, i.e. applications, abstractions,
bound variables and atoms, together with index shifting, substitution and printing.

■ term/termlang: Package termlang implements the parser for the textual term syntax.

■ term/reduce: Package reduce implements discovery and application of beta-redexes.

■ term/church: Package church provides Church encodings for numerals, booleans and pairs.

■ scanner: Package scanner adapts lexmachine for tokenizing input.

■ term/termlang/lrepl: An interactive tool which reduces terms step by step.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lambdaman
