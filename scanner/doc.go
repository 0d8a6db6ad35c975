/*
Package scanner defines an interface for scanners to be used by the term parser,
together with an adapter for the lexmachine scanner generator.

Lexmachine has to be initialized by providing literals and regular expressions.
Package scanner is very opinionated on how to do the setup of lexmachine.

	var literals []string       // The tokens representing literal strings
	var tokenIds map[string]int // A map from the token names to their int IDs

	init := func(lexer *lexmachine.Lexer) {
		// initialize lexmachine with all the necessary regular expressions
		//
		// scanner.Skip      is a pre-defined action which ignores the scanned match
		// scanner.MakeToken is a pre-defined action which wraps a scanned match into a
		//                   lambdaman.Token
	}

Having that, clients use `NewLMAdapter` to wrap lexmachine into a scanner.Tokenizer.
NewLMAdapter will return an error if compiling the DFA failed.

	LM, err := NewLMAdapter(init, literals, tokenIds)
	if err != nil {
		// do error handling
	}

A scanner is instantiated for each concrete input sequence.

	scan, err := LM.Scanner("x:(f x)")
	if err != nil {
		// do error handling
	}
	for token := scan.NextToken(); token.TokType() != scanner.EOF; token = scan.NextToken() {
		…
	}

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lambdaman.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("lambdaman.scanner")
}
