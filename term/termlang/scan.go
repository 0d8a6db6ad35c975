package termlang

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sync"

	"github.com/npillmayer/lambdaman/scanner"
	"github.com/timtadh/lexmachine"
)

// The tokens representing literal one-char lexemes
var literals = []string{"(", ")"}

// Token types of non-literal tokens
const (
	NameToken   = 1 // variable name
	BinderToken = 2 // name followed by ':'
	AtomToken   = 3 // quote followed by atom name
)

// tokenIds will be set in initTokens()
var tokenIds map[string]int // A map from the token names to their token types

var initOnce sync.Once // monitors one-time initialization
func initTokens() {
	initOnce.Do(func() {
		tokenIds = make(map[string]int)
		tokenIds["NAME"] = NameToken
		tokenIds["BINDER"] = BinderToken
		tokenIds["ATOM"] = AtomToken
		for _, lit := range literals {
			r := lit[0]
			tokenIds[lit] = int(r)
		}
	})
}

// Token returns a token name and its value.
func Token(t string) (string, int) {
	initTokens()
	id, ok := tokenIds[t]
	if !ok {
		panic(fmt.Errorf("unknown token: %s", t))
	}
	return t, id
}

var lexer *scanner.LMAdapter
var lexerErr error
var lexerOnce sync.Once // monitors one-time creation of the lexer

// Lexer returns the lexmachine lexer for terms. The DFA is compiled once,
// on first use.
func Lexer() (*scanner.LMAdapter, error) {
	lexerOnce.Do(func() {
		initTokens()
		tracer().Infof("Creating lexer")
		init := func(lexer *lexmachine.Lexer) {
			lexer.Add([]byte(`([a-z]|[A-Z])([a-z]|[A-Z]|[0-9]|_)*:`), makeToken("BINDER"))
			lexer.Add([]byte(`([a-z]|[A-Z])([a-z]|[A-Z]|[0-9]|_)*`), makeToken("NAME"))
			lexer.Add([]byte(`\'[^ \t\n\r\(\)]*`), makeToken("ATOM"))
			lexer.Add([]byte(`( |\t|\n|\r)+`), scanner.Skip)
		}
		lexer, lexerErr = scanner.NewLMAdapter(init, literals, tokenIds)
	})
	return lexer, lexerErr
}

func makeToken(s string) lexmachine.Action {
	id, ok := tokenIds[s]
	if !ok {
		panic(fmt.Errorf("unknown token: %s", s))
	}
	return scanner.MakeToken(s, id)
}
