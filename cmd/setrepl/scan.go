package main

import (
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token types of the command language.
const (
	tokID = iota + 1
	tokNum
	tokString
)

var tokenNames = map[int]string{
	tokID:     "ID",
	tokNum:    "NUM",
	tokString: "STRING",
}

var lexer *lexmachine.Lexer
var lexerErr error
var initOnce sync.Once // monitors one-time initialization of the lexer

// commandLexer creates the lexmachine DFA for command lines, once.
func commandLexer() (*lexmachine.Lexer, error) {
	initOnce.Do(func() {
		lexer = lexmachine.NewLexer()
		lexer.Add([]byte(`;[^\n]*\n?`), skip) // skip comments
		lexer.Add([]byte(`\"[^"]*\"`), quoted)
		lexer.Add([]byte(`([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_|-|\.)*`), makeToken(tokID))
		lexer.Add([]byte(`[\+\-]?[0-9]+(\.[0-9]+)?`), makeToken(tokNum))
		lexer.Add([]byte(`( |\,|\t|\n|\r)+`), skip)
		if lexerErr = lexer.Compile(); lexerErr != nil {
			gtrace.SyntaxTracer.Errorf("Error compiling DFA: %v", lexerErr)
		}
	})
	return lexer, lexerErr
}

// word is a lexeme of a command line. Strings are stored without quotes.
type word struct {
	kind  int
	text  string
	start int
}

func (w word) String() string {
	return tokenNames[w.kind] + "(" + w.text + ")"
}

// scan splits a command line into words.
func scan(line string) ([]word, error) {
	lx, err := commandLexer()
	if err != nil {
		return nil, err
	}
	scanner, err := lx.Scanner([]byte(line))
	if err != nil {
		return nil, errors.Wrap(err, "cannot scan input")
	}
	var words []word
	for tok, err, eof := scanner.Next(); !eof; tok, err, eof = scanner.Next() {
		if err != nil {
			if ui, is := err.(*machines.UnconsumedInput); is {
				return words, errors.Newf("unexpected input at column %d: %q",
					ui.FailColumn, string(ui.Text))
			}
			return words, err
		}
		token := tok.(*lexmachine.Token)
		words = append(words, word{
			kind:  token.Type,
			text:  token.Value.(string),
			start: token.StartColumn,
		})
	}
	gtrace.SyntaxTracer.Debugf("scanned %v", words)
	return words, nil
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func makeToken(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

func quoted(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	text := strings.TrimSuffix(strings.TrimPrefix(string(m.Bytes), `"`), `"`)
	return s.Token(tokString, text, m), nil
}
