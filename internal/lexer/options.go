package lexer

import (
	"warlang/internal/diag"
	"warlang/internal/source"
)

// Options configures a Lexer. Reporter may be nil, in which case errors
// are dropped (lexing still continues to EOF).
type Options struct {
	Reporter diag.Reporter
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}
