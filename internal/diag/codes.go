package diag

import (
	"fmt"
)

// Code identifies a diagnostic kind. Ranges mirror the pipeline stages:
// 1000s lexical, 2000s syntax, 3000s semantic scope, 3500s semantic type,
// 4000s I/O, 9000s internal.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexBadNumber          Code = 1003
	LexBadEscape          Code = 1004

	// Syntax
	SynInfo             Code = 2000
	SynUnexpectedToken  Code = 2001
	SynExpectSemicolon  Code = 2002
	SynExpectExpression Code = 2003
	SynExpectIdentifier Code = 2004
	SynUnclosedParen    Code = 2005
	SynUnclosedBrace    Code = 2006
	SynExpectStatement  Code = 2007
	SynExpectBlock      Code = 2008
	SynExpectAssign     Code = 2009

	// Semantic: scope resolution
	SemaInfo             Code = 3000
	SemaDuplicateSymbol  Code = 3001
	SemaUnresolvedSymbol Code = 3002
	SemaUninitializedUse Code = 3003

	// Semantic: type checking
	SemaTypeMismatch       Code = 3500
	SemaInvalidBinaryOp    Code = 3501
	SemaInvalidUnaryOp     Code = 3502
	SemaConditionNotBool   Code = 3503
	SemaAssignIncompatible Code = 3504

	// I/O
	IOLoadFileError Code = 4001

	// Internal invariant violations. Never user error.
	InternalError Code = 9000
)

var codeDescription = map[Code]string{
	UnknownCode:            "Unknown error",
	LexInfo:                "Lexical information",
	LexUnknownChar:         "Unrecognized character",
	LexUnterminatedString:  "Unterminated string literal",
	LexBadNumber:           "Malformed numeric literal",
	LexBadEscape:           "Unknown escape sequence",
	SynInfo:                "Syntax information",
	SynUnexpectedToken:     "Unexpected token",
	SynExpectSemicolon:     "Missing statement terminator",
	SynExpectExpression:    "Expected expression",
	SynExpectIdentifier:    "Expected identifier",
	SynUnclosedParen:       "Unclosed parenthesis",
	SynUnclosedBrace:       "Unclosed brace",
	SynExpectStatement:     "Expected statement",
	SynExpectBlock:         "Expected block",
	SynExpectAssign:        "Expected assignment",
	SemaInfo:               "Semantic information",
	SemaDuplicateSymbol:    "Duplicate declaration",
	SemaUnresolvedSymbol:   "Undeclared identifier",
	SemaUninitializedUse:   "Possibly uninitialized variable",
	SemaTypeMismatch:       "Type mismatch",
	SemaInvalidBinaryOp:    "Invalid binary operand types",
	SemaInvalidUnaryOp:     "Invalid unary operand type",
	SemaConditionNotBool:   "Condition is not boolean",
	SemaAssignIncompatible: "Incompatible assignment",
	IOLoadFileError:        "Could not read source file",
	InternalError:          "Internal compiler error",
}

// ID renders the stable user-facing identifier, e.g. "SEM3001".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 9000 && ic < 10000:
		return fmt.Sprintf("INT%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

// Stage classifies a code by pipeline stage for halting decisions.
type Stage uint8

const (
	StageUnknown Stage = iota
	StageLex
	StageSyntax
	StageSema
	StageIO
	StageInternal
)

// Stage returns which pipeline stage produced the code.
func (c Code) Stage() Stage {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return StageLex
	case ic >= 2000 && ic < 3000:
		return StageSyntax
	case ic >= 3000 && ic < 4000:
		return StageSema
	case ic >= 4000 && ic < 5000:
		return StageIO
	case ic >= 9000:
		return StageInternal
	}
	return StageUnknown
}
