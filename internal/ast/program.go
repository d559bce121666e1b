package ast

import (
	"warlang/internal/source"
)

// Program is the root of a parsed unit: an ordered top-level statement
// list plus the span covering the whole file.
type Program struct {
	File  source.FileID
	Span  source.Span
	Stmts []StmtID
}
