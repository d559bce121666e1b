package lexer

// skipTrivia consumes whitespace, newlines, and '#' line comments.
// WarLang has no block comments.
func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()

		if b == ' ' || b == '\t' || b == '\r' || b == '\n' {
			lx.cursor.Bump()
			continue
		}

		// '#' comments run to end of line
		if b == '#' {
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
			continue
		}

		break
	}
}
