package scanner

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// lineLexer tokenizes one line of arbitrary source text. The trailing Char
// rule catches anything the other rules miss, so lexing never fails.
var lineLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "String", Pattern: `"(?:\\.|[^"])*"?|'(?:\\.|[^'])*'?|` + "`[^`]*`?"},
	{Name: "Number", Pattern: `\d+(?:\.\d+)?`},
	{Name: "Arrow", Pattern: `=>`},
	{Name: "Assign", Pattern: `=`},
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
	{Name: "Comma", Pattern: `,`},
	{Name: "Ident", Pattern: `[A-Za-z_$][A-Za-z0-9_$.]*`},
	{Name: "Space", Pattern: `[ \t]+`},
	{Name: "Char", Pattern: `.`},
})

var (
	symbols   = lineLexer.Symbols()
	symString = symbols["String"]
	symNumber = symbols["Number"]
	symAssign = symbols["Assign"]
	symLParen = symbols["LParen"]
	symRParen = symbols["RParen"]
	symComma  = symbols["Comma"]
	symIdent  = symbols["Ident"]
	symSpace  = symbols["Space"]
)

// Scan breaks a source line into typed fragments. It is deterministic,
// side-effect-free and never fails: text the lexer cannot classify lands in
// free-text fragments, and every scan ends with an end-of-line marker whose
// column is the line length.
func Scan(line string) []Fragment {
	toks := lexLine(line)
	frags := make([]Fragment, 0, len(toks)+1)

	// pending free-text run, tracked as [textStart, textEnd) line offsets
	textStart, textEnd := -1, -1
	flush := func() {
		if textStart < 0 {
			return
		}
		if value := strings.TrimSpace(line[textStart:textEnd]); value != "" {
			frags = append(frags, Fragment{Kind: KindText, Value: value, Column: textStart})
		}
		textStart = -1
	}

	sawParams := false
	for i := 0; i < len(toks); i++ {
		tok := toks[i]
		off := tok.Pos.Offset
		switch {
		case tok.Type == symSpace:
			if textStart >= 0 {
				textEnd = off + len(tok.Value)
			}
		case tok.Type == symLParen && !sawParams:
			flush()
			frags = append(frags, Fragment{Kind: KindParamStart, Value: tok.Value, Column: off})
			sawParams = true
			attrs, next := scanParams(line, toks, i+1)
			frags = append(frags, attrs...)
			i = next - 1
		case tok.Type == symIdent:
			flush()
			kind := KindText
			if j := nextSignificant(toks, i+1); j >= 0 && toks[j].Type == symAssign {
				kind = KindCode
			}
			frags = append(frags, Fragment{Kind: kind, Value: tok.Value, Column: off})
		case tok.Type == symString || tok.Type == symNumber:
			flush()
			frags = append(frags, Fragment{Kind: KindText, Value: tok.Value, Column: off})
		default:
			if textStart < 0 {
				textStart = off
			}
			textEnd = off + len(tok.Value)
		}
	}
	flush()

	frags = append(frags, Fragment{Kind: KindEndLine, Column: len(line)})
	return frags
}

func lexLine(line string) []lexer.Token {
	lx, err := lineLexer.Lex("", strings.NewReader(line))
	if err != nil {
		return nil
	}
	var toks []lexer.Token
	for {
		tok, err := lx.Next()
		if err != nil || tok.EOF() {
			break
		}
		toks = append(toks, tok)
	}
	return toks
}

// nextSignificant returns the index of the first non-space token at or after
// i, or -1 when the line is exhausted.
func nextSignificant(toks []lexer.Token, i int) int {
	for ; i < len(toks); i++ {
		if toks[i].Type != symSpace {
			return i
		}
	}
	return -1
}

// scanParams consumes tokens of a parameter list until its closing paren and
// groups them into attribute fragments. Nested parens stay inside the raw
// default value of the attribute they belong to.
func scanParams(line string, toks []lexer.Token, i int) ([]Fragment, int) {
	var attrs []Fragment
	depth := 1
	name := ""
	nameCol := 0
	valFrom := -1

	closeAttr := func(end int) {
		if name == "" {
			return
		}
		value := ""
		if valFrom >= 0 && valFrom <= end && end <= len(line) {
			value = strings.TrimSpace(line[valFrom:end])
		}
		attrs = append(attrs, Fragment{Kind: KindAttribute, Name: name, Value: value, Column: nameCol})
		name = ""
		valFrom = -1
	}

	for ; i < len(toks); i++ {
		tok := toks[i]
		switch tok.Type {
		case symLParen:
			depth++
		case symRParen:
			depth--
			if depth == 0 {
				closeAttr(tok.Pos.Offset)
				return attrs, i + 1
			}
		case symComma:
			if depth == 1 {
				closeAttr(tok.Pos.Offset)
			}
		case symIdent:
			if depth == 1 && name == "" {
				name = tok.Value
				nameCol = tok.Pos.Offset
			}
		case symAssign:
			if depth == 1 && name != "" && valFrom < 0 {
				valFrom = tok.Pos.Offset + len(tok.Value)
			}
		}
	}

	// unterminated list: close whatever accumulated so far
	closeAttr(len(line))
	return attrs, i
}
