package pdf

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Operand values produced by the lexer: float64, bool, nil, name,
// []byte (string), []any (array) or map[string]any (dictionary).
type name string

// operation is a content stream operator with its operands.
type operation struct {
	op   string
	args []any
}

// lexer splits a content stream into operations.
type lexer struct {
	data  []byte
	pos   int
	stack []any
	ops   []operation
}

// parseContent parses a decoded content stream. Malformed tokens are
// skipped so that one bad operand does not lose the rest of the page.
func parseContent(data []byte) []operation {
	l := &lexer{data: data}
	for {
		l.skipSpace()
		if l.pos >= len(l.data) {
			break
		}
		if err := l.next(); err != nil {
			l.stack = l.stack[:0]
			l.pos++
		}
	}
	return l.ops
}

func (l *lexer) next() error {
	c := l.data[l.pos]
	if isRegular(c) && !isNumberStart(c) {
		word := l.word()
		switch word {
		case "true":
			l.stack = append(l.stack, true)
		case "false":
			l.stack = append(l.stack, false)
		case "null":
			l.stack = append(l.stack, nil)
		case "BI":
			l.skipInlineImage()
		default:
			l.ops = append(l.ops, operation{op: word, args: l.stack})
			l.stack = nil
		}
		return nil
	}

	v, err := l.operand()
	if err != nil {
		return err
	}
	l.stack = append(l.stack, v)
	return nil
}

func (l *lexer) operand() (any, error) {
	l.skipSpace()
	if l.pos >= len(l.data) {
		return nil, fmt.Errorf("unexpected end of stream")
	}

	c := l.data[l.pos]
	switch {
	case isNumberStart(c):
		return l.number()
	case c == '(':
		return l.literal()
	case c == '<' && l.peek(1) == '<':
		return l.dict()
	case c == '<':
		return l.hex()
	case c == '/':
		return l.name(), nil
	case c == '[':
		return l.array()
	case isRegular(c):
		switch w := l.word(); w {
		case "true":
			return true, nil
		case "false":
			return false, nil
		case "null":
			return nil, nil
		default:
			return nil, fmt.Errorf("unexpected keyword %q in operand", w)
		}
	}
	return nil, fmt.Errorf("unexpected character %q at %d", c, l.pos)
}

func (l *lexer) number() (any, error) {
	start := l.pos
	if c := l.data[l.pos]; c == '+' || c == '-' {
		l.pos++
	}
	for l.pos < len(l.data) {
		c := l.data[l.pos]
		if (c >= '0' && c <= '9') || c == '.' {
			l.pos++
			continue
		}
		break
	}
	s := string(l.data[start:l.pos])
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Producers emit numbers such as "-.5" or "1.2.3"; salvage what parses.
		if v, err = strconv.ParseFloat(trimNumber(s), 64); err != nil {
			return nil, fmt.Errorf("invalid number %q", s)
		}
	}
	return v, nil
}

func trimNumber(s string) string {
	if i := strings.IndexByte(s, '.'); i >= 0 {
		if j := strings.IndexByte(s[i+1:], '.'); j >= 0 {
			s = s[:i+1+j]
		}
	}
	switch s {
	case "-", "+", ".", "-.", "+.":
		return "0"
	}
	return s
}

func (l *lexer) literal() (any, error) {
	l.pos++ // '('
	var buf bytes.Buffer
	depth := 1

	for l.pos < len(l.data) {
		c := l.data[l.pos]
		l.pos++
		switch c {
		case '\\':
			if l.pos >= len(l.data) {
				break
			}
			e := l.data[l.pos]
			l.pos++
			switch e {
			case 'n':
				buf.WriteByte('\n')
			case 'r':
				buf.WriteByte('\r')
			case 't':
				buf.WriteByte('\t')
			case 'b':
				buf.WriteByte('\b')
			case 'f':
				buf.WriteByte('\f')
			case '\r':
				if l.pos < len(l.data) && l.data[l.pos] == '\n' {
					l.pos++
				}
			case '\n':
			case '0', '1', '2', '3', '4', '5', '6', '7':
				v := int(e - '0')
				for i := 0; i < 2 && l.pos < len(l.data); i++ {
					d := l.data[l.pos]
					if d < '0' || d > '7' {
						break
					}
					v = v*8 + int(d-'0')
					l.pos++
				}
				buf.WriteByte(byte(v))
			default:
				buf.WriteByte(e)
			}
		case '(':
			depth++
			buf.WriteByte(c)
		case ')':
			depth--
			if depth == 0 {
				return buf.Bytes(), nil
			}
			buf.WriteByte(c)
		default:
			buf.WriteByte(c)
		}
	}
	return nil, fmt.Errorf("unclosed string")
}

func (l *lexer) hex() (any, error) {
	l.pos++ // '<'
	var digits []byte
	for l.pos < len(l.data) {
		c := l.data[l.pos]
		l.pos++
		if c == '>' {
			if len(digits)%2 == 1 {
				digits = append(digits, '0')
			}
			out := make([]byte, len(digits)/2)
			for i := range out {
				out[i] = hexValue(digits[2*i])<<4 | hexValue(digits[2*i+1])
			}
			return out, nil
		}
		if isSpace(c) {
			continue
		}
		if !isHexDigit(c) {
			return nil, fmt.Errorf("invalid hex digit %q", c)
		}
		digits = append(digits, c)
	}
	return nil, fmt.Errorf("unclosed hex string")
}

func (l *lexer) name() name {
	l.pos++ // '/'
	var buf bytes.Buffer
	for l.pos < len(l.data) {
		c := l.data[l.pos]
		if !isRegular(c) {
			break
		}
		if c == '#' && l.pos+2 < len(l.data) && isHexDigit(l.data[l.pos+1]) && isHexDigit(l.data[l.pos+2]) {
			buf.WriteByte(hexValue(l.data[l.pos+1])<<4 | hexValue(l.data[l.pos+2]))
			l.pos += 3
			continue
		}
		buf.WriteByte(c)
		l.pos++
	}
	return name(buf.String())
}

func (l *lexer) array() (any, error) {
	l.pos++ // '['
	arr := []any{}
	for {
		l.skipSpace()
		if l.pos >= len(l.data) {
			return nil, fmt.Errorf("unclosed array")
		}
		if l.data[l.pos] == ']' {
			l.pos++
			return arr, nil
		}
		v, err := l.operand()
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
}

func (l *lexer) dict() (any, error) {
	l.pos += 2 // '<<'
	d := map[string]any{}
	for {
		l.skipSpace()
		if l.pos+1 >= len(l.data) {
			return nil, fmt.Errorf("unclosed dictionary")
		}
		if l.data[l.pos] == '>' && l.data[l.pos+1] == '>' {
			l.pos += 2
			return d, nil
		}
		if l.data[l.pos] != '/' {
			return nil, fmt.Errorf("dictionary key must be a name")
		}
		key := l.name()
		v, err := l.operand()
		if err != nil {
			return nil, err
		}
		d[string(key)] = v
	}
}

// word reads a run of regular characters.
func (l *lexer) word() string {
	start := l.pos
	for l.pos < len(l.data) && isRegular(l.data[l.pos]) {
		l.pos++
	}
	return string(l.data[start:l.pos])
}

// skipInlineImage skips the dictionary and data of an inline image up to
// and including the EI operator.
func (l *lexer) skipInlineImage() {
	l.stack = nil
	id := bytes.Index(l.data[l.pos:], []byte("ID"))
	if id < 0 {
		l.pos = len(l.data)
		return
	}
	l.pos += id + 2
	for l.pos < len(l.data) {
		i := bytes.Index(l.data[l.pos:], []byte("EI"))
		if i < 0 {
			l.pos = len(l.data)
			return
		}
		at := l.pos + i
		l.pos = at + 2
		if at > 0 && isSpace(l.data[at-1]) && (l.pos >= len(l.data) || !isRegular(l.data[l.pos])) {
			return
		}
	}
}

func (l *lexer) skipSpace() {
	for l.pos < len(l.data) {
		c := l.data[l.pos]
		if isSpace(c) {
			l.pos++
			continue
		}
		if c == '%' {
			for l.pos < len(l.data) && l.data[l.pos] != '\n' && l.data[l.pos] != '\r' {
				l.pos++
			}
			continue
		}
		return
	}
}

func (l *lexer) peek(n int) byte {
	if l.pos+n < len(l.data) {
		return l.data[l.pos+n]
	}
	return 0
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\f' || c == 0
}

func isDelimiter(c byte) bool {
	switch c {
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return true
	}
	return false
}

func isRegular(c byte) bool {
	return !isSpace(c) && !isDelimiter(c)
}

func isNumberStart(c byte) bool {
	return c == '+' || c == '-' || c == '.' || (c >= '0' && c <= '9')
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func hexValue(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

// number returns a numeric operand.
func number(v any) (float64, bool) {
	f, ok := v.(float64)
	return f, ok
}

// numbers returns n numeric operands, or false if any is missing.
func numbers(args []any, n int) ([]float64, bool) {
	if len(args) < n {
		return nil, false
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		f, ok := number(args[len(args)-n+i])
		if !ok {
			return nil, false
		}
		out[i] = f
	}
	return out, true
}
