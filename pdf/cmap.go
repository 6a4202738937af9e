package pdf

import (
	"unicode/utf16"
)

// cmap maps character codes to Unicode text, as read from a font's
// ToUnicode stream.
type cmap struct {
	spaces []codespace
	chars  map[charCode]string
	ranges []bfRange
}

// charCode is a character code together with its length in bytes.
type charCode struct {
	value uint32
	size  int
}

type codespace struct {
	lo, hi []byte
}

type bfRange struct {
	lo, hi charCode
	dst    []uint16 // first destination, incremented per code
	list   []string // explicit destinations, if given as an array
}

// parseCMap reads the codespace, bfchar and bfrange sections of a CMap
// program. Other sections are ignored.
func parseCMap(data []byte) *cmap {
	cm := &cmap{chars: make(map[charCode]string)}
	l := &lexer{data: data}

	var operands []any
	section := ""
	for {
		l.skipSpace()
		if l.pos >= len(l.data) {
			break
		}
		c := l.data[l.pos]
		if c == '{' || c == '}' {
			l.pos++
			continue
		}
		if isRegular(c) && !isNumberStart(c) {
			switch w := l.word(); w {
			case "begincodespacerange", "beginbfchar", "beginbfrange":
				section = w
				operands = operands[:0]
			case "endcodespacerange":
				cm.addCodespaces(operands)
				section = ""
			case "endbfchar":
				cm.addChars(operands)
				section = ""
			case "endbfrange":
				cm.addRanges(operands)
				section = ""
			}
			continue
		}
		v, err := l.operand()
		if err != nil {
			l.pos++
			continue
		}
		if section != "" {
			operands = append(operands, v)
		}
	}
	return cm
}

func (cm *cmap) addCodespaces(ops []any) {
	for i := 0; i+1 < len(ops); i += 2 {
		lo, ok1 := ops[i].([]byte)
		hi, ok2 := ops[i+1].([]byte)
		if ok1 && ok2 && len(lo) == len(hi) && len(lo) > 0 {
			cm.spaces = append(cm.spaces, codespace{lo: lo, hi: hi})
		}
	}
}

func (cm *cmap) addChars(ops []any) {
	for i := 0; i+1 < len(ops); i += 2 {
		src, ok := ops[i].([]byte)
		if !ok || len(src) == 0 {
			continue
		}
		switch dst := ops[i+1].(type) {
		case []byte:
			cm.chars[toCode(src)] = utf16Text(dst)
		case name:
			if r, ok := glyphRune(string(dst)); ok {
				cm.chars[toCode(src)] = string(r)
			}
		}
	}
}

func (cm *cmap) addRanges(ops []any) {
	for i := 0; i+2 < len(ops); i += 3 {
		lo, ok1 := ops[i].([]byte)
		hi, ok2 := ops[i+1].([]byte)
		if !ok1 || !ok2 || len(lo) == 0 || len(lo) != len(hi) {
			continue
		}
		r := bfRange{lo: toCode(lo), hi: toCode(hi)}
		switch dst := ops[i+2].(type) {
		case []byte:
			r.dst = utf16Units(dst)
		case []any:
			for _, d := range dst {
				if b, ok := d.([]byte); ok {
					r.list = append(r.list, utf16Text(b))
				} else {
					r.list = append(r.list, "")
				}
			}
		default:
			continue
		}
		cm.ranges = append(cm.ranges, r)
	}
}

// codeSize returns the length of the code at the start of data according to
// the codespace ranges, or 0 when no range matches.
func (cm *cmap) codeSize(data []byte) int {
	for _, cs := range cm.spaces {
		n := len(cs.lo)
		if n > len(data) {
			continue
		}
		in := true
		for k := 0; k < n; k++ {
			if data[k] < cs.lo[k] || data[k] > cs.hi[k] {
				in = false
				break
			}
		}
		if in {
			return n
		}
	}
	return 0
}

// lookup returns the text for a code.
func (cm *cmap) lookup(c charCode) (string, bool) {
	if s, ok := cm.chars[c]; ok {
		return s, true
	}
	for _, r := range cm.ranges {
		if c.size != r.lo.size || c.value < r.lo.value || c.value > r.hi.value {
			continue
		}
		off := c.value - r.lo.value
		if r.list != nil {
			if int(off) < len(r.list) {
				return r.list[off], true
			}
			return "", false
		}
		if len(r.dst) == 0 {
			return "", false
		}
		units := append([]uint16(nil), r.dst...)
		units[len(units)-1] += uint16(off)
		return string(utf16.Decode(units)), true
	}
	return "", false
}

func toCode(b []byte) charCode {
	var v uint32
	for _, x := range b {
		v = v<<8 | uint32(x)
	}
	return charCode{value: v, size: len(b)}
}

func utf16Units(b []byte) []uint16 {
	if len(b) == 1 {
		return []uint16{uint16(b[0])}
	}
	units := make([]uint16, 0, len(b)/2)
	for i := 0; i+1 < len(b); i += 2 {
		units = append(units, uint16(b[i])<<8|uint16(b[i+1]))
	}
	return units
}

func utf16Text(b []byte) string {
	return string(utf16.Decode(utf16Units(b)))
}
