package pdf

import (
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// byteEncoding maps single-byte codes of a simple font to runes.
type byteEncoding [256]rune

var (
	winAnsi   = charmapEncoding(charmap.Windows1252)
	macRoman  = charmapEncoding(charmap.Macintosh)
	pdfDocEnc = pdfDocEncoding()
)

func charmapEncoding(cm *charmap.Charmap) *byteEncoding {
	var enc byteEncoding
	for i := 0; i < 256; i++ {
		enc[i] = cm.DecodeByte(byte(i))
	}
	return &enc
}

// pdfDocEncoding approximates PDFDocEncoding, which is Latin-1 with
// typographic characters in the 0x80-0x9F block.
func pdfDocEncoding() *byteEncoding {
	enc := *charmapEncoding(charmap.ISO8859_1)
	extra := map[int]rune{
		0x80: '•', 0x81: '†', 0x82: '‡', 0x83: '…', 0x84: '—', 0x85: '–',
		0x86: 'ƒ', 0x87: '⁄', 0x88: '‹', 0x89: '›', 0x8a: '−', 0x8b: '‰',
		0x8c: '„', 0x8d: '“', 0x8e: '”', 0x8f: '‘', 0x90: '’', 0x91: '‚',
		0x92: '™', 0x93: 'ﬁ', 0x94: 'ﬂ', 0xa0: '€',
	}
	for k, v := range extra {
		enc[k] = v
	}
	return &enc
}

// baseEncoding returns the encoding for a /Encoding or /BaseEncoding name.
func baseEncoding(n string) *byteEncoding {
	switch n {
	case "MacRomanEncoding":
		return macRoman
	case "PDFDocEncoding":
		return pdfDocEnc
	}
	// StandardEncoding differs from WinAnsi mainly in quotes.
	return winAnsi
}

// withDifferences applies a /Differences array to a copy of base.
func withDifferences(base *byteEncoding, diffs []any) *byteEncoding {
	enc := *base
	code := -1
	for _, d := range diffs {
		switch v := d.(type) {
		case float64:
			code = int(v)
		case name:
			if code >= 0 && code < 256 {
				if r, ok := glyphRune(string(v)); ok {
					enc[code] = r
				}
			}
			code++
		}
	}
	return &enc
}

var glyphNames = map[string]rune{
	"space": ' ', "exclam": '!', "quotedbl": '"', "numbersign": '#', "dollar": '$',
	"percent": '%', "ampersand": '&', "quotesingle": '\'', "parenleft": '(',
	"parenright": ')', "asterisk": '*', "plus": '+', "comma": ',', "hyphen": '-',
	"period": '.', "slash": '/', "zero": '0', "one": '1', "two": '2', "three": '3',
	"four": '4', "five": '5', "six": '6', "seven": '7', "eight": '8', "nine": '9',
	"colon": ':', "semicolon": ';', "less": '<', "equal": '=', "greater": '>',
	"question": '?', "at": '@', "bracketleft": '[', "backslash": '\\',
	"bracketright": ']', "underscore": '_', "braceleft": '{', "bar": '|',
	"braceright": '}', "asciitilde": '~', "quoteleft": '‘', "quoteright": '’',
	"quotedblleft": '“', "quotedblright": '”', "quotesinglbase": '‚',
	"quotedblbase": '„', "endash": '–', "emdash": '—', "bullet": '•',
	"ellipsis": '…', "minus": '−', "degree": '°', "multiply": '×', "divide": '÷',
	"Euro": '€', "euro": '€', "copyright": '©', "registered": '®', "trademark": '™',
	"section": '§', "paragraph": '¶', "periodcentered": '·', "fi": 'ﬁ', "fl": 'ﬂ',
	"aacute": 'á', "agrave": 'à', "acircumflex": 'â', "adieresis": 'ä',
	"eacute": 'é', "egrave": 'è', "ecircumflex": 'ê', "edieresis": 'ë',
	"iacute": 'í', "igrave": 'ì', "icircumflex": 'î', "idieresis": 'ï',
	"oacute": 'ó', "ograve": 'ò', "ocircumflex": 'ô', "odieresis": 'ö',
	"uacute": 'ú', "ugrave": 'ù', "ucircumflex": 'û', "udieresis": 'ü',
	"ccedilla": 'ç', "ntilde": 'ñ', "Eacute": 'É', "Edieresis": 'Ë',
	"Idieresis": 'Ï', "Odieresis": 'Ö', "Udieresis": 'Ü', "ij": 'ĳ', "IJ": 'Ĳ',
	"nbspace": ' ', "uni00A0": ' ',
}

// glyphRune maps a glyph name to a rune: single letters, uniXXXX and uXXXX
// forms and the common named glyphs of Latin text.
func glyphRune(g string) (rune, bool) {
	if i := strings.IndexByte(g, '.'); i > 0 {
		g = g[:i]
	}
	if len(g) == 1 {
		return rune(g[0]), true
	}
	if r, ok := glyphNames[g]; ok {
		return r, true
	}
	for _, prefix := range []string{"uni", "u"} {
		if hex, ok := strings.CutPrefix(g, prefix); ok && len(hex) >= 4 && len(hex) <= 6 {
			if v, err := strconv.ParseUint(hex[:4], 16, 32); err == nil && prefix == "uni" {
				return rune(v), true
			}
			if v, err := strconv.ParseUint(hex, 16, 32); err == nil {
				return rune(v), true
			}
		}
	}
	return 0, false
}
