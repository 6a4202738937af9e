package pdf

// font decodes the strings of one font resource.
type font struct {
	toUnicode    *cmap
	enc          *byteEncoding
	composite    bool
	widths       map[uint32]float64 // glyph space, 1/1000 em
	defaultWidth float64
}

// glyph is one decoded character code.
type glyph struct {
	text  string
	width float64 // advance in em
	space bool    // single-byte code 32, which takes word spacing
}

// fallbackFont is used for font resources that cannot be loaded.
var fallbackFont = &font{enc: winAnsi, defaultWidth: 500}

func (f *font) decode(data []byte) []glyph {
	out := make([]glyph, 0, len(data))
	for i := 0; i < len(data); {
		n := 1
		if f.composite {
			n = 2
			if f.toUnicode != nil {
				if s := f.toUnicode.codeSize(data[i:]); s > 0 {
					n = s
				}
			}
		}
		if i+n > len(data) {
			n = len(data) - i
		}
		code := toCode(data[i : i+n])

		text, ok := "", false
		if f.toUnicode != nil {
			text, ok = f.toUnicode.lookup(code)
		}
		if !ok && !f.composite {
			enc := f.enc
			if enc == nil {
				enc = winAnsi
			}
			if r := enc[data[i]]; r != 0 && r != '�' {
				text = string(r)
			}
		}

		out = append(out, glyph{
			text:  text,
			width: f.width(code.value) / 1000,
			space: n == 1 && data[i] == ' ',
		})
		i += n
	}
	return out
}

func (f *font) width(code uint32) float64 {
	if w, ok := f.widths[code]; ok && w > 0 {
		return w
	}
	if f.defaultWidth > 0 {
		return f.defaultWidth
	}
	if f.composite {
		return 1000
	}
	return 500
}
