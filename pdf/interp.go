package pdf

import (
	"strings"

	"github.com/tsawler/vlier/model"
)

// Fragment is a run of text drawn by one text-showing operator.
type Fragment struct {
	Text  string
	X, Y  float64 // baseline origin in user space
	Width float64
	Size  float64 // effective font size
}

// Right returns the x coordinate of the end of the fragment.
func (f Fragment) Right() float64 { return f.X + f.Width }

// resources resolves the named resources a content stream refers to.
type resources interface {
	font(key string) *font
	form(key string) (content []byte, matrix model.Matrix, res resources, ok bool)
}

// maxFormDepth bounds nested form XObjects.
const maxFormDepth = 8

type textState struct {
	ctm     model.Matrix
	font    *font
	size    float64
	charSp  float64
	wordSp  float64
	scale   float64 // horizontal scaling, 1 = 100%
	leading float64
	rise    float64
}

// interpreter runs content stream operations and records text fragments.
type interpreter struct {
	res   resources
	state textState
	stack []textState
	tm    model.Matrix
	tlm   model.Matrix
	depth int
	frags []Fragment
}

func newInterpreter(res resources, ctm model.Matrix) *interpreter {
	return &interpreter{
		res:   res,
		state: textState{ctm: ctm, font: fallbackFont, scale: 1},
		tm:    model.Identity(),
		tlm:   model.Identity(),
	}
}

// extractFragments returns the text fragments drawn by a content stream.
func extractFragments(content []byte, res resources) []Fragment {
	in := newInterpreter(res, model.Identity())
	in.run(parseContent(content))
	return in.frags
}

func (in *interpreter) run(ops []operation) {
	for _, op := range ops {
		in.exec(op)
	}
}

func (in *interpreter) exec(op operation) {
	st := &in.state
	switch op.op {
	case "q":
		in.stack = append(in.stack, in.state)
	case "Q":
		if n := len(in.stack); n > 0 {
			in.state = in.stack[n-1]
			in.stack = in.stack[:n-1]
		}
	case "cm":
		if v, ok := numbers(op.args, 6); ok {
			st.ctm = model.Matrix{v[0], v[1], v[2], v[3], v[4], v[5]}.Multiply(st.ctm)
		}
	case "BT":
		in.tm = model.Identity()
		in.tlm = model.Identity()
	case "Tf":
		if len(op.args) >= 2 {
			if key, ok := op.args[len(op.args)-2].(name); ok {
				st.font = fallbackFont
				if in.res != nil {
					if f := in.res.font(string(key)); f != nil {
						st.font = f
					}
				}
			}
			if size, ok := number(op.args[len(op.args)-1]); ok {
				st.size = size
			}
		}
	case "Tc":
		if v, ok := numbers(op.args, 1); ok {
			st.charSp = v[0]
		}
	case "Tw":
		if v, ok := numbers(op.args, 1); ok {
			st.wordSp = v[0]
		}
	case "Tz":
		if v, ok := numbers(op.args, 1); ok {
			st.scale = v[0] / 100
		}
	case "TL":
		if v, ok := numbers(op.args, 1); ok {
			st.leading = v[0]
		}
	case "Ts":
		if v, ok := numbers(op.args, 1); ok {
			st.rise = v[0]
		}
	case "Td":
		if v, ok := numbers(op.args, 2); ok {
			in.moveLine(v[0], v[1])
		}
	case "TD":
		if v, ok := numbers(op.args, 2); ok {
			st.leading = -v[1]
			in.moveLine(v[0], v[1])
		}
	case "Tm":
		if v, ok := numbers(op.args, 6); ok {
			in.tm = model.Matrix{v[0], v[1], v[2], v[3], v[4], v[5]}
			in.tlm = in.tm
		}
	case "T*":
		in.moveLine(0, -st.leading)
	case "Tj":
		if len(op.args) > 0 {
			if s, ok := op.args[len(op.args)-1].([]byte); ok {
				in.show(s)
			}
		}
	case "'":
		in.moveLine(0, -st.leading)
		if len(op.args) > 0 {
			if s, ok := op.args[len(op.args)-1].([]byte); ok {
				in.show(s)
			}
		}
	case "\"":
		if len(op.args) >= 3 {
			if v, ok := number(op.args[0]); ok {
				st.wordSp = v
			}
			if v, ok := number(op.args[1]); ok {
				st.charSp = v
			}
			in.moveLine(0, -st.leading)
			if s, ok := op.args[2].([]byte); ok {
				in.show(s)
			}
		}
	case "TJ":
		if len(op.args) > 0 {
			if arr, ok := op.args[len(op.args)-1].([]any); ok {
				in.showArray(arr)
			}
		}
	case "Do":
		if len(op.args) > 0 {
			if key, ok := op.args[len(op.args)-1].(name); ok {
				in.doForm(string(key))
			}
		}
	}
}

func (in *interpreter) moveLine(tx, ty float64) {
	in.tlm = model.Translate(tx, ty).Multiply(in.tlm)
	in.tm = in.tlm
}

// show draws a string, records it as a fragment and advances the text
// matrix.
func (in *interpreter) show(s []byte) {
	st := &in.state
	glyphs := st.font.decode(s)

	trm := in.tm.Multiply(st.ctm)
	start := trm.Transform(model.Point{X: 0, Y: st.rise})

	var sb strings.Builder
	advance := 0.0
	for _, g := range glyphs {
		sb.WriteString(g.text)
		adv := g.width*st.size + st.charSp
		if g.space {
			adv += st.wordSp
		}
		advance += adv * st.scale
	}

	end := trm.Transform(model.Point{X: advance, Y: st.rise})
	in.tm = model.Translate(advance, 0).Multiply(in.tm)

	text := sb.String()
	if text == "" {
		return
	}
	size := st.size * trm.ScaleY()
	if size == 0 {
		size = st.size
	}
	in.frags = append(in.frags, Fragment{
		Text:  text,
		X:     start.X,
		Y:     start.Y,
		Width: end.X - start.X,
		Size:  size,
	})
}

// showArray handles TJ: strings are shown, numbers move the text position
// back by thousandths of an em.
func (in *interpreter) showArray(arr []any) {
	for _, item := range arr {
		switch v := item.(type) {
		case []byte:
			in.show(v)
		case float64:
			tx := -v / 1000 * in.state.size * in.state.scale
			in.tm = model.Translate(tx, 0).Multiply(in.tm)
		}
	}
}

func (in *interpreter) doForm(key string) {
	if in.res == nil || in.depth >= maxFormDepth {
		return
	}
	content, matrix, res, ok := in.res.form(key)
	if !ok {
		return
	}
	if res == nil {
		res = in.res
	}

	sub := newInterpreter(res, matrix.Multiply(in.state.ctm))
	sub.depth = in.depth + 1
	sub.run(parseContent(content))
	in.frags = append(in.frags, sub.frags...)
}
