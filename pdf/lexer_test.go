package pdf

import (
	"reflect"
	"testing"
)

func TestParseContent(t *testing.T) {
	content := []byte(`% comment
BT /F1 12 Tf 72 720 Td (Hello \(x\)) Tj
[(A) -250 (B)] TJ
<48656C6C6F> Tj
(line\052) '
ET`)

	ops := parseContent(content)
	var names []string
	for _, op := range ops {
		names = append(names, op.op)
	}
	want := []string{"BT", "Tf", "Td", "Tj", "TJ", "Tj", "'", "ET"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("operators = %v, want %v", names, want)
	}

	if got := ops[1].args; len(got) != 2 || got[0] != name("F1") || got[1] != 12.0 {
		t.Errorf("Tf args = %#v", got)
	}
	if got := string(ops[3].args[0].([]byte)); got != "Hello (x)" {
		t.Errorf("Tj string = %q, want %q", got, "Hello (x)")
	}
	arr := ops[4].args[0].([]any)
	if len(arr) != 3 || string(arr[0].([]byte)) != "A" || arr[1] != -250.0 {
		t.Errorf("TJ array = %#v", arr)
	}
	if got := string(ops[5].args[0].([]byte)); got != "Hello" {
		t.Errorf("hex string = %q, want Hello", got)
	}
	if got := string(ops[6].args[0].([]byte)); got != "line*" {
		t.Errorf("octal escape = %q, want line*", got)
	}
}

func TestParseContentSkipsInlineImage(t *testing.T) {
	content := []byte("q BI /W 2 /H 1 /BPC 8 /CS /G ID \x00\xffEIx EI Q BT (after) Tj ET")
	ops := parseContent(content)

	var names []string
	for _, op := range ops {
		names = append(names, op.op)
	}
	want := []string{"q", "Q", "BT", "Tj", "ET"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("operators = %v, want %v", names, want)
	}
}

func TestParseContentMalformed(t *testing.T) {
	ops := parseContent([]byte("BT ) 1 2 Td (ok) Tj ET"))
	found := false
	for _, op := range ops {
		if op.op == "Tj" && string(op.args[0].([]byte)) == "ok" {
			found = true
		}
	}
	if !found {
		t.Errorf("Tj after malformed token not parsed: %#v", ops)
	}
}

func TestLexerNumbersAndNames(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"-.5", -0.5},
		{"+3", 3.0},
		{"1.2.3", 1.2},
		{"/A#20B", name("A B")},
		{"<</K 1>>", map[string]any{"K": 1.0}},
		{"<414>", []byte("A@")},
	}
	for _, tt := range tests {
		l := &lexer{data: []byte(tt.in)}
		got, err := l.operand()
		if err != nil {
			t.Errorf("operand(%q) error = %v", tt.in, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("operand(%q) = %#v, want %#v", tt.in, got, tt.want)
		}
	}
}
