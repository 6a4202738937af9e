package docx

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/tsawler/vlier/model"
)

// Paragraph is a body paragraph with its resolved style.
type Paragraph struct {
	Text      string
	StyleID   string
	StyleName string
	IsHeading bool
	Level     int // heading level 1-9, 0 for body text
	Links     []model.Link
}

// Block is one body element: exactly one of Paragraph or Table is set.
type Block struct {
	Paragraph *Paragraph
	Table     *model.Table
}

var fieldHyperlinkRe = regexp.MustCompile(`HYPERLINK\s+"([^"]+)"`)

// bodyParser walks WordprocessingML with a token decoder so paragraphs and
// tables keep their relative order.
type bodyParser struct {
	r      *Reader
	dec    *xml.Decoder
	tables int
}

// parseBlocksFrom parses the children of the first element named container.
func (r *Reader) parseBlocksFrom(data []byte, container string) ([]Block, error) {
	p := &bodyParser{r: r, dec: xml.NewDecoder(bytes.NewReader(data))}
	for {
		tok, err := p.dec.Token()
		if err == io.EOF {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("decoding XML: %w", err)
		}
		if se, ok := tok.(xml.StartElement); ok && se.Name.Local == container {
			return p.parseBlocks()
		}
	}
}

// parseBlocks reads block-level content up to the end of the current
// element. Content controls and custom XML wrappers are transparent.
func (p *bodyParser) parseBlocks() ([]Block, error) {
	var blocks []Block
	depth := 1
	for depth > 0 {
		tok, err := p.dec.Token()
		if err != nil {
			return blocks, fmt.Errorf("decoding XML: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				para, err := p.parseParagraph()
				if err != nil {
					return blocks, err
				}
				blocks = append(blocks, Block{Paragraph: para})
			case "tbl":
				raw, err := p.parseTable()
				if err != nil {
					return blocks, err
				}
				tbl := buildTable(raw, p.tables)
				p.tables++
				blocks = append(blocks, Block{Table: tbl})
			case "sdt", "sdtContent", "customXml", "smartTag":
				depth++
			default:
				if err := p.dec.Skip(); err != nil {
					return blocks, err
				}
			}
		case xml.EndElement:
			depth--
		}
	}
	return blocks, nil
}

// parseParagraph reads a w:p element whose start tag was just consumed.
func (p *bodyParser) parseParagraph() (*Paragraph, error) {
	para := &Paragraph{}
	var sb strings.Builder

	type openLink struct {
		start int
		url   string
	}
	var links []openLink

	depth := 1
	for depth > 0 {
		tok, err := p.dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decoding paragraph: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				var s string
				if err := p.dec.DecodeElement(&s, &t); err != nil {
					return nil, err
				}
				sb.WriteString(s)
			case "tab", "ptab":
				sb.WriteString("\t")
				depth++
			case "br", "cr":
				sb.WriteString("\n")
				depth++
			case "noBreakHyphen", "softHyphen":
				if t.Name.Local == "noBreakHyphen" {
					sb.WriteString("-")
				}
				depth++
			case "pStyle":
				para.StyleID = attr(t, "val")
				depth++
			case "hyperlink":
				url := p.r.rels[attr(t, "id")]
				links = append(links, openLink{start: sb.Len(), url: url})
				depth++
			case "instrText":
				var s string
				if err := p.dec.DecodeElement(&s, &t); err != nil {
					return nil, err
				}
				if m := fieldHyperlinkRe.FindStringSubmatch(s); m != nil {
					para.Links = append(para.Links, model.Link{URL: m[1]})
				}
			case "fldSimple":
				if m := fieldHyperlinkRe.FindStringSubmatch(attr(t, "instr")); m != nil {
					para.Links = append(para.Links, model.Link{URL: m[1]})
				}
				depth++
			case "del", "delText", "Fallback", "rPr", "tabs", "sectPr", "footnoteReference", "commentReference":
				if err := p.dec.Skip(); err != nil {
					return nil, err
				}
			default:
				depth++
			}
		case xml.EndElement:
			depth--
			if t.Name.Local == "hyperlink" && len(links) > 0 {
				l := links[len(links)-1]
				links = links[:len(links)-1]
				if l.url != "" {
					text := strings.TrimSpace(sb.String()[l.start:])
					para.Links = append(para.Links, model.Link{Text: text, URL: l.url})
				}
			}
		}
	}

	para.Text = sb.String()
	para.IsHeading, para.Level = p.r.isHeadingStyle(para.StyleID)
	para.StyleName = p.r.styleName(para.StyleID)
	return para, nil
}

// rawTable is a w:tbl before grid expansion.
type rawTable struct {
	rows []rawRow
}

type rawRow struct {
	gridBefore int
	cells      []rawCell
}

type rawCell struct {
	text     string
	gridSpan int
	vMerge   string // "", "restart" or "continue"
	hMerge   string
	links    []model.Link
}

// parseTable reads a w:tbl element whose start tag was just consumed.
func (p *bodyParser) parseTable() (rawTable, error) {
	var tbl rawTable
	depth := 1
	for depth > 0 {
		tok, err := p.dec.Token()
		if err != nil {
			return tbl, fmt.Errorf("decoding table: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tr":
				tbl.rows = append(tbl.rows, rawRow{})
				depth++
			case "trPr", "sdt", "sdtContent", "customXml":
				depth++
			case "gridBefore":
				if n := len(tbl.rows); n > 0 {
					tbl.rows[n-1].gridBefore, _ = strconv.Atoi(attr(t, "val"))
				}
				depth++
			case "tc":
				c, err := p.parseCell()
				if err != nil {
					return tbl, err
				}
				if n := len(tbl.rows); n > 0 {
					tbl.rows[n-1].cells = append(tbl.rows[n-1].cells, c)
				}
			default:
				if err := p.dec.Skip(); err != nil {
					return tbl, err
				}
			}
		case xml.EndElement:
			depth--
		}
	}
	return tbl, nil
}

// parseCell reads a w:tc element whose start tag was just consumed. Nested
// tables are flattened into the cell text, one line per row.
func (p *bodyParser) parseCell() (rawCell, error) {
	c := rawCell{gridSpan: 1}
	var lines []string

	depth := 1
	for depth > 0 {
		tok, err := p.dec.Token()
		if err != nil {
			return c, fmt.Errorf("decoding cell: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tcPr", "sdt", "sdtContent", "customXml":
				depth++
			case "gridSpan":
				if n, err := strconv.Atoi(attr(t, "val")); err == nil && n > 1 {
					c.gridSpan = n
				}
				depth++
			case "vMerge":
				c.vMerge = mergeValue(t)
				depth++
			case "hMerge":
				c.hMerge = mergeValue(t)
				depth++
			case "p":
				para, err := p.parseParagraph()
				if err != nil {
					return c, err
				}
				lines = append(lines, para.Text)
				c.links = append(c.links, para.Links...)
			case "tbl":
				raw, err := p.parseTable()
				if err != nil {
					return c, err
				}
				nested := buildTable(raw, -1)
				seen := make(map[model.CellRef]bool)
				for i := range nested.Rows {
					if t := strings.Join(uniqueTexts(nested.Rows[i]), " "); t != "" {
						lines = append(lines, t)
					}
					for _, nc := range nested.Rows[i] {
						if !seen[nc.Origin] {
							seen[nc.Origin] = true
							c.links = append(c.links, nc.Links...)
						}
					}
				}
			default:
				if err := p.dec.Skip(); err != nil {
					return c, err
				}
			}
		case xml.EndElement:
			depth--
		}
	}

	c.text = strings.TrimSpace(strings.Join(lines, "\n"))
	return c, nil
}

// mergeValue returns "restart" or "continue"; a merge element without a
// value continues the merge.
func mergeValue(se xml.StartElement) string {
	if v := attr(se, "val"); v == "restart" {
		return "restart"
	}
	return "continue"
}

// attr returns the value of the attribute with the given local name.
func attr(se xml.StartElement, local string) string {
	for _, a := range se.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}
