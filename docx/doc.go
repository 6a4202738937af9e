// Package docx reads the body of Office Open XML (.docx) documents as an
// ordered sequence of paragraphs and tables.
//
// Study guides mix free paragraphs ("Planning Periode 2") with schedule
// tables, and the meaning of a table depends on the paragraphs before it.
// [Reader.Blocks] therefore keeps document order, unlike a plain
// unmarshal of word/document.xml which collects paragraphs and tables into
// separate lists.
//
// # Tables
//
// Tables are returned as rectangular [model.Table] grids. A cell spanning
// several grid columns (w:gridSpan) or continuing a vertical merge
// (w:vMerge) is repeated at every position it covers, and every position
// records the [model.CellRef] of the physical cell it came from.
//
// # Headers and footers
//
// Text of word/header*.xml and word/footer*.xml parts is available through
// [Reader.HeaderText] and [Reader.FooterText]; study guides often keep the
// subject and school year there.
//
// Basic usage:
//
//	r, err := docx.Open("studiewijzer.docx")
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//
//	for _, b := range r.Blocks() {
//	    if b.Table != nil {
//	        fmt.Println(b.Table.GetText())
//	    }
//	}
package docx
