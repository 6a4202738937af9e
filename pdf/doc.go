// Package pdf reads the text layer of PDF study guides.
//
// Documents are opened with pdfcpu. Page content streams are interpreted
// here: text-showing operators become positioned fragments, fragments are
// grouped into lines and spans, and a header line defines the column grid
// used to rebuild schedule tables. Pages without a text layer can be handed
// to the ocr package through Document.Images.
package pdf
