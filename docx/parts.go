package docx

import "encoding/xml"

// relationshipsXML represents word/_rels/document.xml.rels.
type relationshipsXML struct {
	XMLName       xml.Name          `xml:"Relationships"`
	Relationships []relationshipXML `xml:"Relationship"`
}

// relationshipXML is a single relationship entry.
type relationshipXML struct {
	ID         string `xml:"Id,attr"`
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr"`
}

// stylesXML represents word/styles.xml. Only what heading detection needs
// is decoded.
type stylesXML struct {
	XMLName xml.Name      `xml:"styles"`
	Styles  []styleDefXML `xml:"style"`
}

type styleDefXML struct {
	Type    string `xml:"type,attr"`
	StyleID string `xml:"styleId,attr"`
	Name    valXML `xml:"name"`
	BasedOn valXML `xml:"basedOn"`
	PPr     pPrXML `xml:"pPr"`
}

type pPrXML struct {
	OutlineLvl *valXML `xml:"outlineLvl"`
}

type valXML struct {
	Val string `xml:"val,attr"`
}

// corePropertiesXML represents docProps/core.xml.
type corePropertiesXML struct {
	XMLName xml.Name `xml:"coreProperties"`
	Title   string   `xml:"title"`
	Subject string   `xml:"subject"`
}
