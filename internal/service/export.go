package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/tsawler/vlier/model"
)

const exportSheet = "Planning"

var exportColumns = []struct {
	title string
	width float64
	value func(r model.DocRow) any
}{
	{"Week", 8, func(r model.DocRow) any { return weekLabel(r) }},
	{"Datum", 12, func(r model.DocRow) any { return r.Datum }},
	{"Datum eind", 12, func(r model.DocRow) any { return r.DatumEind }},
	{"Les", 8, func(r model.DocRow) any { return r.Les }},
	{"Onderwerp", 32, func(r model.DocRow) any { return r.Onderwerp }},
	{"Leerdoelen", 32, func(r model.DocRow) any { return strings.Join(r.Leerdoelen, "\n") }},
	{"Huiswerk", 28, func(r model.DocRow) any { return r.Huiswerk }},
	{"Opdracht", 24, func(r model.DocRow) any { return r.Opdracht }},
	{"Inleverdatum", 12, func(r model.DocRow) any { return r.Inleverdatum }},
	{"Toets", 18, func(r model.DocRow) any { return toetsLabel(r.Toets) }},
	{"Bronnen", 32, func(r model.DocRow) any { return bronnenLabel(r.Bronnen) }},
	{"Notities", 24, func(r model.DocRow) any { return r.Notities }},
	{"Actief", 8, func(r model.DocRow) any {
		if r.IsEnabled() {
			return "ja"
		}
		return "nee"
	}},
}

// Export renders a stored version as an xlsx workbook and returns it with
// a suggested file name.
func (s *Service) Export(ctx context.Context, guideID string, versionID int) (*bytes.Buffer, string, error) {
	v, err := s.Version(ctx, guideID, versionID)
	if err != nil {
		return nil, "", err
	}
	meta := v.Meta.Data()

	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, "", fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	_ = f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	wrapStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "top", WrapText: true},
	})
	disabledStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Color: "#999999", Strike: true},
		Alignment: &excelize.Alignment{Vertical: "top", WrapText: true},
	})

	last, _ := excelize.ColumnNumberToName(len(exportColumns))
	_ = f.SetCellValue(exportSheet, "A1", title(meta))
	_ = f.MergeCell(exportSheet, "A1", last+"1")
	_ = f.SetCellStyle(exportSheet, "A1", "A1", headerStyle)

	for i, col := range exportColumns {
		name, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetColWidth(exportSheet, name, name, col.width)
		_ = f.SetCellValue(exportSheet, name+"2", col.title)
	}
	_ = f.SetCellStyle(exportSheet, "A2", last+"2", headerStyle)

	for i, r := range v.Rows {
		row := i + 3
		for j, col := range exportColumns {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			_ = f.SetCellValue(exportSheet, cell, col.value(r))
		}
		style := wrapStyle
		if !r.IsEnabled() {
			style = disabledStyle
		}
		first, _ := excelize.CoordinatesToCellName(1, row)
		end, _ := excelize.CoordinatesToCellName(len(exportColumns), row)
		_ = f.SetCellStyle(exportSheet, first, end, style)
	}
	_ = f.SetPanes(exportSheet, &excelize.Panes{Freeze: true, YSplit: 2, TopLeftCell: "A3", ActivePane: "bottomLeft"})

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.log.Error("writing workbook", zap.String("guide", guideID), zap.Error(err))
		return nil, "", fmt.Errorf("write workbook: %w", err)
	}
	return buf, exportName(meta, v.VersionID), nil
}

func title(m model.DocMeta) string {
	parts := []string{m.Vak}
	if m.Leerjaar != "" || m.Niveau != "" {
		parts = append(parts, strings.TrimSpace(m.Leerjaar+" "+string(m.Niveau)))
	}
	if m.Periode > 0 {
		parts = append(parts, fmt.Sprintf("periode %d", m.Periode))
	}
	if m.Schooljaar != "" {
		parts = append(parts, m.Schooljaar)
	}
	return strings.Join(parts, " - ")
}

func exportName(m model.DocMeta, version int) string {
	name := strings.Join(strings.Fields(m.Vak), "_")
	if name == "" {
		name = model.UnknownVak
	}
	return fmt.Sprintf("%s_%s%s_P%d_v%d.xlsx", name, m.Leerjaar, m.Niveau, m.Periode, version)
}

func weekLabel(r model.DocRow) string {
	if r.WeekLabel != "" {
		return r.WeekLabel
	}
	weeks := r.AllWeeks()
	s := make([]string, len(weeks))
	for i, w := range weeks {
		s[i] = fmt.Sprint(w)
	}
	return strings.Join(s, "/")
}

func toetsLabel(t *model.Toets) string {
	if t.IsZero() {
		return ""
	}
	var parts []string
	for _, p := range []string{t.Type, t.Weging, t.Herkansing} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

func bronnenLabel(bronnen []model.Bron) string {
	lines := make([]string, 0, len(bronnen))
	for _, b := range bronnen {
		switch {
		case b.Title != "" && b.URL != "":
			lines = append(lines, b.Title+" ("+b.URL+")")
		case b.URL != "":
			lines = append(lines, b.URL)
		default:
			lines = append(lines, b.Title)
		}
	}
	return strings.Join(lines, "\n")
}
