// Package export renders an evaluated dashboard as an XLSX workbook.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"luxdash/internal/models"
)

const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const (
	SheetModels   = "Modelos"
	SheetQuarters = "Trimestres"
	SheetRegions  = "Regiões"
	SheetKPIs     = "KPIs"
	SheetInsights = "Insights"
)

type sheet struct {
	name    string
	headers []string
	rows    [][]interface{}
}

// FileName is derived from the session and generation time.
func FileName(d *models.DashboardData) string {
	return fmt.Sprintf("dashboard-%s.xlsx", d.GeneratedAt.Format("20060102-150405"))
}

// Write encodes the dashboard's filtered tables, KPIs and insights.
func Write(w io.Writer, d *models.DashboardData) error {
	f, err := Build(d)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// Build assembles the workbook in memory.
func Build(d *models.DashboardData) (*excelize.File, error) {
	f := excelize.NewFile()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D3D3D3"}, Pattern: 1},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("header style: %w", err)
	}

	for i, s := range sheets(d) {
		idx, err := f.NewSheet(s.name)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("sheet %s: %w", s.name, err)
		}
		if i == 0 {
			f.SetActiveSheet(idx)
		}
		if err := writeSheet(f, s, headerStyle); err != nil {
			f.Close()
			return nil, fmt.Errorf("sheet %s: %w", s.name, err)
		}
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func writeSheet(f *excelize.File, s sheet, style int) error {
	header := make([]interface{}, len(s.headers))
	for i, h := range s.headers {
		header[i] = h
	}
	if err := f.SetSheetRow(s.name, "A1", &header); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(s.headers), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(s.name, "A1", last, style); err != nil {
		return err
	}

	for i, row := range s.rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(s.name, cell, &row); err != nil {
			return err
		}
	}

	lastCol, err := excelize.ColumnNumberToName(len(s.headers))
	if err != nil {
		return err
	}
	return f.SetColWidth(s.name, "A", lastCol, 22)
}

func sheets(d *models.DashboardData) []sheet {
	ms := sheet{name: SheetModels, headers: []string{"Modelo", "Vendas", "Lucro", "Custo"}}
	for _, r := range d.Models {
		ms.rows = append(ms.rows, []interface{}{r.Model, r.UnitsSold, r.Profit, r.Cost})
	}

	qs := sheet{name: SheetQuarters, headers: []string{"Data", "Vendas", "Clientes"}}
	for _, r := range d.Quarters {
		qs.rows = append(qs.rows, []interface{}{r.Date.Format("2006-01-02"), r.UnitsSold, r.NewCustomers})
	}

	rs := sheet{name: SheetRegions, headers: []string{"Região", "Vendas", "Satisfação", "Lat", "Lon"}}
	for _, r := range d.Regions {
		rs.rows = append(rs.rows, []interface{}{r.Region, r.UnitsSold, r.Satisfaction, r.Latitude, r.Longitude})
	}

	ks := sheet{name: SheetKPIs, headers: []string{"Indicador", "Valor", "Variação"}}
	for _, c := range d.KPIs.Cards {
		ks.rows = append(ks.rows, []interface{}{c.Label, c.Value, c.Delta})
	}

	is := sheet{name: SheetInsights, headers: []string{"Insight"}}
	for _, text := range d.Insights {
		is.rows = append(is.rows, []interface{}{text})
	}
	is.rows = append(is.rows, []interface{}{d.Caption})

	return []sheet{ms, qs, rs, ks, is}
}
