package cli

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"luxdash/internal/engine"
	"luxdash/internal/models"
)

func newReportCommand() *cobra.Command {
	var sf selectionFlags
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print KPIs, filtered tables and insights",
		Example: `  luxdash report
  luxdash report --models "Audi A8,Lexus LS" --start 2024-01-01 --end 2025-12-31`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := fromContext(cmd.Context())
			s, err := a.newSession()
			if err != nil {
				return err
			}
			sel, err := sf.selection(cmd, s)
			if err != nil {
				return err
			}
			data, err := s.Evaluate(sel)
			if err != nil {
				return err
			}
			f := engine.NewFormatter(a.cfg.Format.Locale, a.cfg.Format.CurrencySymbol, a.cfg.Format.Precision)
			renderReport(cmd.OutOrStdout(), data, f)
			return nil
		},
	}
	sf.register(cmd)
	return cmd
}

func newTable(w io.Writer, title string) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle(title)
	return t
}

func renderReport(w io.Writer, d *models.DashboardData, f *engine.Formatter) {
	kt := newTable(w, "KPIs")
	kt.AppendHeader(table.Row{"Indicador", "Valor", "Variação"})
	for _, c := range d.KPIs.Cards {
		kt.AppendRow(table.Row{c.Label, c.Value, c.Delta})
	}
	kt.Render()

	mt := newTable(w, "Análise por Modelo de Veículo")
	mt.AppendHeader(table.Row{"Modelo", "Vendas", "Lucro", "Custo"})
	for _, r := range d.Models {
		mt.AppendRow(table.Row{r.Model, f.Int(r.UnitsSold), f.Currency(r.Profit), f.Currency(r.Cost)})
	}
	if len(d.Models) == 0 {
		mt.AppendRow(table.Row{"Nenhum dado para os modelos selecionados."})
	}
	mt.Render()

	qt := newTable(w, "Vendas e Novos Clientes por Trimestre")
	qt.AppendHeader(table.Row{"Data", "Vendas", "Clientes"})
	for _, r := range d.Quarters {
		qt.AppendRow(table.Row{r.Date.Format(engine.DateLayout), r.UnitsSold, r.NewCustomers})
	}
	qt.AppendFooter(table.Row{"Total", engine.TotalUnitsSold(d.Quarters), ""})
	qt.Render()

	rt := newTable(w, "Desempenho por Região do Brasil")
	rt.AppendHeader(table.Row{"Região", "Vendas", "Satisfação", "Lat", "Lon"})
	for _, r := range d.Regions {
		rt.AppendRow(table.Row{r.Region, f.Int(r.UnitsSold), f.Decimal(r.Satisfaction), r.Latitude, r.Longitude})
	}
	rt.Render()

	fmt.Fprintln(w, "Insights Gerados Automaticamente")
	for _, s := range d.Insights {
		fmt.Fprintln(w, "  "+s)
	}
	fmt.Fprintln(w, d.Caption)
}
