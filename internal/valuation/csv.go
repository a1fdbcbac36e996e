package valuation

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
)

// Export file names expected by the dashboard's download action.
const (
	ExportFileName      = "flex_revenue.csv"
	ExportFileNameCosts = "flex_revenue_costs.csv"
)

// FileName returns the export name for the variant of the result.
func FileName(includeCosts bool) string {
	if includeCosts {
		return ExportFileNameCosts
	}
	return ExportFileName
}

// WriteTable serializes the projection as CSV. Market columns follow the
// selection order recorded in the result; the cost columns are appended only
// in the extended variant.
func WriteTable(w io.Writer, res *Result) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	withCosts := res.HasCosts()

	header := make([]string, 0, len(res.Markets)+6)
	header = append(header, "year")
	for _, m := range res.Markets {
		header = append(header, string(m))
	}
	header = append(header, "total")
	if withCosts {
		header = append(header, "baseline_cost", "optimized_cost", "savings", "savings_pct")
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, r := range res.Rows {
		row := make([]string, 0, len(header))
		row = append(row, strconv.Itoa(r.Year))
		for _, m := range res.Markets {
			row = append(row, fmtValue(r.Revenue[m]))
		}
		row = append(row, fmtValue(r.Total))
		if withCosts {
			row = append(row,
				fmtValue(r.Costs.BaselineCost),
				fmtValue(r.Costs.OptimizedCost),
				fmtValue(r.Costs.Savings),
				fmtValue(r.Costs.SavingsPct),
			)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	return cw.Error()
}

// WriteTableCSV writes the projection to a file on disk.
func WriteTableCSV(path string, res *Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteTable(f, res)
}

// All stored values are already rounded to 2 decimals; format them the same
// way for the file.
func fmtValue(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
