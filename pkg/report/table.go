package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/lehigh-university-libraries/funsd-eda/pkg/stats"
)

// LayoutHeader is the header row of the layout variance table
var LayoutHeader = []string{
	"Document ID",
	"Original Width (W)",
	"Original Height (H)",
	"Aspect Ratio (W/H)",
}

// CentersHeader is the header row of the entity centers table
var CentersHeader = []string{"Document ID", "Label", "X", "Y"}

const layoutSheet = "Layout Variance"

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func layoutRow(r stats.LayoutRecord) []string {
	return []string{r.DocumentID, strconv.Itoa(r.Width), strconv.Itoa(r.Height), formatFloat(r.AspectRatio)}
}

// WriteLayoutCSV writes the layout table with a header row, one record per line, in input order
func WriteLayoutCSV(w io.Writer, records []stats.LayoutRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(LayoutHeader); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write(layoutRow(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCentersCSV writes one line per entity center
func WriteCentersCSV(w io.Writer, centers []stats.Center) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CentersHeader); err != nil {
		return err
	}
	for _, c := range centers {
		if err := cw.Write([]string{c.DocumentID, c.Label, formatFloat(c.X), formatFloat(c.Y)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteLayoutXLSX writes the layout table as an XLSX workbook with the width range below it
func WriteLayoutXLSX(w io.Writer, report stats.LayoutReport) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), layoutSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	write := func(col, row int, v any) error {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return err
		}
		return f.SetCellValue(layoutSheet, cell, v)
	}

	for i, h := range LayoutHeader {
		if err := write(i+1, 1, h); err != nil {
			return err
		}
	}

	row := 2
	for _, r := range report.Records {
		for col, v := range []any{r.DocumentID, r.Width, r.Height, r.AspectRatio} {
			if err := write(col+1, row, v); err != nil {
				return err
			}
		}
		row++
	}

	// Leave a blank row between the table and the summary
	row++
	if err := write(1, row, "Min Width"); err != nil {
		return err
	}
	if err := write(2, row, report.MinWidth); err != nil {
		return err
	}
	if err := write(1, row+1, "Max Width"); err != nil {
		return err
	}
	if err := write(2, row+1, report.MaxWidth); err != nil {
		return err
	}

	if err := f.SetColWidth(layoutSheet, "A", "A", 24); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}
	if err := f.SetColWidth(layoutSheet, "B", "D", 20); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("xlsx write: %w", err)
	}
	return nil
}

// SaveFile creates path and hands it to write
func SaveFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return write(f)
}
