package generate_excel

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"grant-portal/internal/constants"
	"grant-portal/internal/storage"
)

const sheet = "Report"

type ReportGenerator interface {
	Generate(ctx context.Context, spec storage.ReportSpecification) (*storage.ReportResult, error)
}

type GenerateExcelService struct {
	reports ReportGenerator
}

func NewGenerateService(reports ReportGenerator) *GenerateExcelService {
	return &GenerateExcelService{reports: reports}
}

func (g *GenerateExcelService) GenerateExcel(ctx context.Context, spec storage.ReportSpecification) ([]byte, error) {
	const op = "service.generate_excel.GenerateExcel"

	res, err := g.reports.Generate(ctx, spec)
	if err != nil {
		return nil, fmt.Errorf("%s: fetch data: %w", op, err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	columns := reportColumns(spec, res.Data)
	if len(columns) == 0 {
		columns = []string{"No data"}
	}

	for i, col := range columns {
		f.SetCellValue(sheet, cellName(i+1, 1), headerLabel(spec.DataSource, col))
	}
	f.SetCellStyle(sheet, "A1", cellName(len(columns), 1), headerStyle)

	for rowIdx, row := range res.Data {
		for colIdx, col := range columns {
			if v, ok := row.Get(col); ok {
				f.SetCellValue(sheet, cellName(colIdx+1, rowIdx+2), v)
			}
		}
	}

	f.SetCellValue(sheet, cellName(1, len(res.Data)+3), fmt.Sprintf("Total Records: %d", res.Total))

	f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
	})

	lastCol, _ := excelize.ColumnNumberToName(len(columns))
	f.SetColWidth(sheet, "A", lastCol, 20)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return buf.Bytes(), nil
}

// reportColumns takes the column order from the first row, falling back to
// the requested fields for an empty result. No fields means the whole catalog,
// as in the query.
func reportColumns(spec storage.ReportSpecification, rows []storage.ReportRow) []string {
	if len(rows) > 0 {
		return rows[0].Columns
	}
	if spec.GroupBy != "" {
		return []string{spec.GroupBy, "count"}
	}
	if len(spec.Fields) > 0 {
		return spec.Fields
	}

	var cols []string
	for _, f := range constants.Catalog(spec.DataSource) {
		cols = append(cols, f.ID)
	}
	return cols
}

func headerLabel(source storage.DataSource, col string) string {
	if f, ok := constants.LookupField(source, col); ok {
		return f.Label
	}
	if col == "count" {
		return "Count"
	}
	return col
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
