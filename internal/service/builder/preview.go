package builder

import (
	"fmt"

	"grant-portal/internal/storage"
)

const PreviewRows = 10

type Preview struct {
	Columns []string
	Rows    [][]any
	Caption string
}

// NewPreview takes its columns from the keys of the first record and keeps at
// most PreviewRows rows. The caption always carries the full count.
func NewPreview(res *storage.ReportResult) Preview {
	p := Preview{Caption: fmt.Sprintf("Total Records: %d", len(res.Data))}

	if len(res.Data) == 0 {
		return p
	}

	p.Columns = res.Data[0].Columns

	n := min(len(res.Data), PreviewRows)
	for _, row := range res.Data[:n] {
		values := make([]any, len(p.Columns))
		for i, col := range p.Columns {
			values[i], _ = row.Get(col)
		}
		p.Rows = append(p.Rows, values)
	}

	return p
}
