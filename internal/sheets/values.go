package sheets

import (
	"fmt"

	"github.com/sheetbridge/sheetbridge/internal/tabular"
)

// fromValues converts a Sheets API value grid to a snapshot. The API omits
// trailing empty cells, so rows shorter than the header are padded to the
// header width.
func fromValues(values [][]interface{}) tabular.Snapshot {
	width := 0
	if len(values) > 0 {
		width = len(values[0])
	}

	snapshot := make(tabular.Snapshot, len(values))
	for i, row := range values {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = fmt.Sprintf("%v", v)
		}

		for len(cells) < width {
			cells = append(cells, "")
		}

		snapshot[i] = cells
	}

	return snapshot
}

func toValues(snapshot tabular.Snapshot) [][]interface{} {
	values := make([][]interface{}, len(snapshot))
	for i, row := range snapshot {
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}

		values[i] = cells
	}

	return values
}
