package graph

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/sheetbridge/sheetbridge/internal/tabular"
)

// decodeWorkbook extracts the named worksheet from an xlsx payload. The
// xlsx format drops trailing empty cells, so rows shorter than the header
// are padded to the header width.
func decodeWorkbook(b []byte, worksheet string) (tabular.Snapshot, error) {
	workbook, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("invalid workbook (%v)", err)
	}

	defer workbook.Close()

	rows, err := workbook.GetRows(worksheet)
	if err != nil {
		return nil, fmt.Errorf("unable to read worksheet '%s' (%v)", worksheet, err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("no data in worksheet '%s'", worksheet)
	}

	width := len(rows[0])

	snapshot := make(tabular.Snapshot, len(rows))
	for i, row := range rows {
		cells := make([]string, len(row))
		copy(cells, row)

		for len(cells) < width {
			cells = append(cells, "")
		}

		snapshot[i] = cells
	}

	return snapshot, nil
}

// encodeWorkbook builds an xlsx payload containing the snapshot as the
// named worksheet.
func encodeWorkbook(snapshot tabular.Snapshot, worksheet string) ([]byte, error) {
	workbook := excelize.NewFile()

	defer workbook.Close()

	if worksheet != "Sheet1" {
		if err := workbook.SetSheetName("Sheet1", worksheet); err != nil {
			return nil, fmt.Errorf("unable to create worksheet '%s' (%v)", worksheet, err)
		}
	}

	for i, row := range snapshot {
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}

		ref, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}

		if err := workbook.SetSheetRow(worksheet, ref, &cells); err != nil {
			return nil, fmt.Errorf("unable to write worksheet row %d (%v)", i+1, err)
		}
	}

	buffer, err := workbook.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("unable to encode workbook (%v)", err)
	}

	return buffer.Bytes(), nil
}
