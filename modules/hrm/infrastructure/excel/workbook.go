package excel

import (
	"bytes"
	"fmt"
	"io"

	gerrors "github.com/go-faster/errors"
	"github.com/xuri/excelize/v2"

	"github.com/avetra/hrdesk/pkg/serrors"
)

// BuildWorkbook renders a single-sheet workbook with a header row
// followed by the data rows.
func BuildWorkbook(sheet string, headers []string, rows [][]any) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, gerrors.Wrap(err, "failed to create sheet")
	}
	f.SetActiveSheet(index)
	if sheet != "Sheet1" {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return nil, gerrors.Wrap(err, "failed to drop default sheet")
		}
	}

	header := make([]any, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, gerrors.Wrap(err, "failed to write header row")
	}
	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, gerrors.Wrap(err, "failed to write data row")
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, gerrors.Wrap(err, "failed to serialize workbook")
	}
	return buf.Bytes(), nil
}

// ParseWorkbook reads the first sheet of a workbook and returns its
// data rows, header excluded. Malformed content is a validation
// failure, not a fault.
func ParseWorkbook(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, serrors.ErrValidation.WithMessage("malformed workbook")
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, serrors.ErrValidation.WithMessage("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, serrors.ErrValidation.WithMessage("unreadable workbook")
	}
	if len(rows) <= 1 {
		return nil, nil
	}
	return rows[1:], nil
}
