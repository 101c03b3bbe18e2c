package services

import (
	"bytes"
	"context"

	"github.com/xuri/excelize/v2"

	"github.com/GregMSThompson/ifsc-finder/internal/directory"
	"github.com/GregMSThompson/ifsc-finder/internal/errs"
	"github.com/GregMSThompson/ifsc-finder/pkg/logger"
)

const (
	exportSheet     = "Directory"
	msgExportFailed = "Failed to export directory"
)

var exportHeader = []string{"Bank", "State", "Branch"}

type exportService struct {
	entries func() []directory.Entry
}

func NewExportService() *exportService {
	return &exportService{entries: directory.Entries}
}

// ExportDirectory renders every directory row into an xlsx workbook.
func (s *exportService) ExportDirectory(ctx context.Context) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, errs.NewInternalError("export_directory", msgExportFailed, err)
	}

	if err := f.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		return nil, errs.NewInternalError("export_directory", msgExportFailed, err)
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, errs.NewInternalError("export_directory", msgExportFailed, err)
	}
	if err := f.SetCellStyle(exportSheet, "A1", "C1", style); err != nil {
		return nil, errs.NewInternalError("export_directory", msgExportFailed, err)
	}

	entries := s.entries()
	widths := make([]int, len(exportHeader))
	for i, h := range exportHeader {
		widths[i] = len(h)
	}
	for i, e := range entries {
		row := []string{e.Bank, e.State, e.Branch}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, errs.NewInternalError("export_directory", msgExportFailed, err)
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, errs.NewInternalError("export_directory", msgExportFailed, err)
		}
		for j, v := range row {
			widths[j] = max(widths[j], len(v))
		}
	}

	// approximate auto-fit
	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, errs.NewInternalError("export_directory", msgExportFailed, err)
		}
		if err := f.SetColWidth(exportSheet, col, col, float64(max(w+4, 12))); err != nil {
			return nil, errs.NewInternalError("export_directory", msgExportFailed, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, errs.NewInternalError("export_directory", msgExportFailed, err)
	}

	logger.FromContext(ctx).Info("directory exported", "rows", len(entries), "bytes", buf.Len())
	return buf.Bytes(), nil
}
