package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"meeting-task-converter/internal/task"
)

// csvHeader is the export header row. Column order matches the task fields
// users see in the list view.
var csvHeader = []string{"Task", "Assigned To", "Due Date/Time", "Priority"}

// ExportCSV renders the current task list as CSV.
// Embedded commas and quotes are escaped by the writer and survive a
// round-trip through any standard CSV reader.
func (uc *implUseCase) ExportCSV(ctx context.Context) (task.Export, error) {
	tasks, err := uc.repo.GetAllTasks(ctx)
	if err != nil {
		return task.Export{}, fmt.Errorf("export csv: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return task.Export{}, fmt.Errorf("export csv: write header: %w", err)
	}
	for _, t := range tasks {
		row := []string{t.Description, t.Assignee, t.Deadline, string(t.Priority)}
		if err := w.Write(row); err != nil {
			return task.Export{}, fmt.Errorf("export csv: write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return task.Export{}, fmt.Errorf("export csv: flush: %w", err)
	}

	return task.Export{
		FileName:    exportFileName("csv"),
		ContentType: "text/csv",
		Data:        buf.Bytes(),
	}, nil
}

// ExportXLSX renders the current task list as an Excel workbook.
func (uc *implUseCase) ExportXLSX(ctx context.Context) (task.Export, error) {
	tasks, err := uc.repo.GetAllTasks(ctx)
	if err != nil {
		return task.Export{}, fmt.Errorf("export xlsx: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	header := make([]any, len(csvHeader))
	for i, h := range csvHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return task.Export{}, fmt.Errorf("export xlsx: write header: %w", err)
	}

	for i, t := range tasks {
		cell := fmt.Sprintf("A%d", i+2)
		row := []any{t.Description, t.Assignee, t.Deadline, string(t.Priority)}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return task.Export{}, fmt.Errorf("export xlsx: write row: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return task.Export{}, fmt.Errorf("export xlsx: render: %w", err)
	}

	return task.Export{
		FileName:    exportFileName("xlsx"),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        buf.Bytes(),
	}, nil
}

func exportFileName(ext string) string {
	return fmt.Sprintf("tasks-%s.%s", time.Now().Format("2006-01-02"), ext)
}
