// Command dialtone batch-formats phone columns in CSV sheets.
//
// A directory of .csv files is treated as a workbook. With -sheet a single
// sheet is formatted, otherwise every sheet in the directory. Sheets where
// no header classifies as phone-related are skipped, not failed.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"

	fmtservice "dialtone/internal/formatter/service"
	fmtvalidator "dialtone/internal/formatter/validator"
	apperrors "dialtone/pkg/errors"
	"dialtone/pkg/logger"
	"dialtone/pkg/model"
	"dialtone/pkg/tabular"
)

func main() {
	var (
		dir       = flag.String("dir", ".", "directory of .csv sheets")
		sheetName = flag.String("sheet", "", "format only this sheet (default: all sheets)")
		style     = flag.String("style", "digits", "output style: digits, dash, paren, e164")
		headerRow = flag.Int("header-row", 0, "zero-based index of the header row")
		verbose   = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := logger.INFO
	if *verbose {
		level = logger.DEBUG
	}
	log := logger.New(logger.Config{
		Level:   level,
		Format:  logger.TEXT,
		Service: "dialtone",
	})

	svc := fmtservice.NewFormatterService(fmtvalidator.NewOptionsValidator(), nil, log)
	store := tabular.NewCSVStore(*dir, *headerRow)
	opts := model.Options{Style: *style, HeaderRow: *headerRow}

	ctx := context.Background()

	reports, err := format(ctx, svc, store, *sheetName, opts)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Code == apperrors.CodeNoPhoneColumns {
			// Informational: nothing matched, nothing was changed.
			fmt.Println(appErr.Message)
			return
		}
		log.Fatal("Formatting failed", "error", err)
	}

	for _, report := range reports {
		fmt.Printf("%s: %d column(s), %d cell(s)\n", report.Sheet, len(report.Columns), report.Cells())
		for _, col := range report.Columns {
			fmt.Printf("  %-20s formatted=%d invalid=%d empty=%d\n",
				col.Header, col.Formatted, col.Invalid, col.Empty)
		}
	}
	if len(reports) == 0 {
		fmt.Println("no sheets found")
	}
}

func format(ctx context.Context, svc fmtservice.FormatterService, store tabular.Store, sheetName string, opts model.Options) ([]*model.Report, error) {
	if sheetName == "" {
		return svc.FormatAllSheets(ctx, store, opts)
	}

	sheet, err := store.Sheet(ctx, sheetName)
	if err != nil {
		return nil, err
	}
	report, err := svc.FormatSheet(ctx, sheet, opts)
	if err != nil {
		return nil, err
	}
	return []*model.Report{report}, nil
}
