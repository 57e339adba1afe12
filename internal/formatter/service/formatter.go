package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	fmtvalidator "dialtone/internal/formatter/validator"
	apperrors "dialtone/pkg/errors"
	"dialtone/pkg/events"
	"dialtone/pkg/logger"
	"dialtone/pkg/model"
	"dialtone/pkg/nanp"
	"dialtone/pkg/tabular"
)

type FormatterService interface {
	NormalizeValue(raw any, style string) string
	FormatSheet(ctx context.Context, sheet tabular.Source, opts model.Options) (*model.Report, error)
	FormatAllSheets(ctx context.Context, store tabular.Store, opts model.Options) ([]*model.Report, error)
}

type formatterService struct {
	validator *fmtvalidator.OptionsValidator
	publisher *events.Publisher
	log       *logger.Logger
}

// NewFormatterService builds the batch formatting service. publisher may be
// nil when Kafka is not configured; reports are then only returned, not
// published.
func NewFormatterService(
	validator *fmtvalidator.OptionsValidator,
	publisher *events.Publisher,
	log *logger.Logger,
) FormatterService {
	return &formatterService{
		validator: validator,
		publisher: publisher,
		log:       log,
	}
}

// NormalizeValue is the single-cell entry point (the formula function).
func (s *formatterService) NormalizeValue(raw any, style string) string {
	return nanp.Normalize(raw, style)
}

type columnResult struct {
	report model.ColumnReport
	values []string
	err    error
}

func (s *formatterService) FormatSheet(ctx context.Context, sheet tabular.Source, opts model.Options) (*model.Report, error) {
	if err := s.validator.Validate(&opts); err != nil {
		return nil, apperrors.Validation("Invalid formatting options", map[string]any{
			"error": err.Error(),
		})
	}

	headers, err := sheet.Headers(ctx)
	if err != nil {
		return nil, apperrors.Internal(fmt.Sprintf("Failed to read headers of sheet %q", sheet.Name()), err)
	}

	var phoneCols []int
	for col, header := range headers {
		if nanp.IsPhoneHeader(header) {
			phoneCols = append(phoneCols, col)
		}
	}
	if len(phoneCols) == 0 {
		return nil, apperrors.NoPhoneColumns(sheet.Name())
	}

	report := &model.Report{
		RunID:     uuid.NewString(),
		Sheet:     sheet.Name(),
		Style:     string(nanp.ParseStyle(opts.Style)),
		StartedAt: time.Now(),
	}

	// The core is pure, so columns normalize concurrently. Writes stay
	// sequential: backends may rewrite the whole sheet per column.
	results := make([]columnResult, len(phoneCols))
	var wg sync.WaitGroup
	for i, col := range phoneCols {
		wg.Add(1)
		go func(i, col int) {
			defer wg.Done()
			results[i] = s.normalizeColumn(ctx, sheet, headers[col], col, opts.Style)
		}(i, col)
	}
	wg.Wait()

	for _, res := range results {
		if res.err != nil {
			if ctx.Err() != nil {
				return nil, apperrors.Timeout(fmt.Sprintf("Formatting of sheet %q timed out", sheet.Name()))
			}
			return nil, apperrors.Internal(fmt.Sprintf("Failed to format sheet %q", sheet.Name()), res.err)
		}
	}

	for _, res := range results {
		if err := sheet.WriteColumn(ctx, res.report.Column, res.values); err != nil {
			if ctx.Err() != nil {
				return nil, apperrors.Timeout(fmt.Sprintf("Formatting of sheet %q timed out", sheet.Name()))
			}
			return nil, apperrors.Internal(fmt.Sprintf("Failed to write column %d of sheet %q", res.report.Column, sheet.Name()), err)
		}
		report.Columns = append(report.Columns, res.report)
	}
	report.CompletedAt = time.Now()

	s.log.Info("Sheet formatted",
		"run_id", report.RunID,
		"sheet", report.Sheet,
		"style", report.Style,
		"columns", len(report.Columns),
		"cells", report.Cells(),
	)

	if err := s.publisher.PublishReport(ctx, report); err != nil {
		// Reporting is best-effort; the sheet is already formatted.
		s.log.Warn("Failed to publish formatting report",
			"run_id", report.RunID,
			"sheet", report.Sheet,
			"error", err,
		)
	}

	return report, nil
}

func (s *formatterService) normalizeColumn(ctx context.Context, sheet tabular.Source, header string, col int, style string) columnResult {
	raw, err := sheet.ReadColumn(ctx, col)
	if err != nil {
		return columnResult{err: fmt.Errorf("read column %d: %w", col, err)}
	}

	res := columnResult{
		report: model.ColumnReport{Header: header, Column: col},
		values: make([]string, len(raw)),
	}
	for i, cell := range raw {
		out := nanp.Normalize(cell, style)
		res.values[i] = out

		switch out {
		case "":
			res.report.Empty++
		case nanp.Invalid:
			res.report.Invalid++
		default:
			res.report.Formatted++
		}
	}
	return res
}

func (s *formatterService) FormatAllSheets(ctx context.Context, store tabular.Store, opts model.Options) ([]*model.Report, error) {
	sheets, err := store.Sheets(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to list sheets", err)
	}

	var reports []*model.Report
	for _, sheet := range sheets {
		report, err := s.FormatSheet(ctx, sheet, opts)
		if err != nil {
			var appErr *apperrors.AppError
			if errors.As(err, &appErr) && appErr.Code == apperrors.CodeNoPhoneColumns {
				s.log.Info("Skipping sheet without phone columns", "sheet", sheet.Name())
				continue
			}
			return nil, err
		}
		reports = append(reports, report)
	}

	if len(reports) == 0 && len(sheets) > 0 {
		return nil, apperrors.New(apperrors.CodeNoPhoneColumns,
			"no phone columns found on any sheet", http.StatusNotFound)
	}

	return reports, nil
}
