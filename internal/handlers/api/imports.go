package api

import (
	"errors"
	"io"
	"time"

	"github.com/gofiber/fiber/v3"

	"seodash/internal/csvdata"
	"seodash/internal/importer"
	"seodash/internal/metrics"
	"seodash/internal/models"
)

// ImportHandler handles file-upload import endpoints. Every response is
// JSON: HTTP errors are reserved for auth failure, a missing upload, or a
// structural parse failure. Row and batch failures ride inside a
// success-true body as an errors list, which callers must inspect.
type ImportHandler struct {
	importer *importer.Importer
}

// NewImportHandler creates a new import handler.
func NewImportHandler(imp *importer.Importer) *ImportHandler {
	return &ImportHandler{importer: imp}
}

// GSCQueries imports a Search Console query export (keywords + facts).
func (h *ImportHandler) GSCQueries(c fiber.Ctx) error {
	text, err := readUpload(c)
	if err != nil {
		return importRejected(c, models.SourceGSC, err)
	}

	report, err := h.importer.ImportGSCQueries(c.Context(), text, time.Now())
	if err != nil {
		return importRejected(c, models.SourceGSC, err)
	}

	return importSucceeded(c, models.SourceGSC, report.Stats, report.TotalProcessed, report.Errors)
}

// GSCPages imports a Search Console page export (pages + facts).
func (h *ImportHandler) GSCPages(c fiber.Ctx) error {
	text, err := readUpload(c)
	if err != nil {
		return importRejected(c, models.SourceGSC, err)
	}

	report, err := h.importer.ImportGSCPages(c.Context(), text, time.Now())
	if err != nil {
		return importRejected(c, models.SourceGSC, err)
	}

	return importSucceeded(c, models.SourceGSC, report.Stats, report.TotalProcessed, report.Errors)
}

// SEMrush imports a SEMrush organic export (keyword metrics + facts).
func (h *ImportHandler) SEMrush(c fiber.Ctx) error {
	text, err := readUpload(c)
	if err != nil {
		return importRejected(c, models.SourceSEMrush, err)
	}

	report, err := h.importer.ImportSEMrush(c.Context(), text, time.Now())
	if err != nil {
		return importRejected(c, models.SourceSEMrush, err)
	}

	return importSucceeded(c, models.SourceSEMrush, report.Stats, report.TotalProcessed, report.Errors)
}

var errNoFile = errors.New("no file provided")

// readUpload reads the uploaded delimited-text content from the multipart
// form field "file".
func readUpload(c fiber.Ctx) (string, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return "", errNoFile
	}

	f, err := fileHeader.Open()
	if err != nil {
		return "", errNoFile
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return "", errNoFile
	}
	return string(content), nil
}

// importSucceeded writes the success body and records the run outcome.
func importSucceeded(c fiber.Ctx, source string, stats any, totalProcessed int, rowErrors []string) error {
	outcome := models.OutcomeSucceeded
	if len(rowErrors) > 0 {
		outcome = models.OutcomeRowError
	}
	metrics.RecordImport(source, outcome)

	resp := fiber.Map{
		"success":         true,
		"stats":           stats,
		"total_processed": totalProcessed,
	}
	if len(rowErrors) > 0 {
		resp["errors"] = rowErrors
	}
	return c.JSON(resp)
}

// importRejected maps pre-write failures to an HTTP error body.
func importRejected(c fiber.Ctx, source string, err error) error {
	metrics.RecordImport(source, models.OutcomeRejected)

	if errors.Is(err, errNoFile) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "no file provided",
		})
	}

	var parseErr *csvdata.ParseError
	if errors.As(err, &parseErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "CSV parse error",
			"details": parseErr.Details,
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"error":   "server error",
	})
}
