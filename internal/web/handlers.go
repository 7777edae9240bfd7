package web

import (
	_ "embed"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/AbdullahEmadeldeen/Whatsapp-links-from-excel/internal/logger"
	"github.com/AbdullahEmadeldeen/Whatsapp-links-from-excel/pkg/phonelinks"
	"github.com/AbdullahEmadeldeen/Whatsapp-links-from-excel/pkg/phonelinks/models"
	"github.com/AbdullahEmadeldeen/Whatsapp-links-from-excel/pkg/phonelinks/output"
	"github.com/AbdullahEmadeldeen/Whatsapp-links-from-excel/pkg/phonelinks/parser"
	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

//go:embed index.html
var indexHTML string

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type errorResponse struct {
	Error string `json:"error"`
}

// tableResponse is the common reply of the extraction endpoints.
type tableResponse struct {
	Session string          `json:"session"`
	Sheets  []string        `json:"sheets,omitempty"`
	Columns []string        `json:"columns,omitempty"`
	Records []models.Record `json:"records"`
	Found   int             `json:"found"`
	Warning string          `json:"warning,omitempty"`
}

func (s *Server) handleIndex(c echo.Context) error {
	return c.HTML(http.StatusOK, indexHTML)
}

func (s *Server) handleUpload(c echo.Context) error {
	file, _, err := c.Request().FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "failed to get file from form"})
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		logger.Log.Warn("unreadable upload", zap.Error(err))
		return c.JSON(http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("error reading file: %v", err)})
	}

	opts := phonelinks.Options{
		Sheet:  orDefault(c.FormValue("sheet"), s.cfg.Extract.Sheet),
		Column: orDefault(c.FormValue("column"), s.cfg.Extract.Column),
	}

	resp, status, err := s.extractIntoResponse(f, opts)
	if err != nil {
		_ = f.Close()
		return c.JSON(status, errorResponse{Error: err.Error()})
	}

	resp.Session = s.store.put(&session{table: tableFromResponse(resp), workbook: f})
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) handleReextract(c echo.Context) error {
	sess, ok := s.store.get(c.Param("session"))
	if !ok {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "unknown session"})
	}
	if sess.workbook == nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "manual sessions have no workbook to re-extract"})
	}

	var req struct {
		Sheet  string `json:"sheet" form:"sheet"`
		Column string `json:"column" form:"column"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "bad request"})
	}

	opts := phonelinks.Options{Sheet: req.Sheet, Column: req.Column}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	resp, status, err := s.extractIntoResponse(sess.workbook, opts)
	if err != nil {
		return c.JSON(status, errorResponse{Error: err.Error()})
	}

	// The prior table is replaced wholesale, not merged.
	sess.table = tableFromResponse(resp)
	resp.Session = c.Param("session")
	return c.JSON(http.StatusOK, resp)
}

// extractIntoResponse runs extraction over an open workbook and shapes
// the reply. A sheet that cannot satisfy the default second-column
// selection is a warning with an empty table, per the historical UI, so
// the user is prompted to pick a column instead of seeing a failure.
func (s *Server) extractIntoResponse(f *excelize.File, opts phonelinks.Options) (tableResponse, int, error) {
	table, err := phonelinks.ExtractWorkbook(f, opts)
	var warning string
	switch {
	case errors.Is(err, phonelinks.ErrTooFewColumns):
		warning = "the sheet has fewer than two columns; pick the column that holds phone numbers"
		table = models.NewTable(nil)
	case errors.Is(err, phonelinks.ErrSheetNotFound), errors.Is(err, phonelinks.ErrColumnNotFound):
		return tableResponse{}, http.StatusBadRequest, err
	case err != nil:
		return tableResponse{}, http.StatusBadRequest, fmt.Errorf("error reading file: %w", err)
	}

	columns, err := phonelinks.ColumnNames(f, opts.Sheet)
	if err != nil {
		return tableResponse{}, http.StatusBadRequest, err
	}

	records := table.Records()
	if warning == "" && len(records) == 0 {
		warning = "no valid Egyptian mobile numbers found"
	}
	return tableResponse{
		Sheets:  phonelinks.SheetNames(f),
		Columns: columns,
		Records: records,
		Found:   len(records),
		Warning: warning,
	}, 0, nil
}

func (s *Server) handleManual(c echo.Context) error {
	var req struct {
		Text string `json:"text" form:"text"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "bad request"})
	}

	table := phonelinks.ExtractText(req.Text)
	records := table.Records()

	resp := tableResponse{
		Session: s.store.put(&session{table: table, manual: true}),
		Records: records,
		Found:   len(records),
	}
	if len(records) == 0 {
		resp.Warning = "no valid Egyptian mobile numbers found"
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) handleCompleted(c echo.Context) error {
	sess, ok := s.store.get(c.Param("session"))
	if !ok {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "unknown session"})
	}

	var req struct {
		PhoneNumber string `json:"phone_number" form:"phone_number"`
		Completed   bool   `json:"completed" form:"completed"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "bad request"})
	}

	sess.mu.Lock()
	found := sess.table.SetCompleted(req.PhoneNumber, req.Completed)
	sess.mu.Unlock()
	if !found {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "no such row"})
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleAddRow(c echo.Context) error {
	sess, ok := s.store.get(c.Param("session"))
	if !ok {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "unknown session"})
	}

	var req struct {
		Value string `json:"value" form:"value"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "bad request"})
	}

	digits, ok := parser.NormalizePhone(req.Value)
	if !ok {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "no valid Egyptian mobile number in value"})
	}

	rec := models.NewRecord(digits)
	sess.mu.Lock()
	added := sess.table.Add(rec)
	sess.mu.Unlock()
	if !added {
		return c.JSON(http.StatusConflict, errorResponse{Error: "number already in table"})
	}
	return c.JSON(http.StatusOK, rec)
}

func (s *Server) handleRemoveRow(c echo.Context) error {
	sess, ok := s.store.get(c.Param("session"))
	if !ok {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "unknown session"})
	}

	phone := c.Param("phone")
	if p, err := url.PathUnescape(phone); err == nil {
		phone = p
	}

	sess.mu.Lock()
	removed := sess.table.Remove(phone)
	sess.mu.Unlock()
	if !removed {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "no such row"})
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleExport(c echo.Context) error {
	sess, ok := s.store.get(c.Param("session"))
	if !ok {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "unknown session"})
	}

	clickable := s.cfg.Export.ClickableLinks
	if v := c.QueryParam("clickable"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			clickable = b
		}
	}

	sess.mu.Lock()
	data, err := output.WriteXLSX(sess.table, clickable)
	manual := sess.manual
	sess.mu.Unlock()
	if err != nil {
		logger.Log.Error("export failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to build workbook"})
	}

	name := s.cfg.Export.UploadFilename
	if manual {
		name = s.cfg.Export.ManualFilename
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Blob(http.StatusOK, xlsxContentType, data)
}

func orDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}

// tableFromResponse rebuilds the session table from already-extracted
// records, so the response and the stored table can never drift.
func tableFromResponse(resp tableResponse) *models.Table {
	recs := make([]models.Record, len(resp.Records))
	copy(recs, resp.Records)
	return models.NewTable(recs)
}
