package server

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	leaddomain "github.com/flowmetriclabs/aproi/internal/lead/domain"
	reportdomain "github.com/flowmetriclabs/aproi/internal/report/domain"
	"github.com/gin-gonic/gin"
)

const exportDateLayout = "2006-01-02"

// @Summary      Generate Report
// @Description  Render a scenario as a PDF report and record the requester
// @Tags         reports
// @Accept       json
// @Produce      application/pdf
// @Param        request body reportdomain.GenerateRequest true "Report Request"
// @Success      200  {file}  binary
// @Router       /reports/generate [post]
func (s *Server) GenerateReport(c *gin.Context) {
	var req reportdomain.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	doc, err := s.reportSvc.Generate(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if doc.ReportRequestID != "" {
		c.Header("X-Report-Request-Id", doc.ReportRequestID)
	}
	c.Header("Content-Disposition", `attachment; filename="`+doc.Filename+`"`)
	c.Data(http.StatusOK, doc.ContentType, doc.Data)
}

// @Summary      Export Report Requests
// @Description  Export the lead capture log for a date range
// @Tags         reports
// @Produce      json
// @Param        start_date  query  string  true   "Start date (YYYY-MM-DD, inclusive)"
// @Param        end_date    query  string  true   "End date (YYYY-MM-DD, exclusive)"
// @Param        format      query  string  false  "csv or json"  default(csv)
// @Param        compress    query  string  false  "snappy to compress the payload"
// @Success      200  {file}  binary
// @Router       /reports/requests/export [get]
func (s *Server) ExportReportRequests(c *gin.Context) {
	start, err := time.Parse(exportDateLayout, c.Query("start_date"))
	if err != nil {
		AbortWithError(c, newValidationError("start_date", "invalid_start_date", "start_date must be YYYY-MM-DD"))
		return
	}
	end, err := time.Parse(exportDateLayout, c.Query("end_date"))
	if err != nil {
		AbortWithError(c, newValidationError("end_date", "invalid_end_date", "end_date must be YYYY-MM-DD"))
		return
	}
	if !end.After(start) {
		AbortWithError(c, newValidationError("end_date", "invalid_date_range", "end_date must be after start_date"))
		return
	}

	format := leaddomain.ExportFormat(strings.ToLower(c.DefaultQuery("format", string(leaddomain.ExportFormatCSV))))
	compress := strings.ToLower(c.Query("compress"))
	if compress != "" && compress != "snappy" {
		AbortWithError(c, newValidationError("compress", "invalid_compress", "compress supports only snappy"))
		return
	}

	result, err := s.leadExportSvc.Export(c.Request.Context(), leaddomain.ExportRequest{
		StartDate: start,
		EndDate:   end,
		Format:    format,
		Compress:  compress == "snappy",
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	contentType := "text/csv"
	ext := "csv"
	if result.Format == leaddomain.ExportFormatJSON {
		contentType = "application/json"
		ext = "json"
	}
	filename := "report-requests-" + start.Format(exportDateLayout) + "-" + end.Format(exportDateLayout) + "." + ext
	if result.Compressed {
		contentType = "application/x-snappy"
		filename += ".snappy"
	}

	c.Header("X-Export-Checksum", result.Checksum)
	c.Header("X-Export-Count", strconv.Itoa(result.Count))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, result.Data)
}
