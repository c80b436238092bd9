package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/JDLowen/Ultimate-Financial-Tracker--v2/internal/service"
	"github.com/JDLowen/Ultimate-Financial-Tracker--v2/internal/util"
)

// IncomeHandler serves one income ledger (retirement or disability); the
// router registers one instance per kind.
type IncomeHandler struct {
	Svc    *service.IncomeService
	Logger *logrus.Logger
}

func NewIncomeHandler(svc *service.IncomeService, logger *logrus.Logger) *IncomeHandler {
	return &IncomeHandler{Svc: svc, Logger: logger}
}

// updateIncomeReq carries gross pay and taxed amount as pointers so a body
// that omits them is distinguishable from explicit zeros and can be
// rejected instead of wiping the entry.
type updateIncomeReq struct {
	ID          int              `json:"id"`
	GrossPay    *decimal.Decimal `json:"grossPay"`
	TaxedAmount *decimal.Decimal `json:"taxedAmount"`
}

// Data returns all entries of the ledger, seeding the three-year window of
// zero rows when the table is still empty.
func (h *IncomeHandler) Data(c *gin.Context) {
	entries, err := h.Svc.List()
	if err != nil {
		h.Logger.WithError(err).WithField("kind", h.Svc.Kind()).Error("failed to list income entries")
		util.ServerError(c, fmt.Sprintf("Failed to load %s data", h.Svc.Kind()))
		return
	}
	c.JSON(http.StatusOK, entries)
}

// Update sets gross pay and taxed amount on one entry; net pay is
// recomputed server-side.
func (h *IncomeHandler) Update(c *gin.Context) {
	var req updateIncomeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.JSONError(c, http.StatusBadRequest, "Invalid or missing grossPay or taxedAmount")
		return
	}
	if req.GrossPay == nil || req.TaxedAmount == nil {
		util.JSONError(c, http.StatusBadRequest, "Invalid or missing grossPay or taxedAmount")
		return
	}

	if err := h.Svc.Update(req.ID, *req.GrossPay, *req.TaxedAmount); err != nil {
		writeServiceError(c, h.Logger, err,
			"failed to update income entry",
			fmt.Sprintf("Failed to update %s entry", h.Svc.Kind()))
		return
	}

	util.JSONMessage(c, http.StatusOK, fmt.Sprintf("%s entry updated successfully", h.Svc.Kind()))
}

// ExportCSV downloads the full ledger as a CSV file.
func (h *IncomeHandler) ExportCSV(c *gin.Context) {
	entries, err := h.Svc.List()
	if err != nil {
		h.Logger.WithError(err).Error("failed to export income entries")
		util.ServerError(c, "Failed to export data")
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s_%s.csv\"",
		h.Svc.Kind(), time.Now().Format("20060102")))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write([]string{"Year", "Month", "Gross Pay", "Taxed Amount", "Net Pay"})
	for _, e := range entries {
		writer.Write([]string{
			fmt.Sprintf("%d", e.Year),
			e.MonthName,
			e.GrossPay.StringFixed(2),
			e.TaxedAmount.StringFixed(2),
			e.NetPay.StringFixed(2),
		})
	}
}

// ExportXLSX downloads the full ledger as an Excel workbook.
func (h *IncomeHandler) ExportXLSX(c *gin.Context) {
	entries, err := h.Svc.List()
	if err != nil {
		h.Logger.WithError(err).Error("failed to export income entries")
		util.ServerError(c, "Failed to export data")
		return
	}

	f, err := buildIncomeWorkbook(entries)
	if err != nil {
		h.Logger.WithError(err).Error("failed to build workbook")
		util.ServerError(c, "Failed to export data")
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s_%s.xlsx\"",
		h.Svc.Kind(), time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		h.Logger.WithError(err).Error("failed to write workbook")
	}
}
