package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/expensio/expensio/internal/application"
	"github.com/expensio/expensio/internal/domain/analysis"
	"github.com/expensio/expensio/internal/domain/entity"
	"github.com/expensio/expensio/internal/domain/repository"
	"github.com/expensio/expensio/internal/interface/middleware"
	"github.com/expensio/expensio/internal/report"
	"github.com/expensio/expensio/pkg/response"
	"github.com/expensio/expensio/pkg/validation"
)

// SheetHandler exposes the expense-sheet endpoints. The owner id always comes
// from the auth middleware, never from the request body.
type SheetHandler struct {
	Svc    *application.SheetService
	Logger *logrus.Logger
}

func NewSheetHandler(svc *application.SheetService, logger *logrus.Logger) *SheetHandler {
	return &SheetHandler{Svc: svc, Logger: logger}
}

type budgetPayload struct {
	Category  string  `json:"category" binding:"required"`
	Allocated float64 `json:"allocated"`
}

type createSheetRequest struct {
	Name          string          `json:"name" binding:"required"`
	Month         string          `json:"month" binding:"required"`
	MonthlySalary float64         `json:"monthly_salary" binding:"gte=0"`
	Budgets       []budgetPayload `json:"budgets"`
}

// expenseRequest uses a pointer for the amount so that a present zero is
// distinguishable from an absent field.
type expenseRequest struct {
	Date        string   `json:"date" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	Description string   `json:"description"`
	Amount      *float64 `json:"amount" binding:"required"`
}

func (h *SheetHandler) storeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		response.Error(c, http.StatusNotFound, "sheet not found", nil)
	case errors.Is(err, repository.ErrExpenseNotFound):
		response.Error(c, http.StatusNotFound, "expense not found", nil)
	default:
		h.Logger.WithError(err).Error("sheet operation failed")
		response.Error(c, http.StatusInternalServerError, "internal error", nil)
	}
}

func ownerID(c *gin.Context) string {
	return c.GetString(middleware.CtxUserIDKey)
}

// Create handles POST /api/sheets.
func (h *SheetHandler) Create(c *gin.Context) {
	var req createSheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	budgets := make([]entity.Budget, 0, len(req.Budgets))
	for _, b := range req.Budgets {
		budgets = append(budgets, entity.Budget{Category: b.Category, Allocated: b.Allocated})
	}
	sheet, err := h.Svc.Create(c.Request.Context(), ownerID(c), application.CreateSheetInput{
		Name:          req.Name,
		Month:         req.Month,
		MonthlySalary: req.MonthlySalary,
		Budgets:       budgets,
	})
	if err != nil {
		h.storeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, sheet, "sheet created")
}

// List handles GET /api/sheets.
func (h *SheetHandler) List(c *gin.Context) {
	sheets, err := h.Svc.List(c.Request.Context(), ownerID(c))
	if err != nil {
		h.storeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, sheets, "sheets")
}

// Get handles GET /api/sheets/:id.
func (h *SheetHandler) Get(c *gin.Context) {
	sheet, err := h.Svc.Get(c.Request.Context(), c.Param("id"), ownerID(c))
	if err != nil {
		h.storeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, sheet, "sheet")
}

// Delete handles DELETE /api/sheets/:id.
func (h *SheetHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id"), ownerID(c)); err != nil {
		h.storeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, "sheet deleted successfully")
}

func (h *SheetHandler) bindExpense(c *gin.Context) (application.ExpenseInput, bool) {
	var req expenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return application.ExpenseInput{}, false
	}
	return application.ExpenseInput{
		Date:        req.Date,
		Category:    req.Category,
		Description: req.Description,
		Amount:      *req.Amount,
	}, true
}

// AddExpense handles POST /api/sheets/:id/expenses.
func (h *SheetHandler) AddExpense(c *gin.Context) {
	in, ok := h.bindExpense(c)
	if !ok {
		return
	}
	sheet, err := h.Svc.AddExpense(c.Request.Context(), c.Param("id"), ownerID(c), in)
	if err != nil {
		h.storeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, sheet, "expense added")
}

// UpdateExpense handles PUT /api/sheets/:id/expenses/:eid.
func (h *SheetHandler) UpdateExpense(c *gin.Context) {
	in, ok := h.bindExpense(c)
	if !ok {
		return
	}
	sheet, err := h.Svc.UpdateExpense(c.Request.Context(), c.Param("id"), ownerID(c), c.Param("eid"), in)
	if err != nil {
		h.storeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, sheet, "expense updated")
}

// RemoveExpense handles DELETE /api/sheets/:id/expenses/:eid.
func (h *SheetHandler) RemoveExpense(c *gin.Context) {
	sheet, err := h.Svc.RemoveExpense(c.Request.Context(), c.Param("id"), ownerID(c), c.Param("eid"))
	if err != nil {
		h.storeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, sheet, "expense removed")
}

// Stats handles GET /api/sheets/:id/stats.
func (h *SheetHandler) Stats(c *gin.Context) {
	stats, err := h.Svc.Stats(c.Request.Context(), c.Param("id"), ownerID(c))
	if err != nil {
		h.storeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats, "stats")
}

// Compare handles GET /api/sheets/compare/:id1/:id2.
func (h *SheetHandler) Compare(c *gin.Context) {
	res, err := h.Svc.Compare(c.Request.Context(), c.Param("id1"), c.Param("id2"), ownerID(c))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "one or both sheets not found", nil)
			return
		}
		h.storeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, "comparison")
}

// PDF handles GET /api/sheets/:id/pdf and streams the rendered report.
func (h *SheetHandler) PDF(c *gin.Context) {
	sheet, err := h.Svc.Get(c.Request.Context(), c.Param("id"), ownerID(c))
	if err != nil {
		h.storeError(c, err)
		return
	}
	pdf, err := report.RenderPDF(sheet, analysis.SheetStats(sheet))
	if err != nil {
		h.Logger.WithError(err).WithField("sheet_id", sheet.ID).Error("pdf rendering failed")
		response.Error(c, http.StatusInternalServerError, "report generation failed", nil)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=expense_report_%s.pdf", sheet.Month))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
