package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Abdelrahman10101/Cost-Management/internal/adapter/http/dto/request"
	"github.com/Abdelrahman10101/Cost-Management/internal/adapter/http/dto/response"
	"github.com/Abdelrahman10101/Cost-Management/internal/usecase"
	"github.com/Abdelrahman10101/Cost-Management/pkg"
)

// InvoiceHandler handles HTTP requests for invoices and payment reminders.

type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

// ListInvoices godoc
// @Summary      List invoices
// @Tags         invoices
// @Produce      json
// @Success      200  {array}   response.InvoiceResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	invoices, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoices(invoices))
}

// GetInvoice godoc
// @Summary      Get an invoice
// @Tags         invoices
// @Produce      json
// @Param        id   path      int  true  "Invoice ID"
// @Success      200  {object}  response.InvoiceResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /invoices/{id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	id, ok := parseInt64Param(c, "id")
	if !ok {
		return
	}

	inv, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// CreateInvoice godoc
// @Summary      Create an invoice
// @Description  Computes subtotal, discount, tax and total. The tax rate defaults to the client's region rate.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        invoice  body      request.InvoiceRequest  true  "Invoice"
// @Success      201      {object}  response.InvoiceResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /invoices [post]
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var payload request.InvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	inv, err := h.usecase.Create(c.Request.Context(), payload.ToCommand())
	if err != nil {
		writeError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromInvoice(inv))
}

// UpdateInvoice godoc
// @Summary      Update an invoice
// @Description  Merges the supplied fields and recomputes every derived amount.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id       path      int                           true  "Invoice ID"
// @Param        invoice  body      request.InvoiceUpdateRequest  true  "Fields to change"
// @Success      200      {object}  response.InvoiceResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /invoices/{id} [put]
func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	id, ok := parseInt64Param(c, "id")
	if !ok {
		return
	}

	var payload request.InvoiceUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	inv, err := h.usecase.Update(c.Request.Context(), id, payload.ToCommand())
	if err != nil {
		writeError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// SendReminder godoc
// @Summary      Send a payment reminder
// @Description  The body is optional. due_date and client_contact override the invoice's own values.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id        path      int                      true   "Invoice ID"
// @Param        reminder  body      request.ReminderRequest  false  "Overrides"
// @Success      200       {object}  response.NotificationResponse
// @Failure      400       {object}  pkg.HTTPError
// @Failure      404       {object}  pkg.HTTPError
// @Failure      422       {object}  pkg.HTTPError
// @Router       /invoices/{id}/reminders [post]
func (h *InvoiceHandler) SendReminder(c *gin.Context) {
	id, ok := parseInt64Param(c, "id")
	if !ok {
		return
	}

	var payload request.ReminderRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		writeError(c, errInvalidPayload)
		return
	}

	n, err := h.usecase.SendReminder(c.Request.Context(), id, payload.ToCommand())
	if err != nil {
		writeError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromNotification(n))
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceID):
		return errInvalidID
	case errors.Is(err, usecase.ErrInvoiceClientRequired):
		return pkg.NewDomainErrorSimple("INVALID_CLIENT_ID", "Client ID is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidItems):
		return pkg.NewDomainErrorSimple("INVALID_ITEMS", "Items are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidLineItem):
		return pkg.NewDomainErrorSimple("INVALID_LINE_ITEM", "Line items need a name and non-negative quantity and unit price", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvoiceClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDiscount):
		return pkg.NewDomainErrorSimple("INVALID_DISCOUNT", "Discount must be between 0 and 1", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTaxRate):
		return pkg.NewDomainErrorSimple("INVALID_TAX_RATE", "Tax rate must be between 0 and 1", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDueDate):
		return pkg.NewDomainErrorSimple("INVALID_DUE_DATE", "Due date must be YYYY-MM-DD or RFC 3339", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrReminderContactMissing):
		return pkg.NewDomainErrorSimple("REMINDER_CONTACT_MISSING", "Contact has neither email nor phone", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
