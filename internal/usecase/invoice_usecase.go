package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Abdelrahman10101/Cost-Management/internal/clock"
	"github.com/Abdelrahman10101/Cost-Management/internal/domain/billing"
	"github.com/Abdelrahman10101/Cost-Management/internal/domain/entities"
	"github.com/Abdelrahman10101/Cost-Management/internal/usecase/interfaces"
)

const DefaultInvoiceDueDays = 30

var (
	ErrInvoiceNotFound        = errors.New("invoice not found")
	ErrInvalidInvoiceID       = errors.New("invalid invoice id")
	ErrInvoiceClientRequired  = errors.New("client id is required")
	ErrInvoiceClientNotFound  = errors.New("invoice client not found")
	ErrInvalidItems           = errors.New("items are required")
	ErrInvalidLineItem        = errors.New("line items need a name and non-negative quantity and unit price")
	ErrInvalidDiscount        = errors.New("discount must be between 0 and 1")
	ErrInvalidDueDate         = billing.ErrInvalidDueDate
	ErrReminderContactMissing = errors.New("reminder contact has neither email nor phone")
)

type CreateInvoiceCommand struct {
	ClientID string
	Items    []entities.LineItem
	TaxRate  *decimal.Decimal
	Discount decimal.Decimal
}

// UpdateInvoiceCommand is a partial update: nil fields and an empty Items
// list keep the stored values.
type UpdateInvoiceCommand struct {
	Items    []entities.LineItem
	TaxRate  *decimal.Decimal
	Discount *decimal.Decimal
}

// ReminderCommand overrides the invoice's due date and contact when set.
type ReminderCommand struct {
	DueDate *string
	Contact *entities.ClientContact
}

// IInvoiceUseCase exposes invoice operations.
//
//   - Create computes subtotal, discount, tax and total from the client's region
//   - Update merges the supplied fields and recomputes every derived amount
//   - SendReminder classifies the due date and logs the reminder it would send

type IInvoiceUseCase interface {
	List(ctx context.Context) ([]entities.Invoice, error)
	GetByID(ctx context.Context, id int64) (entities.Invoice, error)
	Create(ctx context.Context, cmd CreateInvoiceCommand) (entities.Invoice, error)
	Update(ctx context.Context, id int64, cmd UpdateInvoiceCommand) (entities.Invoice, error)
	SendReminder(ctx context.Context, id int64, cmd ReminderCommand) (entities.Notification, error)
}

// InvoiceUseCaseParams groups the collaborators of InvoiceUseCase. Clock,
// NotificationIDs and Logger are optional.
type InvoiceUseCaseParams struct {
	Invoices        interfaces.IInvoiceRepository
	Clients         interfaces.IClientRepository
	TaxRates        interfaces.ITaxRateRepository
	Notifier        interfaces.INotificationGateway
	IDs             interfaces.IIDGenerator
	Clock           clock.Clock
	NotificationIDs func() string
	DueDays         int
	Logger          *zap.Logger
}

type InvoiceUseCase struct {
	repo            interfaces.IInvoiceRepository
	clientRepo      interfaces.IClientRepository
	taxRepo         interfaces.ITaxRateRepository
	notifier        interfaces.INotificationGateway
	ids             interfaces.IIDGenerator
	clock           clock.Clock
	notificationIDs func() string
	dueDays         int
	logger          *zap.Logger
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(p InvoiceUseCaseParams) *InvoiceUseCase {
	u := &InvoiceUseCase{
		repo:            p.Invoices,
		clientRepo:      p.Clients,
		taxRepo:         p.TaxRates,
		notifier:        p.Notifier,
		ids:             p.IDs,
		clock:           p.Clock,
		notificationIDs: p.NotificationIDs,
		dueDays:         p.DueDays,
		logger:          p.Logger,
	}
	if u.clock == nil {
		u.clock = clock.NewSystemClock()
	}
	if u.notificationIDs == nil {
		u.notificationIDs = uuid.NewString
	}
	if u.dueDays <= 0 {
		u.dueDays = DefaultInvoiceDueDays
	}
	if u.logger == nil {
		u.logger = zap.NewNop()
	}
	return u
}

func (u *InvoiceUseCase) List(ctx context.Context) ([]entities.Invoice, error) {
	return u.repo.List(ctx)
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, id int64) (entities.Invoice, error) {
	if id <= 0 {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}

	inv, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == 0 {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

func (u *InvoiceUseCase) Create(ctx context.Context, cmd CreateInvoiceCommand) (entities.Invoice, error) {
	clientID := strings.TrimSpace(cmd.ClientID)
	if clientID == "" {
		return entities.Invoice{}, ErrInvoiceClientRequired
	}
	if len(cmd.Items) == 0 {
		return entities.Invoice{}, ErrInvalidItems
	}
	if err := validateLineItems(cmd.Items); err != nil {
		return entities.Invoice{}, err
	}
	if !isFraction(cmd.Discount) {
		return entities.Invoice{}, ErrInvalidDiscount
	}
	if cmd.TaxRate != nil && !isFraction(*cmd.TaxRate) {
		return entities.Invoice{}, ErrInvalidTaxRate
	}

	client, err := u.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if client.ID == "" {
		return entities.Invoice{}, ErrInvoiceClientNotFound
	}

	var table entities.TaxRateTable
	if cmd.TaxRate == nil {
		if table, err = u.taxRepo.GetTable(ctx); err != nil {
			return entities.Invoice{}, err
		}
	}

	now := u.clock.Now()
	inv := billing.ApplyTotals(entities.Invoice{
		ID:            u.ids.NextID(),
		ClientID:      client.ID,
		Items:         copyItems(cmd.Items),
		Discount:      cmd.Discount,
		TaxRate:       billing.ResolveTaxRate(cmd.TaxRate, client.Region, table),
		DueDate:       now.AddDate(0, 0, u.dueDays).Format(billing.DateLayout),
		Status:        entities.InvoiceStatusPending,
		ClientContact: client.Contact,
		CreatedAt:     now,
	})

	created, err := u.repo.Create(ctx, inv)
	if err != nil {
		u.logger.Error("invoice create failed", zap.Int64("invoice_id", inv.ID), zap.Error(err))
		return entities.Invoice{}, err
	}
	u.logger.Info("invoice created",
		zap.Int64("invoice_id", created.ID),
		zap.String("client_id", created.ClientID),
		zap.Stringer("tax_rate", created.TaxRate),
		zap.Stringer("total", created.Total))
	return created, nil
}

func (u *InvoiceUseCase) Update(ctx context.Context, id int64, cmd UpdateInvoiceCommand) (entities.Invoice, error) {
	if id <= 0 {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}
	if err := validateLineItems(cmd.Items); err != nil {
		return entities.Invoice{}, err
	}
	if cmd.Discount != nil && !isFraction(*cmd.Discount) {
		return entities.Invoice{}, ErrInvalidDiscount
	}
	if cmd.TaxRate != nil && !isFraction(*cmd.TaxRate) {
		return entities.Invoice{}, ErrInvalidTaxRate
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if existing.ID == 0 {
		return entities.Invoice{}, ErrInvoiceNotFound
	}

	updated := billing.RecomputeOnUpdate(existing, billing.InvoiceUpdate{
		Items:    cmd.Items,
		TaxRate:  cmd.TaxRate,
		Discount: cmd.Discount,
	})
	now := u.clock.Now()
	updated.UpdatedAt = &now

	saved, err := u.repo.Update(ctx, updated)
	if err != nil {
		u.logger.Error("invoice update failed", zap.Int64("invoice_id", id), zap.Error(err))
		return entities.Invoice{}, err
	}
	if saved.ID == 0 {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	u.logger.Info("invoice recomputed",
		zap.Int64("invoice_id", saved.ID),
		zap.Stringer("subtotal", saved.Subtotal),
		zap.Stringer("total", saved.Total))
	return saved, nil
}

func (u *InvoiceUseCase) SendReminder(ctx context.Context, id int64, cmd ReminderCommand) (entities.Notification, error) {
	if id <= 0 {
		return entities.Notification{}, ErrInvalidInvoiceID
	}

	inv, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Notification{}, err
	}
	if inv.ID == 0 {
		return entities.Notification{}, ErrInvoiceNotFound
	}

	dueDate := inv.DueDate
	if cmd.DueDate != nil && strings.TrimSpace(*cmd.DueDate) != "" {
		dueDate = *cmd.DueDate
	}
	contact := inv.ClientContact
	if cmd.Contact != nil {
		contact = *cmd.Contact
	}

	due, err := billing.ParseDueDate(dueDate)
	if err != nil {
		return entities.Notification{}, err
	}
	recipient, method, ok := billing.SelectContactChannel(contact)
	if !ok {
		return entities.Notification{}, ErrReminderContactMissing
	}
	if u.notifier == nil {
		return entities.Notification{}, errors.New("notification gateway not configured")
	}

	now := u.clock.Now()
	reminder := billing.ClassifyReminderUrgency(inv.ID, due, now)
	n := entities.Notification{
		ID:           u.notificationIDs(),
		InvoiceID:    inv.ID,
		Recipient:    recipient,
		Method:       method,
		Message:      reminder.Message,
		DaysUntilDue: reminder.DaysUntilDue,
		SentAt:       now,
		Status:       entities.NotificationStatusSent,
	}

	if err := u.notifier.Send(ctx, n); err != nil {
		return entities.Notification{}, fmt.Errorf("dispatch reminder for invoice %d: %w", inv.ID, err)
	}
	return n, nil
}

func validateLineItems(items []entities.LineItem) error {
	for _, it := range items {
		if strings.TrimSpace(it.Name) == "" || it.Quantity < 0 || it.UnitPrice.IsNegative() {
			return ErrInvalidLineItem
		}
	}
	return nil
}

func copyItems(items []entities.LineItem) []entities.LineItem {
	out := make([]entities.LineItem, len(items))
	copy(out, items)
	return out
}
