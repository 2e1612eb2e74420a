package interfaces

import (
	"context"

	"github.com/Abdelrahman10101/Cost-Management/internal/domain/entities"
)

// IInvoiceRepository abstracts storage of invoices.
//
// The billing flows need to:
//   - create an invoice with its computed totals
//   - read one or all invoices
//   - replace an invoice wholesale after a recompute
//
// GetByID and Update return a zero Invoice (ID == 0) and a nil error when the
// invoice does not exist.

type IInvoiceRepository interface {
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id int64) (entities.Invoice, error)
	List(ctx context.Context) ([]entities.Invoice, error)
	Update(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
}
