package request

import (
	"github.com/Abdelrahman10101/Cost-Management/internal/domain/entities"
	"github.com/Abdelrahman10101/Cost-Management/internal/usecase"
)

type ContactRequest struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (r ContactRequest) ToEntity() entities.ClientContact {
	return entities.ClientContact{Email: r.Email, Phone: r.Phone}
}

// ClientRequest is the body of POST /api/clients. ID is optional.
type ClientRequest struct {
	ID      string         `json:"id"`
	Name    string         `json:"name" binding:"required"`
	Region  string         `json:"region" binding:"required"`
	Contact ContactRequest `json:"contact"`
}

func (r ClientRequest) ToCommand() usecase.CreateClientCommand {
	return usecase.CreateClientCommand{
		ID:      r.ID,
		Name:    r.Name,
		Region:  r.Region,
		Contact: r.Contact.ToEntity(),
	}
}
