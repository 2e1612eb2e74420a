package response

import "github.com/Abdelrahman10101/Cost-Management/internal/domain/entities"

type ContactResponse struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type ClientResponse struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Region  string          `json:"region"`
	Contact ContactResponse `json:"contact"`
}

func fromContact(c entities.ClientContact) ContactResponse {
	return ContactResponse{Email: c.Email, Phone: c.Phone}
}

func FromClient(c entities.Client) ClientResponse {
	return ClientResponse{
		ID:      c.ID,
		Name:    c.Name,
		Region:  c.Region,
		Contact: fromContact(c.Contact),
	}
}

func FromClients(list []entities.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, FromClient(c))
	}
	return out
}
