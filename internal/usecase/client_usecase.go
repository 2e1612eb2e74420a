package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Abdelrahman10101/Cost-Management/internal/domain/entities"
	"github.com/Abdelrahman10101/Cost-Management/internal/usecase/interfaces"
)

var (
	ErrClientNotFound      = errors.New("client not found")
	ErrClientAlreadyExists = errors.New("client already exists")
	ErrInvalidClientID     = errors.New("invalid client id")
	ErrInvalidClient       = errors.New("client name and region are required")
)

type CreateClientCommand struct {
	ID      string
	Name    string
	Region  string
	Contact entities.ClientContact
}

// IClientUseCase exposes the billed-customer directory.

type IClientUseCase interface {
	List(ctx context.Context) ([]entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	Create(ctx context.Context, cmd CreateClientCommand) (entities.Client, error)
}

type ClientUseCase struct {
	repo   interfaces.IClientRepository
	newID  func() string
	logger *zap.Logger
}

var _ IClientUseCase = (*ClientUseCase)(nil)

// NewClientUseCase builds the use case. newID generates ids for clients created
// without one; nil selects random UUIDs.
func NewClientUseCase(repo interfaces.IClientRepository, newID func() string, logger *zap.Logger) *ClientUseCase {
	if newID == nil {
		newID = uuid.NewString
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClientUseCase{repo: repo, newID: newID, logger: logger}
}

func (u *ClientUseCase) List(ctx context.Context) ([]entities.Client, error) {
	return u.repo.List(ctx)
}

func (u *ClientUseCase) GetByID(ctx context.Context, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *ClientUseCase) Create(ctx context.Context, cmd CreateClientCommand) (entities.Client, error) {
	c := entities.Client{
		ID:     strings.TrimSpace(cmd.ID),
		Name:   strings.TrimSpace(cmd.Name),
		Region: strings.TrimSpace(cmd.Region),
		Contact: entities.ClientContact{
			Email: strings.TrimSpace(cmd.Contact.Email),
			Phone: strings.TrimSpace(cmd.Contact.Phone),
		},
	}
	if c.Name == "" || c.Region == "" {
		return entities.Client{}, ErrInvalidClient
	}

	if c.ID == "" {
		c.ID = u.newID()
	} else if existing, err := u.repo.GetByID(ctx, c.ID); err != nil {
		return entities.Client{}, err
	} else if existing.ID != "" {
		return entities.Client{}, ErrClientAlreadyExists
	}

	created, err := u.repo.Create(ctx, c)
	if err != nil {
		return entities.Client{}, err
	}
	u.logger.Info("client created", zap.String("client_id", created.ID), zap.String("region", created.Region))
	return created, nil
}
