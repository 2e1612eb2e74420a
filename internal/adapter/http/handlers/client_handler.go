package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Abdelrahman10101/Cost-Management/internal/adapter/http/dto/request"
	"github.com/Abdelrahman10101/Cost-Management/internal/adapter/http/dto/response"
	"github.com/Abdelrahman10101/Cost-Management/internal/usecase"
	"github.com/Abdelrahman10101/Cost-Management/pkg"
)

// ClientHandler handles HTTP requests for billed customers.

type ClientHandler struct {
	usecase usecase.IClientUseCase
}

func NewClientHandler(uc usecase.IClientUseCase) *ClientHandler {
	return &ClientHandler{usecase: uc}
}

func (h *ClientHandler) ListClients(c *gin.Context) {
	clients, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromClients(clients))
}

func (h *ClientHandler) GetClient(c *gin.Context) {
	client, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromClient(client))
}

func (h *ClientHandler) CreateClient(c *gin.Context) {
	var payload request.ClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, mapClientError(usecase.ErrInvalidClient))
		return
	}

	client, err := h.usecase.Create(c.Request.Context(), payload.ToCommand())
	if err != nil {
		writeError(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromClient(client))
}

func mapClientError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClientID):
		return errInvalidID
	case errors.Is(err, usecase.ErrInvalidClient):
		return pkg.NewDomainErrorSimple("INVALID_CLIENT", "Client name and region are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClientAlreadyExists):
		return pkg.NewDomainErrorSimple("CLIENT_ALREADY_EXISTS", "Client already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
