package handlers

import (
	"errors"
	"log"
	"net/http"

	request "autopecas_api/internal/adapter/http/dto/request"
	response "autopecas_api/internal/adapter/http/dto/response"
	"autopecas_api/internal/usecase"
	"autopecas_api/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidJSON = pkg.NewDomainErrorSimple("INVALID_JSON", "JSON inválido", http.StatusBadRequest)

// PartHandler handles HTTP requests for the parts inventory.
//
// Each handler runs the same sequence: bind → validate → delegate to the
// use case (which does the existence check and the mutation) → respond.
type PartHandler struct {
	usecase usecase.IPartUseCase
}

func NewPartHandler(uc usecase.IPartUseCase) *PartHandler {
	return &PartHandler{usecase: uc}
}

// CreatePart handles POST /items.
func (h *PartHandler) CreatePart(c *gin.Context) {
	var payload request.PartPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJSON.HTTPStatus, errInvalidJSON.ToHTTPError())
		return
	}

	if err := payload.Validate(false); err != nil {
		appErr := mapPartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	in, err := payload.ToNewPart()
	if err != nil {
		c.JSON(errInvalidJSON.HTTPStatus, errInvalidJSON.ToHTTPError())
		return
	}

	part, err := h.usecase.CreatePart(c.Request.Context(), in)
	if err != nil {
		log.Printf("[part][handler] create failed err=%v", err)
		appErr := mapPartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPartWithMessage("Peça criada com sucesso", part))
}

// ListParts handles GET /items.
func (h *PartHandler) ListParts(c *gin.Context) {
	parts, err := h.usecase.ListParts(c.Request.Context())
	if err != nil {
		log.Printf("[part][handler] list failed err=%v", err)
		appErr := mapPartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromParts(parts))
}

// GetPart handles GET /items/:id.
func (h *PartHandler) GetPart(c *gin.Context) {
	id := c.Param("id")

	part, err := h.usecase.GetPart(c.Request.Context(), id)
	if err != nil {
		appErr := mapPartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPart(part))
}

// UpdatePart handles PUT /items/:id with a partial body: only the supplied
// fields are written.
func (h *PartHandler) UpdatePart(c *gin.Context) {
	id := c.Param("id")

	var payload request.PartPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJSON.HTTPStatus, errInvalidJSON.ToHTTPError())
		return
	}

	if err := payload.Validate(true); err != nil {
		appErr := mapPartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	change, err := payload.ToChange()
	if err != nil {
		c.JSON(errInvalidJSON.HTTPStatus, errInvalidJSON.ToHTTPError())
		return
	}

	part, err := h.usecase.UpdatePart(c.Request.Context(), id, change)
	if err != nil {
		log.Printf("[part][handler] update failed id=%s err=%v", id, err)
		appErr := mapPartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPartWithMessage("Peça atualizada com sucesso", part))
}

// DeletePart handles DELETE /items/:id.
func (h *PartHandler) DeletePart(c *gin.Context) {
	id := c.Param("id")

	if err := h.usecase.DeletePart(c.Request.Context(), id); err != nil {
		log.Printf("[part][handler] delete failed id=%s err=%v", id, err)
		appErr := mapPartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDeletedPart("Peça deletada com sucesso", id))
}

func mapPartError(err error) *pkg.AppError {
	var validationErr *request.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return pkg.NewDomainErrorSimple("VALIDATION_FAILED", validationErr.Message, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPartID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPartNotFound):
		return pkg.NewDomainErrorSimple("PECA_NOT_FOUND", "Peça não encontrada", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Erro interno do servidor: "+err.Error(), err, http.StatusInternalServerError)
	}
}
