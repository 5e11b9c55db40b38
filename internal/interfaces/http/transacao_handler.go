package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/clinivet/clinivet-api/internal/application/dto"
	"github.com/clinivet/clinivet-api/internal/application/usecase"
	"github.com/clinivet/clinivet-api/internal/domain/repository"
)

// TransacaoHandler trata transações financeiras e categorias (protegido).
type TransacaoHandler struct {
	uc *usecase.TransacaoUseCase
}

// NewTransacaoHandler constrói o handler.
func NewTransacaoHandler(uc *usecase.TransacaoUseCase) *TransacaoHandler {
	return &TransacaoHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar transação financeira
// @Tags         financeiro
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransacaoRequest  true  "tipo, categoria, descricao, valor"
// @Success      201   {object}  dto.TransacaoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/transacoes [post]
func (h *TransacaoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTransacaoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar transações
// @Tags         financeiro
// @Security     Bearer
// @Produce      json
// @Param        tipo       query  string  false  "receita | despesa"
// @Param        categoria  query  string  false  "Filtrar por categoria"
// @Param        status     query  string  false  "pendente | confirmado | cancelado"
// @Param        from       query  string  false  "Início do intervalo (RFC 3339)"
// @Param        to         query  string  false  "Fim do intervalo (RFC 3339)"
// @Success      200  {array}  dto.TransacaoResponse
// @Router       /api/transacoes [get]
func (h *TransacaoHandler) List(c *fiber.Ctx) error {
	f := repository.TransacaoFilter{
		Tipo:      c.Query("tipo"),
		Categoria: c.Query("categoria"),
		Status:    c.Query("status"),
	}
	if v := c.Query("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from inválido (use RFC 3339)"})
		}
		f.From = &t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to inválido (use RFC 3339)"})
		}
		f.To = &t
	}
	out, err := h.uc.List(GetUserID(c), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obter transação por ID
// @Tags         financeiro
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID da transação"
// @Success      200  {object}  dto.TransacaoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transacoes/{id} [get]
func (h *TransacaoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar transação
// @Tags         financeiro
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da transação"
// @Param        body  body  dto.UpdateTransacaoRequest  true  "campos a alterar"
// @Success      200   {object}  dto.TransacaoResponse
// @Router       /api/transacoes/{id} [put]
func (h *TransacaoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTransacaoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Update(GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Remover transação
// @Tags         financeiro
// @Security     Bearer
// @Param        id  path  string  true  "ID da transação"
// @Success      204  "sem conteúdo"
// @Router       /api/transacoes/{id} [delete]
func (h *TransacaoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateCategoria godoc
// @Summary      Criar categoria financeira
// @Tags         financeiro
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoriaRequest  true  "nome, tipo, cor"
// @Success      201   {object}  dto.CategoriaResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/categorias [post]
func (h *TransacaoHandler) CreateCategoria(c *fiber.Ctx) error {
	var in dto.CreateCategoriaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.CreateCategoria(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListCategorias godoc
// @Summary      Listar categorias financeiras
// @Tags         financeiro
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CategoriaResponse
// @Router       /api/categorias [get]
func (h *TransacaoHandler) ListCategorias(c *fiber.Ctx) error {
	out, err := h.uc.ListCategorias(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
