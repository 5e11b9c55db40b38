package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clinivet/clinivet-api/internal/application/dto"
	"github.com/clinivet/clinivet-api/internal/application/usecase"
)

// ProntuarioHandler trata o CRUD de prontuários médicos (protegido).
// Criação e edição são restritas a admin e veterinario no router.
type ProntuarioHandler struct {
	uc *usecase.ProntuarioUseCase
}

// NewProntuarioHandler constrói o handler.
func NewProntuarioHandler(uc *usecase.ProntuarioUseCase) *ProntuarioHandler {
	return &ProntuarioHandler{uc: uc}
}

// Create godoc
// @Summary      Criar prontuário
// @Tags         prontuarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProntuarioRequest  true  "paciente_id, motivo_consulta e dados clínicos"
// @Success      201   {object}  dto.ProntuarioResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/prontuarios [post]
func (h *ProntuarioHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProntuarioRequest
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
// @Summary      Listar prontuários da conta
// @Tags         prontuarios
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limite (padrão 20)"
// @Param        offset  query  int  false  "Deslocamento"
// @Success      200  {array}  dto.ProntuarioResponse
// @Router       /api/prontuarios [get]
func (h *ProntuarioHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginação inválida"})
	}
	out, err := h.uc.List(GetUserID(c), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obter prontuário por ID
// @Tags         prontuarios
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do prontuário"
// @Success      200  {object}  dto.ProntuarioResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/prontuarios/{id} [get]
func (h *ProntuarioHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar prontuário
// @Tags         prontuarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do prontuário"
// @Param        body  body  dto.UpdateProntuarioRequest  true  "campos a alterar"
// @Success      200   {object}  dto.ProntuarioResponse
// @Router       /api/prontuarios/{id} [put]
func (h *ProntuarioHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProntuarioRequest
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
// @Summary      Remover prontuário
// @Tags         prontuarios
// @Security     Bearer
// @Param        id  path  string  true  "ID do prontuário"
// @Success      204  "sem conteúdo"
// @Router       /api/prontuarios/{id} [delete]
func (h *ProntuarioHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListByPaciente godoc
// @Summary      Listar prontuários de um paciente
// @Tags         prontuarios
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do paciente"
// @Success      200  {array}  dto.ProntuarioResponse
// @Router       /api/pacientes/{id}/prontuarios [get]
func (h *ProntuarioHandler) ListByPaciente(c *fiber.Ctx) error {
	out, err := h.uc.ListByPaciente(GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
