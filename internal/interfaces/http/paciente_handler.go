package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clinivet/clinivet-api/internal/application/dto"
	"github.com/clinivet/clinivet-api/internal/application/usecase"
)

// PacienteHandler trata o CRUD de pacientes (animais), protegido.
type PacienteHandler struct {
	uc *usecase.PacienteUseCase
}

// NewPacienteHandler constrói o handler.
func NewPacienteHandler(uc *usecase.PacienteUseCase) *PacienteHandler {
	return &PacienteHandler{uc: uc}
}

// Create godoc
// @Summary      Cadastrar paciente
// @Tags         pacientes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePacienteRequest  true  "cliente_id, nome, especie"
// @Success      201   {object}  dto.PacienteResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/pacientes [post]
func (h *PacienteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePacienteRequest
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
// @Summary      Listar pacientes
// @Tags         pacientes
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PacienteResponse
// @Router       /api/pacientes [get]
func (h *PacienteHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obter paciente por ID
// @Tags         pacientes
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do paciente"
// @Success      200  {object}  dto.PacienteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pacientes/{id} [get]
func (h *PacienteHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar paciente
// @Tags         pacientes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do paciente"
// @Param        body  body  dto.UpdatePacienteRequest  true  "campos a alterar"
// @Success      200   {object}  dto.PacienteResponse
// @Router       /api/pacientes/{id} [put]
func (h *PacienteHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePacienteRequest
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
// @Summary      Remover paciente
// @Tags         pacientes
// @Security     Bearer
// @Param        id  path  string  true  "ID do paciente"
// @Success      204  "sem conteúdo"
// @Router       /api/pacientes/{id} [delete]
func (h *PacienteHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
