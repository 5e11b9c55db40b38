package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/clinivet/clinivet-api/internal/application/dto"
	"github.com/clinivet/clinivet-api/internal/application/usecase"
)

// AgendamentoHandler trata o CRUD da agenda da clínica (protegido).
type AgendamentoHandler struct {
	uc *usecase.AgendamentoUseCase
}

// NewAgendamentoHandler constrói o handler.
func NewAgendamentoHandler(uc *usecase.AgendamentoUseCase) *AgendamentoHandler {
	return &AgendamentoHandler{uc: uc}
}

// Create godoc
// @Summary      Criar agendamento
// @Tags         agendamentos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAgendamentoRequest  true  "paciente_id, data_hora, tipo_servico"
// @Success      201   {object}  dto.AgendamentoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/agendamentos [post]
func (h *AgendamentoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAgendamentoRequest
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
// @Summary      Listar agendamentos
// @Tags         agendamentos
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "Início do intervalo (RFC 3339)"
// @Param        to    query  string  false  "Fim do intervalo (RFC 3339)"
// @Success      200  {array}  dto.AgendamentoResponse
// @Router       /api/agendamentos [get]
func (h *AgendamentoHandler) List(c *fiber.Ctx) error {
	var from, to *time.Time
	if v := c.Query("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from inválido (use RFC 3339)"})
		}
		from = &t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to inválido (use RFC 3339)"})
		}
		to = &t
	}
	out, err := h.uc.List(GetUserID(c), from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obter agendamento por ID
// @Tags         agendamentos
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do agendamento"
// @Success      200  {object}  dto.AgendamentoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/agendamentos/{id} [get]
func (h *AgendamentoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar agendamento (remarcar, confirmar, cancelar, concluir)
// @Tags         agendamentos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do agendamento"
// @Param        body  body  dto.UpdateAgendamentoRequest  true  "campos a alterar"
// @Success      200   {object}  dto.AgendamentoResponse
// @Router       /api/agendamentos/{id} [put]
func (h *AgendamentoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAgendamentoRequest
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
// @Summary      Remover agendamento
// @Tags         agendamentos
// @Security     Bearer
// @Param        id  path  string  true  "ID do agendamento"
// @Success      204  "sem conteúdo"
// @Router       /api/agendamentos/{id} [delete]
func (h *AgendamentoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
