package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/clinivet/clinivet-api/internal/application/dto"
	"github.com/clinivet/clinivet-api/internal/application/reports"
)

// RelatorioHandler trata o download dos relatórios em PDF (protegido).
type RelatorioHandler struct {
	uc *reports.PDFUseCase
}

// NewRelatorioHandler constrói o handler.
func NewRelatorioHandler(uc *reports.PDFUseCase) *RelatorioHandler {
	return &RelatorioHandler{uc: uc}
}

// EstoquePDF godoc
// @Summary      Baixar relatório de estoque em PDF
// @Tags         relatorios
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/relatorios/estoque.pdf [get]
func (h *RelatorioHandler) EstoquePDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.uc.RelatorioEstoquePDF(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// FinanceiroPDF godoc
// @Summary      Baixar fechamento financeiro mensal em PDF
// @Tags         relatorios
// @Security     Bearer
// @Produce      application/pdf
// @Param        ano  query  int  false  "Ano (padrão: atual)"
// @Param        mes  query  int  false  "Mês 1-12 (padrão: atual)"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/relatorios/financeiro.pdf [get]
func (h *RelatorioHandler) FinanceiroPDF(c *fiber.Ctx) error {
	now := time.Now()
	ano := c.QueryInt("ano", now.Year())
	mes := c.QueryInt("mes", int(now.Month()))
	if mes < 1 || mes > 12 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "mes deve estar entre 1 e 12"})
	}
	pdfBytes, filename, err := h.uc.RelatorioFinanceiroPDF(c.Context(), GetUserID(c), ano, time.Month(mes))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
