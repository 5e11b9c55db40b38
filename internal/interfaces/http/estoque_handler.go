package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/clinivet/clinivet-api/internal/application/dto"
	"github.com/clinivet/clinivet-api/internal/application/stock"
	"github.com/clinivet/clinivet-api/internal/domain/entity"
)

// EstoqueHandler trata movimentações de estoque, histórico e alertas (protegido).
type EstoqueHandler struct {
	movement *stock.RegisterMovementUseCase
	report   *stock.StockReportUseCase
}

// NewEstoqueHandler constrói o handler.
func NewEstoqueHandler(movement *stock.RegisterMovementUseCase, report *stock.StockReportUseCase) *EstoqueHandler {
	return &EstoqueHandler{movement: movement, report: report}
}

// RegistrarMovimentacao godoc
// @Summary      Registrar movimentação de estoque
// @Description  entrada soma, saida subtrai e ajuste define o valor absoluto.
//
//	A movimentação e a nova quantidade do produto são gravadas na
//	mesma transação.
//
// @Tags         estoque
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarMovimentacaoRequest  true  "produto_id, tipo, quantidade, motivo"
// @Success      201   {object}  dto.MovimentacaoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/estoque/movimentacoes [post]
func (h *EstoqueHandler) RegistrarMovimentacao(c *fiber.Ctx) error {
	var in dto.RegistrarMovimentacaoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	mov, err := h.movement.Register(c.Context(), stock.MovimentacaoInput{
		UserID:        GetUserID(c),
		ProdutoID:     in.ProdutoID,
		Tipo:          in.Tipo,
		Quantidade:    in.Quantidade,
		Motivo:        in.Motivo,
		Observacoes:   in.Observacoes,
		AgendamentoID: in.AgendamentoID,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovimentacaoResponse(mov))
}

// HistoricoProduto godoc
// @Summary      Histórico de movimentações de um produto
// @Description  Ledger completo em ordem cronológica ascendente.
// @Tags         estoque
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do produto"
// @Success      200  {array}  dto.MovimentacaoResponse
// @Router       /api/produtos/{id}/movimentacoes [get]
func (h *EstoqueHandler) HistoricoProduto(c *fiber.Ctx) error {
	movs, err := h.report.HistoricoProduto(GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.MovimentacaoResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, *toMovimentacaoResponse(m))
	}
	return c.JSON(out)
}

// ResumoProduto godoc
// @Summary      Resumo de entradas e saídas de um produto
// @Description  Totais na janela indicada; ajustes ficam fora da soma.
// @Tags         estoque
// @Security     Bearer
// @Produce      json
// @Param        id    path   string  true   "ID do produto"
// @Param        dias  query  int     false  "Janela em dias (padrão 30)"
// @Success      200  {object}  dto.ResumoMovimentacaoResponse
// @Router       /api/produtos/{id}/movimentacoes/resumo [get]
func (h *EstoqueHandler) ResumoProduto(c *fiber.Ctx) error {
	dias := c.QueryInt("dias", 30)
	if dias < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dias não pode ser negativo"})
	}
	since := time.Now().AddDate(0, 0, -dias)
	resumo, err := h.report.ResumoMovimentacao(GetUserID(c), c.Params("id"), since)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ResumoMovimentacaoResponse{
		ProdutoID:     c.Params("id"),
		Desde:         since,
		TotalEntradas: resumo.TotalEntradas,
		TotalSaidas:   resumo.TotalSaidas,
	})
}

// MovimentacoesRecentes godoc
// @Summary      Movimentações recentes da conta
// @Tags         estoque
// @Security     Bearer
// @Produce      json
// @Param        dias    query  int  false  "Janela em dias (padrão 30)"
// @Param        limit   query  int  false  "Limite (padrão 50)"
// @Param        offset  query  int  false  "Deslocamento"
// @Success      200  {array}  dto.MovimentacaoResponse
// @Router       /api/estoque/movimentacoes [get]
func (h *EstoqueHandler) MovimentacoesRecentes(c *fiber.Ctx) error {
	dias := c.QueryInt("dias", 30)
	if dias < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dias não pode ser negativo"})
	}
	since := time.Now().AddDate(0, 0, -dias)
	movs, err := h.report.MovimentacoesRecentes(GetUserID(c), since, c.QueryInt("limit", 50), c.QueryInt("offset", 0))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.MovimentacaoResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, *toMovimentacaoResponse(m))
	}
	return c.JSON(out)
}

// EstoqueBaixo godoc
// @Summary      Produtos com estoque baixo
// @Description  quantidade_atual <= quantidade_minima (limite inclusivo).
// @Tags         estoque
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProdutoResponse
// @Router       /api/estoque/alertas/baixo [get]
func (h *EstoqueHandler) EstoqueBaixo(c *fiber.Ctx) error {
	produtos, err := h.report.EstoqueBaixo(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toProdutoResponses(produtos))
}

// Vencendo godoc
// @Summary      Produtos com validade próxima
// @Tags         estoque
// @Security     Bearer
// @Produce      json
// @Param        dias  query  int  false  "Janela em dias (padrão 30)"
// @Success      200  {array}  dto.ProdutoResponse
// @Router       /api/estoque/alertas/vencendo [get]
func (h *EstoqueHandler) Vencendo(c *fiber.Ctx) error {
	produtos, err := h.report.Vencendo(GetUserID(c), c.QueryInt("dias", 30))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toProdutoResponses(produtos))
}

// Relatorio godoc
// @Summary      Relatório consolidado de estoque
// @Description  Alertas de estoque baixo, produtos vencendo em 30 dias e valor total.
// @Tags         estoque
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.RelatorioEstoqueResponse
// @Router       /api/estoque/relatorio [get]
func (h *EstoqueHandler) Relatorio(c *fiber.Ctx) error {
	rel, err := h.report.Relatorio(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.RelatorioEstoqueResponse{
		EstoqueBaixo: toProdutoResponses(rel.EstoqueBaixo),
		Vencendo:     toProdutoResponses(rel.Vencendo),
		ValorTotal:   rel.ValorTotal,
		GeradoEm:     rel.GeradoEm,
	})
}

func toMovimentacaoResponse(m *entity.MovimentacaoEstoque) *dto.MovimentacaoResponse {
	return &dto.MovimentacaoResponse{
		ID:                 m.ID,
		ProdutoID:          m.ProdutoID,
		Tipo:               m.Tipo,
		Quantidade:         m.Quantidade,
		QuantidadeAnterior: m.QuantidadeAnterior,
		QuantidadeNova:     m.QuantidadeNova,
		Motivo:             m.Motivo,
		Observacoes:        m.Observacoes,
		AgendamentoID:      m.AgendamentoID,
		CreatedAt:          m.CreatedAt,
	}
}

func toProdutoResponses(produtos []*entity.Produto) []dto.ProdutoResponse {
	out := make([]dto.ProdutoResponse, 0, len(produtos))
	for _, p := range produtos {
		out = append(out, dto.ProdutoResponse{
			ID:               p.ID,
			Nome:             p.Nome,
			Categoria:        p.Categoria,
			Descricao:        p.Descricao,
			UnidadeMedida:    p.UnidadeMedida,
			QuantidadeAtual:  p.QuantidadeAtual,
			QuantidadeMinima: p.QuantidadeMinima,
			PrecoCusto:       p.PrecoCusto,
			PrecoVenda:       p.PrecoVenda,
			Fornecedor:       p.Fornecedor,
			DataValidade:     p.DataValidade,
			Lote:             p.Lote,
			CodigoBarras:     p.CodigoBarras,
			Ativo:            p.Ativo,
			CreatedAt:        p.CreatedAt,
			UpdatedAt:        p.UpdatedAt,
		})
	}
	return out
}
