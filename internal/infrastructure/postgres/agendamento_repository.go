package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/clinivet/clinivet-api/internal/domain"
	"github.com/clinivet/clinivet-api/internal/domain/entity"
	"github.com/clinivet/clinivet-api/internal/domain/repository"
)

var _ repository.AgendamentoRepository = (*AgendamentoRepo)(nil)

const agendamentoColumns = `id, user_id, paciente_id, data_hora, tipo_servico, status, observacoes, created_at, updated_at`

// AgendamentoRepo implementação do porto AgendamentoRepository sobre PostgreSQL.
type AgendamentoRepo struct {
	q Querier
}

// NewAgendamentoRepository constrói o adaptador de agendamentos.
func NewAgendamentoRepository(q Querier) *AgendamentoRepo {
	return &AgendamentoRepo{q: q}
}

func scanAgendamento(row pgx.Row) (*entity.Agendamento, error) {
	var a entity.Agendamento
	err := row.Scan(&a.ID, &a.UserID, &a.PacienteID, &a.DataHora, &a.TipoServico, &a.Status, &a.Observacoes, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create persiste um novo agendamento.
func (r *AgendamentoRepo) Create(agendamento *entity.Agendamento) error {
	query := `
		INSERT INTO agendamentos (id, user_id, paciente_id, data_hora, tipo_servico, status, observacoes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		agendamento.ID, agendamento.UserID, agendamento.PacienteID, agendamento.DataHora,
		agendamento.TipoServico, agendamento.Status, agendamento.Observacoes,
		agendamento.CreatedAt, agendamento.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert agendamento: %w", err)
	}
	return nil
}

// GetByID obtém um agendamento por ID.
func (r *AgendamentoRepo) GetByID(id string) (*entity.Agendamento, error) {
	query := `SELECT ` + agendamentoColumns + ` FROM agendamentos WHERE id = $1`
	a, err := scanAgendamento(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get agendamento: %w", err)
	}
	return a, nil
}

// Update atualiza um agendamento.
func (r *AgendamentoRepo) Update(agendamento *entity.Agendamento) error {
	query := `
		UPDATE agendamentos SET paciente_id = $2, data_hora = $3, tipo_servico = $4, status = $5, observacoes = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		agendamento.ID, agendamento.PacienteID, agendamento.DataHora, agendamento.TipoServico,
		agendamento.Status, agendamento.Observacoes, agendamento.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update agendamento: %w", err)
	}
	return nil
}

// Delete remove um agendamento.
func (r *AgendamentoRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM agendamentos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete agendamento: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByUser lista agendamentos da conta, opcionalmente limitados a um intervalo.
func (r *AgendamentoRepo) ListByUser(userID string, from, to *time.Time) ([]*entity.Agendamento, error) {
	query := `SELECT ` + agendamentoColumns + `
		FROM agendamentos
		WHERE user_id = $1
		  AND ($2::timestamptz IS NULL OR data_hora >= $2)
		  AND ($3::timestamptz IS NULL OR data_hora <= $3)
		ORDER BY data_hora ASC`
	rows, err := r.q.Query(context.Background(), query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list agendamentos: %w", err)
	}
	defer rows.Close()
	return collectAgendamentos(rows)
}

// ListByPaciente lista os agendamentos de um paciente.
func (r *AgendamentoRepo) ListByPaciente(pacienteID string) ([]*entity.Agendamento, error) {
	query := `SELECT ` + agendamentoColumns + `
		FROM agendamentos WHERE paciente_id = $1 ORDER BY data_hora DESC`
	rows, err := r.q.Query(context.Background(), query, pacienteID)
	if err != nil {
		return nil, fmt.Errorf("list agendamentos by paciente: %w", err)
	}
	defer rows.Close()
	return collectAgendamentos(rows)
}

func collectAgendamentos(rows pgx.Rows) ([]*entity.Agendamento, error) {
	agendamentos := make([]*entity.Agendamento, 0)
	for rows.Next() {
		a, err := scanAgendamento(rows)
		if err != nil {
			return nil, fmt.Errorf("scan agendamento: %w", err)
		}
		agendamentos = append(agendamentos, a)
	}
	return agendamentos, rows.Err()
}
