package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/clinivet/clinivet-api/internal/domain"
	"github.com/clinivet/clinivet-api/internal/domain/entity"
	"github.com/clinivet/clinivet-api/internal/domain/repository"
)

var _ repository.ProntuarioRepository = (*ProntuarioRepo)(nil)

const prontuarioColumns = `id, user_id, paciente_id, data_consulta, motivo_consulta, sintomas,
	diagnostico, tratamento, medicamentos, peso_atual, temperatura, observacoes, created_at, updated_at`

// ProntuarioRepo implementação do porto ProntuarioRepository sobre PostgreSQL.
type ProntuarioRepo struct {
	q Querier
}

// NewProntuarioRepository constrói o adaptador de prontuários.
func NewProntuarioRepository(q Querier) *ProntuarioRepo {
	return &ProntuarioRepo{q: q}
}

func scanProntuario(row pgx.Row) (*entity.Prontuario, error) {
	var p entity.Prontuario
	err := row.Scan(
		&p.ID, &p.UserID, &p.PacienteID, &p.DataConsulta, &p.MotivoConsulta, &p.Sintomas,
		&p.Diagnostico, &p.Tratamento, &p.Medicamentos, &p.PesoAtual, &p.Temperatura,
		&p.Observacoes, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste um novo prontuário.
func (r *ProntuarioRepo) Create(prontuario *entity.Prontuario) error {
	query := `
		INSERT INTO prontuarios (id, user_id, paciente_id, data_consulta, motivo_consulta, sintomas,
			diagnostico, tratamento, medicamentos, peso_atual, temperatura, observacoes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		prontuario.ID, prontuario.UserID, prontuario.PacienteID, prontuario.DataConsulta,
		prontuario.MotivoConsulta, prontuario.Sintomas, prontuario.Diagnostico,
		prontuario.Tratamento, prontuario.Medicamentos, prontuario.PesoAtual,
		prontuario.Temperatura, prontuario.Observacoes, prontuario.CreatedAt, prontuario.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert prontuario: %w", err)
	}
	return nil
}

// GetByID obtém um prontuário por ID.
func (r *ProntuarioRepo) GetByID(id string) (*entity.Prontuario, error) {
	query := `SELECT ` + prontuarioColumns + ` FROM prontuarios WHERE id = $1`
	p, err := scanProntuario(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get prontuario: %w", err)
	}
	return p, nil
}

// Update atualiza um prontuário.
func (r *ProntuarioRepo) Update(prontuario *entity.Prontuario) error {
	query := `
		UPDATE prontuarios SET data_consulta = $2, motivo_consulta = $3, sintomas = $4,
			diagnostico = $5, tratamento = $6, medicamentos = $7, peso_atual = $8,
			temperatura = $9, observacoes = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		prontuario.ID, prontuario.DataConsulta, prontuario.MotivoConsulta, prontuario.Sintomas,
		prontuario.Diagnostico, prontuario.Tratamento, prontuario.Medicamentos,
		prontuario.PesoAtual, prontuario.Temperatura, prontuario.Observacoes, prontuario.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update prontuario: %w", err)
	}
	return nil
}

// Delete remove um prontuário.
func (r *ProntuarioRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM prontuarios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete prontuario: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByPaciente lista os prontuários de um paciente, mais recentes primeiro.
func (r *ProntuarioRepo) ListByPaciente(pacienteID string) ([]*entity.Prontuario, error) {
	query := `SELECT ` + prontuarioColumns + `
		FROM prontuarios WHERE paciente_id = $1 ORDER BY data_consulta DESC`
	rows, err := r.q.Query(context.Background(), query, pacienteID)
	if err != nil {
		return nil, fmt.Errorf("list prontuarios by paciente: %w", err)
	}
	defer rows.Close()
	return collectProntuarios(rows)
}

// ListByUser lista prontuários da conta com paginação.
func (r *ProntuarioRepo) ListByUser(userID string, limit, offset int) ([]*entity.Prontuario, error) {
	query := `SELECT ` + prontuarioColumns + `
		FROM prontuarios WHERE user_id = $1
		ORDER BY data_consulta DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list prontuarios: %w", err)
	}
	defer rows.Close()
	return collectProntuarios(rows)
}

func collectProntuarios(rows pgx.Rows) ([]*entity.Prontuario, error) {
	prontuarios := make([]*entity.Prontuario, 0)
	for rows.Next() {
		p, err := scanProntuario(rows)
		if err != nil {
			return nil, fmt.Errorf("scan prontuario: %w", err)
		}
		prontuarios = append(prontuarios, p)
	}
	return prontuarios, rows.Err()
}
