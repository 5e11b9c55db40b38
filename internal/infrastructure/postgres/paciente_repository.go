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

var _ repository.PacienteRepository = (*PacienteRepo)(nil)

const pacienteColumns = `id, user_id, cliente_id, nome, especie, raca, idade, peso, created_at, updated_at`

// PacienteRepo implementação do porto PacienteRepository sobre PostgreSQL.
type PacienteRepo struct {
	q Querier
}

// NewPacienteRepository constrói o adaptador de pacientes.
func NewPacienteRepository(q Querier) *PacienteRepo {
	return &PacienteRepo{q: q}
}

func scanPaciente(row pgx.Row) (*entity.Paciente, error) {
	var p entity.Paciente
	err := row.Scan(&p.ID, &p.UserID, &p.ClienteID, &p.Nome, &p.Especie, &p.Raca, &p.Idade, &p.Peso, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste um novo paciente.
func (r *PacienteRepo) Create(paciente *entity.Paciente) error {
	query := `
		INSERT INTO pacientes (id, user_id, cliente_id, nome, especie, raca, idade, peso, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		paciente.ID, paciente.UserID, paciente.ClienteID, paciente.Nome, paciente.Especie,
		paciente.Raca, paciente.Idade, paciente.Peso, paciente.CreatedAt, paciente.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert paciente: %w", err)
	}
	return nil
}

// GetByID obtém um paciente por ID.
func (r *PacienteRepo) GetByID(id string) (*entity.Paciente, error) {
	query := `SELECT ` + pacienteColumns + ` FROM pacientes WHERE id = $1`
	p, err := scanPaciente(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get paciente: %w", err)
	}
	return p, nil
}

// Update atualiza os dados do paciente.
func (r *PacienteRepo) Update(paciente *entity.Paciente) error {
	query := `
		UPDATE pacientes SET nome = $2, especie = $3, raca = $4, idade = $5, peso = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		paciente.ID, paciente.Nome, paciente.Especie, paciente.Raca, paciente.Idade,
		paciente.Peso, paciente.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update paciente: %w", err)
	}
	return nil
}

// Delete remove um paciente.
func (r *PacienteRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM pacientes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete paciente: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByUser lista pacientes da conta.
func (r *PacienteRepo) ListByUser(userID string) ([]*entity.Paciente, error) {
	query := `SELECT ` + pacienteColumns + ` FROM pacientes WHERE user_id = $1 ORDER BY nome ASC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list pacientes: %w", err)
	}
	defer rows.Close()
	return collectPacientes(rows)
}

// ListByCliente lista os pacientes de um tutor.
func (r *PacienteRepo) ListByCliente(clienteID string) ([]*entity.Paciente, error) {
	query := `SELECT ` + pacienteColumns + ` FROM pacientes WHERE cliente_id = $1 ORDER BY nome ASC`
	rows, err := r.q.Query(context.Background(), query, clienteID)
	if err != nil {
		return nil, fmt.Errorf("list pacientes by cliente: %w", err)
	}
	defer rows.Close()
	return collectPacientes(rows)
}

func collectPacientes(rows pgx.Rows) ([]*entity.Paciente, error) {
	pacientes := make([]*entity.Paciente, 0)
	for rows.Next() {
		p, err := scanPaciente(rows)
		if err != nil {
			return nil, fmt.Errorf("scan paciente: %w", err)
		}
		pacientes = append(pacientes, p)
	}
	return pacientes, rows.Err()
}
