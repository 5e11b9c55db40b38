package repository

import "github.com/clinivet/clinivet-api/internal/domain/entity"

// ClienteRepository define o porto de persistência para Cliente.
type ClienteRepository interface {
	Create(cliente *entity.Cliente) error
	GetByID(id string) (*entity.Cliente, error)
	GetByCPF(userID, cpf string) (*entity.Cliente, error)
	Update(cliente *entity.Cliente) error
	Delete(id string) error
	ListByUser(userID string, nome string) ([]*entity.Cliente, error)
}
