package repository

import "github.com/clinivet/clinivet-api/internal/domain/entity"

// UsuarioRepository define o porto de persistência para Usuario.
type UsuarioRepository interface {
	Create(u *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	FindByEmail(email string) (*entity.Usuario, error)
	Update(u *entity.Usuario) error
}
