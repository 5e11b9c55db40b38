package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinivet/clinivet-api/internal/application/auth"
	"github.com/clinivet/clinivet-api/internal/application/dto"
	"github.com/clinivet/clinivet-api/internal/domain"
	"github.com/clinivet/clinivet-api/internal/domain/entity"
	"github.com/clinivet/clinivet-api/pkg/jwt"
)

type memUsuarioRepo struct {
	porEmail map[string]*entity.Usuario
}

func newMemUsuarioRepo() *memUsuarioRepo {
	return &memUsuarioRepo{porEmail: make(map[string]*entity.Usuario)}
}

func (r *memUsuarioRepo) Create(u *entity.Usuario) error {
	if _, ok := r.porEmail[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	cp := *u
	r.porEmail[u.Email] = &cp
	return nil
}

func (r *memUsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	for _, u := range r.porEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUsuarioRepo) FindByEmail(email string) (*entity.Usuario, error) {
	u, ok := r.porEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUsuarioRepo) Update(u *entity.Usuario) error {
	r.porEmail[u.Email] = u
	return nil
}

func newAuthUseCase(repo *memUsuarioRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "segredo-de-teste-muito-longo",
		ExpMinutes: 15,
		Issuer:     "clinivet-test",
	})
}

func TestRegisterELogin_Roundtrip(t *testing.T) {
	repo := newMemUsuarioRepo()
	uc := newAuthUseCase(repo)

	user, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "vet@clinica.com",
		Password: "senha-segura",
		Nome:     "Dra. Ana",
		Role:     entity.RoleVeterinario,
	})
	require.NoError(t, err)
	assert.Equal(t, "vet@clinica.com", user.Email)
	assert.Equal(t, entity.RoleVeterinario, user.Role)
	assert.Equal(t, "active", user.Status)

	resp, err := uc.Login(dto.LoginRequest{Email: "vet@clinica.com", Password: "senha-segura"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, user.ID, resp.User.ID)

	// token carrega ID e papel do usuário
	userID, role, err := jwt.Parse("segredo-de-teste-muito-longo", resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
	assert.Equal(t, entity.RoleVeterinario, role)
}

func TestRegister_DefaultsNomeERole(t *testing.T) {
	uc := newAuthUseCase(newMemUsuarioRepo())

	user, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "recepcao@clinica.com",
		Password: "senha-segura",
	})
	require.NoError(t, err)
	assert.Equal(t, "recepcao@clinica.com", user.Nome, "nome vazio cai no email")
	assert.Equal(t, entity.RoleAtendente, user.Role, "papel padrão é atendente")
}

func TestRegister_EmailJaExiste(t *testing.T) {
	uc := newAuthUseCase(newMemUsuarioRepo())

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "a@b.com", Password: "senha-segura"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "a@b.com", Password: "outra-senha"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_RoleInvalida(t *testing.T) {
	uc := newAuthUseCase(newMemUsuarioRepo())

	_, err := uc.RegisterUser(dto.RegisterRequest{
		Email: "a@b.com", Password: "senha-segura", Role: "gerente",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_CamposObrigatorios(t *testing.T) {
	uc := newAuthUseCase(newMemUsuarioRepo())

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "a@b.com", Password: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := newAuthUseCase(newMemUsuarioRepo())

	_, err := uc.Login(dto.LoginRequest{Email: "ninguem@b.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_SenhaErrada(t *testing.T) {
	uc := newAuthUseCase(newMemUsuarioRepo())

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "a@b.com", Password: "senha-certa"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "a@b.com", Password: "senha-errada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInativo(t *testing.T) {
	repo := newMemUsuarioRepo()
	uc := newAuthUseCase(repo)

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "a@b.com", Password: "senha-segura"})
	require.NoError(t, err)
	repo.porEmail["a@b.com"].Status = "inactive"

	_, err = uc.Login(dto.LoginRequest{Email: "a@b.com", Password: "senha-segura"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
