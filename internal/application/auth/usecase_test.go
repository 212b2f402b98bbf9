package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Xavis19/NuclearVET-sub001/internal/application/auth"
	"github.com/Xavis19/NuclearVET-sub001/internal/application/dto"
	"github.com/Xavis19/NuclearVET-sub001/internal/domain"
	"github.com/Xavis19/NuclearVET-sub001/internal/domain/entity"
	pkgjwt "github.com/Xavis19/NuclearVET-sub001/pkg/jwt"
)

type fakeUsuarioRepo struct {
	porEmail map[string]*entity.Usuario
}

func (r *fakeUsuarioRepo) Create(u *entity.Usuario) error {
	r.porEmail[u.Email] = u
	return nil
}

func (r *fakeUsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	for _, u := range r.porEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUsuarioRepo) FindByEmail(email string) (*entity.Usuario, error) {
	return r.porEmail[email], nil
}

func setupAuth(t *testing.T, activo bool) *auth.AuthUseCase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secreta123"), bcrypt.MinCost)
	require.NoError(t, err)
	repo := &fakeUsuarioRepo{porEmail: map[string]*entity.Usuario{
		"vet@clinica.test": {
			ID:           "user-1",
			Email:        "vet@clinica.test",
			PasswordHash: string(hash),
			Nombre:       "Dra. Prueba",
			Rol:          entity.RolVeterinario,
			Activo:       activo,
			CreatedAt:    time.Now(),
		},
	}}
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "secret-de-test",
		ExpMinutes: 60,
		Issuer:     "nuclearvet-test",
	})
}

func TestLogin_OK(t *testing.T) {
	uc := setupAuth(t, true)

	out, err := uc.Login(dto.LoginRequest{Email: "vet@clinica.test", Password: "secreta123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "user-1", out.Usuario.ID)
	assert.Equal(t, entity.RolVeterinario, out.Usuario.Rol)

	userID, rol, err := pkgjwt.Parse("secret-de-test", out.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, entity.RolVeterinario, rol)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc := setupAuth(t, true)
	_, err := uc.Login(dto.LoginRequest{Email: "vet@clinica.test", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := setupAuth(t, true)
	_, err := uc.Login(dto.LoginRequest{Email: "nadie@clinica.test", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	uc := setupAuth(t, false)
	_, err := uc.Login(dto.LoginRequest{Email: "vet@clinica.test", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
