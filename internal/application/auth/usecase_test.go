package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Facturas-api/internal/application/auth"
	"github.com/jhoicas/Facturas-api/internal/application/dto"
	"github.com/jhoicas/Facturas-api/internal/domain"
	"github.com/jhoicas/Facturas-api/internal/domain/entity"
)

// fakeUserRepo almacena usuarios en memoria, indexados por email.
type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return f.byEmail[email], nil
}

func newAuthUC(repo *fakeUserRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "test-secret-key-for-unit-tests",
		ExpMinutes: 60,
		Issuer:     "facturas-test",
	})
}

// Registro y login con las mismas credenciales: debe emitir token.
func TestAuth_RegistroYLogin(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)
	ctx := context.Background()

	user, err := uc.Register(ctx, dto.RegisterRequest{
		Name: "Ana", Email: "Ana@Example.com", Password: "secreto1",
	})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", user.Email, "el email se normaliza a minúsculas")
	assert.NotEmpty(t, user.ID)

	resp, err := uc.Login(ctx, dto.LoginRequest{Email: "ana@example.com", Password: "secreto1"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, user.ID, resp.User.ID)
}

// El hash bcrypt nunca debe coincidir con el password plano.
func TestAuth_PasswordNuncaEnPlano(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email: "b@example.com", Password: "secreto1",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "secreto1", repo.byEmail["b@example.com"].PasswordHash)
}

func TestAuth_EmailDuplicado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterRequest{Email: "c@example.com", Password: "secreto1"})
	require.NoError(t, err)
	_, err = uc.Register(ctx, dto.RegisterRequest{Email: "c@example.com", Password: "otro-pass"})
	require.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestAuth_LoginPasswordIncorrecto(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterRequest{Email: "d@example.com", Password: "secreto1"})
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "d@example.com", Password: "equivocado"})
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuth_LoginUsuarioInexistente(t *testing.T) {
	uc := newAuthUC(newFakeUserRepo())
	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@example.com", Password: "x"})
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}
