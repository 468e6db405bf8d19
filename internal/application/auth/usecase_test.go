package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastellanos/terralote-api/internal/application/auth"
	"github.com/jcastellanos/terralote-api/internal/application/dto"
	"github.com/jcastellanos/terralote-api/internal/domain"
	"github.com/jcastellanos/terralote-api/internal/infrastructure/memory"
	pkgjwt "github.com/jcastellanos/terralote-api/pkg/jwt"
)

const (
	testSecret = "secret-de-pruebas"
	testSuffix = "123"
)

func newAuthUseCase(t *testing.T, loginDelayMS int) *auth.AuthUseCase {
	t.Helper()
	store := memory.NewStore()
	require.NoError(t, memory.SeedDemoData(store, testSuffix))
	return auth.NewAuthUseCase(memory.NewUserRepository(store), auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "terralote-test",
	}, loginDelayMS)
}

func TestDerivedPassword(t *testing.T) {
	assert.Equal(t, "admin123", auth.DerivedPassword("admin@terralote.com", "123"))
	assert.Equal(t, "gerenteXYZ", auth.DerivedPassword("gerente@terralote.com", "XYZ"))
}

func TestLogin_CredencialesDerivadas(t *testing.T) {
	uc := newAuthUseCase(t, 0)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "admin@terralote.com",
		Password: auth.DerivedPassword("admin@terralote.com", testSuffix),
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, "u-admin", resp.User.ID)
	assert.Equal(t, "admin", resp.User.Role)

	// El token emitido debe parsear con los claims del usuario.
	userID, role, err := pkgjwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "u-admin", userID)
	assert.Equal(t, "admin", role)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc := newAuthUseCase(t, 0)

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "admin@terralote.com",
		Password: "admin999",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_EmailDesconocido(t *testing.T) {
	uc := newAuthUseCase(t, 0)

	// El email inexistente responde igual que la contraseña mala:
	// no se filtra cuáles cuentas existen.
	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "nadie@terralote.com",
		Password: "nadie123",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_ContextoCanceladoDuranteLaPausa(t *testing.T) {
	uc := newAuthUseCase(t, 5000)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uc.Login(ctx, dto.LoginRequest{
		Email:    "admin@terralote.com",
		Password: "admin123",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
