package http_test

import (
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinivet/clinivet-api/internal/domain/entity"
	apphttp "github.com/clinivet/clinivet-api/internal/interfaces/http"
	"github.com/clinivet/clinivet-api/pkg/jwt"
)

const (
	testJWTSecret = "segredo-de-teste-muito-longo"
	testIssuer    = "clinivet-test"
	testUserID    = "11111111-1111-1111-1111-111111111111"
	testExpMin    = 15
)

func buildTestApp(t *testing.T, roles ...string) *fiber.App {
	t.Helper()
	app := fiber.New()
	grupo := app.Group("/", apphttp.AuthMiddleware(testJWTSecret))
	handler := func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"role":    apphttp.GetRole(c),
		})
	}
	if len(roles) > 0 {
		grupo.Get("/protegida", apphttp.RequireRole(roles...), handler)
	} else {
		grupo.Get("/protegida", handler)
	}
	return app
}

func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := jwt.Generate(testJWTSecret, testUserID, role, testIssuer, testExpMin)
	require.NoError(t, err)
	return tok
}

func doRequest(t *testing.T, app *fiber.App, token string) (*nethttp.Response, map[string]string) {
	t.Helper()
	req := httptest.NewRequest(nethttp.MethodGet, "/protegida", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var parsed map[string]string
	if len(body) > 0 {
		_ = json.Unmarshal(body, &parsed)
	}
	return resp, parsed
}

func TestAuthMiddleware_SemHeader(t *testing.T) {
	app := buildTestApp(t)
	resp, body := doRequest(t, app, "")
	assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_TOKEN", body["code"])
}

func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	app := buildTestApp(t)
	req := httptest.NewRequest(nethttp.MethodGet, "/protegida", nil)
	req.Header.Set("Authorization", "Basic abc123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenInvalido(t *testing.T) {
	app := buildTestApp(t)
	resp, body := doRequest(t, app, "nao-e-um-jwt")
	assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", body["code"])
}

func TestAuthMiddleware_TokenComOutroSecret(t *testing.T) {
	tok, err := jwt.Generate("outro-secret-qualquer", testUserID, entity.RoleAdmin, testIssuer, testExpMin)
	require.NoError(t, err)

	app := buildTestApp(t)
	resp, body := doRequest(t, app, tok)
	assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", body["code"])
}

func TestAuthMiddleware_TokenExpirado(t *testing.T) {
	tok, err := jwt.Generate(testJWTSecret, testUserID, entity.RoleAdmin, testIssuer, -5)
	require.NoError(t, err)

	app := buildTestApp(t)
	resp, body := doRequest(t, app, tok)
	assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", body["code"])
}

func TestAuthMiddleware_ExtraiClaims(t *testing.T) {
	app := buildTestApp(t)
	resp, body := doRequest(t, app, tokenForRole(t, entity.RoleVeterinario))
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, entity.RoleVeterinario, body["role"])
}

func TestRequireRole_PapelPermitido(t *testing.T) {
	app := buildTestApp(t, entity.RoleAdmin)
	resp, _ := doRequest(t, app, tokenForRole(t, entity.RoleAdmin))
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
}

func TestRequireRole_MultiplosPapeis(t *testing.T) {
	app := buildTestApp(t, entity.RoleAdmin, entity.RoleVeterinario)
	resp, _ := doRequest(t, app, tokenForRole(t, entity.RoleVeterinario))
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
}

func TestRequireRole_PapelErrado(t *testing.T) {
	app := buildTestApp(t, entity.RoleAdmin, entity.RoleVeterinario)
	resp, body := doRequest(t, app, tokenForRole(t, entity.RoleAtendente))
	assert.Equal(t, nethttp.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "FORBIDDEN", body["code"])
}

func TestRequireRole_TokenSemPapel(t *testing.T) {
	app := buildTestApp(t, entity.RoleAdmin)
	resp, body := doRequest(t, app, tokenForRole(t, ""))
	assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_ROLE", body["code"])
}

func TestJWT_GenerateParseRoundtrip(t *testing.T) {
	tok, err := jwt.Generate(testJWTSecret, testUserID, entity.RoleAdmin, testIssuer, testExpMin)
	require.NoError(t, err)

	userID, role, err := jwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, userID)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestJWT_SecretVazio(t *testing.T) {
	_, err := jwt.Generate("", testUserID, entity.RoleAdmin, testIssuer, testExpMin)
	assert.Error(t, err)
}
