package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"work-tools-backend/config"
	authutils "work-tools-backend/lib/utils/auth-utils"
	"work-tools-backend/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func initTestConfig() {
	conf := new(config.Configuration)
	conf.Auth.JWTSecret = "test-secret"
	conf.Auth.JWTExpireInSec = 3600
	config.Conf = conf
}

func TestAuthorization(t *testing.T) {
	initTestConfig()

	app := fiber.New()
	app.Use(AuthorizationRequired())
	app.Get("/whoami", func(ctx *fiber.Ctx) error {
		return ctx.SendString(GetUserSpace(ctx) + "/" + GetUserID(ctx) + "/" + GetUserName(ctx))
	})
	app.Get("/admin", SpaceAdminRequired(), func(ctx *fiber.Ctx) error {
		return ctx.SendString("ok")
	})

	t.Run(`запрос без токена отклоняется`, func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		resp, err := app.Test(req)
		require.Nil(t, err)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run(`данные пространства извлекаются из токена`, func(t *testing.T) {
		token, err := authutils.GetToken("user-1", "Алиса Иванова", "space-1", models.SpaceUserRole)
		require.Nil(t, err)

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.Nil(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		body, err := io.ReadAll(resp.Body)
		require.Nil(t, err)
		require.Equal(t, "space-1/user-1/Алиса Иванова", string(body))
	})

	t.Run(`токен с другим секретом отклоняется`, func(t *testing.T) {
		token, err := authutils.GetToken("user-1", "Алиса Иванова", "space-1", models.SpaceUserRole)
		require.Nil(t, err)
		config.Conf.Auth.JWTSecret = "other-secret"
		defer func() { config.Conf.Auth.JWTSecret = "test-secret" }()

		otherApp := fiber.New()
		otherApp.Use(AuthorizationRequired())
		otherApp.Get("/whoami", func(ctx *fiber.Ctx) error { return ctx.SendString("ok") })

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := otherApp.Test(req)
		require.Nil(t, err)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run(`админская ручка требует роль администратора`, func(t *testing.T) {
		userToken, err := authutils.GetToken("user-1", "Алиса Иванова", "space-1", models.SpaceUserRole)
		require.Nil(t, err)
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+userToken)
		resp, err := app.Test(req)
		require.Nil(t, err)
		require.Equal(t, http.StatusForbidden, resp.StatusCode)

		adminToken, err := authutils.GetToken("user-2", "Иван Петров", "space-1", models.SpaceAdminRole)
		require.Nil(t, err)
		req = httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+adminToken)
		resp, err = app.Test(req)
		require.Nil(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	})
}
