// Copyright 2025 Arcade Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package middleware

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/saeelmomin786/TrackMyStartup-sub006/internal/engine/consts"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/cache"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/http"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/http/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-secret"

func decode(t *testing.T, body io.Reader) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(body)
	require.NoError(t, err)
	out := map[string]any{}
	require.NoError(t, sonic.Unmarshal(raw, &out))
	return out
}

func TestRequestMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(RequestMiddleware())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("request_id").(string))
	})

	req := httptest.NewRequest(fiber.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "fixed-id")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "fixed-id", resp.Header.Get("X-Request-Id"))

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))
}

func TestUnifiedResponseMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(UnifiedResponseMiddleware())
	app.Get("/detail", func(c *fiber.Ctx) error {
		c.Locals(consts.DETAIL, map[string]string{"id": "1"})
		return nil
	})
	app.Get("/operation", func(c *fiber.Ctx) error {
		c.Locals(consts.OPERATION, "1")
		return nil
	})
	app.Get("/error", func(c *fiber.Ctx) error {
		return http.WithRepErrMsg(c, fiber.StatusConflict, http.SlotAlreadyBooked.Code, http.SlotAlreadyBooked.Msg, c.Path())
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/detail", nil))
	require.NoError(t, err)
	body := decode(t, resp.Body)
	assert.Equal(t, float64(200), body["code"])
	assert.Equal(t, map[string]any{"id": "1"}, body["detail"])

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/operation", nil))
	require.NoError(t, err)
	body = decode(t, resp.Body)
	assert.Equal(t, http.Success.Msg, body["msg"])
	assert.NotContains(t, body, "detail")

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/error", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	body = decode(t, resp.Body)
	assert.Equal(t, float64(http.SlotAlreadyBooked.Code), body["code"])
}

func TestExceptionMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(ExceptionMiddleware)
	app.Get("/", func(c *fiber.Ctx) error {
		panic("boom")
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "boom", decode(t, resp.Body)["errMsg"])
}

func TestAuthorizationMiddleware(t *testing.T) {
	sessions := cache.NewLocalCache(0)
	auth := http.Auth{SecretKey: testSecret, RedisKeyPrefix: "session:", CheckSession: true}

	app := fiber.New()
	app.Use(AuthorizationMiddleware(auth, sessions))
	app.Get("/", func(c *fiber.Ctx) error {
		claims, ok := ClaimsFrom(c)
		if !ok {
			return c.SendStatus(fiber.StatusTeapot)
		}
		return c.SendString(claims.UserId)
	})

	token, _, err := jwt.GenToken(jwt.Identity{UserId: "u1", Role: "mentor"}, []byte(testSecret), 10, 20)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		seed   bool
		status int
	}{
		{name: "missing header", status: fiber.StatusUnauthorized},
		{name: "not bearer", header: "Basic abc", status: fiber.StatusUnauthorized},
		{name: "garbage token", header: "Bearer abc", status: fiber.StatusUnauthorized},
		{name: "no session", header: "Bearer " + token, status: fiber.StatusUnauthorized},
		{name: "ok", header: "Bearer " + token, seed: true, status: fiber.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.seed {
				sessions.Set(context.Background(), "session:u1", "1", 0)
			}
			req := httptest.NewRequest(fiber.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(fiber.HeaderAuthorization, tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}
