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

package router

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/saeelmomin786/TrackMyStartup-sub006/internal/engine/service"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/cache"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/http"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/http/middleware"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/shutdown"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/trace"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/version"
)

/**
 * @file: router.go
 * @description: setup router, mentorship api
 */

type Router struct {
	Http     *http.Http
	Services *service.Services
	// Sessions backs the optional token session check
	Sessions cache.ICache
	// Drain flips /health to 503 once shutdown begins; may be nil
	Drain *shutdown.Manager
}

func NewRouter(httpConf *http.Http, services *service.Services, sessions cache.ICache, drain *shutdown.Manager) *Router {
	return &Router{
		Http:     httpConf,
		Services: services,
		Sessions: sessions,
		Drain:    drain,
	}
}

func (rt *Router) Router() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "Mentorship",
		DisableStartupMessage: true,
		ReadTimeout:           time.Duration(rt.Http.ReadTimeout) * time.Second,
		WriteTimeout:          time.Duration(rt.Http.WriteTimeout) * time.Second,
		IdleTimeout:           time.Duration(rt.Http.IdleTimeout) * time.Second,
		BodyLimit:             rt.Http.BodyLimit,
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
	})

	app.Use(
		middleware.RequestMiddleware(),
		middleware.ExceptionMiddleware,
		cors.New(),
		trace.FiberMiddleware(),
		http.AccessLogFormat(rt.Http),
		middleware.UnifiedResponseMiddleware(),
	)

	// 健康检查
	app.Get("/health", func(c *fiber.Ctx) error {
		if rt.Drain != nil && rt.Drain.Draining() {
			return c.Status(fiber.StatusServiceUnavailable).SendString("draining")
		}
		return c.SendString("ok")
	})

	// 版本信息
	app.Get("/version", func(c *fiber.Ctx) error {
		return c.JSON(version.GetVersion())
	})

	auth := middleware.AuthorizationMiddleware(rt.Http.Auth, rt.Sessions)
	api := app.Group(rt.Http.ContextPath, auth)
	{
		rt.requestRouter(api)
		rt.assignmentRouter(api)
		rt.slotRouter(api)
		rt.sessionRouter(api)
	}

	// 找不到路径时的处理 - 必须在所有路由注册之后
	app.Use(func(c *fiber.Ctx) error {
		return http.WithRepErrMsg(c, fiber.StatusNotFound, http.NotFound.Code, "request path not found", c.Path())
	})

	return app
}
