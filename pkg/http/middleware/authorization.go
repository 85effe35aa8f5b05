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
	"errors"
	"strings"

	goJwt "github.com/golang-jwt/jwt/v5"
	"github.com/gofiber/fiber/v2"
	"github.com/saeelmomin786/TrackMyStartup-sub006/internal/engine/consts"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/cache"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/http"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/http/jwt"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/log"
)

// AuthorizationMiddleware 认证中间件
// 解析 Bearer token, auth.CheckSession 为 true 时还要求会话 key 存在于缓存中
func AuthorizationMiddleware(auth http.Auth, sessions cache.ICache) fiber.Handler {
	return func(c *fiber.Ctx) error {
		aToken := c.Get(fiber.HeaderAuthorization)
		if aToken == "" {
			return http.WithRepErrMsg(c, fiber.StatusUnauthorized, http.TokenBeEmpty.Code, http.TokenBeEmpty.Msg, c.Path())
		}

		parts := strings.SplitN(aToken, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return http.WithRepErrMsg(c, fiber.StatusUnauthorized, http.TokenBeEmpty.Code, http.TokenBeEmpty.Msg, c.Path())
		}

		claims, err := jwt.ParseToken(parts[1], auth.SecretKey)
		if err != nil {
			if errors.Is(err, goJwt.ErrTokenExpired) {
				return http.WithRepErrMsg(c, fiber.StatusUnauthorized, http.TokenExpired.Code, http.TokenExpired.Msg, c.Path())
			}
			log.Warnw("parse token failed", "error", err)
			return http.WithRepErrMsg(c, fiber.StatusUnauthorized, http.InvalidToken.Code, http.InvalidToken.Msg, c.Path())
		}

		if auth.CheckSession && sessions != nil {
			exists, err := sessions.Exists(c.UserContext(), auth.RedisKeyPrefix+claims.UserId).Result()
			if err != nil {
				log.Errorw("check session exists failed", "userId", claims.UserId, "error", err)
				return http.WithRepErrMsg(c, fiber.StatusInternalServerError, http.InternalError.Code, http.InternalError.Msg, c.Path())
			}
			if exists == 0 {
				return http.WithRepErrMsg(c, fiber.StatusUnauthorized, http.TokenExpired.Code, http.TokenExpired.Msg, c.Path())
			}
		}

		c.Locals(consts.CLAIMS, claims)
		return c.Next()
	}
}

// ClaimsFrom returns the claims set by AuthorizationMiddleware
func ClaimsFrom(c *fiber.Ctx) (*jwt.AuthClaims, bool) {
	claims, ok := c.Locals(consts.CLAIMS).(*jwt.AuthClaims)
	return claims, ok && claims != nil
}
