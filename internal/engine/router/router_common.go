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
	"github.com/gofiber/fiber/v2"
	"github.com/saeelmomin786/TrackMyStartup-sub006/internal/engine/errs"
	"github.com/saeelmomin786/TrackMyStartup-sub006/internal/engine/model"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/http"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/http/middleware"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/log"
)

// principal builds the caller identity from the token claims
func principal(c *fiber.Ctx) (model.Principal, bool) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		return model.Principal{}, false
	}
	p := model.Principal{UserId: claims.UserId, Role: model.Role(claims.Role), DisplayName: claims.DisplayName}
	return p, p.Role.Valid() && p.UserId != ""
}

func withPrincipal(c *fiber.Ctx) (model.Principal, error) {
	p, ok := principal(c)
	if !ok {
		return p, fiber.ErrUnauthorized
	}
	return p, nil
}

// repErr writes the unified error response for a domain error
func repErr(c *fiber.Ctx, err error) error {
	if err == fiber.ErrUnauthorized {
		return http.WithRepErrMsg(c, fiber.StatusUnauthorized, http.AuthenticationFailed.Code, http.AuthenticationFailed.Msg, c.Path())
	}

	status, code := fiber.StatusInternalServerError, http.InternalError.Code
	msg := errs.Message(err)
	switch errs.KindOf(err) {
	case errs.KindValidation:
		status, code = fiber.StatusBadRequest, http.BadRequest.Code
	case errs.KindNotFound:
		status, code = fiber.StatusNotFound, http.NotFound.Code
	case errs.KindInvalidState:
		status, code = fiber.StatusConflict, http.InvalidState.Code
	case errs.KindGateNotCleared:
		status, code = fiber.StatusConflict, http.GateNotCleared.Code
	case errs.KindSlotAlreadyBooked:
		status, code = fiber.StatusConflict, http.SlotAlreadyBooked.Code
	case errs.KindPreconditionFailed:
		status, code = fiber.StatusPreconditionFailed, http.PreconditionFailed.Code
	default:
		log.Errorw("request failed", "path", c.Path(), "error", err)
		msg = http.InternalError.Msg
	}
	return http.WithRepErrMsg(c, status, code, msg, c.Path())
}

func badBody(c *fiber.Ctx, err error) error {
	log.Warnw("parse request body failed", "path", c.Path(), "error", err)
	return http.WithRepErrMsg(c, fiber.StatusBadRequest, http.RequestParameterParsingFailed.Code, http.RequestParameterParsingFailed.Msg, c.Path())
}
