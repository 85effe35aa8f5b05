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
	"github.com/saeelmomin786/TrackMyStartup-sub006/internal/engine/consts"
	"github.com/saeelmomin786/TrackMyStartup-sub006/internal/engine/service"
)

type completeSessionReq struct {
	Feedback *string `json:"feedback"`
}

type conferencingLinkReq struct {
	Link string `json:"link"`
}

func (rt *Router) sessionRouter(r fiber.Router) {
	sessionGroup := r.Group("/sessions")
	{
		// 预约会话
		sessionGroup.Post("", rt.bookSession)
		sessionGroup.Get("", rt.listSessions)
		sessionGroup.Get("/:sessionId", rt.getSession)
		sessionGroup.Post("/:sessionId/cancel", rt.cancelSession)
		sessionGroup.Post("/:sessionId/complete", rt.completeSession)
		sessionGroup.Put("/:sessionId/link", rt.attachConferencingLink)
	}
}

func (rt *Router) bookSession(c *fiber.Ctx) error {
	p, err := withPrincipal(c)
	if err != nil {
		return repErr(c, err)
	}
	var req service.BookingRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	result, err := rt.Services.Session.BookSession(c.UserContext(), p, req)
	if err != nil {
		return repErr(c, err)
	}
	c.Status(fiber.StatusCreated)
	c.Locals(consts.DETAIL, result)
	return nil
}

func (rt *Router) listSessions(c *fiber.Ctx) error {
	p, err := withPrincipal(c)
	if err != nil {
		return repErr(c, err)
	}
	result, err := rt.Services.Session.ListSessions(c.UserContext(), p)
	if err != nil {
		return repErr(c, err)
	}
	c.Locals(consts.DETAIL, result)
	return nil
}

func (rt *Router) getSession(c *fiber.Ctx) error {
	p, err := withPrincipal(c)
	if err != nil {
		return repErr(c, err)
	}
	result, err := rt.Services.Session.Get(c.UserContext(), p, c.Params("sessionId"))
	if err != nil {
		return repErr(c, err)
	}
	c.Locals(consts.DETAIL, result)
	return nil
}

func (rt *Router) cancelSession(c *fiber.Ctx) error {
	p, err := withPrincipal(c)
	if err != nil {
		return repErr(c, err)
	}
	result, err := rt.Services.Session.CancelSession(c.UserContext(), p, c.Params("sessionId"))
	if err != nil {
		return repErr(c, err)
	}
	c.Locals(consts.DETAIL, result)
	return nil
}

func (rt *Router) completeSession(c *fiber.Ctx) error {
	p, err := withPrincipal(c)
	if err != nil {
		return repErr(c, err)
	}
	var req completeSessionReq
	// body is optional
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return badBody(c, err)
		}
	}
	result, err := rt.Services.Session.CompleteSession(c.UserContext(), p, c.Params("sessionId"), req.Feedback)
	if err != nil {
		return repErr(c, err)
	}
	c.Locals(consts.DETAIL, result)
	return nil
}

func (rt *Router) attachConferencingLink(c *fiber.Ctx) error {
	p, err := withPrincipal(c)
	if err != nil {
		return repErr(c, err)
	}
	var req conferencingLinkReq
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	result, err := rt.Services.Session.AttachConferencingLink(c.UserContext(), p, c.Params("sessionId"), req.Link)
	if err != nil {
		return repErr(c, err)
	}
	c.Locals(consts.DETAIL, result)
	return nil
}
