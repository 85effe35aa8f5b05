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
	"github.com/saeelmomin786/TrackMyStartup-sub006/internal/engine/model"
)

type createRequestReq struct {
	MentorId string `json:"mentorId"`
	model.Terms
}

func (rt *Router) requestRouter(r fiber.Router) {
	requestGroup := r.Group("/requests")
	{
		// 发起合作请求
		requestGroup.Post("", rt.createRequest)

		// 请求列表, 导师看收到的, 创业公司看发出的
		requestGroup.Get("", rt.listRequests)

		requestGroup.Get("/:requestId", rt.getRequest)
		requestGroup.Post("/:requestId/accept", rt.acceptRequest)
		requestGroup.Post("/:requestId/reject", rt.rejectRequest)
		requestGroup.Post("/:requestId/cancel", rt.cancelRequest)
		requestGroup.Delete("/:requestId", rt.deleteRequest)
	}
}

func (rt *Router) createRequest(c *fiber.Ctx) error {
	p, err := withPrincipal(c)
	if err != nil {
		return repErr(c, err)
	}
	var req createRequestReq
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	result, err := rt.Services.Request.CreateRequest(c.UserContext(), p, req.MentorId, req.Terms)
	if err != nil {
		return repErr(c, err)
	}
	c.Status(fiber.StatusCreated)
	c.Locals(consts.DETAIL, result)
	return nil
}

func (rt *Router) listRequests(c *fiber.Ctx) error {
	p, err := withPrincipal(c)
	if err != nil {
		return repErr(c, err)
	}
	var result []*model.EngagementRequest
	if p.IsMentor() {
		result, err = rt.Services.Request.ListForMentor(c.UserContext(), p)
	} else {
		result, err = rt.Services.Request.ListForStartup(c.UserContext(), p)
	}
	if err != nil {
		return repErr(c, err)
	}
	c.Locals(consts.DETAIL, result)
	return nil
}

func (rt *Router) getRequest(c *fiber.Ctx) error {
	p, err := withPrincipal(c)
	if err != nil {
		return repErr(c, err)
	}
	result, err := rt.Services.Request.Get(c.UserContext(), p, c.Params("requestId"))
	if err != nil {
		return repErr(c, err)
	}
	c.Locals(consts.DETAIL, result)
	return nil
}

// acceptRequest 返回新建的 assignment
func (rt *Router) acceptRequest(c *fiber.Ctx) error {
	p, err := withPrincipal(c)
	if err != nil {
		return repErr(c, err)
	}
	result, err := rt.Services.Request.Accept(c.UserContext(), p, c.Params("requestId"))
	if err != nil {
		return repErr(c, err)
	}
	c.Locals(consts.DETAIL, result)
	return nil
}

func (rt *Router) rejectRequest(c *fiber.Ctx) error {
	p, err := withPrincipal(c)
	if err != nil {
		return repErr(c, err)
	}
	result, err := rt.Services.Request.Reject(c.UserContext(), p, c.Params("requestId"))
	if err != nil {
		return repErr(c, err)
	}
	c.Locals(consts.DETAIL, result)
	return nil
}

func (rt *Router) cancelRequest(c *fiber.Ctx) error {
	p, err := withPrincipal(c)
	if err != nil {
		return repErr(c, err)
	}
	result, err := rt.Services.Request.Cancel(c.UserContext(), p, c.Params("requestId"))
	if err != nil {
		return repErr(c, err)
	}
	c.Locals(consts.DETAIL, result)
	return nil
}

func (rt *Router) deleteRequest(c *fiber.Ctx) error {
	p, err := withPrincipal(c)
	if err != nil {
		return repErr(c, err)
	}
	requestId := c.Params("requestId")
	if err := rt.Services.Request.Delete(c.UserContext(), p, requestId); err != nil {
		return repErr(c, err)
	}
	c.Locals(consts.OPERATION, requestId)
	return nil
}
