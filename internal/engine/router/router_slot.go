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

func (rt *Router) slotRouter(r fiber.Router) {
	slotGroup := r.Group("/slots")
	{
		slotGroup.Post("", rt.createSlot)
		slotGroup.Get("", rt.listSlots)
		slotGroup.Get("/:slotId", rt.getSlot)
		slotGroup.Put("/:slotId", rt.updateSlot)
		slotGroup.Post("/:slotId/activate", rt.activateSlot)
		slotGroup.Post("/:slotId/deactivate", rt.deactivateSlot)
		slotGroup.Delete("/:slotId", rt.deleteSlot)
	}

	// 可预约时间, from/to 为 YYYY-MM-DD
	r.Get("/mentors/:mentorId/occurrences", rt.listOccurrences)
}

func (rt *Router) createSlot(c *fiber.Ctx) error {
	p, err := withPrincipal(c)
	if err != nil {
		return repErr(c, err)
	}
	var req service.SlotInput
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	result, err := rt.Services.Availability.Create(c.UserContext(), p, req)
	if err != nil {
		return repErr(c, err)
	}
	c.Status(fiber.StatusCreated)
	c.Locals(consts.DETAIL, result)
	return nil
}

func (rt *Router) listSlots(c *fiber.Ctx) error {
	p, err := withPrincipal(c)
	if err != nil {
		return repErr(c, err)
	}
	result, err := rt.Services.Availability.List(c.UserContext(), p)
	if err != nil {
		return repErr(c, err)
	}
	c.Locals(consts.DETAIL, result)
	return nil
}

func (rt *Router) getSlot(c *fiber.Ctx) error {
	p, err := withPrincipal(c)
	if err != nil {
		return repErr(c, err)
	}
	result, err := rt.Services.Availability.Get(c.UserContext(), p, c.Params("slotId"))
	if err != nil {
		return repErr(c, err)
	}
	c.Locals(consts.DETAIL, result)
	return nil
}

func (rt *Router) updateSlot(c *fiber.Ctx) error {
	p, err := withPrincipal(c)
	if err != nil {
		return repErr(c, err)
	}
	var req service.SlotInput
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	result, err := rt.Services.Availability.Update(c.UserContext(), p, c.Params("slotId"), req)
	if err != nil {
		return repErr(c, err)
	}
	c.Locals(consts.DETAIL, result)
	return nil
}

func (rt *Router) activateSlot(c *fiber.Ctx) error {
	p, err := withPrincipal(c)
	if err != nil {
		return repErr(c, err)
	}
	result, err := rt.Services.Availability.Activate(c.UserContext(), p, c.Params("slotId"))
	if err != nil {
		return repErr(c, err)
	}
	c.Locals(consts.DETAIL, result)
	return nil
}

func (rt *Router) deactivateSlot(c *fiber.Ctx) error {
	p, err := withPrincipal(c)
	if err != nil {
		return repErr(c, err)
	}
	result, err := rt.Services.Availability.Deactivate(c.UserContext(), p, c.Params("slotId"))
	if err != nil {
		return repErr(c, err)
	}
	c.Locals(consts.DETAIL, result)
	return nil
}

func (rt *Router) deleteSlot(c *fiber.Ctx) error {
	p, err := withPrincipal(c)
	if err != nil {
		return repErr(c, err)
	}
	slotId := c.Params("slotId")
	if err := rt.Services.Availability.Delete(c.UserContext(), p, slotId); err != nil {
		return repErr(c, err)
	}
	c.Locals(consts.OPERATION, slotId)
	return nil
}

func (rt *Router) listOccurrences(c *fiber.Ctx) error {
	if _, err := withPrincipal(c); err != nil {
		return repErr(c, err)
	}
	result, err := rt.Services.AvailabilityView.ListOccurrences(c.UserContext(), c.Params("mentorId"), c.Query("from"), c.Query("to"))
	if err != nil {
		return repErr(c, err)
	}
	c.Locals(consts.DETAIL, result)
	return nil
}
