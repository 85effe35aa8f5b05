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

type manualEngagementReq struct {
	Startup model.ManualStartup `json:"startup"`
	Terms   model.Terms         `json:"terms"`
}

type agreementUrlReq struct {
	Url string `json:"url"`
}

type rejectAgreementReq struct {
	Reason string `json:"reason"`
}

func (rt *Router) assignmentRouter(r fiber.Router) {
	assignmentGroup := r.Group("/assignments")
	{
		// scope=current|previous
		assignmentGroup.Get("", rt.listAssignments)
		assignmentGroup.Get("/:assignmentId", rt.getAssignment)

		// 线下合作, 无门槛直接 active
		assignmentGroup.Post("/manual", rt.recordManualEngagement)
		assignmentGroup.Delete("/:assignmentId", rt.deleteAssignment)

		assignmentGroup.Post("/:assignmentId/payment/complete", rt.completePayment)
		assignmentGroup.Post("/:assignmentId/final-accept", rt.finalAccept)
		assignmentGroup.Post("/:assignmentId/complete", rt.completeAssignment)

		// 协议流程
		assignmentGroup.Post("/:assignmentId/agreement", rt.uploadAgreement)
		assignmentGroup.Post("/:assignmentId/agreement/signed", rt.uploadSignedAgreement)
		assignmentGroup.Post("/:assignmentId/agreement/approve", rt.approveAgreement)
		assignmentGroup.Post("/:assignmentId/agreement/reject", rt.rejectAgreement)
	}
}

func (rt *Router) listAssignments(c *fiber.Ctx) error {
	p, err := withPrincipal(c)
	if err != nil {
		return repErr(c, err)
	}
	var result []*model.Assignment
	if c.Query("scope", "current") == "previous" {
		result, err = rt.Services.Assignment.ListPrevious(c.UserContext(), p)
	} else {
		result, err = rt.Services.Assignment.ListCurrent(c.UserContext(), p)
	}
	if err != nil {
		return repErr(c, err)
	}
	c.Locals(consts.DETAIL, result)
	return nil
}

func (rt *Router) getAssignment(c *fiber.Ctx) error {
	p, err := withPrincipal(c)
	if err != nil {
		return repErr(c, err)
	}
	result, err := rt.Services.Assignment.Get(c.UserContext(), p, c.Params("assignmentId"))
	if err != nil {
		return repErr(c, err)
	}
	c.Locals(consts.DETAIL, result)
	return nil
}

func (rt *Router) recordManualEngagement(c *fiber.Ctx) error {
	p, err := withPrincipal(c)
	if err != nil {
		return repErr(c, err)
	}
	var req manualEngagementReq
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	result, err := rt.Services.Assignment.RecordManualEngagement(c.UserContext(), p, req.Startup, req.Terms)
	if err != nil {
		return repErr(c, err)
	}
	c.Status(fiber.StatusCreated)
	c.Locals(consts.DETAIL, result)
	return nil
}

func (rt *Router) deleteAssignment(c *fiber.Ctx) error {
	p, err := withPrincipal(c)
	if err != nil {
		return repErr(c, err)
	}
	assignmentId := c.Params("assignmentId")
	if err := rt.Services.Assignment.Delete(c.UserContext(), p, assignmentId); err != nil {
		return repErr(c, err)
	}
	c.Locals(consts.OPERATION, assignmentId)
	return nil
}

func (rt *Router) completePayment(c *fiber.Ctx) error {
	p, err := withPrincipal(c)
	if err != nil {
		return repErr(c, err)
	}
	result, err := rt.Services.Assignment.MarkPaymentCompleted(c.UserContext(), p, c.Params("assignmentId"))
	if err != nil {
		return repErr(c, err)
	}
	c.Locals(consts.DETAIL, result)
	return nil
}

func (rt *Router) finalAccept(c *fiber.Ctx) error {
	p, err := withPrincipal(c)
	if err != nil {
		return repErr(c, err)
	}
	result, err := rt.Services.Assignment.FinalAccept(c.UserContext(), p, c.Params("assignmentId"))
	if err != nil {
		return repErr(c, err)
	}
	c.Locals(consts.DETAIL, result)
	return nil
}

func (rt *Router) completeAssignment(c *fiber.Ctx) error {
	p, err := withPrincipal(c)
	if err != nil {
		return repErr(c, err)
	}
	result, err := rt.Services.Assignment.Complete(c.UserContext(), p, c.Params("assignmentId"))
	if err != nil {
		return repErr(c, err)
	}
	c.Locals(consts.DETAIL, result)
	return nil
}

func (rt *Router) uploadAgreement(c *fiber.Ctx) error {
	p, err := withPrincipal(c)
	if err != nil {
		return repErr(c, err)
	}
	var req agreementUrlReq
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	result, err := rt.Services.Agreement.UploadAgreement(c.UserContext(), p, c.Params("assignmentId"), req.Url)
	if err != nil {
		return repErr(c, err)
	}
	c.Locals(consts.DETAIL, result)
	return nil
}

func (rt *Router) uploadSignedAgreement(c *fiber.Ctx) error {
	p, err := withPrincipal(c)
	if err != nil {
		return repErr(c, err)
	}
	var req agreementUrlReq
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	result, err := rt.Services.Agreement.UploadSignedAgreement(c.UserContext(), p, c.Params("assignmentId"), req.Url)
	if err != nil {
		return repErr(c, err)
	}
	c.Locals(consts.DETAIL, result)
	return nil
}

func (rt *Router) approveAgreement(c *fiber.Ctx) error {
	p, err := withPrincipal(c)
	if err != nil {
		return repErr(c, err)
	}
	result, err := rt.Services.Agreement.ApproveAgreement(c.UserContext(), p, c.Params("assignmentId"))
	if err != nil {
		return repErr(c, err)
	}
	c.Locals(consts.DETAIL, result)
	return nil
}

func (rt *Router) rejectAgreement(c *fiber.Ctx) error {
	p, err := withPrincipal(c)
	if err != nil {
		return repErr(c, err)
	}
	var req rejectAgreementReq
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	result, err := rt.Services.Agreement.RejectAgreement(c.UserContext(), p, c.Params("assignmentId"), req.Reason)
	if err != nil {
		return repErr(c, err)
	}
	c.Locals(consts.DETAIL, result)
	return nil
}
