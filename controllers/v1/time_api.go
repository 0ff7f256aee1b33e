package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"timetracker-backend/controllers"
	timeentryhandler "timetracker-backend/lib/timeentry"
	"timetracker-backend/middleware"
	apimodels "timetracker-backend/models/api"
	timeapimodels "timetracker-backend/models/api/timeentry"
)

type timeApiController struct {
	controllers.BaseAPIController
}

func InitTimeApiRouters(app *fiber.App) {
	controller := timeApiController{}
	app.Route("time", func(router fiber.Router) {
		router.Post("", controller.submit)
		router.Get("", controller.listMy)
	})
	app.Get("supervisor/entries", controller.listTeam)
	app.Get("pending-entries", controller.listPending)
	app.Route("time-entry/:entryId", func(router fiber.Router) {
		router.Put("approve", controller.approve)
		router.Put("reject", controller.reject)
	})
	app.Route("superadmin", func(router fiber.Router) {
		router.Use(middleware.SuperAdminRoleRequired())
		router.Get("supervisor/entries", controller.listTeamAsSuperadmin)
		router.Post("entries/reassign", controller.reassignPending)
	})
}

// @Summary Submit a time entry
// @Tags Time tracking
// @Description Submit a time entry, it starts in the pending status
// @Param   Authorization		header	string							true	"Authorization token"
// @Param	body 				body	timeapimodels.TimeEntryData		true	"request body"
// @Success 200 {object} apimodels.Response{data=timeapimodels.TimeEntryView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/time [post]
func (c *timeApiController) submit(ctx *fiber.Ctx) error {
	var payload timeapimodels.TimeEntryData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := timeentryhandler.Instance.Submit(middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to submit the time entry")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary List own time entries
// @Tags Time tracking
// @Description List own time entries, newest first
// @Param   Authorization		header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]timeapimodels.TimeEntryView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/time [get]
func (c *timeApiController) listMy(ctx *fiber.Ctx) error {
	resp, err := timeentryhandler.Instance.ListMy(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list time entries")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary List team time entries
// @Tags Time tracking
// @Description List the time entries routed to the supervisor's team
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   employeeId    		query   string	false   "narrow to one employee"
// @Success 200 {object} apimodels.Response{data=[]timeapimodels.TimeEntryView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/supervisor/entries [get]
func (c *timeApiController) listTeam(ctx *fiber.Ctx) error {
	resp, err := timeentryhandler.Instance.ListTeam(middleware.GetUserID(ctx), "", ctx.Query("employeeId"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list team entries")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary List team time entries for any supervisor
// @Tags Time tracking
// @Description List any supervisor's team entries, superadmin only
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   supervisorId  		query   string	true    "supervisor ID"
// @Param   employeeId    		query   string	false   "narrow to one employee"
// @Success 200 {object} apimodels.Response{data=[]timeapimodels.TimeEntryView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/superadmin/supervisor/entries [get]
func (c *timeApiController) listTeamAsSuperadmin(ctx *fiber.Ctx) error {
	resp, err := timeentryhandler.Instance.ListTeam(middleware.GetUserID(ctx), ctx.Query("supervisorId"), ctx.Query("employeeId"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list team entries")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary List pending time entries
// @Tags Time tracking
// @Description List pending entries awaiting a decision
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   supervisorId  		query   string	false   "supervisor ID, required for a superadmin"
// @Success 200 {object} apimodels.Response{data=[]timeapimodels.TimeEntryView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/pending-entries [get]
func (c *timeApiController) listPending(ctx *fiber.Ctx) error {
	resp, err := timeentryhandler.Instance.ListPending(middleware.GetUserID(ctx), ctx.Query("supervisorId"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list pending entries")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Approve a time entry
// @Tags Time tracking
// @Description Approve a pending time entry
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   entryId       		path    string	true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/time-entry/{entryId}/approve [put]
func (c *timeApiController) approve(ctx *fiber.Ctx) error {
	entryID, err := c.GetIDByKey(ctx, "entryId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = timeentryhandler.Instance.Approve(middleware.GetUserID(ctx), entryID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to approve the time entry")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Reject a time entry
// @Tags Time tracking
// @Description Reject a pending time entry with a reason
// @Param   Authorization		header	string							true	"Authorization token"
// @Param	body 				body	timeapimodels.RejectRequest		false	"request body"
// @Param   entryId       		path    string							true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/time-entry/{entryId}/reject [put]
func (c *timeApiController) reject(ctx *fiber.Ctx) error {
	entryID, err := c.GetIDByKey(ctx, "entryId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload timeapimodels.RejectRequest
	if len(ctx.Body()) > 0 {
		if err = c.BodyParser(ctx, &payload); err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
	}
	err = timeentryhandler.Instance.Reject(middleware.GetUserID(ctx), entryID, payload.Reason)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to reject the time entry")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Reassign pending entries
// @Tags Time tracking
// @Description Move pending entries from one supervisor's queue to another, superadmin only
// @Param   Authorization		header	string									true	"Authorization token"
// @Param	body 				body	timeapimodels.ReassignPendingRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/superadmin/entries/reassign [post]
func (c *timeApiController) reassignPending(ctx *fiber.Ctx) error {
	var payload timeapimodels.ReassignPendingRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	moved, err := timeentryhandler.Instance.ReassignOrphanedPending(middleware.GetUserID(ctx), payload.FromSupervisorID, payload.ToSupervisorID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to reassign pending entries")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(map[string]int64{"moved": moved}))
}
