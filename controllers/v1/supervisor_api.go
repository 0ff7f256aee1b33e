package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"timetracker-backend/controllers"
	teamhandler "timetracker-backend/lib/team"
	"timetracker-backend/middleware"
	apimodels "timetracker-backend/models/api"
	teamapimodels "timetracker-backend/models/api/team"
)

type supervisorApiController struct {
	controllers.BaseAPIController
}

func InitSupervisorApiRouters(app *fiber.App) {
	controller := supervisorApiController{}
	app.Post("supervisor/create", controller.create)
	app.Route("supervisors", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Get(":supervisorId", controller.get)
		router.Get(":supervisorId/team", controller.team)
		router.Delete(":supervisorId", controller.delete)
	})
}

// @Summary Create a supervisor account
// @Tags Supervisors
// @Description Create a supervisor account, superadmin only
// @Param   Authorization		header	string									true	"Authorization token"
// @Param	body 				body	teamapimodels.CreateSupervisorRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=teamapimodels.UserView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/supervisor/create [post]
func (c *supervisorApiController) create(ctx *fiber.Ctx) error {
	var payload teamapimodels.CreateSupervisorRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := teamhandler.Instance.CreateSupervisor(middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create the supervisor")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary List supervisors
// @Tags Supervisors
// @Description List all supervisors, superadmin only
// @Param   Authorization		header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]teamapimodels.UserView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/supervisors [get]
func (c *supervisorApiController) list(ctx *fiber.Ctx) error {
	resp, err := teamhandler.Instance.ListSupervisors()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list supervisors")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Get a supervisor
// @Tags Supervisors
// @Description Get a supervisor by ID, superadmin only
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   supervisorId  		path    string	true    "rec ID"
// @Success 200 {object} apimodels.Response{data=teamapimodels.UserView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/supervisors/{supervisorId} [get]
func (c *supervisorApiController) get(ctx *fiber.Ctx) error {
	supervisorID, err := c.GetIDByKey(ctx, "supervisorId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := teamhandler.Instance.GetSupervisor(supervisorID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to get the supervisor")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Get a supervisor's team
// @Tags Supervisors
// @Description List the team members of any supervisor, superadmin only
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   supervisorId  		path    string	true    "rec ID"
// @Success 200 {object} apimodels.Response{data=[]teamapimodels.UserView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/supervisors/{supervisorId}/team [get]
func (c *supervisorApiController) team(ctx *fiber.Ctx) error {
	supervisorID, err := c.GetIDByKey(ctx, "supervisorId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := teamhandler.Instance.ListTeam(supervisorID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list the team")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Delete a supervisor
// @Tags Supervisors
// @Description Delete a supervisor and unassign their team, superadmin only
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   supervisorId  		path    string	true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/supervisors/{supervisorId} [delete]
func (c *supervisorApiController) delete(ctx *fiber.Ctx) error {
	supervisorID, err := c.GetIDByKey(ctx, "supervisorId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = teamhandler.Instance.DeleteSupervisor(middleware.GetUserID(ctx), supervisorID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to delete the supervisor")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
