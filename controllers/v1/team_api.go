package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"timetracker-backend/controllers"
	"timetracker-backend/lib/rbac"
	teamhandler "timetracker-backend/lib/team"
	"timetracker-backend/middleware"
	apimodels "timetracker-backend/models/api"
	teamapimodels "timetracker-backend/models/api/team"
)

type teamApiController struct {
	controllers.BaseAPIController
}

func InitTeamApiRouters(app *fiber.App) {
	controller := teamApiController{}
	app.Route("team", func(router fiber.Router) {
		router.Post("add", controller.addMember)
		router.Delete(":employeeId", controller.removeMember)
		router.Get("", controller.listTeam)
	})
	app.Get("employees", controller.listEmployees)
	app.Get("user/supervisor", controller.mySupervisor)
	app.Get("user/permissions", controller.myPermissions)
}

// @Summary Add an employee to a team
// @Tags Team
// @Description Assign an employee to a supervisor by email
// @Param   Authorization		header	string							true	"Authorization token"
// @Param	body 				body	teamapimodels.AddMemberRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/team/add [post]
func (c *teamApiController) addMember(ctx *fiber.Ctx) error {
	var payload teamapimodels.AddMemberRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err := teamhandler.Instance.AssignEmployee(middleware.GetUserID(ctx), payload.EmployeeEmail, payload.SupervisorID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to add the employee to the team")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Remove an employee from a team
// @Tags Team
// @Description Clear the employee's supervisor assignment
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   employeeId    		path    string	true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/team/{employeeId} [delete]
func (c *teamApiController) removeMember(ctx *fiber.Ctx) error {
	employeeID, err := c.GetIDByKey(ctx, "employeeId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = teamhandler.Instance.UnassignEmployee(middleware.GetUserID(ctx), employeeID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to remove the employee from the team")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary List the team
// @Tags Team
// @Description List the requester's team members
// @Param   Authorization		header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]teamapimodels.UserView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/team [get]
func (c *teamApiController) listTeam(ctx *fiber.Ctx) error {
	resp, err := teamhandler.Instance.ListTeam(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list the team")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary List all employees
// @Tags Team
// @Description List all registered employees
// @Param   Authorization		header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]teamapimodels.UserView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees [get]
func (c *teamApiController) listEmployees(ctx *fiber.Ctx) error {
	resp, err := teamhandler.Instance.ListEmployees()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list employees")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Get own supervisor
// @Tags Team
// @Description Get the supervisor assigned to the current employee
// @Param   Authorization		header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=teamapimodels.SupervisorView}
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/user/supervisor [get]
func (c *teamApiController) mySupervisor(ctx *fiber.Ctx) error {
	resp, err := teamhandler.Instance.MySupervisor(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to get the supervisor")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Get own permissions
// @Tags Team
// @Description Get the permission map for the requester's role
// @Param   Authorization		header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 403
// @router /api/v1/user/permissions [get]
func (c *teamApiController) myPermissions(ctx *fiber.Ctx) error {
	resp := rbac.Instance.GetPermissions(middleware.GetUserRole(ctx))
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
