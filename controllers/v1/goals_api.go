package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"timetracker-backend/controllers"
	goalshandler "timetracker-backend/lib/goals"
	"timetracker-backend/middleware"
	apimodels "timetracker-backend/models/api"
	goalapimodels "timetracker-backend/models/api/goal"
)

type goalsApiController struct {
	controllers.BaseAPIController
}

func InitGoalsApiRouters(app *fiber.App) {
	controller := goalsApiController{}
	app.Route("goals", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Put(":projectId", controller.update)
		router.Delete(":projectId", controller.delete)
		router.Get(":projectId/tasks", controller.get)
		router.Post(":projectId/tasks", controller.addTask)
	})
}

// @Summary List projects
// @Tags Goals
// @Description List the requester's projects with their tasks
// @Param   Authorization		header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]goalapimodels.ProjectView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/goals [get]
func (c *goalsApiController) list(ctx *fiber.Ctx) error {
	resp, err := goalshandler.Instance.List(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list projects")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Create a project
// @Tags Goals
// @Description Create a personal project with an optional task list
// @Param   Authorization		header	string						true	"Authorization token"
// @Param	body 				body	goalapimodels.ProjectData	true	"request body"
// @Success 200 {object} apimodels.Response{data=goalapimodels.ProjectView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/goals [post]
func (c *goalsApiController) create(ctx *fiber.Ctx) error {
	var payload goalapimodels.ProjectData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := goalshandler.Instance.Create(middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create the project")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Update a project
// @Tags Goals
// @Description Update a project's name, description and tasks
// @Param   Authorization		header	string						true	"Authorization token"
// @Param	body 				body	goalapimodels.ProjectData	true	"request body"
// @Param   projectId     		path    string						true    "rec ID"
// @Success 200 {object} apimodels.Response{data=goalapimodels.ProjectView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/goals/{projectId} [put]
func (c *goalsApiController) update(ctx *fiber.Ctx) error {
	projectID, err := c.GetIDByKey(ctx, "projectId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload goalapimodels.ProjectData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := goalshandler.Instance.Update(middleware.GetUserID(ctx), projectID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update the project")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Delete a project
// @Tags Goals
// @Description Delete a personal project
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   projectId     		path    string	true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/goals/{projectId} [delete]
func (c *goalsApiController) delete(ctx *fiber.Ctx) error {
	projectID, err := c.GetIDByKey(ctx, "projectId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = goalshandler.Instance.Delete(middleware.GetUserID(ctx), projectID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to delete the project")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Get a project with tasks
// @Tags Goals
// @Description Get a single project and its task list
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   projectId     		path    string	true    "rec ID"
// @Success 200 {object} apimodels.Response{data=goalapimodels.ProjectView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/goals/{projectId}/tasks [get]
func (c *goalsApiController) get(ctx *fiber.Ctx) error {
	projectID, err := c.GetIDByKey(ctx, "projectId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := goalshandler.Instance.Get(middleware.GetUserID(ctx), projectID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to get the project")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Add a task to a project
// @Tags Goals
// @Description Append a task to the project's task list
// @Param   Authorization		header	string							true	"Authorization token"
// @Param	body 				body	goalapimodels.AddTaskRequest	true	"request body"
// @Param   projectId     		path    string							true    "rec ID"
// @Success 200 {object} apimodels.Response{data=goalapimodels.ProjectView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/goals/{projectId}/tasks [post]
func (c *goalsApiController) addTask(ctx *fiber.Ctx) error {
	projectID, err := c.GetIDByKey(ctx, "projectId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload goalapimodels.AddTaskRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := goalshandler.Instance.AddTask(middleware.GetUserID(ctx), projectID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to add the task")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
