package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"timetracker-backend/controllers"
	reportshandler "timetracker-backend/lib/reports"
	"timetracker-backend/middleware"
	apimodels "timetracker-backend/models/api"
)

type reportApiController struct {
	controllers.BaseAPIController
}

func InitReportApiRouters(app *fiber.App) {
	controller := reportApiController{}
	app.Get("reports/summary", controller.summary)
}

// @Summary Time tracking summary
// @Tags Reports
// @Description Aggregate minutes by project, week and month within the requester's scope
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   supervisorId  		query   string	false   "scope to a supervisor's team, superadmin only"
// @Param   employeeId    		query   string	false   "scope to one employee"
// @Success 200 {object} apimodels.Response{data=reportapimodels.Summary}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/reports/summary [get]
func (c *reportApiController) summary(ctx *fiber.Ctx) error {
	resp, err := reportshandler.Instance.Summary(middleware.GetUserID(ctx), ctx.Query("supervisorId"), ctx.Query("employeeId"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to build the report")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
