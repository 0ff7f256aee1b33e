package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"timetracker-backend/controllers"
	notificationshandler "timetracker-backend/lib/notifications"
	"timetracker-backend/middleware"
	apimodels "timetracker-backend/models/api"
	notificationapimodels "timetracker-backend/models/api/notification"
)

type notificationApiController struct {
	controllers.BaseAPIController
}

func InitNotificationApiRouters(app *fiber.App) {
	controller := notificationApiController{}
	app.Route("notifications", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Put("markAllRead", controller.markAllRead)
		router.Post("markAllRead", controller.markAllRead)
	})
}

// @Summary List notifications
// @Tags Notifications
// @Description List the requester's notifications, newest first
// @Param   Authorization		header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]notificationapimodels.NotificationView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notifications [get]
func (c *notificationApiController) list(ctx *fiber.Ctx) error {
	resp, err := notificationshandler.Instance.List(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list notifications")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Create a notification
// @Tags Notifications
// @Description Create a personal notification
// @Param   Authorization		header	string									true	"Authorization token"
// @Param	body 				body	notificationapimodels.NotificationData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notifications [post]
func (c *notificationApiController) create(ctx *fiber.Ctx) error {
	var payload notificationapimodels.NotificationData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err := notificationshandler.Instance.Create(middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create the notification")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Mark all notifications as read
// @Tags Notifications
// @Description Mark every unread notification of the requester as read
// @Param   Authorization		header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notifications/markAllRead [put]
func (c *notificationApiController) markAllRead(ctx *fiber.Ctx) error {
	err := notificationshandler.Instance.MarkAllRead(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to mark notifications as read")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
