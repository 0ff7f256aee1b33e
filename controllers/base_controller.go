package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"timetracker-backend/middleware"
	"timetracker-backend/models"
	apimodels "timetracker-backend/models/api"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("failed to parse the request body")
		return errors.New("failed to read data from the request")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	return c.GetIDByKey(ctx, "id")
}

func (c *BaseAPIController) GetIDByKey(ctx *fiber.Ctx, key string) (string, error) {
	id := ctx.Params(key)
	if id == "" {
		return "", errors.Errorf("record identifier (%v) is not specified", key)
	}
	return id, nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	return log.
		WithField("user_id", middleware.GetUserID(ctx)).
		WithField("user_name", middleware.GetUserName(ctx)).
		WithField("path", ctx.Path()).
		WithField("method", ctx.Method())
}

// SendError maps the error kind onto an HTTP status. Internal errors are
// logged with the original cause and answered with a generic message.
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, hMsg string) error {
	switch models.KindOf(err) {
	case models.ErrKindValidation:
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	case models.ErrKindNotFound:
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	case models.ErrKindForbidden:
		return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError(err.Error()))
	case models.ErrKindConflict:
		return ctx.Status(fiber.StatusConflict).JSON(apimodels.NewError(err.Error()))
	case models.ErrKindInvalidCredentials:
		return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError(err.Error()))
	default:
		logger.WithError(err).Error(hMsg)
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(hMsg))
	}
}
