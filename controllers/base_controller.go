package controllers

import (
	pipelinehandler "hr-pipeline-backend/lib/pipeline"
	apimodels "hr-pipeline-backend/models/api"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("ошибка распознавания запроса")
		return errors.New("не удалось получить данные из запроса")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	return c.GetIDByKey(ctx, "id")
}

func (c *BaseAPIController) GetIDByKey(ctx *fiber.Ctx, key string) (string, error) {
	id := strings.TrimSpace(ctx.Params(key))
	if id == "" {
		return "", errors.Errorf("не указан параметр %s", key)
	}
	return id, nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	return log.
		WithField("method", ctx.Method()).
		WithField("path", ctx.Path())
}

// SendError ошибки "не найдено" отдаются как 404, остальные логируются и отдаются как 500
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, msg string) error {
	cause := errors.Cause(err)
	if cause == pipelinehandler.ErrApplicationNotFound || cause == pipelinehandler.ErrJobNotFound {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(cause.Error()))
	}
	logger.WithError(err).Error(msg)
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(msg))
}
