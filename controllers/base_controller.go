package controllers

import (
	"work-tools-backend/fiberlog"
	workitemhandler "work-tools-backend/lib/workitem"
	apimodels "work-tools-backend/models/api"

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
	id := ctx.Params("id")
	if id == "" {
		return "", errors.New("не указан идентификатор записи")
	}
	return id, nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	logger := log.WithField("path", ctx.Path())
	if reqID := ctx.Get(fiber.HeaderXRequestID); reqID != "" {
		logger = logger.WithField(fiberlog.RequestID, reqID)
	}
	return logger
}

// SendError переводит ошибки бизнес-слоя в http статусы.
// Текст известных ошибок уходит клиенту, прочее скрывается за defaultMsg.
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, defaultMsg string) error {
	switch {
	case errors.Is(err, workitemhandler.ErrNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	case errors.Is(err, workitemhandler.ErrForbidden):
		return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError(err.Error()))
	case errors.Is(err, workitemhandler.ErrInvalidTransition):
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	case errors.Is(err, workitemhandler.ErrConflict):
		return ctx.Status(fiber.StatusConflict).JSON(apimodels.NewError(err.Error()))
	}
	logger.WithError(err).Error(defaultMsg)
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(defaultMsg))
}
