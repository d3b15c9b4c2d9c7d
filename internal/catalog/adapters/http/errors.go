package http

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"goshop/internal/catalog/domain/apperrors"
	"goshop/pkg/logger"
)

// Константы сообщений об ошибках для клиента.
const (
	msgInvalidRequest     = "invalid request"
	msgInternalError      = "internal error"
	msgInvalidCredentials = "invalid username or password"
)

// statusForError сопоставляет вид ошибки коду HTTP статуса и сообщению
// для клиента. Причина ошибки аутентификации клиенту не раскрывается,
// внутренние ошибки отдаются обезличенными.
func statusForError(err error) (int, string) {
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) {
		return fiber.StatusInternalServerError, msgInternalError
	}

	switch appErr.Kind() {
	case apperrors.KindValidation:
		return fiber.StatusBadRequest, appErr.Message()
	case apperrors.KindSearch:
		return fiber.StatusNotFound, appErr.Message()
	case apperrors.KindRegister:
		return fiber.StatusConflict, appErr.Message()
	case apperrors.KindAuthenticate:
		return fiber.StatusUnauthorized, msgInvalidCredentials
	default:
		return fiber.StatusInternalServerError, msgInternalError
	}
}

// respondError записывает ответ об ошибке. Внутренние ошибки логируются
// с полным описанием причины, остальные - на уровне отладки.
func respondError(ctx fiber.Ctx, err error) error {
	requestCtx := ctx.Context()
	status, message := statusForError(err)

	var appErr *apperrors.Error
	if status == fiber.StatusInternalServerError {
		detail := err.Error()
		if errors.As(err, &appErr) {
			detail = appErr.LogMessage()
		}
		logger.Log(requestCtx).Error(requestCtx, "request failed", zap.String("detail", detail))
	} else if errors.As(err, &appErr) {
		logger.Log(requestCtx).Debug(requestCtx, "request rejected", zap.String("detail", appErr.Message()))
	}

	return ctx.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

// respondFieldErrors записывает ответ о недопустимых полях формы.
func respondFieldErrors(ctx fiber.Ctx, fieldErrors map[string]string) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":  msgInvalidRequest,
		"fields": fieldErrors,
	})
}
