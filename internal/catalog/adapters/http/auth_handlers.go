package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"goshop/internal/catalog/app/dto"
	"goshop/internal/catalog/ports/api"
	"goshop/internal/catalog/ports/repositories"
	"goshop/internal/catalog/ports/services"
	"goshop/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerUserRegister = "auth handler: register user"
	LogHandlerLogin        = "auth handler: login"

	ErrorIssueToken = "failed to issue access token"
)

// loginResponse представляет тело успешного ответа на вход.
type loginResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	ExpiresAt   time.Time   `json:"expires_at"`
	User        dto.UserDTO `json:"user"`
}

// AuthHandler содержит HTTP обработчики регистрации и входа пользователей.
type AuthHandler struct {
	db           repositories.Database
	authenticate api.AuthenticateUseCase
	userRegister api.UserRegisterUseCase
	tokenService services.TokenService
}

// NewAuthHandler создает новый экземпляр обработчика аутентификации.
func NewAuthHandler(
	db repositories.Database,
	authenticate api.AuthenticateUseCase,
	userRegister api.UserRegisterUseCase,
	tokenService services.TokenService,
) *AuthHandler {
	return &AuthHandler{
		db:           db,
		authenticate: authenticate,
		userRegister: userRegister,
		tokenService: tokenService,
	}
}

// Register обрабатывает запрос регистрации нового пользователя.
func (h *AuthHandler) Register(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerUserRegister)

	var form dto.UserRegisterForm
	if err := ctx.Bind().JSON(&form); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequestBody, zap.Error(err))
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": ErrorInvalidRequestBody,
		})
	}

	if fieldErrors := form.Validate(); len(fieldErrors) > 0 {
		return respondFieldErrors(ctx, fieldErrors)
	}

	user, err := h.userRegister.Execute(requestCtx, h.db, &form)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"user": user}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Login обрабатывает запрос на вход пользователя. Успешный вход
// сопровождается выпуском токена доступа.
func (h *AuthHandler) Login(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerLogin)

	var form dto.LoginForm
	if err := ctx.Bind().JSON(&form); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequestBody, zap.Error(err))
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": ErrorInvalidRequestBody,
		})
	}

	if fieldErrors := form.Validate(); len(fieldErrors) > 0 {
		return respondFieldErrors(ctx, fieldErrors)
	}

	user, err := h.authenticate.Execute(requestCtx, h.db, &form)
	if err != nil {
		return respondError(ctx, err)
	}

	token, expiresAt, err := h.tokenService.Generate(requestCtx, user.UserID, user.UserName)
	if err != nil {
		log.Error(requestCtx, ErrorIssueToken, zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": msgInternalError,
		})
	}

	response := loginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		User:        *user,
	}

	if err := ctx.Status(fiber.StatusOK).JSON(response); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
