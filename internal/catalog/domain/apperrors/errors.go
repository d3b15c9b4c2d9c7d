// Package apperrors определяет таксономию ошибок приложения.
// Каждая ошибка несет категорию; только внутренняя категория
// оборачивает низлежащую причину, и эта причина никогда не
// показывается пользователю.
package apperrors

import (
	"errors"
	"fmt"
)

// Kind определяет категорию ошибки приложения.
type Kind int

// Категории ошибок.
const (
	// KindValidation - объект-значение или форма отклонили входные данные.
	KindValidation Kind = iota + 1
	// KindSearch - поиск не нашел ни одной записи там, где требовалась хотя бы одна.
	KindSearch
	// KindRegister - конфликт уникальности или бизнес-правила при записи.
	KindRegister
	// KindAuthenticate - неизвестный пользователь или несовпадение учетных данных.
	KindAuthenticate
	// KindInternal - отказ хранилища или транспорта, непрозрачный для пользователя.
	KindInternal
)

// Сообщение внутренней ошибки, видимое пользователю.
const internalMessage = "internal error"

// Error представляет ошибку приложения с категорией и,
// для внутренних ошибок, обернутой причиной.
type Error struct {
	kind    Kind
	message string
	cause   error
}

// NewValidation создает ошибку проверки входных данных.
func NewValidation(message string) *Error {
	return &Error{kind: KindValidation, message: message}
}

// NewSearch создает ошибку поиска без результата.
func NewSearch(message string) *Error {
	return &Error{kind: KindSearch, message: message}
}

// NewRegister создает ошибку конфликта при регистрации.
func NewRegister(message string) *Error {
	return &Error{kind: KindRegister, message: message}
}

// NewAuthenticate создает ошибку аутентификации.
func NewAuthenticate(message string) *Error {
	return &Error{kind: KindAuthenticate, message: message}
}

// WrapInternal оборачивает отказ низлежащего слоя во внутреннюю ошибку.
// Контекст и причина сохраняются для журналирования.
func WrapInternal(context string, cause error) *Error {
	return &Error{kind: KindInternal, message: context, cause: cause}
}

// Error возвращает сообщение для пользователя. Внутренние ошибки
// не раскрывают детали хранилища.
func (e *Error) Error() string {
	if e.kind == KindInternal {
		return internalMessage
	}
	return e.message
}

// Kind возвращает категорию ошибки.
func (e *Error) Kind() Kind {
	return e.kind
}

// Unwrap возвращает обернутую причину внутренней ошибки.
func (e *Error) Unwrap() error {
	return e.cause
}

// LogMessage возвращает полное сообщение для журнала, включая причину.
func (e *Error) LogMessage() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Message возвращает сообщение ошибки без подстановки категории.
func (e *Error) Message() string {
	return e.message
}

// IsKind сообщает, относится ли ошибка к указанной категории.
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.kind == kind
	}
	return false
}
