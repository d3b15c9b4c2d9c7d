package values

import (
	"goshop/internal/catalog/domain/apperrors"
)

// Ограничения значений пользователя.
const (
	maxUserNameLength = 20
	maxMailLength     = 36
)

// UserID представляет идентификатор пользователя (сгенерированная строка).
type UserID struct {
	value string
}

// NewUserID создает идентификатор пользователя, пустое значение недопустимо.
func NewUserID(value string) (UserID, error) {
	if value == "" {
		return UserID{}, apperrors.NewValidation("user id must not be empty")
	}
	return UserID{value: value}, nil
}

// Value возвращает хранимое значение.
func (u UserID) Value() string {
	return u.value
}

// Equals сравнивает два идентификатора пользователя по значению.
func (u UserID) Equals(other UserID) bool {
	return u.value == other.value
}

// UserName представляет имя пользователя.
type UserName struct {
	value string
}

// NewUserName создает имя пользователя: непустое, не длиннее 20 символов.
func NewUserName(value string) (UserName, error) {
	if value == "" {
		return UserName{}, apperrors.NewValidation("user name must not be empty")
	}
	if runeLength(value) > maxUserNameLength {
		return UserName{}, apperrors.NewValidation("user name must be at most 20 characters")
	}
	return UserName{value: value}, nil
}

// Value возвращает хранимое значение.
func (u UserName) Value() string {
	return u.value
}

// Password представляет пароль. Для загруженных из хранилища пользователей
// хранится шестнадцатеричный дайджест, для только что заполненных форм -
// исходный текст до хеширования.
type Password struct {
	value string
}

// NewPassword создает пароль, пустое значение недопустимо.
func NewPassword(value string) (Password, error) {
	if value == "" {
		return Password{}, apperrors.NewValidation("password must not be empty")
	}
	return Password{value: value}, nil
}

// Value возвращает хранимое значение.
func (p Password) Value() string {
	return p.value
}

// Equals сравнивает два пароля по значению.
func (p Password) Equals(other Password) bool {
	return p.value == other.value
}

// Mail представляет адрес электронной почты.
type Mail struct {
	value string
}

// NewMail создает адрес: непустой, не длиннее 36 символов.
func NewMail(value string) (Mail, error) {
	if value == "" {
		return Mail{}, apperrors.NewValidation("mail must not be empty")
	}
	if runeLength(value) > maxMailLength {
		return Mail{}, apperrors.NewValidation("mail must be at most 36 characters")
	}
	return Mail{value: value}, nil
}

// Value возвращает хранимое значение.
func (m Mail) Value() string {
	return m.value
}
