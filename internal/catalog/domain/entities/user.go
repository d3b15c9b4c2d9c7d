package entities

import (
	"encoding/hex"

	"github.com/google/uuid"
	"golang.org/x/crypto/sha3"

	"goshop/internal/catalog/domain/values"
)

// User представляет пользователя системы.
type User struct {
	id       values.UserID
	name     values.UserName
	password values.Password
	mail     values.Mail
}

// NewUser создает нового пользователя: генерирует UUID v4 в качестве
// идентификатора и заменяет пароль шестнадцатеричным дайджестом SHA3-512.
func NewUser(name values.UserName, password values.Password, mail values.Mail) (*User, error) {
	id, err := values.NewUserID(uuid.NewString())
	if err != nil {
		return nil, err
	}

	hashed, err := values.NewPassword(hashPassword(password.Value()))
	if err != nil {
		return nil, err
	}

	return &User{id: id, name: name, password: hashed, mail: mail}, nil
}

// RebuildUser восстанавливает пользователя из уже сохраненных полей.
// Пароль уже хеширован и повторно не преобразуется: вызов NewUser для
// данных из хранилища исказил бы аутентификацию.
func RebuildUser(id values.UserID, name values.UserName, password values.Password, mail values.Mail) *User {
	return &User{id: id, name: name, password: password, mail: mail}
}

// Identity возвращает идентификатор пользователя.
func (u *User) Identity() values.UserID {
	return u.id
}

// SetIdentity заменяет идентификатор пользователя.
func (u *User) SetIdentity(id values.UserID) {
	u.id = id
}

// IdentityEquals сравнивает идентичность с указанным идентификатором.
func (u *User) IdentityEquals(id values.UserID) bool {
	return u.id.Equals(id)
}

// Name возвращает имя пользователя.
func (u *User) Name() values.UserName {
	return u.name
}

// Password возвращает пароль (дайджест для сохраненных пользователей).
func (u *User) Password() values.Password {
	return u.password
}

// Mail возвращает адрес электронной почты.
func (u *User) Mail() values.Mail {
	return u.mail
}

// Однонаправленное преобразование пароля.
func hashPassword(raw string) string {
	digest := sha3.Sum512([]byte(raw))
	return hex.EncodeToString(digest[:])
}
