package dto

import (
	"goshop/internal/catalog/domain/entities"
	"goshop/internal/catalog/domain/values"
)

// Ограничения полей форм.
const (
	minFormNameLength     = 4
	maxFormNameLength     = 20
	minFormPrice          = 50
	maxFormPrice          = 100000
	minFormCategoryID     = 1
	maxFormCategoryID     = 3
	minCredentialLength   = 6
	maxCredentialLength   = 20
	maxFormMailLength     = 36
	placeholderMail       = "dummy"
	placeholderCategoryNm = "dummy"
)

// Сообщения об ошибках полей.
const (
	msgKeywordRequired   = "keyword is required"
	msgProductNameLength = "product name must be 4 to 20 characters"
	msgPriceRequired     = "price is required"
	msgPriceRange        = "price must be between 50 and 100000"
	msgCategoryRequired  = "category is required"
	msgCategoryRange     = "invalid category selected"
	msgUserNameLength    = "user name must be 6 to 20 characters"
	msgPasswordLength    = "password must be 6 to 20 characters"
	msgMailRequired      = "mail is required"
	msgMailLength        = "mail must be at most 36 characters"
)

// ProductSearchForm представляет форму поиска товара.
type ProductSearchForm struct {
	Keyword string `json:"keyword"`
}

// Validate проверяет поля формы и возвращает ошибки по именам полей.
func (f *ProductSearchForm) Validate() map[string]string {
	errs := make(map[string]string)
	if f.Keyword == "" {
		errs["keyword"] = msgKeywordRequired
	}
	return errs
}

// ToDomain преобразует ключевое слово в объект-значение названия товара.
func (f *ProductSearchForm) ToDomain() (values.ProductName, error) {
	return values.NewProductName(f.Keyword)
}

// ProductRegisterForm представляет форму регистрации товара.
// Указатели отличают незаполненные числовые поля от нулевых.
type ProductRegisterForm struct {
	Name       string `json:"name"`
	Price      *int32 `json:"price"`
	CategoryID *int32 `json:"category_id"`
}

// Validate проверяет поля формы и возвращает ошибки по именам полей.
func (f *ProductRegisterForm) Validate() map[string]string {
	errs := make(map[string]string)

	if n := len([]rune(f.Name)); n < minFormNameLength || n > maxFormNameLength {
		errs["name"] = msgProductNameLength
	}

	switch {
	case f.Price == nil:
		errs["price"] = msgPriceRequired
	case *f.Price < minFormPrice || *f.Price > maxFormPrice:
		errs["price"] = msgPriceRange
	}

	switch {
	case f.CategoryID == nil:
		errs["category_id"] = msgCategoryRequired
	case *f.CategoryID < minFormCategoryID || *f.CategoryID > maxFormCategoryID:
		errs["category_id"] = msgCategoryRange
	}

	return errs
}

// ToDomain преобразует форму в сущность товара. Категория заполняется
// только номером; название подставляется позже из хранилища.
func (f *ProductRegisterForm) ToDomain() (*entities.Product, error) {
	categoryID, err := values.NewCategoryID(*f.CategoryID)
	if err != nil {
		return nil, err
	}
	categoryName, err := values.NewCategoryName(placeholderCategoryNm)
	if err != nil {
		return nil, err
	}

	productID, err := values.NewProductID(0)
	if err != nil {
		return nil, err
	}
	name, err := values.NewProductName(f.Name)
	if err != nil {
		return nil, err
	}
	price, err := values.NewProductPrice(*f.Price)
	if err != nil {
		return nil, err
	}

	category := entities.NewCategory(categoryID, categoryName)
	return entities.NewProduct(productID, name, price, category), nil
}

// LoginForm представляет форму входа.
type LoginForm struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// Validate проверяет поля формы и возвращает ошибки по именам полей.
func (f *LoginForm) Validate() map[string]string {
	errs := make(map[string]string)
	if n := len([]rune(f.Name)); n < minCredentialLength || n > maxCredentialLength {
		errs["name"] = msgUserNameLength
	}
	if n := len([]rune(f.Password)); n < minCredentialLength || n > maxCredentialLength {
		errs["password"] = msgPasswordLength
	}
	return errs
}

// ToDomain преобразует форму в пользователя-кандидата. Введенный пароль
// хешируется при создании, почта подставляется заглушкой: аутентификация
// сравнивает только имя и дайджест пароля.
func (f *LoginForm) ToDomain() (*entities.User, error) {
	name, err := values.NewUserName(f.Name)
	if err != nil {
		return nil, err
	}
	password, err := values.NewPassword(f.Password)
	if err != nil {
		return nil, err
	}
	mail, err := values.NewMail(placeholderMail)
	if err != nil {
		return nil, err
	}
	return entities.NewUser(name, password, mail)
}

// UserRegisterForm представляет форму регистрации пользователя.
type UserRegisterForm struct {
	Name     string `json:"name"`
	Password string `json:"password"`
	Mail     string `json:"mail"`
}

// Validate проверяет поля формы и возвращает ошибки по именам полей.
func (f *UserRegisterForm) Validate() map[string]string {
	errs := make(map[string]string)
	if n := len([]rune(f.Name)); n < minCredentialLength || n > maxCredentialLength {
		errs["name"] = msgUserNameLength
	}
	if n := len([]rune(f.Password)); n < minCredentialLength || n > maxCredentialLength {
		errs["password"] = msgPasswordLength
	}
	switch {
	case f.Mail == "":
		errs["mail"] = msgMailRequired
	case len([]rune(f.Mail)) > maxFormMailLength:
		errs["mail"] = msgMailLength
	}
	return errs
}

// ToDomain преобразует форму в нового пользователя со сгенерированным
// идентификатором и хешированным паролем.
func (f *UserRegisterForm) ToDomain() (*entities.User, error) {
	name, err := values.NewUserName(f.Name)
	if err != nil {
		return nil, err
	}
	password, err := values.NewPassword(f.Password)
	if err != nil {
		return nil, err
	}
	mail, err := values.NewMail(f.Mail)
	if err != nil {
		return nil, err
	}
	return entities.NewUser(name, password, mail)
}
