package validation

import (
	"strings"
	"unicode/utf8"

	"github.com/RoyceAzure/lab/storefront/internal/apperr"
	"github.com/RoyceAzure/lab/storefront/internal/model"
)

// 純函式、同步、不碰網路
// 送出前在client端先擋掉，減少無謂的round trip
// server side仍有自己的驗證，這裡不是安全邊界

const (
	productNameMinLen        = 3
	productNameMaxLen        = 100
	productDescriptionMinLen = 10
	productDescriptionMaxLen = 500
	productImageUrlMaxLen    = 255
	shippingAddressMinLen    = 10
)

// ValidateProductPayload 回傳空map代表通過
func ValidateProductPayload(p model.ProductPayload) apperr.FieldErrorMap {
	errs := apperr.FieldErrorMap{}

	// 長度規則算的是字元數不是byte數，法文重音字不能多算
	name := strings.TrimSpace(p.Name)
	switch {
	case name == "":
		errs["name"] = "name is required"
	case utf8.RuneCountInString(name) < productNameMinLen:
		errs["name"] = "name must be at least 3 characters"
	case utf8.RuneCountInString(name) > productNameMaxLen:
		errs["name"] = "name must be at most 100 characters"
	}

	description := strings.TrimSpace(p.Description)
	switch {
	case description == "":
		errs["description"] = "description is required"
	case utf8.RuneCountInString(description) < productDescriptionMinLen:
		errs["description"] = "description must be at least 10 characters"
	case utf8.RuneCountInString(description) > productDescriptionMaxLen:
		errs["description"] = "description must be at most 500 characters"
	}

	switch {
	case p.Price == nil:
		errs["price"] = "price is required"
	case !p.Price.IsPositive():
		errs["price"] = "price must be greater than 0"
	}

	switch {
	case p.Stock == nil:
		errs["stock"] = "stock is required"
	case *p.Stock < 0:
		errs["stock"] = "stock cannot be negative"
	}

	switch {
	case p.Category == "":
		errs["category"] = "category is required"
	case !model.ProductCategory(p.Category).IsValid():
		errs["category"] = "category must be one of ELECTRONICS, BOOKS, FOOD, OTHER"
	}

	if p.ImageUrl != "" && utf8.RuneCountInString(p.ImageUrl) > productImageUrlMaxLen {
		errs["imageUrl"] = "imageUrl must be at most 255 characters"
	}

	return errs
}

// ValidateShippingAddress 回傳trim後的地址
// 只去掉前後空白，中間空白算長度
func ValidateShippingAddress(address string) (string, apperr.FieldErrorMap) {
	trimmed := strings.TrimSpace(address)
	if utf8.RuneCountInString(trimmed) < shippingAddressMinLen {
		return trimmed, apperr.Single("shippingAddress", "shipping address must be at least 10 characters")
	}
	return trimmed, nil
}

// ValidateUserRequest 建立使用者前的基本檢查
func ValidateUserRequest(req model.UserRequest) apperr.FieldErrorMap {
	errs := apperr.FieldErrorMap{}

	if strings.TrimSpace(req.FirstName) == "" {
		errs["firstName"] = "first name is required"
	}
	if strings.TrimSpace(req.LastName) == "" {
		errs["lastName"] = "last name is required"
	}

	email := strings.TrimSpace(req.Email)
	switch {
	case email == "":
		errs["email"] = "email is required"
	case !strings.Contains(email, "@"):
		errs["email"] = "email is invalid"
	}

	return errs
}
