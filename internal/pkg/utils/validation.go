package utils

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)
	validate.RegisterValidation("image_uri", validateImageURI)
	validate.RegisterValidation("area_tag", validateAreaTag)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "" || name == "-" {
		return field.Name
	}
	return name
}

func validateImageURI(fl validator.FieldLevel) bool {
	_, _, err := ParseImageDataURI(fl.Field().String())
	return err == nil
}

func validateAreaTag(fl validator.FieldLevel) bool {
	return IsAreaTag(fl.Field().String())
}
