package service

import (
	"reflect"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("notify_set", func(fl validator.FieldLevel) bool {
			field := fl.Field()
			if field.Kind() != reflect.Slice {
				return false
			}
			// "none" cannot be combined with any other channel
			for i := 0; i < field.Len(); i++ {
				if field.Index(i).String() == "none" && field.Len() > 1 {
					return false
				}
			}
			return true
		})
	})
}
