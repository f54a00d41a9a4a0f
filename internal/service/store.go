package service

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/vehicle_gatepass/internal/models"
)

// RecordStore определяет контракт хранилища коллекции записей.
// Реализация - repository.JSONStore поверх любого слота.
type RecordStore[T models.Record] interface {
	LoadAll(ctx context.Context) []T
	SaveAll(ctx context.Context, records []T) error
	Append(ctx context.Context, record T) (T, error)
	Prepend(ctx context.Context, record T) (T, error)
	UpdateByID(ctx context.Context, id uuid.UUID, mutator func(T) (T, error)) (bool, error)
	Mutate(ctx context.Context, fn func([]T) ([]T, error)) error
	Get(ctx context.Context, id uuid.UUID) (T, bool)
	Query(ctx context.Context, pred func(T) bool) []T
}

// Clock возвращает текущее время; подменяется в тестах
type Clock func() time.Time

func systemClock() time.Time { return time.Now().UTC() }

// newValidator создает валидатор, который называет поля по json-тегам
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateInput переводит ошибки validator в ValidationError со списком полей
func validateInput(v *validator.Validate, input any) error {
	err := v.Struct(input)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return &models.ValidationError{Fields: fields}
}
