package models

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ValidationError - не заполнены или некорректны поля входных данных
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Fields, ", "))
}

// NotFoundError - запись с таким id отсутствует
type NotFoundError struct {
	Entity string
	ID     uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %s not found", e.Entity, e.ID)
}

// InvalidStateError - переход недопустим из текущего состояния
type InvalidStateError struct {
	Entity string
	ID     uuid.UUID
	From   string
	Action string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("cannot %s %s %s in state %q", e.Action, e.Entity, e.ID, e.From)
}

// StorageReadError - слот не читается или содержит поврежденные данные.
// Наружу из LoadAll не выходит, только логируется.
type StorageReadError struct {
	Slot string
	Err  error
}

func (e *StorageReadError) Error() string {
	return fmt.Sprintf("read slot %q: %v", e.Slot, e.Err)
}

func (e *StorageReadError) Unwrap() error { return e.Err }

// StorageWriteError - хранилище отклонило запись
type StorageWriteError struct {
	Slot string
	Err  error
}

func (e *StorageWriteError) Error() string {
	return fmt.Sprintf("write slot %q: %v", e.Slot, e.Err)
}

func (e *StorageWriteError) Unwrap() error { return e.Err }
