package service

import (
	"fmt"

	"github.com/google/uuid"
)

type ErrResourceNotFound struct {
	error
}

func NewErrResourceNotFound(id uuid.UUID, resourceType string) *ErrResourceNotFound {
	return &ErrResourceNotFound{fmt.Errorf("%s %s not found", resourceType, id)}
}

func NewErrSwitchNotFound(id uuid.UUID) *ErrResourceNotFound {
	return NewErrResourceNotFound(id, "switch")
}

type ErrDuplicateSwitch struct {
	error
}

func NewErrDuplicateSwitch(assetID string) *ErrDuplicateSwitch {
	return &ErrDuplicateSwitch{fmt.Errorf("switch %s já existe", assetID)}
}

type ErrFileCorrupted struct {
	error
}

func NewErrFileCorrupted(message string) *ErrFileCorrupted {
	return &ErrFileCorrupted{fmt.Errorf("bad request: %s", message)}
}

func NewErrImportFileCorrupted(err error) *ErrFileCorrupted {
	return NewErrFileCorrupted(fmt.Sprintf("the provided inventory file is corrupted: %s", err))
}

type ErrEmptyQuestion struct {
	error
}

func NewErrEmptyQuestion() *ErrEmptyQuestion {
	return &ErrEmptyQuestion{fmt.Errorf("Por favor, forneça uma pergunta")}
}
