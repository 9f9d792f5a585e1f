package domain

import (
	"errors"
	"fmt"
)

var (
	ErrMissingToken     = errors.New("link inválido (sem token)")
	ErrInvalidToken     = errors.New("token inválido ou expirado")
	ErrTokenExpired     = errors.New("token desativado/expirado")
	ErrTokenWithoutCPF  = errors.New("token sem CPF vinculado")
	ErrPatientNotFound  = errors.New("paciente não encontrado")
	ErrFormNotReleased  = errors.New("formulário não liberado para este paciente")
	ErrAlreadySubmitted = errors.New("formulário já respondido")
	ErrNoSession        = errors.New("sessão inválida")
)

// ObservationField names the initial observation in incompleteness reports.
const ObservationField = "observação inicial"

// IncompleteError reports the first question left unanswered.
// Missing is ObservationField or the item id as a string.
type IncompleteError struct {
	Missing string
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("responda o item %s", e.Missing)
}
