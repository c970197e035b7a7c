package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso não encontrado")
	ErrUserNotFound    = errors.New("usuário não encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrDuplicate       = errors.New("recurso duplicado")
	ErrUnauthorized    = errors.New("não autorizado")
	ErrForbidden       = errors.New("acesso negado")
	ErrConflict        = errors.New("conflito com o estado atual")
	ErrInactiveUser    = errors.New("usuário inativo")
	ErrDataUnavailable = errors.New("dados indisponíveis")
)
