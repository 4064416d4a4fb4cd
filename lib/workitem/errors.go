package workitemhandler

import "github.com/pkg/errors"

// Ошибки ядра, контроллеры транслируют их в коды ответа.
// NotFound и Forbidden намеренно различимы, объединение - политика вызывающей стороны.
var (
	ErrNotFound          = errors.New("поручение не найдено")
	ErrForbidden         = errors.New("операция недоступна для данного пользователя")
	ErrInvalidTransition = errors.New("недопустимый переход статуса")
	ErrConflict          = errors.New("поручение было изменено параллельным запросом")
)
