package dllist

import "github.com/sirkon/errors"

// ErrOutOfRange обращение к элементу пустого списка.
const ErrOutOfRange errors.Const = "list is empty"

// IsOutOfRange проверка, что ошибка вызвана обращением к элементу пустого списка.
func IsOutOfRange(err error) bool {
	return errors.Is(err, ErrOutOfRange)
}
