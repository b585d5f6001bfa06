package vector

import "github.com/sirkon/errors"

// ErrOutOfRange индекс вне пределов массива.
const ErrOutOfRange errors.Const = "index is out of range"

// IsOutOfRange проверка, что ошибка вызвана выходом индекса за пределы массива.
func IsOutOfRange(err error) bool {
	return errors.Is(err, ErrOutOfRange)
}
