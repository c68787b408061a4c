// storage содержит контракты слоя хранилища бота знакомств.
//
// users.go - анкеты и настройки поиска (создание, чтение, частичное обновление,
// выборка кандидатов, список разрешённых контактов).
// requests.go - журнал запросов доступа (уникальная вставка, переходы состояний,
// подсчёт для дневной квоты, входящие).
package storage

import "errors"

var (
	// ErrNotFound — запись не найдена.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — конфликт уникальности (external_id, пара from/to).
	ErrAlreadyExists = errors.New("already exists")
	// ErrConflict — условный апдейт не применился: запись уже не в ожидаемом состоянии.
	ErrConflict = errors.New("conflict")
)

// Storage — верхнеуровневый интерфейс хранилища.
type Storage interface {
	Users
	Requests
	Close()
}
