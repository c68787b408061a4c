// callback — формат данных inline-кнопок: "<action>[:<arg>]".
// Telegram ограничивает callback_data 64 байтами.
package callback

import (
	"errors"
	"fmt"
	"strings"
)

// MaxLen — предел длины callback_data в Bot API.
const MaxLen = 64

// Действия inline-кнопок.
const (
	Lang       = "lang"       // выбор языка: ru|uz
	Gender     = "gender"     // пол при регистрации/редактировании
	Marital    = "marital"    // семейное положение анкеты
	Interest   = "interest"   // переключение интереса в мультивыборе
	Done       = "done"       // завершение мультивыбора
	Skip       = "skip"       // пропуск шага (bio)
	Menu       = "menu"       // пункт главного меню
	Request    = "request"    // запрос доступа к текущему кандидату: <user id>
	Next       = "next"       // следующий кандидат
	Accept     = "accept"     // принять запрос: <request id>
	Reject     = "reject"     // отклонить запрос: <request id>
	InboxSkip  = "inbox_skip" // отложить запрос
	Edit       = "edit"       // выбор поля анкеты
	Setting    = "setting"    // выбор поля настроек поиска
	Preference = "pref"       // предпочтение по полу
	SetMarital = "smarital"   // переключение семейного положения в настройках
)

var ErrMalformed = errors.New("malformed callback data")

// Data — разобранные данные кнопки.
type Data struct {
	Action string
	Arg    string
}

// Encode собирает callback_data. Превышение MaxLen — ошибка программиста, поэтому panic.
func Encode(action string, arg ...string) string {
	s := action
	if len(arg) > 0 && arg[0] != "" {
		s += ":" + arg[0]
	}
	if len(s) > MaxLen {
		panic(fmt.Sprintf("callback data too long: %q", s))
	}

	return s
}

// Decode разбирает callback_data.
func Decode(data string) (Data, error) {
	const op = "callback/Decode"

	if data == "" || len(data) > MaxLen {
		return Data{}, fmt.Errorf("%s: %w", op, ErrMalformed)
	}

	action, arg, _ := strings.Cut(data, ":")
	if action == "" {
		return Data{}, fmt.Errorf("%s: %w", op, ErrMalformed)
	}

	return Data{Action: action, Arg: arg}, nil
}
