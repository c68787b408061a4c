// redact маскирует секреты перед записью в лог: пароли в DSN/URL,
// токен Bot API (он входит в URL каждого запроса к api.telegram.org)
// и контактные handle пользователей.
package redact

import (
	"net/url"
	"strings"
)

const mask = "[REDACTED]"

// URL скрывает пароль в строке подключения.
//
//	"postgres://bot:secret@db:5432/bot" -> "postgres://bot:xxxxx@db:5432/bot"
//
// Неразбираемая строка скрывается целиком.
func URL(raw string) string {
	if raw == "" {
		return ""
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return mask
	}

	return u.Redacted()
}

// Token скрывает секретную часть токена Bot API, оставляя id бота.
//
//	"123456:AAE..." -> "123456:[REDACTED]"
func Token(token string) string {
	id, _, ok := strings.Cut(token, ":")
	if !ok || id == "" {
		return mask
	}

	return id + ":" + mask
}

// Secret заменяет все вхождения secret в s.
func Secret(s, secret string) string {
	if secret == "" {
		return s
	}

	return strings.ReplaceAll(s, secret, mask)
}

// Handle маскирует username: первые два символа + "***".
func Handle(username string) string {
	r := []rune(strings.TrimPrefix(username, "@"))
	if len(r) <= 2 {
		return "***"
	}

	return string(r[:2]) + "***"
}
