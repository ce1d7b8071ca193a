package dialogue

import "errors"

// ErrPermission действие доступно только админу
var ErrPermission = errors.New("admin only")

// userMessage текст ошибки для пользователя; внутренние детали в чат не попадают
func userMessage(err error) string {
	if errors.Is(err, ErrPermission) {
		return textAdminOnly
	}
	return textGenericFailure
}
