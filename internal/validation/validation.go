package validation

import (
	"fmt"
	"regexp"
	"time"
)

// DateLayout формат даты заказа
const DateLayout = "2006-01-02"

// Телефон: необязательный "+", код страны 998 и ровно 9 цифр
var phoneRegex = regexp.MustCompile(`^\+?998\d{9}$`)

// IsValidDate проверяет строку формата YYYY-MM-DD.
// Несуществующие даты (2025-02-30) не проходят.
func IsValidDate(text string) bool {
	_, err := time.Parse(DateLayout, text)
	return err == nil
}

// IsValidPhone проверяет узбекский номер телефона
func IsValidPhone(text string) bool {
	return phoneRegex.MatchString(text)
}

// ComposeDate собирает дату заказа из выбранных года, месяца и дня
func ComposeDate(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// ParseDate разбирает дату заказа
func ParseDate(text string) (time.Time, error) {
	t, err := time.Parse(DateLayout, text)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", text, err)
	}
	return t, nil
}
