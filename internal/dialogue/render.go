package dialogue

import (
	"fmt"
	"html"
	"strings"

	"github.com/Freeeeeet/route_order_bot/internal/conversation"
	"github.com/Freeeeeet/route_order_bot/internal/model"
)

func tripTypeText(t conversation.TripType) string {
	if t == conversation.TripPerson {
		return textTripPerson
	}
	return textTripCargo
}

func commentText(comment string) string {
	if comment == "" {
		return textNoComment
	}
	return html.EscapeString(comment)
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// orderFields общий блок полей заказа, всё экранировано
func orderFields(a conversation.Answers) string {
	var tripType conversation.TripType
	if a.TripType != nil {
		tripType = *a.TripType
	}
	var b strings.Builder
	fmt.Fprintf(&b, "🚗 Yo'nalish: %s\n", html.EscapeString(deref(a.Direction)))
	fmt.Fprintf(&b, "📅 Sana: %s\n", html.EscapeString(deref(a.Date)))
	fmt.Fprintf(&b, "📞 Telefon: %s\n", html.EscapeString(deref(a.Phone)))
	fmt.Fprintf(&b, "👥 Tur: %s\n", tripTypeText(tripType))
	fmt.Fprintf(&b, "🚙 Mashina: %s\n", html.EscapeString(deref(a.Car)))
	fmt.Fprintf(&b, "📍 Manzil: %s\n", html.EscapeString(deref(a.Address)))
	fmt.Fprintf(&b, "💬 Izoh: %s\n", commentText(deref(a.Comment)))
	return b.String()
}

// renderSummary сводка перед подтверждением
func renderSummary(a conversation.Answers) string {
	return "📋 Buyurtma ma'lumotlari:\n\n" + orderFields(a) + "\nTasdiqlaysizmi?"
}

// renderUserAck подтверждение пользователю, без номера заказа
func renderUserAck() string {
	return textOrderAccepted
}

// userLink ссылка на пользователя: по username, иначе по id
func userLink(user *model.User, username string) string {
	name := html.EscapeString(user.FullName)
	if name == "" {
		name = fmt.Sprintf("%d", user.TelegramID)
	}
	if username != "" {
		return fmt.Sprintf("<a href='https://t.me/%s'>%s</a>", html.EscapeString(username), name)
	}
	return fmt.Sprintf("<a href='tg://user?id=%d'>%s</a>", user.TelegramID, name)
}

// renderAdminNotification уведомление админу о новом заказе
func renderAdminNotification(user *model.User, username string, a conversation.Answers, orderID int64) string {
	var b strings.Builder
	b.WriteString("🆕 Yangi buyurtma!\n\n")
	fmt.Fprintf(&b, "👤 Foydalanuvchi: %s\n", userLink(user, username))
	b.WriteString(orderFields(a))
	fmt.Fprintf(&b, "\nBuyurtma raqami: #%d", orderID)
	return b.String()
}

func joinNames(entries []*model.CatalogEntry) string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, html.EscapeString(e.Name))
	}
	return strings.Join(names, ", ")
}
