package dialogue

import (
	"strings"

	"github.com/Freeeeeet/route_order_bot/internal/conversation"
	"github.com/Freeeeeet/route_order_bot/internal/model"
)

const (
	dataNoComment = "no_comment"
	dataConfirm   = "confirm"
	dataCancel    = "cancel"

	dataAdminAddCar    = "admin_add_car"
	dataAdminDelCar    = "admin_del_car"
	dataAdminListCar   = "admin_list_car"
	dataAdminAddRoute  = "admin_add_route"
	dataAdminDelRoute  = "admin_del_route"
	dataAdminListRoute = "admin_list_route"

	dataAdminPrefix = "admin_"
)

// maxCallbackData лимит Telegram на callback_data в байтах
const maxCallbackData = 64

// reservedData имена, которые совпадают со служебными callback data
func reservedData(name string) bool {
	switch name {
	case dataNoComment, dataConfirm, dataCancel, string(conversation.TripPerson), string(conversation.TripCargo):
		return true
	}
	for _, prefix := range []string{dataAdminPrefix, prefixYear, prefixMonth, prefixDay} {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// entriesKeyboard кнопки справочника, perRow в ряд, data = имя
func entriesKeyboard(entries []*model.CatalogEntry, perRow int) *Keyboard {
	kb := &Keyboard{}
	for i := 0; i < len(entries); i += perRow {
		end := min(i+perRow, len(entries))
		row := make([]Button, 0, end-i)
		for _, e := range entries[i:end] {
			row = append(row, Button{Text: e.Name, Data: e.Name})
		}
		kb.Inline = append(kb.Inline, row)
	}
	return kb
}

func routesKeyboard(routes []*model.CatalogEntry) *Keyboard {
	return entriesKeyboard(routes, 1)
}

func carsKeyboard(cars []*model.CatalogEntry) *Keyboard {
	return entriesKeyboard(cars, 2)
}

func tripTypeKeyboard() *Keyboard {
	return &Keyboard{Inline: [][]Button{{
		{Text: textTripPerson, Data: string(conversation.TripPerson)},
		{Text: textTripCargo, Data: string(conversation.TripCargo)},
	}}}
}

func noCommentKeyboard() *Keyboard {
	return &Keyboard{Inline: [][]Button{{{Text: "Izoh yo'q", Data: dataNoComment}}}}
}

func confirmKeyboard() *Keyboard {
	return &Keyboard{Inline: [][]Button{
		{{Text: "✅ Tasdiqlash", Data: dataConfirm}},
		{{Text: "❌ Bekor qilish", Data: dataCancel}},
	}}
}

func adminKeyboard() *Keyboard {
	return &Keyboard{Inline: [][]Button{
		{{Text: "➕ Mashina qo'shish", Data: dataAdminAddCar}},
		{{Text: "➖ Mashina o'chirish", Data: dataAdminDelCar}},
		{{Text: "🚗 Mashinalar ro'yxati", Data: dataAdminListCar}},
		{{Text: "➕ Marshrut qo'shish", Data: dataAdminAddRoute}},
		{{Text: "➖ Marshrut o'chirish", Data: dataAdminDelRoute}},
		{{Text: "🛣 Marshrutlar ro'yxati", Data: dataAdminListRoute}},
	}}
}

// userCommands меню команд; админу добавляются админские
func userCommands(isAdmin bool) []Command {
	cmds := []Command{
		{Name: CmdStart, Description: "Buyurtma berishni boshlash"},
		{Name: CmdHelp, Description: "Yordam"},
		{Name: CmdCancel, Description: "Jarayonni bekor qilish"},
	}
	if isAdmin {
		cmds = append(cmds,
			Command{Name: CmdAdmin, Description: "Admin panel (faqat admin uchun)"},
			Command{Name: CmdAdminHelp, Description: "Admin uchun yordam"},
			Command{Name: CmdStats, Description: "Statistika (faqat admin uchun)"},
			Command{Name: CmdUsers, Description: "Foydalanuvchilar soni (faqat admin uchun)"},
		)
	}
	return cmds
}

// DefaultCommands меню для всех чатов, выставляется при запуске
func DefaultCommands() []Command {
	return userCommands(false)
}
