package dialogue

// EventKind форма входящего события
type EventKind int

const (
	EventCommand EventKind = iota + 1
	EventText
	EventCallback
)

func (k EventKind) String() string {
	switch k {
	case EventCommand:
		return "command"
	case EventText:
		return "text"
	case EventCallback:
		return "callback"
	default:
		return "unknown"
	}
}

// Команды бота
const (
	CmdStart     = "start"
	CmdHelp      = "help"
	CmdCancel    = "cancel"
	CmdAdmin     = "admin"
	CmdAdminHelp = "adminhelp"
	CmdStats     = "stats"
	CmdUsers     = "users"
)

// Event входящее событие от пользователя
type Event struct {
	ID       string // correlation id для логов
	Kind     EventKind
	UserID   int64
	ChatID   int64
	Username string
	FullName string

	Command string // без "/", только для EventCommand
	Text    string

	CallbackID string
	Data       string
	Message    *MessageRef // сообщение с нажатой кнопкой
}
