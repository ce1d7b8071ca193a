package dialogue

// Тексты бота (узбекский)
const (
	textWelcome        = "Assalomu alaykum!\n\nBuyurtma berish uchun yo'nalishni tanlang "
	textUseButtons     = "Iltimos, tugmalardan foydalaning!"
	textCancelled      = "Buyurtma bekor qilindi. /start orqali yangidan boshlang."
	textSessionExpired = "Sessiya tugagan. /start orqali yangidan boshlang."
	textStaleButton    = "Bu tugma eskirgan. Oxirgi xabardagi tugmalardan foydalaning."
	textNotAvailable   = "Bu tanlov endi mavjud emas."
	textGenericFailure = "Xatolik yuz berdi. Iltimos, /start orqali qaytadan urinib ko'ring."
	textUnknownCommand = "Noma'lum buyruq. /help orqali buyruqlar ro'yxatini ko'ring."

	textChooseYear    = "Sana tanlang:\n\n<code>YYYY-MM-DD</code>\n\nYilni tanlang:"
	textChooseMonth   = "Sana tanlang:\n\n<code>%d-MM-DD</code>\n\nOy tanlang:"
	textChooseDay     = "Sana tanlang:\n\n<code>%d-%02d-DD</code>\n\nKun tanlang:"
	textDateChosen    = "✅ Tanlangan sana: <b>%s</b>"
	textAskPhone      = "Telefon raqamingizni kiriting (+998XXXXXXXXX):"
	textInvalidPhone  = "Noto'g'ri telefon raqam. Iltimos, +998XXXXXXXXX formatida kiriting."
	textChooseTrip    = "Sayohat turini tanlang:"
	textTripChosen    = "✅ Tanlangan tur: %s"
	textChooseCar     = "Mashinani tanlang:"
	textCarChosen     = "✅ Tanlangan mashina: %s"
	textAskAddress    = "Qayerdan olib ketish kerak? Manzilingizni aniq yozing."
	textEmptyAddress  = "Manzil bo'sh bo'lishi mumkin emas. Manzilingizni aniq yozing."
	textAskComment    = "Izoh kiriting (ixtiyoriy): yoki qo‘shimcha fikringiz bo‘lsa kiriting."
	textOrderAccepted = "✅ Buyurtma tasdiqlandi!\n\nTez orada siz bilan bog'lanishadi."

	textTripPerson = "Odam"
	textTripCargo  = "Pochta"
	textNoComment  = "Yo'q"

	textHelp = "Bot yordamchisi:\n\n" +
		"/start — Buyurtma berishni boshlash\n" +
		"/cancel — Jarayonni bekor qilish\n" +
		"/help — Yordam\n\n" +
		"Buyurtma bosqichlarida tugmalardan foydalaning va ma'lumotlarni to'g'ri kiriting."

	textAdminOnly        = "Bu bo'lim faqat admin uchun."
	textAdminCommandOnly = "Bu buyruq faqat admin uchun."
	textAdminAlert       = "Faqat admin uchun!"
	textAdminWelcome     = "Admin paneliga xush kelibsiz!"
	textAdminHelp        = "Admin uchun buyruqlar:\n" +
		"/admin — Admin panel\n" +
		"/adminhelp — Admin uchun yordam\n" +
		"/stats — Buyurtmalar statistikasi\n" +
		"/users — Foydalanuvchilar soni\n\n" +
		"Panelda: Mashina va marshrutlarni qo'shish/o'chirish/ko'rish."
	textStats = "Jami buyurtmalar: %d"
	textUsers = "Jami foydalanuvchilar: %d"
)

var monthNames = [12]string{
	"Yanvar", "Fevral", "Mart", "Aprel", "May", "Iyun",
	"Iyul", "Avgust", "Sentabr", "Oktabr", "Noyabr", "Dekabr",
}

// catalogTexts тексты админки для одного справочника
type catalogTexts struct {
	addPrompt string
	delPrompt string
	listTitle string
	empty     string
	blankName string
	tooLong   string
	reserved  string
	added     string
	exists    string
	deleted   string
	notFound  string
}

var carTexts = catalogTexts{
	addPrompt: "Yangi mashina nomini kiriting:",
	delPrompt: "O'chirmoqchi bo'lgan mashina nomini kiriting (aniq nom):\n",
	listTitle: "Mashinalar ro'yxati:\n",
	empty:     "Mashinalar ro'yxati bo'sh.",
	blankName: "Mashina nomi bo'sh bo'lishi mumkin emas.",
	tooLong:   "Mashina nomi juda uzun. Qisqaroq nom kiriting:",
	reserved:  "Bu nomni ishlatib bo'lmaydi. Boshqa nom kiriting:",
	added:     "Mashina '%s' qo'shildi!",
	exists:    "Mashina '%s' allaqachon mavjud.",
	deleted:   "Mashina '%s' o'chirildi!",
	notFound:  "Mashina '%s' topilmadi.",
}

var routeTexts = catalogTexts{
	addPrompt: "Yangi marshrut nomini kiriting:",
	delPrompt: "O'chirmoqchi bo'lgan marshrut nomini kiriting (aniq nom):\n",
	listTitle: "Marshrutlar ro'yxati:\n",
	empty:     "Marshrutlar ro'yxati bo'sh.",
	blankName: "Marshrut nomi bo'sh bo'lishi mumkin emas.",
	tooLong:   "Marshrut nomi juda uzun. Qisqaroq nom kiriting:",
	reserved:  "Bu nomni ishlatib bo'lmaydi. Boshqa nom kiriting:",
	added:     "Marshrut '%s' qo'shildi!",
	exists:    "Marshrut '%s' allaqachon mavjud.",
	deleted:   "Marshrut '%s' o'chirildi!",
	notFound:  "Marshrut '%s' topilmadi.",
}
