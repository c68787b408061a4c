package i18n

var uz = map[string]string{
	KeyWelcome:           "👋 Tanishuv botiga xush kelibsiz!",
	KeyChooseLanguage:    "🌍 Tilni tanlang / Выберите язык:",
	KeyLanguageChanged:   "✅ Til o'zbekchaga o'zgartirildi",
	KeyMainMenu:          "👋 Amalni tanlang:",
	KeyErrorOccurred:     "❌ Xatolik yuz berdi, qaytadan urinib ko'ring",
	KeyNotRegistered:     "❌ Siz ro'yxatdan o'tmagansiz. /start bilan boshlang",
	KeyAlreadyRegistered: "ℹ️ Siz allaqachon ro'yxatdan o'tgansiz",
	KeyRateLimited:       "⏳ Juda ko'p amal. Biroz kuting",
	KeyCancelled:         "Bekor qilindi",
	KeyAny:               "istalgan",

	KeyBtnSearch:     "🔍 Odamlarni qidirish",
	KeyBtnProfile:    "👤 Mening profilim",
	KeyBtnSettings:   "⚙️ Qidiruv sozlamalari",
	KeyBtnRequests:   "📨 So'rovlar",
	KeyBtnContacts:   "💬 Kontaktlar",
	KeyBtnLanguage:   "🌍 Til",
	KeyBtnDeactivate: "🙈 Anketani yashirish",
	KeyBtnReactivate: "👀 Anketani ko'rsatish",
	KeyBtnBack:       "🔙 Bosh menyu",
	KeyBtnSkip:       "O'tkazib yuborish",
	KeyBtnDone:       "Tayyor",

	KeyRegGender:    "🎯 Ro'yxatdan o'tishni boshlaymiz! Jinsingizni ko'rsating:",
	KeyRegAge:       "Yoshingizni kiriting ({{.min}} dan {{.max}} gacha):",
	KeyRegHeight:    "Bo'yingizni sm da kiriting ({{.min}} dan {{.max}} gacha):",
	KeyRegWeight:    "Vazningizni kg da kiriting ({{.min}} dan {{.max}} gacha):",
	KeyRegMarital:   "Oilaviy ahvolingizni tanlang:",
	KeyRegInterests: "Qiziqishlaringizni tanlang (bir nechtasini), so'ng «Tayyor» ni bosing:",
	KeyRegBio:       "O'zingiz haqingizda yozing (500 belgigacha, havolalarsiz) yoki «O'tkazib yuborish» ni bosing:",
	KeyRegComplete:  "✅ Ro'yxatdan o'tish tugallandi! Endi odamlarni qidirishingiz mumkin.",

	KeyInvalidNumber: "❌ Raqam kiriting",
	KeyOutOfBounds:   "❌ Qiymat {{.min}} dan {{.max}} gacha bo'lishi kerak",
	KeyInvalidRange:  "❌ Oraliqni min-max ko'rinishida kiriting, masalan {{.min}}-{{.max}}",
	KeyInvalidBio:    "❌ Tavsif 500 belgigacha, havolalar, @eslatmalar, #teglar va HTML'siz",
	KeyInvalidValue:  "❌ Noto'g'ri qiymat",

	KeyCardGender:    "👤 {{.gender}}, {{.age}} yosh",
	KeyCardHeight:    "📏 Bo'y: {{.height}} sm",
	KeyCardWeight:    "⚖️ Vazn: {{.weight}} kg",
	KeyCardMarital:   "💍 Holat: {{.status}}",
	KeyCardInterests: "🎯 Qiziqishlar: {{.interests}}",
	KeyCardBio:       "💬 O'zim haqimda:\n{{.bio}}",
	KeyProfileTitle:  "👤 Mening profilim:",
	KeyProfileHidden: "🙈 Anketa qidiruvdan yashirilgan",

	KeySearchNoResults:  "😔 Mos odamlar topilmadi. Qidiruv sozlamalarini o'zgartirib ko'ring.",
	KeySearchFound:      "✅ Mos odamlar topildi: {{.count}}",
	KeySearchNoMore:     "😔 Boshqa odamlar topilmadi",
	KeySearchExpired:    "⌛ Qidiruv eskirdi, qaytadan boshlang",
	KeySearchLeft:       "🔎 Qolgan anketalar: {{.count}}",
	KeyBtnRequestAccess: "💬 Ruxsat so'rash",
	KeyBtnNext:          "➡️ Keyingi",
	KeyRequestSent:      "📤 So'rov yuborildi! Bugun qolgan so'rovlar: {{.remaining}}",
	KeyDailyLimit:       "❌ Kunlik so'rovlar chegarasiga yetildi ({{.limit}})",
	KeyAlreadyRequested: "ℹ️ Siz allaqachon bu foydalanuvchiga so'rov yuborgansiz",
	KeyCandidateGone:    "😔 Anketa endi mavjud emas",

	KeyEditChoose:       "✏️ Nimani o'zgartiramiz?",
	KeyBtnEditGender:    "Jins",
	KeyBtnEditAge:       "Yosh",
	KeyBtnEditHeight:    "Bo'y",
	KeyBtnEditWeight:    "Vazn",
	KeyBtnEditMarital:   "Oilaviy ahvol",
	KeyBtnEditInterests: "🎯 Qiziqishlar",
	KeyBtnEditBio:       "💬 O'zim haqimda",
	KeyProfileSaved:     "✅ Profil yangilandi",

	KeySettingsTitle:         "⚙️ Qidiruv sozlamalari:",
	KeySettingsGender:        "Jins: {{.preference}}",
	KeySettingsAge:           "Yosh: {{.min}} dan {{.max}} gacha",
	KeySettingsHeight:        "Bo'y: {{.min}} dan {{.max}} sm gacha",
	KeySettingsWeight:        "Vazn: {{.min}} dan {{.max}} kg gacha",
	KeySettingsMarital:       "Oilaviy ahvol: {{.preference}}",
	KeySettingsEnterRange:    "Oraliqni min-max ko'rinishida kiriting (ruxsat {{.min}}-{{.max}}):",
	KeySettingsChooseGender:  "Kimni qidiramiz?",
	KeySettingsChooseMarital: "Mos variantlarni tanlang (bo'sh — istalgan), so'ng «Tayyor»:",
	KeySettingsSaved:         "✅ Sozlamalar saqlandi",

	KeyRequestsEmpty:   "📭 Yangi so'rovlar yo'q",
	KeyRequestsFrom:    "📨 Ruxsat uchun so'rov ({{.position}}/{{.total}}):",
	KeyRequestsDone:    "✅ Barcha so'rovlar ko'rib chiqildi",
	KeyBtnAccept:       "✅ Qabul qilish",
	KeyBtnReject:       "❌ Rad etish",
	KeyRequestAccepted: "✅ So'rov qabul qilindi! Foydalanuvchi kontaktingizni oladi.",
	KeyRequestRejected: "❌ So'rov rad etildi",
	KeyAlreadyHandled:  "ℹ️ Bu so'rov allaqachon ko'rib chiqilgan",

	KeyNotifyNewRequest:    "📨 Ruxsat uchun yangi so'rov!",
	KeyNotifyQuestion:      "Username'ingizga ruxsat berasizmi?",
	KeyNotifyAccessGranted: "🎉 Ajoyib yangilik!\n\nFoydalanuvchi ({{.gender}}, {{.age}} yosh) sizga shaxsiy yozishmaga ruxsat berdi.",
	KeyNotifyUsername:      "Username: @{{.username}}",
	KeyNotifyNoUsername:    "Foydalanuvchi username ko'rsatmagan",
	KeyNotifySummary:       "📊 Kunlik hisobot\n\n📨 Yangi so'rovlar: {{.pending}}\n✅ Qabul qilingan: {{.accepted}}\n📤 Yuborilgan: {{.sent}}",

	KeyContactsTitle: "💬 Kontaktlaringiz:",
	KeyContactsEmpty: "Hozircha ochiq kontaktlar yo'q",
	KeyContactsItem:  "• {{.gender}}, {{.age}}: {{.handle}}",

	KeyDeactivated: "🙈 Anketa yashirildi. Sizni qidiruvda ko'rishmaydi",
	KeyReactivated: "👀 Anketa yana qidiruvda ko'rinadi",

	"gender_male":         "Erkak",
	"gender_female":       "Ayol",
	"gender_unspecified":  "ko'rsatilmagan",
	"marital_single":      "Turmush qurmagan",
	"marital_married":     "Turmush qurgan",
	"marital_divorced":    "Ajrashgan",
	"marital_unspecified": "ko'rsatilmagan",
	"pref_all":            "Hammasi",
	"pref_male":           "Erkaklar",
	"pref_female":         "Ayollar",
	"interest_sport":      "Sport",
	"interest_music":      "Musiqa",
	"interest_movies":     "Kino",
	"interest_books":      "Kitoblar",
	"interest_travel":     "Sayohat",
	"interest_cooking":    "Oshpazlik",
	"interest_art":        "San'at",
	"interest_tech":       "Texnologiya",
	"interest_nature":     "Tabiat",
	"interest_photo":      "Fotografiya",
	"interest_dance":      "Raqs",
	"interest_yoga":       "Yoga",
	"interest_games":      "O'yinlar",
	"interest_science":    "Fan",
}
