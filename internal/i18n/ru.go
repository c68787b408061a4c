package i18n

var ru = map[string]string{
	KeyWelcome:           "👋 Добро пожаловать в бот знакомств!",
	KeyChooseLanguage:    "🌍 Выберите язык / Tilni tanlang:",
	KeyLanguageChanged:   "✅ Язык изменён на русский",
	KeyMainMenu:          "👋 Выберите действие:",
	KeyErrorOccurred:     "❌ Произошла ошибка, попробуйте ещё раз",
	KeyNotRegistered:     "❌ Вы не зарегистрированы. Начните с /start",
	KeyAlreadyRegistered: "ℹ️ Вы уже зарегистрированы",
	KeyRateLimited:       "⏳ Слишком много действий. Подождите немного",
	KeyCancelled:         "Отменено",
	KeyAny:               "любое",

	KeyBtnSearch:     "🔍 Найти людей",
	KeyBtnProfile:    "👤 Мой профиль",
	KeyBtnSettings:   "⚙️ Настройки поиска",
	KeyBtnRequests:   "📨 Запросы",
	KeyBtnContacts:   "💬 Контакты",
	KeyBtnLanguage:   "🌍 Язык",
	KeyBtnDeactivate: "🙈 Скрыть анкету",
	KeyBtnReactivate: "👀 Показать анкету",
	KeyBtnBack:       "🔙 Главное меню",
	KeyBtnSkip:       "Пропустить",
	KeyBtnDone:       "Готово",
	KeyBtnLangRU:     "🇷🇺 Русский",
	KeyBtnLangUZ:     "🇺🇿 O'zbekcha",

	KeyRegGender:    "🎯 Начнём регистрацию! Укажите ваш пол:",
	KeyRegAge:       "Введите ваш возраст (от {{.min}} до {{.max}}):",
	KeyRegHeight:    "Введите ваш рост в см (от {{.min}} до {{.max}}):",
	KeyRegWeight:    "Введите ваш вес в кг (от {{.min}} до {{.max}}):",
	KeyRegMarital:   "Выберите ваше семейное положение:",
	KeyRegInterests: "Выберите ваши интересы (можно несколько), затем нажмите «Готово»:",
	KeyRegBio:       "Расскажите о себе (до 500 символов, без ссылок и @упоминаний) или нажмите «Пропустить»:",
	KeyRegComplete:  "✅ Регистрация завершена! Теперь вы можете искать людей.",

	KeyInvalidNumber: "❌ Введите число",
	KeyOutOfBounds:   "❌ Значение должно быть от {{.min}} до {{.max}}",
	KeyInvalidRange:  "❌ Введите диапазон в формате мин-макс, например {{.min}}-{{.max}}",
	KeyInvalidBio:    "❌ Описание до 500 символов, без ссылок, @упоминаний, #тегов и HTML",
	KeyInvalidValue:  "❌ Недопустимое значение",

	KeyCardGender:    "👤 {{.gender}}, {{.age}} лет",
	KeyCardHeight:    "📏 Рост: {{.height}} см",
	KeyCardWeight:    "⚖️ Вес: {{.weight}} кг",
	KeyCardMarital:   "💍 Статус: {{.status}}",
	KeyCardInterests: "🎯 Интересы: {{.interests}}",
	KeyCardBio:       "💬 О себе:\n{{.bio}}",
	KeyProfileTitle:  "👤 Мой профиль:",
	KeyProfileHidden: "🙈 Анкета скрыта из поиска",

	KeySearchNoResults:  "😔 Подходящих людей не найдено. Попробуйте изменить настройки поиска.",
	KeySearchFound:      "✅ Найдено подходящих людей: {{.count}}",
	KeySearchNoMore:     "😔 Больше людей не найдено",
	KeySearchExpired:    "⌛ Поиск устарел, начните заново",
	KeySearchLeft:       "🔎 Осталось анкет: {{.count}}",
	KeyBtnRequestAccess: "💬 Запросить доступ",
	KeyBtnNext:          "➡️ Следующий",
	KeyRequestSent:      "📤 Запрос отправлен! Осталось запросов на сегодня: {{.remaining}}",
	KeyDailyLimit:       "❌ Достигнут дневной лимит запросов ({{.limit}})",
	KeyAlreadyRequested: "ℹ️ Вы уже отправляли запрос этому пользователю",
	KeyCandidateGone:    "😔 Анкета больше недоступна",

	KeyEditChoose:       "✏️ Что изменить?",
	KeyBtnEditGender:    "Пол",
	KeyBtnEditAge:       "Возраст",
	KeyBtnEditHeight:    "Рост",
	KeyBtnEditWeight:    "Вес",
	KeyBtnEditMarital:   "Семейное положение",
	KeyBtnEditInterests: "🎯 Интересы",
	KeyBtnEditBio:       "💬 О себе",
	KeyProfileSaved:     "✅ Профиль обновлён",

	KeySettingsTitle:         "⚙️ Настройки поиска:",
	KeySettingsGender:        "Пол: {{.preference}}",
	KeySettingsAge:           "Возраст: от {{.min}} до {{.max}}",
	KeySettingsHeight:        "Рост: от {{.min}} до {{.max}} см",
	KeySettingsWeight:        "Вес: от {{.min}} до {{.max}} кг",
	KeySettingsMarital:       "Семейное положение: {{.preference}}",
	KeySettingsEnterRange:    "Введите диапазон в формате мин-макс (допустимо {{.min}}-{{.max}}):",
	KeySettingsChooseGender:  "Кого искать?",
	KeySettingsChooseMarital: "Выберите подходящие варианты (пусто — любое), затем «Готово»:",
	KeySettingsSaved:         "✅ Настройки сохранены",

	KeyRequestsEmpty:   "📭 У вас нет новых запросов",
	KeyRequestsFrom:    "📨 Запрос на доступ ({{.position}}/{{.total}}):",
	KeyRequestsDone:    "✅ Все запросы просмотрены",
	KeyBtnAccept:       "✅ Принять",
	KeyBtnReject:       "❌ Отклонить",
	KeyRequestAccepted: "✅ Запрос принят! Пользователь получит ваш контакт.",
	KeyRequestRejected: "❌ Запрос отклонён",
	KeyAlreadyHandled:  "ℹ️ Этот запрос уже обработан",

	KeyNotifyNewRequest:    "📨 Новый запрос на доступ!",
	KeyNotifyQuestion:      "Хотите дать доступ к вашему username?",
	KeyNotifyAccessGranted: "🎉 Отличные новости!\n\nПользователь {{.gender}}, {{.age}} лет согласился дать вам доступ в личку.",
	KeyNotifyUsername:      "Username: @{{.username}}",
	KeyNotifyNoUsername:    "Пользователь не указал username",
	KeyNotifySummary:       "📊 Ежедневная сводка\n\n📨 Новых запросов: {{.pending}}\n✅ Принятых запросов: {{.accepted}}\n📤 Отправленных запросов: {{.sent}}",

	KeyContactsTitle: "💬 Ваши контакты:",
	KeyContactsEmpty: "Пока нет открытых контактов",
	KeyContactsItem:  "• {{.gender}}, {{.age}}: {{.handle}}",

	KeyDeactivated: "🙈 Анкета скрыта. Вас не увидят в поиске",
	KeyReactivated: "👀 Анкета снова видна в поиске",

	"gender_male":         "Мужчина",
	"gender_female":       "Женщина",
	"gender_unspecified":  "не указан",
	"marital_single":      "Холост/Не замужем",
	"marital_married":     "Женат/Замужем",
	"marital_divorced":    "Разведён/Разведена",
	"marital_unspecified": "не указано",
	"pref_all":            "Все",
	"pref_male":           "Мужчины",
	"pref_female":         "Женщины",
	"interest_sport":      "Спорт",
	"interest_music":      "Музыка",
	"interest_movies":     "Кино",
	"interest_books":      "Книги",
	"interest_travel":     "Путешествия",
	"interest_cooking":    "Кулинария",
	"interest_art":        "Искусство",
	"interest_tech":       "Технологии",
	"interest_nature":     "Природа",
	"interest_photo":      "Фотография",
	"interest_dance":      "Танцы",
	"interest_yoga":       "Йога",
	"interest_games":      "Игры",
	"interest_science":    "Наука",
}
