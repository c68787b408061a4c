package i18n

// Ключи каталога.
const (
	KeyWelcome           = "welcome"
	KeyChooseLanguage    = "choose_language"
	KeyLanguageChanged   = "language_changed"
	KeyMainMenu          = "main_menu"
	KeyErrorOccurred     = "error_occurred"
	KeyNotRegistered     = "not_registered"
	KeyAlreadyRegistered = "already_registered"
	KeyRateLimited       = "rate_limited"
	KeyCancelled         = "cancelled"
	KeyAny               = "any"

	KeyBtnSearch     = "btn_search"
	KeyBtnProfile    = "btn_profile"
	KeyBtnSettings   = "btn_settings"
	KeyBtnRequests   = "btn_requests"
	KeyBtnContacts   = "btn_contacts"
	KeyBtnLanguage   = "btn_language"
	KeyBtnDeactivate = "btn_deactivate"
	KeyBtnReactivate = "btn_reactivate"
	KeyBtnBack       = "btn_back"
	KeyBtnSkip       = "btn_skip"
	KeyBtnDone       = "btn_done"
	KeyBtnLangRU     = "btn_lang_ru"
	KeyBtnLangUZ     = "btn_lang_uz"

	KeyRegGender    = "reg_gender"
	KeyRegAge       = "reg_age"
	KeyRegHeight    = "reg_height"
	KeyRegWeight    = "reg_weight"
	KeyRegMarital   = "reg_marital"
	KeyRegInterests = "reg_interests"
	KeyRegBio       = "reg_bio"
	KeyRegComplete  = "reg_complete"

	KeyInvalidNumber = "invalid_number"
	KeyOutOfBounds   = "out_of_bounds"
	KeyInvalidRange  = "invalid_range"
	KeyInvalidBio    = "invalid_bio"
	KeyInvalidValue  = "invalid_value"

	KeyCardGender    = "card_gender"
	KeyCardHeight    = "card_height"
	KeyCardWeight    = "card_weight"
	KeyCardMarital   = "card_marital"
	KeyCardInterests = "card_interests"
	KeyCardBio       = "card_bio"
	KeyProfileTitle  = "profile_title"
	KeyProfileHidden = "profile_hidden"

	KeySearchNoResults  = "search_no_results"
	KeySearchFound      = "search_found"
	KeySearchNoMore     = "search_no_more"
	KeySearchExpired    = "search_expired"
	KeySearchLeft       = "search_left"
	KeyBtnRequestAccess = "btn_request_access"
	KeyBtnNext          = "btn_next"
	KeyRequestSent      = "request_sent"
	KeyDailyLimit       = "error_daily_limit"
	KeyAlreadyRequested = "error_already_requested"
	KeyCandidateGone    = "candidate_gone"

	KeyEditChoose       = "edit_choose"
	KeyBtnEditGender    = "btn_edit_gender"
	KeyBtnEditAge       = "btn_edit_age"
	KeyBtnEditHeight    = "btn_edit_height"
	KeyBtnEditWeight    = "btn_edit_weight"
	KeyBtnEditMarital   = "btn_edit_marital"
	KeyBtnEditInterests = "btn_edit_interests"
	KeyBtnEditBio       = "btn_edit_bio"
	KeyProfileSaved     = "profile_saved"

	KeySettingsTitle         = "settings_title"
	KeySettingsGender        = "settings_gender"
	KeySettingsAge           = "settings_age"
	KeySettingsHeight        = "settings_height"
	KeySettingsWeight        = "settings_weight"
	KeySettingsMarital       = "settings_marital"
	KeySettingsEnterRange    = "settings_enter_range"
	KeySettingsChooseGender  = "settings_choose_gender"
	KeySettingsChooseMarital = "settings_choose_marital"
	KeySettingsSaved         = "settings_saved"

	KeyRequestsEmpty   = "requests_empty"
	KeyRequestsFrom    = "requests_from"
	KeyRequestsDone    = "requests_done"
	KeyBtnAccept       = "btn_accept"
	KeyBtnReject       = "btn_reject"
	KeyRequestAccepted = "request_accepted"
	KeyRequestRejected = "request_rejected"
	KeyAlreadyHandled  = "request_already_handled"

	KeyNotifyNewRequest    = "notify_new_request"
	KeyNotifyQuestion      = "notify_question"
	KeyNotifyAccessGranted = "notify_access_granted"
	KeyNotifyUsername      = "notify_username"
	KeyNotifyNoUsername    = "notify_no_username"
	KeyNotifySummary       = "notify_summary"

	KeyContactsTitle = "contacts_title"
	KeyContactsEmpty = "contacts_empty"
	KeyContactsItem  = "contacts_item"

	KeyDeactivated = "deactivated"
	KeyReactivated = "reactivated"
)
