package client

// Locale selects the language of user-facing error messages.
type Locale string

const (
	LocaleEnglish Locale = "en"
	LocaleArabic  Locale = "ar"
)

// Messages are the user-facing texts the gateway substitutes into errors.
type Messages struct {
	Generic        string
	SessionExpired string
	LoginRequired  string
}

var messages = map[Locale]Messages{
	LocaleEnglish: {
		Generic:        "Something went wrong, please try again",
		SessionExpired: "Session expired, please log in again",
		LoginRequired:  "Please log in to continue",
	},
	LocaleArabic: {
		Generic:        "حدث خطآ،جاري المتابعة",
		SessionExpired: "انتهت صلاحية الجلسة، يرجى تسجيل الدخول مرة أخرى",
		LoginRequired:  "يجب تسجيل الدخول للمتابعة",
	},
}

// MessagesFor returns the texts for l, falling back to English.
func MessagesFor(l Locale) Messages {
	if m, ok := messages[l]; ok {
		return m
	}
	return messages[LocaleEnglish]
}
