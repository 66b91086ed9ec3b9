package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	register(Ukrainian, map[string]string{
		"site.title":  "Подорожі",
		"nav.home":    "Усі тури",
		"nav.cabinet": "Кабінет",
		"nav.login":   "Увійти",
		"nav.signup":  "Реєстрація",
		"nav.logout":  "Вийти",

		"departure.kyiv":    "з Києва",
		"departure.lviv":    "зі Львова",
		"departure.odesa":   "з Одеси",
		"departure.kharkiv": "з Харкова",
		"departure.dnipro":  "з Дніпра",
		"departure.unknown": "з невідомого міста",

		"index.heading":     "Усі тури",
		"departure.heading": "Тури %s",
		"tours.empty":       "Турів поки немає",
		"tour.nights":       "%d ночей",
		"tour.stars":        "%d★",
		"tour.price":        "%d грн",
		"tour.departs":      "Виїзд %s, %s",
		"tour.buy":          "Купити тур",
		"tour.delete":       "Видалити тур",
		"tour.remove":       "Відмовитися",
		"tour.more":         "Детальніше",

		"cabinet.heading": "Особистий кабінет",
		"cabinet.hello":   "Вітаємо, %s!",
		"cabinet.empty":   "Ви ще не придбали жодного туру",
		"cabinet.tours":   "Ваші тури",

		"signup.heading":             "Реєстрація",
		"login.heading":              "Вхід",
		"form.first_name":            "Ім'я",
		"form.last_name":             "Прізвище",
		"form.email":                 "Електронна пошта",
		"form.password":              "Пароль",
		"form.password_confirmation": "Повторіть пароль",
		"form.signup":                "Зареєструватися",
		"form.login":                 "Увійти",

		"field.required":          "Це поле обов'язкове",
		"field.email":             "Некоректна адреса електронної пошти",
		"field.password_mismatch": "Паролі не збігаються",
		"field.email_taken":       "Цю адресу вже зареєстровано",
		"field.password_too_long": "Пароль задовгий (не більше 72 байтів)",
		"field.invalid":           "Некоректне значення",

		"flash.login_required":  "Для можливості бронювання увійдіть у систему",
		"flash.tour_bought":     "Ви успішно купили тур '%s', дякуємо!",
		"flash.tour_removed":    "Тур '%s' видалено з вашого кабінету",
		"flash.tour_deleted":    "Тур '%s' видалено",
		"flash.admin_only":      "Видаляти тури може лише адміністратор",
		"flash.signed_up":       "Успішно зареєстровано",
		"flash.bad_credentials": "Логін або пароль не вірні",
		"flash.logged_out":      "Ви успішно вийшли з системи",

		"error.not_found": "Сторінку не знайдено",
		"error.internal":  "Щось пішло не так, спробуйте пізніше",
	})

	register(English, map[string]string{
		"site.title":  "Travel",
		"nav.home":    "All tours",
		"nav.cabinet": "Account",
		"nav.login":   "Log in",
		"nav.signup":  "Sign up",
		"nav.logout":  "Log out",

		"departure.kyiv":    "from Kyiv",
		"departure.lviv":    "from Lviv",
		"departure.odesa":   "from Odesa",
		"departure.kharkiv": "from Kharkiv",
		"departure.dnipro":  "from Dnipro",
		"departure.unknown": "from an unknown city",

		"index.heading":     "All tours",
		"departure.heading": "Tours %s",
		"tours.empty":       "No tours yet",
		"tour.nights":       "%d nights",
		"tour.stars":        "%d★",
		"tour.price":        "%d UAH",
		"tour.departs":      "Departs %s, %s",
		"tour.buy":          "Buy tour",
		"tour.delete":       "Delete tour",
		"tour.remove":       "Cancel",
		"tour.more":         "Details",

		"cabinet.heading": "Your account",
		"cabinet.hello":   "Welcome, %s!",
		"cabinet.empty":   "You have not bought any tours yet",
		"cabinet.tours":   "Your tours",

		"signup.heading":             "Sign up",
		"login.heading":              "Log in",
		"form.first_name":            "First name",
		"form.last_name":             "Last name",
		"form.email":                 "Email",
		"form.password":              "Password",
		"form.password_confirmation": "Repeat password",
		"form.signup":                "Create account",
		"form.login":                 "Log in",

		"field.required":          "This field is required",
		"field.email":             "Invalid email address",
		"field.password_mismatch": "Passwords do not match",
		"field.email_taken":       "This email is already registered",
		"field.password_too_long": "Password is too long (72 bytes at most)",
		"field.invalid":           "Invalid value",

		"flash.login_required":  "Please log in to book tours",
		"flash.tour_bought":     "You bought the tour '%s', thank you!",
		"flash.tour_removed":    "Tour '%s' was removed from your account",
		"flash.tour_deleted":    "Tour '%s' was deleted",
		"flash.admin_only":      "Only administrators can delete tours",
		"flash.signed_up":       "Registration successful",
		"flash.bad_credentials": "Wrong email or password",
		"flash.logged_out":      "You have logged out",

		"error.not_found": "Page not found",
		"error.internal":  "Something went wrong, please try again later",
	})
}

func register(tag language.Tag, messages map[string]string) {
	for key, msg := range messages {
		_ = message.SetString(tag, key, msg)
	}
}
