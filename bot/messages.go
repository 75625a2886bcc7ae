package bot

// Reply texts, kept together so the bot's voice stays consistent.
const (
	msgStart = "Привет! Я помогу тебе следить за водой и калориями.\n" +
		"Сначала заполни профиль: /set_profile"

	msgHelp = "/set_profile - Настроить профиль\n" +
		"/log_water <мл> - Записать воду\n" +
		"/log_food <продукт> - Записать еду\n" +
		"/log_workout <тип> <минуты> - Записать тренировку\n" +
		"/check_progress - Посмотреть прогресс\n" +
		"/recommend - Получить рекомендации"

	msgAskWeight   = "Введите ваш вес (в кг):"
	msgAskHeight   = "Введите ваш рост (в см):"
	msgAskAge      = "Введите ваш возраст:"
	msgAskActivity = "Сколько минут активности у вас в день?"
	msgAskCity     = "В каком городе вы находитесь?"

	msgNeedNumber  = "Пожалуйста, введите число."
	msgNeedGrams   = "Введите число (граммы)."
	msgNeedProfile = "Сначала настройте профиль: /set_profile"

	msgWaterUsage     = "Пример использования: /log_water 52"
	msgFoodUsage      = "Пример: /log_food банан"
	msgWorkoutUsage   = "Пример: /log_workout бег 30"
	msgWorkoutMinutes = "Время должно быть числом."

	msgFoodNotFound = "Не удалось найти продукт или калорийность неизвестна."
	msgAllClear     = "У вас всё отлично! Продолжайте в том же духе."
)
