package console

const (
	separator = "----------------------------------------"
	divider   = "--------------------"

	greetTitle    = "Добро пожаловать в игру Морской бой!"
	greetControls = "Управление:"
	greetFormat   = "Чтобы сделать ход, введите координаты клетки в формате: x y"
	greetLegend   = "где x - номер строки, y - номер столбца"
	greetLuck     = "Желаю Вам удачи! =)"

	humanBoardTitle    = "Ваша доска:"
	computerBoardTitle = "Доска компьютера:"

	humanTurn    = "Ваш ход!"
	computerTurn = "Ход компьютера!"
	computerMove = "Ход ПК: %s\n"

	movePrompt       = "Сделайте ход: "
	wrongTokenCount  = "Необходимо ввести 2 координаты!"
	wrongTokenNumber = "Вы ввели не числа ;)"

	outOfBoundsShot = "Вы стреляете за пределы поля"
	alreadyShot     = "Вы уже стреляли в эту клетку :/"
	unknownShot     = "Недопустимый выстрел"

	missOutcome      = "Промах!"
	hitOutcome       = "Есть пробитие!"
	destroyedOutcome = "Корабль уничтожен!"

	journalTitle = "Журнал партии %s:\n"
	journalEmpty = "Журнал пуст"
	journalShot  = "%d. %s: %d, %d. %s\n"
	humanName    = "Вы"
	computerName = "ПК"

	humanWon    = "Вы выиграли! Молодец!"
	computerWon = "Компьютер выиграл! Не расстраивайтесь, вы молодец!"
)
