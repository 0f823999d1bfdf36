package commands

const (
	_etc = "/usr/local/etc/com.github.daily-yolk"

	DEFAULT_ENV = _etc + "/sheets/.env"
)
