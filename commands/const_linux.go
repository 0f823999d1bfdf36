package commands

const (
	_etc = "/usr/local/etc/yolk"

	DEFAULT_ENV = _etc + "/sheets/.env"
)
