package commands

const (
	_etc = `C:\ProgramData\yolk`

	DEFAULT_ENV = _etc + `\sheets\.env`
)
