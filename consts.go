package logger

const (
	errMsgNilConfig     = "logging config is nil"
	errMsgConfigInvalid = "logging configuration is invalid"
)
