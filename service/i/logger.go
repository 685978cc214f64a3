package i

// Logger is the levelled logger every subsystem receives.
type Logger interface {
	Info(msg string)
	Warning(msg string)
	Error(msg string)
}
