package rabbitmq_common

// Logger - контракт логгера для pkg-уровня: сообщение и пары ключ-значение.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(err error, msg string, keysAndValues ...interface{})
}

// OrNoop возвращает l или, если он не задан, логгер, который ничего не пишет.
func OrNoop(l Logger) Logger {
	if l == nil {
		return discard{}
	}
	return l
}

type discard struct{}

func (discard) Debug(string, ...interface{})        {}
func (discard) Info(string, ...interface{})         {}
func (discard) Warn(string, ...interface{})         {}
func (discard) Error(error, string, ...interface{}) {}
