package logger_adapter

import (
	"fmt"
	"sharespace/internal/core/port"
)

// badKey - ключ для значения без пары или с нестроковым ключом, как в slog.
const badKey = "!BADKEY"

// KeyValueAdapter отдает LoggerPort библиотекам из pkg/, которые логируют парами ключ-значение.
// Интерфейс pkg-логгера удовлетворяется структурно, без импорта pkg/.
type KeyValueAdapter struct {
	logger port.LoggerPort
}

func NewKeyValueAdapter(logger port.LoggerPort) *KeyValueAdapter {
	return &KeyValueAdapter{logger: logger}
}

func pairsToFields(keysAndValues []interface{}) port.Fields {
	if len(keysAndValues) == 0 {
		return nil
	}
	fields := make(port.Fields, (len(keysAndValues)+1)/2)
	for i := 0; i < len(keysAndValues); i += 2 {
		if i+1 == len(keysAndValues) {
			fields[badKey] = keysAndValues[i]
			break
		}
		key, ok := keysAndValues[i].(string)
		if !ok {
			key = fmt.Sprintf("%s%v", badKey, keysAndValues[i])
		}
		fields[key] = keysAndValues[i+1]
	}
	return fields
}

func (a *KeyValueAdapter) Debug(msg string, keysAndValues ...interface{}) {
	a.logger.Debug(msg, pairsToFields(keysAndValues))
}

func (a *KeyValueAdapter) Info(msg string, keysAndValues ...interface{}) {
	a.logger.Info(msg, pairsToFields(keysAndValues))
}

func (a *KeyValueAdapter) Warn(msg string, keysAndValues ...interface{}) {
	a.logger.Warn(msg, pairsToFields(keysAndValues))
}

func (a *KeyValueAdapter) Error(err error, msg string, keysAndValues ...interface{}) {
	a.logger.Error(msg, err, pairsToFields(keysAndValues))
}
