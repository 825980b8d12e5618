package fluentlogger

import (
	"fmt"
	"time"

	"github.com/fluent/fluent-logger-golang/fluent"
)

const (
	defaultHost    = "127.0.0.1"
	defaultPort    = 24224
	defaultTimeout = 3 * time.Second
	// при Async записи копятся в буфере, пока Fluent Bit недоступен
	defaultBufferLimit = 8 * 1024 * 1024
)

// Config - параметры подключения к Fluent Bit. Нулевые поля получают значения по умолчанию.
type Config struct {
	Host      string
	Port      int
	TagPrefix string
	Async     bool
	Timeout   time.Duration
}

func (c Config) toFluent() (fluent.Config, error) {
	if c.TagPrefix == "" {
		return fluent.Config{}, fmt.Errorf("fluentd tag prefix is required")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fluent.Config{}, fmt.Errorf("fluentd port %d is out of range", c.Port)
	}

	fc := fluent.Config{
		FluentHost:  c.Host,
		FluentPort:  c.Port,
		TagPrefix:   c.TagPrefix,
		Async:       c.Async,
		Timeout:     c.Timeout,
		BufferLimit: defaultBufferLimit,
	}
	if fc.FluentHost == "" {
		fc.FluentHost = defaultHost
	}
	if fc.FluentPort == 0 {
		fc.FluentPort = defaultPort
	}
	if fc.Timeout <= 0 {
		fc.Timeout = defaultTimeout
	}
	return fc, nil
}

// NewClient создает клиент Fluent Bit. Соединение не проверяется:
// в режиме Async клиент подключается при первой отправке.
func NewClient(cfg Config) (*fluent.Fluent, error) {
	fc, err := cfg.toFluent()
	if err != nil {
		return nil, err
	}

	logger, err := fluent.New(fc)
	if err != nil {
		return nil, fmt.Errorf("failed to create fluentd logger for %s:%d: %w", fc.FluentHost, fc.FluentPort, err)
	}
	return logger, nil
}
