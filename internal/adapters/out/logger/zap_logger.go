package logger

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/suchimauz/clinic-booking-gateway/internal/config"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/ports/out"
)

// ZapLogger adapts go.uber.org/zap to the LoggerPort contract: dot-namespaced
// event names as messages, module carried as the logger name, default fields
// accumulated through WithFields.
type ZapLogger struct {
	zap *zap.Logger
}

func NewZapLogger(cfg *config.Config) (*ZapLogger, error) {
	location, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		location = time.UTC
	}

	var zapCfg zap.Config
	if cfg.IsLocal() {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}
	zapCfg.EncoderConfig.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.In(location).Format("2006-01-02 15:04:05.000"))
	}

	zapLogger, err := zapCfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}

	return &ZapLogger{zap: zapLogger}, nil
}

func (l *ZapLogger) Debug(event string, fields out.LogFields) {
	l.zap.Debug(event, toZapFields(fields)...)
}

func (l *ZapLogger) Info(event string, fields out.LogFields) {
	l.zap.Info(event, toZapFields(fields)...)
}

func (l *ZapLogger) Warn(event string, fields out.LogFields) {
	l.zap.Warn(event, toZapFields(fields)...)
}

func (l *ZapLogger) Error(event string, fields out.LogFields) {
	l.zap.Error(event, toZapFields(fields)...)
}

func (l *ZapLogger) WithFields(fields out.LogFields) out.LoggerPort {
	return &ZapLogger{zap: l.zap.With(toZapFields(fields)...)}
}

func (l *ZapLogger) WithModule(module string) out.LoggerPort {
	return &ZapLogger{zap: l.zap.Named(module)}
}

func (l *ZapLogger) Sync() error {
	return l.zap.Sync()
}

func toZapFields(fields out.LogFields) []zap.Field {
	zapFields := make([]zap.Field, 0, len(fields))
	for key, value := range fields {
		zapFields = append(zapFields, zap.Any(key, value))
	}
	return zapFields
}
