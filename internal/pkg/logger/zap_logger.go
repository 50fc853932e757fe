package logger

import (
	"os"

	"github.com/mototrack/mototrack/internal/pkg/models"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger wraps zap with the application's field conventions
type ZapLogger struct {
	*zap.Logger
	sugar *zap.SugaredLogger
}

// NewZapLogger creates a new structured logger from the application config
func NewZapLogger(cfg models.LoggerConfig, serviceName string) (*ZapLogger, error) {
	level := zapcore.InfoLevel
	if err := level.Set(cfg.Level); err != nil {
		level = zapcore.InfoLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.MessageKey = "message"
	encoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder

	sinks := []zapcore.WriteSyncer{zapcore.AddSync(os.Stdout)}
	if cfg.FilePath != "" {
		file, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, zapcore.AddSync(file))
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.NewMultiWriteSyncer(sinks...),
		level,
	)

	base := zap.New(core, zap.AddCaller()).With(zap.String("service", serviceName))

	return &ZapLogger{
		Logger: base,
		sugar:  base.Sugar(),
	}, nil
}

// WithFields returns a logger with additional fields
func (z *ZapLogger) WithFields(fields map[string]interface{}) *zap.Logger {
	zapFields := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zapFields = append(zapFields, zap.Any(k, v))
	}
	return z.Logger.With(zapFields...)
}

// WithError returns a logger with an error field
func (z *ZapLogger) WithError(err error) *zap.Logger {
	return z.Logger.With(zap.Error(err))
}

// Sugar returns the sugared logger
func (z *ZapLogger) Sugar() *zap.SugaredLogger {
	return z.sugar
}

// Sync flushes any buffered log entries
func (z *ZapLogger) Sync() error {
	return z.Logger.Sync()
}
