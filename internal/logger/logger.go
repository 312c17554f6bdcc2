package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Init builds the global zap logger for the given environment and installs it
// via zap.ReplaceGlobals. Production gets JSON output, everything else gets
// the colored development console.
func Init(env string) error {
	var conf zap.Config
	if env == "production" {
		conf = zap.NewProductionConfig()
	} else {
		conf = zap.NewDevelopmentConfig()
		conf.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	l, err := conf.Build()
	if err != nil {
		return err
	}

	zap.ReplaceGlobals(l)

	return nil
}
