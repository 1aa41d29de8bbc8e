package cli

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/axent-pl/issuerid/common/logx"
)

func initLogging(v *viper.Viper, w io.Writer) {
	level, err := zerolog.ParseLevel(v.GetString(LogLevelKey))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if v.GetString(LogFormatKey) == "json" {
		logger = zerolog.New(w)
	} else {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: w})
	}
	log.Logger = logger.Level(level).With().Timestamp().Logger()

	logx.SetLogger(zlogger{zlog: log.Logger})
}

var _ logx.Logger = zlogger{}

// zlogger routes library logs through zerolog.
type zlogger struct {
	zlog zerolog.Logger
}

func (l zlogger) Debug(msg string, args ...any) { l.zlog.Debug().Fields(args).Msg(msg) }
func (l zlogger) Info(msg string, args ...any)  { l.zlog.Info().Fields(args).Msg(msg) }
func (l zlogger) Warn(msg string, args ...any)  { l.zlog.Warn().Fields(args).Msg(msg) }
func (l zlogger) Error(msg string, args ...any) { l.zlog.Error().Fields(args).Msg(msg) }
