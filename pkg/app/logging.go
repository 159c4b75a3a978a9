package app

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// parseLogLevel 根据启动配置决定日志级别
//
// 显式的 logLevel 优先；否则 verbose 打开 debug，默认只输出警告和错误。
func parseLogLevel(logLevel string, verbose bool) zerolog.Level {
	switch strings.ToUpper(logLevel) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	}
	if verbose {
		return zerolog.DebugLevel
	}
	return zerolog.WarnLevel
}

// SetupLogging 配置全局 zerolog logger：控制台格式输出到 w（nil 时为 stderr）
func SetupLogging(w io.Writer, logLevel string, verbose bool) {
	if w == nil {
		w = os.Stderr
	}
	zerolog.SetGlobalLevel(parseLogLevel(logLevel, verbose))
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	log.Logger = zerolog.New(out).With().Timestamp().Logger()
}
