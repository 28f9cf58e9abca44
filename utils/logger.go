package utils

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

var (
	InfoLog  *slog.Logger = slog.Default()
	ErrorLog *slog.Logger = slog.Default()
)

// ParsearNivel convierte el LOG_LEVEL de la configuración en un nivel de slog
func ParsearNivel(logLevel string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(logLevel)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NuevoLogger crea un logger de texto con el atributo del módulo
func NuevoLogger(w io.Writer, logLevel string, moduleName string) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParsearNivel(logLevel),
	})
	return slog.New(handler).With("modulo", moduleName)
}

// InicializarLogger configura los loggers globales y el logger por defecto
func InicializarLogger(logLevel string, moduleName string) {
	logger := NuevoLogger(os.Stdout, logLevel, moduleName)

	InfoLog = logger
	ErrorLog = logger
	slog.SetDefault(logger)
}
