package bitacora

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/DistributedClocks/GoVector/govec"

	"github.com/sisoputnfrba/tp-2025-1c-LosCuervosXeneizes-visualizador/memoria"
)

// NivelSlog traduce la severidad del log compartido a un nivel de slog
func NivelSlog(s memoria.Severidad) slog.Level {
	switch s {
	case memoria.SeveridadAdvertencia:
		return slog.LevelWarn
	case memoria.SeveridadError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type sumideroSlog struct {
	logger *slog.Logger
}

// NewSumideroSlog reenvía cada entrada al logger estructurado
func NewSumideroSlog(logger *slog.Logger) memoria.Sumidero {
	if logger == nil {
		logger = slog.Default()
	}
	return &sumideroSlog{logger: logger}
}

func (s *sumideroSlog) Registrar(entrada memoria.EntradaLog) {
	s.logger.Log(context.Background(), NivelSlog(entrada.Severidad), entrada.Mensaje,
		"tiempo", entrada.Tiempo,
		"tipo", entrada.Severidad.String())
}

// SumideroShiViz registra cada entrada como evento local de GoVector, de modo
// que la sesión se pueda abrir en ShiViz como una línea de tiempo.
type SumideroShiViz struct {
	mutex  sync.Mutex
	vecLog *govec.GoLog
}

// NewSumideroShiViz crea el log de GoVector. El archivo resultante es
// "<archivo>-Log.txt".
func NewSumideroShiViz(proceso string, archivo string) *SumideroShiViz {
	return &SumideroShiViz{
		vecLog: govec.InitGoVector(proceso, archivo, govec.GetDefaultConfig()),
	}
}

func (s *SumideroShiViz) Registrar(entrada memoria.EntradaLog) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	opt := govec.GetDefaultLogOptions()
	s.vecLog.LogLocalEvent(fmt.Sprintf("[%03d] (%s) %s", entrada.Tiempo, entrada.Severidad, entrada.Mensaje), opt)
}
