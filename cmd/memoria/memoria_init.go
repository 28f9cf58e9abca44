package main

import (
	"log/slog"

	"github.com/sisoputnfrba/tp-2025-1c-LosCuervosXeneizes-visualizador/bitacora"
	"github.com/sisoputnfrba/tp-2025-1c-LosCuervosXeneizes-visualizador/memoria"
	"github.com/sisoputnfrba/tp-2025-1c-LosCuervosXeneizes-visualizador/utils"
)

// servidorMemoria agrupa el motor y todo lo que los handlers comparten.
// El semáforo serializa los pedidos porque el motor no es concurrente.
type servidorMemoria struct {
	config   *MemoriaConfig
	motor    *memoria.Motor
	bitacora *bitacora.Bitacora
	sem      *utils.Semaforo
	logger   *slog.Logger
}

func nuevoServidorMemoria(config *MemoriaConfig, logger *slog.Logger) *servidorMemoria {
	if config.ProcesoInicial == "" {
		config.ProcesoInicial = memoria.ProcesoInicial
	}

	s := &servidorMemoria{
		config:   config,
		bitacora: bitacora.Nueva(),
		sem:      utils.NewSemaforo(1),
		logger:   logger,
	}

	sumideros := []memoria.Sumidero{s.bitacora, bitacora.NewSumideroSlog(logger)}
	if config.ShiVizLog != "" {
		sumideros = append(sumideros, bitacora.NewSumideroShiViz("Memoria", config.ShiVizLog))
		logger.Info("Log de GoVector habilitado", "archivo", config.ShiVizLog+"-Log.txt")
	}

	s.motor = memoria.New(
		memoria.ConLogger(logger),
		memoria.ConSumidero(bitacora.Multiple(sumideros...)),
		memoria.ConInvalidacionTLB(config.InvalidarTLB),
	)

	logger.Info("Memoria completamente inicializada",
		"retardo_ms", config.RetardoMemoria,
		"invalidar_tlb", config.InvalidarTLB,
		"proceso_inicial", config.ProcesoInicial)
	return s
}
