package main

import (
	"flag"
	"os"

	"github.com/sisoputnfrba/tp-2025-1c-LosCuervosXeneizes-visualizador/utils"
)

var (
	nombreGuion  = flag.String("guion", "", "guion a reproducir: nombre de un guion incluido o archivo .json")
	remoto       = flag.String("remoto", "", "host:puerto de un módulo Memoria; vacío usa un motor local")
	paso         = flag.Duration("paso", 0, "separación entre comandos (ej. 500ms)")
	tiempoReal   = flag.Bool("tiempo-real", false, "esperar el paso entre comandos")
	traducir     = flag.String("traducir", "", "direcciones virtuales en hexadecimal separadas por coma (ej. 0800,0x1234)")
	listar       = flag.Bool("listar", false, "listar los guiones incluidos")
	invalidarTLB = flag.Bool("invalidar-tlb", false, "quitar de la TLB la página desalojada (solo motor local)")
	reintentos   = flag.Int("reintentos", 1, "intentos de conexión con el módulo Memoria")
	nivelLog     = flag.String("log-level", "WARN", "nivel de log")
)

func main() {
	flag.Parse()

	utils.InicializarLogger(*nivelLog, "Consola")

	op := opciones{
		guion:        *nombreGuion,
		remoto:       *remoto,
		paso:         *paso,
		tiempoReal:   *tiempoReal,
		traducir:     *traducir,
		listar:       *listar,
		invalidarTLB: *invalidarTLB,
		reintentos:   *reintentos,
	}

	if err := ejecutar(os.Stdout, op, utils.InfoLog); err != nil {
		utils.ErrorLog.Error("Error en la consola", "error", err)
		flag.Usage()
		os.Exit(1)
	}
}
