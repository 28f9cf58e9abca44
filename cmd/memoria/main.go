package main

import (
	"fmt"
	"os"

	"github.com/sisoputnfrba/tp-2025-1c-LosCuervosXeneizes-visualizador/utils"
)

var (
	modulo   *utils.Modulo
	config   *MemoriaConfig
	servidor *servidorMemoria
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Uso: %s <archivo_configuracion>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Ejemplo: %s configs/memoria-config.json\n", os.Args[0])
		os.Exit(1)
	}

	// Logger por defecto hasta leer el nivel de la configuración
	utils.InicializarLogger("INFO", "Memoria")

	utils.InfoLog.Info("Iniciando módulo Memoria")

	inicializarModulo()

	utils.InfoLog.Info("Memoria inicializada correctamente")

	select {}
}

func inicializarModulo() {
	rutaConfig := os.Args[1]

	if _, err := os.Stat(rutaConfig); os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Error: El archivo de configuración no existe: %s\n", rutaConfig)
		os.Exit(1)
	}

	modulo = utils.NuevoModulo("Memoria", rutaConfig)

	config = utils.CargarConfiguracion[MemoriaConfig](rutaConfig)

	utils.InicializarLogger(config.LogLevel, "Memoria")
	utils.InfoLog.Info("Configuración cargada", "nivel_log", config.LogLevel, "config_path", rutaConfig)

	servidor = nuevoServidorMemoria(config, utils.InfoLog)
	servidor.registrarHandlers(modulo)

	modulo.IniciarServidor(config.IPMemoria, config.PuertoMemoria)
	utils.InfoLog.Info("Servidor iniciado", "ip", config.IPMemoria, "puerto", config.PuertoMemoria)
}
