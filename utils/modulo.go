package utils

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
)

// Modulo representa un módulo del visualizador que expone operaciones por HTTP
type Modulo struct {
	Nombre      string
	Server      *HTTPServer
	ConfigPath  string
	HandlerFunc map[string]map[string]HTTPHandlerFunc
}

// NuevoModulo crea una nueva instancia de un módulo
func NuevoModulo(nombre string, configPath string) *Modulo {
	return &Modulo{
		Nombre:      nombre,
		ConfigPath:  configPath,
		HandlerFunc: make(map[string]map[string]HTTPHandlerFunc),
	}
}

// RegistrarHandler registra un handler para un tipo de mensaje y operación específicos
func (m *Modulo) RegistrarHandler(tipo string, operacion string, handler HTTPHandlerFunc) {
	if _, existe := m.HandlerFunc[tipo]; !existe {
		m.HandlerFunc[tipo] = make(map[string]HTTPHandlerFunc)
	}
	m.HandlerFunc[tipo][operacion] = handler
}

// PrepararServidor crea el servidor HTTP del módulo y le registra los handlers,
// sin ponerlo a escuchar
func (m *Modulo) PrepararServidor(ip string, puerto int) *HTTPServer {
	m.Server = NewHTTPServer(ip, puerto, m.Nombre)

	for tipoStr, handlersPorOperacion := range m.HandlerFunc {
		tipo, err := strconv.Atoi(tipoStr)
		if err != nil {
			slog.Error("Error al convertir tipo de mensaje a entero", "tipo", tipoStr, "error", err)
			continue
		}

		m.Server.RegisterHTTPHandler(tipo, despachador(tipo, handlersPorOperacion))
	}

	return m.Server
}

// despachador elige el handler por operación, con "default" como respaldo
func despachador(tipo int, handlersPorOperacion map[string]HTTPHandlerFunc) HTTPHandlerFunc {
	return func(msg *Mensaje) (interface{}, error) {
		operacion := msg.Operacion
		if operacion == "" {
			operacion = "default"
		}

		handler, existe := handlersPorOperacion[operacion]
		if !existe {
			handler, existe = handlersPorOperacion["default"]
			if !existe {
				slog.Error("No hay handler para operación", "tipo", tipo, "operacion", operacion)
				return nil, fmt.Errorf("no hay handler para operación %s", operacion)
			}
		}

		return handler(msg)
	}
}

// IniciarServidor prepara el servidor y lo pone a escuchar en segundo plano
func (m *Modulo) IniciarServidor(ip string, puerto int) {
	m.PrepararServidor(ip, puerto)

	go func() {
		err := m.Server.Start()
		if err != nil {
			slog.Error("Error al iniciar servidor HTTP", "error", err)
			os.Exit(1)
		}
	}()

	slog.Info("Servidor HTTP iniciado", "módulo", m.Nombre, "dirección", fmt.Sprintf("%s:%d", ip, puerto))
}

// CargarArchivo decodifica un archivo JSON al tipo pedido
func CargarArchivo[T any](ruta string) (*T, error) {
	absPath, err := filepath.Abs(ruta)
	if err != nil {
		return nil, fmt.Errorf("error obteniendo ruta absoluta de %s: %w", ruta, err)
	}

	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("error abriendo archivo %s: %w", absPath, err)
	}
	defer file.Close()

	var valor T
	decoder := json.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&valor); err != nil {
		return nil, fmt.Errorf("error decodificando %s: %w", absPath, err)
	}

	return &valor, nil
}

// CargarConfiguracion carga la configuración del módulo y termina el proceso si falla
func CargarConfiguracion[T any](ruta string) *T {
	slog.Info("Cargando configuración", "ruta", ruta)

	config, err := CargarArchivo[T](ruta)
	if err != nil {
		slog.Error("Error cargando configuración", "error", err, "archivo", ruta)
		os.Exit(1)
	}

	slog.Info("Configuración cargada correctamente")
	return config
}
