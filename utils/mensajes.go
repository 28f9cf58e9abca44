package utils

// ============================================================================
// Tipos de mensajes entre el visualizador y el módulo de memoria
// ============================================================================
const (
	// === COMUNICACIÓN BÁSICA (1-9) ===
	MensajeHandshake = 1 // Conexión inicial, devuelve los parámetros fijos

	// === COMANDOS AL MOTOR (10-19) ===
	MensajeTraducir       = 10 // Traducir una dirección virtual
	MensajeCargarProceso  = 11 // Cargar las páginas de un proceso
	MensajeLimpiarMemoria = 12 // Vaciar memoria conservando el reloj
	MensajeReiniciar      = 13 // Volver al estado inicial

	// === CONSULTAS (14-19) ===
	MensajeMetricas    = 14 // Métricas de rendimiento
	MensajeInstantanea = 15 // Estado para las vistas
	MensajeBitacora    = 16 // Entradas del log compartido

	// === GUIONES (20-29) ===
	MensajeEjecutarGuion = 20 // Ejecutar un guion de ejemplo
	MensajeListarGuiones = 21 // Guiones disponibles
)
