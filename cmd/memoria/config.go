package main

// MemoriaConfig representa la configuración del módulo Memoria
type MemoriaConfig struct {
	IPMemoria      string `json:"IP_MEMORIA"`
	PuertoMemoria  int    `json:"PUERTO_MEMORIA"`
	LogLevel       string `json:"LOG_LEVEL"`
	RetardoMemoria int    `json:"RETARDO_MEMORIA"`            // Retardo por pedido en milisegundos
	InvalidarTLB   bool   `json:"INVALIDAR_TLB_EN_REEMPLAZO"` // Quitar de la TLB la página desalojada
	ShiVizLog      string `json:"SHIVIZ_LOG"`                 // Vacío desactiva el log de GoVector
	ProcesoInicial string `json:"PROCESO_INICIAL"`            // Proceso por defecto al cargar páginas
}
