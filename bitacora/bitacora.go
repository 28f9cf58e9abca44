// Package bitacora implementa el log compartido donde el motor de memoria
// publica sus notificaciones, y sumideros que las reenvían a otros destinos.
package bitacora

import (
	"sync"

	"github.com/sisoputnfrba/tp-2025-1c-LosCuervosXeneizes-visualizador/memoria"
)

// Bitacora es un log en memoria de solo agregado. Es seguro para uso concurrente.
type Bitacora struct {
	mutex    sync.RWMutex
	entradas []memoria.EntradaLog
}

// Nueva crea una bitácora vacía
func Nueva() *Bitacora {
	return &Bitacora{
		entradas: []memoria.EntradaLog{},
	}
}

// Registrar agrega una entrada al final
func (b *Bitacora) Registrar(entrada memoria.EntradaLog) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.entradas = append(b.entradas, entrada)
}

// Entradas devuelve una copia de todas las entradas en orden de llegada
func (b *Bitacora) Entradas() []memoria.EntradaLog {
	b.mutex.RLock()
	defer b.mutex.RUnlock()

	copia := make([]memoria.EntradaLog, len(b.entradas))
	copy(copia, b.entradas)
	return copia
}

// Desde devuelve las entradas a partir de la posición indicada, para que las
// vistas puedan pedir solo lo nuevo
func (b *Bitacora) Desde(posicion int) []memoria.EntradaLog {
	b.mutex.RLock()
	defer b.mutex.RUnlock()

	if posicion < 0 {
		posicion = 0
	}
	if posicion >= len(b.entradas) {
		return []memoria.EntradaLog{}
	}
	copia := make([]memoria.EntradaLog, len(b.entradas)-posicion)
	copy(copia, b.entradas[posicion:])
	return copia
}

// Len devuelve la cantidad de entradas
func (b *Bitacora) Len() int {
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	return len(b.entradas)
}

// Limpiar descarta todas las entradas
func (b *Bitacora) Limpiar() {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.entradas = []memoria.EntradaLog{}
}

type multiple []memoria.Sumidero

func (m multiple) Registrar(entrada memoria.EntradaLog) {
	for _, s := range m {
		s.Registrar(entrada)
	}
}

// Multiple reenvía cada entrada a todos los sumideros, en orden
func Multiple(sumideros ...memoria.Sumidero) memoria.Sumidero {
	activos := make(multiple, 0, len(sumideros))
	for _, s := range sumideros {
		if s != nil {
			activos = append(activos, s)
		}
	}
	return activos
}
