package memoria

import (
	"log/slog"
)

// Motor contiene todo el estado del simulador de memoria virtual:
// tabla de páginas, TLB, marcos físicos, orden de asignación y contadores.
//
// No es seguro para uso concurrente; cada traducción corre completa antes de
// la siguiente. Quien comparta un Motor entre goroutines debe serializar el acceso.
type Motor struct {
	tabla      TablaPaginas
	tlb        *tlb
	marcos     [CantMarcos]Marco
	colaFIFO   []int // Marcos ocupados en orden de asignación
	contadores Contadores

	procesoActual string
	ultima        *ResultadoTraduccion

	sumidero     Sumidero
	logger       *slog.Logger
	invalidarTLB bool
}

// Opcion configura un Motor al crearlo
type Opcion func(*Motor)

// ConSumidero define dónde se publican las notificaciones del log compartido
func ConSumidero(s Sumidero) Opcion {
	return func(m *Motor) {
		if s != nil {
			m.sumidero = s
		}
	}
}

// ConLogger define el logger estructurado del motor
func ConLogger(l *slog.Logger) Opcion {
	return func(m *Motor) {
		if l != nil {
			m.logger = l
		}
	}
}

// ConInvalidacionTLB hace que el reemplazo de un marco también elimine de la TLB
// la traducción de la página desalojada. Por defecto la TLB no se invalida y
// puede servir una traducción vieja.
func ConInvalidacionTLB(invalidar bool) Opcion {
	return func(m *Motor) {
		m.invalidarTLB = invalidar
	}
}

// New crea un motor con todas las estructuras vacías
func New(opciones ...Opcion) *Motor {
	m := &Motor{
		sumidero: sumideroNulo{},
		logger:   slog.Default(),
	}
	for _, opcion := range opciones {
		opcion(m)
	}

	m.inicializar()
	m.logger.Info("Memoria inicializada",
		"tamaño_página", TamPagina,
		"paginas", CantPaginas,
		"marcos", CantMarcos,
		"entradas_tlb", CapacidadTLB,
		"invalidar_tlb", m.invalidarTLB)
	m.registrar(0, "Memory system initialized", SeveridadInfo)

	return m
}

// inicializar deja todas las estructuras en su estado inicial, incluido el reloj
func (m *Motor) inicializar() {
	m.tabla = TablaPaginas{}
	m.tlb = nuevaTLB(CapacidadTLB)
	m.marcos = [CantMarcos]Marco{}
	m.colaFIFO = make([]int, 0, CantMarcos)
	m.contadores = Contadores{}
	m.procesoActual = ProcesoInicial
	m.ultima = nil
}

func (m *Motor) registrar(tiempo int, mensaje string, severidad Severidad) {
	m.sumidero.Registrar(EntradaLog{
		Tiempo:    tiempo,
		Mensaje:   mensaje,
		Severidad: severidad,
	})
}

// ProcesoActual devuelve el proceso al que se asignan las páginas que fallan
func (m *Motor) ProcesoActual() string {
	return m.procesoActual
}

// UltimaTraduccion devuelve una copia del último resultado, o nil si no hubo traducciones
func (m *Motor) UltimaTraduccion() *ResultadoTraduccion {
	return copiarResultado(m.ultima)
}

// Contadores devuelve los contadores crudos
func (m *Motor) Contadores() Contadores {
	return m.contadores
}
