package memoria

import (
	"encoding/json"
	"fmt"
)

// Parámetros fijos del simulador
const (
	TamPagina    = 4096 // Tamaño de página en bytes (4KB)
	CantPaginas  = 16   // Número de página de 4 bits
	CantMarcos   = 8    // Marcos de memoria física
	CapacidadTLB = 4    // Entradas de la TLB

	// Límite superior (exclusivo) del espacio de direcciones virtuales
	TamEspacioVirtual = TamPagina * CantPaginas
)

// ProcesoInicial es el proceso dueño por defecto al crear o limpiar la memoria
const ProcesoInicial = "P1"

// EntradaTabla representa una entrada de la tabla de páginas
type EntradaTabla struct {
	Marco   *int   `json:"marco"`   // Marco asignado, nil si la página no está en memoria
	Valido  bool   `json:"valido"`  // Indica si la entrada es válida
	Proceso string `json:"proceso"` // Proceso dueño de la página ("" si nunca se cargó)
}

// EntradaTLB representa una entrada de la TLB
type EntradaTLB struct {
	Pagina int `json:"pagina"`
	Marco  int `json:"marco"`
}

// Marco representa un marco de memoria física
type Marco struct {
	Pagina       *int   `json:"pagina"`        // Página que ocupa el marco, nil si está libre
	Proceso      string `json:"proceso"`       // Proceso dueño de la página cargada
	UltimoAcceso int    `json:"ultimo_acceso"` // Tick del último acceso
}

// Libre indica si el marco no tiene página asignada
func (m Marco) Libre() bool {
	return m.Pagina == nil
}

// EstadoPaso es el resultado de un paso de la traducción
type EstadoPaso int

const (
	EstadoPendiente EstadoPaso = iota
	EstadoHit
	EstadoMiss
	EstadoEncontrado
	EstadoFalla
	EstadoCompleto
)

var nombresEstado = map[EstadoPaso]string{
	EstadoPendiente:  "pending",
	EstadoHit:        "hit",
	EstadoMiss:       "miss",
	EstadoEncontrado: "found",
	EstadoFalla:      "fault",
	EstadoCompleto:   "complete",
}

func (e EstadoPaso) String() string {
	if nombre, ok := nombresEstado[e]; ok {
		return nombre
	}
	return fmt.Sprintf("EstadoPaso(%d)", int(e))
}

func (e EstadoPaso) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.String())
}

func (e *EstadoPaso) UnmarshalJSON(data []byte) error {
	var nombre string
	if err := json.Unmarshal(data, &nombre); err != nil {
		return err
	}
	for estado, n := range nombresEstado {
		if n == nombre {
			*e = estado
			return nil
		}
	}
	return fmt.Errorf("estado de paso desconocido: %q", nombre)
}

// Acciones de la traza de traducción
const (
	AccionConsultarTLB   = "Check TLB"
	AccionConsultarTabla = "Check Page Table"
	AccionAsignarMarco   = "Allocate Frame"
	AccionActualizarTLB  = "Update TLB"
	AccionCalcularFisica = "Calculate Physical Address"
)

// PasoTraduccion es una entrada de la traza. No se modifica una vez creada.
type PasoTraduccion struct {
	Paso    int        `json:"step"`
	Accion  string     `json:"action"`
	Estado  EstadoPaso `json:"status"`
	Detalle string     `json:"detail,omitempty"`
}

// ResultadoTraduccion es el resultado de traducir una dirección virtual
type ResultadoTraduccion struct {
	DireccionVirtual uint64           `json:"virtual_address"`
	NumeroPagina     int              `json:"page_number"`
	Desplazamiento   int              `json:"offset"`
	NumeroMarco      int              `json:"frame_number"`
	DireccionFisica  uint64           `json:"physical_address"`
	TLBHit           bool             `json:"tlb_hit"`
	FallaPagina      bool             `json:"page_fault"`
	Pasos            []PasoTraduccion `json:"steps"`
}

// Contadores almacena las estadísticas de acceso del motor
type Contadores struct {
	TLBHits        int `json:"tlb_hits"`
	TLBMisses      int `json:"tlb_misses"`
	FallasPagina   int `json:"page_faults"`
	AccesosTotales int `json:"total_accesses"`
	Ticks          int `json:"access_count"` // Reloj de accesos (hits y fallas)
}
