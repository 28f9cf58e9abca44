// Package guion modela los ejemplos guionados del visualizador como una lista
// explícita de comandos, y los reproduce contra un motor de memoria.
package guion

import (
	"errors"
	"fmt"
	"sort"

	"github.com/sisoputnfrba/tp-2025-1c-LosCuervosXeneizes-visualizador/memoria"
	"github.com/sisoputnfrba/tp-2025-1c-LosCuervosXeneizes-visualizador/utils"
)

// TipoComando identifica la operación que aplica un comando
type TipoComando string

const (
	ComandoTraducir      TipoComando = "traducir"
	ComandoCargarProceso TipoComando = "cargar_proceso"
	ComandoLimpiar       TipoComando = "limpiar"
	ComandoReiniciar     TipoComando = "reiniciar"
)

// Comando es un paso del guion
type Comando struct {
	Tipo      TipoComando `json:"tipo"`
	Direccion uint64      `json:"direccion,omitempty"`
	Proceso   string      `json:"proceso,omitempty"`
	Paginas   []int       `json:"paginas,omitempty"`
}

func (c Comando) String() string {
	switch c.Tipo {
	case ComandoTraducir:
		return fmt.Sprintf("traducir 0x%04X", c.Direccion)
	case ComandoCargarProceso:
		return fmt.Sprintf("cargar %s %v", c.Proceso, c.Paginas)
	default:
		return string(c.Tipo)
	}
}

// Guion es una secuencia ordenada de comandos
type Guion struct {
	Nombre      string    `json:"nombre"`
	Descripcion string    `json:"descripcion"`
	Comandos    []Comando `json:"comandos"`
}

// ErrGuionInvalido se devuelve cuando un guion no se puede reproducir
var ErrGuionInvalido = errors.New("guion inválido")

// Validar revisa la forma de los comandos. Las direcciones fuera de rango no
// son un error de guion: el motor las rechaza y la reproducción sigue.
func (g Guion) Validar() error {
	if g.Nombre == "" {
		return fmt.Errorf("%w: sin nombre", ErrGuionInvalido)
	}
	for i, c := range g.Comandos {
		switch c.Tipo {
		case ComandoTraducir, ComandoLimpiar, ComandoReiniciar:
		case ComandoCargarProceso:
			if c.Proceso == "" {
				return fmt.Errorf("%w: comando %d sin proceso", ErrGuionInvalido, i)
			}
		default:
			return fmt.Errorf("%w: comando %d de tipo desconocido %q", ErrGuionInvalido, i, c.Tipo)
		}
	}
	return nil
}

// CargarGuion lee un guion desde un archivo JSON
func CargarGuion(ruta string) (*Guion, error) {
	g, err := utils.CargarArchivo[Guion](ruta)
	if err != nil {
		return nil, err
	}
	if err := g.Validar(); err != nil {
		return nil, fmt.Errorf("%s: %w", ruta, err)
	}
	return g, nil
}

func traducir(dir uint64) Comando {
	return Comando{Tipo: ComandoTraducir, Direccion: dir}
}

func cargar(pid string, paginas ...int) Comando {
	return Comando{Tipo: ComandoCargarProceso, Proceso: pid, Paginas: paginas}
}

var predefinidos = map[string]Guion{
	"cargar-p1": {
		Nombre:      "cargar-p1",
		Descripcion: "Carga rápida de P1 con las páginas 0 a 3",
		Comandos:    []Comando{cargar("P1", 0, 1, 2, 3)},
	},
	"cargar-p2": {
		Nombre:      "cargar-p2",
		Descripcion: "Carga rápida de P2 con las páginas 4 a 6",
		Comandos:    []Comando{cargar("P2", 4, 5, 6)},
	},
	"tlb-caliente": {
		Nombre:      "tlb-caliente",
		Descripcion: "La misma dirección dos veces: falla de página y después TLB hit",
		Comandos:    []Comando{traducir(0x0800), traducir(0x0800)},
	},
	"reemplazo-fifo": {
		Nombre:      "reemplazo-fifo",
		Descripcion: "Nueve páginas en ocho marcos: la novena falla desaloja la página 0",
		Comandos:    []Comando{cargar("P1", 0, 1, 2, 3, 4, 5, 6, 7, 8)},
	},
	"direccion-invalida": {
		Nombre:      "direccion-invalida",
		Descripcion: "Dirección 0x10000, fuera del espacio virtual",
		Comandos:    []Comando{traducir(0x10000)},
	},
	"tlb-vieja": {
		Nombre:      "tlb-vieja",
		Descripcion: "La TLB conserva la traducción de una página desalojada",
		Comandos: []Comando{
			cargar("P1", 0, 1, 2, 3, 4, 5, 6, 7),
			traducir(0x0000),
			cargar("P2", 8),
			traducir(0x0000),
		},
	},
	"recorrido": {
		Nombre:      "recorrido",
		Descripcion: "Dos procesos compitiendo por los marcos",
		Comandos: []Comando{
			{Tipo: ComandoReiniciar},
			cargar("P1", 0, 1, 2, 3),
			cargar("P2", 4, 5, 6),
			traducir(0x0800),
			traducir(0x1234),
			cargar("P3", 7, 8, 9),
			traducir(0x0ABC),
			traducir(0x4FFF),
			{Tipo: ComandoLimpiar},
			traducir(0x0800),
		},
	},
}

// Predefinidos devuelve los guiones incluidos, ordenados por nombre
func Predefinidos() []Guion {
	guiones := make([]Guion, 0, len(predefinidos))
	for _, g := range predefinidos {
		guiones = append(guiones, copiarGuion(g))
	}
	sort.Slice(guiones, func(i, j int) bool { return guiones[i].Nombre < guiones[j].Nombre })
	return guiones
}

// Buscar devuelve un guion incluido por nombre
func Buscar(nombre string) (Guion, bool) {
	g, ok := predefinidos[nombre]
	if !ok {
		return Guion{}, false
	}
	return copiarGuion(g), true
}

func copiarGuion(g Guion) Guion {
	comandos := make([]Comando, len(g.Comandos))
	for i, c := range g.Comandos {
		comandos[i] = c
		comandos[i].Paginas = append([]int(nil), c.Paginas...)
	}
	g.Comandos = comandos
	return g
}

// Destino es donde se aplican los comandos: un motor local o uno remoto
type Destino interface {
	Traducir(dir uint64) (*memoria.ResultadoTraduccion, error)
	CargarProceso(pid string, paginas []int) ([]*memoria.ResultadoTraduccion, error)
	LimpiarMemoria() error
	Reiniciar() error
}

type destinoLocal struct {
	motor *memoria.Motor
}

// Local adapta un motor en proceso a Destino
func Local(m *memoria.Motor) Destino {
	return destinoLocal{motor: m}
}

func (d destinoLocal) Traducir(dir uint64) (*memoria.ResultadoTraduccion, error) {
	return d.motor.Traducir(dir)
}

func (d destinoLocal) CargarProceso(pid string, paginas []int) ([]*memoria.ResultadoTraduccion, error) {
	return d.motor.CargarProceso(pid, paginas)
}

func (d destinoLocal) LimpiarMemoria() error {
	d.motor.LimpiarMemoria()
	return nil
}

func (d destinoLocal) Reiniciar() error {
	d.motor.Reiniciar()
	return nil
}
