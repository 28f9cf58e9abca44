package guion

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/sarchlab/akita/v4/sim"

	"github.com/sisoputnfrba/tp-2025-1c-LosCuervosXeneizes-visualizador/memoria"
	"github.com/sisoputnfrba/tp-2025-1c-LosCuervosXeneizes-visualizador/utils"
)

// pasoVirtualMinimo separa los comandos en tiempo virtual cuando no se pidió
// un paso, para que el motor de eventos respete el orden del guion
const pasoVirtualMinimo = time.Millisecond

// Evento es el resultado de aplicar un comando del guion
type Evento struct {
	Indice     int                            `json:"indice"`
	Comando    Comando                        `json:"comando"`
	Tiempo     float64                        `json:"tiempo"` // Tiempo virtual en segundos
	Resultados []*memoria.ResultadoTraduccion `json:"resultados,omitempty"`
	Error      string                         `json:"error,omitempty"`
	Err        error                          `json:"-"`
}

// Reproductor agenda cada comando como un evento de una simulación discreta y
// lo aplica al destino cuando el evento se dispara. El paso solo cambia el
// momento en que se ven los cambios, nunca el resultado.
type Reproductor struct {
	destino    Destino
	paso       time.Duration
	tiempoReal bool
	observador func(Evento)
	logger     *slog.Logger
	eventos    []Evento
}

// OpcionReproductor configura un Reproductor
type OpcionReproductor func(*Reproductor)

// ConPaso define la separación entre comandos
func ConPaso(paso time.Duration) OpcionReproductor {
	return func(r *Reproductor) {
		r.paso = paso
	}
}

// ConTiempoReal hace que la reproducción espere el paso entre comandos, para animar las vistas
func ConTiempoReal(tiempoReal bool) OpcionReproductor {
	return func(r *Reproductor) {
		r.tiempoReal = tiempoReal
	}
}

// ConObservador recibe cada evento apenas se aplica
func ConObservador(observador func(Evento)) OpcionReproductor {
	return func(r *Reproductor) {
		r.observador = observador
	}
}

// ConLoggerReproductor define el logger de la reproducción
func ConLoggerReproductor(logger *slog.Logger) OpcionReproductor {
	return func(r *Reproductor) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NuevoReproductor crea un reproductor sobre el destino
func NuevoReproductor(destino Destino, opciones ...OpcionReproductor) *Reproductor {
	r := &Reproductor{
		destino: destino,
		logger:  slog.Default(),
	}
	for _, opcion := range opciones {
		opcion(r)
	}
	return r
}

type eventoComando struct {
	*sim.EventBase
	indice  int
	comando Comando
}

// Reproducir aplica todos los comandos en orden y devuelve un evento por comando.
// Los errores de cada comando quedan en su evento; solo se devuelve error si el
// guion es inválido o la simulación falla.
func (r *Reproductor) Reproducir(g Guion) ([]Evento, error) {
	if err := g.Validar(); err != nil {
		return nil, err
	}

	paso := r.paso
	if paso <= 0 {
		paso = pasoVirtualMinimo
	}

	engine := sim.NewSerialEngine()
	for i, comando := range g.Comandos {
		tiempo := sim.VTimeInSec(float64(i) * paso.Seconds())
		engine.Schedule(&eventoComando{
			EventBase: sim.NewEventBase(tiempo, r),
			indice:    i,
			comando:   comando,
		})
	}

	r.eventos = make([]Evento, 0, len(g.Comandos))
	r.logger.Info("Reproduciendo guion", "guion", g.Nombre, "comandos", len(g.Comandos), "paso", r.paso, "tiempo_real", r.tiempoReal)

	if err := engine.Run(); err != nil {
		return r.eventos, fmt.Errorf("error reproduciendo guion %s: %w", g.Nombre, err)
	}

	r.logger.Info("Guion terminado", "guion", g.Nombre, "eventos", len(r.eventos))
	return r.eventos, nil
}

// Handle aplica el comando de un evento agendado
func (r *Reproductor) Handle(e sim.Event) error {
	evt, ok := e.(*eventoComando)
	if !ok {
		return fmt.Errorf("evento inesperado %T", e)
	}

	if r.tiempoReal && evt.indice > 0 {
		utils.AplicarRetardo("guion", int(r.paso.Milliseconds()))
	}

	evento := Evento{
		Indice:  evt.indice,
		Comando: evt.comando,
		Tiempo:  float64(evt.Time()),
	}
	evento.Resultados, evento.Err = r.aplicar(evt.comando)
	if evento.Err != nil {
		evento.Error = evento.Err.Error()
		r.logger.Warn("Comando con error", "indice", evt.indice, "comando", evt.comando.String(), "error", evento.Err)
	} else {
		r.logger.Debug("Comando aplicado", "indice", evt.indice, "comando", evt.comando.String())
	}

	r.eventos = append(r.eventos, evento)
	if r.observador != nil {
		r.observador(evento)
	}
	return nil
}

func (r *Reproductor) aplicar(c Comando) ([]*memoria.ResultadoTraduccion, error) {
	switch c.Tipo {
	case ComandoTraducir:
		resultado, err := r.destino.Traducir(c.Direccion)
		if err != nil {
			return nil, err
		}
		return []*memoria.ResultadoTraduccion{resultado}, nil
	case ComandoCargarProceso:
		return r.destino.CargarProceso(c.Proceso, c.Paginas)
	case ComandoLimpiar:
		return nil, r.destino.LimpiarMemoria()
	case ComandoReiniciar:
		return nil, r.destino.Reiniciar()
	default:
		return nil, fmt.Errorf("%w: tipo %q", ErrGuionInvalido, c.Tipo)
	}
}
