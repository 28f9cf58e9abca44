package guion

import (
	"errors"
	"fmt"

	"github.com/sisoputnfrba/tp-2025-1c-LosCuervosXeneizes-visualizador/memoria"
	"github.com/sisoputnfrba/tp-2025-1c-LosCuervosXeneizes-visualizador/utils"
)

// CodigoDireccionInvalida marca en una respuesta el rechazo de una dirección fuera de rango
const CodigoDireccionInvalida = "DIRECCION_INVALIDA"

// Respuesta es el cuerpo que devuelve el módulo Memoria para las operaciones de traducción
type Respuesta struct {
	Status     string                         `json:"status,omitempty"`
	Error      string                         `json:"error,omitempty"`
	Codigo     string                         `json:"codigo,omitempty"`
	Resultado  *memoria.ResultadoTraduccion   `json:"resultado,omitempty"`
	Resultados []*memoria.ResultadoTraduccion `json:"resultados,omitempty"`
}

// NuevaRespuestaError arma la respuesta de una operación fallida
func NuevaRespuestaError(err error) Respuesta {
	respuesta := Respuesta{Error: err.Error()}
	if errors.Is(err, memoria.ErrDireccionInvalida) {
		respuesta.Codigo = CodigoDireccionInvalida
	}
	return respuesta
}

func (r Respuesta) err() error {
	if r.Error == "" {
		return nil
	}
	if r.Codigo == CodigoDireccionInvalida {
		return fmt.Errorf("%w: %s", memoria.ErrDireccionInvalida, r.Error)
	}
	return errors.New(r.Error)
}

// Remoto aplica los comandos contra un módulo Memoria por HTTP
type Remoto struct {
	cliente *utils.HTTPClient
}

// NuevoRemoto crea un destino remoto sobre el cliente
func NuevoRemoto(cliente *utils.HTTPClient) *Remoto {
	return &Remoto{cliente: cliente}
}

func (r *Remoto) Traducir(dir uint64) (*memoria.ResultadoTraduccion, error) {
	var respuesta Respuesta
	datos := map[string]interface{}{"direccion": dir}
	if err := r.cliente.EnviarHTTPMensajeEn(utils.MensajeTraducir, "", datos, &respuesta); err != nil {
		return nil, err
	}
	if err := respuesta.err(); err != nil {
		return nil, err
	}
	return respuesta.Resultado, nil
}

func (r *Remoto) CargarProceso(pid string, paginas []int) ([]*memoria.ResultadoTraduccion, error) {
	var respuesta Respuesta
	datos := map[string]interface{}{"pid": pid, "paginas": paginas}
	if err := r.cliente.EnviarHTTPMensajeEn(utils.MensajeCargarProceso, "", datos, &respuesta); err != nil {
		return nil, err
	}
	return respuesta.Resultados, respuesta.err()
}

func (r *Remoto) LimpiarMemoria() error {
	return r.operacionSimple(utils.MensajeLimpiarMemoria)
}

func (r *Remoto) Reiniciar() error {
	return r.operacionSimple(utils.MensajeReiniciar)
}

func (r *Remoto) operacionSimple(tipo int) error {
	var respuesta Respuesta
	if err := r.cliente.EnviarHTTPMensajeEn(tipo, "", nil, &respuesta); err != nil {
		return err
	}
	return respuesta.err()
}

// Metricas consulta las métricas del módulo
func (r *Remoto) Metricas() (memoria.Metricas, error) {
	var metricas memoria.Metricas
	err := r.cliente.EnviarHTTPMensajeEn(utils.MensajeMetricas, "", nil, &metricas)
	return metricas, err
}

// Instantanea consulta el estado completo del módulo
func (r *Remoto) Instantanea() (memoria.Instantanea, error) {
	var instantanea memoria.Instantanea
	err := r.cliente.EnviarHTTPMensajeEn(utils.MensajeInstantanea, "", nil, &instantanea)
	return instantanea, err
}

// RespuestaBitacora es el cuerpo de la consulta del log compartido
type RespuestaBitacora struct {
	Entradas []memoria.EntradaLog `json:"entradas"`
	Total    int                  `json:"total"`
}

// Bitacora devuelve las entradas del log compartido a partir de la posición indicada
func (r *Remoto) Bitacora(desde int) (RespuestaBitacora, error) {
	var respuesta RespuestaBitacora
	err := r.cliente.EnviarHTTPMensajeEn(utils.MensajeBitacora, "", map[string]interface{}{"desde": desde}, &respuesta)
	return respuesta, err
}
