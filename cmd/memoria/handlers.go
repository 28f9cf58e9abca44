package main

import (
	"fmt"
	"strconv"

	"github.com/sisoputnfrba/tp-2025-1c-LosCuervosXeneizes-visualizador/guion"
	"github.com/sisoputnfrba/tp-2025-1c-LosCuervosXeneizes-visualizador/memoria"
	"github.com/sisoputnfrba/tp-2025-1c-LosCuervosXeneizes-visualizador/utils"
)

func (s *servidorMemoria) registrarHandlers(modulo *utils.Modulo) {
	modulo.RegistrarHandler(strconv.Itoa(utils.MensajeHandshake), "default", s.handlerHandshake)
	modulo.RegistrarHandler(strconv.Itoa(utils.MensajeTraducir), "default", s.protegido(s.handlerTraducir))
	modulo.RegistrarHandler(strconv.Itoa(utils.MensajeCargarProceso), "default", s.protegido(s.handlerCargarProceso))
	modulo.RegistrarHandler(strconv.Itoa(utils.MensajeLimpiarMemoria), "default", s.protegido(s.handlerLimpiarMemoria))
	modulo.RegistrarHandler(strconv.Itoa(utils.MensajeReiniciar), "default", s.protegido(s.handlerReiniciar))
	modulo.RegistrarHandler(strconv.Itoa(utils.MensajeMetricas), "default", s.protegido(s.handlerMetricas))
	modulo.RegistrarHandler(strconv.Itoa(utils.MensajeInstantanea), "default", s.protegido(s.handlerInstantanea))
	modulo.RegistrarHandler(strconv.Itoa(utils.MensajeBitacora), "default", s.handlerBitacora)
	modulo.RegistrarHandler(strconv.Itoa(utils.MensajeEjecutarGuion), "default", s.protegido(s.handlerEjecutarGuion))
	modulo.RegistrarHandler(strconv.Itoa(utils.MensajeListarGuiones), "default", s.handlerListarGuiones)

	s.logger.Info("Handlers registrados correctamente")
}

// protegido serializa el acceso al motor y aplica el retardo de memoria
func (s *servidorMemoria) protegido(procesador utils.HTTPHandlerFunc) utils.HTTPHandlerFunc {
	return s.sem.Proteger(func(msg *utils.Mensaje) (interface{}, error) {
		return utils.HandlerGenerico(msg, s.config.RetardoMemoria, procesador)
	})
}

func (s *servidorMemoria) handlerHandshake(msg *utils.Mensaje) (interface{}, error) {
	s.logger.Info("Handshake recibido", "origen", msg.Origen)

	return map[string]interface{}{
		"status":       "OK",
		"tam_pagina":   memoria.TamPagina,
		"paginas":      memoria.CantPaginas,
		"marcos":       memoria.CantMarcos,
		"entradas_tlb": memoria.CapacidadTLB,
	}, nil
}

func (s *servidorMemoria) handlerTraducir(msg *utils.Mensaje) (interface{}, error) {
	dir, err := utils.ExtraerDireccion(msg, "direccion")
	if err != nil {
		s.logger.Error("Dirección no proporcionada", "datos", msg.Datos, "error", err)
		return guion.NuevaRespuestaError(err), nil
	}

	resultado, err := s.motor.Traducir(dir)
	if err != nil {
		return guion.NuevaRespuestaError(err), nil
	}

	s.logger.Debug("Traducción completada",
		"direccion_virtual", fmt.Sprintf("0x%04X", resultado.DireccionVirtual),
		"direccion_fisica", fmt.Sprintf("0x%04X", resultado.DireccionFisica),
		"tlb_hit", resultado.TLBHit,
		"falla_pagina", resultado.FallaPagina)

	return guion.Respuesta{Status: "OK", Resultado: resultado}, nil
}

func (s *servidorMemoria) handlerCargarProceso(msg *utils.Mensaje) (interface{}, error) {
	paginas, err := utils.ExtraerEnteros(msg, "paginas")
	if err != nil {
		s.logger.Error("Páginas no proporcionadas", "datos", msg.Datos, "error", err)
		return guion.NuevaRespuestaError(err), nil
	}
	pid := utils.ExtraerTexto(msg, "pid", s.config.ProcesoInicial)

	s.logger.Info("Solicitud de carga de proceso", "pid", pid, "paginas", paginas)

	resultados, err := s.motor.CargarProceso(pid, paginas)
	respuesta := guion.Respuesta{Status: "OK", Resultados: resultados}
	if err != nil {
		respuesta = guion.NuevaRespuestaError(err)
		respuesta.Resultados = resultados
	}
	return respuesta, nil
}

func (s *servidorMemoria) handlerLimpiarMemoria(msg *utils.Mensaje) (interface{}, error) {
	s.logger.Info("Solicitud de limpieza de memoria", "origen", msg.Origen)
	s.motor.LimpiarMemoria()
	return guion.Respuesta{Status: "OK"}, nil
}

func (s *servidorMemoria) handlerReiniciar(msg *utils.Mensaje) (interface{}, error) {
	s.logger.Info("Solicitud de reinicio", "origen", msg.Origen)
	s.motor.Reiniciar()
	return guion.Respuesta{Status: "OK"}, nil
}

func (s *servidorMemoria) handlerMetricas(msg *utils.Mensaje) (interface{}, error) {
	return s.motor.Metricas(), nil
}

func (s *servidorMemoria) handlerInstantanea(msg *utils.Mensaje) (interface{}, error) {
	return s.motor.Instantanea(), nil
}

// La bitácora tiene su propio lock, no hace falta el semáforo
func (s *servidorMemoria) handlerBitacora(msg *utils.Mensaje) (interface{}, error) {
	desde, err := utils.ExtraerEntero(msg, "desde")
	if err != nil {
		desde = 0
	}

	return guion.RespuestaBitacora{
		Entradas: s.bitacora.Desde(desde),
		Total:    s.bitacora.Len(),
	}, nil
}

func (s *servidorMemoria) handlerEjecutarGuion(msg *utils.Mensaje) (interface{}, error) {
	nombre := utils.ExtraerTexto(msg, "nombre", "")
	g, ok := guion.Buscar(nombre)
	if !ok {
		s.logger.Error("Guion inexistente", "nombre", nombre)
		return map[string]interface{}{
			"error": fmt.Sprintf("No existe el guion %q", nombre),
		}, nil
	}

	reproductor := guion.NuevoReproductor(guion.Local(s.motor), guion.ConLoggerReproductor(s.logger))
	eventos, err := reproductor.Reproducir(g)
	if err != nil {
		return map[string]interface{}{"error": err.Error()}, nil
	}

	return map[string]interface{}{
		"status":  "OK",
		"guion":   g.Nombre,
		"eventos": eventos,
	}, nil
}

func (s *servidorMemoria) handlerListarGuiones(msg *utils.Mensaje) (interface{}, error) {
	return map[string]interface{}{
		"guiones": guion.Predefinidos(),
	}, nil
}
