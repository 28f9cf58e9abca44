package memoria

import (
	"errors"
	"fmt"
)

// CargarProceso fija el proceso actual y traduce la dirección base de cada
// página en el orden dado. Una página inválida no corta la carga: su error se
// acumula y se sigue con las demás.
func (m *Motor) CargarProceso(pid string, paginas []int) ([]*ResultadoTraduccion, error) {
	m.procesoActual = pid
	m.logger.Info("Cargando proceso", "pid", pid, "paginas", paginas)

	resultados := make([]*ResultadoTraduccion, 0, len(paginas))
	var errs []error
	for _, pagina := range paginas {
		// Se valida antes de multiplicar: una página enorme desborda y cae en el rango válido
		if pagina < 0 || pagina >= CantPaginas {
			errs = append(errs, fmt.Errorf("%w: página %d (máximo %d)", ErrDireccionInvalida, pagina, CantPaginas-1))
			m.logger.Warn("Página fuera de rango", "pid", pid, "pagina", pagina, "paginas", CantPaginas)
			m.registrar(m.contadores.Ticks,
				fmt.Sprintf("Invalid page %d - page number out of range", pagina),
				SeveridadError)
			continue
		}

		resultado, err := m.Traducir(uint64(pagina) * TamPagina)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		resultados = append(resultados, resultado)
	}

	m.logger.Info("Proceso cargado", "pid", pid, "traducciones", len(resultados), "errores", len(errs))
	return resultados, errors.Join(errs...)
}

// LimpiarMemoria vacía tabla, TLB, marcos, cola FIFO, contadores y última
// traducción. El reloj de accesos se conserva.
func (m *Motor) LimpiarMemoria() {
	ticks := m.contadores.Ticks
	m.inicializar()
	m.contadores.Ticks = ticks

	m.logger.Info("Memoria limpiada", "ticks", ticks)
	m.registrar(ticks, "Memory cleared", SeveridadInfo)
}

// Reiniciar vuelve el motor al estado inicial completo
func (m *Motor) Reiniciar() {
	m.inicializar()

	m.logger.Info("Memoria reiniciada")
	m.registrar(0, "Memory system initialized", SeveridadInfo)
}
