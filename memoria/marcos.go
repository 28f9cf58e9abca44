package memoria

import (
	"fmt"
)

// buscarMarcoLibre devuelve el primer marco libre (menor índice primero)
func (m *Motor) buscarMarcoLibre() (int, bool) {
	for i, marco := range m.marcos {
		if marco.Libre() {
			return i, true
		}
	}
	return 0, false
}

// asignarMarco obtiene un marco para la página. Si no hay marcos libres
// reemplaza el que lleva más tiempo ocupado (FIFO global, sin importar el proceso dueño).
func (m *Motor) asignarMarco(pagina int, proceso string) int {
	m.logger.Debug("Buscando marco libre", "pid", proceso, "pagina", pagina)

	indice, libre := m.buscarMarcoLibre()
	if libre {
		m.colaFIFO = append(m.colaFIFO, indice)
		m.logger.Info("Marco asignado", "pid", proceso, "pagina", pagina, "marco", indice)
	} else {
		indice = m.reemplazarMarco()
	}

	m.marcos[indice] = Marco{
		Pagina:       &pagina,
		Proceso:      proceso,
		UltimoAcceso: m.contadores.Ticks,
	}

	return indice
}

// reemplazarMarco desaloja la cabeza de la cola FIFO y la reencola al final
func (m *Motor) reemplazarMarco() int {
	victima := m.colaFIFO[0]
	m.colaFIFO = append(m.colaFIFO[1:], victima)

	anterior := m.marcos[victima].Pagina
	if anterior != nil {
		paginaVieja := *anterior
		m.tabla.invalidar(paginaVieja)

		if m.invalidarTLB && m.tlb.invalidar(paginaVieja) {
			m.logger.Debug("Entrada de TLB invalidada", "pagina", paginaVieja, "marco", victima)
		}

		m.logger.Info("Reemplazo de página",
			"pagina_desalojada", paginaVieja,
			"pid_desalojado", m.marcos[victima].Proceso,
			"marco", victima)
		m.registrar(m.contadores.Ticks,
			fmt.Sprintf("Page replacement: Evicted Page %d from Frame %d", paginaVieja, victima),
			SeveridadAdvertencia)
	}

	return victima
}

// contarMarcosLibres cuenta los marcos sin página asignada
func (m *Motor) contarMarcosLibres() int {
	count := 0
	for _, marco := range m.marcos {
		if marco.Libre() {
			count++
		}
	}
	return count
}
