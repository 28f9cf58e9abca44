package memoria

import (
	"fmt"
)

// Traducir traduce una dirección virtual a física: TLB, tabla de páginas,
// asignación de marco ante una falla y actualización de la TLB.
// La traza de pasos que devuelve es lo que consumen las vistas.
func (m *Motor) Traducir(dirVirtual uint64) (*ResultadoTraduccion, error) {
	if dirVirtual >= TamEspacioVirtual {
		m.logger.Warn("Dirección fuera de rango",
			"dir_virtual", dirVirtual,
			"pagina", dirVirtual/TamPagina,
			"paginas", CantPaginas)
		m.registrar(m.contadores.Ticks,
			fmt.Sprintf("Invalid address 0x%X - page number out of range", dirVirtual),
			SeveridadError)
		return nil, fmt.Errorf("%w: 0x%X (página %d, máximo %d)",
			ErrDireccionInvalida, dirVirtual, dirVirtual/TamPagina, CantPaginas-1)
	}

	numPagina := int(dirVirtual / TamPagina)
	desplazamiento := int(dirVirtual % TamPagina)

	m.logger.Debug("Traduciendo dirección",
		"pid", m.procesoActual,
		"dir_virtual", dirVirtual,
		"pagina", numPagina,
		"desplazamiento", desplazamiento)

	resultado := &ResultadoTraduccion{
		DireccionVirtual: dirVirtual,
		NumeroPagina:     numPagina,
		Desplazamiento:   desplazamiento,
	}
	pasos := []PasoTraduccion{{Paso: 1, Accion: AccionConsultarTLB, Estado: EstadoPendiente}}

	// Paso 1: TLB
	marco, hit := m.tlb.buscar(numPagina)
	if hit {
		resultado.TLBHit = true
		pasos = append(pasos, PasoTraduccion{
			Paso:    1,
			Accion:  AccionConsultarTLB,
			Estado:  EstadoHit,
			Detalle: fmt.Sprintf("Page %d found in TLB → Frame %d", numPagina, marco),
		})

		m.contadores.TLBHits++
		m.contadores.AccesosTotales++
		m.contadores.Ticks++

		m.logger.Info("TLB HIT", "pid", m.procesoActual, "pagina", numPagina, "marco", marco)
		m.registrar(m.contadores.Ticks,
			fmt.Sprintf("TLB Hit: Page %d → Frame %d", numPagina, marco),
			SeveridadExito)
	} else {
		pasos = append(pasos, PasoTraduccion{
			Paso:    1,
			Accion:  AccionConsultarTLB,
			Estado:  EstadoMiss,
			Detalle: fmt.Sprintf("Page %d not in TLB", numPagina),
		})

		m.contadores.TLBMisses++
		m.contadores.AccesosTotales++

		m.logger.Info("TLB MISS", "pid", m.procesoActual, "pagina", numPagina)
		m.registrar(m.contadores.Ticks+1,
			fmt.Sprintf("TLB Miss: Page %d", numPagina),
			SeveridadAdvertencia)

		marco, pasos = m.resolverMiss(numPagina, resultado, pasos)
	}

	// Último paso: dirección física
	dirFisica := uint64(marco)*TamPagina + uint64(desplazamiento)
	pasos = append(pasos, PasoTraduccion{
		Paso:    len(pasos) + 1,
		Accion:  AccionCalcularFisica,
		Estado:  EstadoCompleto,
		Detalle: fmt.Sprintf("Frame %d + Offset %d = 0x%X", marco, desplazamiento, dirFisica),
	})

	m.marcos[marco].UltimoAcceso = m.contadores.Ticks

	resultado.NumeroMarco = marco
	resultado.DireccionFisica = dirFisica
	resultado.Pasos = pasos
	m.ultima = resultado

	m.logger.Debug("Dirección traducida",
		"pid", m.procesoActual,
		"dir_virtual", dirVirtual,
		"dir_fisica", dirFisica,
		"marco", marco)

	return copiarResultado(resultado), nil
}

// resolverMiss consulta la tabla de páginas (paso 2) y, ante una falla,
// asigna un marco (paso 3). En ambos casos termina actualizando la TLB.
func (m *Motor) resolverMiss(numPagina int, resultado *ResultadoTraduccion, pasos []PasoTraduccion) (int, []PasoTraduccion) {
	pasos = append(pasos, PasoTraduccion{Paso: 2, Accion: AccionConsultarTabla, Estado: EstadoPendiente})

	if marco, valido := m.tabla.consultar(numPagina); valido {
		pasos = append(pasos, PasoTraduccion{
			Paso:    2,
			Accion:  AccionConsultarTabla,
			Estado:  EstadoEncontrado,
			Detalle: fmt.Sprintf("Page %d mapped to Frame %d", numPagina, marco),
		})
		m.logger.Debug("Página presente en tabla", "pagina", numPagina, "marco", marco)

		m.actualizarTLB(numPagina, marco)
		pasos = append(pasos, pasoActualizarTLB(3, numPagina, marco))
		return marco, pasos
	}

	// Falla de página
	resultado.FallaPagina = true
	pasos = append(pasos, PasoTraduccion{
		Paso:    2,
		Accion:  AccionConsultarTabla,
		Estado:  EstadoFalla,
		Detalle: fmt.Sprintf("Page %d not in memory - Page Fault!", numPagina),
	})

	marco := m.asignarMarco(numPagina, m.procesoActual)
	pasos = append(pasos, PasoTraduccion{
		Paso:    3,
		Accion:  AccionAsignarMarco,
		Estado:  EstadoCompleto,
		Detalle: fmt.Sprintf("Allocated Frame %d for Page %d", marco, numPagina),
	})

	m.tabla.mapear(numPagina, marco, m.procesoActual)
	m.contadores.FallasPagina++
	m.contadores.Ticks++

	m.logger.Info("Falla de página", "pid", m.procesoActual, "pagina", numPagina, "marco", marco)
	m.registrar(m.contadores.Ticks,
		fmt.Sprintf("Page Fault: Loaded Page %d into Frame %d", numPagina, marco),
		SeveridadError)

	m.actualizarTLB(numPagina, marco)
	pasos = append(pasos, pasoActualizarTLB(4, numPagina, marco))
	return marco, pasos
}

// actualizarTLB carga la traducción y registra la entrada desalojada, si la hubo
func (m *Motor) actualizarTLB(numPagina, marco int) {
	victima, desalojo := m.tlb.actualizar(numPagina, marco)
	if desalojo {
		m.logger.Debug("Entrada TLB desalojada",
			"pagina", victima.Pagina,
			"marco", victima.Marco,
			"pagina_nueva", numPagina)
	}
}

func pasoActualizarTLB(paso, numPagina, marco int) PasoTraduccion {
	return PasoTraduccion{
		Paso:    paso,
		Accion:  AccionActualizarTLB,
		Estado:  EstadoCompleto,
		Detalle: fmt.Sprintf("Added Page %d → Frame %d to TLB", numPagina, marco),
	}
}

func copiarResultado(r *ResultadoTraduccion) *ResultadoTraduccion {
	if r == nil {
		return nil
	}
	c := *r
	c.Pasos = make([]PasoTraduccion, len(r.Pasos))
	copy(c.Pasos, r.Pasos)
	return &c
}
