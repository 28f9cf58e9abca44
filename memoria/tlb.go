package memoria

// tlb guarda las traducciones recientes en orden de inserción.
// El reemplazo es FIFO estricto: actualizar una entrada existente no la mueve.
type tlb struct {
	entradas  []EntradaTLB
	capacidad int
}

func nuevaTLB(capacidad int) *tlb {
	return &tlb{
		entradas:  make([]EntradaTLB, 0, capacidad),
		capacidad: capacidad,
	}
}

// buscar devuelve el marco cacheado para la página
func (t *tlb) buscar(pagina int) (int, bool) {
	for _, entrada := range t.entradas {
		if entrada.Pagina == pagina {
			return entrada.Marco, true
		}
	}
	return 0, false
}

// actualizar agrega o reemplaza la traducción de la página.
// Devuelve la entrada desalojada, si la hubo.
func (t *tlb) actualizar(pagina, marco int) (EntradaTLB, bool) {
	for i, entrada := range t.entradas {
		if entrada.Pagina == pagina {
			t.entradas[i].Marco = marco
			return EntradaTLB{}, false
		}
	}

	var victima EntradaTLB
	desalojo := false
	if len(t.entradas) >= t.capacidad {
		victima = t.entradas[0]
		desalojo = true
		t.entradas = append(t.entradas[:0], t.entradas[1:]...)
	}

	t.entradas = append(t.entradas, EntradaTLB{Pagina: pagina, Marco: marco})
	return victima, desalojo
}

// invalidar elimina la traducción de la página si está cacheada
func (t *tlb) invalidar(pagina int) bool {
	for i, entrada := range t.entradas {
		if entrada.Pagina == pagina {
			t.entradas = append(t.entradas[:i], t.entradas[i+1:]...)
			return true
		}
	}
	return false
}

func (t *tlb) limpiar() {
	t.entradas = make([]EntradaTLB, 0, t.capacidad)
}

func (t *tlb) copia() []EntradaTLB {
	entradas := make([]EntradaTLB, len(t.entradas))
	copy(entradas, t.entradas)
	return entradas
}
