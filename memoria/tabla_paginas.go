package memoria

// TablaPaginas es la tabla de páginas de un solo nivel del simulador
type TablaPaginas [CantPaginas]EntradaTabla

// consultar devuelve el marco de la página si la entrada es válida
func (t *TablaPaginas) consultar(pagina int) (int, bool) {
	entrada := t[pagina]
	if !entrada.Valido || entrada.Marco == nil {
		return 0, false
	}
	return *entrada.Marco, true
}

// mapear marca la página como presente en el marco indicado
func (t *TablaPaginas) mapear(pagina, marco int, proceso string) {
	t[pagina] = EntradaTabla{
		Marco:   &marco,
		Valido:  true,
		Proceso: proceso,
	}
}

// invalidar saca la página de memoria. El proceso dueño se conserva.
func (t *TablaPaginas) invalidar(pagina int) {
	t[pagina].Valido = false
	t[pagina].Marco = nil
}

// copia devuelve una copia profunda de la tabla
func (t *TablaPaginas) copia() []EntradaTabla {
	entradas := make([]EntradaTabla, len(t))
	for i, entrada := range t {
		entradas[i] = entrada
		if entrada.Marco != nil {
			marco := *entrada.Marco
			entradas[i].Marco = &marco
		}
	}
	return entradas
}
