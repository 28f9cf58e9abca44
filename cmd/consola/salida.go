package main

import (
	"fmt"
	"io"

	"github.com/sisoputnfrba/tp-2025-1c-LosCuervosXeneizes-visualizador/guion"
	"github.com/sisoputnfrba/tp-2025-1c-LosCuervosXeneizes-visualizador/memoria"
)

func imprimirGuiones(w io.Writer, guiones []guion.Guion) {
	for _, g := range guiones {
		fmt.Fprintf(w, "%-20s %s (%d comandos)\n", g.Nombre, g.Descripcion, len(g.Comandos))
	}
}

func imprimirEvento(w io.Writer, e guion.Evento) {
	fmt.Fprintf(w, "[%d] t=%.3fs %s\n", e.Indice, e.Tiempo, e.Comando)
	for _, r := range e.Resultados {
		imprimirResultado(w, r)
	}
	if e.Error != "" {
		fmt.Fprintf(w, "    error: %s\n", e.Error)
	}
}

func imprimirResultado(w io.Writer, r *memoria.ResultadoTraduccion) {
	estado := "TLB miss"
	switch {
	case r.TLBHit:
		estado = "TLB hit"
	case r.FallaPagina:
		estado = "page fault"
	}
	fmt.Fprintf(w, "    0x%04X -> 0x%04X (página %d, desplazamiento %d, marco %d) %s\n",
		r.DireccionVirtual, r.DireccionFisica, r.NumeroPagina, r.Desplazamiento, r.NumeroMarco, estado)

	for _, p := range r.Pasos {
		fmt.Fprintf(w, "      %d. %-26s %-8s %s\n", p.Paso, p.Accion, p.Estado, p.Detalle)
	}
}

func imprimirMetricas(w io.Writer, m memoria.Metricas) {
	fmt.Fprintf(w, "TLB hit ratio: %.2f%%  Page fault rate: %.2f%%  (accesos %d, hits %d, misses %d, fallas %d)\n",
		m.RatioTLBHit, m.TasaFallas, m.AccesosTotales, m.TLBHits, m.TLBMisses, m.FallasPagina)
}

func imprimirBitacora(w io.Writer, entradas []memoria.EntradaLog) {
	for _, e := range entradas {
		fmt.Fprintf(w, "[%03d] %-7s %s\n", e.Tiempo, e.Severidad, e.Mensaje)
	}
}
