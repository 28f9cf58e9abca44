package memoria

import (
	"errors"
	"reflect"
	"testing"
)

func TestCargarProcesoTraducePaginasEnOrden(t *testing.T) {
	m, _ := nuevoMotorPrueba()

	resultados, err := m.CargarProceso("P2", []int{4, 5, 6})
	if err != nil {
		t.Fatal(err)
	}
	if m.ProcesoActual() != "P2" {
		t.Error("Expected current process P2, got:", m.ProcesoActual())
	}
	if len(resultados) != 3 {
		t.Fatal("Expected 3 results, got:", len(resultados))
	}

	for i, pagina := range []int{4, 5, 6} {
		r := resultados[i]
		if r.DireccionVirtual != uint64(pagina)*TamPagina || r.Desplazamiento != 0 {
			t.Errorf("Result %d: unexpected address 0x%X", i, r.DireccionVirtual)
		}
		if r.NumeroMarco != i {
			t.Errorf("Page %d: expected frame %d, got %d", pagina, i, r.NumeroMarco)
		}
		entrada := m.Instantanea().TablaPaginas[pagina]
		if entrada.Proceso != "P2" {
			t.Errorf("Page %d: expected owner P2, got %q", pagina, entrada.Proceso)
		}
	}

	if ultima := m.UltimaTraduccion(); ultima.NumeroPagina != 6 {
		t.Error("Expected last translation for page 6, got:", ultima.NumeroPagina)
	}
}

func TestCargarNuevePaginasDesalojaLaPagina0(t *testing.T) {
	m, _ := nuevoMotorPrueba()

	if _, err := m.CargarProceso("P1", []int{0, 1, 2, 3, 4, 5, 6, 7, 8}); err != nil {
		t.Fatal(err)
	}

	inst := m.Instantanea()
	if inst.TablaPaginas[0].Valido {
		t.Error("Expected page 0 to be evicted")
	}
	for pagina := 1; pagina <= 8; pagina++ {
		if !inst.TablaPaginas[pagina].Valido {
			t.Errorf("Expected page %d to be valid", pagina)
		}
	}
	if inst.Contadores.FallasPagina != 9 {
		t.Error("Expected 9 page faults, got:", inst.Contadores.FallasPagina)
	}
}

func TestCargarProcesoConPaginaInvalida(t *testing.T) {
	m, _ := nuevoMotorPrueba()

	resultados, err := m.CargarProceso("P1", []int{0, 16, -1, 1})
	if !errors.Is(err, ErrDireccionInvalida) {
		t.Fatal("Expected ErrDireccionInvalida, got:", err)
	}
	if len(resultados) != 2 {
		t.Fatal("Expected 2 successful translations, got:", len(resultados))
	}
	if c := m.Contadores(); c.AccesosTotales != 2 || c.FallasPagina != 2 {
		t.Errorf("Unexpected counters: %+v", c)
	}
}

func TestCargarProcesoRechazaPaginasQueDesbordan(t *testing.T) {
	m, sumidero := nuevoMotorPrueba()
	m.CargarProceso(ProcesoInicial, []int{2})
	antes := m.Instantanea()
	entradasAntes := len(sumidero.entradas)

	paginas := []int{1 << 52, 1<<52 + 3, CantPaginas, 1<<62 + 1}
	resultados, err := m.CargarProceso(ProcesoInicial, paginas)
	if !errors.Is(err, ErrDireccionInvalida) {
		t.Fatal("Expected ErrDireccionInvalida, got:", err)
	}
	if len(resultados) != 0 {
		t.Fatalf("Expected no translations, got %d (first page %d)", len(resultados), resultados[0].NumeroPagina)
	}
	if despues := m.Instantanea(); !reflect.DeepEqual(antes, despues) {
		t.Errorf("State changed:\n got: %+v\nwant: %+v", despues, antes)
	}

	nuevas := sumidero.entradas[entradasAntes:]
	if len(nuevas) != len(paginas) {
		t.Fatalf("Expected %d log entries, got %+v", len(paginas), nuevas)
	}
	if e := nuevas[0]; e.Mensaje != "Invalid page 4503599627370496 - page number out of range" || e.Severidad != SeveridadError || e.Tiempo != antes.Contadores.Ticks {
		t.Errorf("Unexpected log entry: %+v", e)
	}
}

func verificarEstadoVacio(t *testing.T, m *Motor) {
	t.Helper()
	inst := m.Instantanea()

	if c := inst.Contadores; c.TLBHits != 0 || c.TLBMisses != 0 || c.FallasPagina != 0 || c.AccesosTotales != 0 {
		t.Errorf("Expected zero counters, got %+v", c)
	}
	if len(inst.TLB) != 0 {
		t.Error("Expected empty TLB, got:", inst.TLB)
	}
	if len(inst.ColaFIFO) != 0 {
		t.Error("Expected empty FIFO queue, got:", inst.ColaFIFO)
	}
	for pagina, entrada := range inst.TablaPaginas {
		if entrada.Valido || entrada.Marco != nil || entrada.Proceso != "" {
			t.Errorf("Page %d not reset: %+v", pagina, entrada)
		}
	}
	for i, marco := range inst.Marcos {
		if !marco.Libre() || marco.Proceso != "" {
			t.Errorf("Frame %d not reset: %+v", i, marco)
		}
	}
	if inst.MarcosLibres != CantMarcos {
		t.Error("Expected all frames free, got:", inst.MarcosLibres)
	}
	if inst.UltimaTraduccion != nil {
		t.Error("Expected no last translation")
	}
	if inst.ProcesoActual != ProcesoInicial {
		t.Error("Expected initial process, got:", inst.ProcesoActual)
	}
}

func TestLimpiarMemoria(t *testing.T) {
	m, sumidero := nuevoMotorPrueba()
	if _, err := m.CargarProceso("P2", []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 0}); err != nil {
		t.Fatal(err)
	}
	ticks := m.Contadores().Ticks

	m.LimpiarMemoria()
	verificarEstadoVacio(t, m)

	if m.Contadores().Ticks != ticks {
		t.Errorf("Expected access clock %d to survive clear, got %d", ticks, m.Contadores().Ticks)
	}
	ultima := sumidero.entradas[len(sumidero.entradas)-1]
	if ultima != (EntradaLog{Tiempo: ticks, Mensaje: "Memory cleared", Severidad: SeveridadInfo}) {
		t.Errorf("Unexpected log entry: %+v", ultima)
	}

	// Después de limpiar, la memoria se comporta como nueva
	r, err := m.Traducir(0x0800)
	if err != nil {
		t.Fatal(err)
	}
	if !r.FallaPagina || r.NumeroMarco != 0 {
		t.Errorf("Expected fault into frame 0, got %+v", r)
	}
}

func TestReiniciar(t *testing.T) {
	m, sumidero := nuevoMotorPrueba()
	m.CargarProceso("P1", []int{0, 1, 2, 3})
	m.Traducir(0x0000)

	m.Reiniciar()
	verificarEstadoVacio(t, m)

	if m.Contadores().Ticks != 0 {
		t.Error("Expected access clock reset, got:", m.Contadores().Ticks)
	}
	ultima := sumidero.entradas[len(sumidero.entradas)-1]
	if ultima != (EntradaLog{Tiempo: 0, Mensaje: "Memory system initialized", Severidad: SeveridadInfo}) {
		t.Errorf("Unexpected log entry: %+v", ultima)
	}
}

func TestMotoresIndependientes(t *testing.T) {
	a, _ := nuevoMotorPrueba()
	b, _ := nuevoMotorPrueba()

	a.CargarProceso("P1", []int{0, 1, 2})
	if !reflect.DeepEqual(b.Instantanea(), New(ConLogger(a.logger)).Instantanea()) {
		t.Error("Engine b was affected by engine a")
	}
}

func TestInstantaneaEsUnaCopia(t *testing.T) {
	m, _ := nuevoMotorPrueba()
	m.CargarProceso("P1", []int{2})

	inst := m.Instantanea()
	*inst.TablaPaginas[2].Marco = 5
	*inst.Marcos[0].Pagina = 9
	inst.TLB[0].Marco = 3
	inst.ColaFIFO[0] = 4

	otra := m.Instantanea()
	if *otra.TablaPaginas[2].Marco != 0 || *otra.Marcos[0].Pagina != 2 || otra.TLB[0].Marco != 0 || otra.ColaFIFO[0] != 0 {
		t.Errorf("Snapshot mutation leaked into engine: %+v", otra)
	}
}
