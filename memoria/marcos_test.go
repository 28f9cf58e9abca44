package memoria

import (
	"reflect"
	"testing"
)

func TestReemplazoFIFODesalojaLaPrimeraPagina(t *testing.T) {
	m, sumidero := nuevoMotorPrueba()

	for pagina := 0; pagina < CantMarcos; pagina++ {
		if _, err := m.Traducir(uint64(pagina) * TamPagina); err != nil {
			t.Fatal(err)
		}
	}
	if libres := m.Instantanea().MarcosLibres; libres != 0 {
		t.Fatal("Expected no free frames, got:", libres)
	}
	antes := m.Instantanea().TablaPaginas

	r, err := m.Traducir(uint64(CantMarcos) * TamPagina)
	if err != nil {
		t.Fatal(err)
	}
	if !r.FallaPagina || r.NumeroMarco != 0 {
		t.Errorf("Expected fault reusing frame 0, got fault=%v frame=%d", r.FallaPagina, r.NumeroMarco)
	}

	despues := m.Instantanea()
	if despues.TablaPaginas[0].Valido || despues.TablaPaginas[0].Marco != nil {
		t.Errorf("Expected page 0 to be invalid, got %+v", despues.TablaPaginas[0])
	}
	for pagina := 1; pagina < CantPaginas; pagina++ {
		if pagina == CantMarcos {
			continue
		}
		if !reflect.DeepEqual(antes[pagina], despues.TablaPaginas[pagina]) {
			t.Errorf("Page %d changed: %+v -> %+v", pagina, antes[pagina], despues.TablaPaginas[pagina])
		}
	}
	if entrada := despues.TablaPaginas[CantMarcos]; !entrada.Valido || *entrada.Marco != 0 {
		t.Errorf("Expected page %d in frame 0, got %+v", CantMarcos, entrada)
	}

	if !reflect.DeepEqual(despues.ColaFIFO, []int{1, 2, 3, 4, 5, 6, 7, 0}) {
		t.Error("Unexpected FIFO queue:", despues.ColaFIFO)
	}
	if pagina := despues.Marcos[0].Pagina; pagina == nil || *pagina != CantMarcos {
		t.Errorf("Expected frame 0 to hold page %d", CantMarcos)
	}

	// El desalojo se notifica antes que la falla
	n := len(sumidero.entradas)
	desalojo := sumidero.entradas[n-2]
	falla := sumidero.entradas[n-1]
	if desalojo.Mensaje != "Page replacement: Evicted Page 0 from Frame 0" || desalojo.Severidad != SeveridadAdvertencia {
		t.Errorf("Unexpected eviction entry: %+v", desalojo)
	}
	if falla.Mensaje != "Page Fault: Loaded Page 8 into Frame 0" {
		t.Errorf("Unexpected fault entry: %+v", falla)
	}
}

func TestColaFIFOSinDuplicados(t *testing.T) {
	m, _ := nuevoMotorPrueba()
	paginas := []int{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5, 8, 9, 7, 9, 3, 2, 3, 8, 4, 6, 2, 6, 4, 3, 3, 8, 3, 2, 7, 9, 5, 0, 2, 8, 8, 4, 1, 9, 7}

	for _, pagina := range paginas {
		if _, err := m.Traducir(uint64(pagina) * TamPagina); err != nil {
			t.Fatal(err)
		}

		inst := m.Instantanea()
		ocupados := CantMarcos - inst.MarcosLibres
		if len(inst.ColaFIFO) != ocupados {
			t.Fatalf("FIFO queue length %d, occupied frames %d", len(inst.ColaFIFO), ocupados)
		}
		vistos := map[int]bool{}
		for _, marco := range inst.ColaFIFO {
			if vistos[marco] {
				t.Fatalf("Duplicated frame %d in FIFO queue %v", marco, inst.ColaFIFO)
			}
			vistos[marco] = true
		}

		// Cada entrada válida apunta a un marco que la tiene como ocupante
		for pagina, entrada := range inst.TablaPaginas {
			if entrada.Valido != (entrada.Marco != nil) {
				t.Fatalf("Page %d: valid=%v frame=%v", pagina, entrada.Valido, entrada.Marco)
			}
			if entrada.Valido {
				ocupante := inst.Marcos[*entrada.Marco].Pagina
				if ocupante == nil || *ocupante != pagina {
					t.Fatalf("Page %d maps to frame %d occupied by %v", pagina, *entrada.Marco, ocupante)
				}
			}
		}
		verificarIdentidadContadores(t, m)
	}
}

func TestReemplazoEntreProcesos(t *testing.T) {
	m, _ := nuevoMotorPrueba()

	if _, err := m.CargarProceso("P1", []int{0, 1, 2, 3}); err != nil {
		t.Fatal(err)
	}
	if _, err := m.CargarProceso("P2", []int{4, 5, 6, 7}); err != nil {
		t.Fatal(err)
	}
	r, err := m.CargarProceso("P3", []int{8})
	if err != nil {
		t.Fatal(err)
	}

	if r[0].NumeroMarco != 0 {
		t.Error("Expected P3 to take frame 0, got:", r[0].NumeroMarco)
	}
	inst := m.Instantanea()
	if inst.Marcos[0].Proceso != "P3" {
		t.Error("Expected frame 0 owned by P3, got:", inst.Marcos[0].Proceso)
	}
	// La entrada desalojada conserva su dueño anterior
	if entrada := inst.TablaPaginas[0]; entrada.Valido || entrada.Proceso != "P1" {
		t.Errorf("Expected invalid page 0 still owned by P1, got %+v", entrada)
	}
}

// escenarioTLBVieja deja en la TLB la traducción de la página 0 aunque su
// marco ya fue reasignado a la página 8.
func escenarioTLBVieja(t *testing.T, m *Motor) {
	t.Helper()
	for pagina := 0; pagina < CantMarcos; pagina++ {
		if _, err := m.Traducir(uint64(pagina) * TamPagina); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := m.Traducir(0); err != nil {
		t.Fatal(err)
	}
	if _, err := m.Traducir(8 * TamPagina); err != nil {
		t.Fatal(err)
	}
}

func TestTLBViejaSePreservaPorDefecto(t *testing.T) {
	m, _ := nuevoMotorPrueba()
	escenarioTLBVieja(t, m)

	esperada := []EntradaTLB{{Pagina: 6, Marco: 6}, {Pagina: 7, Marco: 7}, {Pagina: 0, Marco: 0}, {Pagina: 8, Marco: 0}}
	if tlb := m.Instantanea().TLB; !reflect.DeepEqual(tlb, esperada) {
		t.Errorf("Unexpected TLB: %+v", tlb)
	}

	r, err := m.Traducir(0)
	if err != nil {
		t.Fatal(err)
	}
	if !r.TLBHit || r.FallaPagina || r.NumeroMarco != 0 {
		t.Errorf("Expected stale TLB hit on frame 0, got %+v", r)
	}
	if m.Instantanea().TablaPaginas[0].Valido {
		t.Error("Page table entry for page 0 should stay invalid")
	}
}

func TestInvalidacionTLBEnReemplazo(t *testing.T) {
	m, _ := nuevoMotorPrueba(ConInvalidacionTLB(true))
	escenarioTLBVieja(t, m)

	esperada := []EntradaTLB{{Pagina: 5, Marco: 5}, {Pagina: 6, Marco: 6}, {Pagina: 7, Marco: 7}, {Pagina: 8, Marco: 0}}
	if tlb := m.Instantanea().TLB; !reflect.DeepEqual(tlb, esperada) {
		t.Errorf("Unexpected TLB: %+v", tlb)
	}

	r, err := m.Traducir(0)
	if err != nil {
		t.Fatal(err)
	}
	if r.TLBHit || !r.FallaPagina {
		t.Errorf("Expected a page fault after invalidation, got hit=%v fault=%v", r.TLBHit, r.FallaPagina)
	}
	if r.NumeroMarco != 1 {
		t.Error("Expected frame 1 (next in FIFO order), got:", r.NumeroMarco)
	}
}
