package memoria

// Instantanea es una vista de solo lectura del estado del motor para las
// vistas (tabla de páginas, TLB, memoria física y última traducción).
type Instantanea struct {
	TablaPaginas     []EntradaTabla       `json:"page_table"`
	TLB              []EntradaTLB         `json:"tlb"`
	Marcos           []Marco              `json:"physical_memory"`
	ColaFIFO         []int                `json:"fifo_queue"`
	MarcosLibres     int                  `json:"free_frames"`
	ProcesoActual    string               `json:"current_process"`
	Contadores       Contadores           `json:"counters"`
	Metricas         Metricas             `json:"metrics"`
	UltimaTraduccion *ResultadoTraduccion `json:"last_translation"`
}

// Instantanea devuelve copias profundas; modificarlas no afecta al motor
func (m *Motor) Instantanea() Instantanea {
	marcos := make([]Marco, len(m.marcos))
	for i, marco := range m.marcos {
		marcos[i] = marco
		if marco.Pagina != nil {
			pagina := *marco.Pagina
			marcos[i].Pagina = &pagina
		}
	}

	cola := make([]int, len(m.colaFIFO))
	copy(cola, m.colaFIFO)

	return Instantanea{
		TablaPaginas:     m.tabla.copia(),
		TLB:              m.tlb.copia(),
		Marcos:           marcos,
		ColaFIFO:         cola,
		MarcosLibres:     m.contarMarcosLibres(),
		ProcesoActual:    m.procesoActual,
		Contadores:       m.contadores,
		Metricas:         calcularMetricas(m.contadores),
		UltimaTraduccion: copiarResultado(m.ultima),
	}
}
