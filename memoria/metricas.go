package memoria

import (
	"math"
)

// Metricas resume el rendimiento de la traducción.
// Los porcentajes se redondean a dos decimales.
type Metricas struct {
	RatioTLBHit    float64 `json:"tlb_hit_ratio"`
	TasaFallas     float64 `json:"page_fault_rate"`
	AccesosTotales int     `json:"total_accesses"`
	TLBHits        int     `json:"tlb_hits"`
	TLBMisses      int     `json:"tlb_misses"`
	FallasPagina   int     `json:"page_faults"`
}

// Metricas se recalcula a partir de los contadores en cada llamada
func (m *Motor) Metricas() Metricas {
	return calcularMetricas(m.contadores)
}

func calcularMetricas(c Contadores) Metricas {
	return Metricas{
		RatioTLBHit:    porcentaje(c.TLBHits, c.AccesosTotales),
		TasaFallas:     porcentaje(c.FallasPagina, c.AccesosTotales),
		AccesosTotales: c.AccesosTotales,
		TLBHits:        c.TLBHits,
		TLBMisses:      c.TLBMisses,
		FallasPagina:   c.FallasPagina,
	}
}

func porcentaje(parte, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(parte)/float64(total)*100*100) / 100
}
