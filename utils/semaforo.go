package utils

// Semaforo implementa un semáforo contador con canales.
// Con capacidad 1 funciona como exclusión mutua.
type Semaforo struct {
	c chan struct{}
}

// NewSemaforo crea un semáforo con la capacidad indicada (mínimo 1)
func NewSemaforo(capacidad int) *Semaforo {
	if capacidad <= 0 {
		capacidad = 1
	}
	return &Semaforo{
		c: make(chan struct{}, capacidad),
	}
}

// Wait (P) toma un lugar, bloquea si no hay
func (s *Semaforo) Wait() {
	s.c <- struct{}{}
}

// Signal (V) libera un lugar. Liberar de más no hace nada.
func (s *Semaforo) Signal() {
	select {
	case <-s.c:
	default:
	}
}

// TryWait intenta tomar un lugar sin bloquear
func (s *Semaforo) TryWait() bool {
	select {
	case s.c <- struct{}{}:
		return true
	default:
		return false
	}
}

// Proteger envuelve un handler para que se ejecute con el semáforo tomado
func (s *Semaforo) Proteger(handler HTTPHandlerFunc) HTTPHandlerFunc {
	return func(msg *Mensaje) (interface{}, error) {
		s.Wait()
		defer s.Signal()
		return handler(msg)
	}
}
