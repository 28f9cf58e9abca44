package memoria

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrDireccionInvalida se devuelve cuando la dirección cae fuera del espacio virtual
var ErrDireccionInvalida = errors.New("dirección inválida")

// Severidad de una entrada del log compartido
type Severidad int

const (
	SeveridadInfo Severidad = iota
	SeveridadExito
	SeveridadAdvertencia
	SeveridadError
)

var nombresSeveridad = [...]string{"info", "success", "warning", "error"}

func (s Severidad) String() string {
	if s < 0 || int(s) >= len(nombresSeveridad) {
		return fmt.Sprintf("Severidad(%d)", int(s))
	}
	return nombresSeveridad[s]
}

func (s Severidad) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Severidad) UnmarshalJSON(data []byte) error {
	var nombre string
	if err := json.Unmarshal(data, &nombre); err != nil {
		return err
	}
	for i, n := range nombresSeveridad {
		if n == nombre {
			*s = Severidad(i)
			return nil
		}
	}
	return fmt.Errorf("severidad desconocida: %q", nombre)
}

// EntradaLog es una notificación legible para el log compartido
type EntradaLog struct {
	Tiempo    int       `json:"time"`
	Mensaje   string    `json:"message"`
	Severidad Severidad `json:"type"`
}

// Sumidero recibe las notificaciones del motor. El motor nunca las vuelve a leer.
type Sumidero interface {
	Registrar(entrada EntradaLog)
}

// SumideroFunc adapta una función a la interfaz Sumidero
type SumideroFunc func(entrada EntradaLog)

func (f SumideroFunc) Registrar(entrada EntradaLog) {
	f(entrada)
}

type sumideroNulo struct{}

func (sumideroNulo) Registrar(EntradaLog) {}
