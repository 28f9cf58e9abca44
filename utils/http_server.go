package utils

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

// HTTPHandlerFunc es el tipo para los manejadores de mensajes HTTP
type HTTPHandlerFunc func(*Mensaje) (interface{}, error)

// HTTPServer representa el servidor HTTP de un módulo
type HTTPServer struct {
	IP       string
	Puerto   int
	Nombre   string
	server   *http.Server
	handlers map[int]HTTPHandlerFunc
}

// NewHTTPServer crea un nuevo servidor HTTP
func NewHTTPServer(ip string, puerto int, nombre string) *HTTPServer {
	return &HTTPServer{
		IP:       ip,
		Puerto:   puerto,
		Nombre:   nombre,
		handlers: make(map[int]HTTPHandlerFunc),
	}
}

// RegisterHTTPHandler registra un manejador para un tipo específico de mensaje
func (s *HTTPServer) RegisterHTTPHandler(tipoMensaje int, handler HTTPHandlerFunc) {
	s.handlers[tipoMensaje] = handler
}

// Handler arma el mux con los endpoints /mensaje y /health
func (s *HTTPServer) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/mensaje", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Método no permitido", http.StatusMethodNotAllowed)
			return
		}

		var mensaje Mensaje
		err := json.NewDecoder(r.Body).Decode(&mensaje)
		if err != nil {
			http.Error(w, fmt.Sprintf("Error decodificando mensaje: %v", err), http.StatusBadRequest)
			return
		}

		handler, exists := s.handlers[mensaje.Tipo]
		if !exists {
			http.Error(w, fmt.Sprintf("No hay manejador para el tipo de mensaje %d", mensaje.Tipo), http.StatusBadRequest)
			return
		}

		respuesta, err := handler(&mensaje)
		if err != nil {
			http.Error(w, fmt.Sprintf("Error en el manejador: %v", err), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(respuesta); err != nil {
			slog.Error("Error codificando respuesta", "tipo", mensaje.Tipo, "error", err)
		}
	})

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok", "module": s.Nombre})
	})

	return mux
}

// Start inicia el servidor HTTP
func (s *HTTPServer) Start() error {
	address := fmt.Sprintf("%s:%d", s.IP, s.Puerto)
	s.server = &http.Server{
		Addr:    address,
		Handler: s.Handler(),
	}

	slog.Info("Servidor HTTP escuchando", "módulo", s.Nombre, "dirección", address)
	return s.server.ListenAndServe()
}
