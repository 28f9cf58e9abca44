package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Mensaje representa un mensaje genérico entre módulos
type Mensaje struct {
	Tipo      int         `json:"tipo"`
	Operacion string      `json:"operacion"`
	Origen    string      `json:"origen"`
	Datos     interface{} `json:"datos"`
}

// HTTPClient representa un cliente HTTP para comunicación entre módulos
type HTTPClient struct {
	BaseURL string
	Nombre  string
	client  *http.Client
}

// NewHTTPClientURL crea un cliente a partir de una URL base completa
func NewHTTPClientURL(baseURL string, nombre string) *HTTPClient {
	return &HTTPClient{
		BaseURL: baseURL,
		Nombre:  nombre,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *HTTPClient) enviar(tipo int, operacion string, datos interface{}) (*http.Response, error) {
	mensaje := Mensaje{
		Tipo:      tipo,
		Operacion: operacion,
		Origen:    c.Nombre,
		Datos:     datos,
	}

	jsonData, err := json.Marshal(mensaje)
	if err != nil {
		return nil, fmt.Errorf("error al serializar mensaje: %w", err)
	}

	resp, err := c.client.Post(
		fmt.Sprintf("%s/mensaje", c.BaseURL),
		"application/json",
		bytes.NewBuffer(jsonData),
	)
	if err != nil {
		return nil, fmt.Errorf("error al enviar mensaje HTTP: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("respuesta HTTP no exitosa: %d - %s", resp.StatusCode, string(bodyBytes))
	}

	return resp, nil
}

// EnviarHTTPMensaje envía un mensaje y devuelve la respuesta decodificada genéricamente
func (c *HTTPClient) EnviarHTTPMensaje(tipo int, operacion string, datos interface{}) (interface{}, error) {
	var resultado interface{}
	if err := c.EnviarHTTPMensajeEn(tipo, operacion, datos, &resultado); err != nil {
		return nil, err
	}
	return resultado, nil
}

// EnviarHTTPMensajeEn envía un mensaje y decodifica la respuesta en destino
func (c *HTTPClient) EnviarHTTPMensajeEn(tipo int, operacion string, datos interface{}, destino interface{}) error {
	resp, err := c.enviar(tipo, operacion, datos)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(destino); err != nil {
		return fmt.Errorf("error al decodificar respuesta: %w", err)
	}
	return nil
}

// VerificarConexion verifica si un módulo está disponible
func (c *HTTPClient) VerificarConexion() error {
	resp, err := c.client.Get(fmt.Sprintf("%s/health", c.BaseURL))
	if err != nil {
		return fmt.Errorf("error al verificar conexión con %s: %w", c.BaseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("estado inesperado al verificar conexión: %d", resp.StatusCode)
	}

	var result map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("error al decodificar respuesta de verificación: %w", err)
	}

	slog.Info("Conexión verificada", "destino", c.BaseURL, "módulo", result["module"])
	return nil
}
