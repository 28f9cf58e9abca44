package utils

import (
	"bytes"
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
)

func TestParsearEntero(t *testing.T) {
	casos := map[string]int{
		"0x0800": 0x800,
		"0X10":   16,
		"2048":   2048,
		" 7 ":    7,
		"0":      0,
	}
	for texto, esperado := range casos {
		got, err := ParsearEntero(texto)
		if err != nil || got != esperado {
			t.Errorf("ParsearEntero(%q) = %d, %v; expected %d", texto, got, err, esperado)
		}
	}
	if _, err := ParsearEntero("0xZZ"); err == nil {
		t.Error("Expected error for invalid number")
	}
}

func TestParsearDireccionEnHexadecimal(t *testing.T) {
	casos := map[string]uint64{
		"0800":   0x800,
		"800":    0x800,
		"0x0800": 0x800,
		"0XFFFF": 0xFFFF,
		" 10 ":   0x10,
	}
	for texto, esperado := range casos {
		got, err := ParsearDireccion(texto)
		if err != nil || got != esperado {
			t.Errorf("ParsearDireccion(%q) = 0x%X, %v; expected 0x%X", texto, got, err, esperado)
		}
	}
	for _, texto := range []string{"", "0x", "-1", "12G"} {
		if _, err := ParsearDireccion(texto); err == nil {
			t.Errorf("Expected error for %q", texto)
		}
	}
}

func TestExtraerDireccion(t *testing.T) {
	msg := &Mensaje{Datos: map[string]interface{}{
		"numero":   float64(2048),
		"texto":    "0800",
		"negativa": float64(-1),
		"mitad":    0.5,
	}}

	if dir, err := ExtraerDireccion(msg, "numero"); err != nil || dir != 2048 {
		t.Errorf("numero = %d, %v", dir, err)
	}
	if dir, err := ExtraerDireccion(msg, "texto"); err != nil || dir != 0x800 {
		t.Errorf("texto = 0x%X, %v", dir, err)
	}
	for _, clave := range []string{"negativa", "mitad", "falta"} {
		if _, err := ExtraerDireccion(msg, clave); err == nil {
			t.Errorf("Expected error for %s", clave)
		}
	}
}

func TestExtraerDatosDelMensaje(t *testing.T) {
	msg := &Mensaje{Datos: map[string]interface{}{
		"direccion": "0x1000",
		"retardo":   float64(25),
		"paginas":   []interface{}{float64(4), float64(5)},
		"pid":       "P2",
		"mitad":     1.5,
	}}

	if dir, err := ExtraerEntero(msg, "direccion"); err != nil || dir != 0x1000 {
		t.Errorf("direccion = %d, %v", dir, err)
	}
	if retardo := ExtraerRetardo(msg, 0); retardo != 25 {
		t.Error("Expected retardo 25, got:", retardo)
	}
	if paginas, err := ExtraerEnteros(msg, "paginas"); err != nil || len(paginas) != 2 || paginas[1] != 5 {
		t.Errorf("paginas = %v, %v", paginas, err)
	}
	if pid := ExtraerTexto(msg, "pid", "P1"); pid != "P2" {
		t.Error("Expected P2, got:", pid)
	}
	if pid := ExtraerTexto(msg, "otro", "P1"); pid != "P1" {
		t.Error("Expected default P1, got:", pid)
	}
	if _, err := ExtraerEntero(msg, "mitad"); err == nil {
		t.Error("Expected error for non integer")
	}
	if _, err := ExtraerEntero(msg, "falta"); err == nil {
		t.Error("Expected error for missing field")
	}
	if _, err := ExtraerEntero(&Mensaje{Datos: "texto"}, "x"); err == nil {
		t.Error("Expected error for non map data")
	}
}

func TestParsearNivel(t *testing.T) {
	var buf bytes.Buffer
	logger := NuevoLogger(&buf, "WARN", "Prueba")

	logger.Info("no se ve")
	logger.Warn("se ve")

	salida := buf.String()
	if strings.Contains(salida, "no se ve") || !strings.Contains(salida, "se ve") {
		t.Error("Unexpected output:", salida)
	}
	if !strings.Contains(salida, "modulo=Prueba") {
		t.Error("Expected module attribute:", salida)
	}
}

func TestSemaforoProtegeSeccionCritica(t *testing.T) {
	sem := NewSemaforo(1)
	contador := 0
	handler := sem.Proteger(func(msg *Mensaje) (interface{}, error) {
		actual := contador
		contador = actual + 1
		return nil, nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			handler(&Mensaje{})
		}()
	}
	wg.Wait()

	if contador != 50 {
		t.Error("Expected 50, got:", contador)
	}
	if !sem.TryWait() {
		t.Error("Semaphore should be free after all handlers finished")
	}
	if sem.TryWait() {
		t.Error("Semaphore with capacity 1 should not be taken twice")
	}
}

func TestCargarArchivo(t *testing.T) {
	type configPrueba struct {
		Puerto int    `json:"PUERTO"`
		Nivel  string `json:"LOG_LEVEL"`
	}
	dir := t.TempDir()

	ruta := filepath.Join(dir, "ok.json")
	os.WriteFile(ruta, []byte(`{"PUERTO": 8002, "LOG_LEVEL": "debug"}`), 0644)
	config, err := CargarArchivo[configPrueba](ruta)
	if err != nil || config.Puerto != 8002 || config.Nivel != "debug" {
		t.Errorf("config = %+v, %v", config, err)
	}

	ruta = filepath.Join(dir, "desconocido.json")
	os.WriteFile(ruta, []byte(`{"PUERTO": 1, "OTRO": true}`), 0644)
	if _, err := CargarArchivo[configPrueba](ruta); err == nil {
		t.Error("Expected error for unknown field")
	}

	if _, err := CargarArchivo[configPrueba](filepath.Join(dir, "no-existe.json")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestModuloDespachaPorTipoYOperacion(t *testing.T) {
	modulo := NuevoModulo("Prueba", "")
	modulo.RegistrarHandler(strconv.Itoa(MensajeTraducir), "default", func(msg *Mensaje) (interface{}, error) {
		dir, err := ExtraerEntero(msg, "direccion")
		if err != nil {
			return map[string]interface{}{"error": err.Error()}, nil
		}
		return map[string]interface{}{"doble": dir * 2}, nil
	})
	modulo.RegistrarHandler(strconv.Itoa(MensajeReiniciar), "FALLAR", func(msg *Mensaje) (interface{}, error) {
		return nil, errors.New("falla")
	})

	servidor := httptest.NewServer(modulo.PrepararServidor("127.0.0.1", 0).Handler())
	defer servidor.Close()
	cliente := NewHTTPClientURL(servidor.URL, "Prueba")

	if err := cliente.VerificarConexion(); err != nil {
		t.Fatal(err)
	}

	var respuesta struct {
		Doble int    `json:"doble"`
		Error string `json:"error"`
	}
	if err := cliente.EnviarHTTPMensajeEn(MensajeTraducir, "", map[string]interface{}{"direccion": 21}, &respuesta); err != nil {
		t.Fatal(err)
	}
	if respuesta.Doble != 42 {
		t.Error("Expected 42, got:", respuesta.Doble)
	}

	if _, err := cliente.EnviarHTTPMensaje(MensajeReiniciar, "FALLAR", nil); err == nil {
		t.Error("Expected error from failing handler")
	}
	if _, err := cliente.EnviarHTTPMensaje(MensajeReiniciar, "OTRA", nil); err == nil {
		t.Error("Expected error for unknown operation without default")
	}
	if _, err := cliente.EnviarHTTPMensaje(99, "", nil); err == nil {
		t.Error("Expected error for unknown message type")
	}
}
