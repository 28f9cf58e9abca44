package utils

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// AplicarRetardo aplica un retardo simulado y lo registra
func AplicarRetardo(operacion string, duracionMs int) {
	if duracionMs <= 0 {
		return
	}
	slog.Debug("Aplicando retardo", "operación", operacion, "duración_ms", duracionMs)
	time.Sleep(time.Duration(duracionMs) * time.Millisecond)
	slog.Debug("Retardo completado", "operación", operacion)
}

// ExtraerRetardo extrae el retardo de una operación del mensaje
func ExtraerRetardo(msg *Mensaje, valorPorDefecto int) int {
	if retardo, err := ExtraerEntero(msg, "retardo"); err == nil {
		return retardo
	}
	return valorPorDefecto
}

func datosMapa(msg *Mensaje) (map[string]interface{}, error) {
	datos, ok := msg.Datos.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("formato de datos incorrecto: %T", msg.Datos)
	}
	return datos, nil
}

// ExtraerEntero obtiene un campo numérico de los datos. Acepta números JSON y
// texto decimal o hexadecimal ("0x0800").
func ExtraerEntero(msg *Mensaje, clave string) (int, error) {
	datos, err := datosMapa(msg)
	if err != nil {
		return 0, err
	}

	switch valor := datos[clave].(type) {
	case float64:
		if valor != float64(int(valor)) {
			return 0, fmt.Errorf("%s no es un entero: %v", clave, valor)
		}
		return int(valor), nil
	case string:
		return ParsearEntero(valor)
	case nil:
		return 0, fmt.Errorf("%s no proporcionado", clave)
	default:
		return 0, fmt.Errorf("%s con formato incorrecto: %T", clave, valor)
	}
}

// ExtraerDireccion obtiene una dirección de los datos. Los números JSON se toman
// como vienen; el texto se lee en hexadecimal, con o sin prefijo 0x.
func ExtraerDireccion(msg *Mensaje, clave string) (uint64, error) {
	datos, err := datosMapa(msg)
	if err != nil {
		return 0, err
	}

	switch valor := datos[clave].(type) {
	case float64:
		if valor < 0 || valor != float64(uint64(valor)) {
			return 0, fmt.Errorf("%s no es una dirección válida: %v", clave, valor)
		}
		return uint64(valor), nil
	case string:
		return ParsearDireccion(valor)
	case nil:
		return 0, fmt.Errorf("%s no proporcionado", clave)
	default:
		return 0, fmt.Errorf("%s con formato incorrecto: %T", clave, valor)
	}
}

// ExtraerEnteros obtiene una lista de enteros de los datos
func ExtraerEnteros(msg *Mensaje, clave string) ([]int, error) {
	datos, err := datosMapa(msg)
	if err != nil {
		return nil, err
	}

	lista, ok := datos[clave].([]interface{})
	if !ok {
		return nil, fmt.Errorf("%s no proporcionado o formato incorrecto", clave)
	}

	enteros := make([]int, 0, len(lista))
	for i, elemento := range lista {
		numero, ok := elemento.(float64)
		if !ok || numero != float64(int(numero)) {
			return nil, fmt.Errorf("%s[%d] no es un entero: %v", clave, i, elemento)
		}
		enteros = append(enteros, int(numero))
	}
	return enteros, nil
}

// ExtraerTexto obtiene un campo de texto de los datos, o el valor por defecto
func ExtraerTexto(msg *Mensaje, clave string, valorPorDefecto string) string {
	datos, err := datosMapa(msg)
	if err != nil {
		return valorPorDefecto
	}
	if texto, ok := datos[clave].(string); ok && texto != "" {
		return texto
	}
	return valorPorDefecto
}

// ParsearEntero interpreta texto decimal o hexadecimal con prefijo 0x
func ParsearEntero(texto string) (int, error) {
	texto = strings.TrimSpace(texto)
	valor, err := strconv.ParseInt(texto, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("número inválido %q: %w", texto, err)
	}
	return int(valor), nil
}

// HandlerGenerico aplica el retardo configurado (o el pedido en el mensaje) y procesa
func HandlerGenerico(msg *Mensaje, retardoPorDefecto int, procesador func(msg *Mensaje) (interface{}, error)) (interface{}, error) {
	slog.Debug("Operación recibida", "origen", msg.Origen, "tipo", msg.Tipo)

	retardo := ExtraerRetardo(msg, retardoPorDefecto)
	AplicarRetardo("procesamiento", retardo)

	return procesador(msg)
}

// ParsearDireccion interpreta una dirección siempre en hexadecimal, como la
// escribe el usuario: "0800", "0x0800" y "800" son la misma dirección
func ParsearDireccion(texto string) (uint64, error) {
	texto = strings.TrimSpace(texto)
	digitos := strings.TrimPrefix(strings.TrimPrefix(texto, "0x"), "0X")
	valor, err := strconv.ParseUint(digitos, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("dirección inválida %q: %w", texto, err)
	}
	return valor, nil
}
