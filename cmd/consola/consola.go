package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/sisoputnfrba/tp-2025-1c-LosCuervosXeneizes-visualizador/bitacora"
	"github.com/sisoputnfrba/tp-2025-1c-LosCuervosXeneizes-visualizador/guion"
	"github.com/sisoputnfrba/tp-2025-1c-LosCuervosXeneizes-visualizador/memoria"
	"github.com/sisoputnfrba/tp-2025-1c-LosCuervosXeneizes-visualizador/utils"
)

type opciones struct {
	guion        string
	remoto       string
	paso         time.Duration
	tiempoReal   bool
	traducir     string
	listar       bool
	invalidarTLB bool
	reintentos   int
}

// sesion es el destino de los comandos junto con sus consultas
type sesion struct {
	destino  guion.Destino
	metricas func() (memoria.Metricas, error)
	entradas func() ([]memoria.EntradaLog, error)
}

const esperaReintento = 2 * time.Second

var errSinComandos = errors.New("no hay nada para reproducir: usar -guion, -traducir o -listar")

func ejecutar(w io.Writer, op opciones, logger *slog.Logger) error {
	if op.listar {
		imprimirGuiones(w, guion.Predefinidos())
		return nil
	}

	g, err := armarGuion(op)
	if err != nil {
		return err
	}

	s, err := abrirSesion(op, logger)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Guion %s: %s\n", g.Nombre, g.Descripcion)
	reproductor := guion.NuevoReproductor(s.destino,
		guion.ConPaso(op.paso),
		guion.ConTiempoReal(op.tiempoReal),
		guion.ConLoggerReproductor(logger),
		guion.ConObservador(func(e guion.Evento) { imprimirEvento(w, e) }),
	)
	if _, err := reproductor.Reproducir(g); err != nil {
		return err
	}

	metricas, err := s.metricas()
	if err != nil {
		return fmt.Errorf("error consultando métricas: %w", err)
	}
	imprimirMetricas(w, metricas)

	entradas, err := s.entradas()
	if err != nil {
		return fmt.Errorf("error consultando la bitácora: %w", err)
	}
	imprimirBitacora(w, entradas)
	return nil
}

func armarGuion(op opciones) (guion.Guion, error) {
	switch {
	case op.traducir != "":
		direcciones, err := parsearDirecciones(op.traducir)
		if err != nil {
			return guion.Guion{}, err
		}
		g := guion.Guion{Nombre: "traducir", Descripcion: "direcciones de la línea de comandos"}
		for _, dir := range direcciones {
			g.Comandos = append(g.Comandos, guion.Comando{Tipo: guion.ComandoTraducir, Direccion: dir})
		}
		return g, nil
	case strings.HasSuffix(op.guion, ".json"):
		g, err := guion.CargarGuion(op.guion)
		if err != nil {
			return guion.Guion{}, err
		}
		return *g, nil
	case op.guion != "":
		g, ok := guion.Buscar(op.guion)
		if !ok {
			return guion.Guion{}, fmt.Errorf("no existe el guion %q", op.guion)
		}
		return g, nil
	default:
		return guion.Guion{}, errSinComandos
	}
}

func parsearDirecciones(texto string) ([]uint64, error) {
	var direcciones []uint64
	for _, campo := range strings.Split(texto, ",") {
		dir, err := utils.ParsearDireccion(campo)
		if err != nil {
			return nil, err
		}
		direcciones = append(direcciones, dir)
	}
	return direcciones, nil
}

func abrirSesion(op opciones, logger *slog.Logger) (*sesion, error) {
	if op.remoto != "" {
		cliente := utils.NewHTTPClientURL("http://"+op.remoto, "Consola")
		if err := conectarConReintentos(cliente, op.reintentos, esperaReintento, logger); err != nil {
			return nil, err
		}
		r := guion.NuevoRemoto(cliente)
		return &sesion{
			destino:  r,
			metricas: r.Metricas,
			entradas: func() ([]memoria.EntradaLog, error) {
				respuesta, err := r.Bitacora(0)
				return respuesta.Entradas, err
			},
		}, nil
	}

	b := bitacora.Nueva()
	motor := memoria.New(
		memoria.ConLogger(logger),
		memoria.ConSumidero(b),
		memoria.ConInvalidacionTLB(op.invalidarTLB),
	)
	return &sesion{
		destino:  guion.Local(motor),
		metricas: func() (memoria.Metricas, error) { return motor.Metricas(), nil },
		entradas: func() ([]memoria.EntradaLog, error) { return b.Entradas(), nil },
	}, nil
}

// conectarConReintentos hace el handshake con Memoria hasta lograrlo o agotar los intentos
func conectarConReintentos(c *utils.HTTPClient, intentos int, espera time.Duration, logger *slog.Logger) error {
	if intentos < 1 {
		intentos = 1
	}

	var err error
	for i := 1; i <= intentos; i++ {
		_, err = c.EnviarHTTPMensaje(utils.MensajeHandshake, "", map[string]interface{}{"modulo": "Consola"})
		if err == nil {
			logger.Info("Conexión establecida", "destino", c.BaseURL)
			return nil
		}
		if i < intentos {
			logger.Warn("Reintentando conexión", "destino", c.BaseURL, "intento", i, "próximo_en", espera)
			time.Sleep(espera)
		}
	}
	return fmt.Errorf("no se pudo conectar con %s: %w", c.BaseURL, err)
}
