package configs

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Constantes do jogo e da rede (cliente e servidor leem daqui).
type Config struct {
	ServerDomain string
	ServerPort   string

	Title        string
	ScreenWidth  int
	ScreenHeight int

	// Fatia máxima de integração em segundos; 0 desliga o fatiamento.
	MaxStep float32
	// Semente do aleatório; 0 usa o relógio.
	Seed uint64
	// Período do loop do servidor.
	Tick time.Duration

	LogLevel slog.Level
	// Destino do log no modo terminal, onde o stderr é a própria tela.
	LogFile string
}

func New() Config {
	return Config{
		ServerDomain: "localhost",
		ServerPort:   "8080",

		Title:        "Game0: Tennis For One",
		ScreenWidth:  800,
		ScreenHeight: 640,

		MaxStep: 1.0 / 120,
		Tick:    16 * time.Millisecond, // ~60 FPS

		LogLevel: slog.LevelInfo,
	}
}

// Load parte de New, carrega um .env opcional do diretório atual e aplica
// as variáveis TENNIS_* por cima.
func Load() (Config, error) {
	return load(".env")
}

func load(envFile string) (Config, error) {
	cfg := New()

	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("load %s: %w", envFile, err)
	}

	if v, ok := os.LookupEnv("TENNIS_SERVER_DOMAIN"); ok {
		cfg.ServerDomain = v
	}
	if v, ok := os.LookupEnv("TENNIS_SERVER_PORT"); ok {
		cfg.ServerPort = v
	}
	if v, ok := os.LookupEnv("TENNIS_MAX_STEP"); ok {
		step, err := strconv.ParseFloat(v, 32)
		if err != nil || step < 0 {
			return cfg, fmt.Errorf("TENNIS_MAX_STEP: invalid value %q", v)
		}
		cfg.MaxStep = float32(step)
	}
	if v, ok := os.LookupEnv("TENNIS_SEED"); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("TENNIS_SEED: %w", err)
		}
		cfg.Seed = seed
	}
	if v, ok := os.LookupEnv("TENNIS_TICK"); ok {
		tick, err := time.ParseDuration(v)
		if err != nil || tick <= 0 {
			return cfg, fmt.Errorf("TENNIS_TICK: invalid value %q", v)
		}
		cfg.Tick = tick
	}
	if v, ok := os.LookupEnv("TENNIS_LOG_LEVEL"); ok {
		if err := cfg.LogLevel.UnmarshalText([]byte(strings.TrimSpace(v))); err != nil {
			return cfg, fmt.Errorf("TENNIS_LOG_LEVEL: %w", err)
		}
	}
	if v, ok := os.LookupEnv("TENNIS_LOG_FILE"); ok {
		cfg.LogFile = v
	}

	return cfg, nil
}

// RandSeed devolve Seed ou, se zero, o relógio (partidas não reproduzíveis).
func (c Config) RandSeed() uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(time.Now().UnixNano())
}

// ServerURL é o endereço websocket que o cliente disca.
func (c Config) ServerURL() string {
	return fmt.Sprintf("ws://%s:%s/ws", c.ServerDomain, c.ServerPort)
}

// NewLogger instala como padrão um slog em texto, no nível configurado.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	l := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.LogLevel}))
	slog.SetDefault(l)
	return l
}
