package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/ironsheep/color-mixer/internal/mixer"
	"github.com/ironsheep/color-mixer/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("color-mixer %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("color-mixer - HTTP service that mixes yellow and blue")
			fmt.Println()
			fmt.Println("Usage: color-mixer [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  COLOR_MIXER_ADDR=127.0.0.1:8080   Listen address")
			fmt.Println("  COLOR_MIXER_STATIC_DIR=static     Front-end directory ('' disables)")
			fmt.Println("  COLOR_MIXER_MAX_COLORS=1000       Mixer capacity")
			fmt.Println("  COLOR_MIXER_CACHE_SIZE=100        Result cache size (0 disables)")
			fmt.Println("  COLOR_MIXER_LOG_LEVEL=debug       Enable debug logging")
			return
		}
	}

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	addr := envString("COLOR_MIXER_ADDR", "127.0.0.1:8080")
	staticDir := envString("COLOR_MIXER_STATIC_DIR", "static")
	maxColors := envInt("COLOR_MIXER_MAX_COLORS", mixer.DefaultMaxColors)
	cacheSize := envInt("COLOR_MIXER_CACHE_SIZE", mixer.DefaultCacheSize)

	if os.Getenv("COLOR_MIXER_LOG_LEVEL") == "debug" {
		log.Printf("color-mixer v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		log.Printf("addr=%s staticDir=%q maxColors=%d cacheSize=%d",
			addr, staticDir, maxColors, cacheSize)
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatalf("failed to listen on %s: %v", addr, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.New(mixer.NewMixer(maxColors, cacheSize), staticDir)
	if err := srv.Serve(ctx, listener); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// envString returns the value of the environment variable or the fallback
// when unset. An explicitly empty value is respected.
func envString(name, fallback string) string {
	if v, ok := os.LookupEnv(name); ok {
		return v
	}
	return fallback
}

// envInt parses an integer environment variable, falling back on unset or
// unparsable values.
func envInt(name string, fallback int) int {
	v, ok := os.LookupEnv(name)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("ignoring %s=%q: %v", name, v, err)
		return fallback
	}
	return n
}
