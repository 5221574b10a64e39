package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/windshadowstudio/engine/internal/app"
	"github.com/windshadowstudio/engine/internal/constants"
	"github.com/windshadowstudio/engine/internal/log"
)

func main() {
	listenAddr := flag.String("listen-addr", "127.0.0.1:0", "Address to listen on; port 0 picks a free port")
	runtimeDir := flag.String("runtime-dir", defaultRuntimeDir(), "Directory for the port file and run history")
	debug := flag.Bool("debug", false, "Turn on debugging output")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("windshadow-engine %s\n", constants.Version)
		os.Exit(0)
	}

	// Set up logging
	if err := log.Init(*debug); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	application := app.New(*listenAddr, *runtimeDir, log.GetSugaredLogger())
	if err := application.Run(context.Background()); err != nil {
		log.Errorf("Application error: %v", err)
		os.Exit(1)
	}
}

// defaultRuntimeDir honors the WSS_RUNTIME_DIR override the desktop
// shell sets, falling back to a dot directory in the user's home.
func defaultRuntimeDir() string {
	if dir := os.Getenv("WSS_RUNTIME_DIR"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".windshadowstudio"
	}
	return filepath.Join(home, ".windshadowstudio")
}
