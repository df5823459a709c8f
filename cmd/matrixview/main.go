package main

import (
	"flag"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"matrixview/internal/api"
	"matrixview/internal/palette"
	"matrixview/internal/settings"
	"matrixview/internal/tui"
)

func main() {
	configPath := flag.String("config", "matrixview.yaml", "settings file")
	serve := flag.Bool("serve", false, "serve the grid over HTTP instead of the terminal UI")
	writeConfig := flag.Bool("write-config", false, "write the effective settings to -config and exit")
	flag.Parse()

	cfg, err := settings.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	path := cfg.Data
	if flag.NArg() > 0 {
		path = flag.Arg(0)
	}

	if *writeConfig {
		if err := saveConfig(cfg, path, *configPath); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s", *configPath)
		return
	}

	if *serve {
		s := api.NewServer(path, cfg.Query, palette.Default().Resolve)
		if path != "" {
			if _, err := s.Refresh(); err != nil {
				log.Printf("initial load failed: %v", err)
			}
		}
		log.Printf("serving on %s", cfg.Addr)
		if err := api.SetupRouter(s).Run(cfg.Addr); err != nil {
			log.Fatal("server stopped: ", err)
		}
		return
	}

	// the alt screen owns stdout; logs go to a file or nowhere
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "matrixview")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	var m tea.Model
	if path != "" {
		m = tui.NewWithPath(cfg, path)
	} else {
		m = tui.New(cfg)
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		log.Fatal(err)
	}
}

// saveConfig records data as the default dataset and writes cfg to dest.
func saveConfig(cfg settings.Settings, data, dest string) error {
	cfg.Data = data
	if err := cfg.Validate(); err != nil {
		return err
	}
	return cfg.Save(dest)
}
