// Command grin is the Grin interpreter's entry point: stdin (interactive
// when a terminal, piped otherwise), -file, -config, -serve, and -version.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/dbgrin/grin/config"
	"github.com/dbgrin/grin/driver"
	"github.com/dbgrin/grin/netserve"
	"github.com/dbgrin/grin/replio"
)

const (
	versionString = "v1.0.0"
	author        = "dbgrin contributors"
	license       = "MIT"
	rule          = "----------------------------------------------------------------"
	art           = `
   ____ ____  ___ _   _
  / ___|  _ \|_ _| \ | |
 | |  _| |_) || ||  \| |
 | |_| |  _ < | || |\  |
  \____|_| \_\___|_| \_|
`
)

var (
	cyanColor = color.New(color.FgCyan)
	redColor  = color.New(color.FgRed)
)

func main() {
	fileFlag := flag.String("file", "", "run a Grin program from this file instead of reading from stdin")
	configFlag := flag.String("config", "", "path to a YAML configuration file")
	serveFlag := flag.String("serve", "", "listen for Grin sessions on this TCP port instead of running locally")
	versionFlag := flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	if *versionFlag {
		printVersion()
		return
	}

	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			redColor.Fprintf(os.Stderr, "grin: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	color.NoColor = !cfg.Color

	if *serveFlag != "" {
		if err := netserve.Serve(":"+*serveFlag, cfg); err != nil {
			redColor.Fprintf(os.Stderr, "grin: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *fileFlag != "" {
		f, err := os.Open(*fileFlag)
		if err != nil {
			redColor.Fprintf(os.Stderr, "grin: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		os.Exit(driver.Run(f, os.Stdout, cfg))
	}

	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		os.Exit(runInteractive(cfg))
	}
	os.Exit(driver.Run(os.Stdin, os.Stdout, cfg))
}

func runInteractive(cfg config.Config) int {
	session, err := replio.New(cfg.Prompt, "", replio.Banner{
		Art:     art,
		Version: versionString,
		Author:  author,
		License: license,
		Rule:    rule,
	})
	if err != nil {
		redColor.Fprintf(os.Stderr, "grin: %v\n", err)
		return 1
	}
	defer session.Close()

	session.PrintBanner()
	lines := session.ReadProgramLines()
	return driver.RunProgram(lines, session, os.Stdout, cfg)
}

func printVersion() {
	cyanColor.Println("grin - a Grin language interpreter")
	cyanColor.Printf("Version: %s\n", versionString)
	cyanColor.Printf("License: %s\n", license)
	cyanColor.Printf("Author : %s\n", author)
	fmt.Fprintln(os.Stdout)
}
