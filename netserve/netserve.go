// Package netserve implements Grin's TCP server mode: one engine per
// connection, each client sending its own program and input over the same
// socket, adapted from a Go-Mix interpreter's main.startServer/
// handleClient pattern, generalized from a shared-process REPL server to
// one independent Grin session per connection.
package netserve

import (
	"fmt"
	"net"

	"github.com/fatih/color"

	"github.com/dbgrin/grin/config"
	"github.com/dbgrin/grin/driver"
)

var (
	cyanColor = color.New(color.FgCyan)
	redColor  = color.New(color.FgRed)
)

// Serve listens on addr (e.g. ":8080") and runs one Grin session per
// accepted connection. It returns only if listening on addr fails; an
// Accept error is logged and the loop keeps accepting, so once listening
// it runs until the process is killed. Each session reads its program and
// any INSTR/INNUM input from
// the connection and writes PRINT output and error reports back to it,
// exactly as driver.Run does for stdin/stdout.
func Serve(addr string, cfg config.Config) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("netserve: listen %s: %w", addr, err)
	}
	defer listener.Close()

	cyanColor.Printf("grin server listening on %s\n", addr)
	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Printf("grin server: accept error: %v\n", err)
			continue
		}
		go handleConn(conn, cfg)
	}
}

func handleConn(conn net.Conn, cfg config.Config) {
	defer conn.Close()
	cyanColor.Printf("grin server: client connected from %s\n", conn.RemoteAddr())
	driver.Run(conn, conn, cfg)
	cyanColor.Printf("grin server: client disconnected from %s\n", conn.RemoteAddr())
}
