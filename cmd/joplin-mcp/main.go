package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/roivaz/joplin-mcp/internal/config"
	mcpserver "github.com/roivaz/joplin-mcp/internal/mcp"
)

func main() {
	root := &cobra.Command{
		Use:   "joplin-mcp",
		Short: "Joplin MCP server",
		RunE:  run,
	}

	root.PersistentFlags().Int("joplin-port", config.DefaultPort, "Joplin Web Clipper API port")
	root.PersistentFlags().Bool("joplin-auto-launch", true, "Launch Joplin desktop when the API is unreachable")
	root.PersistentFlags().String("log-level", "info", "Log level")
	root.Flags().String("transport", "stdio", "Transport to serve on (stdio or http)")
	root.Flags().String("host", "127.0.0.1", "HTTP host")
	root.Flags().Int("port", 8000, "HTTP port")

	config.Init(root)

	if err := root.Execute(); err != nil {
		log.Fatalf("command failed: %v", err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	srv := mcpserver.New(mcpserver.DefaultConfig())

	transport, _ := cmd.Flags().GetString("transport")
	if transport != "http" {
		return srv.ServeStdio()
	}

	host, _ := cmd.Flags().GetString("host")
	port, _ := cmd.Flags().GetInt("port")
	addr := host + ":" + strconv.Itoa(port)

	httpServer := &http.Server{
		Addr:    addr,
		Handler: srv.Handler,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("MCP server listening on %s", addr)
		errCh <- httpServer.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(ctx)
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	}
}
