package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/kirana/app/controllers"
	"github.com/shashiranjanraj/kirana/internal/server"
)

// kirana run — start the HTTP server.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the HTTP server (alias: serve)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.Start()
	},
}

// kirana serve — alias kept for muscle memory.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.Start()
	},
}

// kirana route:list — print the registered surface.
var routeListCmd = &cobra.Command{
	Use:   "route:list",
	Short: "List all registered named routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Handlers are never invoked while listing, so a controller
		// without a live service is fine here.
		r := server.NewRouter(controllers.NewProductController(nil))

		infos := r.Routes()
		if len(infos) == 0 {
			fmt.Println("No named routes registered.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "METHOD\tPATH\tNAME")
		fmt.Fprintln(w, "------\t----\t----")
		for _, ri := range infos {
			fmt.Fprintf(w, "%s\t%s\t%s\n", ri.Method, ri.Path, ri.Name)
		}
		return w.Flush()
	},
}
