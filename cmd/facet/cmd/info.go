package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"

	"github.com/go-facet/facet/pkg/app"
)

func init() {
	RegisterCommand(&Command{
		Name:  "info",
		Short: "Show resolved project settings",
		Long: `Show the current project's module path and resolved facet.yaml
settings (title, serving address, resource directory).`,
		Usage: "facet info",
		Run:   runInfo,
	})
}

func runInfo(args []string) error {
	root, err := findProjectRoot()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(filepath.Join(root, "go.mod"))
	if err != nil {
		return fmt.Errorf("failed to read go.mod: %w", err)
	}
	mf, err := modfile.Parse("go.mod", data, nil)
	if err != nil {
		return fmt.Errorf("failed to parse go.mod: %w", err)
	}
	modulePath := ""
	if mf.Module != nil {
		modulePath = mf.Module.Mod.Path
	}

	opts, err := app.ResolveOptions(root)
	if err != nil {
		return err
	}
	if opts.Address == "" {
		opts.Address = "127.0.0.1"
	}
	if opts.Port == 0 {
		opts.Port = 8081
	}
	if opts.ResourceDir == "" {
		opts.ResourceDir = "res"
	}

	fmt.Printf("Project root:  %s\n", root)
	fmt.Printf("Module path:   %s\n", modulePath)
	fmt.Printf("Title:         %s\n", orDefault(opts.Title, "(delegate type name)"))
	fmt.Printf("Serving:       %s:%d\n", opts.Address, opts.Port)
	fmt.Printf("Resource dir:  %s\n", opts.ResourceDir)
	return nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// findProjectRoot walks up from the current directory to find go.mod.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}
