package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"golang.org/x/mod/module"
)

func init() {
	RegisterCommand(&Command{
		Name:  "init",
		Short: "Create a new facet project",
		Long: `Create a new facet project in a new directory.

This command creates:
  - A new directory at the specified path
  - go.mod with the specified module path
  - main.go with a starter application
  - facet.yaml with default serving settings
  - res/ for static assets

The project name is derived from the directory basename.
The module path defaults to the project name if not specified.

Examples:
  facet init myapp
  facet init myapp github.com/username/myapp
  facet init ./projects/myapp`,
		Usage: "facet init <directory> [module-path]",
		Run:   runInit,
	})
}

// initTemplateData contains the data for init template substitution.
type initTemplateData struct {
	ModulePath  string
	ProjectName string
}

// runInit creates a new facet project. The first argument is the directory
// path to create. The project name is derived from the directory's basename;
// an optional second argument overrides the Go module path.
func runInit(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("directory is required\n\nUsage: facet init <directory> [module-path]")
	}

	raw := args[0]
	if strings.HasPrefix(raw, "~") {
		return fmt.Errorf("tilde (~) is not expanded by facet; use an absolute path or $HOME instead")
	}

	dir := filepath.Clean(raw)
	if err := validateDirectory(dir); err != nil {
		return err
	}

	projectName := filepath.Base(dir)
	modulePath := projectName
	if len(args) > 1 {
		modulePath = args[1]
	}
	if modulePath == "" {
		return fmt.Errorf("module path cannot be empty")
	}
	if strings.Contains(modulePath, "/") {
		if err := module.CheckPath(modulePath); err != nil {
			return fmt.Errorf("invalid module path %q: %w", modulePath, err)
		}
	}

	if err := scaffoldProject(dir, projectName, modulePath); err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("Project created successfully!\n\n")
	fmt.Printf("Next steps:\n")
	fmt.Printf("  cd %s\n", dir)
	fmt.Printf("  go mod tidy\n")
	fmt.Printf("  go run .\n")

	return nil
}

// scaffoldProject creates the project directory and writes the template
// files. It has no side effects beyond the filesystem, so tests can call it
// without network access.
func scaffoldProject(dir, projectName, modulePath string) error {
	if _, err := os.Stat(dir); err == nil {
		return fmt.Errorf("directory %q already exists", dir)
	}

	fmt.Printf("Creating new facet project: %s\n", projectName)

	if err := os.MkdirAll(filepath.Join(dir, "res"), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	data := initTemplateData{
		ModulePath:  modulePath,
		ProjectName: projectName,
	}

	initFiles := []struct {
		tmpl     string
		destName string
	}{
		{goModTemplate, "go.mod"},
		{mainGoTemplate, "main.go"},
		{facetYamlTemplate, "facet.yaml"},
	}

	for _, f := range initFiles {
		if err := writeInitTemplate(dir, f.tmpl, f.destName, data); err != nil {
			os.RemoveAll(dir)
			return err
		}
		fmt.Printf("  Created %s\n", f.destName)
	}

	return nil
}

func writeInitTemplate(projectDir, tmplText, destName string, data initTemplateData) error {
	tmpl, err := template.New(destName).Parse(tmplText)
	if err != nil {
		return fmt.Errorf("failed to parse template for %s: %w", destName, err)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to execute template for %s: %w", destName, err)
	}

	destPath := filepath.Join(projectDir, destName)
	if err := os.WriteFile(destPath, []byte(buf.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", destName, err)
	}

	return nil
}

// validateDirectory rejects directory paths that would be dangerous to
// create or clean up: filesystem roots, the current/parent directory, and
// root-level absolute paths.
func validateDirectory(dir string) error {
	switch dir {
	case "", "/", ".", "..":
		return fmt.Errorf("directory %q is not a valid project location", dir)
	}
	if filepath.IsAbs(dir) && filepath.Dir(dir) == string(filepath.Separator) {
		return fmt.Errorf("refusing to create project at root-level path %q", dir)
	}
	return nil
}

const goModTemplate = `module {{.ModulePath}}

go 1.24.0

require github.com/go-facet/facet v0.1.0
`

const mainGoTemplate = `package main

import (
	"log"
	"net"

	"github.com/go-facet/facet/pkg/app"
	"github.com/go-facet/facet/pkg/bridge"
	"github.com/go-facet/facet/pkg/foreign"
	"github.com/go-facet/facet/pkg/host"
	"github.com/go-facet/facet/pkg/widgets"
)

type {{.ProjectName}}App struct {
	rt    foreign.Runtime
	label *widgets.Label
}

func (a *{{.ProjectName}}App) Declare(b *bridge.Builder) error {
	a.label = widgets.NewLabel(a.rt, "Hello from {{.ProjectName}}")
	return b.Register("label", a.label)
}

func (a *{{.ProjectName}}App) Build() widgets.Widget {
	box := widgets.NewVBox(a.rt)
	box.SetSize(widgets.Fraction(100), widgets.Fraction(100))
	box.Append(a.label)
	return box
}

func main() {
	// The hosted toolkit interpreter listens on the bridge port.
	conn, err := net.Dial("tcp", "127.0.0.1:9000")
	if err != nil {
		log.Fatal(err)
	}
	rt := host.New(conn)
	defer rt.Close()

	opts, err := app.ResolveOptions(".")
	if err != nil {
		log.Fatal(err)
	}
	if err := app.New(rt, &{{.ProjectName}}App{rt: rt}, opts).Start(); err != nil {
		log.Fatal(err)
	}
}
`

const facetYamlTemplate = `app:
  title: {{.ProjectName}}
  resource_dir: res
server:
  address: 127.0.0.1
  port: 8081
`
