package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/impacto/site/cmd/impacto-cli/internal/scaffold"
)

var (
	moduleName string
	moduleRoot string
)

var newModuleCmd = &cobra.Command{
	Use:   "new-module",
	Short: "Scaffold a new application module",
	Long: `Creates internal/modules/<name> with a module definition and a page handler,
then registers it in internal/app/modules.go and internal/app/dependencies.go.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNewModule(cmd.OutOrStdout(), moduleRoot, moduleName)
	},
}

func init() {
	newModuleCmd.Flags().StringVarP(&moduleName, "name", "n", "", "the name of the new module (e.g. 'casos')")
	newModuleCmd.Flags().StringVar(&moduleRoot, "root", ".", "repository root")
	_ = newModuleCmd.MarkFlagRequired("name")
	rootCmd.AddCommand(newModuleCmd)
}

func runNewModule(w io.Writer, root, name string) error {
	data, err := scaffold.NewData(name)
	if err != nil {
		return err
	}
	if err := scaffold.Generate(root, data); err != nil {
		return fmt.Errorf("failed to generate module: %w", err)
	}

	errModules := scaffold.RegisterModule(root, data)
	errDeps := scaffold.AddDependencies(root, data)
	if errModules != nil || errDeps != nil {
		fmt.Fprintln(w, "Automatic file updates failed. Please add the following manually:")
		if errModules != nil {
			fmt.Fprintf(w, " - modules.go: %v\n", errModules)
		}
		if errDeps != nil {
			fmt.Fprintf(w, " - dependencies.go: %v\n", errDeps)
		}
		printNextSteps(w, data)
		return nil
	}

	fmt.Fprintf(w, "✅ Created module '%s' in internal/modules/%s/\n", data.Name, data.Name)
	fmt.Fprintln(w, "✅ Registered it in internal/app/modules.go and internal/app/dependencies.go")
	return nil
}

func printNextSteps(w io.Writer, d scaffold.Data) {
	fmt.Fprintln(w, "-----------------------------------------------------------------")
	fmt.Fprintf(w, "\n1. In internal/app/dependencies.go:\n\n")
	fmt.Fprintf(w, "import \"%s\"\n\n", d.ImportPath())
	fmt.Fprintf(w, "func %s(deps Dependencies) %s.Dependencies {\n\treturn %s.Dependencies{Config: deps.Config}\n}\n",
		d.DepsFunc(), d.Name, d.Name)
	fmt.Fprintf(w, "\n2. In NewModules (internal/app/modules.go):\n\n")
	fmt.Fprintf(w, "%s.New(%s(deps)),\n", d.Name, d.DepsFunc())
	fmt.Fprintln(w, "-----------------------------------------------------------------")
}
