package main

import (
	"fmt"

	"github.com/dhamidi/vb6parse/vb6/project"
	"github.com/spf13/cobra"
)

func newProjectCmd() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "project <file.vbp>",
		Short: "Show the structure of a VB6 project file",
		Long:  `Display the forms, modules, classes, and references listed in a .vbp project file.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProject(args[0], check)
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "parse every source file and report diagnostics")

	return cmd
}

func runProject(path string, check bool) error {
	proj, err := project.Load(path)
	if err != nil {
		return err
	}

	fmt.Printf("Project: %s\n", proj.Name)
	fmt.Printf("Type:    %s\n", proj.Type)
	if proj.Title != "" {
		fmt.Printf("Title:   %s\n", proj.Title)
	}
	if proj.Startup != "" {
		fmt.Printf("Startup: %s\n", proj.Startup)
	}
	fmt.Printf("Version: %d.%d.%d\n", proj.MajorVer, proj.MinorVer, proj.RevisionVer)

	if len(proj.References) > 0 {
		fmt.Printf("\nReferences:\n")
		for _, ref := range proj.References {
			fmt.Printf("  %s (%s)\n", ref.Description, ref.Version)
		}
	}

	files := proj.SourceFiles()
	fmt.Printf("\nSources: %d files\n", len(files))
	for _, f := range files {
		fmt.Printf("  %s\n", f)
	}

	if !check {
		return nil
	}

	trees, err := proj.ParseSources()
	if err != nil {
		return err
	}

	total := 0
	for _, st := range trees {
		for _, d := range st.Diagnostics {
			fmt.Println(d)
		}
		total += len(st.Diagnostics)
	}
	if total > 0 {
		return fmt.Errorf("%d problems", total)
	}
	fmt.Printf("\nAll sources parse cleanly.\n")
	return nil
}
