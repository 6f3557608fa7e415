package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pstuifzand/tui-sidebar/internal/model"
	"github.com/pstuifzand/tui-sidebar/internal/storage"
	"github.com/pstuifzand/tui-sidebar/internal/tree"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "navtree",
		Short:        "Inspect and edit sidebar item files",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Report structural problems
  navtree lint sidebar.json

  # Show the tree with every container open
  navtree print --all sidebar.json

  # Move item 7 into item 2 and save
  navtree move --write sidebar.json 7 2 inside
`),
	}
	cmd.AddCommand(newLintCmd(), newNormalizeCmd(), newPrintCmd(), newMoveCmd())
	return cmd
}

func readDocument(path string) (*model.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return storage.DecodeDocument(data)
}

// writeDocument saves doc to path when write is set, and prints it otherwise
func writeDocument(cmd *cobra.Command, path string, doc *model.Document, write bool) error {
	if write {
		return storage.NewJSONStore(path).Save(doc)
	}
	data, err := storage.EncodeDocument(doc)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func newLintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lint FILE",
		Short: "Report duplicate ids, broken parents, cycles and order clashes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(args[0])
			if err != nil {
				return err
			}
			problems := tree.Validate(doc.Items)
			for _, p := range problems {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			if len(problems) > 0 {
				return fmt.Errorf("%s: %d problem(s)", args[0], len(problems))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d items, no problems\n", args[0], len(doc.Items))
			return nil
		},
	}
}

func newNormalizeCmd() *cobra.Command {
	var write bool
	cmd := &cobra.Command{
		Use:   "normalize FILE",
		Short: "Renumber every sibling group to 0..n-1",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(args[0])
			if err != nil {
				return err
			}
			doc.Items = tree.Normalize(doc.Items)
			return writeDocument(cmd, args[0], doc, write)
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the result back to FILE")
	return cmd
}

func newPrintCmd() *cobra.Command {
	var (
		all    bool
		query  string
		expand []string
	)
	cmd := &cobra.Command{
		Use:   "print FILE",
		Short: "Print the visible rows as an indented tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(args[0])
			if err != nil {
				return err
			}
			forest := tree.Build(doc.Items)
			expanded := tree.NewExpandedSet(expand...)
			if all {
				for _, n := range tree.Flatten(forest) {
					if n.HasChildren() {
						expanded.Add(n.ID)
					}
				}
			}
			for _, n := range tree.Project(forest, expanded, query) {
				marker := " "
				switch {
				case n.HasChildren() && (expanded.Has(n.ID) || query != ""):
					marker = "▾"
				case n.HasChildren():
					marker = "▸"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s%s %s  [%s]\n", strings.Repeat("  ", n.Depth), marker, n.Name, n.ID)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "expand every container")
	cmd.Flags().StringVarP(&query, "query", "q", "", "filter by name; a leading ~ matches fuzzily")
	cmd.Flags().StringSliceVarP(&expand, "expand", "e", nil, "ids of containers to expand")
	return cmd
}

func newMoveCmd() *cobra.Command {
	var write bool
	cmd := &cobra.Command{
		Use:   "move FILE SOURCE TARGET before|after|inside",
		Short: "Move SOURCE relative to TARGET",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos := model.ParseDropPosition(args[3])
			if pos == model.DropNone {
				return fmt.Errorf("unknown position %q", args[3])
			}
			doc, err := readDocument(args[0])
			if err != nil {
				return err
			}
			items, changed := tree.Move(doc.Items, args[1], args[2], pos)
			if !changed {
				return fmt.Errorf("moving %s %s %s changes nothing", args[1], pos, args[2])
			}
			doc.Items = items
			return writeDocument(cmd, args[0], doc, write)
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the result back to FILE")
	return cmd
}
