package cli

import (
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/xlab/treeprint"

	"github.com/cssckit/cssc/ast"
)

type InspectCmd struct {
	File     FileOrStdin `help:"IR input filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
	Mappings bool        `help:"Annotate nodes with their mapping record counts." short:"m"`
}

func (cmd *InspectCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	forest, err := ast.UnmarshalForest(cmd.File.Contents)
	if err != nil {
		printError(ctx.Stderr, NewErrorRenderer(cmd.File.Contents).Render(err))
		return fmt.Errorf("failed to decode %s", cmd.File.GetAbsoluteFilename())
	}

	tree := treeprint.New()
	tree.SetValue(cmd.File.Filename)
	cmd.addBranches(tree, forest)

	_, _ = fmt.Fprint(ctx.Stdout, tree.String())
	return nil
}

func (cmd *InspectCmd) addBranches(branch treeprint.Tree, nodes []ast.Node) {
	for _, n := range nodes {
		label := nodeLabel(n)

		if rule, ok := n.(*ast.Rule); ok {
			var child treeprint.Tree
			if meta := cmd.meta(n); meta != "" {
				child = branch.AddMetaBranch(meta, label)
			} else {
				child = branch.AddBranch(label)
			}
			cmd.addBranches(child, rule.Nodes)
			continue
		}

		if meta := cmd.meta(n); meta != "" {
			branch.AddMetaNode(meta, label)
		} else {
			branch.AddNode(label)
		}
	}
}

// meta returns the mapping-count annotation, or "" when disabled or empty.
func (cmd *InspectCmd) meta(n ast.Node) string {
	if !cmd.Mappings {
		return ""
	}
	count := len(ast.NodeMappings(n))
	if count == 0 {
		return ""
	}
	return fmt.Sprintf("%d mapping(s)", count)
}

func nodeLabel(n ast.Node) string {
	switch v := n.(type) {
	case *ast.Rule:
		return v.Selector
	case *ast.Declaration:
		if v.Important {
			return fmt.Sprintf("%s: %s !important", v.Property, v.Value)
		}
		return fmt.Sprintf("%s: %s", v.Property, v.Value)
	case *ast.Comment:
		return fmt.Sprintf("/*%s*/", v.Value)
	default:
		return n.Kind()
	}
}
