package printer

import (
	"fmt"
	"testing"

	"github.com/cssckit/cssc/ast"
)

// buildForest generates a forest with n top-level rules of mixed shapes.
func buildForest(n int) []ast.Node {
	forest := make([]ast.Node, 0, n)
	for i := 0; i < n; i++ {
		switch i % 4 {
		case 0:
			forest = append(forest, ast.NewRule(fmt.Sprintf(".u-%d", i), []ast.Node{
				ast.NewDeclaration("margin", "0"),
				ast.NewDeclaration("padding", "0.25rem"),
			}))
		case 1:
			forest = append(forest, ast.NewRule("@media (min-width: 640px)", []ast.Node{
				ast.NewRule(fmt.Sprintf(".sm-u-%d", i), []ast.Node{
					ast.NewDeclaration("display", "flex"),
				}),
			}))
		case 2:
			forest = append(forest, ast.NewRule(fmt.Sprintf("@property --v-%d", i), []ast.Node{
				ast.NewDeclaration("syntax", `"*"`),
				ast.NewDeclaration("inherits", "false"),
			}))
		default:
			forest = append(forest, ast.NewComment(fmt.Sprintf("section %d", i)))
		}
	}
	return forest
}

func BenchmarkPrint(b *testing.B) {
	sizes := []struct {
		name string
		n    int
	}{
		{name: "SmallTree", n: 10},
		{name: "MediumTree", n: 1000},
	}

	for _, size := range sizes {
		forest := buildForest(size.n)

		b.Run(size.name, func(b *testing.B) {
			p := New()
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				_ = p.Print(forest)
			}
		})

		b.Run(size.name+"Tracked", func(b *testing.B) {
			p := New(WithDestinations(true))
			b.ReportAllocs()

			// Mappings accumulate on nodes, so each iteration gets a
			// fresh tree.
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				tracked := buildForest(size.n)
				b.StartTimer()
				_ = p.Print(tracked)
			}
		})
	}
}
