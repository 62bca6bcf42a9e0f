package printer

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/cssckit/cssc/ast"
)

func TestPrintRules(t *testing.T) {
	tests := []struct {
		name     string
		forest   []ast.Node
		expected string
	}{
		{
			name: "SimpleRule",
			forest: []ast.Node{
				ast.NewRule(".a", []ast.Node{
					ast.NewDeclaration("color", "blue"),
				}),
			},
			expected: ".a {\n  color: blue;\n}\n",
		},
		{
			name: "NestedRuleIndentation",
			forest: []ast.Node{
				ast.NewRule("@media (min-width: 640px)", []ast.Node{
					ast.NewRule(".a", []ast.Node{
						ast.NewDeclaration("display", "flex"),
					}),
				}),
			},
			expected: "@media (min-width: 640px) {\n  .a {\n    display: flex;\n  }\n}\n",
		},
		{
			name: "EmptyQualifiedRule",
			forest: []ast.Node{
				ast.NewRule(".empty", nil),
			},
			expected: ".empty {\n}\n",
		},
		{
			name: "StatementAtRule",
			forest: []ast.Node{
				ast.NewRule("@layer base, components", nil),
			},
			expected: "@layer base, components;\n",
		},
		{
			name: "NestedStatementAtRule",
			forest: []ast.Node{
				ast.NewRule("@supports (display: grid)", []ast.Node{
					ast.NewRule("@layer base", nil),
				}),
			},
			expected: "@supports (display: grid) {\n  @layer base;\n}\n",
		},
		{
			name: "Comment",
			forest: []ast.Node{
				ast.NewRule(".a", []ast.Node{
					ast.NewComment("! preserved"),
				}),
			},
			expected: ".a {\n  /*! preserved*/\n}\n",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, New().Print(test.forest))
		})
	}
}

func TestPrintDeclarations(t *testing.T) {
	t.Run("Important", func(t *testing.T) {
		decl := ast.NewDeclaration("color", "red")
		decl.Important = true

		css := New().Print([]ast.Node{decl})
		assert.Equal(t, "color: red!important;\n", css)
	})

	t.Run("SortMarkerSuppressed", func(t *testing.T) {
		forest := []ast.Node{
			ast.NewRule(".a", []ast.Node{
				ast.NewDeclaration(ast.SortProperty, "1"),
				ast.NewDeclaration("color", "red"),
			}),
		}
		assert.Equal(t, ".a {\n  color: red;\n}\n", New().Print(forest))
	})

	t.Run("EmptyValueSuppressed", func(t *testing.T) {
		forest := []ast.Node{
			ast.NewDeclaration("--marker", ""),
			ast.NewDeclaration("color", "red"),
		}
		assert.Equal(t, "color: red;\n", New().Print(forest))
	})
}

func TestPrintAtRoot(t *testing.T) {
	t.Run("HoistedAfterMainContent", func(t *testing.T) {
		forest := []ast.Node{
			ast.NewRule(ast.AtRootSelector, []ast.Node{
				ast.NewDeclaration("color", "red"),
			}),
			ast.NewRule(".a", []ast.Node{
				ast.NewDeclaration("color", "blue"),
			}),
		}

		assert.Equal(t, ".a {\n  color: blue;\n}\ncolor: red;\n", New().Print(forest))
	})

	t.Run("NestedAtRootRehoisted", func(t *testing.T) {
		forest := []ast.Node{
			ast.NewRule(ast.AtRootSelector, []ast.Node{
				ast.NewRule("@keyframes spin", []ast.Node{
					ast.NewRule("to", []ast.Node{
						ast.NewDeclaration("transform", "rotate(360deg)"),
					}),
				}),
				ast.NewRule(ast.AtRootSelector, []ast.Node{
					ast.NewDeclaration("--late", "1"),
				}),
			}),
			ast.NewRule(".a", []ast.Node{
				ast.NewDeclaration("color", "blue"),
			}),
		}

		expected := ".a {\n  color: blue;\n}\n" +
			"@keyframes spin {\n  to {\n    transform: rotate(360deg);\n  }\n}\n" +
			"--late: 1;\n"
		assert.Equal(t, expected, New().Print(forest))
	})

	t.Run("EncounterOrderPreserved", func(t *testing.T) {
		forest := []ast.Node{
			ast.NewRule(ast.AtRootSelector, []ast.Node{ast.NewDeclaration("--first", "1")}),
			ast.NewRule(ast.AtRootSelector, []ast.Node{ast.NewDeclaration("--second", "2")}),
		}

		assert.Equal(t, "--first: 1;\n--second: 2;\n", New().Print(forest))
	})
}

func TestPrintUtilitiesMarker(t *testing.T) {
	t.Run("TransparentAtTopLevel", func(t *testing.T) {
		forest := []ast.Node{
			ast.NewRule(ast.UtilitiesSelector, []ast.Node{
				ast.NewRule(".flex", []ast.Node{
					ast.NewDeclaration("display", "flex"),
				}),
			}),
		}

		assert.Equal(t, ".flex {\n  display: flex;\n}\n", New().Print(forest))
	})

	t.Run("TransparentAtCurrentDepth", func(t *testing.T) {
		forest := []ast.Node{
			ast.NewRule("@media print", []ast.Node{
				ast.NewRule(ast.UtilitiesSelector, []ast.Node{
					ast.NewDeclaration("color", "black"),
				}),
			}),
		}

		assert.Equal(t, "@media print {\n  color: black;\n}\n", New().Print(forest))
	})
}

func TestPrintPropertyDedup(t *testing.T) {
	property := func() *ast.Rule {
		return ast.NewRule("@property --foo", []ast.Node{
			ast.NewDeclaration("syntax", `"*"`),
			ast.NewDeclaration("inherits", "false"),
		})
	}

	t.Run("TopLevelDuplicatesSuppressed", func(t *testing.T) {
		forest := []ast.Node{property(), property()}

		expected := "@property --foo {\n  syntax: \"*\";\n  inherits: false;\n}\n"
		assert.Equal(t, expected, New().Print(forest))
	})

	t.Run("NestedNeverDeduplicated", func(t *testing.T) {
		forest := []ast.Node{
			property(),
			property(),
			ast.NewRule("@supports (color: red)", []ast.Node{property()}),
		}

		expected := "@property --foo {\n  syntax: \"*\";\n  inherits: false;\n}\n" +
			"@supports (color: red) {\n  @property --foo {\n    syntax: \"*\";\n    inherits: false;\n  }\n}\n"
		assert.Equal(t, expected, New().Print(forest))
	})

	t.Run("HoistedContentSharesSeenSet", func(t *testing.T) {
		forest := []ast.Node{
			property(),
			ast.NewRule(ast.AtRootSelector, []ast.Node{property()}),
		}

		// The hoisted duplicate is still subject to the dedup set
		// established during the first pass.
		expected := "@property --foo {\n  syntax: \"*\";\n  inherits: false;\n}\n"
		assert.Equal(t, expected, New().Print(forest))
	})

	t.Run("SeenSetScopedPerCall", func(t *testing.T) {
		forest := []ast.Node{property()}
		p := New()

		first := p.Print(forest)
		second := p.Print(forest)

		// A fresh render starts with an empty seen set.
		assert.Equal(t, first, second)
		assert.NotEqual(t, "", second)
	})
}

func TestPrintIdempotent(t *testing.T) {
	forest := []ast.Node{
		ast.NewRule(ast.AtRootSelector, []ast.Node{
			ast.NewDeclaration("--hoisted", "1"),
		}),
		ast.NewRule(".a", []ast.Node{
			ast.NewDeclaration("color", "blue"),
			ast.NewComment("note"),
		}),
	}

	p := New()
	first := p.Print(forest)
	second := p.Print(forest)

	// Printing must not consume the tree; hoisting moves references, not
	// ownership.
	assert.Equal(t, first, second)
}

func TestPrintDestinationTracking(t *testing.T) {
	t.Run("Disabled", func(t *testing.T) {
		decl := ast.NewDeclaration("color", "red")
		New().Print([]ast.Node{decl})
		assert.Equal(t, 0, len(decl.Mappings))
	})

	t.Run("ZeroWidthRangeAtFirstLine", func(t *testing.T) {
		rule := ast.NewRule(".a", []ast.Node{
			ast.NewDeclaration("color", "red"),
		})

		New(WithDestinations(true)).Print([]ast.Node{rule})

		assert.Equal(t, 1, len(rule.Mappings))
		dst := rule.Mappings[0].Destination
		assert.Equal(t, ast.Location{Line: 1, Column: 0}, dst.Start)
		assert.Equal(t, dst.Start, dst.End)
		assert.Zero(t, rule.Mappings[0].Source)

		decl := rule.Nodes[0].(*ast.Declaration)
		assert.Equal(t, 1, len(decl.Mappings))
		assert.Equal(t, ast.Location{Line: 2, Column: 2}, decl.Mappings[0].Destination.Start)
	})

	t.Run("MultiLineCommentShiftsFollowingLines", func(t *testing.T) {
		comment := ast.NewComment("line one\nline two")
		decl := ast.NewDeclaration("color", "red")

		New(WithDestinations(true)).Print([]ast.Node{comment, decl})

		assert.Equal(t, 1, comment.Mappings[0].Destination.Start.Line)
		// The comment occupies two physical lines, so the declaration
		// lands on line three.
		assert.Equal(t, 3, decl.Mappings[0].Destination.Start.Line)
	})

	t.Run("MultiLineDeclarationValue", func(t *testing.T) {
		multi := ast.NewDeclaration("--template", "a\nb\nc")
		after := ast.NewDeclaration("color", "red")

		New(WithDestinations(true)).Print([]ast.Node{multi, after})

		assert.Equal(t, 1, multi.Mappings[0].Destination.Start.Line)
		assert.Equal(t, 4, after.Mappings[0].Destination.Start.Line)
	})

	t.Run("ClosingBraceAdvancesCursor", func(t *testing.T) {
		rule := ast.NewRule(".a", []ast.Node{
			ast.NewDeclaration("color", "red"),
		})
		after := ast.NewDeclaration("--after", "1")

		New(WithDestinations(true)).Print([]ast.Node{rule, after})

		// .a {        line 1
		//   color...  line 2
		// }           line 3
		// --after...  line 4
		assert.Equal(t, 4, after.Mappings[0].Destination.Start.Line)
	})

	t.Run("MappingsAccumulateAcrossRenders", func(t *testing.T) {
		decl := ast.NewDeclaration("color", "red")
		p := New(WithDestinations(true))

		p.Print([]ast.Node{decl})
		p.Print([]ast.Node{decl})

		assert.Equal(t, 2, len(decl.Mappings))
	})

	t.Run("SuppressedNodesGetNoMapping", func(t *testing.T) {
		duplicate := ast.NewRule("@property --x", []ast.Node{
			ast.NewDeclaration("inherits", "false"),
		})
		forest := []ast.Node{
			ast.NewRule("@property --x", []ast.Node{
				ast.NewDeclaration("inherits", "false"),
			}),
			duplicate,
		}

		New(WithDestinations(true)).Print(forest)

		assert.Equal(t, 0, len(duplicate.Mappings))
	})
}
