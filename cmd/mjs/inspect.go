package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/lineCode/mjs-1/internal/ast"
	"github.com/lineCode/mjs-1/internal/diag"
	"github.com/lineCode/mjs-1/internal/driver"
	"github.com/lineCode/mjs-1/internal/heap"
	"github.com/lineCode/mjs-1/internal/source"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Load a source file's string literals onto a heap and explore it",
	Long: `inspect parses a source file, copies the string literals of its
top-level statements onto a fresh heap, and either dumps the resulting heap as msgpack
(--dump) or opens an interactive table of live objects. A literal bound
directly to a variable ("var x = ...") is treated as rooted; every
other literal (an expression statement's value, a call argument, an
if-test, ...) is never retained anywhere, so it is dropped from the
root set the first time "g" forces a collection, and its row vanishes.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		capacitySlots, _ := cmd.Flags().GetUint32("capacity")
		dump, _ := cmd.Flags().GetBool("dump")
		maxDiag, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")

		res, err := driver.ParseFile(args[0], maxDiag)
		if err != nil {
			return err
		}
		if res.Bag.Len() > 0 {
			fmt.Fprintln(cmd.ErrOrStderr(), diag.Format(res.Bag.Items(), res.FileSet, true))
		}
		if res.Bag.HasErrors() {
			return fmt.Errorf("%s: parse failed", args[0])
		}

		h := driver.NewScratchHeap(capacitySlots)
		in := source.NewInterner()
		rooted, ephemeral := loadLiterals(h, in, res.Builder, res.File)
		defer func() {
			for _, hd := range rooted {
				hd.Close()
			}
			for _, hd := range ephemeral {
				hd.Close()
			}
			h.Close()
		}()

		if dump {
			return h.Dump(cmd.OutOrStdout())
		}

		model := newInspectModel(h, in, rooted, ephemeral)
		program := tea.NewProgram(model, tea.WithOutput(cmd.OutOrStdout()))
		_, err = program.Run()
		return err
	},
}

func init() {
	inspectCmd.Flags().Uint32("capacity", 256, "heap capacity in slots")
	inspectCmd.Flags().Bool("dump", false, "write the heap as msgpack instead of opening the interactive view")
}

// loadLiterals walks file's top-level statements and copies each string
// literal it meets onto h as a tracked string object, interning its text
// along the way so the inspector can later resolve the id back to text.
// Number and boolean literals have no heap representation in this core,
// so they are skipped. The walk descends into blocks, var, expression,
// if, return and throw statements, and into array, operator, call, new
// and sequence expressions; literals anywhere else (loop, with, switch,
// try and function bodies; object literals, conditionals, member
// expressions) are not loaded.
//
// A literal is rooted if it flows into a variable's binding — directly
// ("var x = \"lit\"") or nested inside an array literal that does
// ("var x = [\"lit\"]"), since the array keeps its elements alive for as
// long as it is itself alive. Every other literal — an expression
// statement's discarded value, a call argument, an if-test, an operand
// combined by a binary/logical/assignment operator — is never stored
// anywhere a root can reach, so it is ephemeral: nothing outlives the
// statement that produced it.
func loadLiterals(h *heap.Heap, in *source.Interner, b *ast.Builder, file ast.FileID) (rooted, ephemeral []heap.Handle[heap.String]) {
	f := b.Files.Get(file)
	var walkStmt func(id ast.StmtID)
	var walkExpr func(id ast.ExprID, isRoot bool)

	alloc := func(text string, isRoot bool) {
		sid := in.Intern(text)
		hd, err := h.AllocString(sid)
		if err != nil {
			return
		}
		if isRoot {
			rooted = append(rooted, hd)
		} else {
			ephemeral = append(ephemeral, hd)
		}
	}

	walkExpr = func(id ast.ExprID, isRoot bool) {
		if !id.IsValid() {
			return
		}
		e := b.Exprs.Get(id)
		switch e.Kind {
		case ast.ExprStringLit:
			alloc(strings.Trim(e.Text, `"'`), isRoot)
		case ast.ExprArray:
			for _, el := range e.Elements {
				walkExpr(el, isRoot)
			}
		case ast.ExprBinary, ast.ExprLogical, ast.ExprAssign:
			walkExpr(e.Left, false)
			walkExpr(e.Right, false)
		case ast.ExprUnary, ast.ExprUpdate:
			walkExpr(e.Operand, false)
		case ast.ExprCall, ast.ExprNew:
			walkExpr(e.Callee, false)
			for _, a := range e.Args {
				walkExpr(a, false)
			}
		case ast.ExprSequence:
			for _, sub := range e.Exprs {
				walkExpr(sub, false)
			}
		}
	}

	walkStmt = func(id ast.StmtID) {
		if !id.IsValid() {
			return
		}
		s := b.Stmts.Get(id)
		switch s.Kind {
		case ast.StmtBlock:
			for _, c := range s.Body {
				walkStmt(c)
			}
		case ast.StmtVarDecl:
			for _, d := range s.Decls {
				walkExpr(d.Init, true)
			}
		case ast.StmtExpr:
			walkExpr(s.Expr, false)
		case ast.StmtIf:
			walkExpr(s.Test, false)
			walkStmt(s.Cons)
			walkStmt(s.Alt)
		case ast.StmtReturn, ast.StmtThrow:
			walkExpr(s.Expr, false)
		}
	}

	for _, s := range f.Body {
		walkStmt(s)
	}
	return rooted, ephemeral
}

type inspectModel struct {
	h         *heap.Heap
	in        *source.Interner
	rooted    []heap.Handle[heap.String]
	ephemeral []heap.Handle[heap.String]
	tbl       table.Model
	gcCount   int
}

func newInspectModel(h *heap.Heap, in *source.Interner, rooted, ephemeral []heap.Handle[heap.String]) *inspectModel {
	columns := []table.Column{
		{Title: "Pos", Width: 8},
		{Title: "Size", Width: 6},
		{Title: "Value", Width: 40},
	}
	t := table.New(table.WithColumns(columns), table.WithFocused(true), table.WithHeight(12))
	t.SetStyles(table.Styles{
		Header:   lipgloss.NewStyle().Bold(true),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	})
	m := &inspectModel{h: h, in: in, rooted: rooted, ephemeral: ephemeral, tbl: t}
	m.refresh()
	return m
}

func (m *inspectModel) refresh() {
	rows := make([]table.Row, 0, len(m.rooted)+len(m.ephemeral))
	for _, hd := range m.rooted {
		rows = append(rows, m.row(hd))
	}
	for _, hd := range m.ephemeral {
		rows = append(rows, m.row(hd))
	}
	m.tbl.SetRows(rows)
}

func (m *inspectModel) row(hd heap.Handle[heap.String]) table.Row {
	sid := m.h.String(hd)
	text, _ := m.in.Lookup(sid)
	return table.Row{fmt.Sprintf("%d", hd.Pos()), fmt.Sprintf("%d", len(text)), text}
}

func (m *inspectModel) Init() tea.Cmd { return nil }

func (m *inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"))):
			return m, tea.Quit
		case key.Matches(msg, key.NewBinding(key.WithKeys("g"))):
			// Drop the ephemeral literals from the root set before
			// collecting, the first time only — they were never
			// retained by anything, so this is where they become
			// unreachable and the collector reclaims them.
			for _, hd := range m.ephemeral {
				hd.Close()
			}
			m.ephemeral = nil
			m.h.GarbageCollect()
			m.gcCount++
			m.refresh()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.tbl, cmd = m.tbl.Update(msg)
	return m, cmd
}

func (m *inspectModel) View() string {
	header := lipgloss.NewStyle().Bold(true).Render(
		fmt.Sprintf("heap: %d/%d slots used, %d collections run", m.h.UsedSlots(), m.h.Capacity(), m.gcCount))
	help := lipgloss.NewStyle().Faint(true).Render("g: collect   q: quit")
	return header + "\n\n" + m.tbl.View() + "\n" + help
}
