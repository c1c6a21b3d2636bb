package cli

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Makepad-fr/dixit/internal/config"
	"github.com/Makepad-fr/dixit/internal/model"
	"github.com/Makepad-fr/dixit/internal/quotes"
	"github.com/Makepad-fr/dixit/internal/store/jsonstore"
	"github.com/Makepad-fr/dixit/internal/ui"
)

// Options tune behavior from root flags.
type Options struct {
	Yes bool // answer yes to every confirmation prompt
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	if len(args) == 0 {
		PrintHelp()
		return 2
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "show":
		if len(a) > 1 {
			ui.Fail("usage: dixit show [category]")
			return 2
		}
		return doShow(a, opt)

	case "ls":
		return doList(opt)

	case "add":
		return doAdd(a, opt)

	case "categories":
		return doCategories(opt)

	case "use":
		if len(a) != 1 {
			ui.Fail("usage: dixit use <category|all>")
			return 2
		}
		return doUse(a[0], opt)

	case "import":
		if len(a) != 1 {
			ui.Fail("usage: dixit import <file.json>")
			return 2
		}
		return doImport(a[0], opt)

	case "export":
		if len(a) > 1 {
			ui.Fail("usage: dixit export [file.json]")
			return 2
		}
		return doExport(a, opt)

	case "last":
		return doLast(opt)

	case "clear":
		return doClear(opt)
	}

	ui.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(os.Stderr)
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Printf(`dixit - quotes in your terminal

Usage:
  dixit                      Open the interactive browser
  dixit <subcommand> [args]

Subcommands:
  show [category]            Print a random quote (remembered filter when omitted)
  ls                         List quotes matching the current filter
  add [flags] <text...>      Add a quote (-author, -category flags)
  categories                 List known categories with counts
  use <category|all>         Remember a category filter
  import <file.json>         Merge quotes from a JSON file
  export [file.json]         Write all quotes to a file (default quotes.json)
  last                       Reprint the last quote shown this session
  clear                      Delete every quote

Examples:
  dixit add -author "Seneca" -category Wisdom "Luck is what happens when preparation meets opportunity."
  dixit use Wisdom
  dixit show
`)
}

// OpenStore hydrates the quote store with the given confirmation
// capability, wiring config, durable and session storage together.
func OpenStore(confirm quotes.Confirmer) (*quotes.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	durable, err := jsonstore.Durable(cfg.DataDir)
	if err != nil {
		return nil, err
	}
	return quotes.New(durable, jsonstore.Session(), quotes.WithConfirmer(confirm)), nil
}

func confirmer(opt Options) quotes.Confirmer {
	if opt.Yes {
		return quotes.ConfirmerFunc(func(string) bool { return true })
	}
	return quotes.ConfirmerFunc(promptYesNo)
}

// promptYesNo asks on stderr and reads one line from stdin. Anything
// but an explicit yes counts as no.
func promptYesNo(prompt string) bool {
	fmt.Fprintf(os.Stderr, "%s [y/N]: ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

// -------------- subcommand impls ----------------

func doShow(a []string, opt Options) int {
	s, err := OpenStore(confirmer(opt))
	if err != nil {
		ui.Fail("open: " + err.Error())
		return 1
	}
	category := s.SelectedCategory()
	if len(a) == 1 {
		category = a[0]
	}
	q, err := s.Pick(category)
	if err != nil {
		ui.Fail(fmt.Sprintf("no quotes for category %q", category))
		return 1
	}
	ui.Panel(ui.QuoteLines(q.Text, q.Author, q.Category, 64))
	return 0
}

func doList(opt Options) int {
	s, err := OpenStore(confirmer(opt))
	if err != nil {
		ui.Fail("open: " + err.Error())
		return 1
	}
	category := s.SelectedCategory()
	filtered := s.Filtered(category)

	header := fmt.Sprintf("%s  %s %s  %s %d/%d",
		ui.C(ui.Current().Title, "Quotes"),
		ui.C(ui.Current().Accent, "filter"), category,
		ui.C(ui.Current().Accent, "showing"), len(filtered), s.Len(),
	)

	lines := []string{header, ""}
	if len(filtered) == 0 {
		lines = append(lines, ui.C(ui.Current().Muted, "no quotes"))
	}
	for i, q := range filtered {
		attribution := q.Author
		if attribution == "" {
			attribution = "Unknown"
		}
		entry := fmt.Sprintf("%s %s %s",
			ui.Dim(fmt.Sprintf("%2d.", i+1)),
			truncate(q.Text, 60),
			ui.C(ui.Current().Muted, ui.Current().Dash+" "+attribution),
		)
		if q.Category != "" {
			entry += " " + ui.C(ui.Current().Category, "["+q.Category+"]")
		}
		lines = append(lines, entry)
	}
	lines = append(lines, "")
	lines = append(lines, ui.C(ui.Current().Muted, "Tip: narrow with `dixit use <category>`"))
	ui.Panel(lines)
	return 0
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

func doAdd(args []string, opt Options) int {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	author := fs.String("author", "", "who said it")
	category := fs.String("category", "", "grouping label")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		ui.Fail("usage: dixit add [-author X] [-category Y] <text...>")
		return 2
	}

	s, err := OpenStore(confirmer(opt))
	if err != nil {
		ui.Fail("open: " + err.Error())
		return 1
	}
	added, err := s.Add(model.Quote{
		Text:     strings.Join(fs.Args(), " "),
		Author:   *author,
		Category: *category,
	})
	if err != nil {
		ui.Fail("add: " + err.Error())
		return 2
	}
	if !added {
		ui.Fail("not added")
		return 0
	}
	ui.OK("added")
	return 0
}

func doCategories(opt Options) int {
	s, err := OpenStore(confirmer(opt))
	if err != nil {
		ui.Fail("open: " + err.Error())
		return 1
	}
	cats := s.Categories()
	lines := []string{ui.C(ui.Current().Title, "Categories"), ""}
	if len(cats) == 0 {
		lines = append(lines, ui.C(ui.Current().Muted, "(none)"))
	}
	for _, c := range cats {
		n := len(s.Filtered(c))
		lines = append(lines, fmt.Sprintf("%s %s",
			ui.C(ui.Current().Category, c),
			ui.C(ui.Current().Muted, fmt.Sprintf("(%d)", n)),
		))
	}
	ui.Panel(lines)
	return 0
}

func doUse(category string, opt Options) int {
	s, err := OpenStore(confirmer(opt))
	if err != nil {
		ui.Fail("open: " + err.Error())
		return 1
	}
	if category != quotes.AllCategories {
		known := false
		for _, c := range s.Categories() {
			if c == category {
				known = true
				break
			}
		}
		if !known {
			ui.Fail(fmt.Sprintf("unknown category %q", category))
			fmt.Fprintln(os.Stderr, ui.C("\033[90m", "Hint: run `dixit categories` to see what exists"))
			return 2
		}
	}
	s.SetSelectedCategory(category)
	ui.OK("filter set to " + category)
	return 0
}

func doImport(path string, opt Options) int {
	b, err := os.ReadFile(path)
	if err != nil {
		ui.Fail("import: " + err.Error())
		return 1
	}
	s, err := OpenStore(confirmer(opt))
	if err != nil {
		ui.Fail("open: " + err.Error())
		return 1
	}
	n, err := s.ImportJSON(b)
	if err != nil {
		ui.Fail("import: " + err.Error())
		return 1
	}
	if n == 0 {
		ui.OK("nothing added")
		return 0
	}
	ui.OK(fmt.Sprintf("added %d quote(s)", n))
	return 0
}

func doExport(a []string, opt Options) int {
	path := "quotes.json"
	if len(a) == 1 {
		path = a[0]
	}
	s, err := OpenStore(confirmer(opt))
	if err != nil {
		ui.Fail("open: " + err.Error())
		return 1
	}
	b, err := s.ExportJSON()
	if err != nil {
		ui.Fail("export: " + err.Error())
		return 1
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		ui.Fail("export: " + err.Error())
		return 1
	}
	ui.OK(fmt.Sprintf("wrote %d quote(s) to %s", s.Len(), path))
	return 0
}

func doLast(opt Options) int {
	s, err := OpenStore(confirmer(opt))
	if err != nil {
		ui.Fail("open: " + err.Error())
		return 1
	}
	q, ok := s.LastShown()
	if !ok {
		ui.Fail("nothing shown yet this session")
		return 1
	}
	ui.Panel(ui.QuoteLines(q.Text, q.Author, q.Category, 64))
	return 0
}

func doClear(opt Options) int {
	s, err := OpenStore(confirmer(opt))
	if err != nil {
		ui.Fail("open: " + err.Error())
		return 1
	}
	if !s.ClearAll() {
		ui.Fail("aborted")
		return 0
	}
	ui.OK("cleared")
	return 0
}
