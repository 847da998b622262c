// Command obsfmt formats Obsidian flavored markdown. It reads standard
// input or the named files and directories, canonicalizes each document,
// and either prints the result, lists or diffs the files that would
// change, or rewrites them in place.
package main

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/renameio"
	"github.com/pmezard/go-difflib/difflib"
	flag "github.com/spf13/pflag"

	"github.com/obsfmt/obsfmt/canonmd"
	"github.com/obsfmt/obsfmt/internal/obsutil"
	"github.com/obsfmt/obsfmt/obsidian"
)

var (
	listOnly   = flag.BoolP("list", "l", false, "list files whose formatting differs")
	write      = flag.BoolP("write", "w", false, "write result back to the source file instead of stdout")
	showDiff   = flag.BoolP("diff", "d", false, "display diffs instead of rewriting files")
	checkOnly  = flag.Bool("check", false, "like --list, and exit 1 when any file would change")
	wrapWidth  = flag.Int("wrap", 0, "reflow paragraphs: 0 keeps line breaks, negative joins them, positive wraps at that column")
	configPath = flag.String("config", "", "config file `path` (default: nearest "+configName+" upward of the working directory)")
	verbose    = flag.BoolP("verbose", "v", false, "log every file processed")
)

var stdout = &obsutil.WriteBuffer{
	FlushPolicy: obsutil.FlushPolicyFunc(obsutil.FlushLineChunks),
	To:          os.Stdout,
}

func main() {
	log.SetFlags(0)
	logOut := obsutil.PrefixWriter("obsfmt: ", os.Stderr)
	log.SetOutput(logOut)

	flag.Usage = usage
	flag.Parse()

	code := run(flag.Args())
	if err := stdout.Flush(); err != nil {
		log.Print(err)
		if code == 0 {
			code = 2
		}
	}
	logOut.Close()
	os.Exit(code)
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: obsfmt [flags] [path ...]")
	fmt.Fprintln(os.Stderr, "With no path, obsfmt formats standard input onto standard output.")
	fmt.Fprintln(os.Stderr, "Directories are walked for .md and .markdown files.")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Flags:")
	flag.PrintDefaults()
}

func run(args []string) int {
	opts, err := renderOptions()
	if err != nil {
		log.Print(err)
		return 2
	}

	if len(args) == 0 {
		if *write {
			log.Print("cannot use -w with standard input")
			return 2
		}
		dirty, err := formatStdin(opts)
		if err != nil {
			log.Print(err)
			return 2
		}
		if *checkOnly && dirty {
			return 1
		}
		return 0
	}

	var t tally
	for _, arg := range args {
		if err := t.path(arg, opts); err != nil {
			log.Print(err)
			t.failed = true
		}
	}
	switch {
	case t.failed:
		return 2
	case *checkOnly && t.dirty:
		return 1
	}
	return 0
}

// tally accumulates the walk outcome across all arguments: whether any
// file would change and whether any file failed outright.
type tally struct {
	dirty  bool
	failed bool
}

func (t *tally) path(path string, opts []canonmd.Option) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		t.file(path, opts)
		return nil
	}
	return filepath.WalkDir(path, func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// Dot directories hold vault internals (.obsidian, .git).
			if name != path && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if markdownFile(d.Name()) {
			t.file(name, opts)
		}
		return nil
	})
}

func (t *tally) file(name string, opts []canonmd.Option) {
	dirty, err := formatFile(name, opts)
	if err != nil {
		log.Print(err)
		t.failed = true
	}
	t.dirty = t.dirty || dirty
}

func markdownFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

func formatStdin(opts []canonmd.Option) (dirty bool, _ error) {
	src, err := io.ReadAll(os.Stdin)
	if err != nil {
		return false, err
	}
	res, err := obsidian.Format(src, opts...)
	if err != nil {
		return false, err
	}
	dirty = !bytes.Equal(src, res)
	switch {
	case *listOnly || *checkOnly:
		if dirty {
			fmt.Fprintln(stdout, "<standard input>")
		}
	case *showDiff:
		if dirty {
			if err := printDiff("<standard input>", src, res); err != nil {
				return dirty, err
			}
		}
	default:
		if _, err := stdout.Write(res); err != nil {
			return dirty, err
		}
	}
	return dirty, stdout.MaybeFlush()
}

func formatFile(name string, opts []canonmd.Option) (dirty bool, _ error) {
	info, err := os.Stat(name)
	if err != nil {
		return false, err
	}
	src, err := os.ReadFile(name)
	if err != nil {
		return false, err
	}
	res, err := obsidian.Format(src, opts...)
	if err != nil {
		return false, fmt.Errorf("%s: %w", name, err)
	}
	if bytes.Equal(src, res) {
		if *verbose {
			log.Printf("%s: already formatted", name)
		}
		return false, nil
	}

	if *listOnly || *checkOnly {
		fmt.Fprintln(stdout, name)
	}
	if *showDiff {
		if err := printDiff(name, src, res); err != nil {
			return true, err
		}
	}
	if *write {
		if err := renameio.WriteFile(name, res, info.Mode().Perm()); err != nil {
			return true, err
		}
		if *verbose {
			log.Printf("%s: rewrote", name)
		}
	}
	if !*listOnly && !*checkOnly && !*showDiff && !*write {
		if _, err := stdout.Write(res); err != nil {
			return true, err
		}
	}
	return true, stdout.MaybeFlush()
}

func printDiff(name string, src, res []byte) error {
	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(src)),
		B:        difflib.SplitLines(string(res)),
		FromFile: name + ".orig",
		ToFile:   name,
		Context:  3,
	})
	if err != nil {
		return err
	}
	ew := &obsutil.ErrWriter{Writer: stdout}
	fmt.Fprintf(ew, "diff %s.orig %s\n", name, name)
	io.WriteString(ew, text)
	return ew.Err
}
