package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/dustin/go-humanize"
	"github.com/felixge/fgprof"
	"github.com/kr/pretty"

	"github.com/cespare/keypads/keypad"
)

func init() {
	register("21", "keypad conundrum, both parts", func(args []string) { day21(args, true, true) })
	register("21a", "keypad conundrum, part 1", func(args []string) { day21(args, true, false) })
	register("21b", "keypad conundrum, part 2", func(args []string) { day21(args, false, true) })
	register("21i", "keypad conundrum, interactive", day21i)
	register("21x", "print the press sequence for CODE DEPTH", day21x)
	register("21c", "print the chunk counts for CODE DEPTH", day21c)
}

func day21(args []string, partA, partB bool) {
	fs := flag.NewFlagSet("21", flag.ExitOnError)
	configFile := fs.String("config", "", "INI file with [day21] depth_a and depth_b")
	verbose := fs.Bool("v", false, "log the length and complexity of each code")
	profile := fs.String("fgprof", "", "write a wall-clock profile (pprof format) to `file`")
	fs.Parse(args)
	if fs.NArg() > 1 {
		log.Fatal("usage: 21 [flags] [inputfile]")
	}
	cfg, err := loadDay21Config(*configFile)
	if err != nil {
		log.Fatal(err)
	}
	var depths []int
	if partA {
		depths = append(depths, cfg.depthA)
	}
	if partB {
		depths = append(depths, cfg.depthB)
	}

	var r io.Reader = os.Stdin
	if fs.NArg() == 1 {
		f, err := os.Open(fs.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		r = f
	}

	if *profile == "" {
		if err := runDay21(r, os.Stdout, depths, *verbose); err != nil {
			log.Fatal(err)
		}
		return
	}
	pf, err := os.Create(*profile)
	if err != nil {
		log.Fatal(err)
	}
	stop := fgprof.Start(pf, fgprof.FormatPprof)
	err = runDay21(r, os.Stdout, depths, *verbose)
	if err := stop(); err != nil {
		log.Println("error writing profile:", err)
	}
	if err := pf.Close(); err != nil {
		log.Println("error writing profile:", err)
	}
	if err != nil {
		log.Fatal(err)
	}
}

// runDay21 reads codes from r and writes the total score at each depth to w,
// one per line. With verbose set, each code's result is logged as well.
func runDay21(r io.Reader, w io.Writer, depths []int, verbose bool) error {
	codes, err := readCodes(r)
	if err != nil {
		return err
	}
	for _, depth := range depths {
		if verbose {
			for _, code := range codes {
				s, err := describeCode(code, depth)
				if err != nil {
					return err
				}
				log.Println(s)
			}
		}
		score, err := keypad.TotalScore(codes, depth)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, score); err != nil {
			return err
		}
	}
	return nil
}

func day21i(args []string) {
	fs := flag.NewFlagSet("21i", flag.ExitOnError)
	configFile := fs.String("config", "", "INI file with [day21] depth_a and depth_b")
	history := fs.String("history", filepath.Join(os.TempDir(), "advent21.txt"), "readline history `file`")
	fs.Parse(args)
	cfg, err := loadDay21Config(*configFile)
	if err != nil {
		log.Fatal(err)
	}

	l, err := readline.NewEx(&readline.Config{
		Prompt:      "code> ",
		HistoryFile: *history,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer l.Close()

	for {
		line, err := l.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt:
			continue
		case io.EOF:
			return
		default:
			log.Println("Readline error:", err)
			continue
		}
		code := strings.TrimSpace(line)
		if code == "" {
			continue
		}
		if err := checkCode(code); err != nil {
			fmt.Println(err)
			continue
		}
		for _, depth := range []int{cfg.depthA, cfg.depthB} {
			s, err := describeCode(code, depth)
			if err != nil {
				fmt.Println(err)
				break
			}
			fmt.Println(s)
		}
	}
}

func day21x(args []string) {
	code, depth, err := codeDepthArgs(args)
	if err != nil {
		log.Fatal(err)
	}
	seq, err := keypad.Expand(code, depth)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(seq)
	fmt.Println(len(seq))
}

func day21c(args []string) {
	fs := flag.NewFlagSet("21c", flag.ExitOnError)
	raw := fs.Bool("raw", false, "dump the chunk count map as a Go value")
	fs.Parse(args)
	code, depth, err := codeDepthArgs(fs.Args())
	if err != nil {
		log.Fatal(err)
	}
	counts, err := keypad.Counts(code, depth)
	if err != nil {
		log.Fatal(err)
	}
	if *raw {
		pretty.Println(counts)
		return
	}
	for _, chunk := range counts.Sorted() {
		fmt.Printf("%-8s %s\n", chunk, humanize.Comma(counts[chunk]))
	}
	fmt.Printf("%d distinct chunks, %s presses\n", len(counts), humanize.Comma(counts.Len()))
}

func codeDepthArgs(args []string) (code string, depth int, err error) {
	if len(args) != 2 {
		return "", 0, errors.New("need 2 args: code depth")
	}
	code = args[0]
	if err := checkCode(code); err != nil {
		return "", 0, err
	}
	depth, err = strconv.Atoi(args[1])
	if err != nil {
		return "", 0, fmt.Errorf("bad depth %q: %s", args[1], err)
	}
	if depth < 0 {
		return "", 0, fmt.Errorf("bad depth %d: must not be negative", depth)
	}
	return code, depth, nil
}

// describeCode summarizes how code fares through a chain of depth robots.
func describeCode(code string, depth int) (string, error) {
	n, err := keypad.MinimalLength(code, depth)
	if err != nil {
		return "", err
	}
	c, err := keypad.Complexity(code, depth)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s depth %d: %s presses, complexity %s",
		code, depth, humanize.Comma(n), humanize.Comma(c)), nil
}

// checkCode reports whether code is digits followed by a single A.
func checkCode(code string) error {
	if len(code) < 2 || code[len(code)-1] != keypad.Activate {
		return fmt.Errorf("bad code %q: want digits followed by A", code)
	}
	for i := 0; i < len(code)-1; i++ {
		if c := code[i]; c < '0' || c > '9' {
			return fmt.Errorf("bad code %q: want digits followed by A", code)
		}
	}
	return nil
}

func readCodes(r io.Reader) ([]string, error) {
	var codes []string
	scanner := bufio.NewScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		code := strings.TrimSpace(scanner.Text())
		if code == "" {
			continue
		}
		if err := checkCode(code); err != nil {
			return nil, fmt.Errorf("line %d: %s", lineNo, err)
		}
		codes = append(codes, code)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return codes, nil
}
