// Command huffman encodes text with a Huffman code and decodes bit strings
// with a code table.
//
// Usage:
//
//     huffman encode [-right] [-order10] [-shards N] [-json] [-tree] TEXT...
//     huffman decode [-table FILE] [-json] BITS...
//     huffman stats TEXT...
//
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	huffman "github.com/mahoangnhatphi/HuffmanCompression"
	"github.com/mahoangnhatphi/HuffmanCompression/internal/logger"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// shardsEnv names the environment variable holding the default number of
// shards used to count symbols.
const shardsEnv = "HUFFMAN_SHARDS"

var errBlank = errors.New("input cannot be blank")

type env struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	getenv func(string) string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], env{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		getenv: os.Getenv,
	})
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, e env) int {
	if len(args) == 0 {
		usage(e.stderr)
		return exitUsage
	}

	var err error
	switch args[0] {
	case "encode":
		err = runEncode(ctx, args[1:], e)
	case "decode":
		err = runDecode(args[1:], e)
	case "stats":
		err = runStats(args[1:], e)
	case "help", "-h", "-help", "--help":
		usage(e.stdout)
		return exitOK
	default:
		fmt.Fprintf(e.stderr, "huffman: unknown command %q\n", args[0])
		usage(e.stderr)
		return exitUsage
	}

	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, flag.ErrHelp):
		return exitOK
	case errors.Is(err, errBlank), errors.Is(err, errFlags):
		return exitUsage
	default:
		return exitError
	}
}

func usage(w io.Writer) {
	fmt.Fprint(w, strings.Join([]string{
		"usage:\n",
		"\thuffman encode [-right] [-order10] [-shards N] [-json] [-tree] [-v] TEXT...\n",
		"\thuffman decode [-table FILE] [-json] [-v] BITS...\n",
		"\thuffman stats TEXT...\n",
	}, ""))
}

var errFlags = errors.New("invalid flags")

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", errFlags, err)
	}
	return nil
}

func runEncode(ctx context.Context, args []string, e env) error {
	defaultShards := 1
	if s := e.getenv(shardsEnv); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			defaultShards = n
		}
	}

	fs := flag.NewFlagSet("encode", flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	right := fs.Bool("right", false, "place the higher frequency child on the right")
	order10 := fs.Bool("order10", false, "mark left edges with '1' and right edges with '0'")
	shards := fs.Int("shards", defaultShards, "number of shards used to count symbols (env "+shardsEnv+")")
	asJSON := fs.Bool("json", false, "write the code table as JSON")
	showTree := fs.Bool("tree", false, "write the merge tree before the table")
	verbose := fs.Bool("v", false, "verbose logging")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	log := logger.New(e.stderr, *verbose)

	text := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if text == "" {
		log.Errorf("text cannot be blank")
		return errBlank
	}

	opts := huffman.Options{
		HigherFrequencyOnLeft: !*right,
		OneOnRightEdge:        !*order10,
	}
	log.Infof("encoding %d bytes with options %v and %d shard(s)", len(text), opts, *shards)

	hist, err := huffman.AnalyzeParallel(ctx, text, *shards)
	if err != nil {
		log.Errorf("counting symbols: %v", err)
		return err
	}

	var enc huffman.Encoder
	enc.InitHistogram(hist, opts)
	bits, err := enc.EncodeString(text)
	if err != nil {
		log.Errorf("%v", err)
		return err
	}
	log.Infof("%d distinct symbols, code sizes %d .. %d bits", hist.Len(), enc.MinSize(), enc.MaxSize())

	if *showTree {
		if _, err := enc.Tree().Dump(e.stdout); err != nil {
			return err
		}
	}
	if *asJSON {
		raw, err := json.MarshalIndent(enc.Table(), "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintf(e.stdout, "%s\n", raw)
	} else {
		fmt.Fprint(e.stdout, enc.Table().String())
	}
	fmt.Fprintln(e.stdout, bits)
	return nil
}

func runDecode(args []string, e env) error {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	tablePath := fs.String("table", "-", "file holding the code table, or - for stdin")
	asJSON := fs.Bool("json", false, "read the code table as JSON")
	verbose := fs.Bool("v", false, "verbose logging")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	log := logger.New(e.stderr, *verbose)

	bits := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if bits == "" {
		log.Errorf("bits cannot be blank")
		return errBlank
	}

	raw, err := readTable(*tablePath, e.stdin)
	if err != nil {
		log.Errorf("reading code table: %v", err)
		return err
	}
	if strings.TrimSpace(string(raw)) == "" {
		log.Errorf("code table cannot be blank")
		return errBlank
	}

	var table huffman.CodeTable
	if *asJSON {
		err = json.Unmarshal(raw, &table)
	} else {
		table, err = huffman.ParseTable(string(raw))
	}
	if err != nil {
		log.Errorf("%v", err)
		return err
	}
	if !table.IsPrefixFree() {
		log.Infof("code table is not a prefix code; using longest match")
	}

	fmt.Fprintln(e.stdout, huffman.Decode(bits, table))
	return nil
}

func readTable(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

func runStats(args []string, e env) error {
	log := logger.New(e.stderr, false)

	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		log.Errorf("text cannot be blank")
		return errBlank
	}

	hist := huffman.Analyze(text)
	entries := hist.Entries()
	slices.SortStableFunc(entries, func(a, b huffman.FrequencyEntry) int {
		return int(b.Count) - int(a.Count)
	})

	p := message.NewPrinter(language.English) // For commas between thousands
	p.Fprintf(e.stdout, "%d symbols, %d distinct\n", hist.Total(), hist.Len())
	for _, fe := range entries {
		p.Fprintf(e.stdout, "%s\t%d\t%.2f%%\n", strconv.Quote(fe.Symbol.String()), fe.Count, 100*fe.Frequency)
	}
	return nil
}
