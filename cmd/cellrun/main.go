package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/term"

	tvmcells "github.com/wippyai/tvm-cells"
	"github.com/wippyai/tvm-cells/boc"
	"github.com/wippyai/tvm-cells/cell"
	"github.com/wippyai/tvm-cells/tact"
	"github.com/wippyai/tvm-cells/tuple"
)

type options struct {
	bocFile  string
	hexStr   string
	b64Str   string
	contract string
	typeName string
	stack    bool
	list     bool
	crc      bool
}

func main() {
	var (
		opts        options
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Log codec internals to stderr")
	)
	flag.StringVar(&opts.bocFile, "boc", "", "Path to a bag-of-cells file")
	flag.StringVar(&opts.hexStr, "hex", "", "Bag-of-cells as hex")
	flag.StringVar(&opts.b64Str, "b64", "", "Bag-of-cells as base64")
	flag.StringVar(&opts.contract, "contract", "", "Contract whose records to decode (tact, jetton, multisig, functions)")
	flag.StringVar(&opts.typeName, "type", "", "Record type to decode (default: dispatch on op code)")
	flag.BoolVar(&opts.stack, "stack", false, "Decode the root as a VM stack")
	flag.BoolVar(&opts.list, "list", false, "List known contracts and record types and exit")
	flag.BoolVar(&opts.crc, "crc", false, "Print the root re-encoded with a CRC32-C trailer")
	flag.Parse()

	if *verbose {
		setupLogging()
	}

	if *interactive {
		if err := runInteractive(opts.contract); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if !opts.list && opts.bocFile == "" && opts.hexStr == "" && opts.b64Str == "" {
		fmt.Fprintln(os.Stderr, "Usage: cellrun -boc <file> | -hex <hex> | -b64 <base64> [-contract name] [-type name] [-stack] [-crc]")
		fmt.Fprintln(os.Stderr, "       cellrun -list")
		fmt.Fprintln(os.Stderr, "       cellrun -i [-contract name]  (interactive mode)")
		os.Exit(1)
	}

	if err := run(os.Stdout, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupLogging() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: logger: %v\n", err)
		return
	}
	cell.SetLogger(logger.Named("cell"))
	boc.SetLogger(logger.Named("boc"))
	tuple.SetLogger(logger.Named("tuple"))
	tact.SetLogger(logger.Named("tact"))
	tvmcells.SetLogger(logger.Named("provider"))
}

// plainOutput drops styling when stdout is not a terminal.
func plainOutput(w io.Writer) bool {
	f, ok := w.(*os.File)
	return !ok || !term.IsTerminal(int(f.Fd()))
}

func readRoot(opts options) (*cell.Cell, error) {
	switch {
	case opts.bocFile != "":
		data, err := os.ReadFile(opts.bocFile)
		if err != nil {
			return nil, fmt.Errorf("read file: %w", err)
		}
		return boc.ParseOne(data)
	case opts.hexStr != "":
		return boc.FromHex(opts.hexStr)
	default:
		return boc.FromBase64(opts.b64Str)
	}
}

func run(w io.Writer, opts options) error {
	render := func(s lipgloss.Style, text string) string {
		if plainOutput(w) {
			return text
		}
		return s.Render(text)
	}

	if opts.list {
		for _, c := range contractNames() {
			fmt.Fprintf(w, "%s\n", render(funcStyle, c))
			for _, t := range typeNames(c) {
				fmt.Fprintf(w, "  %s\n", render(typeStyle, t))
			}
		}
		return nil
	}

	root, err := readRoot(opts)
	if err != nil {
		return fmt.Errorf("decode bag-of-cells: %w", err)
	}

	fmt.Fprintf(w, "Hash: %x\n", root.Hash())
	fmt.Fprintf(w, "Depth: %d\n", root.Depth())
	fmt.Fprintf(w, "\n%s", root.Dump())

	if opts.crc {
		raw, err := boc.Serialize(root, boc.Options{CRC32C: true})
		if err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		fmt.Fprintf(w, "\nBOC: %X\n", raw)
	}

	if opts.stack {
		items, err := tuple.Parse(root)
		if err != nil {
			return fmt.Errorf("stack: %w", err)
		}
		fmt.Fprintf(w, "\nStack (%d items):\n", len(items))
		for i, it := range items {
			fmt.Fprintf(w, "  %d: %s\n", i, formatItem(it))
		}
		return nil
	}

	if opts.contract == "" {
		return nil
	}
	v, rest, err := decode(opts.contract, opts.typeName, root)
	if err != nil {
		return fmt.Errorf("decode %s: %w", opts.contract, err)
	}
	fmt.Fprintf(w, "\n%s\n", render(resultStyle, fmt.Sprintf("%T %s", v, formatRecord(v))))
	if !rest.Empty() {
		fmt.Fprintf(w, "Unread: %d bits, %d refs\n", rest.BitsLeft(), rest.RefsLeft())
	}
	return nil
}

func formatItem(it tuple.Item) string {
	switch v := it.(type) {
	case tuple.Int:
		return "int " + v.Value.String()
	case tuple.CellItem:
		return "cell " + v.Cell.String()
	case tuple.SliceItem:
		return "slice " + v.Cell.String()
	case tuple.BuilderItem:
		return "builder " + v.Cell.String()
	case tuple.Tuple:
		parts := make([]string, len(v.Items))
		for i, sub := range v.Items {
			parts[i] = formatItem(sub)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	return it.Kind().String()
}
