// Command varwire encodes, decodes and inspects Minecraft-protocol
// variable-length integers.
//
//	varwire encode 25565           dd c7 01
//	varwire -width 64 encode -1    ff ff ff ff ff ff ff ff ff 01
//	varwire decode dd c7 01        25565 (3 bytes)
//	varwire inspect                interactive per-byte breakdown
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/Versifine/varwire"
	"github.com/Versifine/varwire/internal/config"
	"github.com/Versifine/varwire/internal/logger"
)

func main() {
	configPath := flag.String("config", "varwire.yaml", "path to yaml config")
	width := flag.Int("width", 0, "integer width, 32 or 64 (overrides config)")
	signed := flag.Bool("signed", false, "treat values as two's-complement signed")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	logger.Init(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	if *width == 0 {
		*width = cfg.Codec.Width
	}
	if *width != 32 && *width != 64 {
		logger.L().Error("width must be 32 or 64", "width", *width)
		os.Exit(1)
	}
	if !*signed {
		*signed = cfg.Codec.Signed
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: varwire [flags] encode <value> | decode <hex bytes...> | inspect")
		os.Exit(2)
	}

	switch args[0] {
	case "encode":
		err = runEncode(args[1:], *width, *signed)
	case "decode":
		err = runDecode(args[1:], *width, *signed)
	case "inspect":
		err = runInspect(*width)
	default:
		err = fmt.Errorf("unknown command %q", args[0])
	}
	if err != nil {
		logger.L().Error("Command failed", "command", args[0], "error", err)
		os.Exit(1)
	}
}

func runEncode(args []string, width int, signed bool) error {
	if len(args) != 1 {
		return fmt.Errorf("encode expects exactly one value")
	}
	enc, err := encodeValue(args[0], width, signed)
	if err != nil {
		return err
	}
	fmt.Println(hexBytes(enc))
	return nil
}

func encodeValue(arg string, width int, signed bool) ([]byte, error) {
	if signed {
		v, err := strconv.ParseInt(arg, 0, width)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", arg, err)
		}
		if width == 32 {
			return varwire.AppendInt32(nil, int32(v)), nil
		}
		return varwire.AppendInt64(nil, v), nil
	}
	v, err := strconv.ParseUint(arg, 0, width)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", arg, err)
	}
	if width == 32 {
		return varwire.AppendUint32(nil, uint32(v)), nil
	}
	return varwire.AppendUint64(nil, v), nil
}

func runDecode(args []string, width int, signed bool) error {
	buf, err := parseHexBytes(strings.Join(args, " "))
	if err != nil {
		return err
	}
	if width == 32 {
		value, n, err := varwire.Uint32(buf)
		if err != nil {
			return err
		}
		if signed {
			fmt.Printf("%d (%d bytes)\n", int32(value), n)
		} else {
			fmt.Printf("%d (%d bytes)\n", value, n)
		}
		return nil
	}
	value, n, err := varwire.Uint64(buf)
	if err != nil {
		return err
	}
	if signed {
		fmt.Printf("%d (%d bytes)\n", int64(value), n)
	} else {
		fmt.Printf("%d (%d bytes)\n", value, n)
	}
	return nil
}

// runInspect reads hex byte lines from stdin and prints a per-byte
// breakdown. A prompt is shown only when stdin is a terminal, so piped
// input produces clean output.
func runInspect(width int) error {
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	scanner := bufio.NewScanner(os.Stdin)
	for {
		if interactive {
			fmt.Print("varwire> ")
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if interactive && (line == "quit" || line == "exit") {
			break
		}
		buf, err := parseHexBytes(line)
		if err != nil {
			logger.L().Warn("Bad input", "error", err)
			continue
		}
		inspect(buf, width)
	}
	return scanner.Err()
}

func inspect(buf []byte, width int) {
	maxLen := varwire.MaxLen32
	if width == 64 {
		maxLen = varwire.MaxLen64
	}
	var total uint64
	for i, b := range buf {
		if i == maxLen {
			break
		}
		group := uint64(b & varwire.SEGMENT_BITS)
		total |= group << (7 * uint(i))
		cont := "stop"
		if b&varwire.CONTINUE_BIT != 0 {
			cont = "more"
		}
		fmt.Printf("  byte %d: 0x%02X  group=%#02x<<%-2d  %s  value so far=%d\n",
			i, b, group, 7*i, cont, total)
		if b&varwire.CONTINUE_BIT == 0 {
			break
		}
	}

	decode := func() (uint64, int, error) {
		if width == 32 {
			v, n, err := varwire.Uint32(buf)
			return uint64(v), n, err
		}
		return varwire.Uint64(buf)
	}
	value, n, err := decode()
	if err != nil {
		fmt.Printf("  error: %v\n", err)
		return
	}
	if width == 32 {
		fmt.Printf("  VarInt: %d (signed %d), %d bytes\n", value, int32(uint32(value)), n)
	} else {
		fmt.Printf("  VarLong: %d (signed %d), %d bytes\n", value, int64(value), n)
	}
}

func hexBytes(buf []byte) string {
	parts := make([]string, len(buf))
	for i, b := range buf {
		parts[i] = fmt.Sprintf("%02x", b)
	}
	return strings.Join(parts, " ")
}

func parseHexBytes(s string) ([]byte, error) {
	fields := strings.Fields(strings.ReplaceAll(s, ",", " "))
	buf := make([]byte, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimPrefix(f, "0x")
		b, err := strconv.ParseUint(f, 16, 8)
		if err != nil {
			return nil, fmt.Errorf("parse byte %q: %w", f, err)
		}
		buf = append(buf, byte(b))
	}
	if len(buf) == 0 {
		return nil, fmt.Errorf("no bytes given")
	}
	return buf, nil
}
