package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"prism/internal/codec"
)

var encodeCmd = &cobra.Command{
	Use:   "encode [flags] [file...]",
	Short: "Encode bytes as hex or base64",
	Long:  `Encode reads raw bytes from stdin or the named files and writes the hex or base64 form; multiple files are processed concurrently`,
	RunE:  runEncode,
}

var decodeCmd = &cobra.Command{
	Use:   "decode [flags] [file...]",
	Short: "Decode hex or base64 back to bytes",
	Long:  `Decode reads encoded text from stdin or the named files and writes the raw bytes`,
	RunE:  runDecode,
}

func init() {
	for _, c := range []*cobra.Command{encodeCmd, decodeCmd} {
		c.Flags().String("format", "hex", "encoding (hex|base64)")
	}
	encodeCmd.Flags().Bool("upper", false, "uppercase hex digits")
	encodeCmd.Flags().Int("group", 0, "insert a space every N hex bytes")
	encodeCmd.Flags().Int("wrap", 0, "wrap base64 output every N characters")
}

func runEncode(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	upper, _ := cmd.Flags().GetBool("upper")
	group, _ := cmd.Flags().GetInt("group")
	wrap, _ := cmd.Flags().GetInt("wrap")

	encode := func(data []byte) (string, error) {
		switch format {
		case "hex":
			return codec.EncodeHex(data, codec.HexOptions{Upper: upper, Group: group}), nil
		case "base64":
			return codec.EncodeBase64(data, wrap), nil
		default:
			return "", fmt.Errorf("unknown format: %s", format)
		}
	}
	return transformInputs(cmd, args, encode)
}

func runDecode(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	decode := func(data []byte) (string, error) {
		text := strings.TrimSpace(string(data))
		var raw []byte
		var derr error
		switch format {
		case "hex":
			raw, derr = codec.DecodeHex(text)
		case "base64":
			raw, derr = codec.DecodeBase64(text)
		default:
			return "", fmt.Errorf("unknown format: %s", format)
		}
		if derr != nil {
			return "", derr
		}
		return string(raw), nil
	}
	return transformInputs(cmd, args, decode)
}

// transformInputs applies fn to stdin when no files are named, or to every
// file concurrently. Per-file results print in name order once all workers
// finish, so interleaving never scrambles the output.
func transformInputs(cmd *cobra.Command, files []string, fn func([]byte) (string, error)) error {
	configureColor(cmd)
	out := cmd.OutOrStdout()

	if len(files) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		res, err := fn(data)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, res)
		return nil
	}

	var mu sync.Mutex
	results := make(map[string]string, len(files))

	var g errgroup.Group
	g.SetLimit(4)
	for _, file := range files {
		file := file
		g.Go(func() error {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", file, err)
			}
			res, err := fn(data)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			mu.Lock()
			results[file] = res
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(out, "%s %s\n", labelStyle.Render(filepath.Base(name)+":"), results[name])
	}
	return nil
}
