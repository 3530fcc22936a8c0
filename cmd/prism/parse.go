package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"prism/internal/floats"
	"prism/internal/numeric"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] value",
	Short: "Parse an integer or float literal",
	Long:  `Parse reads a numeric literal (0x/0o/0b prefixes, underscores, inf/nan specials) and prints its value, bit pattern and classification`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("type", "i64", "value type (i8|i16|i32|i64|u8|u16|u32|u64|f16|f32|f64)")
}

func runParse(cmd *cobra.Command, args []string) error {
	configureColor(cmd)
	typ, err := cmd.Flags().GetString("type")
	if err != nil {
		return fmt.Errorf("failed to get type flag: %w", err)
	}

	out := cmd.OutOrStdout()
	lit := args[0]
	switch typ {
	case "i8":
		return parseInt[int8](out, typ, lit)
	case "i16":
		return parseInt[int16](out, typ, lit)
	case "i32":
		return parseInt[int32](out, typ, lit)
	case "i64":
		return parseInt[int64](out, typ, lit)
	case "u8":
		return parseInt[uint8](out, typ, lit)
	case "u16":
		return parseInt[uint16](out, typ, lit)
	case "u32":
		return parseInt[uint32](out, typ, lit)
	case "u64":
		return parseInt[uint64](out, typ, lit)
	case "f16":
		f, err := floats.Parse16(lit)
		if err != nil {
			return err
		}
		printValue(out, typ, floats.FormatGeneral16(f),
			fmt.Sprintf("0x%04x", f.Bits()), f.Class().String())
		return nil
	case "f32":
		f, err := floats.Parse32(lit)
		if err != nil {
			return err
		}
		printValue(out, typ, floats.FormatGeneral32(f),
			fmt.Sprintf("0x%08x", floats.ToBits32(f)), floats.Classify32(f).String())
		return nil
	case "f64":
		f, err := floats.Parse64(lit)
		if err != nil {
			return err
		}
		printValue(out, typ, floats.FormatGeneral64(f),
			fmt.Sprintf("0x%016x", floats.ToBits64(f)), floats.Classify64(f).String())
		return nil
	default:
		return fmt.Errorf("unknown type: %s", typ)
	}
}

func parseInt[T numeric.Integer](out io.Writer, typ, lit string) error {
	v, err := numeric.Parse[T](lit)
	if err != nil {
		return err
	}
	printValue(out, typ, numeric.Format(v), numeric.FormatHex(v), "")
	return nil
}
