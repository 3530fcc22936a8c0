package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"prism/internal/numeric"
	"prism/internal/profile"
)

var calcCmd = &cobra.Command{
	Use:   "calc [flags] a op b",
	Short: "Evaluate integer arithmetic under a profile mode",
	Long:  `Calc evaluates a single binary operation (+ - * / %) on fixed-width integers; the overflow behavior of + - * comes from --mode or the nearest prism.toml`,
	Args:  cobra.ExactArgs(3),
	RunE:  runCalc,
}

func init() {
	calcCmd.Flags().String("type", "i64", "operand type (i8|i16|i32|i64|u8|u16|u32|u64)")
	calcCmd.Flags().String("mode", "", "override arithmetic mode (checked|wrapping|saturating)")
}

func runCalc(cmd *cobra.Command, args []string) error {
	configureColor(cmd)
	typ, err := cmd.Flags().GetString("type")
	if err != nil {
		return fmt.Errorf("failed to get type flag: %w", err)
	}
	prof, err := calcProfile(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	a, op, b := args[0], args[1], args[2]
	switch typ {
	case "i8":
		return calcInt[int8](out, prof, a, op, b)
	case "i16":
		return calcInt[int16](out, prof, a, op, b)
	case "i32":
		return calcInt[int32](out, prof, a, op, b)
	case "i64":
		return calcInt[int64](out, prof, a, op, b)
	case "u8":
		return calcInt[uint8](out, prof, a, op, b)
	case "u16":
		return calcInt[uint16](out, prof, a, op, b)
	case "u32":
		return calcInt[uint32](out, prof, a, op, b)
	case "u64":
		return calcInt[uint64](out, prof, a, op, b)
	default:
		return fmt.Errorf("unknown type: %s", typ)
	}
}

// calcProfile resolves the arithmetic mode: an explicit --mode wins over
// the manifest walk.
func calcProfile(cmd *cobra.Command) (profile.Profile, error) {
	modeFlag, err := cmd.Flags().GetString("mode")
	if err != nil {
		return profile.Profile{}, fmt.Errorf("failed to get mode flag: %w", err)
	}
	if modeFlag != "" {
		mode, err := profile.ParseMode(modeFlag)
		if err != nil {
			return profile.Profile{}, err
		}
		return profile.Profile{Name: "override", Mode: mode}, nil
	}
	dir, err := cmd.Root().PersistentFlags().GetString("profile-dir")
	if err != nil {
		return profile.Profile{}, fmt.Errorf("failed to get profile-dir flag: %w", err)
	}
	return profile.Resolve(dir)
}

func calcInt[T numeric.Integer](out io.Writer, prof profile.Profile, aLit, op, bLit string) error {
	a, err := numeric.Parse[T](aLit)
	if err != nil {
		return fmt.Errorf("left operand: %w", err)
	}
	b, err := numeric.Parse[T](bLit)
	if err != nil {
		return fmt.Errorf("right operand: %w", err)
	}

	ops := profile.OpsFor[T](prof)
	var r T
	switch op {
	case "+":
		r, err = ops.Add(a, b)
	case "-":
		r, err = ops.Sub(a, b)
	case "*":
		r, err = ops.Mul(a, b)
	case "/":
		r, err = numeric.Div(a, b)
	case "%":
		r, err = numeric.Rem(a, b)
	default:
		return fmt.Errorf("unknown operator: %s", op)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s  (mode %s)\n", numeric.Format(r), prof.Mode)
	return nil
}
