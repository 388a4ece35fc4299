package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newEncodeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "encode NUMBER...",
		Short:   "Encode one or more non-negative integers",
		Example: "  hashids encode --salt 'this is my salt' 1 2 3",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			numbers := make([]int64, len(args))
			for i, arg := range args {
				n, err := strconv.ParseInt(arg, 10, 64)
				if err != nil {
					return errors.Wrapf(err, "argument %d", i+1)
				}
				numbers[i] = n
			}

			codec, err := opts.codec(cmd)
			if err != nil {
				return err
			}
			hash, err := codec.EncodeInt64(numbers...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}

func newDecodeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "decode HASH",
		Short: "Decode a hash into its numbers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			codec, err := opts.codec(cmd)
			if err != nil {
				return err
			}
			numbers, err := codec.DecodeInt64(args[0])
			if err != nil {
				return err
			}

			parts := make([]string, len(numbers))
			for i, n := range numbers {
				parts[i] = strconv.FormatInt(n, 10)
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(parts, " "))
			return nil
		},
	}
}

func newEncodeHexCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "encode-hex HEX",
		Short: "Encode a hexadecimal string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			codec, err := opts.codec(cmd)
			if err != nil {
				return err
			}
			hash, err := codec.EncodeHex(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}

func newDecodeHexCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "decode-hex HASH",
		Short: "Decode a hash produced by encode-hex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			codec, err := opts.codec(cmd)
			if err != nil {
				return err
			}
			hex, err := codec.DecodeHex(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hex)
			return nil
		},
	}
}

func newInspectCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Print the character sets derived from the configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			codec, err := opts.codec(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "namespace:  %s\n", opts.namespace)
			fmt.Fprintf(out, "salt:       %q\n", codec.Salt())
			fmt.Fprintf(out, "min length: %d\n", codec.MinLength())
			fmt.Fprintf(out, "alphabet:   %s\n", codec.Alphabet())
			fmt.Fprintf(out, "separators: %s\n", codec.Separators())
			fmt.Fprintf(out, "guards:     %s\n", codec.Guards())
			return nil
		},
	}
}
