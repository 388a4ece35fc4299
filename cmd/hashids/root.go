package main

import (
	"github.com/spf13/cobra"

	"github.com/huynhanx03/go-hashids/pkg/hashids"
	"github.com/huynhanx03/go-hashids/pkg/registry"
	"github.com/huynhanx03/go-hashids/pkg/settings"
)

// rootOptions holds the persistent flags.
type rootOptions struct {
	configPath string
	salt       string
	minLength  int
	alphabet   string
	separators string
	namespace  string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "hashids",
		Short: "Encode numbers into short, reversible ids",
		Long: `hashids turns non-negative integers into short ids that do not reveal
the numbers behind them, and decodes them back.

The codec is configured from an optional config file (--config), HASHIDS_*
environment variables and the flags below, in increasing priority.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	f := cmd.PersistentFlags()
	f.StringVarP(&opts.configPath, "config", "c", "", "config file (yaml, json or toml)")
	f.StringVarP(&opts.salt, "salt", "s", "", "salt")
	f.IntVarP(&opts.minLength, "min-length", "m", 0, "minimum hash length")
	f.StringVar(&opts.alphabet, "alphabet", hashids.DefaultAlphabet, "alphabet")
	f.StringVar(&opts.separators, "separators", hashids.DefaultSeparators, "separator characters")
	f.StringVarP(&opts.namespace, "namespace", "n", registry.DefaultNamespace, "namespace from the config file")

	cmd.AddCommand(
		newEncodeCmd(opts),
		newDecodeCmd(opts),
		newEncodeHexCmd(opts),
		newDecodeHexCmd(opts),
		newInspectCmd(opts),
		newServeCmd(opts),
	)
	return cmd
}

// loadConfig reads the config file and applies the flags the user set.
func (o *rootOptions) loadConfig(cmd *cobra.Command) (*settings.Config, error) {
	cfg, err := settings.Load(o.configPath)
	if err != nil {
		return nil, err
	}

	f := cmd.Flags()
	if f.Changed("salt") {
		cfg.Hashids.Salt = o.salt
	}
	if f.Changed("min-length") {
		cfg.Hashids.MinLength = o.minLength
	}
	if f.Changed("alphabet") {
		cfg.Hashids.Alphabet = o.alphabet
	}
	if f.Changed("separators") {
		// an explicit empty value disables separators
		cfg.Hashids.Separators = &o.separators
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// codec returns the codec of the selected namespace.
func (o *rootOptions) codec(cmd *cobra.Command) (*hashids.HashID, error) {
	cfg, err := o.loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	reg, err := registry.FromConfig(*cfg, nil)
	if err != nil {
		return nil, err
	}
	return reg.Lookup(o.namespace)
}
