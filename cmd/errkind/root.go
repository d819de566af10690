/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"dirpx.dev/errkind"
	"dirpx.dev/errkind/catalog"
)

type rootOptions struct {
	catalog  string
	logLevel string
	logger   *slog.Logger
}

var errNoCatalog = errors.New("no catalog: set --catalog or " + envPrefix + "_CATALOG")

func newRootCommand() *cobra.Command {
	opts := &rootOptions{logger: slog.Default()}

	cmd := &cobra.Command{
		Use:          "errkind",
		Short:        "Inspect errkind catalogs",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := bindFlagsToEnv(cmd); err != nil {
				return err
			}
			var level slog.Level
			if err := level.UnmarshalText([]byte(opts.logLevel)); err != nil {
				return fmt.Errorf("--log-level: %w", err)
			}
			opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return nil
		},
	}

	fs := cmd.PersistentFlags()
	fs.StringVarP(&opts.catalog, "catalog", "c", "", "path to a YAML or JSON catalog file")
	fs.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	appendEnvToUsage(fs)

	cmd.AddCommand(
		newTreeCommand(opts),
		newRenderCommand(opts),
		newExplainCommand(opts),
	)
	return cmd
}

// load reads the configured catalog.
func (o *rootOptions) load() (*catalog.Catalog, error) {
	if o.catalog == "" {
		return nil, errNoCatalog
	}
	c, err := catalog.LoadFile(o.catalog)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("catalog loaded", "path", o.catalog, "kinds", c.Len())
	return c, nil
}

// kind loads the catalog and looks name up in it.
func (o *rootOptions) kind(name string) (*errkind.Kind, error) {
	c, err := o.load()
	if err != nil {
		return nil, err
	}
	k, ok := c.Kind(name)
	if !ok {
		return nil, fmt.Errorf("kind %q not found in %s", name, o.catalog)
	}
	return k, nil
}
