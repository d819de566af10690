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
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"dirpx.dev/errkind/adapter"
	"dirpx.dev/errkind/mapper"
)

type explainOptions struct {
	httpRules map[string]int
	grpcRules map[string]int
	json      bool
}

func (o *explainOptions) mapperOptions() []mapper.Option {
	opts := make([]mapper.Option, 0, len(o.httpRules)+len(o.grpcRules))
	for p, v := range o.httpRules {
		opts = append(opts, mapper.WithHTTPRule(p, v))
	}
	for p, v := range o.grpcRules {
		opts = append(opts, mapper.WithGRPCRule(p, v))
	}
	return opts
}

func newExplainCommand(root *rootOptions) *cobra.Command {
	opts := &explainOptions{}

	cmd := &cobra.Command{
		Use:   "explain KIND",
		Short: "Explain how KIND resolves to HTTP and gRPC statuses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := root.kind(args[0])
			if err != nil {
				return err
			}
			m, err := mapper.New(opts.mapperOptions()...)
			if err != nil {
				return err
			}

			inst := k.New()
			w := cmd.OutOrStdout()
			if opts.json {
				d := adapter.ToDescriptor(inst, m.Status(k.Lineage(), inst.StatusCode()))
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(d)
			}
			_, err = fmt.Fprintln(w, m.Explain(k.Lineage(), inst.StatusCode()))
			return err
		},
	}

	fs := cmd.Flags()
	fs.StringToIntVar(&opts.httpRules, "http-rule", nil, "HTTP status rule as pattern=status, e.g. ApiError.*=502")
	fs.StringToIntVar(&opts.grpcRules, "grpc-rule", nil, "gRPC code rule as pattern=code")
	fs.BoolVar(&opts.json, "json", false, "print the resolved error descriptor as JSON")
	appendEnvToUsage(fs)
	return cmd
}
