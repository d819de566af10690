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
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/encoding/protojson"

	"dirpx.dev/errkind/adapter"
)

type renderOptions struct {
	set map[string]string
}

func newRenderCommand(root *rootOptions) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render KIND",
		Short: "Print the friendly projection of a new instance of KIND",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := root.kind(args[0])
			if err != nil {
				return err
			}
			inst := k.New()
			for key, raw := range opts.set {
				inst.Set(key, parseValue(raw))
			}
			root.logger.Debug("rendering", "err", inst)

			b, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.
				Marshal(adapter.ToStruct(inst.Friendly()))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return err
		},
	}

	cmd.Flags().StringToStringVar(&opts.set, "set", nil, "set instance fields, e.g. --set message=gone,code=4010")
	appendEnvToUsage(cmd.Flags())
	return cmd
}

// parseValue keeps integers and booleans typed so that code and statusCode
// overrides stay numeric.
func parseValue(s string) any {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return s
}
