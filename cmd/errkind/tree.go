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
	"strings"

	"github.com/spf13/cobra"

	"dirpx.dev/errkind"
)

func newTreeCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Print the Kind hierarchy of the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := root.load()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			c.Walk(func(k *errkind.Kind, depth int) {
				_, _ = fmt.Fprintln(w, strings.Repeat("  ", depth)+describeKind(k))
			})
			return nil
		},
	}
}

// describeKind renders one tree line: the name followed by the code,
// statusCode and exclusions the Kind resolves to.
func describeKind(k *errkind.Kind) string {
	var b strings.Builder
	b.WriteString(k.Name())

	inst := k.New()
	if c := inst.Code(); c != 0 {
		fmt.Fprintf(&b, " code=%d", c)
	}
	if s := inst.StatusCode(); s != 0 {
		fmt.Fprintf(&b, " statusCode=%d", s)
	}
	if ex := k.Exclusions(); len(ex) > 0 {
		fmt.Fprintf(&b, " exclude=%s", strings.Join(ex, ","))
	}
	return b.String()
}
