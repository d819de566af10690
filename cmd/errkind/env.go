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
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "ERRKIND"

// appendEnvToUsage appends the environment variable name to the usage string of each flag.
func appendEnvToUsage(fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		f.Usage += fmt.Sprintf(" (env %s)", envName(f.Name))
	})
}

// bindFlagsToEnv binds each flag of cmd to its environment variable.
// Flags set on the command line win over the environment.
func bindFlagsToEnv(cmd *cobra.Command) error {
	v := viper.New()

	var bindErr error
	fs := cmd.Flags()
	fs.VisitAll(func(f *pflag.Flag) {
		if bindErr != nil {
			return
		}
		if err := v.BindEnv(f.Name, envName(f.Name)); err != nil {
			bindErr = err
			return
		}
		if !f.Changed && v.IsSet(f.Name) {
			if err := fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name))); err != nil {
				bindErr = fmt.Errorf("%s: %w", envName(f.Name), err)
			}
		}
	})
	return bindErr
}

func envName(flagName string) string {
	name := strings.ReplaceAll(flagName, "-", "_")
	return envPrefix + "_" + strings.ToUpper(name)
}
