/*
Copyright 2025 Codenotary Inc. All rights reserved.

SPDX-License-Identifier: BUSL-1.1
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://mariadb.com/bsl11/

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
)

// Set at build time with -ldflags "-X main.Version=... -X main.Commit=..."
var (
	Version = "dev"
	Commit  = ""
	BuiltAt = ""
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the darray-stress version",
		Run: func(_ *cobra.Command, _ []string) {
			pieces := []string{
				fmt.Sprintf("darray-stress %s", Version),
			}
			const strPattern = "%-*s: %s"
			const longestLabelLength = 8
			if Commit != "" {
				pieces = append(
					pieces,
					fmt.Sprintf(strPattern, longestLabelLength, "Commit", Commit))
			}
			if BuiltAt != "" {
				pieces = append(
					pieces,
					fmt.Sprintf(strPattern, longestLabelLength, "Built at", BuiltAt))
			}
			fmt.Println(strings.Join(pieces, "\n"))
		},
	}
}
