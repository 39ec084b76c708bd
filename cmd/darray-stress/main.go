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
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/codenotary/darray"
	"github.com/codenotary/darray/logger"
	"github.com/codenotary/darray/metrics"
)

func main() {
	cmd, err := newCommand()
	if err == nil {
		err = cmd.Execute()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("%v", err))
		os.Exit(1)
	}
}

func newCommand() (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:   "darray-stress",
		Short: "darray-stress - run a randomized deque workload against a pooled dynamic array",
		Long: `darray-stress - run a randomized deque workload against a pooled dynamic array.

Every result is cross-checked against a reference model unless --verify=false.
The environment variable names for settings are derived by prefixing flag names
with "DARRAY_", e.g DARRAY_OPS=500000 ./darray-stress.
Note: flags take precedence over environment variables.
`,
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStress(cmd)
		},
	}

	cmd.Flags().Int("ops", 100_000, "number of operations to run")
	cmd.Flags().Int("capacity", darray.DefaultCapacity, "initial number of slots in the backing store")
	cmd.Flags().Int("pool-size", 0, "initial number of pool slots")
	cmd.Flags().Float64("max-pool-ratio", darray.DefaultMaxPoolRatio, "target ratio of pool slots to store size")
	cmd.Flags().Float64("expand-rate", darray.DefaultExpandRate, "store growth factor")
	cmd.Flags().Int64("seed", 0, "random seed (0 picks a time-based seed)")
	cmd.Flags().Bool("verify", true, "cross-check every result against a reference model")
	cmd.Flags().String("metrics-addr", "", "address to serve prometheus metrics on (empty to disable)")

	cmd.AddCommand(versionCmd())

	viper.SetEnvPrefix("DARRAY")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}

	return cmd, nil
}

type opStats struct {
	count   int
	elapsed time.Duration
}

func runStress(cmd *cobra.Command) error {
	log := logger.NewSimpleLogger("darray-stress", os.Stderr)
	defer log.Close()

	seed := viper.GetInt64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rnd := rand.New(rand.NewSource(seed))

	if addr := viper.GetString("metrics-addr"); addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())

		go func() {
			if err := http.ListenAndServe(addr, mux); err != nil {
				log.Errorf("metrics server: %v", err)
			}
		}()

		log.Infof("serving prometheus metrics at http://%s/metrics", addr)
	}

	opts := darray.DefaultOptions().
		WithCapacity(viper.GetInt("capacity")).
		WithPoolSize(viper.GetInt("pool-size")).
		WithMaxPoolRatio(viper.GetFloat64("max-pool-ratio")).
		WithExpandRate(viper.GetFloat64("expand-rate")).
		WithLogger(log).
		WithMetrics(metrics.NewArrayMetrics("stress"))

	a, err := darray.New[int](opts)
	if err != nil {
		return err
	}

	ops := viper.GetInt("ops")
	verify := viper.GetBool("verify")

	log.Infof("running %d operations with seed %d", ops, seed)

	var ref []int
	next := 0

	names := []string{"push", "pop", "unshift", "shift"}
	stats := make(map[string]*opStats, len(names))
	for _, name := range names {
		stats[name] = &opStats{}
	}

	for i := 0; i < ops; i++ {
		var name string
		switch r := rnd.Intn(100); {
		case r < 40:
			name = "push"
		case r < 60:
			name = "pop"
		case r < 85:
			name = "unshift"
		default:
			name = "shift"
		}

		start := time.Now()

		switch name {
		case "push":
			if err := a.Push(next); err != nil {
				return fmt.Errorf("operation %d: push: %w", i, err)
			}
			if verify {
				ref = append(ref, next)
			}
			next++

		case "pop":
			v, ok := a.Pop()
			if verify {
				if len(ref) == 0 {
					if ok {
						return fmt.Errorf("operation %d: pop on empty array returned %d", i, v)
					}
				} else {
					want := ref[len(ref)-1]
					ref = ref[:len(ref)-1]
					if !ok || v != want {
						return fmt.Errorf("operation %d: pop returned %d (%v), expected %d", i, v, ok, want)
					}
				}
			}

		case "unshift":
			if err := a.Unshift(next); err != nil {
				return fmt.Errorf("operation %d: unshift: %w", i, err)
			}
			if verify {
				ref = append([]int{next}, ref...)
			}
			next++

		case "shift":
			v, ok, err := a.Shift()
			if err != nil {
				return fmt.Errorf("operation %d: shift: %w", i, err)
			}
			if verify {
				if len(ref) == 0 {
					if ok {
						return fmt.Errorf("operation %d: shift on empty array returned %d", i, v)
					}
				} else {
					want := ref[0]
					ref = ref[1:]
					if !ok || v != want {
						return fmt.Errorf("operation %d: shift returned %d (%v), expected %d", i, v, ok, want)
					}
				}
			}
		}

		stats[name].count++
		stats[name].elapsed += time.Since(start)
	}

	if verify {
		if a.Len() != len(ref) {
			return fmt.Errorf("final length is %d, expected %d", a.Len(), len(ref))
		}
		for i, want := range ref {
			v, ok := a.At(i)
			if !ok || v != want {
				return fmt.Errorf("final content at index %d is %d (%v), expected %d", i, v, ok, want)
			}
		}
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"Operation", "Count", "Total", "Avg"})
	for _, name := range names {
		s := stats[name]
		avg := "-"
		if s.count > 0 {
			avg = (s.elapsed / time.Duration(s.count)).String()
		}
		table.Append([]string{name, strconv.Itoa(s.count), s.elapsed.String(), avg})
	}
	table.Render()

	fmt.Fprintf(cmd.OutOrStdout(), "seed: %d, length: %d, store size: %d, pool size: %d\n",
		seed, a.Len(), a.Cap(), a.PoolLen())

	if verify {
		fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("all operations verified"))
	}

	return nil
}
