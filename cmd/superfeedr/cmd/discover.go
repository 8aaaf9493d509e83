// Copyright © 2018 NAME HERE <EMAIL ADDRESS>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"fmt"
	"net/url"
	"sort"

	"github.com/adamsanghera/go-superfeedr/pkg/discovery"
	"github.com/spf13/cobra"
)

func newDiscoverCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "discover <topic_url>",
		Short: "Lists the hubs a feed advertises, and its self url",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("accepts exactly 1 topic url, received %d", len(args))
			}
			if _, err := url.ParseRequestURI(args[0]); err != nil {
				return fmt.Errorf("'%s' is not a valid url", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			hubs, self, err := discovery.DiscoverTopic(cmd.Context(), a.httpClient, args[0])
			if err != nil {
				return err
			}

			sorted := make([]string, 0, len(hubs))
			for hub := range hubs {
				sorted = append(sorted, hub)
			}
			sort.Strings(sorted)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "self %s\n", self)
			for _, hub := range sorted {
				fmt.Fprintf(out, "hub  %s\n", hub)
			}
			return nil
		},
	}
}
