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
	"strings"

	"github.com/adamsanghera/go-superfeedr/pkg/superfeedr"
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	var page int

	c := &cobra.Command{
		Use:   "list <callback_url>",
		Short: "Lists the feeds subscribed with callback_url",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			resp, err := client.ListFeedsPage(cmd.Context(), args[0], page)
			if err != nil {
				return err
			}
			return printResponse(cmd.OutOrStdout(), resp)
		},
	}
	c.Flags().IntVar(&page, "page", 1, "result page")

	return c
}

func newRetrieveCmd(a *app) *cobra.Command {
	var (
		count  int
		before string
		after  string
		format string
		sets   []string
	)

	c := &cobra.Command{
		Use:   "retrieve <feed_url>",
		Short: "Retrieves past entries of feed_url from the hub",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			extra := make(map[string]string)
			if count > 0 {
				extra[superfeedr.RetrieveCount] = fmt.Sprint(count)
			}
			if before != "" {
				extra[superfeedr.RetrieveBefore] = before
			}
			if after != "" {
				extra[superfeedr.RetrieveAfter] = after
			}
			if format != "" {
				extra[superfeedr.RetrieveFormat] = format
			}
			for _, kv := range sets {
				parts := strings.SplitN(kv, "=", 2)
				if len(parts) != 2 || parts[0] == "" {
					return fmt.Errorf("'%s' is not a key=value pair", kv)
				}
				extra[parts[0]] = parts[1]
			}

			client, err := a.client()
			if err != nil {
				return err
			}
			resp, err := client.RetrieveFeeds(cmd.Context(), args[0], extra)
			if err != nil {
				return err
			}
			return printResponse(cmd.OutOrStdout(), resp)
		},
	}
	c.Flags().IntVar(&count, "count", 0, "number of entries")
	c.Flags().StringVar(&before, "before", "", "only entries published before this entry id")
	c.Flags().StringVar(&after, "after", "", "only entries published after this entry id")
	c.Flags().StringVarP(&format, "format", "f", "", "response format (json or atom)")
	c.Flags().StringArrayVar(&sets, "set", nil, "extra key=value field, repeatable")

	return c
}
