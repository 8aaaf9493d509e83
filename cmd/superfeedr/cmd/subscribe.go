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
	"github.com/adamsanghera/go-superfeedr/pkg/superfeedr"
	"github.com/spf13/cobra"
)

func newSubscribeCmd(a *app) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "subscribe <feed_url> <callback_url>",
		Short: "Subscribes callback_url to updates of feed_url",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			resp, err := client.SubscribeFeed(cmd.Context(), args[0], args[1], format)
			if err != nil {
				return err
			}
			return printResponse(cmd.OutOrStdout(), resp)
		},
	}
	c.Flags().StringVarP(&format, "format", "f", superfeedr.DefaultFormat, "notification format (json or atom)")

	return c
}

func newUnsubscribeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "unsubscribe <feed_url> [callback_url]",
		Short: "Unsubscribes callback_url, or every callback when omitted, from feed_url",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			callback := ""
			if len(args) == 2 {
				callback = args[1]
			}
			resp, err := client.UnsubscribeFeed(cmd.Context(), args[0], callback)
			if err != nil {
				return err
			}
			return printResponse(cmd.OutOrStdout(), resp)
		},
	}
}
