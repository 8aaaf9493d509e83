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
	"errors"
	"fmt"
	"net/http"

	"github.com/adamsanghera/go-superfeedr/pkg/superfeedr"
	"github.com/spf13/cobra"
)

// errInvalidSignature makes verify exit non-zero
var errInvalidSignature = errors.New("signature does not match")

func newVerifyCmd(a *app) *cobra.Command {
	var signature string

	c := &cobra.Command{
		Use:   "verify [body_file]",
		Short: "Checks a notification body (file or stdin) against its signature",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			body, err := readBody(cmd, args)
			if err != nil {
				return err
			}

			header := make(http.Header)
			header.Set(superfeedr.SignatureHeader, signature)

			if !client.VerifyNotification(superfeedr.ParseNotification(header, body)) {
				fmt.Fprintln(cmd.OutOrStdout(), "invalid")
				return errInvalidSignature
			}
			fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return nil
		},
	}
	c.Flags().StringVar(&signature, "signature", "", "value of the "+superfeedr.SignatureHeader+" header")
	c.MarkFlagRequired("signature")

	return c
}

func newSignCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sign [body_file]",
		Short: "Prints the signature the hub would send with a body (file or stdin)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			secret := a.resolvedSecret()
			if secret == "" {
				return errors.New("a secret is required to sign")
			}
			body, err := readBody(cmd, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "sha1="+superfeedr.Sign(superfeedr.DeriveSecret(secret), body))
			return nil
		},
	}
}
