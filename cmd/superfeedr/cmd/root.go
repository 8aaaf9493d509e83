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

/*
Package cmd is the superfeedr command line, a thin shell over pkg/superfeedr.

Credentials come from $HOME/.superfeedr.yaml (or --config), then flags, then the
OS keyring for the password.
*/
package cmd

import (
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"net/http"
	"os"

	"github.com/adamsanghera/go-superfeedr/pkg/superfeedr"
	"github.com/spf13/cobra"
)

// app is the state shared by all subcommands of one root command
type app struct {
	configPath string
	username   string
	password   string
	secret     string
	hub        string
	debug      bool

	file *fileConfig

	// httpClient, when set, is used for every outbound request
	httpClient *http.Client
}

// NewRootCmd builds the superfeedr command tree
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{})
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "superfeedr",
		Short:         "Talks to a Superfeedr PubSubHubbub hub",
		Long:          "Subscribes, unsubscribes, lists and retrieves feeds on a Superfeedr hub, and verifies signed notifications.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path := a.configPath
			explicit := cmd.Flags().Changed("config")
			if !explicit {
				path = defaultConfigPath()
			}
			file, err := loadFileConfig(path, explicit)
			if err != nil {
				return fmt.Errorf("reading config %s: %v", path, err)
			}
			a.file = file
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default $HOME/.superfeedr.yaml)")
	flags.StringVarP(&a.username, "username", "u", "", "hub account login")
	flags.StringVarP(&a.password, "password", "p", "", "hub account password or token")
	flags.StringVarP(&a.secret, "secret", "s", "", "raw subscription secret")
	flags.StringVar(&a.hub, "hub", "", "hub base uri (default "+superfeedr.DefaultBaseURI+")")
	flags.BoolVar(&a.debug, "debug", false, "log every hub request to stderr")

	root.AddCommand(
		newSubscribeCmd(a),
		newUnsubscribeCmd(a),
		newListCmd(a),
		newRetrieveCmd(a),
		newVerifyCmd(a),
		newSignCmd(a),
		newDiscoverCmd(a),
	)

	return root
}

// resolvedSecret is the raw secret, flag first
func (a *app) resolvedSecret() string {
	if a.secret != "" {
		return a.secret
	}
	if a.file != nil {
		return a.file.Secret
	}
	return ""
}

// client builds a superfeedr.Client from the config file overlaid with flags
func (a *app) client() (*superfeedr.Client, error) {
	file := a.file
	if file == nil {
		file = &fileConfig{}
	}

	cfg := &superfeedr.Config{
		BaseURI: file.BaseURI,
		Headers: http.Header(file.Headers),
	}
	if a.hub != "" {
		cfg.BaseURI = a.hub
	}
	cfg.Transport.Timeout = file.Timeout
	cfg.Transport.Client = a.httpClient
	if a.debug {
		cfg.Transport.Logger = log.New(os.Stderr, "superfeedr: ", log.LstdFlags)
	}

	username := firstNonEmpty(a.username, file.Username)
	password := firstNonEmpty(a.password, file.Password)
	if password == "" {
		password = passwordFromKeyring(username)
	}

	return superfeedr.New(username, password, a.resolvedSecret(), cfg)
}

// readBody reads the named file, or stdin when no file (or "-") is given
func readBody(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return ioutil.ReadAll(cmd.InOrStdin())
	}
	return ioutil.ReadFile(args[0])
}

// printResponse writes the hub's status line and body.
// A non-2xx status is returned as an error so the process exits non-zero.
func printResponse(w io.Writer, resp *http.Response) error {
	defer resp.Body.Close()

	fmt.Fprintf(w, "%d %s\n", resp.StatusCode, http.StatusText(resp.StatusCode))
	if _, err := io.Copy(w, resp.Body); err != nil {
		return err
	}
	fmt.Fprintln(w)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("hub answered with status %d", resp.StatusCode)
	}
	return nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
