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
	"io/ioutil"
	"os"
	"path/filepath"
	"time"

	"github.com/zalando/go-keyring"
	"gopkg.in/yaml.v3"
)

// keyringService is where the password is looked up when neither the file nor a flag sets it
const keyringService = "superfeedr"

// fileConfig is the on-disk configuration, $HOME/.superfeedr.yaml by default
type fileConfig struct {
	Username string              `yaml:"username"`
	Password string              `yaml:"password"`
	Secret   string              `yaml:"secret"`
	BaseURI  string              `yaml:"base_uri"`
	Timeout  time.Duration       `yaml:"timeout"`
	Headers  map[string][]string `yaml:"headers"`
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".superfeedr.yaml")
}

// loadFileConfig reads path.  A missing file is not an error unless it was asked for explicitly.
func loadFileConfig(path string, explicit bool) (*fileConfig, error) {
	cfg := &fileConfig{}
	if path == "" {
		return cfg, nil
	}

	raw, err := ioutil.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// passwordFromKeyring returns "" when the keyring has nothing (or there is no keyring)
func passwordFromKeyring(username string) string {
	if username == "" {
		return ""
	}
	password, err := keyring.Get(keyringService, username)
	if err != nil {
		return ""
	}
	return password
}
