// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package testutil provides common methods needed in test code.
package testutil

import (
	"embed"
	"encoding/hex"
	"encoding/json"
	"path"
)

// KATSuite represents the common elements of the top level object in a
// known-answer test file. The layout follows the Wycheproof JSON format.
// Implementations should embed KATSuite in a struct that strongly types the
// testGroups field. See kat_test.go for an example.
type KATSuite struct {
	Algorithm     string            `json:"algorithm"`
	NumberOfTests int               `json:"numberOfTests"`
	Notes         map[string]string `json:"notes"`
}

// KATGroup represents the common elements of a testGroups object in a
// suite. Implementations should embed KATGroup in a struct that strongly
// types its list of cases.
type KATGroup struct {
	Type string `json:"type"`
}

// KATCase represents the common elements of a tests object in a group.
// Implementations should embed KATCase in a struct that contains fields
// specific to the test type.
type KATCase struct {
	CaseID  int      `json:"tcId"`
	Comment string   `json:"comment"`
	Result  string   `json:"result"`
	Flags   []string `json:"flags"`
}

// HasFlag tells whether flag is set on the case.
func (c *KATCase) HasFlag(flag string) bool {
	for _, f := range c.Flags {
		if f == flag {
			return true
		}
	}
	return false
}

// HexBytes is a helper type for unmarshalling a byte sequence represented as a
// hex encoded string.
type HexBytes []byte

// UnmarshalText converts a hex encoded string into a sequence of bytes.
func (a *HexBytes) UnmarshalText(text []byte) error {
	decoded, err := hex.DecodeString(string(text))
	if err != nil {
		return err
	}

	*a = decoded
	return nil
}

//go:embed testvectors/*.json
var testVectors embed.FS

// PopulateSuite opens filename from the embedded test vectors directory and
// populates suite with the decoded JSON data.
func PopulateSuite(suite any, filename string) error {
	f, err := testVectors.Open(path.Join("testvectors", filename))
	if err != nil {
		return err
	}
	defer f.Close()
	parser := json.NewDecoder(f)
	if err := parser.Decode(suite); err != nil {
		return err
	}
	return nil
}
