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

package pss

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sec-js/botan/subtle"
)

var variantAliases = map[string]Variant{
	"PSS":      VariantPSS,
	"PSSR":     VariantPSS,
	"EMSA-PSS": VariantPSS,
	"PSS-MGF1": VariantPSS,
	"EMSA4":    VariantPSS,
	"PSS_Raw":  VariantRaw,
	"PSSR_Raw": VariantRaw,
}

// splitName splits "ALGO(a,b(c),d)" into "ALGO" and ["a", "b(c)", "d"].
// Commas nested in parentheses do not separate arguments.
func splitName(name string) (string, []string, error) {
	open := strings.IndexByte(name, '(')
	if open < 0 {
		return name, nil, nil
	}
	if !strings.HasSuffix(name, ")") {
		return "", nil, fmt.Errorf("unbalanced parentheses in %q", name)
	}
	algo := name[:open]
	var args []string
	depth, start := 0, open+1
	for i := open + 1; i < len(name)-1; i++ {
		switch name[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return "", nil, fmt.Errorf("unbalanced parentheses in %q", name)
			}
		case ',':
			if depth == 0 {
				args = append(args, name[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return "", nil, fmt.Errorf("unbalanced parentheses in %q", name)
	}
	args = append(args, name[start:len(name)-1])
	for i, a := range args {
		args[i] = strings.TrimSpace(a)
		if args[i] == "" {
			return "", nil, fmt.Errorf("empty argument in %q", name)
		}
	}
	return algo, args, nil
}

// ParseName parses a scheme name such as "PSS(SHA-256,MGF1,32)" or
// "PSS_Raw(SHA-384)".
//
// The hashing variant is accepted as PSS, PSSR, EMSA-PSS, PSS-MGF1 or EMSA4,
// the raw variant as PSS_Raw or PSSR_Raw. The arguments are the hash, the
// mask generation function and the salt length. Only MGF1 over the message
// hash is supported. When the salt length is given, verification enforces
// it; otherwise the salt is as long as the digest and any salt length is
// accepted.
func ParseName(name string) (*Parameters, error) {
	algo, args, err := splitName(strings.TrimSpace(name))
	if err != nil {
		return nil, fmt.Errorf("pss.ParseName: %v", err)
	}
	variant, ok := variantAliases[algo]
	if !ok {
		return nil, fmt.Errorf("pss.ParseName: unknown scheme %q", algo)
	}
	if len(args) < 1 || len(args) > 3 {
		return nil, fmt.Errorf("pss.ParseName: %q has %d arguments, want 1 to 3", name, len(args))
	}
	hashType := args[0]
	if len(args) >= 2 {
		if err := checkMGF(args[1], hashType); err != nil {
			return nil, fmt.Errorf("pss.ParseName: %v", err)
		}
	}
	if len(args) < 3 {
		return NewDefaultParameters(hashType, variant)
	}
	saltLength, err := strconv.Atoi(args[2])
	if err != nil {
		return nil, fmt.Errorf("pss.ParseName: invalid salt length %q", args[2])
	}
	return NewParameters(ParametersOpts{
		HashType:          hashType,
		SaltLengthBytes:   saltLength,
		RequireSaltLength: true,
		Variant:           variant,
	})
}

// checkMGF accepts "MGF1" and "MGF1(<hashType>)".
func checkMGF(mgf, hashType string) error {
	algo, args, err := splitName(mgf)
	if err != nil {
		return err
	}
	if algo != "MGF1" {
		return fmt.Errorf("unsupported mask generation function %q", mgf)
	}
	switch len(args) {
	case 0:
		return nil
	case 1:
		a, errA := subtle.CanonicalHashName(args[0])
		b, errB := subtle.CanonicalHashName(hashType)
		if errA == nil && errB == nil && a == b {
			return nil
		}
		return fmt.Errorf("MGF1 hash %q differs from message hash %q", args[0], hashType)
	default:
		return fmt.Errorf("unsupported mask generation function %q", mgf)
	}
}
