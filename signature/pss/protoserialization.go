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
	"math"

	"google.golang.org/protobuf/proto"
	spb "google.golang.org/protobuf/types/known/structpb"
)

const parametersTypeURL = "type.googleapis.com/botan.pss.Parameters"

// ParametersToStruct returns p as a google.protobuf.Struct.
func ParametersToStruct(p *Parameters) (*spb.Struct, error) {
	if p == nil {
		return nil, fmt.Errorf("pss.ParametersToStruct: nil parameters")
	}
	return spb.NewStruct(map[string]any{
		"type_url":             parametersTypeURL,
		"variant":              p.Variant().String(),
		"hash":                 p.HashType(),
		"mgf":                  "MGF1",
		"salt_length":          p.SaltLengthBytes(),
		"required_salt_length": p.RequireSaltLength(),
	})
}

// SerializeParameters returns the deterministic protobuf wire encoding of
// ParametersToStruct(p).
func SerializeParameters(p *Parameters) ([]byte, error) {
	s, err := ParametersToStruct(p)
	if err != nil {
		return nil, err
	}
	return proto.MarshalOptions{Deterministic: true}.Marshal(s)
}

func stringField(s *spb.Struct, name string) (string, error) {
	val, ok := s.GetFields()[name]
	if !ok {
		return "", fmt.Errorf("field %q not found", name)
	}
	r, ok := val.GetKind().(*spb.Value_StringValue)
	if !ok {
		return "", fmt.Errorf("field %q is not a string", name)
	}
	return r.StringValue, nil
}

func intField(s *spb.Struct, name string) (int, error) {
	val, ok := s.GetFields()[name]
	if !ok {
		return 0, fmt.Errorf("field %q not found", name)
	}
	r, ok := val.GetKind().(*spb.Value_NumberValue)
	if !ok {
		return 0, fmt.Errorf("field %q is not a number", name)
	}
	f := r.NumberValue
	if f != math.Trunc(f) || f < 0 || f > math.MaxInt32 {
		return 0, fmt.Errorf("field %q is not a valid length: %v", name, f)
	}
	return int(f), nil
}

func boolField(s *spb.Struct, name string) (bool, error) {
	val, ok := s.GetFields()[name]
	if !ok {
		return false, fmt.Errorf("field %q not found", name)
	}
	r, ok := val.GetKind().(*spb.Value_BoolValue)
	if !ok {
		return false, fmt.Errorf("field %q is not a bool", name)
	}
	return r.BoolValue, nil
}

func parseVariant(v string) (Variant, error) {
	switch v {
	case VariantPSS.String():
		return VariantPSS, nil
	case VariantRaw.String():
		return VariantRaw, nil
	default:
		return VariantUnknown, fmt.Errorf("unknown variant %q", v)
	}
}

// ParametersFromStruct parses a struct produced by ParametersToStruct.
func ParametersFromStruct(s *spb.Struct) (*Parameters, error) {
	typeURL, err := stringField(s, "type_url")
	if err != nil {
		return nil, fmt.Errorf("pss.ParametersFromStruct: %v", err)
	}
	if typeURL != parametersTypeURL {
		return nil, fmt.Errorf("pss.ParametersFromStruct: type_url = %q, want %q", typeURL, parametersTypeURL)
	}
	mgf, err := stringField(s, "mgf")
	if err != nil {
		return nil, fmt.Errorf("pss.ParametersFromStruct: %v", err)
	}
	if mgf != "MGF1" {
		return nil, fmt.Errorf("pss.ParametersFromStruct: unsupported mask generation function %q", mgf)
	}
	v, err := stringField(s, "variant")
	if err != nil {
		return nil, fmt.Errorf("pss.ParametersFromStruct: %v", err)
	}
	variant, err := parseVariant(v)
	if err != nil {
		return nil, fmt.Errorf("pss.ParametersFromStruct: %v", err)
	}
	hashType, err := stringField(s, "hash")
	if err != nil {
		return nil, fmt.Errorf("pss.ParametersFromStruct: %v", err)
	}
	saltLength, err := intField(s, "salt_length")
	if err != nil {
		return nil, fmt.Errorf("pss.ParametersFromStruct: %v", err)
	}
	required, err := boolField(s, "required_salt_length")
	if err != nil {
		return nil, fmt.Errorf("pss.ParametersFromStruct: %v", err)
	}
	return NewParameters(ParametersOpts{
		HashType:          hashType,
		SaltLengthBytes:   saltLength,
		RequireSaltLength: required,
		Variant:           variant,
	})
}

// ParseParameters parses the output of SerializeParameters.
func ParseParameters(serialized []byte) (*Parameters, error) {
	s := new(spb.Struct)
	if err := proto.Unmarshal(serialized, s); err != nil {
		return nil, fmt.Errorf("pss.ParseParameters: %v", err)
	}
	return ParametersFromStruct(s)
}
