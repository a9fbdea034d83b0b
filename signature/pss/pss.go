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

// Package pss provides the EMSA-PSS signature padding scheme of RFC 8017,
// Section 9.1, as used by RSASSA-PSS.
//
// An [Encoding] pads message digests for a raw trapdoor permutation and
// checks recovered encodings. [Signer] and [Verifier] combine an Encoding
// with a [RawSigner] or [RawVerifier] into a complete signature scheme.
//
// Encodings are configured by [Parameters], which can be built directly,
// parsed from a scheme name such as "PSS(SHA-256,MGF1,32)", or read back
// from their protobuf serialization.
package pss
