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

package subtle_test

import (
	"encoding/hex"
	"testing"

	"github.com/sec-js/botan/subtle"
)

func TestGetHashFunc(t *testing.T) {
	for _, tc := range []struct {
		hash string
		data string
		want string
	}{
		{"SHA256", "abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{"SHA-256", "abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{"SHA2-256", "abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{"SHA-512-256", "abc", "53048e2681941ef99b2e29b76b4c7dabe4c2d0c634fc6d46e0e2f13107e7af23"},
		{"SHA-512/256", "abc", "53048e2681941ef99b2e29b76b4c7dabe4c2d0c634fc6d46e0e2f13107e7af23"},
		{"SHA3-256", "abc", "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532"},
		{"SHA-3(256)", "abc", "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532"},
	} {
		t.Run(tc.hash, func(t *testing.T) {
			hashFunc := subtle.GetHashFunc(tc.hash)
			if hashFunc == nil {
				t.Fatalf("subtle.GetHashFunc(%q) = nil, want non-nil", tc.hash)
			}
			h := hashFunc()
			h.Write([]byte(tc.data))
			if got := hex.EncodeToString(h.Sum(nil)); got != tc.want {
				t.Errorf("digest = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestGetHashFuncUnknown(t *testing.T) {
	for _, name := range []string{"", "MD5", "SHA-3", "SHA256X", "BLAKE2b"} {
		if subtle.GetHashFunc(name) != nil {
			t.Errorf("subtle.GetHashFunc(%q) != nil, want nil", name)
		}
		if _, err := subtle.GetHashDigestSize(name); err == nil {
			t.Errorf("subtle.GetHashDigestSize(%q) err = nil, want error", name)
		}
		if _, err := subtle.CanonicalHashName(name); err == nil {
			t.Errorf("subtle.CanonicalHashName(%q) err = nil, want error", name)
		}
	}
}

func TestGetHashDigestSize(t *testing.T) {
	for _, tc := range []struct {
		hash string
		want uint32
	}{
		{"SHA1", 20},
		{"SHA224", 28},
		{"SHA256", 32},
		{"SHA384", 48},
		{"SHA512", 64},
		{"SHA512_256", 32},
		{"SHA3-224", 28},
		{"SHA3-256", 32},
		{"SHA3-384", 48},
		{"SHA3-512", 64},
	} {
		got, err := subtle.GetHashDigestSize(tc.hash)
		if err != nil {
			t.Errorf("subtle.GetHashDigestSize(%q) err = %v, want nil", tc.hash, err)
			continue
		}
		if got != tc.want {
			t.Errorf("subtle.GetHashDigestSize(%q) = %d, want %d", tc.hash, got, tc.want)
		}
		if size := subtle.GetHashFunc(tc.hash)().Size(); uint32(size) != tc.want {
			t.Errorf("subtle.GetHashFunc(%q)().Size() = %d, want %d", tc.hash, size, tc.want)
		}
	}
}

func TestCanonicalHashName(t *testing.T) {
	for _, tc := range []struct {
		hash string
		want string
	}{
		{"sha1", "SHA-1"},
		{"SHA-1", "SHA-1"},
		{"SHA224", "SHA-224"},
		{"SHA256", "SHA-256"},
		{"sha-384", "SHA-384"},
		{"SHA_512", "SHA-512"},
		{"SHA-512-256", "SHA-512-256"},
		{"SHA3_384", "SHA-3(384)"},
		{"SHA-3(512)", "SHA-3(512)"},
	} {
		got, err := subtle.CanonicalHashName(tc.hash)
		if err != nil {
			t.Errorf("subtle.CanonicalHashName(%q) err = %v, want nil", tc.hash, err)
			continue
		}
		if got != tc.want {
			t.Errorf("subtle.CanonicalHashName(%q) = %q, want %q", tc.hash, got, tc.want)
		}
	}
}
