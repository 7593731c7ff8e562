// Copyright 2025 Florian Zenker (flo@znkr.io)
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

package percent

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "empty",
			in:   "",
			want: "",
		},
		{
			name: "unreserved",
			in:   "A-Z a-z 0-9 - _ . ! ~ * ' ( ) ; / ? : @ & = + $ , # ",
			want: "A-Z a-z 0-9 - _ . ! ~ * ' ( ) ; / ? : @ & = + $ , # ",
		},
		{
			name: "punctuation",
			in:   "`1234567890-=[]\\;',./",
			want: "%601234567890-=%5B%5D%5C;',./",
		},
		{
			name: "percent",
			in:   "~!@#$%^&*()_+{}|:\"<>?",
			want: "~!@#$%25%5E&*()_+%7B%7D%7C:%22%3C%3E?",
		},
		{
			name: "control-and-multibyte",
			in:   "ڂ \x02 \\ |",
			want: "%DA%82 %02 %5C %7C",
		},
		{
			name: "newline",
			in:   "\nlaz",
			want: "%0Alaz",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Encode(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Encode(%q) result is different [-want, +got]:\n%s", tt.in, diff)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr *DecodeError
	}{
		{
			name: "empty",
			in:   "",
			want: "",
		},
		{
			name: "literal",
			in:   "jumps over",
			want: "jumps over",
		},
		{
			name: "multibyte",
			in:   "%DA%82 %02 %5C %7C",
			want: "ڂ \x02 \\ |",
		},
		{
			name: "lowercase-hex",
			in:   "%da%82",
			want: "ڂ",
		},
		{
			name: "escaped-literals",
			in:   "%41%20%23",
			want: "A #",
		},
		{
			name: "astral",
			in:   "%F0%9F%98%80",
			want: "😀",
		},
		{
			name: "raw-multibyte",
			in:   "grüße%20",
			want: "grüße ",
		},
		{
			name:    "invalid-escape",
			in:      "+%c3%xy",
			wantErr: &DecodeError{Offset: 4, Reason: `invalid escape "%xy"`},
		},
		{
			name:    "bad-continuation",
			in:      "%c3xy",
			wantErr: &DecodeError{Offset: 3, Reason: "invalid continuation byte 0x78"},
		},
		{
			name:    "incomplete-escape",
			in:      "ab%4",
			wantErr: &DecodeError{Offset: 2, Reason: `incomplete escape "%4"`},
		},
		{
			name:    "invalid-lead",
			in:      "%FF",
			wantErr: &DecodeError{Offset: 0, Reason: "invalid leading byte 0xff"},
		},
		{
			name:    "truncated",
			in:      "%E0%A4",
			wantErr: &DecodeError{Offset: 0, Reason: "truncated UTF-8 sequence"},
		},
		{
			name:    "surrogate",
			in:      "%ED%A0%80",
			wantErr: &DecodeError{Offset: 0, Reason: "invalid UTF-8 sequence"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.in)
			if tt.wantErr != nil {
				var derr *DecodeError
				if !errors.As(err, &derr) {
					t.Fatalf("Decode(%q) = %q, %v, want error %v", tt.in, got, err, tt.wantErr)
				}
				if diff := cmp.Diff(tt.wantErr, derr); diff != "" {
					t.Errorf("Decode(%q) error is different [-want, +got]:\n%s", tt.in, diff)
				}
				return
			}
			if err != nil {
				t.Fatalf("Decode(%q) failed: %v", tt.in, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Decode(%q) result is different [-want, +got]:\n%s", tt.in, diff)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for _, s := range []string{
		"",
		"The quick brown fox",
		"ڀ \x00 \t %ځ \x01 \n ^",
		"日本語\r\n",
		"%%%",
		"\uFFFD",
		"ab\uFFFDc\uFFFD",
	} {
		got, err := Decode(Encode(s))
		if err != nil {
			t.Fatalf("Decode(Encode(%q)) failed: %v", s, err)
		}
		if got != s {
			t.Errorf("Decode(Encode(%q)) = %q", s, got)
		}
	}
}
