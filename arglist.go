// Copyright 2024 Geotoolbox
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

package godem

import (
	"strings"
)

// ArgList is an ordered list of command line switches in the syntax expected
// by gdaldem: whitespace separated tokens, with double quotes grouping a
// token that contains whitespace. There are no escape sequences.
//
// The zero value is an empty, ready to use list.
type ArgList struct {
	tokens []string
}

// Append adds a single token at the end of the list. The token may contain
// whitespace (it will be quoted when rendered) but not a double quote, which
// has no representation in the switch syntax.
func (l *ArgList) Append(token string) error {
	if strings.ContainsRune(token, '"') {
		return &EncodingError{Token: token}
	}
	l.tokens = append(l.tokens, token)
	return nil
}

func (l *ArgList) appendAll(tokens ...string) error {
	for _, token := range tokens {
		if err := l.Append(token); err != nil {
			return err
		}
	}
	return nil
}

// Merge appends all of other's tokens, in order.
func (l *ArgList) Merge(other ArgList) error {
	return l.appendAll(other.tokens...)
}

// Tokens returns a copy of the list's tokens in order.
func (l ArgList) Tokens() []string {
	if len(l.tokens) == 0 {
		return nil
	}
	return append([]string(nil), l.tokens...)
}

// Len returns the number of tokens in the list.
func (l ArgList) Len() int {
	return len(l.tokens)
}

// String renders the list as a single switch line, separating tokens with a
// single space and quoting tokens that contain whitespace (or are empty).
// ParseArgList(l.String()) returns a list with the same tokens as l.
func (l ArgList) String() string {
	sb := strings.Builder{}
	for i, token := range l.tokens {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if token == "" || strings.ContainsAny(token, " \t\r\n") {
			sb.WriteByte('"')
			sb.WriteString(token)
			sb.WriteByte('"')
		} else {
			sb.WriteString(token)
		}
	}
	return sb.String()
}

func isArgSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// ParseArgList tokenizes a switch line into an ArgList. Tokens are separated
// by runs of whitespace; a double quoted section is part of the current token
// and may contain whitespace. Returns a SyntaxError if a quote is left
// unterminated.
func ParseArgList(source string) (ArgList, error) {
	l := ArgList{}
	i := 0
	for i < len(source) {
		if isArgSpace(source[i]) {
			i++
			continue
		}
		token := strings.Builder{}
		for i < len(source) {
			c := source[i]
			if c == '"' {
				end := strings.IndexByte(source[i+1:], '"')
				if end == -1 {
					return ArgList{}, &SyntaxError{Source: source, Offset: i}
				}
				token.WriteString(source[i+1 : i+1+end])
				i += end + 2
				continue
			}
			if isArgSpace(c) {
				break
			}
			token.WriteByte(c)
			i++
		}
		l.tokens = append(l.tokens, token.String())
	}
	return l, nil
}
