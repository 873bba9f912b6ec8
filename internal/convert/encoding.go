// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package convert

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// Encoding returns the character encoding with the given IANA name or
// alias, such as "ISO-8859-1" or "windows-1252". The empty name
// returns nil, meaning UTF-8 read and written as is.
func Encoding(name string) (encoding.Encoding, error) {
	if name == "" {
		return nil, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, err
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported encoding %q", name)
	}
	return enc, nil
}

// decode converts src from c.Encoding to UTF-8.
func (c *Converter) decode(src []byte) ([]byte, error) {
	if c.Encoding == nil {
		return src, nil
	}
	return c.Encoding.NewDecoder().Bytes(src)
}

// encode converts UTF-8 text to c.Encoding.
func (c *Converter) encode(text []byte) ([]byte, error) {
	if c.Encoding == nil {
		return text, nil
	}
	return c.Encoding.NewEncoder().Bytes(text)
}
