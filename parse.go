/*
 Copyright (C) 2024 Douglas Wayne Potter

 This program is free software: you can redistribute it and/or modify
 it under the terms of the GNU Affero General Public License as
 published by the Free Software Foundation, either version 3 of the
 License, or (at your option) any later version.

 This program is distributed in the hope that it will be useful,
 but WITHOUT ANY WARRANTY; without even the implied warranty of
 MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 GNU Affero General Public License for more details.

 You should have received a copy of the GNU Affero General Public License
 along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

package wedelin

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// tokenizer reads whitespace-delimited tokens from a stream, skipping
// '#'-to-end-of-line comments and tracking the current 1-based line
// number for error reporting. Grounded on original_source/src/io.cpp's
// next_token, translated from its byte-at-a-time istream reading into
// Go's bufio.Reader.
type tokenizer struct {
	r    *bufio.Reader
	line int
}

func newTokenizer(r io.Reader) *tokenizer {
	return &tokenizer{r: bufio.NewReader(r), line: 1}
}

// next returns the next whitespace-delimited token, or an error if the
// stream ends before one is found.
func (t *tokenizer) next() (string, error) {
	for {
		c, _, err := t.r.ReadRune()
		if err != nil {
			return "", &ParseError{Line: t.line, Err: fmt.Errorf("unexpected end of input")}
		}
		switch {
		case c == '#':
			for {
				c, _, err := t.r.ReadRune()
				if err != nil || c == '\n' {
					break
				}
			}
			t.line++
		case c == '\n':
			t.line++
		case c == ' ' || c == '\t' || c == '\r':
			// skip
		default:
			t.r.UnreadRune()
			return t.readToken()
		}
	}
}

func (t *tokenizer) readToken() (string, error) {
	var buf []rune
	for {
		c, _, err := t.r.ReadRune()
		if err != nil {
			break
		}
		if c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '#' {
			t.r.UnreadRune()
			break
		}
		buf = append(buf, c)
	}
	if len(buf) == 0 {
		return "", &ParseError{Line: t.line, Err: fmt.Errorf("fail to read token")}
	}
	return string(buf), nil
}

func (t *tokenizer) nextInt() (int, error) {
	tok, err := t.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, &ParseError{Line: t.line, Err: fmt.Errorf("expected integer, got %q: %w", tok, err)}
	}
	return v, nil
}

func (t *tokenizer) nextFloat() (float64, error) {
	tok, err := t.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, &ParseError{Line: t.line, Err: fmt.Errorf("expected number, got %q: %w", tok, err)}
	}
	return v, nil
}

func (t *tokenizer) nextBit() (int8, error) {
	v, err := t.nextInt()
	if err != nil {
		return 0, err
	}
	if v != 0 && v != 1 {
		return 0, &ParseError{Line: t.line, Err: fmt.Errorf("expected 0 or 1, got %d", v)}
	}
	return int8(v), nil
}

// ReadEqualityProblem reads an equality-variant instance from r in the
// text format: M, N, then M*N row-major 0/1 matrix entries, then M
// integer row targets (B), then N real costs (C). Tokens are
// whitespace-delimited; '#' starts a comment that runs to end of line.
func ReadEqualityProblem(r io.Reader) (EqualityProblem, error) {
	t := newTokenizer(r)

	m, err := t.nextInt()
	if err != nil {
		return EqualityProblem{}, err
	}
	n, err := t.nextInt()
	if err != nil {
		return EqualityProblem{}, err
	}
	if m < 0 || n < 0 {
		return EqualityProblem{}, &ParseError{Line: t.line, Err: fmt.Errorf("m and n must be non-negative")}
	}

	a := make([]int8, m*n)
	for i := range a {
		v, err := t.nextBit()
		if err != nil {
			return EqualityProblem{}, err
		}
		a[i] = v
	}

	b := make([]int, m)
	for i := range b {
		v, err := t.nextInt()
		if err != nil {
			return EqualityProblem{}, err
		}
		b[i] = v
	}

	c := make([]float64, n)
	for i := range c {
		v, err := t.nextFloat()
		if err != nil {
			return EqualityProblem{}, err
		}
		c[i] = v
	}

	p := EqualityProblem{M: m, N: n, A: a, B: b, C: c}
	if err := p.Validate(); err != nil {
		return EqualityProblem{}, err
	}
	return p, nil
}

// ReadSignedProblem reads a signed-variant instance from r in the text
// format: M, N, then M*N row-major {-1,0,1} matrix entries, then M
// pairs of (Lo, Hi) real bounds, then N real costs (C).
func ReadSignedProblem(r io.Reader) (SignedProblem, error) {
	t := newTokenizer(r)

	m, err := t.nextInt()
	if err != nil {
		return SignedProblem{}, err
	}
	n, err := t.nextInt()
	if err != nil {
		return SignedProblem{}, err
	}
	if m < 0 || n < 0 {
		return SignedProblem{}, &ParseError{Line: t.line, Err: fmt.Errorf("m and n must be non-negative")}
	}

	a := make([]int8, m*n)
	for i := range a {
		v, err := t.nextInt()
		if err != nil {
			return SignedProblem{}, err
		}
		if v < -1 || v > 1 {
			return SignedProblem{}, &ParseError{Line: t.line, Err: fmt.Errorf("expected -1, 0 or 1, got %d", v)}
		}
		a[i] = int8(v)
	}

	lo := make([]float64, m)
	hi := make([]float64, m)
	for i := 0; i < m; i++ {
		lov, err := t.nextFloat()
		if err != nil {
			return SignedProblem{}, err
		}
		hiv, err := t.nextFloat()
		if err != nil {
			return SignedProblem{}, err
		}
		lo[i] = lov
		hi[i] = hiv
	}

	c := make([]float64, n)
	for i := range c {
		v, err := t.nextFloat()
		if err != nil {
			return SignedProblem{}, err
		}
		c[i] = v
	}

	p := SignedProblem{M: m, N: n, A: a, Lo: lo, Hi: hi, C: c}
	if err := p.Validate(); err != nil {
		return SignedProblem{}, err
	}
	return p, nil
}
