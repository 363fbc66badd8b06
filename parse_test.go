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
	"errors"
	"strings"
	"testing"

	"gotest.tools/v3/assert"
)

func TestReadEqualityProblem_ParsesWellFormedInstance(t *testing.T) {
	src := `
# a 1x3 instance: pick exactly 2 of 3
1 3
1 1 1
2
1.0 2.0 3.0
`
	p, err := ReadEqualityProblem(strings.NewReader(src))
	assert.NilError(t, err)
	assert.Equal(t, p.M, 1)
	assert.Equal(t, p.N, 3)
	assert.DeepEqual(t, p.A, []int8{1, 1, 1})
	assert.DeepEqual(t, p.B, []int{2})
	assert.DeepEqual(t, p.C, []float64{1.0, 2.0, 3.0})
}

func TestReadEqualityProblem_ReportsLineNumberOnBadToken(t *testing.T) {
	src := "1 1\nX\n1\n1.0\n"
	_, err := ReadEqualityProblem(strings.NewReader(src))
	assert.ErrorContains(t, err, "line")

	var pe *ParseError
	assert.Assert(t, errors.As(err, &pe))
	assert.Equal(t, pe.Line, 2)
}

func TestReadEqualityProblem_RejectsTruncatedInput(t *testing.T) {
	_, err := ReadEqualityProblem(strings.NewReader("2 2\n1 1"))
	assert.ErrorContains(t, err, "unexpected end of input")
}

func TestReadSignedProblem_ParsesWellFormedInstance(t *testing.T) {
	src := "1 3\n1 -1 1\n0 1\n1.0 -2.0 1.0\n"
	p, err := ReadSignedProblem(strings.NewReader(src))
	assert.NilError(t, err)
	assert.DeepEqual(t, p.A, []int8{1, -1, 1})
	assert.DeepEqual(t, p.Lo, []float64{0})
	assert.DeepEqual(t, p.Hi, []float64{1})
}
