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

package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/wedelin-solver/wedelin"
)

func usage() {
	w := flag.CommandLine.Output()
	fmt.Fprintf(
		w,
		`Usage: %s -kind assignment -size 4 -seed 1

%s outputs a random Wedelin instance to standard out, in the
whitespace-delimited text format wedelin.ReadEqualityProblem and
wedelin.ReadSignedProblem accept.

Arguments:
`,
		os.Args[0],
		os.Args[0])
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	kind := flag.String("kind", "assignment", "instance kind: assignment or nqueens")
	size := flag.Int("size", 4, "assignment: board side length. nqueens: board side length (>= 3)")
	var seed int64
	flag.Int64Var(&seed, "seed", 1, "seed for the random cost generator")
	flag.Parse()

	if *size <= 0 {
		log.Fatalln("size must be positive")
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	switch *kind {
	case "assignment":
		p := wedelin.GenerateAssignmentProblem(*size, seed)
		writeEqualityInstance(w, p)
	case "nqueens":
		p := wedelin.GenerateNQueensProblem(*size, seed)
		writeSignedInstance(w, p)
	default:
		log.Fatalf("unknown kind %q, expected assignment or nqueens", *kind)
	}
}

func writeEqualityInstance(w *bufio.Writer, p wedelin.EqualityProblem) {
	fmt.Fprintf(w, "%d %d\n", p.M, p.N)
	for i := 0; i < p.M; i++ {
		writeIntRow(w, p.A[i*p.N:(i+1)*p.N])
	}
	for _, b := range p.B {
		fmt.Fprintf(w, "%d ", b)
	}
	fmt.Fprintln(w)
	for _, c := range p.C {
		fmt.Fprintf(w, "%g ", c)
	}
	fmt.Fprintln(w)
}

func writeSignedInstance(w *bufio.Writer, p wedelin.SignedProblem) {
	fmt.Fprintf(w, "%d %d\n", p.M, p.N)
	for i := 0; i < p.M; i++ {
		writeIntRow(w, p.A[i*p.N:(i+1)*p.N])
	}
	for k := range p.Lo {
		fmt.Fprintf(w, "%g %g\n", p.Lo[k], p.Hi[k])
	}
	for _, c := range p.C {
		fmt.Fprintf(w, "%g ", c)
	}
	fmt.Fprintln(w)
}

func writeIntRow(w *bufio.Writer, row []int8) {
	for _, v := range row {
		fmt.Fprintf(w, "%d ", v)
	}
	fmt.Fprintln(w)
}
