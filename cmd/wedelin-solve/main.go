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

// A Wedelin-heuristic solver for 0-1 ILP instances.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/wedelin-solver/wedelin"
	"github.com/wedelin-solver/wedelin/internal/util"
)

func main() {
	fs := util.NewFlagSet(`Usage: %s -instance instance.txt

%s reads in a problem instance text file, solves it with the Wedelin
heuristic and outputs the resulting assignment to standard out.

Arguments:
`)

	filename := fs.String("instance", "", "instance filename (whitespace-delimited text format)")
	variant := fs.String("variant", "equality", "problem variant: equality or signed")
	limit := fs.Int("limit", wedelin.DefaultConfig().Limit, "maximum iterations before giving up")
	kappa := fs.Float64("kappa", wedelin.DefaultConfig().Kappa, "kappa parameter, in [0,1)")
	delta := fs.Float64("delta", wedelin.DefaultConfig().Delta, "delta (ell) parameter, in [0,+inf)")
	theta := fs.Float64("theta", wedelin.DefaultConfig().Theta, "theta parameter, in [0,1]")
	logLevel := fs.String("logLevel", "Info", "log level (Debug, Info, Warn, Error)")
	fs.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		AddSource: true,
		Level:     parseLogLevel(*logLevel),
	})))

	if *filename == "" {
		fmt.Fprintln(os.Stderr, "Please supply the instance file name")
		os.Exit(1)
	}

	f, err := os.Open(*filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read instance due to error: %s\n", err)
		os.Exit(1)
	}
	defer f.Close()

	cfg := wedelin.Config{Limit: *limit, Kappa: *kappa, Delta: *delta, Theta: *theta}

	switch *variant {
	case "equality":
		p, err := wedelin.ReadEqualityProblem(f)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to read instance due to error: %s\n", err)
			os.Exit(1)
		}
		result, err := wedelin.Solve(p, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to find solution due to error: %s\n", err)
			os.Exit(1)
		}
		fmt.Printf("Solution: %+v\n", result)
	case "signed":
		p, err := wedelin.ReadSignedProblem(f)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to read instance due to error: %s\n", err)
			os.Exit(1)
		}
		result, err := wedelin.SolveSigned(p, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to find solution due to error: %s\n", err)
			os.Exit(1)
		}
		fmt.Printf("Solution: %+v\n", result)
	default:
		fmt.Fprintf(os.Stderr, "unknown variant %q, expected equality or signed\n", *variant)
		os.Exit(1)
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "Debug":
		return slog.LevelDebug
	case "Info":
		return slog.LevelInfo
	case "Warn":
		return slog.LevelWarn
	case "Error":
		return slog.LevelError
	}
	slog.Error("unknown log level, defaulting to Info")
	return slog.LevelInfo
}
