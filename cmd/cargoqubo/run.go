package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/katalvlaran/cargoqubo/assignment"
	"github.com/katalvlaran/cargoqubo/matrix"
)

// run is main without the process exit, so tests can drive it.
func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	stdr.SetVerbosity(cfg.Verbosity)
	logger := stdr.New(log.New(stderr, "", log.LstdFlags))

	inst, err := buildInstance(cfg, logger)
	if err != nil {
		return err
	}
	q, err := assignment.Encode(inst,
		assignment.WithWorkers(cfg.Workers),
		assignment.WithLogger(logger))
	if err != nil {
		return err
	}
	logger.Info("instance encoded",
		"containers", inst.N(), "routes", inst.M(), "slackBits", inst.K(),
		"penalty", inst.P(), "offset", inst.Offset(), "vars", inst.NumVars())

	if err = writeOutput(cfg, q, stdout); err != nil {
		return err
	}
	if cfg.Sample == "" {
		return nil
	}

	return decodeSample(cfg.Sample, inst, stdout)
}

// buildInstance loads cfg.Instance or generates a random instance.
func buildInstance(cfg config, logger logr.Logger) (*assignment.Instance, error) {
	if cfg.Instance == "" {
		return assignment.NewRandomInstance(cfg.Containers, cfg.Routes, cfg.Capacity,
			assignment.WithSeed(cfg.Seed), assignment.WithLogger(logger))
	}
	f, err := os.Open(cfg.Instance)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	inst, err := assignment.LoadInstance(f, assignment.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.Instance, err)
	}

	return inst, nil
}

func writeOutput(cfg config, q *matrix.Dense, stdout io.Writer) (err error) {
	out := stdout
	if cfg.Output != "" {
		var f *os.File
		if f, err = os.Create(cfg.Output); err != nil {
			return err
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		out = f
	}
	if cfg.Format == formatSparse {
		return writeSparse(out, q)
	}

	return writeDense(out, q)
}

// writeDense writes q as a tab-separated square of integers, one row per line.
func writeDense(w io.Writer, q *matrix.Dense) error {
	tw := csv.NewWriter(w)
	tw.Comma = '\t'
	rec := make([]string, q.Cols())
	var err error
	q.Do(func(_, j int, v int64) bool {
		rec[j] = strconv.FormatInt(v, 10)
		if j == len(rec)-1 {
			err = tw.Write(rec)
		}

		return err == nil
	})
	if err != nil {
		return err
	}
	tw.Flush()

	return tw.Error()
}

// writeSparse writes the upper-triangular coefficients "i<TAB>j<TAB>value",
// the usual input of QUBO samplers.
func writeSparse(w io.Writer, q *matrix.Dense) error {
	entries, err := matrix.UpperTriangle(q)
	if err != nil {
		return err
	}
	tw := csv.NewWriter(w)
	tw.Comma = '\t'
	for _, e := range entries {
		rec := []string{strconv.Itoa(e.Row), strconv.Itoa(e.Col), strconv.FormatInt(e.Value, 10)}
		if err = tw.Write(rec); err != nil {
			return err
		}
	}
	tw.Flush()

	return tw.Error()
}

// decodeSample reads the first TSV row of path as a bit vector, decodes it and
// prints the partition with its cost and feasibility.
func decodeSample(path string, inst *assignment.Instance, w io.Writer) error {
	bits, err := readSample(path)
	if err != nil {
		return err
	}
	part, err := assignment.Decode(inst, bits)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	cost, err := inst.Cost(part)
	if err != nil {
		return err
	}
	feasible, err := inst.Feasible(part)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "%sCost: %d\nFeasible: %t\n", part, cost, feasible)

	return err
}

func readSample(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '\t'
	rec, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%s: empty sample", path)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	bits := make([]int, len(rec))
	for i, s := range rec {
		if bits[i], err = strconv.Atoi(s); err != nil {
			return nil, fmt.Errorf("%s: column %d: %w", path, i, err)
		}
	}

	return bits, nil
}
