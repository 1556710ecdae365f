package procsim

import (
	"bufio"
	"fmt"
	"io"
)

// RandomOracle owns the fixed integer table every draw of randomness in
// the simulation comes from. Reproducibility of a whole run depends on
// every consumer drawing from this single oracle, in order: a process's
// static priority at creation, then a fresh CPU burst each time it
// enters RUNNING without a carried-over slice, then an I/O burst each
// time it enters BLOCKED.
type RandomOracle struct {
	table []int
	ofs   int
}

// LoadRandomOracle reads a leading count N followed by N whitespace
// separated integers.
func LoadRandomOracle(r io.Reader) (*RandomOracle, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	sc.Split(bufio.ScanWords)

	if !sc.Scan() {
		return nil, fmt.Errorf("random file: missing count")
	}
	var n int
	if _, err := fmt.Sscanf(sc.Text(), "%d", &n); err != nil {
		return nil, fmt.Errorf("random file: bad count %q: %w", sc.Text(), err)
	}

	table := make([]int, 0, n)
	for len(table) < n && sc.Scan() {
		var v int
		if _, err := fmt.Sscanf(sc.Text(), "%d", &v); err != nil {
			break
		}
		table = append(table, v)
	}
	if len(table) == 0 {
		return nil, fmt.Errorf("random file: empty table")
	}

	return &RandomOracle{table: table}, nil
}

// Next returns 1 + table[ofs] mod n and advances ofs, wrapping to 0 when
// it reaches the end of the table.
func (o *RandomOracle) Next(n int) int {
	assertf(n > 0, "oracle.Next: n must be positive, got %d", n)

	v := 1 + o.table[o.ofs]%n
	o.ofs++
	if o.ofs == len(o.table) {
		o.ofs = 0
	}
	return v
}
