package solve

import (
	"bufio"
	"os"
	"strconv"

	"github.com/katalvlaran/banana/oracle"
)

// verifyOCMAgainstFile reads whitespace-separated 1-based B-vertex ids from
// path, subtracts 1, and checks the crossing count they induce matches
// computedOptimum — the §6 verifier protocol.
func verifyOCMAgainstFile(o *oracle.Oracle, path string, computedOptimum int) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	var order []int
	sc := bufio.NewScanner(f)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		id, err := strconv.Atoi(sc.Text())
		if err != nil {
			return false, err
		}
		order = append(order, id-1)
	}
	if err := sc.Err(); err != nil {
		return false, err
	}

	return o.Verify(order, computedOptimum)
}
