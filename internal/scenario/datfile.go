package scenario

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// endMarker closes every scenario data file.
const endMarker = "END"

var (
	// ErrMalformed is returned when a data file doesn't follow its format.
	ErrMalformed = errors.New("scenario: malformed data file")
	// ErrIntersectsObstacle is returned when an anthill or a food patch overlaps an obstacle.
	ErrIntersectsObstacle = errors.New("scenario: shape intersects an obstacle")
)

// tokens reads whitespace separated fields.
type tokens struct {
	sc *bufio.Scanner
}

func newTokens(r io.Reader) *tokens {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &tokens{sc: sc}
}

func (t *tokens) next() (string, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return "", err
		}
		return "", errors.Wrap(ErrMalformed, "unexpected end of file")
	}
	return t.sc.Text(), nil
}

func (t *tokens) float() (float64, error) {
	s, err := t.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrMalformed, "expected a number, got %q", s)
	}
	return v, nil
}

func (t *tokens) int() (int, error) {
	s, err := t.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(ErrMalformed, "expected an integer, got %q", s)
	}
	return v, nil
}

func (t *tokens) count() (int, error) {
	n, err := t.int()
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, errors.Wrapf(ErrMalformed, "negative count %d", n)
	}
	return n, nil
}

func (t *tokens) bool() (bool, error) {
	s, err := t.next()
	if err != nil {
		return false, err
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, errors.Wrapf(ErrMalformed, "expected 0 or 1, got %q", s)
	}
	return v, nil
}

func (t *tokens) floats(dst ...*float64) error {
	for _, d := range dst {
		v, err := t.float()
		if err != nil {
			return err
		}
		*d = v
	}
	return nil
}

// end consumes the closing marker. A short file, or one with more records
// than its header announced, fails here.
func (t *tokens) end() error {
	s, err := t.next()
	if err != nil {
		return err
	}
	if s != endMarker {
		return errors.Wrapf(ErrMalformed, "expected %s, got %q", endMarker, s)
	}
	return nil
}

func readFile(path string, parse func(*tokens) error) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	if err := parse(newTokens(f)); err != nil {
		return errors.Wrapf(err, "read %s", path)
	}
	return nil
}

// writeFile writes rows of tab separated fields followed by the end marker.
// The file is written next to path and renamed over it so a failed save
// never leaves half a file behind.
func writeFile(path string, rows [][]string) error {
	var b strings.Builder
	for _, row := range rows {
		b.WriteString(strings.Join(row, "\t"))
		b.WriteByte('\n')
	}
	b.WriteString(endMarker)
	b.WriteByte('\n')
	return writeAtomic(path, []byte(b.String()))
}

// writeAtomic replaces path with data through a temporary file, so a failed
// write leaves the previous content in place.
func writeAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatBool(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

func formatInt(n int) string {
	return strconv.Itoa(n)
}
