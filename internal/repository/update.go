package repository

import (
	"fmt"
	"reflect"
	"strings"
)

// setClause accumulates an UPDATE ... SET fragment from a fixed, allow-listed
// set of columns. Column names are always literals provided by the repository,
// never request data, and nil values are skipped so the update stays partial.
type setClause struct {
	cols []string
	args *[]any
}

func newSetClause() (*setClause, *[]any) {
	args := make([]any, 0)
	return &setClause{args: &args}, &args
}

func (s *setClause) add(col string, v any) {
	if v == nil || reflect.ValueOf(v).IsNil() {
		return
	}
	*s.args = append(*s.args, v)
	s.cols = append(s.cols, fmt.Sprintf("%s = $%d", col, len(*s.args)))
}

func (s *setClause) addValue(col string, v any) {
	*s.args = append(*s.args, v)
	s.cols = append(s.cols, fmt.Sprintf("%s = $%d", col, len(*s.args)))
}

func (s *setClause) empty() bool {
	return len(s.cols) == 0
}

func (s *setClause) clause() string {
	return strings.Join(s.cols, ", ")
}

func (s *setClause) next() int {
	return len(*s.args) + 1
}
