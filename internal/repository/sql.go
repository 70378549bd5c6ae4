package repository

import (
	"errors"
	"fmt"
	"strings"
)

// Where renders the predicate as "column = <placeholder>".
func (p Predicate) Where(placeholder string) (string, error) {
	column, err := p.Field.Column()
	if err != nil {
		return "", err
	}
	return column + " = " + placeholder, nil
}

// Assignments renders patches as a SET list. placeholder returns the bind
// marker for the n-th argument, counting from 1.
func Assignments(patches []Patch, placeholder func(n int) string) (string, []any, error) {
	if len(patches) == 0 {
		return "", nil, errors.New("no fields to update")
	}

	parts := make([]string, 0, len(patches))
	args := make([]any, 0, len(patches))
	seen := make(map[UserField]struct{}, len(patches))
	for _, patch := range patches {
		if patch.Field == UserFieldID {
			return "", nil, errors.New("user id is immutable")
		}
		column, err := patch.Field.Column()
		if err != nil {
			return "", nil, err
		}
		if _, dup := seen[patch.Field]; dup {
			return "", nil, fmt.Errorf("field %s patched twice", column)
		}
		seen[patch.Field] = struct{}{}

		args = append(args, patch.Value)
		parts = append(parts, fmt.Sprintf("%s = %s", column, placeholder(len(args))))
	}
	return strings.Join(parts, ", "), args, nil
}
