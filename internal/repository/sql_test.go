package repository

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"user-api/internal/domain"
)

func TestAssignmentsNumbersPlaceholders(t *testing.T) {
	set, args, err := Assignments(FullOverwrite(domain.UserFields{
		Name:     "Ann",
		Username: "ann1",
		Email:    "ann@x.com",
		Password: "p",
	}), func(n int) string { return fmt.Sprintf("$%d", n) })
	require.NoError(t, err)

	assert.Equal(t, "name = $1, username = $2, email = $3, password = $4", set)
	assert.Equal(t, []any{"Ann", "ann1", "ann@x.com", "p"}, args)
}

func TestAssignmentsRejectsInvalidPatches(t *testing.T) {
	q := func(int) string { return "?" }

	_, _, err := Assignments(nil, q)
	assert.Error(t, err)

	_, _, err = Assignments([]Patch{Set(UserFieldID, "other")}, q)
	assert.Error(t, err)

	_, _, err = Assignments([]Patch{Set("name; DROP TABLE users", "x")}, q)
	assert.Error(t, err)

	_, _, err = Assignments([]Patch{Set(UserFieldName, "a"), Set(UserFieldName, "b")}, q)
	assert.Error(t, err)
}

func TestPredicateWhere(t *testing.T) {
	cond, err := IDEquals("abc").Where("?")
	require.NoError(t, err)
	assert.Equal(t, "id = ?", cond)

	_, err = Predicate{Field: "nope", Value: "x"}.Where("?")
	assert.Error(t, err)
}
