package workouts_test

import (
	"testing"

	"github.com/2beens/fitlog/internal/workouts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryPolicy_Resolve(t *testing.T) {
	testCases := []struct {
		policy   workouts.CategoryPolicy
		raw      string
		expected workouts.Category
		err      error
	}{
		{policy: workouts.PolicyCoerce, raw: "Warm-up", expected: workouts.CategoryWarmUp},
		{policy: workouts.PolicyCoerce, raw: " Cool-down ", expected: workouts.CategoryCoolDown},
		{policy: workouts.PolicyCoerce, raw: "", expected: workouts.CategoryWorkout},
		{policy: workouts.PolicyCoerce, raw: "Yoga", expected: workouts.CategoryWorkout},
		{policy: workouts.PolicyAccept, raw: "Yoga", expected: workouts.Category("Yoga")},
		{policy: workouts.PolicyAccept, raw: "", expected: workouts.CategoryWorkout},
		{policy: workouts.PolicyReject, raw: "Yoga", err: workouts.ErrUnknownCategory},
		{policy: workouts.PolicyReject, raw: "  ", expected: workouts.CategoryWorkout},
		{policy: workouts.PolicyReject, raw: "Workout", expected: workouts.CategoryWorkout},
	}

	for _, tc := range testCases {
		t.Run(string(tc.policy)+"/"+tc.raw, func(t *testing.T) {
			c, err := tc.policy.Resolve(tc.raw)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, c)
		})
	}
}

func TestParseCategoryPolicy(t *testing.T) {
	p, err := workouts.ParseCategoryPolicy("")
	require.NoError(t, err)
	assert.Equal(t, workouts.PolicyCoerce, p)

	p, err = workouts.ParseCategoryPolicy(" REJECT ")
	require.NoError(t, err)
	assert.Equal(t, workouts.PolicyReject, p)

	p, err = workouts.ParseCategoryPolicy("accept")
	require.NoError(t, err)
	assert.Equal(t, workouts.PolicyAccept, p)

	_, err = workouts.ParseCategoryPolicy("ignore")
	require.Error(t, err)
}

func TestOrderedCategories(t *testing.T) {
	m := map[workouts.Category]int{
		"Zumba":                   1,
		workouts.CategoryCoolDown: 1,
		"Boxing":                  1,
		workouts.CategoryWarmUp:   1,
		workouts.CategoryWorkout:  1,
	}
	assert.Equal(t, []workouts.Category{
		workouts.CategoryWarmUp,
		workouts.CategoryWorkout,
		workouts.CategoryCoolDown,
		"Boxing",
		"Zumba",
	}, workouts.OrderedCategories(m))

	assert.Empty(t, workouts.OrderedCategories(map[workouts.Category]int{}))
}
