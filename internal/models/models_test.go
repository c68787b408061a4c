package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestRequestStatus_Transitions(t *testing.T) {
	t.Parallel()

	require.True(t, RequestPending.CanTransition(RequestAccepted))
	require.True(t, RequestPending.CanTransition(RequestRejected))
	require.False(t, RequestPending.CanTransition(RequestPending))

	for _, from := range []RequestStatus{RequestAccepted, RequestRejected} {
		require.True(t, from.Terminal())
		for _, to := range []RequestStatus{RequestPending, RequestAccepted, RequestRejected} {
			require.False(t, from.CanTransition(to), "%s -> %s", from, to)
		}
	}
}

func TestRange_Within(t *testing.T) {
	t.Parallel()

	outer := Range{Min: 18, Max: 100}
	require.True(t, Range{Min: 18, Max: 100}.Within(outer))
	require.True(t, Range{Min: 30, Max: 30}.Within(outer))
	require.False(t, Range{Min: 31, Max: 30}.Within(outer))
	require.False(t, Range{Min: 17, Max: 30}.Within(outer))
	require.False(t, Range{Min: 20, Max: 101}.Within(outer))
}

func TestSearchSettings_Matches(t *testing.T) {
	t.Parallel()

	u := User{Gender: GenderMale, Age: 30, Height: 180, Weight: 75, MaritalStatus: MaritalSingle}
	s := DefaultSearchSettings(uuid.New(), DefaultBounds())
	require.True(t, s.Matches(u))

	s.GenderPreference = PreferFemale
	require.False(t, s.Matches(u))
	s.GenderPreference = PreferMale
	require.True(t, s.Matches(u))

	s.Age = Range{Min: 31, Max: 40}
	require.False(t, s.Matches(u))
	s.Age = Range{Min: 30, Max: 30}
	require.True(t, s.Matches(u))

	s.MaritalPreference = []MaritalStatus{MaritalDivorced}
	require.False(t, s.Matches(u))
	s.MaritalPreference = []MaritalStatus{MaritalDivorced, MaritalSingle}
	require.True(t, s.Matches(u))
}

func TestEnums_StringAndValid(t *testing.T) {
	t.Parallel()

	require.Equal(t, "female", GenderFemale.String())
	require.False(t, GenderUnspecified.Valid())
	require.Equal(t, "divorced", MaritalDivorced.String())
	require.False(t, MaritalStatus(9).Valid())
	require.Equal(t, "science", InterestScience.String())
	require.Equal(t, "unspecified", Interest(99).String())
	require.Len(t, Interests, 14)
	require.Equal(t, LanguageUZ, ParseLanguage("uz"))
	require.Equal(t, LanguageRU, ParseLanguage("en"))
}
