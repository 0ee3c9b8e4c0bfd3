package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchTypeLabel(t *testing.T) {
	cases := map[MatchType]string{
		MatchTypeStandard: "축구 매치",
		MatchTypeThreeWay: "3파전",
		MatchTypeStarter:  "스타터 매치",
		MatchTypeCup:      "컵",
		MatchTypeLeague:   "리그",
		MatchTypeTShirt:   "티셔츠",
		"futsal":          DefaultMatchTypeLabel,
		"":                DefaultMatchTypeLabel,
		"League":          DefaultMatchTypeLabel,
	}
	for code, want := range cases {
		assert.Equal(t, want, code.Label(), "code %q", code)
	}
}

func TestTableNames(t *testing.T) {
	assert.Equal(t, "match", Match{}.TableName())
	assert.Equal(t, "stadium", Stadium{}.TableName())
}
