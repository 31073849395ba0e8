package domain

import (
	"reflect"
	"testing"
)

func TestHashtags(t *testing.T) {
	cases := []struct {
		content string
		want    []string
	}{
		{"no tags here", []string{}},
		{"hello #world", []string{"world"}},
		{"#Go and #go and #GO again", []string{"go"}},
		{"mix #first then #second then #first", []string{"first", "second"}},
		{"#tag_with_underscore and #123", []string{"tag_with_underscore", "123"}},
		{"trailing hash # alone", []string{}},
	}

	for _, tc := range cases {
		got := Hashtags(tc.content)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Hashtags(%q) = %v, want %v", tc.content, got, tc.want)
		}
	}
}
