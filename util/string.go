package util

import (
	"github.com/xtgo/set"
	"sort"
	"strings"
)

// StringTakeUntil returns the string up to and excluding char as well as the remainder excluding char
//
// if char was not found, then tail returns the empty string and found is false
func StringTakeUntil(s string, char rune) (head string, tail string, found bool) {
	for i, r := range s {
		if r == char {
			return s[:i], s[i+len(string(r)):], true
		}
	}
	return s, "", false
}

// SortedUniq returns a sorted copy of items without duplicates
func SortedUniq(items []string) []string {
	data := make(sort.StringSlice, len(items))
	copy(data, items)
	sort.Sort(data)
	n := set.Uniq(data)
	return data[:n]
}

// JoinString joins the String() of every element with sep
func JoinString[A interface{ String() string }](elems []A, sep string) string {
	strs := make([]string, len(elems))
	for i, e := range elems {
		strs[i] = e.String()
	}
	return strings.Join(strs, sep)
}
