package model

// Record is one accepted line of the result report: the test case it
// belongs to, the configuration variant it ran under, and the
// verified/total lemma counts parsed from the ratio field.
type Record struct {
	Case     string
	Variant  string
	Verified int
	Total    int
}
