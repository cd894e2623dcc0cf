package table

// Counts is a two-level count table keyed by case identifier and
// configuration variant. Writes overwrite the previous value for the
// same key pair; reads of absent pairs return zero without creating
// an entry.
type Counts struct {
	m map[string]map[string]int
}

func New() *Counts {
	return &Counts{m: make(map[string]map[string]int)}
}

func (c *Counts) Set(caseKey, variant string, n int) {
	inner, ok := c.m[caseKey]
	if !ok {
		inner = make(map[string]int)
		c.m[caseKey] = inner
	}
	inner[variant] = n
}

func (c *Counts) Get(caseKey, variant string) int {
	return c.m[caseKey][variant]
}

// Cases returns the case identifiers present in the table, unordered.
func (c *Counts) Cases() []string {
	keys := make([]string, 0, len(c.m))
	for k := range c.m {
		keys = append(keys, k)
	}
	return keys
}

func (c *Counts) Len() int {
	return len(c.m)
}
