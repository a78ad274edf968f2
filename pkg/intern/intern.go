// Package intern provides a deduplicating pool of smartstring values for
// workloads that hold many copies of the same short keys.
package intern

import (
	"github.com/cockroachdb/swiss"

	"github.com/bodil/smartstring"
)

// Pool deduplicates string content into shared smartstring values. Values
// returned by Load share storage with the pool; treat them as read-only
// and Clone before mutating.
//
// A Pool is not safe for concurrent use without external locking.
type Pool struct {
	nums *swiss.Map[string, int]
	strs []smartstring.LazyString
}

// NewPool returns an empty pool.
func NewPool() *Pool {
	return &Pool{nums: swiss.New[string, int](8)}
}

// Load returns the pooled string for num.
func (p *Pool) Load(num int) smartstring.LazyString {
	if num >= 0 && num < len(p.strs) {
		return p.strs[num]
	}
	panic("intern: string not found")
}

// Store interns str and returns its number. Storing the same content
// twice returns the same number.
func (p *Pool) Store(str string) int {
	num, ok := p.nums.Get(str)
	if !ok {
		v := smartstring.From[smartstring.LazyCompact](str)
		num = len(p.strs)
		p.strs = append(p.strs, v)
		// Key on the value's own copy so the map never pins the
		// caller's buffer.
		p.nums.Put(v.String(), num)
	}
	return num
}

// Len returns the number of interned strings.
func (p *Pool) Len() int { return len(p.strs) }
