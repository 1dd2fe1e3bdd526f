package aggregate

import (
	"fmt"
	"sort"
	"sync"

	"github.com/ukaji3/gridfill-go/pkg/gridfill/models"
)

// Names of the built-in aggregation functions.
const (
	FuncSumTotal       = "sum_total"
	FuncSumTotalUsages = "sum_total_usages"
)

// Input is what an aggregation function receives for one aggregate cell.
type Input struct {
	// Rows are the grid rows in table order. Functions must not modify them.
	Rows []models.Row
	// Index is the position of the subtotal or total row.
	Index int
	// Column is the column being aggregated.
	Column models.Column
	// Unit is the selected display unit.
	Unit models.Unit
	// RefrigerationUsageIDs are the usage ids summed for refrigeration totals.
	RefrigerationUsageIDs []int
}

// Func computes one aggregate cell. It always returns a number.
type Func func(in Input) float64

// Registry maps aggregation names used by column definitions to functions.
type Registry struct {
	mu    sync.RWMutex
	funcs map[string]Func
}

// NewRegistry returns a registry holding the built-in functions.
func NewRegistry() *Registry {
	r := &Registry{funcs: make(map[string]Func)}
	r.funcs[FuncSumTotal] = func(in Input) float64 {
		return SumTotal(in.Rows, in.Index, in.Column.Field, in.Unit)
	}
	r.funcs[FuncSumTotalUsages] = func(in Input) float64 {
		return SumTotalUsages(in.Rows, in.Index, in.Column.UsageID, in.Unit, in.RefrigerationUsageIDs)
	}
	return r
}

// Register adds or replaces the function stored under name.
func (r *Registry) Register(name string, fn Func) error {
	if name == "" || fn == nil {
		return fmt.Errorf("aggregate: invalid registration %q", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.funcs[name] = fn
	return nil
}

// Lookup returns the function registered under name.
func (r *Registry) Lookup(name string) (Func, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.funcs[name]
	return fn, ok
}

// Names lists registered function names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
