package classes

import (
	"io"
	"sync"

	merge "github.com/tylantz/go-tailwind-merge"
)

// Resolver resolves conflicts in a space-separated class string. For a fixed
// input the result must be deterministic: later classes targeting the same
// utility category override earlier ones, non-conflicting classes survive.
type Resolver interface {
	Merge(classes string) string
}

// TailwindResolver is a Resolver backed by go-tailwind-merge.
type TailwindResolver struct {
	merger *merge.Merger
}

// NewTailwindResolver creates a resolver with the default Tailwind
// configuration. Additional rules can be layered on with AddRules.
func NewTailwindResolver() *TailwindResolver {
	return &TailwindResolver{merger: merge.NewMerger(nil, true)}
}

// AddRules feeds CSS rules into the resolver so it can learn which custom
// classes conflict. The important flag marks the rules as !important.
func (r *TailwindResolver) AddRules(rules io.Reader, important bool) {
	r.merger.AddRules(rules, important)
}

// Merge resolves conflicts in the given class string, keeping the last of any
// conflicting group.
func (r *TailwindResolver) Merge(classes string) string {
	return r.merger.Merge(classes)
}

var (
	defaultOnce     sync.Once
	defaultResolver *TailwindResolver
)

// Default returns the process-wide shared resolver, created on first use.
// Definitions that need different rules inject their own Resolver instead.
func Default() Resolver {
	defaultOnce.Do(func() {
		defaultResolver = NewTailwindResolver()
	})
	return defaultResolver
}
