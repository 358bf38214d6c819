package minic

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/minic-lang/minic/ast"
	"github.com/minic-lang/minic/cst"
	"github.com/minic-lang/minic/lower"
	"github.com/minic-lang/minic/reporter"
)

// Resolver resolves a compilation-unit name into its parsed concrete
// syntax tree. This is how a Lowerer obtains its inputs; the parser that
// produces the CSTs is not part of this module.
//
// Implementations must be safe for concurrent use. The returned CST must
// not share nodes with CSTs returned for other names.
type Resolver interface {
	FindCompileUnit(name string) (*cst.CompileUnit, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(name string) (*cst.CompileUnit, error)

func (f ResolverFunc) FindCompileUnit(name string) (*cst.CompileUnit, error) {
	return f(name)
}

// Lowerer lowers compilation units, by name, into ASTs. Units are
// independent, so they are lowered concurrently with bounded parallelism.
type Lowerer struct {
	// Resolver locates the CST for each unit name passed to Lower. This
	// field is required.
	Resolver Resolver
	// MaxParallelism bounds how many units are lowered at once. If
	// unspecified or non-positive, min(runtime.NumCPU(),
	// runtime.GOMAXPROCS(-1)) is used.
	MaxParallelism int
	// Reporter observes errors as they are encountered. If nil, the first
	// error fails the whole batch.
	Reporter reporter.Reporter
}

// Lower lowers the named units and returns their AST roots in input
// order. All units share one error handler, so once any unit fails the
// remaining lowerings stop and the batch returns that failure. Each
// returned tree is exclusively owned by the caller.
func (l *Lowerer) Lower(ctx context.Context, names ...string) ([]*ast.Node, error) {
	if len(names) == 0 {
		return nil, nil
	}
	if l.Resolver == nil {
		return nil, errors.New("minic: Lowerer requires a Resolver")
	}

	par := l.MaxParallelism
	if par <= 0 {
		par = runtime.GOMAXPROCS(-1)
		if cpus := runtime.NumCPU(); par > cpus {
			par = cpus
		}
	}

	handler := reporter.NewHandler(l.Reporter)
	roots := make([]*ast.Node, len(names))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(par)
	for i, name := range names {
		i, name := i, name
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			unit, err := l.Resolver.FindCompileUnit(name)
			if err != nil {
				return fmt.Errorf("minic: resolving %q: %w", name, err)
			}
			root, err := lower.CompileUnit(name, unit, handler)
			if err != nil {
				return err
			}
			roots[i] = root
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return roots, nil
}
