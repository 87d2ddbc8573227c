// Package resolver turns a command name into the package that provides it,
// consulting the choice cache before the package index.
package resolver

import (
	"context"

	"go.trai.ch/comma/internal/core/domain"
	"go.trai.ch/comma/internal/core/ports"
	"go.trai.ch/zerr"
)

// Resolver implements cache-first resolution of commands to packages.
type Resolver struct {
	index  ports.PackageIndex
	picker ports.Picker
	tracer ports.Tracer
}

// New creates a Resolver.
func New(index ports.PackageIndex, picker ports.Picker, tracer ports.Tracer) *Resolver {
	return &Resolver{
		index:  index,
		picker: picker,
		tracer: tracer,
	}
}

// Resolve returns the package choice for command. With invalidate set, any
// cached entry is dropped first. A fresh choice is written to cache; the
// caller decides when the cache is flushed.
func (r *Resolver) Resolve(
	ctx context.Context,
	command, picker string,
	cache ports.ChoiceCache,
	invalidate bool,
) (choice domain.PackageChoice, err error) {
	ctx, span := r.tracer.Start(ctx, "resolve")
	defer func() {
		span.RecordError(err)
		span.End()
	}()
	span.SetAttribute("command", command)

	if invalidate {
		cache.Delete(command)
	}

	if entry, ok := cache.Query(command); ok {
		span.SetAttribute("cached", true)
		return domain.ChoiceFromEntry(entry), nil
	}
	span.SetAttribute("cached", false)

	derivation, err := r.pick(ctx, command, picker)
	if err != nil {
		return domain.PackageChoice{}, err
	}

	choice = domain.NewPackageChoice(derivation)
	cache.Update(command, choice.Entry())

	return choice, nil
}

func (r *Resolver) pick(ctx context.Context, command, picker string) (string, error) {
	candidates, err := r.candidates(ctx, command)
	if err != nil {
		return "", err
	}

	if len(candidates) == 1 {
		return candidates[0], nil
	}

	ctx, span := r.tracer.Start(ctx, "picker")
	defer span.End()
	span.SetAttribute("picker", picker)

	selected, ok, err := r.picker.Select(ctx, picker, candidates)
	if err != nil {
		span.RecordError(err)
		return "", err
	}
	if !ok {
		return "", zerr.With(domain.ErrNoSelection, "command", command)
	}

	return selected, nil
}

// Candidates lists the packages that provide command, in index order.
func (r *Resolver) Candidates(ctx context.Context, command string) ([]string, error) {
	return r.candidates(ctx, command)
}

func (r *Resolver) candidates(ctx context.Context, command string) ([]string, error) {
	ctx, span := r.tracer.Start(ctx, "index.query")
	defer span.End()

	candidates, err := r.index.Candidates(ctx, command)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("candidates", len(candidates))

	return candidates, nil
}
