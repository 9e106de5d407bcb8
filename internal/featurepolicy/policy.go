// Package featurepolicy implements the version-gate warning layer of spec
// §4.8: per-subproject feature-new/feature-deprecated registration,
// deduplicated warnings, and an end-of-run consolidated report. Per spec
// §9's design note, the registry is owned by one Policy value per
// interpreter instance rather than process-wide module state — "an
// implementation that wishes to evaluate independent projects in parallel
// must instance these registries per interpreter" (spec §5).
package featurepolicy

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Class distinguishes the two gate kinds sharing one mechanism (spec §4.8).
type Class int

const (
	ClassNew Class = iota
	ClassDeprecated
)

// WarnFunc is the host's warning sink (spec §6).
type WarnFunc func(format string, args ...any)

// VersionCompare compares two dotted version strings; it returns <0, 0, >0
// exactly like strings.Compare but for dotted numeric components. The host
// supplies this (spec §6); a simple dotted-integer default lives in
// internal/host for the reference CLI.
type VersionCompare func(a, b string) int

// Policy tracks feature-gate use, one instance per interpreter run.
type Policy struct {
	warn    WarnFunc
	cmp     VersionCompare
	targets map[string]string // subproject -> target version (project_meson_versions)

	newUses        map[string]map[string]map[string]bool // subproject -> version -> feature -> seen
	deprecatedUses map[string]map[string]map[string]bool

	// overrideStack holds transient per-subproject target overrides set by
	// version_compare inside an `if` condition (spec §4.2).
	overrideStack map[string][]string
}

// New builds a Policy. warn and cmp must not be nil.
func New(warn WarnFunc, cmp VersionCompare) *Policy {
	return &Policy{
		warn:           warn,
		cmp:            cmp,
		targets:        make(map[string]string),
		newUses:        make(map[string]map[string]map[string]bool),
		deprecatedUses: make(map[string]map[string]map[string]bool),
		overrideStack:  make(map[string][]string),
	}
}

// SetProjectVersion records the target version declared by a subproject's
// project() call.
func (p *Policy) SetProjectVersion(subproject, version string) {
	p.targets[subproject] = version
}

// PushTargetOverride temporarily overrides subproject's target version for
// the duration of an `if` clause whose condition used version_compare on a
// VersionString (spec §4.2). Must be paired with PopTargetOverride on every
// exit path, including via panic/error — callers defer the pop.
func (p *Policy) PushTargetOverride(subproject, version string) {
	p.overrideStack[subproject] = append(p.overrideStack[subproject], version)
}

// PopTargetOverride removes the most recent override for subproject.
func (p *Policy) PopTargetOverride(subproject string) {
	stack := p.overrideStack[subproject]
	if len(stack) == 0 {
		return
	}
	p.overrideStack[subproject] = stack[:len(stack)-1]
}

// targetFor returns the effective target version for subproject: the
// innermost transient override if any, else the declared project()
// version, else "" (not yet declared — checks are skipped silently).
func (p *Policy) targetFor(subproject string) (string, bool) {
	if stack := p.overrideStack[subproject]; len(stack) > 0 {
		return stack[len(stack)-1], true
	}
	if v, ok := p.targets[subproject]; ok {
		return v, true
	}
	return "", false
}

// TargetFor exposes the effective target version for subproject (override
// if one is pushed, else the declared project() version), for callers that
// need to branch on the target directly (e.g. the Dict-literal key-resolver
// choice in internal/eval, gated at "0.53.0").
func (p *Policy) TargetFor(subproject string) (string, bool) {
	return p.targetFor(subproject)
}

// FeatureNew registers use of a feature introduced at version `since`. If
// the subproject's target is below `since`, a one-shot (deduplicated)
// warning is emitted.
func (p *Policy) FeatureNew(subproject, featureName, since string) {
	target, ok := p.targetFor(subproject)
	if !ok {
		return // project() not yet run for this subproject: skip silently
	}
	if p.cmp(target, since) >= 0 {
		return // legal: target >= since
	}
	if p.recordUse(p.newUses, subproject, since, featureName) {
		p.warn("Project targets %q but uses feature introduced in %q: %s.",
			target, since, featureName)
	}
}

// FeatureDeprecated registers use of a feature deprecated at version
// `since`; it warns when target >= since (the inverse of FeatureNew).
func (p *Policy) FeatureDeprecated(subproject, featureName, since string) {
	target, ok := p.targetFor(subproject)
	if !ok {
		return
	}
	if p.cmp(target, since) < 0 {
		return // not yet deprecated for this target
	}
	if p.recordUse(p.deprecatedUses, subproject, since, featureName) {
		p.warn("Project targets %q but uses feature deprecated since %q: %s.",
			target, since, featureName)
	}
}

// SingleUse fires a one-off version-gated warning for a specific call
// site, independent of the decorator form (spec §4.8 "two entry points").
func (p *Policy) SingleUse(class Class, featureName, version, subproject, extraMessage string) {
	switch class {
	case ClassNew:
		p.FeatureNew(subproject, featureName, version)
	case ClassDeprecated:
		p.FeatureDeprecated(subproject, featureName, version)
	}
	if extraMessage != "" {
		p.warn("%s", extraMessage)
	}
}

// recordUse returns true the first time (subproject, version, feature) is
// seen, false on every subsequent call — the dedup behind §8 Testable
// Property 3.
func (p *Policy) recordUse(store map[string]map[string]map[string]bool, subproject, version, feature string) bool {
	bySub, ok := store[subproject]
	if !ok {
		bySub = make(map[string]map[string]bool)
		store[subproject] = bySub
	}
	byVer, ok := bySub[version]
	if !ok {
		byVer = make(map[string]bool)
		bySub[version] = byVer
	}
	if byVer[feature] {
		return false
	}
	byVer[feature] = true
	return true
}

// Report renders the consolidated end-of-run report for one subproject and
// class: one line per version in natural (dotted-numeric) order, each
// listing its feature names sorted lexicographically.
func (p *Policy) Report(class Class, subproject string) string {
	var store map[string]map[string]map[string]bool
	var verb string
	switch class {
	case ClassNew:
		store, verb = p.newUses, "introduced"
	case ClassDeprecated:
		store, verb = p.deprecatedUses, "deprecated"
	}
	byVer := store[subproject]
	if len(byVer) == 0 {
		return ""
	}

	versions := make([]string, 0, len(byVer))
	for v := range byVer {
		versions = append(versions, v)
	}
	sort.Slice(versions, func(i, j int) bool { return compareVersions(versions[i], versions[j]) < 0 })

	var b strings.Builder
	for _, v := range versions {
		features := make([]string, 0, len(byVer[v]))
		for f := range byVer[v] {
			features = append(features, f)
		}
		sort.Strings(features)
		fmt.Fprintf(&b, "Features %s in %q: %s\n", verb, v, strings.Join(features, ", "))
	}
	return b.String()
}

// compareVersions implements the natural (numeric-dotted-component) sort
// required by a complete feature report — supplemented from the original
// Python's FeatureCheckBase grouping behavior (see SPEC_FULL.md).
func compareVersions(a, b string) int {
	as, bs := strings.Split(a, "."), strings.Split(b, ".")
	for i := 0; i < len(as) || i < len(bs); i++ {
		var an, bn int
		if i < len(as) {
			an, _ = strconv.Atoi(as[i])
		}
		if i < len(bs) {
			bn, _ = strconv.Atoi(bs[i])
		}
		if an != bn {
			return an - bn
		}
	}
	return 0
}
