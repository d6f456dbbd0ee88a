// Package branchutil maps units of work to the branch and tag names of the
// branching model.
package branchutil

import (
	"strings"

	"gitflow.dev/gitflow/internal/errors"
	"gitflow.dev/gitflow/internal/version"
)

// Kind is the kind of unit of work a branch carries
type Kind int

const (
	// KindFeature is a feature branch, rooted at develop
	KindFeature Kind = iota
	// KindRelease is a release branch, rooted at develop and finished into main
	KindRelease
	// KindHotfix is a hotfix branch, rooted at main
	KindHotfix
)

// Branch prefixes of the naming scheme
const (
	FeaturePrefix = "feature/"
	ReleasePrefix = "release/v"
	HotfixPrefix  = "hotfix/v"
)

// String returns the lower-case name of the kind
func (k Kind) String() string {
	switch k {
	case KindFeature:
		return "feature"
	case KindRelease:
		return "release"
	case KindHotfix:
		return "hotfix"
	default:
		return "unknown"
	}
}

// Prefix returns the branch name prefix for the kind
func (k Kind) Prefix() string {
	switch k {
	case KindRelease:
		return ReleasePrefix
	case KindHotfix:
		return HotfixPrefix
	default:
		return FeaturePrefix
	}
}

// IsVersioned reports whether identifiers of this kind are versions
func (k Kind) IsVersioned() bool {
	return k == KindRelease || k == KindHotfix
}

// UnitOfWork is a feature, release or hotfix and the names derived from it
type UnitOfWork struct {
	Kind       Kind
	Identifier string
	BranchName string
	// TagName is empty for features
	TagName string
}

// NewUnitOfWork validates identifier for kind and derives branch and tag names.
// Feature identifiers must be non-blank; release and hotfix identifiers must
// be MAJOR.MINOR.PATCH versions.
func NewUnitOfWork(kind Kind, identifier string) (UnitOfWork, error) {
	if kind.IsVersioned() {
		v, err := version.Parse(identifier)
		if err != nil {
			return UnitOfWork{}, err
		}
		return UnitOfWork{
			Kind:       kind,
			Identifier: v.String(),
			BranchName: kind.Prefix() + v.String(),
			TagName:    v.Tag(),
		}, nil
	}

	if strings.TrimSpace(identifier) == "" {
		return UnitOfWork{}, errors.NewInvalidArgumentError("feature name", "must not be empty")
	}
	return UnitOfWork{
		Kind:       kind,
		Identifier: identifier,
		BranchName: FeaturePrefix + identifier,
	}, nil
}

// BranchName returns the branch name for the given kind and identifier
func BranchName(kind Kind, identifier string) (string, error) {
	u, err := NewUnitOfWork(kind, identifier)
	if err != nil {
		return "", err
	}
	return u.BranchName, nil
}

// TagName returns the tag name for a release or hotfix identifier
func TagName(identifier string) string {
	return "v" + identifier
}

// Parse is the inverse of BranchName. It reports false for branches outside
// the naming scheme, including versioned prefixes followed by a non-version.
func Parse(branchName string) (Kind, string, bool) {
	switch {
	case strings.HasPrefix(branchName, ReleasePrefix):
		id := strings.TrimPrefix(branchName, ReleasePrefix)
		return KindRelease, id, version.IsValid(id)
	case strings.HasPrefix(branchName, HotfixPrefix):
		id := strings.TrimPrefix(branchName, HotfixPrefix)
		return KindHotfix, id, version.IsValid(id)
	case strings.HasPrefix(branchName, FeaturePrefix):
		id := strings.TrimPrefix(branchName, FeaturePrefix)
		return KindFeature, id, strings.TrimSpace(id) != ""
	default:
		return KindFeature, "", false
	}
}
