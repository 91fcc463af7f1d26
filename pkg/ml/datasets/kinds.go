/*
 *	Copyright 2023 Jan Pfeifer
 *
 *	Licensed under the Apache License, Version 2.0 (the "License");
 *	you may not use this file except in compliance with the License.
 *	You may obtain a copy of the License at
 *
 *	http://www.apache.org/licenses/LICENSE-2.0
 *
 *	Unless required by applicable law or agreed to in writing, software
 *	distributed under the License is distributed on an "AS IS" BASIS,
 *	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *	See the License for the specific language governing permissions and
 *	limitations under the License.
 */

package datasets

import (
	"fmt"
	"math/rand/v2"
	"slices"

	. "github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Kind is an enum of the available dataset generators.
// The zero value is KindSimple.
type Kind int

const (
	KindSimple Kind = iota
	KindDiag
	KindSplit
	KindXor
	KindCircle
	KindSpiral
)

// kindNames is indexed by Kind and doubles as the registry of selectable names.
var kindNames = [...]string{"Simple", "Diag", "Split", "Xor", "Circle", "Spiral"}

// String implements fmt.Stringer, returning the registry name of the kind.
func (kind Kind) String() string {
	if kind < 0 || int(kind) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(kind))
	}
	return kindNames[kind]
}

// Generator returns the generator function for the kind, or nil for an
// invalid kind.
func (kind Kind) Generator() Generator {
	switch kind {
	case KindSimple:
		return Simple
	case KindDiag:
		return Diag
	case KindSplit:
		return Split
	case KindXor:
		return Xor
	case KindCircle:
		return Circle
	case KindSpiral:
		return Spiral
	}
	return nil
}

// Names returns the names of all registered dataset generators, in registry order.
func Names() []string {
	return slices.Clone(kindNames[:])
}

// KindFromName converts a dataset name ("Simple", "Diag", "Split", "Xor", "Circle"
// or "Spiral") to its Kind. It returns an error for unknown names.
func KindFromName(name string) (Kind, error) {
	for ii, kindName := range kindNames {
		if kindName == name {
			return Kind(ii), nil
		}
	}
	return 0, errors.Errorf("dataset %q not found: options are %v", name, Names())
}

// ByName looks up a dataset generator by its registry name.
// It returns an error for unknown names.
func ByName(name string) (Generator, error) {
	kind, err := KindFromName(name)
	if err != nil {
		return nil, err
	}
	return kind.Generator(), nil
}

// MustByName is like ByName but panics on unknown names.
// Handy in notebooks and demos.
func MustByName(name string) Generator {
	generator, err := ByName(name)
	if err != nil {
		Panicf("invalid dataset name %q: options are %v", name, Names())
	}
	return generator
}

// Generate builds a dataset of the given kind with numPoints points, sampling
// from rng (nil uses the package default source, see Generator).
func Generate(kind Kind, rng *rand.Rand, numPoints int) (*Dataset, error) {
	generator := kind.Generator()
	if generator == nil {
		return nil, errors.Errorf("invalid dataset kind %d: options are %v", int(kind), Names())
	}
	ds, err := generator(rng, numPoints)
	if err != nil {
		return nil, errors.WithMessagef(err, "generating %q dataset", kind)
	}
	klog.V(1).Infof("generated %q dataset with %d points", kind, len(ds.Points))
	return ds, nil
}
